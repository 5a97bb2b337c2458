package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clients-api/internal/config"
	dbpkg "github.com/BruksfildServices01/clients-api/internal/db"
	"github.com/BruksfildServices01/clients-api/internal/logger"
	"github.com/BruksfildServices01/clients-api/internal/metrics"
	"github.com/BruksfildServices01/clients-api/internal/routes"
	"github.com/BruksfildServices01/clients-api/internal/timezone"
)

func main() {

	cfg := config.Load()
	log := logger.New(cfg)

	if !timezone.SetDefault(cfg.Timezone) {
		log.WithField("timezone", cfg.Timezone).Warn("invalid APP_TIMEZONE, keeping default")
	}

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to open database")
	}

	m := metrics.New()
	if sqlDB, err := db.DB(); err == nil {
		m.WatchDB(sqlDB)
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, db, cfg, log, m)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		log.Infof("Server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("forced shutdown")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("server stopped")
}
