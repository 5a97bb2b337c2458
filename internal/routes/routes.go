package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clients-api/internal/config"
	"github.com/BruksfildServices01/clients-api/internal/handlers"
	"github.com/BruksfildServices01/clients-api/internal/httperr"
	infraRepo "github.com/BruksfildServices01/clients-api/internal/infra/repository"
	"github.com/BruksfildServices01/clients-api/internal/metrics"
	"github.com/BruksfildServices01/clients-api/internal/middleware"
	ucClient "github.com/BruksfildServices01/clients-api/internal/usecase/client"
	"github.com/BruksfildServices01/clients-api/internal/validators"
)

// RegisterRoutes wires every layer onto r. m may be nil.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log *logrus.Logger,
	m *metrics.Metrics,
) {

	validators.RegisterGin()

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(log))
	if m != nil {
		r.Use(m.Middleware())
	}
	r.Use(middleware.CORSMiddleware())
	if cfg.RateLimitRPS > 0 {
		r.Use(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Middleware())
	}
	r.Use(httperr.Handler(log))

	// ======================================================
	// INFRA
	// ======================================================
	clientRepo := infraRepo.NewClientGormRepository(db)

	// ======================================================
	// USE CASES - CLIENTS
	// ======================================================
	clientHandler := handlers.NewClientHandler(
		ucClient.NewFindClientByID(clientRepo),
		ucClient.NewListClients(clientRepo),
		ucClient.NewInsertClient(clientRepo),
		ucClient.NewUpdateClient(clientRepo),
		ucClient.NewDeleteClient(clientRepo),
	)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			log.WithError(err).Warn("health check: database unreachable")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	// ======================================================
	// API
	// ======================================================
	clients := r.Group("/clients")
	{
		clients.GET("", clientHandler.List)
		clients.GET("/:id", clientHandler.FindByID)
		clients.POST("", clientHandler.Insert)
		clients.PUT("/:id", clientHandler.Update)
		clients.DELETE("/:id", clientHandler.Delete)
	}
}
