package httpresp

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clients-api/internal/pagination"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Page[T any](c *gin.Context, p pagination.Page[T]) {
	c.JSON(http.StatusOK, p)
}

// Created answers 201 with a Location pointing at <current request URL>/<id>.
func Created(c *gin.Context, id uint, data any) {
	c.Header("Location", ChildURL(c.Request, strconv.FormatUint(uint64(id), 10)))
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
	c.Writer.WriteHeaderNow()
}

// ChildURL appends one path segment to the absolute URL of r.
func ChildURL(r *http.Request, segment string) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if p := r.Header.Get("X-Forwarded-Proto"); p != "" {
		scheme = p
	}

	u := url.URL{
		Scheme: scheme,
		Host:   r.Host,
		Path:   strings.TrimSuffix(r.URL.Path, "/") + "/" + url.PathEscape(segment),
	}
	return u.String()
}
