package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/UnknownOlympus/ems/internal/lib/requestid"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	{
		employees.GET("", handler.GetAll)
		employees.GET("/firstName/:firstName", handler.GetByFirstName)
		employees.GET("/:id", handler.GetByID)
		employees.POST("", handler.Create)
		employees.PUT("/:id", handler.Update)
		employees.DELETE("/:id", handler.Delete)
	}
}

// NewRouter builds the gin engine serving the API under /api.
func NewRouter(log *slog.Logger, handler *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(log), CORS())

	RegisterRoutes(router.Group("/api"), handler)

	return router
}

// RequestLogger tags every request with an id and logs its outcome.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		rid := requestid.Ensure(c.GetHeader(requestid.Header))

		c.Header(requestid.Header, rid)
		c.Request = c.Request.WithContext(requestid.WithRequestID(c.Request.Context(), rid))

		c.Next()

		log.InfoContext(c.Request.Context(), "http",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			slog.String("request_id", rid),
		)
	}
}

// CORS allows any origin.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, "+requestid.Header)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
