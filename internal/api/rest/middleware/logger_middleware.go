package middleware

import (
	"time"

	"github.com/Dhoini/customer-service/internal/metrics"
	"github.com/Dhoini/customer-service/pkg/logger"
	"github.com/gin-gonic/gin"
)

// LoggerMiddleware создает middleware для логирования запросов и записи
// метрики длительности
func LoggerMiddleware(log *logger.Logger, m metrics.CustomerMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		latency := time.Since(startTime)
		statusCode := c.Writer.Status()

		// Шаблон маршрута, чтобы не раздувать кардинальность метрики
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveRequestDuration(c.Request.Method, path, statusCode, latency.Seconds())

		switch {
		case statusCode >= 500:
			log.Error("[%s] %s %d %s %s",
				c.Request.Method,
				c.Request.RequestURI,
				statusCode,
				latency.String(),
				c.ClientIP(),
			)
		case statusCode >= 400:
			log.Warn("[%s] %s %d %s %s",
				c.Request.Method,
				c.Request.RequestURI,
				statusCode,
				latency.String(),
				c.ClientIP(),
			)
		default:
			log.Info("[%s] %s %d %s %s",
				c.Request.Method,
				c.Request.RequestURI,
				statusCode,
				latency.String(),
				c.ClientIP(),
			)
		}
	}
}
