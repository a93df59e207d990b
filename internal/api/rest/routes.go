package rest

import (
	"github.com/Dhoini/customer-service/internal/api/rest/handlers"
	"github.com/Dhoini/customer-service/internal/api/rest/middleware"
	"github.com/Dhoini/customer-service/internal/metrics"
	"github.com/Dhoini/customer-service/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter настраивает маршрутизатор Gin с маршрутами и middleware
func SetupRouter(
	customerHandler *handlers.CustomerHandler,
	registry *prometheus.Registry,
	m metrics.CustomerMetrics,
	log *logger.Logger,
) *gin.Engine {
	handlers.RegisterCustomValidators()

	r := gin.New()

	// Подключение middleware
	r.Use(middleware.LoggerMiddleware(log, m))
	r.Use(gin.CustomRecovery(handlers.RecoveryHandler(log)))

	// Endpoint для проверки работоспособности сервиса
	r.GET("/health", handlers.HealthCheck)

	// Prometheus метрики
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// API клиентов
	api := r.Group("/api")
	{
		customers := api.Group("/customers")
		{
			customers.GET("", customerHandler.GetCustomers)
			customers.GET("/:id", customerHandler.GetCustomer)
			customers.POST("", customerHandler.CreateCustomer)
			customers.PUT("/:id", customerHandler.UpdateCustomer)
			customers.DELETE("/:id", customerHandler.DeleteCustomer)
		}
	}

	return r
}
