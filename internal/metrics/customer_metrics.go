package metrics

import (
	"strconv"

	"github.com/Dhoini/customer-service/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CustomerMetrics интерфейс для метрик клиентов
type CustomerMetrics interface {
	IncCustomerCreated()
	IncCustomerUpdated()
	IncCustomerDeleted()
	ObserveRequestDuration(method, path string, status int, seconds float64)
}

type customerMetrics struct {
	log              *logger.Logger
	customersCreated prometheus.Counter
	customersUpdated prometheus.Counter
	customersDeleted prometheus.Counter
	requestDuration  *prometheus.HistogramVec
}

// NewCustomerMetrics создает новые метрики клиентов
func NewCustomerMetrics(registry *prometheus.Registry, log *logger.Logger) CustomerMetrics {
	customersCreated := promauto.With(registry).NewCounter(
		prometheus.CounterOpts{
			Name: "customers_created_total",
			Help: "The total number of created customers",
		},
	)

	customersUpdated := promauto.With(registry).NewCounter(
		prometheus.CounterOpts{
			Name: "customers_updated_total",
			Help: "The total number of updated customers",
		},
	)

	customersDeleted := promauto.With(registry).NewCounter(
		prometheus.CounterOpts{
			Name: "customers_deleted_total",
			Help: "The total number of deleted customers",
		},
	)

	requestDuration := promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency distribution",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	return &customerMetrics{
		log:              log,
		customersCreated: customersCreated,
		customersUpdated: customersUpdated,
		customersDeleted: customersDeleted,
		requestDuration:  requestDuration,
	}
}

// IncCustomerCreated увеличивает счетчик созданных клиентов
func (m *customerMetrics) IncCustomerCreated() {
	m.customersCreated.Inc()
}

// IncCustomerUpdated увеличивает счетчик обновленных клиентов
func (m *customerMetrics) IncCustomerUpdated() {
	m.customersUpdated.Inc()
}

// IncCustomerDeleted увеличивает счетчик удаленных клиентов
func (m *customerMetrics) IncCustomerDeleted() {
	m.customersDeleted.Inc()
}

// ObserveRequestDuration записывает длительность HTTP запроса
func (m *customerMetrics) ObserveRequestDuration(method, path string, status int, seconds float64) {
	m.requestDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(seconds)
}
