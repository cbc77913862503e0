package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	// HTTP-метрики
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Метрики работы с БД
	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec

	// Метрики connection pool
	DBConnectionsOpen  *prometheus.GaugeVec
	DBConnectionsInUse *prometheus.GaugeVec
	DBConnectionsIdle  *prometheus.GaugeVec
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),

		DBQueryErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of database query errors",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBConnectionsOpen: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_open",
			Help:        "Number of open database connections",
			ConstLabels: constLabels,
		}, []string{}),

		DBConnectionsInUse: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_in_use",
			Help:        "Number of database connections in use",
			ConstLabels: constLabels,
		}, []string{}),

		DBConnectionsIdle: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_idle",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}, []string{}),
	}
}

// ObserveHTTPRequest записывает метрики обработанного HTTP-запроса
func (m *Metrics) ObserveHTTPRequest(method, path, status string, durationSeconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(durationSeconds)
}

// ObserveDBQuery записывает метрики выполненного запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, durationSeconds float64, err error) {
	m.DBQueryDuration.WithLabelValues(operation).Observe(durationSeconds)
	if err != nil {
		m.DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

// SetDBPoolStats обновляет gauge-метрики connection pool
func (m *Metrics) SetDBPoolStats(open, inUse, idle int) {
	m.DBConnectionsOpen.WithLabelValues().Set(float64(open))
	m.DBConnectionsInUse.WithLabelValues().Set(float64(inUse))
	m.DBConnectionsIdle.WithLabelValues().Set(float64(idle))
}
