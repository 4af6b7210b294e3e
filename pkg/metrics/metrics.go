package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Исходы операции создания записи
const (
	OutcomeCreated   = "created"
	OutcomeSlotTaken = "slot_taken"
	OutcomeRejected  = "rejected"
	OutcomeFailed    = "failed"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec
	DBWaitCount        *prometheus.GaugeVec

	AppointmentsCreateTotal *prometheus.CounterVec
	CacheRequestsTotal      *prometheus.CounterVec
}

// New регистрирует метрики в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует метрики в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation", "status"}),

		DBOpenConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}, []string{}),

		DBInUseConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{}),

		DBIdleConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{}),

		DBWaitCount: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{}),

		AppointmentsCreateTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "appointments_create_total",
			Help:        "Appointment creation attempts by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),

		CacheRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_cache_requests_total",
			Help:        "Availability cache lookups by result",
			ConstLabels: constLabels,
		}, []string{"key", "result"}),
	}
}

// ObserveAppointmentCreate учитывает исход создания записи. Безопасен для nil.
func (m *Metrics) ObserveAppointmentCreate(outcome string) {
	if m == nil {
		return
	}
	m.AppointmentsCreateTotal.WithLabelValues(outcome).Inc()
}

// ObserveCache учитывает попадание или промах кэша. Безопасен для nil.
func (m *Metrics) ObserveCache(key string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheRequestsTotal.WithLabelValues(key, result).Inc()
}
