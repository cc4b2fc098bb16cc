package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса.
// Методы безопасно вызывать на nil (метрики выключены).
type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	slotQueries  *prometheus.CounterVec
	cacheLookups *prometheus.CounterVec
	dbQueries    *prometheus.HistogramVec
	dbPool       *prometheus.GaugeVec
}

// New регистрирует метрики в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует метрики в переданном реестре (используется в тестах)
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		slotQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "slot_queries_total",
			Help:        "Slot availability queries by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "business_hours_cache_lookups_total",
			Help:        "Business hours cache lookups by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
		dbQueries: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency by operation",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "status"}),
		dbPool: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_pool_connections",
			Help:        "Database connection pool state",
			ConstLabels: constLabels,
		}, []string{"state"}),
	}

	reg.MustRegister(m.httpRequests, m.httpDuration, m.slotQueries, m.cacheLookups, m.dbQueries, m.dbPool)
	return m
}

// ObserveHTTP фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Outcome values for slot queries.
const (
	OutcomeAvailable   = "available"
	OutcomeFullyBooked = "fully_booked"
	OutcomeClosed      = "closed"
)

// IncSlotQuery считает запрос доступных слотов по исходу
func (m *Metrics) IncSlotQuery(outcome string) {
	if m == nil {
		return
	}
	m.slotQueries.WithLabelValues(outcome).Inc()
}

// IncCacheLookup считает обращение к кэшу расписания (hit, miss, error)
func (m *Metrics) IncCacheLookup(result string) {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

// ObserveDBQuery фиксирует длительность запроса к БД (operation: exec, query, query_row)
func (m *Metrics) ObserveDBQuery(operation string, failed bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if failed {
		status = "error"
	}
	m.dbQueries.WithLabelValues(operation, status).Observe(elapsed.Seconds())
}

// SetDBPool выставляет состояние пула соединений
func (m *Metrics) SetDBPool(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.dbPool.WithLabelValues("open").Set(float64(open))
	m.dbPool.WithLabelValues("in_use").Set(float64(inUse))
	m.dbPool.WithLabelValues("idle").Set(float64(idle))
}
