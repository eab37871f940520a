package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик клиента.
// Все методы безопасны для вызова на nil-получателе: при выключенных метриках
// компоненты получают nil и ничего не записывают.
type Metrics struct {
	service string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	upstreamRequestsTotal   *prometheus.CounterVec
	upstreamRequestDuration *prometheus.HistogramVec

	dbQueryDuration   *prometheus.HistogramVec
	dbOpenConnections *prometheus.GaugeVec
	dbInUse           *prometheus.GaugeVec
	dbIdle            *prometheus.GaugeVec

	notificationsTotal  *prometheus.GaugeVec
	notificationsUnread *prometheus.GaugeVec
}

// New регистрирует метрики в глобальном registry
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в переданном registry
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		service: serviceName,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served by the gateway",
		}, []string{"service", "method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests served by the gateway",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),
		upstreamRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of calls to the citizen services API",
		}, []string{"service", "endpoint", "outcome"}),
		upstreamRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Duration of calls to the citizen services API",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"service", "endpoint"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Duration of local store queries",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"service", "operation"}),
		dbOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Number of established connections to the local store",
		}, []string{"service"}),
		dbInUse: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Number of local store connections currently in use",
		}, []string{"service"}),
		dbIdle: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Number of idle local store connections",
		}, []string{"service"}),
		notificationsTotal: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "notifications_total",
			Help: "Number of notifications currently held by the store",
		}, []string{"service"}),
		notificationsUnread: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "notifications_unread",
			Help: "Number of notifications not yet viewed",
		}, []string{"service"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.upstreamRequestsTotal,
		m.upstreamRequestDuration,
		m.dbQueryDuration,
		m.dbOpenConnections,
		m.dbInUse,
		m.dbIdle,
		m.notificationsTotal,
		m.notificationsUnread,
	)

	return m
}

// RecordHTTPRequest учитывает запрос к локальному шлюзу
func (m *Metrics) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(m.service, method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.service, method, route).Observe(duration.Seconds())
}

// RecordUpstreamCall учитывает обращение к внешнему API
func (m *Metrics) RecordUpstreamCall(endpoint, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.upstreamRequestsTotal.WithLabelValues(m.service, endpoint, outcome).Inc()
	m.upstreamRequestDuration.WithLabelValues(m.service, endpoint).Observe(duration.Seconds())
}

// RecordDBQuery учитывает запрос к локальному хранилищу
func (m *Metrics) RecordDBQuery(operation string, duration time.Duration) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(m.service, operation).Observe(duration.Seconds())
}

// SetDBStats обновляет gauges пула соединений
func (m *Metrics) SetDBStats(stats sql.DBStats) {
	if m == nil {
		return
	}
	m.dbOpenConnections.WithLabelValues(m.service).Set(float64(stats.OpenConnections))
	m.dbInUse.WithLabelValues(m.service).Set(float64(stats.InUse))
	m.dbIdle.WithLabelValues(m.service).Set(float64(stats.Idle))
}

// SetNotifications обновляет размер списка уведомлений и счётчик непрочитанных
func (m *Metrics) SetNotifications(total, unread int) {
	if m == nil {
		return
	}
	m.notificationsTotal.WithLabelValues(m.service).Set(float64(total))
	m.notificationsUnread.WithLabelValues(m.service).Set(float64(unread))
}
