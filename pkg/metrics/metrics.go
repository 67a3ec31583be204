package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-коллекторов сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec
	DBWaitCount        *prometheus.GaugeVec

	ReservationsRecorded *prometheus.CounterVec
	MergeConflicts       *prometheus.CounterVec
	RemindersPublished   *prometheus.CounterVec
}

// New создает и регистрирует коллекторы в DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает коллекторы и регистрирует их в переданном registerer
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "status"}),
		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}, []string{}),
		DBInUseConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{}),
		DBIdleConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{}),
		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{}),

		ReservationsRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservations_recorded_total",
			Help:        "Reservations merged into day aggregates",
			ConstLabels: constLabels,
		}, []string{"write"}),
		MergeConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservation_merge_conflicts_total",
			Help:        "Optimistic concurrency conflicts while merging day aggregates",
			ConstLabels: constLabels,
		}, []string{"kind"}),
		RemindersPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reminders_published_total",
			Help:        "Remind messages published to the broker",
			ConstLabels: constLabels,
		}, []string{"status"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.ReservationsRecorded,
		m.MergeConflicts,
		m.RemindersPublished,
	)

	return m
}

// RecordReservation фиксирует запись в агрегат дня (insert или update)
func (m *Metrics) RecordReservation(write string) {
	if m == nil {
		return
	}
	m.ReservationsRecorded.WithLabelValues(write).Inc()
}

// RecordMergeConflict фиксирует конфликт при слиянии агрегата
func (m *Metrics) RecordMergeConflict(kind string) {
	if m == nil {
		return
	}
	m.MergeConflicts.WithLabelValues(kind).Inc()
}

// RecordReminder фиксирует результат публикации напоминания
func (m *Metrics) RecordReminder(status string) {
	if m == nil {
		return
	}
	m.RemindersPublished.WithLabelValues(status).Inc()
}
