package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	admissions          *prometheus.CounterVec
	rejections          *prometheus.CounterVec
	leaseJobs           *prometheus.CounterVec
	leaseEvents         *prometheus.CounterVec
	janitorRuns         *prometheus.CounterVec
	janitorReservations *prometheus.CounterVec
	httpDuration        *prometheus.HistogramVec
}

func NewPrometheusMetrics(registerer prometheus.Registerer) *PrometheusMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &PrometheusMetrics{
		admissions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reservation_admissions_total",
				Help: "Reservation admission decisions",
			},
			[]string{"result"},
		),
		rejections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reservation_rejections_total",
				Help: "Reservation rejections by reason",
			},
			[]string{"reason"},
		),
		leaseJobs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lease_jobs_processed_total",
				Help: "Lease jobs processed by the worker",
			},
			[]string{"kind", "outcome"},
		),
		leaseEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lease_events_total",
				Help: "Lease provider events applied to reservations",
			},
			[]string{"event", "outcome"},
		),
		janitorRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "janitor_runs_total",
				Help: "Periodic job runs",
			},
			[]string{"job", "outcome"},
		),
		janitorReservations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "janitor_reservations_total",
				Help: "Reservations touched by periodic jobs",
			},
			[]string{"job", "action"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "route", "status"},
		),
	}
}

func (m *PrometheusMetrics) ObserveAdmission(result string) {
	m.admissions.WithLabelValues(result).Inc()
}

func (m *PrometheusMetrics) ObserveRejection(reason string) {
	m.rejections.WithLabelValues(reason).Inc()
}

func (m *PrometheusMetrics) ObserveLeaseJob(kind, outcome string) {
	m.leaseJobs.WithLabelValues(kind, outcome).Inc()
}

func (m *PrometheusMetrics) ObserveLeaseEvent(event, outcome string) {
	m.leaseEvents.WithLabelValues(event, outcome).Inc()
}

func (m *PrometheusMetrics) ObserveJanitorRun(job, outcome string) {
	m.janitorRuns.WithLabelValues(job, outcome).Inc()
}

func (m *PrometheusMetrics) AddJanitorReservations(job, action string, n int) {
	if n <= 0 {
		return
	}
	m.janitorReservations.WithLabelValues(job, action).Add(float64(n))
}

func (m *PrometheusMetrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}
