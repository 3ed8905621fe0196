package monitoring

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Session metrics
	loginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_logins_total",
			Help: "Total number of resolved simulated logins",
		},
		[]string{"role"},
	)

	logoutsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "portal_logouts_total",
			Help: "Total number of logouts",
		},
	)

	activeSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "portal_active_sessions",
			Help: "Number of live portal sessions",
		},
	)

	// Navigation metrics
	navigationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_navigations_total",
			Help: "Total number of screen transitions",
		},
		[]string{"screen"},
	)

	// Chat metrics
	messagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_messages_total",
			Help: "Total number of chat messages appended",
		},
		[]string{"sender"},
	)

	// Appointment metrics
	appointmentRequestsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "portal_appointment_requests_total",
			Help: "Total number of appointment requests submitted",
		},
	)

	refusedOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_refused_operations_total",
			Help: "Total number of refused operations by error code",
		},
		[]string{"code"},
	)
)

var (
	registry     *prometheus.Registry
	registerOnce sync.Once
)

// Registry returns the portal metrics registry, registering all
// collectors on first use. There is no scrape endpoint in this core;
// embedders mount the registry themselves.
func Registry() *prometheus.Registry {
	registerOnce.Do(func() {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			loginsTotal,
			logoutsTotal,
			activeSessions,
			navigationsTotal,
			messagesTotal,
			appointmentRequestsTotal,
			refusedOperationsTotal,
		)
	})
	return registry
}

// RecordLogin records a resolved simulated login
func RecordLogin(role string) {
	Registry()
	loginsTotal.WithLabelValues(role).Inc()
}

// RecordLogout records a logout
func RecordLogout() {
	Registry()
	logoutsTotal.Inc()
}

// SessionStarted increments the live session gauge
func SessionStarted() {
	Registry()
	activeSessions.Inc()
}

// SessionEnded decrements the live session gauge
func SessionEnded() {
	Registry()
	activeSessions.Dec()
}

// RecordNavigation records a screen transition
func RecordNavigation(screen string) {
	Registry()
	navigationsTotal.WithLabelValues(screen).Inc()
}

// RecordMessage records an appended chat message
func RecordMessage(sender string) {
	Registry()
	messagesTotal.WithLabelValues(sender).Inc()
}

// RecordAppointmentRequest records a submitted appointment request
func RecordAppointmentRequest() {
	Registry()
	appointmentRequestsTotal.Inc()
}

// RecordRefusedOperation records a refused operation by error code
func RecordRefusedOperation(code string) {
	Registry()
	refusedOperationsTotal.WithLabelValues(code).Inc()
}
