package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Result labels shared by the counters below
const (
	ResultSuccess  = "success"
	ResultError    = "error"
	ResultInvalid  = "invalid"
	ResultNotFound = "not_found"
	ResultMatch    = "match"
	ResultMismatch = "mismatch"
	ResultLimited  = "limited"
)

// Metrics records assignment board activity. A nil *Metrics is valid and records nothing.
type Metrics struct {
	moves           *prometheus.CounterVec
	pinChecks       *prometheus.CounterVec
	fetches         *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New registers the board metrics on the provided registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return &Metrics{}
	}
	moves := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "technician_board",
		Name:      "moves_total",
		Help:      "Technician move requests by result.",
	}, []string{"result"})
	pinChecks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "technician_board",
		Name:      "pin_checks_total",
		Help:      "PIN verification attempts by result.",
	}, []string{"result"})
	fetches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "technician_board",
		Name:      "assignment_fetches_total",
		Help:      "Aggregated assignment fetches by result.",
	}, []string{"result"})
	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "technician_board",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route, method and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method", "status"})
	reg.MustRegister(moves, pinChecks, fetches, requestDuration)
	return &Metrics{
		moves:           moves,
		pinChecks:       pinChecks,
		fetches:         fetches,
		requestDuration: requestDuration,
	}
}

// ObserveMove counts a move request outcome.
func (m *Metrics) ObserveMove(result string) {
	if m == nil || m.moves == nil {
		return
	}
	m.moves.WithLabelValues(result).Inc()
}

// ObservePinCheck counts a PIN verification outcome.
func (m *Metrics) ObservePinCheck(result string) {
	if m == nil || m.pinChecks == nil {
		return
	}
	m.pinChecks.WithLabelValues(result).Inc()
}

// ObserveFetch counts an assignments fetch outcome.
func (m *Metrics) ObserveFetch(result string) {
	if m == nil || m.fetches == nil {
		return
	}
	m.fetches.WithLabelValues(result).Inc()
}

// ObserveRequest records HTTP request latency.
func (m *Metrics) ObserveRequest(route, method string, status int, duration time.Duration) {
	if m == nil || m.requestDuration == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.requestDuration.WithLabelValues(route, method, strconv.Itoa(status)).Observe(duration.Seconds())
}
