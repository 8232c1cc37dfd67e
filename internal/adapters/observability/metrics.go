package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotel", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hotel", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	Bookings = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotel", Name: "bookings_total", Help: "Rooms booked."},
		[]string{"room_type"},
	)
	Revenue = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "hotel", Name: "billed_amount_total", Help: "Sum of invoice totals."},
	)
	Sessions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotel", Name: "sessions_total", Help: "Booking sessions by outcome."},
		[]string{"outcome"}, // completed|input_error|unexpected_error
	)
	StepLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hotel", Name: "session_step_duration_seconds",
			Help: "Time spent in each booking step, prompts included.",
			// steps wait on a human, so buckets run from a second to ten minutes
			Buckets: prometheus.ExponentialBuckets(1, 2.5, 8),
		},
		[]string{"step"},
	)
)

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, Bookings, Revenue, Sessions, StepLatency)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

// Recorder feeds booking session events into the collectors above.
type Recorder struct{}

func (Recorder) Booked(roomType string) { Bookings.WithLabelValues(roomType).Inc() }
func (Recorder) Billed(amount int64)    { Revenue.Add(float64(amount)) }
func (Recorder) Outcome(outcome string) { Sessions.WithLabelValues(outcome).Inc() }

func (Recorder) Step(name string, d time.Duration) {
	StepLatency.WithLabelValues(name).Observe(d.Seconds())
}
