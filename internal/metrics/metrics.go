package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "parkspot"

var (
	once sync.Once

	ledgerOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_operations_total",
			Help:      "Capacity ledger operations by kind and outcome.",
		},
		[]string{"op", "outcome"},
	)

	slipsIssued = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slips_issued_total",
			Help:      "Count of slips issued by source.",
		},
		[]string{"source"},
	)

	slipsClosed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slips_closed_total",
			Help:      "Count of slips moved to a terminal status.",
		},
		[]string{"status"},
	)

	slipRevenue = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slip_revenue_total",
			Help:      "Sum of revenue recorded on completed slips.",
		},
	)

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Count of bookings created.",
		},
	)

	bookingsClosed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_closed_total",
			Help:      "Count of bookings completed or cancelled.",
		},
		[]string{"status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			ledgerOps, slipsIssued, slipsClosed, slipRevenue,
			bookingsCreated, bookingsClosed, httpDuration,
		)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func IncLedgerOp(op, outcome string) {
	ledgerOps.WithLabelValues(op, outcome).Inc()
}

func IncSlipIssued(source string) {
	slipsIssued.WithLabelValues(source).Inc()
}

func IncSlipClosed(status string) {
	slipsClosed.WithLabelValues(status).Inc()
}

func AddSlipRevenue(v float64) {
	if v > 0 {
		slipRevenue.Add(v)
	}
}

func IncBookingCreated() {
	bookingsCreated.Inc()
}

func IncBookingClosed(status string) {
	bookingsClosed.WithLabelValues(status).Inc()
}

func ObserveHTTP(method, route, status string, d time.Duration) {
	httpDuration.WithLabelValues(method, route, status).Observe(d.Seconds())
}
