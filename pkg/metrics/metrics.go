package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// lease check latency - histogram to track p50/p90/p99
	// a check is one store read plus the expired record cleanup
	LockCheckDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "zapdine_lock_check_duration_seconds",
			Help:    "time taken to check a table lock",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12), // 100us to 200ms
		},
	)

	// lease acquisition counter - counts successes vs tables already in use
	// labels: status (success/locked)
	LeaseAcquireTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zapdine_lease_acquire_total",
			Help: "total number of lease acquisitions",
		},
		[]string{"status"},
	)

	// lease release counter - bills, expiries and manual unlocks
	LeaseReleaseTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "zapdine_lease_release_total",
			Help: "total number of lease releases",
		},
	)

	// lease extension counter
	// labels: status (success/missing)
	LeaseExtendTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zapdine_lease_extend_total",
			Help: "total number of lease extensions",
		},
		[]string{"status"},
	)

	// expired records found and removed by a lock check or the sweeper
	LeaseExpireTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "zapdine_lease_expire_total",
			Help: "total number of expired leases removed",
		},
	)

	// swallowed store failures, these never reach customers
	// labels: store (bolt/memory/redis), op (get/put/remove/decode/encode/list)
	StoreErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zapdine_store_errors_total",
			Help: "total number of lease store failures treated as no-ops",
		},
		[]string{"store", "op"},
	)

	// open ordering pages - gauge shows pages currently held in memory
	PagesActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "zapdine_pages_active",
			Help: "current number of open ordering pages",
		},
	)

	// ended ordering sessions
	// labels: reason (expired/billed)
	SessionEndTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zapdine_session_end_total",
			Help: "total number of ordering sessions ended",
		},
		[]string{"reason"},
	)

	// countdowns that reached zero
	CountdownExpireTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "zapdine_countdown_expire_total",
			Help: "total number of session countdowns that ran out",
		},
	)

	// order placement counter
	// labels: status (success/failure)
	OrdersPlacedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zapdine_orders_placed_total",
			Help: "total number of orders placed from ordering pages",
		},
		[]string{"status"},
	)

	// sweeper runs, removals are counted in LeaseExpireTotal
	SweepRunsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "zapdine_sweep_runs_total",
			Help: "total number of expired lease sweeps",
		},
	)

	// lifecycle events handed to the publisher
	// labels: status (success/failure/dropped)
	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zapdine_events_published_total",
			Help: "total number of lease lifecycle events published",
		},
		[]string{"status"},
	)

	// rpc latency by method and status code
	RPCDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "zapdine_rpc_duration_seconds",
			Help:    "time taken to serve a gRPC call",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10), // 1ms to 512ms
		},
		[]string{"method", "code"},
	)

	// service uptime - always 1 when running
	Up = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "zapdine_up",
			Help: "whether the service is up (always 1 when running)",
		},
	)
)

func init() {
	// set uptime gauge to 1 on startup
	Up.Set(1)
}
