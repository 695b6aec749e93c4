package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	checkoutProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shop_service",
			Subsystem: "checkout_consumer",
			Name:      "orders_processed_total",
			Help:      "Total number of checkout events turned into orders",
		},
	)

	checkoutFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shop_service",
			Subsystem: "checkout_consumer",
			Name:      "orders_failed_total",
			Help:      "Total number of checkout events that could not be processed",
		},
	)

	checkoutDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shop_service",
			Subsystem: "checkout_consumer",
			Name:      "orders_dlq_total",
			Help:      "Total number of checkout events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shop_service",
			Subsystem: "checkout_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	checkoutDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "shop_service",
			Subsystem: "checkout_consumer",
			Name:      "processing_duration_seconds",
			Help:      "Histogram of checkout event processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

var (
	ordersCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shop_service",
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Total number of created orders by source",
		},
		[]string{"source"},
	)

	orderStatusUpdates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shop_service",
			Subsystem: "orders",
			Name:      "status_updates_total",
			Help:      "Total number of order status updates by new status",
		},
		[]string{"status"},
	)

	wishlistMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shop_service",
			Subsystem: "wishlist",
			Name:      "mutations_total",
			Help:      "Total number of wishlist mutations by surface and operation",
		},
		[]string{"surface", "op"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		checkoutProcessed,
		checkoutFailed,
		checkoutDLQ,
		commitErrors,
		checkoutDuration,

		ordersCreated,
		orderStatusUpdates,
		wishlistMutations,
	)
}
