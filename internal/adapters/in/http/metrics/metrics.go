// Package metrics defines and registers the custom Prometheus metrics for
// the orders API. It is the single source of truth for metric names and help
// strings; counters register with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "orders"

// UsersCreatedTotal counts successfully registered users.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users successfully created.",
	},
)

// OrdersCreatedTotal counts successfully placed orders.
var OrdersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders successfully created.",
	},
)

// OrdersCompletedTotal counts orders transitioned to completed, whether via
// the complete endpoint or a status update.
var OrdersCompletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_completed_total",
		Help:      "Total number of orders transitioned to completed.",
	},
)

// OrdersCancelledTotal counts orders transitioned to cancelled.
var OrdersCancelledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_cancelled_total",
		Help:      "Total number of orders transitioned to cancelled.",
	},
)
