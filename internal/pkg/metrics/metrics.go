// Package metrics defines and registers the custom Prometheus metrics of the
// reactions users API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry at package
// initialisation through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "reactions"

// Operation label values.
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
	OpList   = "list"
)

// Result label values.
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// UserOperationsTotal counts completed user operations.
// Labels:
//   - operation: create, update, delete, list
//   - result: "ok", "rejected" (domain error) or "error" (store failure)
var UserOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_operations_total",
		Help:      "Total number of user operations handled by the service layer.",
	},
	[]string{"operation", "result"},
)

// UserOperationRejectionsTotal counts operations refused by a business rule.
// Label:
//   - reason: "username_taken", "username_claimed" or "user_not_found"
var UserOperationRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_operation_rejections_total",
		Help:      "Total number of user operations rejected by a business rule.",
	},
	[]string{"operation", "reason"},
)

// UserOperationDuration measures service-layer latency per operation.
var UserOperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "user_operation_duration_seconds",
		Help:      "Duration of user operations from validation to commit.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// UsersCreatedTotal counts newly created users.
// Label:
//   - role: admin, internal or external
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users created, by role.",
	},
	[]string{"role"},
)
