// Package metrics defines and registers all custom Prometheus metrics
// for the construction API. It is the single source of truth for metric
// names, labels, and help strings; HTTP-level request metrics come from
// the echoprometheus middleware and are not duplicated here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fieldops"

// RecordsCreatedTotal counts records persisted through Create.
// Label:
//   - resource: the entity collection ("projects", "users", ...)
var RecordsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_created_total",
		Help:      "Total number of records created, by resource.",
	},
	[]string{"resource"},
)

// ValidationFailuresTotal counts field violations that rejected a write.
// Labels:
//   - resource: the entity collection
//   - field: the violating field name
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of field-level validation failures, by resource and field.",
	},
	[]string{"resource", "field"},
)

// StoreErrorsTotal counts store-level failures (conflicts, connectivity),
// excluding plain not-found and malformed-id outcomes.
// Labels:
//   - resource: the entity collection
//   - operation: "insert", "find", "list", "replace", "delete"
var StoreErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_errors_total",
		Help:      "Total number of backing-store errors, by resource and operation.",
	},
	[]string{"resource", "operation"},
)
