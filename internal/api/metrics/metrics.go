// Package metrics defines and registers all custom Prometheus metrics for
// the places API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry
// via promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "places"

// PlacesCreatedTotal counts successfully created places.
var PlacesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "created_total",
		Help:      "Total number of places created.",
	},
)

// PlacesDeletedTotal counts successfully deleted places.
var PlacesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deleted_total",
		Help:      "Total number of places deleted.",
	},
)

// AuthFailuresTotal counts rejected requests at the auth middleware.
// Label:
//   - reason: "missing_header", "malformed_header", "invalid_token", "expired"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the auth middleware.",
	},
	[]string{"reason"},
)

// GeocodeRequestsTotal counts upstream geocoding calls.
// Label:
//   - result: "ok" or "error"
var GeocodeRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "geocode_requests_total",
		Help:      "Total number of geocoding lookups, labelled by result.",
	},
	[]string{"result"},
)

// GeocodeDuration measures upstream geocoding latency.
var GeocodeDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "geocode_duration_seconds",
		Help:      "Duration of geocoding lookups.",
		Buckets:   prometheus.DefBuckets,
	},
)
