package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters and gauges for the catalog, filter engine, and favorites paths.
// Registered on the default registry; exposed via promhttp on the admin
// listener.
var (
	CatalogLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "city_events",
		Name:      "catalog_loads_total",
		Help:      "Catalog load attempts by city and outcome",
	}, []string{"city", "outcome"})

	CatalogStaleDrops = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "city_events",
		Name:      "catalog_stale_loads_dropped_total",
		Help:      "Catalog load results discarded because the city changed mid-flight",
	})

	CatalogSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "city_events",
		Name:      "catalog_events",
		Help:      "Events currently held for a city after normalization",
	}, []string{"city"})

	DataQualityExclusions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "city_events",
		Name:      "catalog_data_quality_exclusions_total",
		Help:      "Events excluded from the catalog due to malformed numeric fields",
	}, []string{"city", "field"})

	FilterEvaluations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "city_events",
		Name:      "filter_evaluations_total",
		Help:      "Filter engine evaluations",
	})

	FavoriteToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "city_events",
		Name:      "favorite_toggles_total",
		Help:      "Favorite toggle operations by action and outcome",
	}, []string{"action", "outcome"})
)
