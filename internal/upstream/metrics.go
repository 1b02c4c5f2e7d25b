package upstream

import "github.com/prometheus/client_golang/prometheus"

var pagesFetched = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "upstream_pages_fetched_total",
		Help: "How many upstream pages were fetched successfully, partitioned by endpoint.",
	},
	[]string{"endpoint"},
)

var fetchErrors = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "upstream_fetch_errors_total",
		Help: "How many upstream requests failed, partitioned by endpoint.",
	},
	[]string{"endpoint"},
)

var pageCapReached = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "upstream_page_cap_reached_total",
		Help: "How often paginated retrieval was soft-stopped at the page cap.",
	},
)

// Metrics returns the collectors of this package for registration
// with a Prometheus registry.
func Metrics() []prometheus.Collector {
	return []prometheus.Collector{pagesFetched, fetchErrors, pageCapReached}
}
