// Package metrics exposes the site's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PageViews counts page renders per route path.
var PageViews = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "lumen",
	Subsystem: "site",
	Name:      "page_views_total",
	Help:      "Number of pages rendered, labeled by route path.",
}, []string{"path"})
