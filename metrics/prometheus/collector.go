// Package prometheus adapts fragsearch.MetricsCollector to Prometheus
// collectors, so an Index's operational metrics can be scraped alongside
// the rest of a service's metrics.
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	fragsearch "github.com/rawwwulea/QuickSearch"
)

var _ fragsearch.MetricsCollector = (*Collector)(nil)

// Collector implements fragsearch.MetricsCollector using
// prometheus/client_golang counters and histograms.
type Collector struct {
	registerTotal    prometheus.Counter
	registerDuration prometheus.Histogram
	deregisterTotal  *prometheus.CounterVec
	findTotal        prometheus.Counter
	findEmptyTotal   prometheus.Counter
	findDuration     prometheus.Histogram
	findResultsCount prometheus.Histogram
}

// New creates a Collector with all of its metrics pre-registered against
// reg. Pass prometheus.DefaultRegisterer to publish on the default
// registry.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		registerTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fragsearch_register_total",
			Help: "Total number of AddItem/AddItemKeywords calls.",
		}),
		registerDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fragsearch_register_duration_seconds",
			Help:    "AddItem/AddItemKeywords latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		deregisterTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fragsearch_deregister_total",
			Help: "Total number of RemoveItem calls, labeled by outcome.",
		}, []string{"outcome"}),
		findTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fragsearch_find_total",
			Help: "Total number of Find/FindItems/FindAugmented calls.",
		}),
		findEmptyTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fragsearch_find_empty_total",
			Help: "Total number of find calls that returned zero results.",
		}),
		findDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fragsearch_find_duration_seconds",
			Help:    "Find latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		findResultsCount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fragsearch_find_results_count",
			Help:    "Number of results returned per find call.",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),
	}

	reg.MustRegister(
		c.registerTotal,
		c.registerDuration,
		c.deregisterTotal,
		c.findTotal,
		c.findEmptyTotal,
		c.findDuration,
		c.findResultsCount,
	)

	return c
}

// RecordRegister implements fragsearch.MetricsCollector.
func (c *Collector) RecordRegister(duration time.Duration, keywordCount int) {
	c.registerTotal.Inc()
	c.registerDuration.Observe(duration.Seconds())
}

// RecordDeregister implements fragsearch.MetricsCollector.
func (c *Collector) RecordDeregister(duration time.Duration, removed bool) {
	outcome := "removed"
	if !removed {
		outcome = "not_found"
	}
	c.deregisterTotal.WithLabelValues(outcome).Inc()
}

// RecordFind implements fragsearch.MetricsCollector.
func (c *Collector) RecordFind(duration time.Duration, queryKeywordCount, resultsFound int) {
	c.findTotal.Inc()
	c.findDuration.Observe(duration.Seconds())
	c.findResultsCount.Observe(float64(resultsFound))
	if resultsFound == 0 {
		c.findEmptyTotal.Inc()
	}
}
