package prommetrics

import (
	"github.com/hupe1980/idtracker"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector implements idtracker.MetricsCollector on top of Prometheus
// metrics. It is also a prometheus.Collector, so it can be registered
// directly:
//
//	c := prommetrics.New("pipeline")
//	prometheus.MustRegister(c)
//	t := idtracker.New(idtracker.WithMetricsCollector(c))
type Collector struct {
	marks          *prometheus.CounterVec
	pops           *prometheus.CounterVec
	blocks         prometheus.Gauge
	blocksAlloc    prometheus.Counter
	blocksReleased prometheus.Counter
}

var (
	_ idtracker.MetricsCollector = (*Collector)(nil)
	_ prometheus.Collector       = (*Collector)(nil)
)

// New creates a Collector whose metric names are prefixed with namespace
// (may be empty) and the "idtracker" subsystem.
func New(namespace string) *Collector {
	return &Collector{
		marks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "idtracker",
			Name:      "marks_total",
			Help:      "Total mark operations",
		}, []string{"result"}),
		pops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "idtracker",
			Name:      "pops_total",
			Help:      "Total pop operations",
		}, []string{"result"}),
		blocks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "idtracker",
			Name:      "blocks",
			Help:      "Currently allocated 65536-id blocks",
		}),
		blocksAlloc: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "idtracker",
			Name:      "blocks_allocated_total",
			Help:      "Total blocks allocated",
		}),
		blocksReleased: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "idtracker",
			Name:      "blocks_released_total",
			Help:      "Total exhausted blocks released",
		}),
	}
}

// RecordMark implements idtracker.MetricsCollector.
func (c *Collector) RecordMark(newlySet bool) {
	result := "new"
	if !newlySet {
		result = "duplicate"
	}
	c.marks.WithLabelValues(result).Inc()
}

// RecordPop implements idtracker.MetricsCollector.
func (c *Collector) RecordPop(found bool) {
	result := "found"
	if !found {
		result = "empty"
	}
	c.pops.WithLabelValues(result).Inc()
}

// RecordBlockAllocated implements idtracker.MetricsCollector.
func (c *Collector) RecordBlockAllocated() {
	c.blocksAlloc.Inc()
	c.blocks.Inc()
}

// RecordBlockReleased implements idtracker.MetricsCollector.
func (c *Collector) RecordBlockReleased() {
	c.blocksReleased.Inc()
	c.blocks.Dec()
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.marks.Describe(ch)
	c.pops.Describe(ch)
	c.blocks.Describe(ch)
	c.blocksAlloc.Describe(ch)
	c.blocksReleased.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.marks.Collect(ch)
	c.pops.Collect(ch)
	c.blocks.Collect(ch)
	c.blocksAlloc.Collect(ch)
	c.blocksReleased.Collect(ch)
}
