// Package metrics exposes filter sizing and occupancy to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	FilterLabel string = "filter"

	WidthMetric           string = "bloom_filter_width_bits"
	HashCountMetric       string = "bloom_filter_hash_functions"
	ItemsMetric           string = "bloom_filter_inserted_items_total"
	SetBitsMetric         string = "bloom_filter_set_bits"
	FillRatioMetric       string = "bloom_filter_fill_ratio"
	EstimatedFPRMetric    string = "bloom_filter_estimated_false_positive_rate"
	ObservedFPRMetric     string = "bloom_bench_false_positive_rate"
	InsertLatencyMetric   string = "bloom_bench_insert_ns_per_op"
	ContainsLatencyMetric string = "bloom_bench_contains_ns_per_op"
)

// Stats is the read-only view of a filter the collector reports on.
type Stats interface {
	Width() uint64
	HashCount() uint8
	ItemCount() uint64
	SetBits() uint64
	FillRatio() float64
	EstimatedFalsePositiveRate() float64
}

// Collector reads its values from the filter at scrape time.
// Scrapes must be serialized with Insert by the caller.
type Collector struct {
	name  string
	stats Stats

	width     *prometheus.Desc
	hashCount *prometheus.Desc
	items     *prometheus.Desc
	setBits   *prometheus.Desc
	fill      *prometheus.Desc
	estFPR    *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

func NewCollector(name string, stats Stats) *Collector {
	labels := []string{FilterLabel}
	return &Collector{
		name:      name,
		stats:     stats,
		width:     prometheus.NewDesc(WidthMetric, "Number of bits in the filter.", labels, nil),
		hashCount: prometheus.NewDesc(HashCountMetric, "Hash evaluations per operation.", labels, nil),
		items:     prometheus.NewDesc(ItemsMetric, "Insert calls, duplicates included.", labels, nil),
		setBits:   prometheus.NewDesc(SetBitsMetric, "Bits currently set.", labels, nil),
		fill:      prometheus.NewDesc(FillRatioMetric, "Fraction of bits set.", labels, nil),
		estFPR:    prometheus.NewDesc(EstimatedFPRMetric, "False positive rate estimated from the inserted count.", labels, nil),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.width
	ch <- c.hashCount
	ch <- c.items
	ch <- c.setBits
	ch <- c.fill
	ch <- c.estFPR
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.width, prometheus.GaugeValue, float64(c.stats.Width()), c.name)
	ch <- prometheus.MustNewConstMetric(c.hashCount, prometheus.GaugeValue, float64(c.stats.HashCount()), c.name)
	ch <- prometheus.MustNewConstMetric(c.items, prometheus.CounterValue, float64(c.stats.ItemCount()), c.name)
	ch <- prometheus.MustNewConstMetric(c.setBits, prometheus.GaugeValue, float64(c.stats.SetBits()), c.name)
	ch <- prometheus.MustNewConstMetric(c.fill, prometheus.GaugeValue, c.stats.FillRatio(), c.name)
	ch <- prometheus.MustNewConstMetric(c.estFPR, prometheus.GaugeValue, c.stats.EstimatedFalsePositiveRate(), c.name)
}

// RunGauges hold the measured outcome of benchmark runs, one series per filter name.
type RunGauges struct {
	fpr      *prometheus.GaugeVec
	insert   *prometheus.GaugeVec
	contains *prometheus.GaugeVec
}

func NewRunGauges(reg prometheus.Registerer) *RunGauges {
	labels := []string{FilterLabel}
	g := &RunGauges{
		fpr: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: ObservedFPRMetric,
			Help: "False positive rate observed over never-inserted items.",
		}, labels),
		insert: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: InsertLatencyMetric,
			Help: "Mean Insert latency in nanoseconds.",
		}, labels),
		contains: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: ContainsLatencyMetric,
			Help: "Mean Contains latency in nanoseconds.",
		}, labels),
	}
	reg.MustRegister(g.fpr, g.insert, g.contains)
	return g
}

func (g *RunGauges) Observe(name string, fpr, insertNsOp, containsNsOp float64) {
	g.fpr.WithLabelValues(name).Set(fpr)
	g.insert.WithLabelValues(name).Set(insertNsOp)
	g.contains.WithLabelValues(name).Set(containsNsOp)
}
