package handler

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// Stats tracks handler statistics
type Stats struct {
	// ProcessedTotal counts entries written successfully
	ProcessedTotal uint64
	// FailedTotal counts entries whose write returned an error
	FailedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// Record counts one write outcome.
func (s *Stats) Record(err error) {
	if err != nil {
		atomic.AddUint64(&s.FailedTotal, 1)
		return
	}
	atomic.AddUint64(&s.ProcessedTotal, 1)
}

// GetProcessed returns the processed count
func (s *Stats) GetProcessed() uint64 {
	return atomic.LoadUint64(&s.ProcessedTotal)
}

// GetFailed returns the failed count
func (s *Stats) GetFailed() uint64 {
	return atomic.LoadUint64(&s.FailedTotal)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.ProcessedTotal, 0)
	atomic.StoreUint64(&s.FailedTotal, 0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	ProcessedTotal uint64
	FailedTotal    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		ProcessedTotal: s.GetProcessed(),
		FailedTotal:    s.GetFailed(),
	}
}

// statsCollector exports a StatsProvider as Prometheus counters.
type statsCollector struct {
	provider  StatsProvider
	processed *prometheus.Desc
	failed    *prometheus.Desc
}

// NewStatsCollector returns a prometheus.Collector reporting the write
// counters of p. The target label distinguishes several handlers
// registered with the same registry.
func NewStatsCollector(target string, p StatsProvider) prometheus.Collector {
	labels := prometheus.Labels{"target": target}
	return &statsCollector{
		provider: p,
		processed: prometheus.NewDesc(
			"logfacade_handler_processed_total",
			"Log entries written by the output target.",
			nil, labels,
		),
		failed: prometheus.NewDesc(
			"logfacade_handler_failed_total",
			"Log entries the output target failed to write.",
			nil, labels,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *statsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.processed
	ch <- c.failed
}

// Collect implements prometheus.Collector.
func (c *statsCollector) Collect(ch chan<- prometheus.Metric) {
	snap := c.provider.Stats()
	ch <- prometheus.MustNewConstMetric(c.processed, prometheus.CounterValue, float64(snap.ProcessedTotal))
	ch <- prometheus.MustNewConstMetric(c.failed, prometheus.CounterValue, float64(snap.FailedTotal))
}
