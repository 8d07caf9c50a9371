// Package metrics exports agedcache statistics to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bjaus/agedcache"
)

const namespace = "agedcache"

// Source is the part of a cache the collector reads.
// Any *agedcache.Cache satisfies it.
type Source interface {
	Stats() agedcache.Snapshot
	Size() int
}

// Collector implements prometheus.Collector for a single cache.
type Collector struct {
	src Source

	hits         *prometheus.Desc
	misses       *prometheus.Desc
	expirations  *prometheus.Desc
	replacements *prometheus.Desc
	entries      *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a collector for src, labelled with cache=name.
func NewCollector(name string, src Source) *Collector {
	labels := prometheus.Labels{"cache": name}
	desc := func(metric, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "", metric), help, nil, labels)
	}

	return &Collector{
		src:          src,
		hits:         desc("hits_total", "The total number of cache hits"),
		misses:       desc("misses_total", "The total number of cache misses"),
		expirations:  desc("expirations_total", "The total number of entries removed by expiration"),
		replacements: desc("replacements_total", "The total number of entries replaced by a later put"),
		entries:      desc("entries", "The number of unexpired entries in the cache"),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.expirations
	ch <- c.replacements
	ch <- c.entries
}

// Collect implements prometheus.Collector. Reading the entry count purges
// expired entries from the cache.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	size := c.src.Size()
	s := c.src.Stats()

	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(s.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(s.Misses))
	ch <- prometheus.MustNewConstMetric(c.expirations, prometheus.CounterValue, float64(s.Expirations))
	ch <- prometheus.MustNewConstMetric(c.replacements, prometheus.CounterValue, float64(s.Replacements))
	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(size))
}
