/*
 * Copyright (c) 2025, ChainQuest Labs.
 *
 * ChainQuest Labs licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/chainquest/vault/internal/cache"
)

var (
	cacheKeysDesc = prometheus.NewDesc(
		"vault_cache_keys",
		"Number of live keys per cache namespace",
		[]string{"namespace"}, nil,
	)
	cacheHitsDesc = prometheus.NewDesc(
		"vault_cache_hits_total",
		"Total number of cache hits per namespace",
		[]string{"namespace"}, nil,
	)
	cacheMissesDesc = prometheus.NewDesc(
		"vault_cache_misses_total",
		"Total number of cache misses per namespace",
		[]string{"namespace"}, nil,
	)
	cacheSetsDesc = prometheus.NewDesc(
		"vault_cache_sets_total",
		"Total number of cache writes per namespace",
		[]string{"namespace"}, nil,
	)
	cacheDeletesDesc = prometheus.NewDesc(
		"vault_cache_deletes_total",
		"Total number of cache deletions per namespace",
		[]string{"namespace"}, nil,
	)
	cacheFlushesDesc = prometheus.NewDesc(
		"vault_cache_flushes_total",
		"Total number of cache namespace flushes",
		[]string{"namespace"}, nil,
	)
)

// CacheCollector exposes cache statistics as Prometheus metrics.
type CacheCollector struct {
	cache *cache.NamespacedCache
}

// NewCacheCollector creates a new CacheCollector for the given cache.
func NewCacheCollector(namespacedCache *cache.NamespacedCache) *CacheCollector {
	return &CacheCollector{cache: namespacedCache}
}

// Describe implements prometheus.Collector.
func (c *CacheCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- cacheKeysDesc
	ch <- cacheHitsDesc
	ch <- cacheMissesDesc
	ch <- cacheSetsDesc
	ch <- cacheDeletesDesc
	ch <- cacheFlushesDesc
}

// Collect implements prometheus.Collector.
func (c *CacheCollector) Collect(ch chan<- prometheus.Metric) {
	for namespace, stats := range c.cache.GetStats() {
		ch <- prometheus.MustNewConstMetric(cacheKeysDesc, prometheus.GaugeValue,
			float64(stats.KeyCount), namespace)
		ch <- prometheus.MustNewConstMetric(cacheHitsDesc, prometheus.CounterValue,
			float64(stats.Hits), namespace)
		ch <- prometheus.MustNewConstMetric(cacheMissesDesc, prometheus.CounterValue,
			float64(stats.Misses), namespace)
		ch <- prometheus.MustNewConstMetric(cacheSetsDesc, prometheus.CounterValue,
			float64(stats.Sets), namespace)
		ch <- prometheus.MustNewConstMetric(cacheDeletesDesc, prometheus.CounterValue,
			float64(stats.Deletes), namespace)
		ch <- prometheus.MustNewConstMetric(cacheFlushesDesc, prometheus.CounterValue,
			float64(stats.Flushes), namespace)
	}
}
