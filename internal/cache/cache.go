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

// Package cache provides a namespaced in-memory cache with per-namespace TTL
// policies, bounded capacity, pattern invalidation and hit-rate accounting.
package cache

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/chainquest/vault/internal/system/config"
	"github.com/chainquest/vault/internal/system/log"
)

const loggerComponentName = "NamespacedCache"

// hitStats holds the per-namespace operation counters. Counters are
// incremented synchronously on the operation path, never via events.
type hitStats struct {
	hits    atomic.Int64
	misses  atomic.Int64
	sets    atomic.Int64
	deletes atomic.Int64
	flushes atomic.Int64
}

// namespaceState binds one ExpiringMap to its policy and counters.
type namespaceState struct {
	config  NamespaceConfig
	entries *ExpiringMap[interface{}]
	stats   hitStats
}

// NamespacedCache routes cache operations to the correct namespace and
// maintains per-namespace statistics. It is constructed once per process and
// shared by reference; cache failures are never surfaced to request handling.
type NamespacedCache struct {
	enabled    bool
	namespaces map[string]*namespaceState

	// rlMu serializes read-modify-write cycles on the rateLimits namespace.
	rlMu sync.Mutex

	// loadGroup deduplicates concurrent loads of the same namespace:key.
	loadGroup singleflight.Group

	stopCh   chan struct{}
	sweepWG  sync.WaitGroup
	shutdown atomic.Bool
}

// New creates a NamespacedCache from explicit namespace policies and starts
// one sweep goroutine per namespace.
func New(configs []NamespaceConfig) *NamespacedCache {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	nc := &NamespacedCache{
		enabled:    true,
		namespaces: make(map[string]*namespaceState, len(configs)),
		stopCh:     make(chan struct{}),
	}

	for _, cfg := range configs {
		if cfg.Disabled {
			logger.Debug("Namespace is disabled, skipping", log.String(log.LoggerKeyNamespace, cfg.Name))
			continue
		}
		if cfg.DefaultTTL <= 0 {
			cfg.DefaultTTL = defaultEntryTTL
		}
		if cfg.MaxEntries <= 0 {
			cfg.MaxEntries = defaultMaxEntries
		}
		if cfg.SweepInterval <= 0 {
			cfg.SweepInterval = defaultSweepInterval
		}

		state := &namespaceState{
			config:  cfg,
			entries: NewExpiringMap[interface{}](cfg.DefaultTTL, cfg.MaxEntries),
		}
		nc.namespaces[cfg.Name] = state
		nc.startSweepRoutine(state)
	}

	logger.Debug("Namespaced cache initialized", log.Int("namespaces", len(nc.namespaces)))
	return nc
}

// NewFromConfig creates a NamespacedCache from the deployment configuration,
// overlaying any configured namespace properties on the defaults. A globally
// disabled cache accepts every operation as a no-op.
func NewFromConfig(cacheConfig config.CacheConfig) *NamespacedCache {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if cacheConfig.Disabled {
		logger.Debug("Caching is disabled, returning empty cache")
		return &NamespacedCache{
			enabled:    false,
			namespaces: make(map[string]*namespaceState),
			stopCh:     make(chan struct{}),
		}
	}

	configs := DefaultNamespaceConfigs()
	for i, cfg := range configs {
		prop := getNamespaceProperty(cacheConfig, cfg.Name)
		if prop == nil {
			if cacheConfig.CleanupInterval > 0 {
				configs[i].SweepInterval = time.Duration(cacheConfig.CleanupInterval) * time.Second
			}
			continue
		}
		if prop.Disabled {
			configs[i].Disabled = true
		}
		if prop.TTL > 0 {
			configs[i].DefaultTTL = time.Duration(prop.TTL) * time.Second
		}
		if prop.MaxEntries > 0 {
			configs[i].MaxEntries = prop.MaxEntries
		}
		switch {
		case prop.CleanupInterval > 0:
			configs[i].SweepInterval = time.Duration(prop.CleanupInterval) * time.Second
		case cacheConfig.CleanupInterval > 0:
			configs[i].SweepInterval = time.Duration(cacheConfig.CleanupInterval) * time.Second
		}
	}

	return New(configs)
}

// getNamespaceProperty retrieves the configured property for the named namespace.
func getNamespaceProperty(cacheConfig config.CacheConfig, name string) *config.NamespaceProperty {
	for i, property := range cacheConfig.Namespaces {
		if property.Name == name {
			return &cacheConfig.Namespaces[i]
		}
	}
	return nil
}

// namespace resolves the state for the named namespace. Unknown names are
// logged at warning level and reported as absent; this is the
// invalid-namespace path and must stay non-fatal to callers.
func (nc *NamespacedCache) namespace(name string) (*namespaceState, bool) {
	state, exists := nc.namespaces[name]
	if !exists {
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)).
			Warn("Operation on unknown cache namespace",
				log.String(log.LoggerKeyNamespace, name), log.Error(ErrInvalidNamespace))
		return nil, false
	}
	return state, true
}

// IsEnabled returns whether the cache is accepting operations.
func (nc *NamespacedCache) IsEnabled() bool {
	return nc.enabled && !nc.shutdown.Load()
}

// Get retrieves a value from the named namespace. Expired entries are treated
// as absent and counted as misses.
func (nc *NamespacedCache) Get(namespace, key string) (interface{}, bool) {
	if !nc.IsEnabled() {
		return nil, false
	}

	state, ok := nc.namespace(namespace)
	if !ok {
		return nil, false
	}

	value, found := state.entries.Get(key)
	if !found {
		state.stats.misses.Add(1)
		return nil, false
	}

	state.stats.hits.Add(1)
	return value, true
}

// Set stores a value in the named namespace. A zero ttl applies the namespace
// default. Returns false for an unknown namespace or a full namespace
// rejecting a new key; callers decide whether to proceed without caching.
func (nc *NamespacedCache) Set(namespace, key string, value interface{}, ttl time.Duration) bool {
	if !nc.IsEnabled() {
		return false
	}

	state, ok := nc.namespace(namespace)
	if !ok {
		return false
	}

	if !state.entries.Set(key, value, ttl) {
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)).
			Warn("Cache namespace at capacity, rejecting new key",
				log.String(log.LoggerKeyNamespace, namespace),
				log.String(log.LoggerKeyCacheKey, key), log.Error(ErrCapacityExceeded))
		return false
	}

	state.stats.sets.Add(1)
	return true
}

// Delete removes a key from the named namespace and returns the number of
// entries removed.
func (nc *NamespacedCache) Delete(namespace, key string) int {
	if !nc.IsEnabled() {
		return 0
	}

	state, ok := nc.namespace(namespace)
	if !ok {
		return 0
	}

	removed := state.entries.Delete(key)
	if removed > 0 {
		state.stats.deletes.Add(int64(removed))
	}
	return removed
}

// InvalidatePattern deletes every key in the namespace containing substring
// and returns the number removed. Matching is plain substring containment:
// unrelated keys sharing a substring are evicted together, so callers must
// compose keys that keep patterns distinct.
func (nc *NamespacedCache) InvalidatePattern(namespace, substring string) int {
	if !nc.IsEnabled() {
		return 0
	}

	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String(log.LoggerKeyNamespace, namespace))

	state, ok := nc.namespace(namespace)
	if !ok {
		return 0
	}

	removed := 0
	for _, key := range state.entries.Keys() {
		if strings.Contains(key, substring) {
			removed += state.entries.Delete(key)
		}
	}
	if removed > 0 {
		state.stats.deletes.Add(int64(removed))
	}

	logger.Debug("Invalidated keys by pattern", log.String("pattern", substring), log.Int("removed", removed))
	return removed
}

// InvalidateNamespace flushes every entry in the named namespace.
func (nc *NamespacedCache) InvalidateNamespace(namespace string) {
	if !nc.IsEnabled() {
		return
	}

	state, ok := nc.namespace(namespace)
	if !ok {
		return
	}

	state.entries.FlushAll()
	state.stats.flushes.Add(1)

	log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)).
		Debug("Flushed cache namespace", log.String(log.LoggerKeyNamespace, namespace))
}

// GetStats returns the per-namespace statistics. The hit rate is formatted as
// a percentage and reported as 0.00% before any lookup.
func (nc *NamespacedCache) GetStats() map[string]NamespaceStats {
	stats := make(map[string]NamespaceStats, len(nc.namespaces))
	for name, state := range nc.namespaces {
		stats[name] = snapshotStats(state)
	}
	return stats
}

// snapshotStats captures one namespace's counters into a NamespaceStats.
func snapshotStats(state *namespaceState) NamespaceStats {
	hits := state.stats.hits.Load()
	misses := state.stats.misses.Load()

	hitRate := "0.00%"
	if lookups := hits + misses; lookups > 0 {
		hitRate = fmt.Sprintf("%.2f%%", float64(hits)/float64(lookups)*100)
	}

	return NamespaceStats{
		KeyCount: state.entries.Len(),
		Hits:     hits,
		Misses:   misses,
		Sets:     state.stats.sets.Load(),
		Deletes:  state.stats.deletes.Load(),
		Flushes:  state.stats.flushes.Load(),
		HitRate:  hitRate,
	}
}

// HealthCheck reports the cache's liveness. The status is healthy whenever the
// namespaces can be enumerated; it does not validate a get/set round-trip.
func (nc *NamespacedCache) HealthCheck() HealthStatus {
	return HealthStatus{
		Status:         "healthy",
		Timestamp:      time.Now(),
		NamespaceCount: len(nc.namespaces),
		Stats:          nc.GetStats(),
		MemoryEstimate: nc.estimateMemory(),
	}
}

// estimateMemory returns a rough byte estimate: key bytes plus a fixed
// per-entry overhead. Values are not sized.
func (nc *NamespacedCache) estimateMemory() int64 {
	const perEntryOverhead = 64

	var total int64
	for _, state := range nc.namespaces {
		total += state.entries.keyBytes()
		total += int64(state.entries.Len()) * perEntryOverhead
	}
	return total
}

// Namespaces returns the names of the configured namespaces.
func (nc *NamespacedCache) Namespaces() []string {
	names := make([]string, 0, len(nc.namespaces))
	for name := range nc.namespaces {
		names = append(names, name)
	}
	return names
}

// startSweepRoutine starts the background routine that actively removes
// expired entries from one namespace.
func (nc *NamespacedCache) startSweepRoutine(state *namespaceState) {
	nc.sweepWG.Add(1)
	go func() {
		defer nc.sweepWG.Done()

		ticker := time.NewTicker(state.config.SweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				cleaned := state.entries.CleanupExpired()
				if cleaned > 0 {
					log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)).
						Debug("Swept expired cache entries",
							log.String(log.LoggerKeyNamespace, state.config.Name), log.Int("count", cleaned))
				}
			case <-nc.stopCh:
				return
			}
		}
	}()
}

// Shutdown stops all sweep goroutines and releases every namespace's entries.
// Safe to call more than once. Callers are responsible for draining in-flight
// request handling before shutting down.
func (nc *NamespacedCache) Shutdown() {
	if !nc.shutdown.CompareAndSwap(false, true) {
		return
	}

	close(nc.stopCh)
	nc.sweepWG.Wait()

	for _, state := range nc.namespaces {
		state.entries.FlushAll()
	}

	log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)).
		Debug("Namespaced cache shut down")
}
