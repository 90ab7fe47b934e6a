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

package cache

import (
	"sync"
	"time"
)

// cacheEntry holds a single value together with its absolute expiry time.
type cacheEntry[T any] struct {
	value     T
	expiresAt time.Time
}

// ExpiringMap is a bounded map of string keys to values with per-entry absolute
// expiry. Entries are removed lazily on lookup and actively by CleanupExpired.
// Inserting a new key into a full map is rejected rather than evicting.
type ExpiringMap[T any] struct {
	mu         sync.RWMutex
	entries    map[string]cacheEntry[T]
	defaultTTL time.Duration
	maxEntries int
	now        func() time.Time
}

// NewExpiringMap creates a new ExpiringMap with the given default TTL
// and entry capacity.
func NewExpiringMap[T any](defaultTTL time.Duration, maxEntries int) *ExpiringMap[T] {
	if defaultTTL <= 0 {
		defaultTTL = defaultEntryTTL
	}
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	return &ExpiringMap[T]{
		entries:    make(map[string]cacheEntry[T]),
		defaultTTL: defaultTTL,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Set inserts or replaces the entry for key with expiry now + ttl. A zero or
// negative ttl falls back to the map's default TTL. Inserting a new key when
// the map is full returns false; replacing an existing key always succeeds.
func (m *ExpiringMap[T]) Set(key string, value T, ttl time.Duration) bool {
	if ttl <= 0 {
		ttl = m.defaultTTL
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[key]; !exists && len(m.entries) >= m.maxEntries {
		return false
	}

	m.entries[key] = cacheEntry[T]{
		value:     value,
		expiresAt: m.now().Add(ttl),
	}
	return true
}

// Get returns the value for key. A missing or expired key reports absent;
// an expired entry is removed on the way out.
func (m *ExpiringMap[T]) Get(key string) (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.entries[key]
	if !exists {
		var zero T
		return zero, false
	}

	if !m.now().Before(entry.expiresAt) {
		delete(m.entries, key)
		var zero T
		return zero, false
	}

	return entry.value, true
}

// Delete removes the entry for key and returns the number of entries removed.
func (m *ExpiringMap[T]) Delete(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[key]; !exists {
		return 0
	}
	delete(m.entries, key)
	return 1
}

// Keys returns a snapshot of all keys currently present, including entries
// that have expired but not yet been swept.
func (m *ExpiringMap[T]) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.entries))
	for key := range m.entries {
		keys = append(keys, key)
	}
	return keys
}

// Len returns the current number of entries.
func (m *ExpiringMap[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// FlushAll removes every entry.
func (m *ExpiringMap[T]) FlushAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]cacheEntry[T])
}

// CleanupExpired removes all entries whose expiry has passed, regardless of
// whether they are ever read again, and returns the number removed.
func (m *ExpiringMap[T]) CleanupExpired() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	cleaned := 0
	for key, entry := range m.entries {
		if !now.Before(entry.expiresAt) {
			delete(m.entries, key)
			cleaned++
		}
	}
	return cleaned
}

// keyBytes returns the summed length of all keys, used for memory estimation.
func (m *ExpiringMap[T]) keyBytes() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var total int64
	for key := range m.entries {
		total += int64(len(key))
	}
	return total
}
