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
	"time"

	"github.com/chainquest/vault/internal/system/log"
)

// IncrementRateLimit atomically increments the request counter for identifier
// in the rateLimits namespace and returns the new count. The read-modify-write
// cycle runs under a dedicated lock so concurrent callers on the same
// identifier never lose updates. Returns 0 when the cache is disabled or the
// rateLimits namespace is not configured.
func (nc *NamespacedCache) IncrementRateLimit(identifier string, ttl time.Duration) int64 {
	if !nc.IsEnabled() {
		return 0
	}

	state, exists := nc.namespaces[NamespaceRateLimits]
	if !exists {
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)).
			Warn("Rate limit namespace is not configured", log.Error(ErrInvalidNamespace))
		return 0
	}

	key := RateLimitKey(identifier)

	nc.rlMu.Lock()
	defer nc.rlMu.Unlock()

	var count int64
	if value, found := state.entries.Get(key); found {
		if current, ok := value.(int64); ok {
			count = current
		}
		state.stats.hits.Add(1)
	} else {
		state.stats.misses.Add(1)
	}
	count++

	if state.entries.Set(key, count, ttl) {
		state.stats.sets.Add(1)
	}

	return count
}
