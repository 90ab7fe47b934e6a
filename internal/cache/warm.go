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
	"context"
	"fmt"

	"github.com/chainquest/vault/internal/system/log"
)

// WarmCache populates a namespace from an externally supplied loader. A loader
// failure is logged and leaves the namespace in its prior state; entries set
// before a mid-sequence failure are kept (best-effort, no rollback).
func (nc *NamespacedCache) WarmCache(ctx context.Context, namespace string, loader WarmLoader) error {
	if !nc.IsEnabled() {
		return nil
	}

	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String(log.LoggerKeyNamespace, namespace))

	state, ok := nc.namespace(namespace)
	if !ok {
		return ErrInvalidNamespace
	}

	entries, err := loader(ctx)
	if err != nil {
		logger.Warn("Cache warm loader failed, namespace left unchanged", log.Error(err))
		return fmt.Errorf("%w: %v", ErrLoaderFailure, err)
	}

	warmed := 0
	for _, entry := range entries {
		if state.entries.Set(entry.Key, entry.Value, 0) {
			state.stats.sets.Add(1)
			warmed++
		}
	}

	logger.Debug("Cache namespace warmed", log.Int("entries", warmed))
	return nil
}

// GetOrLoad returns the cached value for key, or loads it through the supplied
// loader on a miss. Concurrent misses for the same namespace and key issue a
// single loader call; the loaded value is cached with the namespace default
// TTL. Loader errors are returned to the caller and nothing is cached.
func (nc *NamespacedCache) GetOrLoad(ctx context.Context, namespace, key string,
	loader LoaderFunc) (interface{}, error) {
	if value, found := nc.Get(namespace, key); found {
		return value, nil
	}

	value, err, _ := nc.loadGroup.Do(namespace+":"+key, func() (interface{}, error) {
		// Another caller may have populated the entry while we waited. The
		// outer Get already accounted this lookup, so the re-check reads the
		// map directly to keep it a single miss.
		if state, ok := nc.namespace(namespace); ok {
			if value, found := state.entries.Get(key); found {
				return value, nil
			}
		}

		loaded, err := loader(ctx)
		if err != nil {
			return nil, err
		}

		nc.Set(namespace, key, loaded, 0)
		return loaded, nil
	})
	return value, err
}
