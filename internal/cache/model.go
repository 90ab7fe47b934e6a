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
	"time"
)

// NamespaceConfig holds the TTL and capacity policy for a single cache namespace.
// Fixed at construction time.
type NamespaceConfig struct {
	Name          string
	DefaultTTL    time.Duration
	MaxEntries    int
	SweepInterval time.Duration
	Disabled      bool
}

// NamespaceStats represents the reported statistics for a single namespace.
type NamespaceStats struct {
	KeyCount int    `json:"keyCount"`
	Hits     int64  `json:"hits"`
	Misses   int64  `json:"misses"`
	Sets     int64  `json:"sets"`
	Deletes  int64  `json:"deletes"`
	Flushes  int64  `json:"flushes"`
	HitRate  string `json:"hitRate"`
}

// HealthStatus represents the liveness report of the cache.
// Status reflects only that the cache object can enumerate its namespaces,
// not that round-trips succeed.
type HealthStatus struct {
	Status         string                    `json:"status"`
	Timestamp      time.Time                 `json:"timestamp"`
	NamespaceCount int                       `json:"namespaceCount"`
	Stats          map[string]NamespaceStats `json:"stats"`
	MemoryEstimate int64                     `json:"memoryEstimate"`
}

// WarmEntry is a single key-value pair produced by a warm loader.
type WarmEntry struct {
	Key   string
	Value interface{}
}

// WarmLoader produces the entries used to pre-populate a namespace.
// The loader is the collaborator that knows how to query the system of record.
type WarmLoader func(ctx context.Context) ([]WarmEntry, error)

// LoaderFunc loads a single value from the system of record on a cache miss.
type LoaderFunc func(ctx context.Context) (interface{}, error)
