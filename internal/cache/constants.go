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
	"errors"
	"time"
)

// Namespace names for the configured cache partitions.
const (
	NamespacePlayers        = "players"
	NamespaceLeaderboards   = "leaderboards"
	NamespaceStatistics     = "statistics"
	NamespaceAchievements   = "achievements"
	NamespaceSessions       = "sessions"
	NamespaceAPIResponses   = "apiResponses"
	NamespaceBlockchainData = "blockchainData"
	NamespaceRateLimits     = "rateLimits"
)

const (
	// defaultSweepInterval is the default interval between active expiry sweeps.
	defaultSweepInterval = 60 * time.Second
	// defaultEntryTTL is the fallback TTL for namespaces configured without one.
	defaultEntryTTL = 300 * time.Second
	// defaultMaxEntries is the fallback capacity for namespaces configured without one.
	defaultMaxEntries = 1000
)

var (
	// ErrInvalidNamespace indicates an operation referenced a namespace outside the configured set.
	ErrInvalidNamespace = errors.New("invalid cache namespace")
	// ErrCapacityExceeded indicates a set for a new key on a namespace already at capacity.
	ErrCapacityExceeded = errors.New("cache namespace at capacity")
	// ErrLoaderFailure indicates a warm loader failed before producing entries.
	ErrLoaderFailure = errors.New("cache loader failure")
)

// DefaultNamespaceConfigs returns the fixed set of namespace policies used when
// the deployment configuration does not override them.
func DefaultNamespaceConfigs() []NamespaceConfig {
	return []NamespaceConfig{
		{Name: NamespacePlayers, DefaultTTL: 300 * time.Second, MaxEntries: 10000, SweepInterval: defaultSweepInterval},
		{Name: NamespaceLeaderboards, DefaultTTL: 600 * time.Second, MaxEntries: 100, SweepInterval: defaultSweepInterval},
		{Name: NamespaceStatistics, DefaultTTL: 900 * time.Second, MaxEntries: 200, SweepInterval: defaultSweepInterval},
		{Name: NamespaceAchievements, DefaultTTL: 1800 * time.Second, MaxEntries: 1000, SweepInterval: defaultSweepInterval},
		{Name: NamespaceSessions, DefaultTTL: 180 * time.Second, MaxEntries: 5000, SweepInterval: defaultSweepInterval},
		{Name: NamespaceAPIResponses, DefaultTTL: 120 * time.Second, MaxEntries: 2000, SweepInterval: defaultSweepInterval},
		{Name: NamespaceBlockchainData, DefaultTTL: 1200 * time.Second, MaxEntries: 500, SweepInterval: defaultSweepInterval},
		{Name: NamespaceRateLimits, DefaultTTL: 3600 * time.Second, MaxEntries: 50000, SweepInterval: defaultSweepInterval},
	}
}
