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
	"fmt"
	"time"
)

// Canonical key templates. Two different logical entities must never compose
// the same key, so every template carries a distinct prefix.

// PlayerKey composes the cache key for a player record.
func PlayerKey(address string) string {
	return "player:" + address
}

// LeaderboardKey composes the cache key for a leaderboard of the given kind
// and size.
func LeaderboardKey(kind string, limit int) string {
	return fmt.Sprintf("leaderboard:%s:%d", kind, limit)
}

// SessionKey composes the cache key for a game session.
func SessionKey(sessionID string) string {
	return "session:" + sessionID
}

// AchievementsKey composes the cache key for a player's achievement list.
func AchievementsKey(address string) string {
	return "achievements:" + address
}

// APIResponseKey composes the cache key for an upstream API response.
func APIResponseKey(endpoint, paramsHash string) string {
	return fmt.Sprintf("api:%s:%s", endpoint, paramsHash)
}

// BlockchainKey composes the cache key for on-chain data.
func BlockchainKey(key string) string {
	return "blockchain:" + key
}

// RateLimitKey composes the cache key for a rate limit counter.
func RateLimitKey(identifier string) string {
	return "rate:" + identifier
}

// GetPlayer retrieves a cached player record.
func (nc *NamespacedCache) GetPlayer(address string) (interface{}, bool) {
	return nc.Get(NamespacePlayers, PlayerKey(address))
}

// SetPlayer caches a player record with the namespace default TTL.
func (nc *NamespacedCache) SetPlayer(address string, player interface{}) bool {
	return nc.Set(NamespacePlayers, PlayerKey(address), player, 0)
}

// InvalidatePlayer removes a player's cached record and every leaderboard
// entry referencing the address. Leaderboards referencing the player are
// recomputed on the next read.
func (nc *NamespacedCache) InvalidatePlayer(address string) {
	nc.Delete(NamespacePlayers, PlayerKey(address))
	nc.InvalidatePattern(NamespaceLeaderboards, address)
}

// GetLeaderboard retrieves a cached leaderboard.
func (nc *NamespacedCache) GetLeaderboard(kind string, limit int) (interface{}, bool) {
	return nc.Get(NamespaceLeaderboards, LeaderboardKey(kind, limit))
}

// SetLeaderboard caches a leaderboard with the namespace default TTL.
func (nc *NamespacedCache) SetLeaderboard(kind string, limit int, board interface{}) bool {
	return nc.Set(NamespaceLeaderboards, LeaderboardKey(kind, limit), board, 0)
}

// GetSession retrieves a cached session.
func (nc *NamespacedCache) GetSession(sessionID string) (interface{}, bool) {
	return nc.Get(NamespaceSessions, SessionKey(sessionID))
}

// SetSession caches a session with the namespace default TTL.
func (nc *NamespacedCache) SetSession(sessionID string, session interface{}) bool {
	return nc.Set(NamespaceSessions, SessionKey(sessionID), session, 0)
}

// DeleteSession removes a cached session.
func (nc *NamespacedCache) DeleteSession(sessionID string) int {
	return nc.Delete(NamespaceSessions, SessionKey(sessionID))
}

// GetAchievements retrieves a player's cached achievement list.
func (nc *NamespacedCache) GetAchievements(address string) (interface{}, bool) {
	return nc.Get(NamespaceAchievements, AchievementsKey(address))
}

// SetAchievements caches a player's achievement list with the namespace default TTL.
func (nc *NamespacedCache) SetAchievements(address string, achievements interface{}) bool {
	return nc.Set(NamespaceAchievements, AchievementsKey(address), achievements, 0)
}

// GetAPIResponse retrieves a cached upstream API response.
func (nc *NamespacedCache) GetAPIResponse(endpoint, paramsHash string) (interface{}, bool) {
	return nc.Get(NamespaceAPIResponses, APIResponseKey(endpoint, paramsHash))
}

// SetAPIResponse caches an upstream API response with the given TTL.
func (nc *NamespacedCache) SetAPIResponse(endpoint, paramsHash string, response interface{},
	ttl time.Duration) bool {
	return nc.Set(NamespaceAPIResponses, APIResponseKey(endpoint, paramsHash), response, ttl)
}

// GetBlockchainData retrieves cached on-chain data.
func (nc *NamespacedCache) GetBlockchainData(key string) (interface{}, bool) {
	return nc.Get(NamespaceBlockchainData, BlockchainKey(key))
}

// SetBlockchainData caches on-chain data with the namespace default TTL.
func (nc *NamespacedCache) SetBlockchainData(key string, data interface{}) bool {
	return nc.Set(NamespaceBlockchainData, BlockchainKey(key), data, 0)
}
