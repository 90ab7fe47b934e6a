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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type KeysTestSuite struct {
	suite.Suite
	cache *NamespacedCache
}

func TestKeysSuite(t *testing.T) {
	suite.Run(t, new(KeysTestSuite))
}

func (suite *KeysTestSuite) SetupTest() {
	suite.cache = New(DefaultNamespaceConfigs())
}

func (suite *KeysTestSuite) TearDownTest() {
	suite.cache.Shutdown()
}

func (suite *KeysTestSuite) TestKeyTemplates() {
	testCases := []struct {
		name     string
		key      string
		expected string
	}{
		{"Player", PlayerKey("0xabc"), "player:0xabc"},
		{"Leaderboard", LeaderboardKey("weekly", 10), "leaderboard:weekly:10"},
		{"Session", SessionKey("42"), "session:42"},
		{"Achievements", AchievementsKey("0xabc"), "achievements:0xabc"},
		{"APIResponse", APIResponseKey("prices", "a1b2"), "api:prices:a1b2"},
		{"Blockchain", BlockchainKey("latest-block"), "blockchain:latest-block"},
		{"RateLimit", RateLimitKey("1.2.3.4"), "rate:1.2.3.4"},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.key)
		})
	}
}

func (suite *KeysTestSuite) TestKeyTemplatesCollisionFree() {
	// The same identifier composed through different templates must never
	// produce the same key.
	id := "0xabc"
	keys := []string{
		PlayerKey(id),
		SessionKey(id),
		AchievementsKey(id),
		BlockchainKey(id),
		RateLimitKey(id),
	}

	seen := make(map[string]bool)
	for _, key := range keys {
		assert.False(suite.T(), seen[key], "duplicate key %q", key)
		seen[key] = true
	}
}

func (suite *KeysTestSuite) TestPlayerConvenienceWrappers() {
	assert.True(suite.T(), suite.cache.SetPlayer("0xabc", "alice"))

	value, found := suite.cache.GetPlayer("0xabc")
	assert.True(suite.T(), found)
	assert.Equal(suite.T(), "alice", value)

	_, found = suite.cache.GetPlayer("0xdef")
	assert.False(suite.T(), found)
}

func (suite *KeysTestSuite) TestInvalidatePlayerCascades() {
	assert.True(suite.T(), suite.cache.SetPlayer("0xabc", "alice"))
	assert.True(suite.T(), suite.cache.Set(NamespaceLeaderboards, "leaderboard:weekly:10:0xabc", 1, 0))
	assert.True(suite.T(), suite.cache.Set(NamespaceLeaderboards, "leaderboard:weekly:10:0xdef", 2, 0))

	suite.cache.InvalidatePlayer("0xabc")

	_, found := suite.cache.GetPlayer("0xabc")
	assert.False(suite.T(), found)

	_, found = suite.cache.Get(NamespaceLeaderboards, "leaderboard:weekly:10:0xabc")
	assert.False(suite.T(), found)

	// Other players' leaderboard entries survive.
	_, found = suite.cache.Get(NamespaceLeaderboards, "leaderboard:weekly:10:0xdef")
	assert.True(suite.T(), found)
}

func (suite *KeysTestSuite) TestSessionConvenienceWrappers() {
	assert.True(suite.T(), suite.cache.SetSession("42", "data"))

	value, found := suite.cache.GetSession("42")
	assert.True(suite.T(), found)
	assert.Equal(suite.T(), "data", value)

	assert.Equal(suite.T(), 1, suite.cache.DeleteSession("42"))
	_, found = suite.cache.GetSession("42")
	assert.False(suite.T(), found)
}

func (suite *KeysTestSuite) TestLeaderboardAndDataWrappers() {
	assert.True(suite.T(), suite.cache.SetLeaderboard("weekly", 10, []string{"a"}))
	value, found := suite.cache.GetLeaderboard("weekly", 10)
	assert.True(suite.T(), found)
	assert.Equal(suite.T(), []string{"a"}, value)

	assert.True(suite.T(), suite.cache.SetAchievements("0xabc", []string{"first-win"}))
	_, found = suite.cache.GetAchievements("0xabc")
	assert.True(suite.T(), found)

	assert.True(suite.T(), suite.cache.SetAPIResponse("prices", "a1b2", "body", 0))
	_, found = suite.cache.GetAPIResponse("prices", "a1b2")
	assert.True(suite.T(), found)

	assert.True(suite.T(), suite.cache.SetBlockchainData("latest-block", 42))
	_, found = suite.cache.GetBlockchainData("latest-block")
	assert.True(suite.T(), found)
}
