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

// Package playermock provides mock implementations of the player store for testing.
package playermock

import (
	"github.com/chainquest/vault/internal/player/model"
	"github.com/chainquest/vault/internal/player/store"
)

// MockPlayerStore is a mock implementation of the PlayerStoreInterface.
type MockPlayerStore struct {
	// MockGetPlayerCount defines the behavior for the GetPlayerCount method.
	MockGetPlayerCount func() (int, error)

	// MockGetPlayer defines the behavior for the GetPlayer method.
	MockGetPlayer func(walletAddress string) (*model.Player, error)

	// MockGetPlayerByUsername defines the behavior for the GetPlayerByUsername method.
	MockGetPlayerByUsername func(username string) (*model.Player, error)

	// MockCreatePlayer defines the behavior for the CreatePlayer method.
	MockCreatePlayer func(player *model.Player) error

	// MockRecordGameResult defines the behavior for the RecordGameResult method.
	MockRecordGameResult func(walletAddress string, score int64) (bool, error)

	// MockDeletePlayer defines the behavior for the DeletePlayer method.
	MockDeletePlayer func(walletAddress string) error

	// MockGetLeaderboard defines the behavior for the GetLeaderboard method.
	MockGetLeaderboard func(limit int) ([]model.LeaderboardEntry, error)

	// MockGetPlayerAchievements defines the behavior for the GetPlayerAchievements method.
	MockGetPlayerAchievements func(walletAddress string) ([]model.Achievement, error)

	// MockGetUnlockableAchievements defines the behavior for the GetUnlockableAchievements method.
	MockGetUnlockableAchievements func(walletAddress string, score int64) ([]model.Achievement, error)

	// MockUnlockAchievement defines the behavior for the UnlockAchievement method.
	MockUnlockAchievement func(walletAddress, achievementID string) error

	// MockGetStatistics defines the behavior for the GetStatistics method.
	MockGetStatistics func() (*model.PlayerStatistics, error)

	// MockIdentifyPlayers defines the behavior for the IdentifyPlayers method.
	MockIdentifyPlayers func(filters map[string]interface{}) ([]string, error)

	// GetPlayerCalls tracks the wallet addresses passed to GetPlayer.
	GetPlayerCalls []string

	// UnlockAchievementCalls tracks the achievement IDs passed to UnlockAchievement.
	UnlockAchievementCalls []string
}

var _ store.PlayerStoreInterface = (*MockPlayerStore)(nil)

// GetPlayerCount calls the mocked behavior.
func (m *MockPlayerStore) GetPlayerCount() (int, error) {
	if m.MockGetPlayerCount != nil {
		return m.MockGetPlayerCount()
	}
	return 0, nil
}

// GetPlayer calls the mocked behavior.
func (m *MockPlayerStore) GetPlayer(walletAddress string) (*model.Player, error) {
	m.GetPlayerCalls = append(m.GetPlayerCalls, walletAddress)

	if m.MockGetPlayer != nil {
		return m.MockGetPlayer(walletAddress)
	}
	return nil, store.ErrPlayerNotFound
}

// GetPlayerByUsername calls the mocked behavior.
func (m *MockPlayerStore) GetPlayerByUsername(username string) (*model.Player, error) {
	if m.MockGetPlayerByUsername != nil {
		return m.MockGetPlayerByUsername(username)
	}
	return nil, store.ErrPlayerNotFound
}

// CreatePlayer calls the mocked behavior.
func (m *MockPlayerStore) CreatePlayer(player *model.Player) error {
	if m.MockCreatePlayer != nil {
		return m.MockCreatePlayer(player)
	}
	return nil
}

// RecordGameResult calls the mocked behavior.
func (m *MockPlayerStore) RecordGameResult(walletAddress string, score int64) (bool, error) {
	if m.MockRecordGameResult != nil {
		return m.MockRecordGameResult(walletAddress, score)
	}
	return false, nil
}

// DeletePlayer calls the mocked behavior.
func (m *MockPlayerStore) DeletePlayer(walletAddress string) error {
	if m.MockDeletePlayer != nil {
		return m.MockDeletePlayer(walletAddress)
	}
	return nil
}

// GetLeaderboard calls the mocked behavior.
func (m *MockPlayerStore) GetLeaderboard(limit int) ([]model.LeaderboardEntry, error) {
	if m.MockGetLeaderboard != nil {
		return m.MockGetLeaderboard(limit)
	}
	return []model.LeaderboardEntry{}, nil
}

// GetPlayerAchievements calls the mocked behavior.
func (m *MockPlayerStore) GetPlayerAchievements(walletAddress string) ([]model.Achievement, error) {
	if m.MockGetPlayerAchievements != nil {
		return m.MockGetPlayerAchievements(walletAddress)
	}
	return []model.Achievement{}, nil
}

// GetUnlockableAchievements calls the mocked behavior.
func (m *MockPlayerStore) GetUnlockableAchievements(walletAddress string,
	score int64) ([]model.Achievement, error) {
	if m.MockGetUnlockableAchievements != nil {
		return m.MockGetUnlockableAchievements(walletAddress, score)
	}
	return []model.Achievement{}, nil
}

// UnlockAchievement calls the mocked behavior.
func (m *MockPlayerStore) UnlockAchievement(walletAddress, achievementID string) error {
	m.UnlockAchievementCalls = append(m.UnlockAchievementCalls, achievementID)

	if m.MockUnlockAchievement != nil {
		return m.MockUnlockAchievement(walletAddress, achievementID)
	}
	return nil
}

// GetStatistics calls the mocked behavior.
func (m *MockPlayerStore) GetStatistics() (*model.PlayerStatistics, error) {
	if m.MockGetStatistics != nil {
		return m.MockGetStatistics()
	}
	return &model.PlayerStatistics{}, nil
}

// IdentifyPlayers calls the mocked behavior.
func (m *MockPlayerStore) IdentifyPlayers(filters map[string]interface{}) ([]string, error) {
	if m.MockIdentifyPlayers != nil {
		return m.MockIdentifyPlayers(filters)
	}
	return []string{}, nil
}
