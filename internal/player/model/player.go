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

// Package model defines the data structures for player management operations.
package model

import "encoding/json"

// Player represents a player record keyed by wallet address.
type Player struct {
	WalletAddress string          `json:"walletAddress"`
	Username      string          `json:"username"`
	HighScore     int64           `json:"highScore"`
	GamesPlayed   int64           `json:"gamesPlayed"`
	Attributes    json.RawMessage `json:"attributes,omitempty"`
}

// CreatePlayerRequest represents the request body for creating a player.
type CreatePlayerRequest struct {
	WalletAddress string          `json:"walletAddress"`
	Username      string          `json:"username"`
	Attributes    json.RawMessage `json:"attributes,omitempty"`
}

// ScoreSubmission represents the request body for submitting a finished game.
type ScoreSubmission struct {
	Score int64 `json:"score"`
}

// ScoreResult represents the outcome of a score submission.
type ScoreResult struct {
	Player              *Player       `json:"player"`
	NewHighScore        bool          `json:"newHighScore"`
	UnlockedAchievements []Achievement `json:"unlockedAchievements,omitempty"`
}

// LeaderboardEntry represents a single row of a leaderboard.
type LeaderboardEntry struct {
	Rank          int    `json:"rank"`
	WalletAddress string `json:"walletAddress"`
	Username      string `json:"username"`
	HighScore     int64  `json:"highScore"`
}

// Leaderboard represents an ordered leaderboard of the given kind.
type Leaderboard struct {
	Kind    string             `json:"kind"`
	Entries []LeaderboardEntry `json:"entries"`
}

// Achievement represents an unlockable achievement definition.
type Achievement struct {
	AchievementID string `json:"achievementId"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Threshold     int64  `json:"threshold"`
}

// PlayerStatistics represents aggregate statistics across all players.
type PlayerStatistics struct {
	TotalPlayers     int64 `json:"totalPlayers"`
	TotalGamesPlayed int64 `json:"totalGamesPlayed"`
	HighestScore     int64 `json:"highestScore"`
}

// IdentifyResponse lists the players matched by an attribute filter.
type IdentifyResponse struct {
	Count           int      `json:"count"`
	WalletAddresses []string `json:"walletAddresses"`
}
