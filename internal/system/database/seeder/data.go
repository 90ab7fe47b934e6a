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

package seeder

// seedData holds all the initial data to be seeded into the database.
type seedData struct {
	Achievements []AchievementData `json:"achievements"`
	Players      []PlayerData      `json:"players"`
}

// AchievementData represents an achievement catalog entry to be seeded.
type AchievementData struct {
	AchievementID string `json:"achievement_id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Threshold     int64  `json:"threshold"`
}

// PlayerData represents player data to be seeded.
type PlayerData struct {
	WalletAddress string `json:"wallet_address"`
	Username      string `json:"username"`
	HighScore     int64  `json:"high_score"`
	GamesPlayed   int    `json:"games_played"`
	Attributes    string `json:"attributes"`
}
