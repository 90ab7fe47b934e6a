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

// getSeedData returns the predefined seed data for database initialization.
func getSeedData() seedData {
	return seedData{
		Achievements: []AchievementData{
			{
				AchievementID: "first-game",
				Name:          "First Steps",
				Description:   "Complete your first game",
				Threshold:     1,
			},
			{
				AchievementID: "high-roller",
				Name:          "High Roller",
				Description:   "Reach a score of 10000 in a single game",
				Threshold:     10000,
			},
			{
				AchievementID: "veteran",
				Name:          "Veteran",
				Description:   "Play 100 games",
				Threshold:     100,
			},
			{
				AchievementID: "chain-master",
				Name:          "Chain Master",
				Description:   "Reach a lifetime score of 1000000",
				Threshold:     1000000,
			},
		},
		Players: []PlayerData{
			{
				WalletAddress: "0x1111111111111111111111111111111111111111",
				Username:      "genesis",
				HighScore:     0,
				GamesPlayed:   0,
				Attributes:    `{"tier": "free", "region": "us-east"}`,
			},
			{
				WalletAddress: "0x2222222222222222222222222222222222222222",
				Username:      "pioneer",
				HighScore:     4200,
				GamesPlayed:   12,
				Attributes:    `{"tier": "premium", "region": "eu-west"}`,
			},
		},
	}
}
