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

// Package store provides the implementation for player persistence operations.
package store

import (
	"github.com/chainquest/vault/internal/system/database/model"
	"github.com/chainquest/vault/internal/system/database/utils"
)

var (
	// QueryGetPlayerCount is the query to get the total count of players.
	QueryGetPlayerCount = model.DBQuery{
		ID:    "CQV-PLAYER_MGT-01",
		Query: "SELECT COUNT(*) AS total FROM PLAYER",
	}
	// QueryGetPlayerByWalletAddress is the query to get a player by wallet address.
	QueryGetPlayerByWalletAddress = model.DBQuery{
		ID: "CQV-PLAYER_MGT-02",
		Query: "SELECT WALLET_ADDRESS, USERNAME, HIGH_SCORE, GAMES_PLAYED, ATTRIBUTES " +
			"FROM PLAYER WHERE WALLET_ADDRESS = $1",
	}
	// QueryCreatePlayer is the query to create a new player.
	QueryCreatePlayer = model.DBQuery{
		ID: "CQV-PLAYER_MGT-03",
		Query: "INSERT INTO PLAYER (WALLET_ADDRESS, USERNAME, HIGH_SCORE, GAMES_PLAYED, ATTRIBUTES) " +
			"VALUES ($1, $2, 0, 0, $3)",
	}
	// QueryGetPlayerByUsername is the query to get a player by username.
	QueryGetPlayerByUsername = model.DBQuery{
		ID: "CQV-PLAYER_MGT-04",
		Query: "SELECT WALLET_ADDRESS, USERNAME, HIGH_SCORE, GAMES_PLAYED, ATTRIBUTES " +
			"FROM PLAYER WHERE USERNAME = $1",
	}
	// QueryRecordGameResult is the query to record a finished game for a player. The high
	// score only moves strictly up; ties fall through to QueryIncrementGamesPlayed.
	QueryRecordGameResult = model.DBQuery{
		ID: "CQV-PLAYER_MGT-05",
		Query: "UPDATE PLAYER SET HIGH_SCORE = $2, GAMES_PLAYED = GAMES_PLAYED + 1, " +
			"UPDATED_AT = CURRENT_TIMESTAMP WHERE WALLET_ADDRESS = $1 AND HIGH_SCORE < $2",
	}
	// QueryIncrementGamesPlayed is the query to count a finished game that did not beat the
	// player's high score.
	QueryIncrementGamesPlayed = model.DBQuery{
		ID: "CQV-PLAYER_MGT-06",
		Query: "UPDATE PLAYER SET GAMES_PLAYED = GAMES_PLAYED + 1, " +
			"UPDATED_AT = CURRENT_TIMESTAMP WHERE WALLET_ADDRESS = $1",
	}
	// QueryDeletePlayerByWalletAddress is the query to delete a player by wallet address.
	QueryDeletePlayerByWalletAddress = model.DBQuery{
		ID:    "CQV-PLAYER_MGT-07",
		Query: "DELETE FROM PLAYER WHERE WALLET_ADDRESS = $1",
	}
	// QueryGetLeaderboard is the query to get the top players ordered by high score.
	QueryGetLeaderboard = model.DBQuery{
		ID: "CQV-PLAYER_MGT-08",
		Query: "SELECT WALLET_ADDRESS, USERNAME, HIGH_SCORE FROM PLAYER " +
			"ORDER BY HIGH_SCORE DESC, WALLET_ADDRESS ASC LIMIT $1",
	}
	// QueryGetPlayerAchievements is the query to get the achievements unlocked by a player.
	QueryGetPlayerAchievements = model.DBQuery{
		ID: "CQV-PLAYER_MGT-09",
		Query: "SELECT A.ACHIEVEMENT_ID, A.NAME, A.DESCRIPTION, A.THRESHOLD " +
			"FROM ACHIEVEMENT A JOIN PLAYER_ACHIEVEMENT PA ON A.ACHIEVEMENT_ID = PA.ACHIEVEMENT_ID " +
			"WHERE PA.WALLET_ADDRESS = $1 ORDER BY A.THRESHOLD ASC",
	}
	// QueryGetUnlockableAchievements is the query to get achievement definitions a player
	// has reached but not yet unlocked.
	QueryGetUnlockableAchievements = model.DBQuery{
		ID: "CQV-PLAYER_MGT-10",
		Query: "SELECT ACHIEVEMENT_ID, NAME, DESCRIPTION, THRESHOLD FROM ACHIEVEMENT " +
			"WHERE THRESHOLD <= $2 AND ACHIEVEMENT_ID NOT IN " +
			"(SELECT ACHIEVEMENT_ID FROM PLAYER_ACHIEVEMENT WHERE WALLET_ADDRESS = $1) " +
			"ORDER BY THRESHOLD ASC",
	}
	// QueryUnlockAchievement is the query to record an unlocked achievement for a player.
	QueryUnlockAchievement = model.DBQuery{
		ID:            "CQV-PLAYER_MGT-11",
		Query:         "INSERT INTO PLAYER_ACHIEVEMENT (WALLET_ADDRESS, ACHIEVEMENT_ID) VALUES ($1, $2)",
		SQLiteQuery:   "INSERT OR IGNORE INTO PLAYER_ACHIEVEMENT (WALLET_ADDRESS, ACHIEVEMENT_ID) VALUES ($1, $2)",
		PostgresQuery: "INSERT INTO PLAYER_ACHIEVEMENT (WALLET_ADDRESS, ACHIEVEMENT_ID) VALUES ($1, $2) ON CONFLICT DO NOTHING",
	}
	// QueryGetPlayerStatistics is the query to get aggregate statistics across all players.
	QueryGetPlayerStatistics = model.DBQuery{
		ID: "CQV-PLAYER_MGT-12",
		Query: "SELECT COUNT(*) AS total_players, COALESCE(SUM(GAMES_PLAYED), 0) AS total_games, " +
			"COALESCE(MAX(HIGH_SCORE), 0) AS highest_score FROM PLAYER",
	}
)

// buildIdentifyQuery constructs a query to identify players based on attribute filters.
func buildIdentifyQuery(filters map[string]interface{}) (model.DBQuery, []interface{}, error) {
	baseQuery := "SELECT WALLET_ADDRESS FROM PLAYER WHERE 1=1"
	queryID := "CQV-PLAYER_MGT-13"
	columnName := "ATTRIBUTES"
	return utils.BuildFilterQuery(queryID, baseQuery, columnName, filters)
}
