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

package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/chainquest/vault/internal/player/model"
	"github.com/chainquest/vault/internal/system/database/client"
	dbmodel "github.com/chainquest/vault/internal/system/database/model"
	"github.com/chainquest/vault/internal/system/database/provider"
)

// ErrPlayerNotFound is returned when no player exists for the given wallet address.
var ErrPlayerNotFound = errors.New("player not found")

// PlayerStoreInterface defines the interface for player persistence operations.
type PlayerStoreInterface interface {
	GetPlayerCount() (int, error)
	GetPlayer(walletAddress string) (*model.Player, error)
	GetPlayerByUsername(username string) (*model.Player, error)
	CreatePlayer(player *model.Player) error
	RecordGameResult(walletAddress string, score int64) (bool, error)
	DeletePlayer(walletAddress string) error
	GetLeaderboard(limit int) ([]model.LeaderboardEntry, error)
	GetPlayerAchievements(walletAddress string) ([]model.Achievement, error)
	GetUnlockableAchievements(walletAddress string, score int64) ([]model.Achievement, error)
	UnlockAchievement(walletAddress, achievementID string) error
	GetStatistics() (*model.PlayerStatistics, error)
	IdentifyPlayers(filters map[string]interface{}) ([]string, error)
}

// PlayerStore is the default implementation of the PlayerStoreInterface.
type PlayerStore struct {
	dbProvider provider.DBProviderInterface
}

// NewPlayerStore creates a new instance of PlayerStore.
func NewPlayerStore(dbProvider provider.DBProviderInterface) PlayerStoreInterface {
	return &PlayerStore{dbProvider: dbProvider}
}

func (ps *PlayerStore) getClient() (client.DBClientInterface, error) {
	dbClient, err := ps.dbProvider.GetDBClient(provider.DBNameGame)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}
	return dbClient, nil
}

// GetPlayerCount retrieves the total count of players.
func (ps *PlayerStore) GetPlayerCount() (int, error) {
	dbClient, err := ps.getClient()
	if err != nil {
		return 0, err
	}

	results, err := dbClient.Query(QueryGetPlayerCount)
	if err != nil {
		return 0, fmt.Errorf("failed to execute count query: %w", err)
	}

	var totalCount int
	if len(results) > 0 {
		if total, ok := results[0]["total"].(int64); ok {
			totalCount = int(total)
		}
	}
	return totalCount, nil
}

// GetPlayer retrieves a player by wallet address.
func (ps *PlayerStore) GetPlayer(walletAddress string) (*model.Player, error) {
	return ps.getPlayerByQuery(QueryGetPlayerByWalletAddress, walletAddress)
}

// GetPlayerByUsername retrieves a player by username.
func (ps *PlayerStore) GetPlayerByUsername(username string) (*model.Player, error) {
	return ps.getPlayerByQuery(QueryGetPlayerByUsername, username)
}

func (ps *PlayerStore) getPlayerByQuery(query dbmodel.DBQuery, arg string) (*model.Player, error) {
	dbClient, err := ps.getClient()
	if err != nil {
		return nil, err
	}

	results, err := dbClient.Query(query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to execute player query: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrPlayerNotFound
	}
	if len(results) > 1 {
		return nil, fmt.Errorf("unexpected number of rows returned: %d", len(results))
	}

	return buildPlayerFromResultRow(results[0])
}

// CreatePlayer creates a new player record.
func (ps *PlayerStore) CreatePlayer(player *model.Player) error {
	dbClient, err := ps.getClient()
	if err != nil {
		return err
	}

	attributes := "{}"
	if len(player.Attributes) > 0 {
		attributes = string(player.Attributes)
	}

	_, err = dbClient.Execute(QueryCreatePlayer, player.WalletAddress, player.Username, attributes)
	if err != nil {
		return fmt.Errorf("failed to execute create query: %w", err)
	}
	return nil
}

// RecordGameResult records a finished game for the player. The games played counter
// always advances; the high score only moves strictly up. Both updates run in one
// transaction. Returns true when the submitted score set a new high score.
func (ps *PlayerStore) RecordGameResult(walletAddress string, score int64) (bool, error) {
	dbClient, err := ps.getClient()
	if err != nil {
		return false, err
	}

	tx, err := dbClient.BeginTx()
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}

	result, err := tx.Exec(QueryRecordGameResult.Query, walletAddress, score)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
		}
		return false, fmt.Errorf("failed to execute score update query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
		}
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	newHighScore := rowsAffected > 0
	if !newHighScore {
		result, err = tx.Exec(QueryIncrementGamesPlayed.Query, walletAddress)
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				err = errors.Join(err, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
			}
			return false, fmt.Errorf("failed to execute games played update query: %w", err)
		}

		rowsAffected, err = result.RowsAffected()
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				err = errors.Join(err, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
			}
			return false, fmt.Errorf("failed to read affected rows: %w", err)
		}
		if rowsAffected == 0 {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				return false, fmt.Errorf("failed to rollback transaction: %w", rollbackErr)
			}
			return false, ErrPlayerNotFound
		}
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return newHighScore, nil
}

// DeletePlayer deletes a player by wallet address.
func (ps *PlayerStore) DeletePlayer(walletAddress string) error {
	dbClient, err := ps.getClient()
	if err != nil {
		return err
	}

	if _, err := dbClient.Execute(QueryDeletePlayerByWalletAddress, walletAddress); err != nil {
		return fmt.Errorf("failed to execute delete query: %w", err)
	}
	return nil
}

// GetLeaderboard retrieves the top players ordered by high score.
func (ps *PlayerStore) GetLeaderboard(limit int) ([]model.LeaderboardEntry, error) {
	dbClient, err := ps.getClient()
	if err != nil {
		return nil, err
	}

	results, err := dbClient.Query(QueryGetLeaderboard, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to execute leaderboard query: %w", err)
	}

	entries := make([]model.LeaderboardEntry, 0, len(results))
	for i, row := range results {
		entry := model.LeaderboardEntry{Rank: i + 1}
		if walletAddress, ok := row["wallet_address"].(string); ok {
			entry.WalletAddress = walletAddress
		}
		if username, ok := row["username"].(string); ok {
			entry.Username = username
		}
		entry.HighScore = int64Value(row["high_score"])
		entries = append(entries, entry)
	}
	return entries, nil
}

// GetPlayerAchievements retrieves the achievements unlocked by a player.
func (ps *PlayerStore) GetPlayerAchievements(walletAddress string) ([]model.Achievement, error) {
	return ps.queryAchievements(QueryGetPlayerAchievements, walletAddress)
}

// GetUnlockableAchievements retrieves achievement definitions the player has
// reached with the given score but not yet unlocked.
func (ps *PlayerStore) GetUnlockableAchievements(walletAddress string, score int64) ([]model.Achievement, error) {
	return ps.queryAchievements(QueryGetUnlockableAchievements, walletAddress, score)
}

func (ps *PlayerStore) queryAchievements(query dbmodel.DBQuery, args ...interface{}) ([]model.Achievement, error) {
	dbClient, err := ps.getClient()
	if err != nil {
		return nil, err
	}

	results, err := dbClient.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute achievement query: %w", err)
	}

	achievements := make([]model.Achievement, 0, len(results))
	for _, row := range results {
		achievement := model.Achievement{}
		if id, ok := row["achievement_id"].(string); ok {
			achievement.AchievementID = id
		}
		if name, ok := row["name"].(string); ok {
			achievement.Name = name
		}
		if description, ok := row["description"].(string); ok {
			achievement.Description = description
		}
		achievement.Threshold = int64Value(row["threshold"])
		achievements = append(achievements, achievement)
	}
	return achievements, nil
}

// UnlockAchievement records an unlocked achievement for a player. Recording an
// already unlocked achievement is a no-op.
func (ps *PlayerStore) UnlockAchievement(walletAddress, achievementID string) error {
	dbClient, err := ps.getClient()
	if err != nil {
		return err
	}

	if _, err := dbClient.Execute(QueryUnlockAchievement, walletAddress, achievementID); err != nil {
		return fmt.Errorf("failed to execute unlock query: %w", err)
	}
	return nil
}

// GetStatistics retrieves aggregate statistics across all players.
func (ps *PlayerStore) GetStatistics() (*model.PlayerStatistics, error) {
	dbClient, err := ps.getClient()
	if err != nil {
		return nil, err
	}

	results, err := dbClient.Query(QueryGetPlayerStatistics)
	if err != nil {
		return nil, fmt.Errorf("failed to execute statistics query: %w", err)
	}
	if len(results) == 0 {
		return &model.PlayerStatistics{}, nil
	}

	row := results[0]
	return &model.PlayerStatistics{
		TotalPlayers:     int64Value(row["total_players"]),
		TotalGamesPlayed: int64Value(row["total_games"]),
		HighestScore:     int64Value(row["highest_score"]),
	}, nil
}

// IdentifyPlayers retrieves the wallet addresses of players matching the given
// attribute filters.
func (ps *PlayerStore) IdentifyPlayers(filters map[string]interface{}) ([]string, error) {
	dbClient, err := ps.getClient()
	if err != nil {
		return nil, err
	}

	query, args, err := buildIdentifyQuery(filters)
	if err != nil {
		return nil, fmt.Errorf("failed to build identify query: %w", err)
	}

	results, err := dbClient.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute identify query: %w", err)
	}

	addresses := make([]string, 0, len(results))
	for _, row := range results {
		if walletAddress, ok := row["wallet_address"].(string); ok {
			addresses = append(addresses, walletAddress)
		}
	}
	return addresses, nil
}

func buildPlayerFromResultRow(row map[string]interface{}) (*model.Player, error) {
	walletAddress, ok := row["wallet_address"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse wallet_address as string")
	}
	username, ok := row["username"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse username as string")
	}

	player := model.Player{
		WalletAddress: walletAddress,
		Username:      username,
		HighScore:     int64Value(row["high_score"]),
		GamesPlayed:   int64Value(row["games_played"]),
	}

	switch attributes := row["attributes"].(type) {
	case string:
		if attributes != "" {
			player.Attributes = json.RawMessage(attributes)
		}
	case []byte:
		if len(attributes) > 0 {
			player.Attributes = json.RawMessage(attributes)
		}
	}

	return &player, nil
}

func int64Value(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}
