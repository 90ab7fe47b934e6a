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

// Package seeder provides schema bootstrap and initial data seeding for the game database.
package seeder

import (
	"github.com/chainquest/vault/internal/system/database/client"
	"github.com/chainquest/vault/internal/system/database/model"
	"github.com/chainquest/vault/internal/system/log"
)

// SeederInterface defines the interface for database data seeding.
type SeederInterface interface {
	SeedInitialData() error
}

// DBSeeder implements SeederInterface for database data seeding.
type DBSeeder struct {
	dbClient client.DBClientInterface
}

// NewDBSeeder creates a new instance of DBSeeder.
func NewDBSeeder(dbClient client.DBClientInterface) SeederInterface {
	return &DBSeeder{
		dbClient: dbClient,
	}
}

// SeedInitialData ensures the schema exists and seeds the initial data into the database.
func (s *DBSeeder) SeedInitialData() error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBSeeder"))
	logger.Info("Starting database seeding process")

	if err := s.ensureSchema(); err != nil {
		logger.Error("Failed to create database schema", log.Error(err))
		return err
	}

	data := getSeedData()

	// Seed achievements first (as they are referenced by player achievements)
	if err := s.seedAchievements(data.Achievements); err != nil {
		logger.Error("Failed to seed achievements", log.Error(err))
		return err
	}

	if err := s.seedPlayers(data.Players); err != nil {
		logger.Error("Failed to seed players", log.Error(err))
		return err
	}

	logger.Info("Database seeding process completed successfully")
	return nil
}

// ensureSchema creates the game tables if they do not already exist.
func (s *DBSeeder) ensureSchema() error {
	schema := []model.DBQuery{
		{
			ID: "SEED_CREATE_PLAYER_TABLE",
			Query: `CREATE TABLE IF NOT EXISTS PLAYER (
				WALLET_ADDRESS VARCHAR(64) PRIMARY KEY,
				USERNAME VARCHAR(255) UNIQUE NOT NULL,
				HIGH_SCORE BIGINT NOT NULL DEFAULT 0,
				GAMES_PLAYED INTEGER NOT NULL DEFAULT 0,
				ATTRIBUTES TEXT,
				CREATED_AT TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				UPDATED_AT TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
		},
		{
			ID: "SEED_CREATE_GAME_SESSION_TABLE",
			Query: `CREATE TABLE IF NOT EXISTS GAME_SESSION (
				SESSION_ID VARCHAR(36) PRIMARY KEY,
				WALLET_ADDRESS VARCHAR(64) NOT NULL REFERENCES PLAYER(WALLET_ADDRESS),
				STARTED_AT TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				LAST_SEEN_AT TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
		},
		{
			ID: "SEED_CREATE_ACHIEVEMENT_TABLE",
			Query: `CREATE TABLE IF NOT EXISTS ACHIEVEMENT (
				ACHIEVEMENT_ID VARCHAR(64) PRIMARY KEY,
				NAME VARCHAR(255) NOT NULL,
				DESCRIPTION TEXT,
				THRESHOLD BIGINT NOT NULL DEFAULT 0
			)`,
		},
		{
			ID: "SEED_CREATE_PLAYER_ACHIEVEMENT_TABLE",
			Query: `CREATE TABLE IF NOT EXISTS PLAYER_ACHIEVEMENT (
				WALLET_ADDRESS VARCHAR(64) NOT NULL REFERENCES PLAYER(WALLET_ADDRESS),
				ACHIEVEMENT_ID VARCHAR(64) NOT NULL REFERENCES ACHIEVEMENT(ACHIEVEMENT_ID),
				UNLOCKED_AT TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				PRIMARY KEY (WALLET_ADDRESS, ACHIEVEMENT_ID)
			)`,
		},
	}

	for _, query := range schema {
		if _, err := s.dbClient.Execute(query); err != nil {
			return err
		}
	}
	return nil
}

// seedAchievements seeds the achievement catalog.
func (s *DBSeeder) seedAchievements(achievements []AchievementData) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBSeeder"))

	for _, achievement := range achievements {
		query := model.DBQuery{
			ID:            "SEED_INSERT_ACHIEVEMENT",
			SQLiteQuery:   "INSERT OR IGNORE INTO ACHIEVEMENT (ACHIEVEMENT_ID, NAME, DESCRIPTION, THRESHOLD) VALUES (?, ?, ?, ?)",
			PostgresQuery: "INSERT INTO ACHIEVEMENT (ACHIEVEMENT_ID, NAME, DESCRIPTION, THRESHOLD) VALUES ($1, $2, $3, $4) ON CONFLICT (ACHIEVEMENT_ID) DO NOTHING",
		}

		_, err := s.dbClient.Execute(query, achievement.AchievementID, achievement.Name, achievement.Description, achievement.Threshold)
		if err != nil {
			logger.Error("Failed to insert achievement", log.String("achievement_id", achievement.AchievementID), log.Error(err))
			return err
		}
		logger.Debug("Seeded achievement", log.String("achievement_id", achievement.AchievementID), log.String("name", achievement.Name))
	}

	return nil
}

// seedPlayers seeds player data.
func (s *DBSeeder) seedPlayers(players []PlayerData) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBSeeder"))

	for _, player := range players {
		query := model.DBQuery{
			ID:            "SEED_INSERT_PLAYER",
			SQLiteQuery:   "INSERT OR IGNORE INTO PLAYER (WALLET_ADDRESS, USERNAME, HIGH_SCORE, GAMES_PLAYED, ATTRIBUTES, CREATED_AT, UPDATED_AT) VALUES (?, ?, ?, ?, ?, datetime('now'), datetime('now'))",
			PostgresQuery: "INSERT INTO PLAYER (WALLET_ADDRESS, USERNAME, HIGH_SCORE, GAMES_PLAYED, ATTRIBUTES) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (WALLET_ADDRESS) DO NOTHING",
		}

		_, err := s.dbClient.Execute(query, player.WalletAddress, player.Username, player.HighScore, player.GamesPlayed, player.Attributes)
		if err != nil {
			logger.Error("Failed to insert player", log.String("wallet_address", player.WalletAddress), log.Error(err))
			return err
		}
		logger.Debug("Seeded player", log.String("wallet_address", player.WalletAddress), log.String("username", player.Username))
	}

	return nil
}
