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
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/chainquest/vault/internal/player/model"
	"github.com/chainquest/vault/internal/system/database/client"
	dbmodel "github.com/chainquest/vault/internal/system/database/model"
	"github.com/chainquest/vault/internal/system/database/provider"
	"github.com/chainquest/vault/tests/mocks/databasemock"
)

type PlayerStoreTestSuite struct {
	suite.Suite
	mockClient *databasemock.MockDBClient
	store      PlayerStoreInterface
}

func TestPlayerStoreTestSuite(t *testing.T) {
	suite.Run(t, new(PlayerStoreTestSuite))
}

func (s *PlayerStoreTestSuite) SetupTest() {
	s.mockClient = &databasemock.MockDBClient{}
	mockProvider := &databasemock.MockDBProvider{
		MockGetDBClient: func(dbName string) (client.DBClientInterface, error) {
			s.Equal(provider.DBNameGame, dbName)
			return s.mockClient, nil
		},
	}
	s.store = NewPlayerStore(mockProvider)
}

func (s *PlayerStoreTestSuite) TestGetPlayerSuccess() {
	s.mockClient.MockQuery = func(query dbmodel.DBQuery,
		args ...interface{}) ([]map[string]interface{}, error) {
		s.Equal(QueryGetPlayerByWalletAddress.ID, query.ID)
		s.Require().Len(args, 1)
		s.Equal("0xabc123", args[0])

		return []map[string]interface{}{
			{
				"wallet_address": "0xabc123",
				"username":       "genesis",
				"high_score":     int64(4200),
				"games_played":   int64(17),
				"attributes":     `{"tier": "free"}`,
			},
		}, nil
	}

	player, err := s.store.GetPlayer("0xabc123")
	s.Require().NoError(err)
	s.Equal("0xabc123", player.WalletAddress)
	s.Equal("genesis", player.Username)
	s.Equal(int64(4200), player.HighScore)
	s.Equal(int64(17), player.GamesPlayed)
	s.JSONEq(`{"tier": "free"}`, string(player.Attributes))
}

func (s *PlayerStoreTestSuite) TestGetPlayerNotFound() {
	s.mockClient.MockQuery = func(query dbmodel.DBQuery,
		args ...interface{}) ([]map[string]interface{}, error) {
		return []map[string]interface{}{}, nil
	}

	player, err := s.store.GetPlayer("0xmissing")
	s.Nil(player)
	s.ErrorIs(err, ErrPlayerNotFound)
}

func (s *PlayerStoreTestSuite) TestGetPlayerAttributesAsBytes() {
	s.mockClient.MockQuery = func(query dbmodel.DBQuery,
		args ...interface{}) ([]map[string]interface{}, error) {
		return []map[string]interface{}{
			{
				"wallet_address": "0xabc123",
				"username":       "genesis",
				"high_score":     int64(0),
				"games_played":   int64(0),
				"attributes":     []byte(`{"region": "eu-west"}`),
			},
		}, nil
	}

	player, err := s.store.GetPlayer("0xabc123")
	s.Require().NoError(err)
	s.JSONEq(`{"region": "eu-west"}`, string(player.Attributes))
}

func (s *PlayerStoreTestSuite) TestGetPlayerQueryError() {
	s.mockClient.MockQuery = func(query dbmodel.DBQuery,
		args ...interface{}) ([]map[string]interface{}, error) {
		return nil, errors.New("connection reset")
	}

	player, err := s.store.GetPlayer("0xabc123")
	s.Nil(player)
	s.Require().Error(err)
	s.NotErrorIs(err, ErrPlayerNotFound)
}

func (s *PlayerStoreTestSuite) TestGetPlayerProviderError() {
	mockProvider := &databasemock.MockDBProvider{
		MockGetDBClient: func(dbName string) (client.DBClientInterface, error) {
			return nil, errors.New("database unavailable")
		},
	}
	playerStore := NewPlayerStore(mockProvider)

	player, err := playerStore.GetPlayer("0xabc123")
	s.Nil(player)
	s.Error(err)
}

func (s *PlayerStoreTestSuite) TestCreatePlayerDefaultsAttributes() {
	s.mockClient.MockExecute = func(query dbmodel.DBQuery, args ...interface{}) (int64, error) {
		s.Equal(QueryCreatePlayer.ID, query.ID)
		s.Require().Len(args, 3)
		s.Equal("0xnew", args[0])
		s.Equal("rookie", args[1])
		s.Equal("{}", args[2])
		return 1, nil
	}

	player := &model.Player{WalletAddress: "0xnew", Username: "rookie"}
	err := s.store.CreatePlayer(player)
	s.NoError(err)
}

func (s *PlayerStoreTestSuite) TestRecordGameResultNewHighScore() {
	tx := &databasemock.MockTx{
		MockExec: func(query string, args ...any) (sql.Result, error) {
			s.Equal(QueryRecordGameResult.Query, query)
			return &databasemock.MockSQLResult{
				MockRowsAffected: func() (int64, error) { return 1, nil },
			}, nil
		},
	}
	s.mockClient.MockBeginTx = func() (dbmodel.TxInterface, error) { return tx, nil }

	newHighScore, err := s.store.RecordGameResult("0xabc123", 9000)
	s.Require().NoError(err)
	s.True(newHighScore)
	s.Len(tx.ExecCalls, 1)
	s.Equal(1, tx.CommitCalls)
	s.Zero(tx.RollbackCalls)
}

func (s *PlayerStoreTestSuite) TestRecordGameResultBelowHighScore() {
	tx := &databasemock.MockTx{}
	tx.MockExec = func(query string, args ...any) (sql.Result, error) {
		affected := int64(0)
		if query == QueryIncrementGamesPlayed.Query {
			affected = 1
		}
		return &databasemock.MockSQLResult{
			MockRowsAffected: func() (int64, error) { return affected, nil },
		}, nil
	}
	s.mockClient.MockBeginTx = func() (dbmodel.TxInterface, error) { return tx, nil }

	newHighScore, err := s.store.RecordGameResult("0xabc123", 10)
	s.Require().NoError(err)
	s.False(newHighScore)
	s.Require().Len(tx.ExecCalls, 2)
	s.Equal(QueryRecordGameResult.Query, tx.ExecCalls[0].Query)
	s.Equal(QueryIncrementGamesPlayed.Query, tx.ExecCalls[1].Query)
	s.Equal(1, tx.CommitCalls)
}

func (s *PlayerStoreTestSuite) TestRecordGameResultUnknownPlayer() {
	tx := &databasemock.MockTx{
		MockExec: func(query string, args ...any) (sql.Result, error) {
			return &databasemock.MockSQLResult{
				MockRowsAffected: func() (int64, error) { return 0, nil },
			}, nil
		},
	}
	s.mockClient.MockBeginTx = func() (dbmodel.TxInterface, error) { return tx, nil }

	_, err := s.store.RecordGameResult("0xmissing", 10)
	s.ErrorIs(err, ErrPlayerNotFound)
	s.Equal(1, tx.RollbackCalls)
	s.Zero(tx.CommitCalls)
}

func (s *PlayerStoreTestSuite) TestRecordGameResultExecErrorRollsBack() {
	tx := &databasemock.MockTx{
		MockExec: func(query string, args ...any) (sql.Result, error) {
			return nil, errors.New("disk I/O error")
		},
	}
	s.mockClient.MockBeginTx = func() (dbmodel.TxInterface, error) { return tx, nil }

	_, err := s.store.RecordGameResult("0xabc123", 10)
	s.Error(err)
	s.Equal(1, tx.RollbackCalls)
	s.Zero(tx.CommitCalls)
}

func (s *PlayerStoreTestSuite) TestGetLeaderboardAssignsRanks() {
	s.mockClient.MockQuery = func(query dbmodel.DBQuery,
		args ...interface{}) ([]map[string]interface{}, error) {
		s.Equal(QueryGetLeaderboard.ID, query.ID)
		s.Require().Len(args, 1)
		s.Equal(3, args[0])

		return []map[string]interface{}{
			{"wallet_address": "0xaaa", "username": "first", "high_score": int64(300)},
			{"wallet_address": "0xbbb", "username": "second", "high_score": int64(200)},
			{"wallet_address": "0xccc", "username": "third", "high_score": int64(100)},
		}, nil
	}

	entries, err := s.store.GetLeaderboard(3)
	s.Require().NoError(err)
	s.Require().Len(entries, 3)
	s.Equal(1, entries[0].Rank)
	s.Equal("first", entries[0].Username)
	s.Equal(3, entries[2].Rank)
	s.Equal(int64(100), entries[2].HighScore)
}

func (s *PlayerStoreTestSuite) TestGetPlayerCount() {
	s.mockClient.MockQuery = func(query dbmodel.DBQuery,
		args ...interface{}) ([]map[string]interface{}, error) {
		s.Equal(QueryGetPlayerCount.ID, query.ID)
		return []map[string]interface{}{{"total": int64(42)}}, nil
	}

	count, err := s.store.GetPlayerCount()
	s.Require().NoError(err)
	s.Equal(42, count)
}

func (s *PlayerStoreTestSuite) TestGetStatistics() {
	s.mockClient.MockQuery = func(query dbmodel.DBQuery,
		args ...interface{}) ([]map[string]interface{}, error) {
		s.Equal(QueryGetPlayerStatistics.ID, query.ID)
		return []map[string]interface{}{
			{
				"total_players": int64(10),
				"total_games":   int64(250),
				"highest_score": int64(99999),
			},
		}, nil
	}

	statistics, err := s.store.GetStatistics()
	s.Require().NoError(err)
	s.Equal(int64(10), statistics.TotalPlayers)
	s.Equal(int64(250), statistics.TotalGamesPlayed)
	s.Equal(int64(99999), statistics.HighestScore)
}

func (s *PlayerStoreTestSuite) TestGetUnlockableAchievements() {
	s.mockClient.MockQuery = func(query dbmodel.DBQuery,
		args ...interface{}) ([]map[string]interface{}, error) {
		s.Equal(QueryGetUnlockableAchievements.ID, query.ID)
		s.Require().Len(args, 2)
		s.Equal("0xabc123", args[0])
		s.Equal(int64(5000), args[1])

		return []map[string]interface{}{
			{
				"achievement_id": "first-win",
				"name":           "First Win",
				"description":    "Finish a game with a positive score",
				"threshold":      int64(1),
			},
		}, nil
	}

	achievements, err := s.store.GetUnlockableAchievements("0xabc123", 5000)
	s.Require().NoError(err)
	s.Require().Len(achievements, 1)
	s.Equal("first-win", achievements[0].AchievementID)
	s.Equal(int64(1), achievements[0].Threshold)
}

func (s *PlayerStoreTestSuite) TestUnlockAchievement() {
	s.mockClient.MockExecute = func(query dbmodel.DBQuery, args ...interface{}) (int64, error) {
		s.Equal(QueryUnlockAchievement.ID, query.ID)
		s.Require().Len(args, 2)
		s.Equal("0xabc123", args[0])
		s.Equal("high-roller", args[1])
		return 1, nil
	}

	err := s.store.UnlockAchievement("0xabc123", "high-roller")
	s.NoError(err)
}

func (s *PlayerStoreTestSuite) TestIdentifyPlayersByAttributeFilter() {
	s.mockClient.MockQuery = func(query dbmodel.DBQuery,
		args ...interface{}) ([]map[string]interface{}, error) {
		s.Equal("CQV-PLAYER_MGT-13", query.ID)
		s.Require().Len(args, 1)
		s.Equal("premium", args[0])

		return []map[string]interface{}{
			{"wallet_address": "0xaaa"},
			{"wallet_address": "0xbbb"},
		}, nil
	}

	addresses, err := s.store.IdentifyPlayers(map[string]interface{}{"tier": "premium"})
	s.Require().NoError(err)
	s.Equal([]string{"0xaaa", "0xbbb"}, addresses)
}
