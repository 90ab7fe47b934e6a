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

// Package service provides the implementation for player management operations.
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/chainquest/vault/internal/cache"
	"github.com/chainquest/vault/internal/player/constants"
	"github.com/chainquest/vault/internal/player/model"
	"github.com/chainquest/vault/internal/player/store"
	"github.com/chainquest/vault/internal/system/database/provider"
	"github.com/chainquest/vault/internal/system/error/serviceerror"
	"github.com/chainquest/vault/internal/system/log"
	"github.com/chainquest/vault/internal/system/metrics"
)

const loggerComponentName = "PlayerService"

// statisticsCacheKey is the cache key for the global statistics snapshot.
const statisticsCacheKey = "stats:global"

// leaderboardKindHighScore is the only leaderboard kind currently served.
const leaderboardKindHighScore = "highScore"

// DefaultLeaderboardLimit is the leaderboard size served when none is requested.
const DefaultLeaderboardLimit = 10

// MaxLeaderboardLimit is the largest leaderboard size a client may request.
const MaxLeaderboardLimit = 100

// PlayerServiceInterface defines the interface for the player service.
type PlayerServiceInterface interface {
	CreatePlayer(request *model.CreatePlayerRequest) (*model.Player, *serviceerror.ServiceError)
	GetPlayer(ctx context.Context, walletAddress string) (*model.Player, *serviceerror.ServiceError)
	SubmitScore(ctx context.Context, walletAddress string, score int64) (*model.ScoreResult, *serviceerror.ServiceError)
	DeletePlayer(walletAddress string) *serviceerror.ServiceError
	GetLeaderboard(ctx context.Context, limit int) (*model.Leaderboard, *serviceerror.ServiceError)
	GetPlayerAchievements(ctx context.Context, walletAddress string) ([]model.Achievement, *serviceerror.ServiceError)
	GetStatistics(ctx context.Context) (*model.PlayerStatistics, *serviceerror.ServiceError)
	IdentifyPlayers(filters map[string]interface{}) ([]string, *serviceerror.ServiceError)
	WarmPlayerCache(ctx context.Context, limit int) error
}

// PlayerService is the default implementation of the PlayerServiceInterface.
type PlayerService struct {
	store store.PlayerStoreInterface
	cache *cache.NamespacedCache
}

// NewPlayerService creates a new instance of PlayerService.
func NewPlayerService(dbProvider provider.DBProviderInterface,
	namespacedCache *cache.NamespacedCache) PlayerServiceInterface {
	return &PlayerService{
		store: store.NewPlayerStore(dbProvider),
		cache: namespacedCache,
	}
}

// CreatePlayer creates a new player record and caches it.
func (ps *PlayerService) CreatePlayer(
	request *model.CreatePlayerRequest) (*model.Player, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if svcErr := validateCreatePlayerRequest(request); svcErr != nil {
		return nil, svcErr
	}

	if _, err := ps.store.GetPlayer(request.WalletAddress); err == nil {
		return nil, &constants.ErrorPlayerAlreadyExists
	} else if !errors.Is(err, store.ErrPlayerNotFound) {
		logger.Error("Failed to check for existing player", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	if _, err := ps.store.GetPlayerByUsername(request.Username); err == nil {
		return nil, &constants.ErrorUsernameConflict
	} else if !errors.Is(err, store.ErrPlayerNotFound) {
		logger.Error("Failed to check for username conflict", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	player := &model.Player{
		WalletAddress: request.WalletAddress,
		Username:      request.Username,
		Attributes:    request.Attributes,
	}
	if err := ps.store.CreatePlayer(player); err != nil {
		logger.Error("Failed to create player", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	ps.cache.SetPlayer(player.WalletAddress, player)

	logger.Debug("Player created", log.String("walletAddress", player.WalletAddress))
	return player, nil
}

// GetPlayer retrieves a player by wallet address, reading through the players
// namespace.
func (ps *PlayerService) GetPlayer(ctx context.Context,
	walletAddress string) (*model.Player, *serviceerror.ServiceError) {
	if walletAddress == "" {
		return nil, &constants.ErrorMissingWalletAddress
	}

	value, err := ps.cache.GetOrLoad(ctx, cache.NamespacePlayers, cache.PlayerKey(walletAddress),
		func(ctx context.Context) (interface{}, error) {
			return ps.store.GetPlayer(walletAddress)
		})
	if err != nil {
		if errors.Is(err, store.ErrPlayerNotFound) {
			return nil, &constants.ErrorPlayerNotFound
		}
		logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
		logger.Error("Failed to load player", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	player, ok := value.(*model.Player)
	if !ok {
		return nil, &constants.ErrorInternalServerError
	}
	return player, nil
}

// SubmitScore records a finished game for the player, unlocks any achievements
// the score reached, and invalidates the cached entries the result touches.
func (ps *PlayerService) SubmitScore(ctx context.Context, walletAddress string,
	score int64) (*model.ScoreResult, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if walletAddress == "" {
		return nil, &constants.ErrorMissingWalletAddress
	}
	if score < 0 {
		return nil, &constants.ErrorInvalidScore
	}

	newHighScore, err := ps.store.RecordGameResult(walletAddress, score)
	if err != nil {
		if errors.Is(err, store.ErrPlayerNotFound) {
			return nil, &constants.ErrorPlayerNotFound
		}
		logger.Error("Failed to record game result", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	unlocked := ps.unlockReachedAchievements(walletAddress, score, logger)

	// The stored record changed, so the cached copies are stale. Leaderboards
	// referencing the player are recomputed on the next read.
	ps.cache.InvalidatePlayer(walletAddress)
	if len(unlocked) > 0 {
		ps.cache.Delete(cache.NamespaceAchievements, cache.AchievementsKey(walletAddress))
	}
	if newHighScore {
		ps.cache.Delete(cache.NamespaceStatistics, statisticsCacheKey)
	}

	player, svcErr := ps.GetPlayer(ctx, walletAddress)
	if svcErr != nil {
		return nil, svcErr
	}

	logger.Debug("Score submitted", log.String("walletAddress", walletAddress),
		log.Bool("newHighScore", newHighScore), log.Int("unlocked", len(unlocked)))
	return &model.ScoreResult{
		Player:               player,
		NewHighScore:         newHighScore,
		UnlockedAchievements: unlocked,
	}, nil
}

// unlockReachedAchievements unlocks every achievement the score reached. Unlock
// failures are logged and skipped; a partially awarded set is retried on the
// player's next submission.
func (ps *PlayerService) unlockReachedAchievements(walletAddress string, score int64,
	logger *log.Logger) []model.Achievement {
	reached, err := ps.store.GetUnlockableAchievements(walletAddress, score)
	if err != nil {
		logger.Error("Failed to look up unlockable achievements", log.Error(err))
		return nil
	}

	unlocked := make([]model.Achievement, 0, len(reached))
	for _, achievement := range reached {
		if err := ps.store.UnlockAchievement(walletAddress, achievement.AchievementID); err != nil {
			logger.Error("Failed to unlock achievement", log.Error(err),
				log.String("achievementId", achievement.AchievementID))
			continue
		}
		unlocked = append(unlocked, achievement)
	}
	return unlocked
}

// DeletePlayer deletes a player and evicts every cached entry referencing the
// wallet address.
func (ps *PlayerService) DeletePlayer(walletAddress string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if walletAddress == "" {
		return &constants.ErrorMissingWalletAddress
	}

	if err := ps.store.DeletePlayer(walletAddress); err != nil {
		logger.Error("Failed to delete player", log.Error(err))
		return &constants.ErrorInternalServerError
	}

	ps.cache.InvalidatePlayer(walletAddress)
	ps.cache.Delete(cache.NamespaceAchievements, cache.AchievementsKey(walletAddress))
	ps.cache.Delete(cache.NamespaceStatistics, statisticsCacheKey)

	logger.Debug("Player deleted", log.String("walletAddress", walletAddress))
	return nil
}

// GetLeaderboard retrieves the top players ordered by high score, reading
// through the leaderboards namespace.
func (ps *PlayerService) GetLeaderboard(ctx context.Context,
	limit int) (*model.Leaderboard, *serviceerror.ServiceError) {
	if limit == 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit < 1 || limit > MaxLeaderboardLimit {
		return nil, &constants.ErrorInvalidLimit
	}

	key := cache.LeaderboardKey(leaderboardKindHighScore, limit)
	value, err := ps.cache.GetOrLoad(ctx, cache.NamespaceLeaderboards, key,
		func(ctx context.Context) (interface{}, error) {
			entries, err := ps.store.GetLeaderboard(limit)
			if err != nil {
				return nil, err
			}
			return &model.Leaderboard{Kind: leaderboardKindHighScore, Entries: entries}, nil
		})
	if err != nil {
		logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
		logger.Error("Failed to load leaderboard", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	board, ok := value.(*model.Leaderboard)
	if !ok {
		return nil, &constants.ErrorInternalServerError
	}
	return board, nil
}

// GetPlayerAchievements retrieves the achievements unlocked by a player,
// reading through the achievements namespace.
func (ps *PlayerService) GetPlayerAchievements(ctx context.Context,
	walletAddress string) ([]model.Achievement, *serviceerror.ServiceError) {
	if walletAddress == "" {
		return nil, &constants.ErrorMissingWalletAddress
	}

	value, err := ps.cache.GetOrLoad(ctx, cache.NamespaceAchievements,
		cache.AchievementsKey(walletAddress),
		func(ctx context.Context) (interface{}, error) {
			return ps.store.GetPlayerAchievements(walletAddress)
		})
	if err != nil {
		logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
		logger.Error("Failed to load achievements", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	achievements, ok := value.([]model.Achievement)
	if !ok {
		return nil, &constants.ErrorInternalServerError
	}
	return achievements, nil
}

// GetStatistics retrieves aggregate statistics across all players, reading
// through the statistics namespace.
func (ps *PlayerService) GetStatistics(
	ctx context.Context) (*model.PlayerStatistics, *serviceerror.ServiceError) {
	value, err := ps.cache.GetOrLoad(ctx, cache.NamespaceStatistics, statisticsCacheKey,
		func(ctx context.Context) (interface{}, error) {
			return ps.store.GetStatistics()
		})
	if err != nil {
		logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
		logger.Error("Failed to load statistics", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	statistics, ok := value.(*model.PlayerStatistics)
	if !ok {
		return nil, &constants.ErrorInternalServerError
	}
	return statistics, nil
}

// IdentifyPlayers retrieves the wallet addresses of players whose attributes
// match the given filters. Results are not cached; matching runs against the
// system of record.
func (ps *PlayerService) IdentifyPlayers(
	filters map[string]interface{}) ([]string, *serviceerror.ServiceError) {
	if len(filters) == 0 {
		return nil, &constants.ErrorInvalidFilter
	}

	addresses, err := ps.store.IdentifyPlayers(filters)
	if err != nil {
		logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
		logger.Error("Failed to identify players", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}
	return addresses, nil
}

// WarmPlayerCache preloads the players namespace with the current top players.
// A warm failure leaves the cache in its prior state.
func (ps *PlayerService) WarmPlayerCache(ctx context.Context, limit int) error {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}

	return ps.cache.WarmCache(ctx, cache.NamespacePlayers,
		func(ctx context.Context) ([]cache.WarmEntry, error) {
			board, err := ps.store.GetLeaderboard(limit)
			if err != nil {
				return nil, err
			}

			entries := make([]cache.WarmEntry, 0, len(board))
			for _, row := range board {
				player, err := ps.store.GetPlayer(row.WalletAddress)
				if err != nil {
					return entries, err
				}
				entries = append(entries, cache.WarmEntry{
					Key:   cache.PlayerKey(player.WalletAddress),
					Value: player,
				})
			}

			metrics.WarmCacheEntries.WithLabelValues(cache.NamespacePlayers).
				Add(float64(len(entries)))
			return entries, nil
		})
}

func validateCreatePlayerRequest(request *model.CreatePlayerRequest) *serviceerror.ServiceError {
	if request == nil {
		return &constants.ErrorInvalidRequestFormat
	}
	if strings.TrimSpace(request.WalletAddress) == "" {
		return &constants.ErrorMissingWalletAddress
	}
	if strings.TrimSpace(request.Username) == "" {
		return &constants.ErrorInvalidRequestFormat
	}
	return nil
}
