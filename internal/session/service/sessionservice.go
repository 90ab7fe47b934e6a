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

// Package service provides the implementation for game session management operations.
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/chainquest/vault/internal/cache"
	"github.com/chainquest/vault/internal/session/constants"
	"github.com/chainquest/vault/internal/session/model"
	"github.com/chainquest/vault/internal/session/store"
	"github.com/chainquest/vault/internal/system/database/provider"
	"github.com/chainquest/vault/internal/system/error/serviceerror"
	"github.com/chainquest/vault/internal/system/log"
	"github.com/chainquest/vault/internal/system/utils"
)

const loggerComponentName = "SessionService"

// SessionServiceInterface defines the interface for the session service.
type SessionServiceInterface interface {
	CreateSession(request *model.CreateSessionRequest) (*model.Session, *serviceerror.ServiceError)
	GetSession(ctx context.Context, sessionID string) (*model.Session, *serviceerror.ServiceError)
	RefreshSession(sessionID string) *serviceerror.ServiceError
	EndSession(sessionID string) *serviceerror.ServiceError
	EndPlayerSessions(walletAddress string) *serviceerror.ServiceError
}

// SessionService is the default implementation of the SessionServiceInterface.
type SessionService struct {
	store store.SessionStoreInterface
	cache *cache.NamespacedCache
}

// NewSessionService creates a new instance of SessionService.
func NewSessionService(dbProvider provider.DBProviderInterface,
	namespacedCache *cache.NamespacedCache) SessionServiceInterface {
	return &SessionService{
		store: store.NewSessionStore(dbProvider),
		cache: namespacedCache,
	}
}

// CreateSession starts a new game session for the given player and caches it.
func (ss *SessionService) CreateSession(
	request *model.CreateSessionRequest) (*model.Session, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if request == nil || strings.TrimSpace(request.WalletAddress) == "" {
		return nil, &constants.ErrorMissingWalletAddress
	}

	session := &model.Session{
		SessionID:     utils.GenerateUUID(),
		WalletAddress: request.WalletAddress,
	}
	if err := ss.store.CreateSession(session); err != nil {
		logger.Error("Failed to create session", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	ss.cache.SetSession(session.SessionID, session)

	logger.Debug("Session created", log.String(log.LoggerKeySessionID, session.SessionID))
	return session, nil
}

// GetSession retrieves a session by session ID, reading through the sessions
// namespace.
func (ss *SessionService) GetSession(ctx context.Context,
	sessionID string) (*model.Session, *serviceerror.ServiceError) {
	if sessionID == "" {
		return nil, &constants.ErrorMissingSessionID
	}

	value, err := ss.cache.GetOrLoad(ctx, cache.NamespaceSessions, cache.SessionKey(sessionID),
		func(ctx context.Context) (interface{}, error) {
			return ss.store.GetSession(sessionID)
		})
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return nil, &constants.ErrorSessionNotFound
		}
		logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
		logger.Error("Failed to load session", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	session, ok := value.(*model.Session)
	if !ok {
		return nil, &constants.ErrorInternalServerError
	}
	return session, nil
}

// RefreshSession advances the session's last seen timestamp and evicts the
// cached copy so the next read observes it.
func (ss *SessionService) RefreshSession(sessionID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if sessionID == "" {
		return &constants.ErrorMissingSessionID
	}

	if err := ss.store.TouchSession(sessionID); err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return &constants.ErrorSessionNotFound
		}
		logger.Error("Failed to refresh session", log.Error(err))
		return &constants.ErrorInternalServerError
	}

	ss.cache.DeleteSession(sessionID)
	return nil
}

// EndSession deletes a session and evicts the cached copy.
func (ss *SessionService) EndSession(sessionID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if sessionID == "" {
		return &constants.ErrorMissingSessionID
	}

	if err := ss.store.DeleteSession(sessionID); err != nil {
		logger.Error("Failed to delete session", log.Error(err))
		return &constants.ErrorInternalServerError
	}

	ss.cache.DeleteSession(sessionID)

	logger.Debug("Session ended", log.String(log.LoggerKeySessionID, sessionID))
	return nil
}

// EndPlayerSessions deletes every session of the given player and evicts the
// cached copies by address pattern.
func (ss *SessionService) EndPlayerSessions(walletAddress string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if walletAddress == "" {
		return &constants.ErrorMissingWalletAddress
	}

	if err := ss.store.DeletePlayerSessions(walletAddress); err != nil {
		logger.Error("Failed to delete player sessions", log.Error(err))
		return &constants.ErrorInternalServerError
	}

	// Session keys embed the session ID, not the address, so evict the whole
	// namespace rather than leaving stale sessions behind.
	ss.cache.InvalidateNamespace(cache.NamespaceSessions)

	logger.Debug("Player sessions ended", log.String("walletAddress", walletAddress))
	return nil
}
