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
	"errors"
	"fmt"
	"time"

	"github.com/chainquest/vault/internal/session/model"
	"github.com/chainquest/vault/internal/system/database/client"
	"github.com/chainquest/vault/internal/system/database/provider"
)

// ErrSessionNotFound is returned when no session exists for the given session ID.
var ErrSessionNotFound = errors.New("session not found")

// SessionStoreInterface defines the interface for game session persistence operations.
type SessionStoreInterface interface {
	CreateSession(session *model.Session) error
	GetSession(sessionID string) (*model.Session, error)
	TouchSession(sessionID string) error
	DeleteSession(sessionID string) error
	DeletePlayerSessions(walletAddress string) error
	GetSessionCount() (int, error)
}

// SessionStore is the default implementation of the SessionStoreInterface.
type SessionStore struct {
	dbProvider provider.DBProviderInterface
}

// NewSessionStore creates a new instance of SessionStore.
func NewSessionStore(dbProvider provider.DBProviderInterface) SessionStoreInterface {
	return &SessionStore{dbProvider: dbProvider}
}

func (ss *SessionStore) getClient() (client.DBClientInterface, error) {
	dbClient, err := ss.dbProvider.GetDBClient(provider.DBNameGame)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}
	return dbClient, nil
}

// CreateSession creates a new game session record.
func (ss *SessionStore) CreateSession(session *model.Session) error {
	dbClient, err := ss.getClient()
	if err != nil {
		return err
	}

	_, err = dbClient.Execute(QueryCreateSession, session.SessionID, session.WalletAddress)
	if err != nil {
		return fmt.Errorf("failed to execute create query: %w", err)
	}
	return nil
}

// GetSession retrieves a session by session ID.
func (ss *SessionStore) GetSession(sessionID string) (*model.Session, error) {
	dbClient, err := ss.getClient()
	if err != nil {
		return nil, err
	}

	results, err := dbClient.Query(QueryGetSessionByID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute session query: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrSessionNotFound
	}
	if len(results) > 1 {
		return nil, fmt.Errorf("unexpected number of rows returned: %d", len(results))
	}

	return buildSessionFromResultRow(results[0])
}

// TouchSession advances the session's last seen timestamp.
func (ss *SessionStore) TouchSession(sessionID string) error {
	dbClient, err := ss.getClient()
	if err != nil {
		return err
	}

	rowsAffected, err := dbClient.Execute(QueryTouchSession, sessionID)
	if err != nil {
		return fmt.Errorf("failed to execute touch query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// DeleteSession deletes a session by session ID.
func (ss *SessionStore) DeleteSession(sessionID string) error {
	dbClient, err := ss.getClient()
	if err != nil {
		return err
	}

	if _, err := dbClient.Execute(QueryDeleteSessionByID, sessionID); err != nil {
		return fmt.Errorf("failed to execute delete query: %w", err)
	}
	return nil
}

// DeletePlayerSessions deletes every session of the given player.
func (ss *SessionStore) DeletePlayerSessions(walletAddress string) error {
	dbClient, err := ss.getClient()
	if err != nil {
		return err
	}

	if _, err := dbClient.Execute(QueryDeleteSessionsByWalletAddress, walletAddress); err != nil {
		return fmt.Errorf("failed to execute delete query: %w", err)
	}
	return nil
}

// GetSessionCount retrieves the total count of sessions.
func (ss *SessionStore) GetSessionCount() (int, error) {
	dbClient, err := ss.getClient()
	if err != nil {
		return 0, err
	}

	results, err := dbClient.Query(QueryGetSessionCount)
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

func buildSessionFromResultRow(row map[string]interface{}) (*model.Session, error) {
	sessionID, ok := row["session_id"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse session_id as string")
	}
	walletAddress, ok := row["wallet_address"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse wallet_address as string")
	}

	return &model.Session{
		SessionID:     sessionID,
		WalletAddress: walletAddress,
		StartedAt:     timestampValue(row["started_at"]),
		LastSeenAt:    timestampValue(row["last_seen_at"]),
	}, nil
}

// timestampValue normalizes driver-dependent timestamp representations.
func timestampValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	}
	return ""
}
