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

// Package sessionmock provides mock implementations of the session store for testing.
package sessionmock

import (
	"github.com/chainquest/vault/internal/session/model"
	"github.com/chainquest/vault/internal/session/store"
)

// MockSessionStore is a mock implementation of the SessionStoreInterface.
type MockSessionStore struct {
	// MockCreateSession defines the behavior for the CreateSession method.
	MockCreateSession func(session *model.Session) error

	// MockGetSession defines the behavior for the GetSession method.
	MockGetSession func(sessionID string) (*model.Session, error)

	// MockTouchSession defines the behavior for the TouchSession method.
	MockTouchSession func(sessionID string) error

	// MockDeleteSession defines the behavior for the DeleteSession method.
	MockDeleteSession func(sessionID string) error

	// MockDeletePlayerSessions defines the behavior for the DeletePlayerSessions method.
	MockDeletePlayerSessions func(walletAddress string) error

	// MockGetSessionCount defines the behavior for the GetSessionCount method.
	MockGetSessionCount func() (int, error)

	// GetSessionCalls tracks the session IDs passed to GetSession.
	GetSessionCalls []string
}

var _ store.SessionStoreInterface = (*MockSessionStore)(nil)

// CreateSession calls the mocked behavior.
func (m *MockSessionStore) CreateSession(session *model.Session) error {
	if m.MockCreateSession != nil {
		return m.MockCreateSession(session)
	}
	return nil
}

// GetSession calls the mocked behavior.
func (m *MockSessionStore) GetSession(sessionID string) (*model.Session, error) {
	m.GetSessionCalls = append(m.GetSessionCalls, sessionID)

	if m.MockGetSession != nil {
		return m.MockGetSession(sessionID)
	}
	return nil, store.ErrSessionNotFound
}

// TouchSession calls the mocked behavior.
func (m *MockSessionStore) TouchSession(sessionID string) error {
	if m.MockTouchSession != nil {
		return m.MockTouchSession(sessionID)
	}
	return nil
}

// DeleteSession calls the mocked behavior.
func (m *MockSessionStore) DeleteSession(sessionID string) error {
	if m.MockDeleteSession != nil {
		return m.MockDeleteSession(sessionID)
	}
	return nil
}

// DeletePlayerSessions calls the mocked behavior.
func (m *MockSessionStore) DeletePlayerSessions(walletAddress string) error {
	if m.MockDeletePlayerSessions != nil {
		return m.MockDeletePlayerSessions(walletAddress)
	}
	return nil
}

// GetSessionCount calls the mocked behavior.
func (m *MockSessionStore) GetSessionCount() (int, error) {
	if m.MockGetSessionCount != nil {
		return m.MockGetSessionCount()
	}
	return 0, nil
}
