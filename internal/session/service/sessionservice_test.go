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

package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/chainquest/vault/internal/cache"
	"github.com/chainquest/vault/internal/session/constants"
	"github.com/chainquest/vault/internal/session/model"
	"github.com/chainquest/vault/tests/mocks/sessionmock"
)

type SessionServiceTestSuite struct {
	suite.Suite
	mockStore *sessionmock.MockSessionStore
	cache     *cache.NamespacedCache
	service   SessionServiceInterface
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}

func (s *SessionServiceTestSuite) SetupTest() {
	s.mockStore = &sessionmock.MockSessionStore{}
	s.cache = cache.New(cache.DefaultNamespaceConfigs())
	s.service = &SessionService{store: s.mockStore, cache: s.cache}
}

func (s *SessionServiceTestSuite) TearDownTest() {
	s.cache.Shutdown()
}

func (s *SessionServiceTestSuite) TestCreateSessionAssignsUUID() {
	var created *model.Session
	s.mockStore.MockCreateSession = func(session *model.Session) error {
		created = session
		return nil
	}

	session, svcErr := s.service.CreateSession(&model.CreateSessionRequest{
		WalletAddress: "0xabc123",
	})
	s.Require().Nil(svcErr)
	s.Equal(created, session)
	s.Equal("0xabc123", session.WalletAddress)

	_, err := uuid.Parse(session.SessionID)
	s.NoError(err)

	// The new session is immediately served from the sessions namespace.
	cached, found := s.cache.GetSession(session.SessionID)
	s.True(found)
	s.Equal(session, cached)
}

func (s *SessionServiceTestSuite) TestCreateSessionMissingWallet() {
	session, svcErr := s.service.CreateSession(&model.CreateSessionRequest{})
	s.Nil(session)
	s.Require().NotNil(svcErr)
	s.Equal(constants.ErrorMissingWalletAddress.Code, svcErr.Code)
}

func (s *SessionServiceTestSuite) TestGetSessionReadThrough() {
	s.mockStore.MockGetSession = func(sessionID string) (*model.Session, error) {
		return &model.Session{SessionID: sessionID, WalletAddress: "0xabc123"}, nil
	}

	first, svcErr := s.service.GetSession(context.Background(), "session-1")
	s.Require().Nil(svcErr)
	s.Equal("0xabc123", first.WalletAddress)

	second, svcErr := s.service.GetSession(context.Background(), "session-1")
	s.Require().Nil(svcErr)
	s.Equal(first, second)
	s.Len(s.mockStore.GetSessionCalls, 1)
}

func (s *SessionServiceTestSuite) TestGetSessionNotFound() {
	session, svcErr := s.service.GetSession(context.Background(), "missing")
	s.Nil(session)
	s.Require().NotNil(svcErr)
	s.Equal(constants.ErrorSessionNotFound.Code, svcErr.Code)
}

func (s *SessionServiceTestSuite) TestRefreshSessionEvictsCachedCopy() {
	s.cache.SetSession("session-1", &model.Session{SessionID: "session-1"})

	svcErr := s.service.RefreshSession("session-1")
	s.Require().Nil(svcErr)

	_, found := s.cache.GetSession("session-1")
	s.False(found)
}

func (s *SessionServiceTestSuite) TestEndSessionEvictsCachedCopy() {
	s.cache.SetSession("session-1", &model.Session{SessionID: "session-1"})

	svcErr := s.service.EndSession("session-1")
	s.Require().Nil(svcErr)

	_, found := s.cache.GetSession("session-1")
	s.False(found)
}

func (s *SessionServiceTestSuite) TestEndPlayerSessionsFlushesNamespace() {
	s.cache.SetSession("session-1", &model.Session{SessionID: "session-1", WalletAddress: "0xabc"})
	s.cache.SetSession("session-2", &model.Session{SessionID: "session-2", WalletAddress: "0xdef"})

	svcErr := s.service.EndPlayerSessions("0xabc")
	s.Require().Nil(svcErr)

	_, found := s.cache.GetSession("session-1")
	s.False(found)
	_, found = s.cache.GetSession("session-2")
	s.False(found)
}

func (s *SessionServiceTestSuite) TestMissingSessionIDValidation() {
	_, svcErr := s.service.GetSession(context.Background(), "")
	s.Require().NotNil(svcErr)
	s.Equal(constants.ErrorMissingSessionID.Code, svcErr.Code)

	s.Equal(constants.ErrorMissingSessionID.Code, s.service.RefreshSession("").Code)
	s.Equal(constants.ErrorMissingSessionID.Code, s.service.EndSession("").Code)
}
