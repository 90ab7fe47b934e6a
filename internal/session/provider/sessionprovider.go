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

// Package provider provides the implementation for game session management operations.
package provider

import (
	"github.com/chainquest/vault/internal/cache"
	"github.com/chainquest/vault/internal/session/service"
	"github.com/chainquest/vault/internal/system/database/provider"
)

// SessionProviderInterface defines the interface for the session provider.
type SessionProviderInterface interface {
	GetSessionService() service.SessionServiceInterface
}

// SessionProvider is the default implementation of the SessionProviderInterface.
type SessionProvider struct {
	sessionService service.SessionServiceInterface
}

// NewSessionProvider creates a new instance of SessionProvider with the given
// dependencies.
func NewSessionProvider(dbProvider provider.DBProviderInterface,
	namespacedCache *cache.NamespacedCache) SessionProviderInterface {
	return &SessionProvider{
		sessionService: service.NewSessionService(dbProvider, namespacedCache),
	}
}

// GetSessionService returns the session service instance.
func (sp *SessionProvider) GetSessionService() service.SessionServiceInterface {
	return sp.sessionService
}
