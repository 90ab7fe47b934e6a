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

// Package provider provides the implementation for player management operations.
package provider

import (
	"github.com/chainquest/vault/internal/cache"
	"github.com/chainquest/vault/internal/player/service"
	"github.com/chainquest/vault/internal/system/database/provider"
)

// PlayerProviderInterface defines the interface for the player provider.
type PlayerProviderInterface interface {
	GetPlayerService() service.PlayerServiceInterface
}

// PlayerProvider is the default implementation of the PlayerProviderInterface.
type PlayerProvider struct {
	playerService service.PlayerServiceInterface
}

// NewPlayerProvider creates a new instance of PlayerProvider with the given
// dependencies.
func NewPlayerProvider(dbProvider provider.DBProviderInterface,
	namespacedCache *cache.NamespacedCache) PlayerProviderInterface {
	return &PlayerProvider{
		playerService: service.NewPlayerService(dbProvider, namespacedCache),
	}
}

// GetPlayerService returns the player service instance.
func (pp *PlayerProvider) GetPlayerService() service.PlayerServiceInterface {
	return pp.playerService
}
