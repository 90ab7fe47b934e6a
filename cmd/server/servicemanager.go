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

package main

import (
	"net/http"

	"github.com/chainquest/vault/internal/cache"
	playerprovider "github.com/chainquest/vault/internal/player/provider"
	sessionprovider "github.com/chainquest/vault/internal/session/provider"
	"github.com/chainquest/vault/internal/system/config"
	"github.com/chainquest/vault/internal/system/database/provider"
	"github.com/chainquest/vault/internal/system/middleware"
	"github.com/chainquest/vault/internal/system/services"
)

// serviceDependencies carries the shared handles every registered service is
// built from.
type serviceDependencies struct {
	dbProvider      provider.DBProviderInterface
	cache           *cache.NamespacedCache
	config          *config.Config
	playerProvider  playerprovider.PlayerProviderInterface
	sessionProvider sessionprovider.SessionProviderInterface
	rateLimiter     *middleware.RateLimiter
}

// newServiceDependencies wires the domain providers and middleware from the
// infrastructure handles.
func newServiceDependencies(dbProvider provider.DBProviderInterface,
	namespacedCache *cache.NamespacedCache, cfg *config.Config) serviceDependencies {
	return serviceDependencies{
		dbProvider:      dbProvider,
		cache:           namespacedCache,
		config:          cfg,
		playerProvider:  playerprovider.NewPlayerProvider(dbProvider, namespacedCache),
		sessionProvider: sessionprovider.NewSessionProvider(dbProvider, namespacedCache),
		rateLimiter:     middleware.NewRateLimiter(namespacedCache, cfg.RateLimit),
	}
}

// registerServices registers all the services with the provided HTTP multiplexer.
func registerServices(mux *http.ServeMux, deps serviceDependencies) {
	services.NewHealthCheckService(mux, deps.dbProvider, deps.cache)
	services.NewMetricsService(mux, deps.cache)
	services.NewCacheAdminService(mux, deps.cache, deps.rateLimiter)
	services.NewPlayerService(mux, deps.playerProvider, deps.rateLimiter)
	services.NewSessionService(mux, deps.sessionProvider, deps.rateLimiter)
}
