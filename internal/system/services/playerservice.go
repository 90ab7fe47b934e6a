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

package services

import (
	"net/http"

	"github.com/chainquest/vault/internal/player/handler"
	playerprovider "github.com/chainquest/vault/internal/player/provider"
	"github.com/chainquest/vault/internal/system/metrics"
	"github.com/chainquest/vault/internal/system/middleware"
)

// PlayerService defines the service for player management operations.
type PlayerService struct {
	playerHandler *handler.PlayerHandler
	rateLimiter   *middleware.RateLimiter
}

// NewPlayerService creates a new instance of PlayerService.
func NewPlayerService(mux *http.ServeMux, playerProvider playerprovider.PlayerProviderInterface,
	rateLimiter *middleware.RateLimiter) ServiceInterface {
	instance := &PlayerService{
		playerHandler: handler.NewPlayerHandler(playerProvider),
		rateLimiter:   rateLimiter,
	}
	instance.RegisterRoutes(mux)

	return instance
}

// RegisterRoutes registers the routes for the PlayerService.
func (s *PlayerService) RegisterRoutes(mux *http.ServeMux) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("OPTIONS /players",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts1))
	mux.HandleFunc(middleware.WithCORS("POST /players",
		s.limited("/players", s.playerHandler.HandlePlayerPostRequest), opts1))
	mux.HandleFunc(middleware.WithCORS("GET /players",
		s.limited("/players", s.playerHandler.HandlePlayerListRequest), opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET, PUT, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("OPTIONS /players/{address}",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))
	mux.HandleFunc(middleware.WithCORS("GET /players/{address}",
		s.limited("/players/{address}", s.playerHandler.HandlePlayerGetRequest), opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /players/{address}",
		s.limited("/players/{address}", s.playerHandler.HandlePlayerDeleteRequest), opts2))

	mux.HandleFunc(middleware.WithCORS("OPTIONS /players/{address}/score",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))
	mux.HandleFunc(middleware.WithCORS("PUT /players/{address}/score",
		s.limited("/players/{address}/score", s.playerHandler.HandleScorePutRequest), opts2))

	opts3 := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("OPTIONS /players/{address}/achievements",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts3))
	mux.HandleFunc(middleware.WithCORS("GET /players/{address}/achievements",
		s.limited("/players/{address}/achievements",
			s.playerHandler.HandleAchievementsGetRequest), opts3))

	mux.HandleFunc(middleware.WithCORS("OPTIONS /leaderboard",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts3))
	mux.HandleFunc(middleware.WithCORS("GET /leaderboard",
		s.limited("/leaderboard", s.playerHandler.HandleLeaderboardGetRequest), opts3))

	mux.HandleFunc(middleware.WithCORS("OPTIONS /statistics",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts3))
	mux.HandleFunc(middleware.WithCORS("GET /statistics",
		s.limited("/statistics", s.playerHandler.HandleStatisticsGetRequest), opts3))
}

// limited instruments the handler and applies the per-client rate limit.
func (s *PlayerService) limited(path string, handler http.HandlerFunc) http.HandlerFunc {
	return s.rateLimiter.Limit(metrics.InstrumentHandler(path, handler))
}
