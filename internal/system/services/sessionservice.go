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

	"github.com/chainquest/vault/internal/session/handler"
	sessionprovider "github.com/chainquest/vault/internal/session/provider"
	"github.com/chainquest/vault/internal/system/metrics"
	"github.com/chainquest/vault/internal/system/middleware"
)

// SessionService defines the service for game session management operations.
type SessionService struct {
	sessionHandler *handler.SessionHandler
	rateLimiter    *middleware.RateLimiter
}

// NewSessionService creates a new instance of SessionService.
func NewSessionService(mux *http.ServeMux,
	sessionProvider sessionprovider.SessionProviderInterface,
	rateLimiter *middleware.RateLimiter) ServiceInterface {
	instance := &SessionService{
		sessionHandler: handler.NewSessionHandler(sessionProvider),
		rateLimiter:    rateLimiter,
	}
	instance.RegisterRoutes(mux)

	return instance
}

// RegisterRoutes registers the routes for the SessionService.
func (s *SessionService) RegisterRoutes(mux *http.ServeMux) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("OPTIONS /sessions",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts1))
	mux.HandleFunc(middleware.WithCORS("POST /sessions",
		s.limited("/sessions", s.sessionHandler.HandleSessionPostRequest), opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("OPTIONS /sessions/{id}",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))
	mux.HandleFunc(middleware.WithCORS("GET /sessions/{id}",
		s.limited("/sessions/{id}", s.sessionHandler.HandleSessionGetRequest), opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /sessions/{id}",
		s.limited("/sessions/{id}", s.sessionHandler.HandleSessionDeleteRequest), opts2))

	mux.HandleFunc(middleware.WithCORS("OPTIONS /sessions/{id}/refresh",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))
	mux.HandleFunc(middleware.WithCORS("POST /sessions/{id}/refresh",
		s.limited("/sessions/{id}/refresh",
			s.sessionHandler.HandleSessionRefreshRequest), opts2))
}

// limited instruments the handler and applies the per-client rate limit.
func (s *SessionService) limited(path string, handler http.HandlerFunc) http.HandlerFunc {
	return s.rateLimiter.Limit(metrics.InstrumentHandler(path, handler))
}
