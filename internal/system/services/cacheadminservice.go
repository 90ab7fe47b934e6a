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

	"github.com/chainquest/vault/internal/cache"
	"github.com/chainquest/vault/internal/cache/handler"
	"github.com/chainquest/vault/internal/system/metrics"
	"github.com/chainquest/vault/internal/system/middleware"
)

// CacheAdminService defines the service for cache administration operations.
type CacheAdminService struct {
	cacheAdminHandler *handler.CacheAdminHandler
	rateLimiter       *middleware.RateLimiter
}

// NewCacheAdminService creates a new instance of CacheAdminService.
func NewCacheAdminService(mux *http.ServeMux, namespacedCache *cache.NamespacedCache,
	rateLimiter *middleware.RateLimiter) ServiceInterface {
	instance := &CacheAdminService{
		cacheAdminHandler: handler.NewCacheAdminHandler(namespacedCache),
		rateLimiter:       rateLimiter,
	}
	instance.RegisterRoutes(mux)

	return instance
}

// RegisterRoutes registers the routes for the CacheAdminService.
func (s *CacheAdminService) RegisterRoutes(mux *http.ServeMux) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("OPTIONS /cache/stats",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts1))
	mux.HandleFunc(middleware.WithCORS("GET /cache/stats",
		metrics.InstrumentHandler("/cache/stats",
			s.cacheAdminHandler.HandleStatsRequest), opts1))

	mux.HandleFunc(middleware.WithCORS("OPTIONS /cache/health",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts1))
	mux.HandleFunc(middleware.WithCORS("GET /cache/health",
		metrics.InstrumentHandler("/cache/health",
			s.cacheAdminHandler.HandleHealthRequest), opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("OPTIONS /cache/invalidate",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))
	mux.HandleFunc(middleware.WithCORS("POST /cache/invalidate",
		s.rateLimiter.Limit(metrics.InstrumentHandler("/cache/invalidate",
			s.cacheAdminHandler.HandleInvalidateRequest)), opts2))
}
