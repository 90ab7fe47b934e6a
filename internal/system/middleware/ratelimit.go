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

package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/chainquest/vault/internal/cache"
	"github.com/chainquest/vault/internal/system/config"
	"github.com/chainquest/vault/internal/system/log"
	"github.com/chainquest/vault/internal/system/metrics"
	"github.com/chainquest/vault/internal/system/utils"
)

// RateLimiter wraps HTTP handlers with a fixed-window request limiter
// backed by the rate limit cache namespace.
type RateLimiter struct {
	cache *cache.NamespacedCache
	cfg   config.RateLimitConfig
}

// NewRateLimiter creates a new RateLimiter with the given cache and configuration.
func NewRateLimiter(namespacedCache *cache.NamespacedCache, cfg config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		cache: namespacedCache,
		cfg:   cfg,
	}
}

// Limit wraps the given handler with rate limiting. Requests are counted per
// client address within the configured window. When the cache is disabled the
// limiter fails open and all requests pass through.
func (rl *RateLimiter) Limit(handler http.HandlerFunc) http.HandlerFunc {
	if rl.cfg.Disabled || rl.cfg.MaxRequests <= 0 {
		return handler
	}

	window := time.Duration(rl.cfg.WindowSeconds) * time.Second
	return func(w http.ResponseWriter, r *http.Request) {
		identifier := clientAddress(r)
		count := rl.cache.IncrementRateLimit(identifier, window)
		if count > int64(rl.cfg.MaxRequests) {
			logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "RateLimiter"))
			logger.Warn("Request rate limit exceeded",
				log.String("client", identifier), log.Int64("count", count))

			metrics.RateLimitRejections.Inc()
			w.Header().Set("Retry-After", strconv.Itoa(rl.cfg.WindowSeconds))
			utils.WriteJSONError(w, "too_many_requests", "Request rate limit exceeded",
				http.StatusTooManyRequests, nil)
			return
		}
		handler(w, r)
	}
}

// clientAddress resolves the client identifier for rate limiting, preferring
// the first entry of the X-Forwarded-For header over the remote address.
func clientAddress(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
