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

// Package handler provides the implementation for cache administration operations.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/chainquest/vault/internal/cache"
	serverconst "github.com/chainquest/vault/internal/system/constants"
	"github.com/chainquest/vault/internal/system/log"
	"github.com/chainquest/vault/internal/system/utils"
)

const loggerComponentName = "CacheAdminHandler"

// InvalidateRequest represents the request body for a cache invalidation.
// Namespaces is a comma separated list; empty means every namespace. When
// Pattern is set, only keys containing the substring are removed.
type InvalidateRequest struct {
	Namespaces string `json:"namespaces,omitempty"`
	Pattern    string `json:"pattern,omitempty"`
}

// InvalidateResponse reports the number of entries removed per namespace.
type InvalidateResponse struct {
	Removed map[string]int `json:"removed"`
}

// CacheAdminHandler is the handler for cache administration operations.
type CacheAdminHandler struct {
	cache *cache.NamespacedCache
}

// NewCacheAdminHandler creates a new instance of CacheAdminHandler.
func NewCacheAdminHandler(namespacedCache *cache.NamespacedCache) *CacheAdminHandler {
	return &CacheAdminHandler{cache: namespacedCache}
}

// HandleStatsRequest handles the get cache statistics request.
func (ch *CacheAdminHandler) HandleStatsRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(ch.cache.GetStats()); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// HandleHealthRequest handles the get cache health request. The probe reports
// liveness only and always answers.
func (ch *CacheAdminHandler) HandleHealthRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(ch.cache.HealthCheck()); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// HandleInvalidateRequest handles the cache invalidation request.
func (ch *CacheAdminHandler) HandleInvalidateRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	request, err := utils.DecodeJSONBody[InvalidateRequest](r)
	if err != nil {
		utils.WriteJSONError(w, "invalid_request",
			"Failed to parse request body: "+err.Error(), http.StatusBadRequest, nil)
		return
	}

	namespaces := utils.ParseStringArray(request.Namespaces, ",")
	if len(namespaces) == 0 {
		namespaces = ch.cache.Namespaces()
	}

	stats := ch.cache.GetStats()
	removed := make(map[string]int, len(namespaces))
	for _, namespace := range namespaces {
		if _, known := stats[namespace]; !known {
			utils.WriteJSONError(w, "invalid_namespace",
				"Unknown cache namespace: "+namespace, http.StatusBadRequest, nil)
			return
		}

		if request.Pattern != "" {
			removed[namespace] = ch.cache.InvalidatePattern(namespace, request.Pattern)
			continue
		}
		removed[namespace] = stats[namespace].KeyCount
		ch.cache.InvalidateNamespace(namespace)
	}

	logger.Debug("Cache invalidated", log.Int("namespaces", len(namespaces)),
		log.String("pattern", request.Pattern))

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(InvalidateResponse{Removed: removed}); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
