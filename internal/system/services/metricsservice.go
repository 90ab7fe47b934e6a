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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chainquest/vault/internal/cache"
	"github.com/chainquest/vault/internal/system/log"
	"github.com/chainquest/vault/internal/system/metrics"
)

// MetricsService exposes the Prometheus scrape endpoint.
type MetricsService struct{}

// NewMetricsService registers the cache collector with the default registry
// and exposes it on /metrics.
func NewMetricsService(mux *http.ServeMux, namespacedCache *cache.NamespacedCache) ServiceInterface {
	if err := prometheus.Register(metrics.NewCacheCollector(namespacedCache)); err != nil {
		// Re-registration happens only when the service is constructed twice
		// in-process; the first collector keeps serving.
		logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "MetricsService"))
		logger.Warn("Cache collector already registered", log.Error(err))
	}

	instance := &MetricsService{}
	instance.RegisterRoutes(mux)

	return instance
}

// RegisterRoutes registers the routes for the MetricsService.
func (s *MetricsService) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("GET /metrics", promhttp.Handler())
}
