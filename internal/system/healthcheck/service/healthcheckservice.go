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

// Package service provides health check-related business logic and operations.
package service

import (
	"github.com/chainquest/vault/internal/cache"
	dbmodel "github.com/chainquest/vault/internal/system/database/model"
	"github.com/chainquest/vault/internal/system/database/provider"
	"github.com/chainquest/vault/internal/system/healthcheck/model"
	"github.com/chainquest/vault/internal/system/log"
)

// HealthCheckServiceInterface defines the interface for the health check service.
type HealthCheckServiceInterface interface {
	CheckReadiness() model.ServerStatus
}

// HealthCheckService is the default implementation of the HealthCheckServiceInterface.
type HealthCheckService struct {
	DBProvider provider.DBProviderInterface
	Cache      *cache.NamespacedCache
}

// NewHealthCheckService creates a new instance of HealthCheckService.
func NewHealthCheckService(
	dbProvider provider.DBProviderInterface,
	namespacedCache *cache.NamespacedCache,
) HealthCheckServiceInterface {
	return &HealthCheckService{
		DBProvider: dbProvider,
		Cache:      namespacedCache,
	}
}

// CheckReadiness checks the readiness of the server and its dependencies.
func (hcs *HealthCheckService) CheckReadiness() model.ServerStatus {
	gameDBStatus := model.ServiceStatus{
		ServiceName: "GameDB",
		Status:      hcs.checkDatabaseStatus(provider.DBNameGame, queryGameDBTable),
	}

	cacheStatus := model.ServiceStatus{
		ServiceName: "Cache",
		Status:      hcs.checkCacheStatus(),
	}

	status := model.StatusUp
	if gameDBStatus.Status == model.StatusDown {
		status = model.StatusDown
	}
	return model.ServerStatus{
		Status: status,
		ServiceStatus: []model.ServiceStatus{
			gameDBStatus,
			cacheStatus,
		},
	}
}

// checkDatabaseStatus checks the status of the specified database with the specified query.
// The client manages its own connection pool, so it is not closed after the probe.
func (hcs *HealthCheckService) checkDatabaseStatus(dbname string, query dbmodel.DBQuery) model.Status {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckService"))

	dbClient, err := hcs.DBProvider.GetDBClient(dbname)
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return model.StatusDown
	}

	_, err = dbClient.Query(query)
	if err != nil {
		logger.Error("Failed to execute query", log.Error(err))
		return model.StatusDown
	}
	return model.StatusUp
}

// checkCacheStatus reports the cache liveness. A disabled cache is still
// considered up since all cache operations degrade to no-ops.
func (hcs *HealthCheckService) checkCacheStatus() model.Status {
	if hcs.Cache == nil {
		return model.StatusDown
	}
	health := hcs.Cache.HealthCheck()
	if health.Status != "healthy" {
		return model.StatusDown
	}
	return model.StatusUp
}
