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

package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/chainquest/vault/internal/cache"
	"github.com/chainquest/vault/internal/system/database/client"
	dbmodel "github.com/chainquest/vault/internal/system/database/model"
	"github.com/chainquest/vault/internal/system/healthcheck/model"
	"github.com/chainquest/vault/tests/mocks/databasemock"
)

type HealthCheckServiceTestSuite struct {
	suite.Suite
	service        HealthCheckServiceInterface
	mockDBProvider *databasemock.MockDBProvider
	mockGameDB     *databasemock.MockDBClient
	cache          *cache.NamespacedCache
}

func TestHealthCheckServiceSuite(t *testing.T) {
	suite.Run(t, new(HealthCheckServiceTestSuite))
}

func (suite *HealthCheckServiceTestSuite) SetupTest() {
	suite.mockGameDB = &databasemock.MockDBClient{}
	suite.mockDBProvider = &databasemock.MockDBProvider{
		MockGetDBClient: func(dbName string) (client.DBClientInterface, error) {
			return suite.mockGameDB, nil
		},
	}
	suite.cache = cache.New(cache.DefaultNamespaceConfigs())
	suite.service = NewHealthCheckService(suite.mockDBProvider, suite.cache)
}

func (suite *HealthCheckServiceTestSuite) TearDownTest() {
	suite.cache.Shutdown()
}

func (suite *HealthCheckServiceTestSuite) TestCheckReadiness() {
	testCases := []struct {
		name           string
		setupGameDB    func()
		expectedStatus model.Status
	}{
		{
			name: "GameDBUp",
			setupGameDB: func() {
				suite.mockGameDB.MockQuery = func(query dbmodel.DBQuery, args ...interface{}) ([]map[string]interface{}, error) {
					return []map[string]interface{}{{"achievement_id": "first-game"}}, nil
				}
			},
			expectedStatus: model.StatusUp,
		},
		{
			name: "GameDBDown",
			setupGameDB: func() {
				suite.mockGameDB.MockQuery = func(query dbmodel.DBQuery, args ...interface{}) ([]map[string]interface{}, error) {
					return nil, errors.New("database error")
				}
			},
			expectedStatus: model.StatusDown,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			tc.setupGameDB()

			status := suite.service.CheckReadiness()

			assert.Equal(suite.T(), tc.expectedStatus, status.Status)
			assert.Len(suite.T(), status.ServiceStatus, 2)
			assert.Equal(suite.T(), "GameDB", status.ServiceStatus[0].ServiceName)
			assert.Equal(suite.T(), "Cache", status.ServiceStatus[1].ServiceName)
		})
	}
}

func (suite *HealthCheckServiceTestSuite) TestCheckReadinessProviderError() {
	suite.mockDBProvider.MockGetDBClient = func(dbName string) (client.DBClientInterface, error) {
		return nil, errors.New("connection refused")
	}

	status := suite.service.CheckReadiness()

	assert.Equal(suite.T(), model.StatusDown, status.Status)
	assert.Equal(suite.T(), model.StatusDown, status.ServiceStatus[0].Status)
}

func (suite *HealthCheckServiceTestSuite) TestCheckReadinessCacheAlwaysUp() {
	suite.mockGameDB.MockQuery = func(query dbmodel.DBQuery, args ...interface{}) ([]map[string]interface{}, error) {
		return []map[string]interface{}{}, nil
	}

	status := suite.service.CheckReadiness()

	assert.Equal(suite.T(), model.StatusUp, status.ServiceStatus[1].Status)
}

func (suite *HealthCheckServiceTestSuite) TestCheckReadinessNilCache() {
	service := NewHealthCheckService(suite.mockDBProvider, nil)
	suite.mockGameDB.MockQuery = func(query dbmodel.DBQuery, args ...interface{}) ([]map[string]interface{}, error) {
		return []map[string]interface{}{}, nil
	}

	status := service.CheckReadiness()

	assert.Equal(suite.T(), model.StatusDown, status.ServiceStatus[1].Status)
}
