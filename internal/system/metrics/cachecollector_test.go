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

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/chainquest/vault/internal/cache"
)

type CacheCollectorTestSuite struct {
	suite.Suite
	cache    *cache.NamespacedCache
	registry *prometheus.Registry
}

func TestCacheCollectorTestSuite(t *testing.T) {
	suite.Run(t, new(CacheCollectorTestSuite))
}

func (suite *CacheCollectorTestSuite) SetupTest() {
	suite.cache = cache.New(cache.DefaultNamespaceConfigs())
	suite.registry = prometheus.NewPedanticRegistry()
	suite.Require().NoError(suite.registry.Register(NewCacheCollector(suite.cache)))
}

func (suite *CacheCollectorTestSuite) TearDownTest() {
	suite.cache.Shutdown()
}

func (suite *CacheCollectorTestSuite) gatherValue(name, namespace string) (float64, bool) {
	families, err := suite.registry.Gather()
	require.NoError(suite.T(), err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "namespace" && label.GetValue() == namespace {
					if metric.GetGauge() != nil {
						return metric.GetGauge().GetValue(), true
					}
					return metric.GetCounter().GetValue(), true
				}
			}
		}
	}
	return 0, false
}

func (suite *CacheCollectorTestSuite) TestCollectExportsAllNamespaces() {
	families, err := suite.registry.Gather()
	require.NoError(suite.T(), err)

	var keysFamilyMetrics int
	for _, family := range families {
		if family.GetName() == "vault_cache_keys" {
			keysFamilyMetrics = len(family.GetMetric())
		}
	}
	assert.Equal(suite.T(), len(cache.DefaultNamespaceConfigs()), keysFamilyMetrics)
}

func (suite *CacheCollectorTestSuite) TestCollectTracksActivity() {
	suite.cache.Set(cache.NamespacePlayers, "player:0xabc", "profile", time.Minute)
	suite.cache.Get(cache.NamespacePlayers, "player:0xabc")
	suite.cache.Get(cache.NamespacePlayers, "player:missing")

	keys, ok := suite.gatherValue("vault_cache_keys", cache.NamespacePlayers)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), float64(1), keys)

	hits, ok := suite.gatherValue("vault_cache_hits_total", cache.NamespacePlayers)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), float64(1), hits)

	misses, ok := suite.gatherValue("vault_cache_misses_total", cache.NamespacePlayers)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), float64(1), misses)

	sets, ok := suite.gatherValue("vault_cache_sets_total", cache.NamespacePlayers)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), float64(1), sets)
}
