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

package config

import "sync"

// VaultRuntime holds the runtime configuration for the Vault server.
type VaultRuntime struct {
	VaultHome string `yaml:"vault_home"`
	Config    Config `yaml:"config"`
}

var (
	runtimeConfig *VaultRuntime
	once          sync.Once
)

// InitializeVaultRuntime initializes the VaultRuntime configuration.
func InitializeVaultRuntime(vaultHome string, config *Config) error {
	once.Do(func() {
		runtimeConfig = &VaultRuntime{
			VaultHome: vaultHome,
			Config:    *config,
		}
	})

	return nil
}

// GetVaultRuntime returns the VaultRuntime configuration.
func GetVaultRuntime() *VaultRuntime {
	if runtimeConfig == nil {
		panic("VaultRuntime is not initialized")
	}
	return runtimeConfig
}

// ResetVaultRuntime resets the VaultRuntime.
// This should only be used in tests to reset the singleton state.
func ResetVaultRuntime() {
	runtimeConfig = nil
	once = sync.Once{}
}
