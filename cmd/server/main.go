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

// Package main is the entry point for starting the Vault server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/chainquest/vault/internal/cache"
	"github.com/chainquest/vault/internal/system/config"
	"github.com/chainquest/vault/internal/system/database/provider"
	"github.com/chainquest/vault/internal/system/database/seeder"
	"github.com/chainquest/vault/internal/system/log"
)

const warmCachePlayerCount = 10

func main() {
	logger := log.GetLogger()

	vaultHome := getVaultHome(logger)
	cfg := initVaultConfigurations(logger, vaultHome)

	dbProvider := provider.NewDBProvider()
	seedGameDatabase(logger, dbProvider)

	namespacedCache := cache.NewFromConfig(cfg.Cache)

	mux := http.NewServeMux()
	deps := newServiceDependencies(dbProvider, namespacedCache, cfg)
	registerServices(mux, deps)

	warmCaches(logger, deps)

	runServer(logger, cfg, mux, func(shutdownCtx context.Context) {
		namespacedCache.Shutdown()
		if err := dbProvider.Close(); err != nil {
			logger.Error("Failed to close database connections", log.Error(err))
		}
	})
}

// getVaultHome retrieves and returns the Vault home directory.
func getVaultHome(logger *log.Logger) string {
	vaultHomeFlag := flag.String("vaultHome", "", "Path to Vault home directory")
	flag.Parse()

	if *vaultHomeFlag != "" {
		logger.Info("Using vaultHome from command line argument",
			log.String("vaultHome", *vaultHomeFlag))
		return *vaultHomeFlag
	}

	dir, err := os.Getwd()
	if err != nil {
		logger.Fatal("Failed to get current working directory", log.Error(err))
	}
	return dir
}

// initVaultConfigurations loads the deployment configuration and initializes
// the runtime.
func initVaultConfigurations(logger *log.Logger, vaultHome string) *config.Config {
	// Local overrides (log level, database credentials) may live in a .env file.
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file loaded", log.Error(err))
	}

	configFilePath := path.Join(vaultHome, "repository/conf/deployment.yaml")
	cfg, err := config.LoadConfig(configFilePath)
	if err != nil {
		logger.Fatal("Failed to load configurations", log.Error(err))
	}

	if err := config.InitializeVaultRuntime(vaultHome, cfg); err != nil {
		logger.Fatal("Failed to initialize vault runtime", log.Error(err))
	}

	return cfg
}

// seedGameDatabase creates the game schema and seeds the initial data.
func seedGameDatabase(logger *log.Logger, dbProvider provider.DBProviderInterface) {
	gameSeeder, err := seeder.NewSeederProvider(dbProvider).GetSeeder(provider.DBNameGame)
	if err != nil {
		logger.Fatal("Failed to initialize database seeder", log.Error(err))
	}
	if err := gameSeeder.SeedInitialData(); err != nil {
		logger.Fatal("Failed to seed game database", log.Error(err))
	}
}

// warmCaches preloads hot entries. Warm failures are logged and never block
// startup; the cache fills lazily instead.
func warmCaches(logger *log.Logger, deps serviceDependencies) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	playerService := deps.playerProvider.GetPlayerService()
	if err := playerService.WarmPlayerCache(ctx, warmCachePlayerCount); err != nil {
		logger.Warn("Player cache warm-up failed", log.Error(err))
	}
}

// runServer starts the HTTP server and blocks until a shutdown signal arrives.
func runServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux,
	onShutdown func(ctx context.Context)) {
	wrappedMux := log.AccessLogHandler(logger, mux)
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Hostname, cfg.Server.Port)

	server := &http.Server{
		Addr:              serverAddr,
		Handler:           wrappedMux,
		ReadHeaderTimeout: 10 * time.Second, // Mitigate Slowloris attacks
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("ChainQuest Vault server started (HTTP)...", log.String("address", serverAddr))
		errCh <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to serve HTTP requests", log.Error(err))
		}
	case sig := <-sigCh:
		logger.Info("Shutdown signal received", log.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down server gracefully", log.Error(err))
	}
	onShutdown(shutdownCtx)

	logger.Info("ChainQuest Vault server stopped")
}
