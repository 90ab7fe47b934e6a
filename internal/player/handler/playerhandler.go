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

// Package handler provides the implementation for player management operations.
package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/chainquest/vault/internal/player/constants"
	"github.com/chainquest/vault/internal/player/model"
	"github.com/chainquest/vault/internal/player/provider"
	serverconst "github.com/chainquest/vault/internal/system/constants"
	"github.com/chainquest/vault/internal/system/error/apierror"
	"github.com/chainquest/vault/internal/system/error/serviceerror"
	"github.com/chainquest/vault/internal/system/log"
	sysutils "github.com/chainquest/vault/internal/system/utils"
)

const loggerComponentName = "PlayerHandler"

// PlayerHandler is the handler for player management operations.
type PlayerHandler struct {
	provider provider.PlayerProviderInterface
}

// NewPlayerHandler creates a new instance of PlayerHandler.
func NewPlayerHandler(playerProvider provider.PlayerProviderInterface) *PlayerHandler {
	return &PlayerHandler{provider: playerProvider}
}

// HandlePlayerPostRequest handles the create player request.
func (ph *PlayerHandler) HandlePlayerPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	createRequest, err := sysutils.DecodeJSONBody[model.CreatePlayerRequest](r)
	if err != nil {
		ph.writeErrorResponse(w, logger, http.StatusBadRequest, apierror.ErrorResponse{
			Code:        constants.ErrorInvalidRequestFormat.Code,
			Message:     constants.ErrorInvalidRequestFormat.Error,
			Description: "Failed to parse request body: " + err.Error(),
		})
		return
	}

	sanitized := sanitizeCreatePlayerRequest(createRequest)

	playerService := ph.provider.GetPlayerService()
	createdPlayer, svcErr := playerService.CreatePlayer(&sanitized)
	if svcErr != nil {
		ph.handleError(w, logger, svcErr)
		return
	}

	ph.writeJSONResponse(w, logger, http.StatusCreated, createdPlayer)
	logger.Debug("Player created", log.String("walletAddress", createdPlayer.WalletAddress))
}

// HandlePlayerGetRequest handles the get player by wallet address request.
func (ph *PlayerHandler) HandlePlayerGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	address := r.PathValue("address")
	if address == "" {
		ph.handleError(w, logger, &constants.ErrorMissingWalletAddress)
		return
	}

	playerService := ph.provider.GetPlayerService()
	player, svcErr := playerService.GetPlayer(r.Context(), address)
	if svcErr != nil {
		ph.handleError(w, logger, svcErr)
		return
	}

	ph.writeJSONResponse(w, logger, http.StatusOK, player)
}

// HandleScorePutRequest handles the submit score request.
func (ph *PlayerHandler) HandleScorePutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	address := r.PathValue("address")
	if address == "" {
		ph.handleError(w, logger, &constants.ErrorMissingWalletAddress)
		return
	}

	submission, err := sysutils.DecodeJSONBody[model.ScoreSubmission](r)
	if err != nil {
		ph.writeErrorResponse(w, logger, http.StatusBadRequest, apierror.ErrorResponse{
			Code:        constants.ErrorInvalidRequestFormat.Code,
			Message:     constants.ErrorInvalidRequestFormat.Error,
			Description: "Failed to parse request body: " + err.Error(),
		})
		return
	}

	playerService := ph.provider.GetPlayerService()
	result, svcErr := playerService.SubmitScore(r.Context(), address, submission.Score)
	if svcErr != nil {
		ph.handleError(w, logger, svcErr)
		return
	}

	ph.writeJSONResponse(w, logger, http.StatusOK, result)
	logger.Debug("Score submitted", log.String("walletAddress", address))
}

// HandlePlayerDeleteRequest handles the delete player request.
func (ph *PlayerHandler) HandlePlayerDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	address := r.PathValue("address")
	if address == "" {
		ph.handleError(w, logger, &constants.ErrorMissingWalletAddress)
		return
	}

	playerService := ph.provider.GetPlayerService()
	if svcErr := playerService.DeletePlayer(address); svcErr != nil {
		ph.handleError(w, logger, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	logger.Debug("Player deleted", log.String("walletAddress", address))
}

// HandlePlayerListRequest handles the identify players request. Callers select
// players by attribute with a filter query parameter.
func (ph *PlayerHandler) HandlePlayerListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	filters, svcErr := parseFilterParams(r.URL.Query())
	if svcErr != nil {
		ph.handleError(w, logger, svcErr)
		return
	}

	playerService := ph.provider.GetPlayerService()
	addresses, svcErr := playerService.IdentifyPlayers(filters)
	if svcErr != nil {
		ph.handleError(w, logger, svcErr)
		return
	}

	ph.writeJSONResponse(w, logger, http.StatusOK, model.IdentifyResponse{
		Count:           len(addresses),
		WalletAddresses: addresses,
	})
	logger.Debug("Players identified", log.Int("count", len(addresses)),
		log.Any("filters", filters))
}

// HandleLeaderboardGetRequest handles the get leaderboard request.
func (ph *PlayerHandler) HandleLeaderboardGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	limit := 0
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil {
			ph.handleError(w, logger, &constants.ErrorInvalidLimit)
			return
		}
		limit = parsed
	}

	playerService := ph.provider.GetPlayerService()
	board, svcErr := playerService.GetLeaderboard(r.Context(), limit)
	if svcErr != nil {
		ph.handleError(w, logger, svcErr)
		return
	}

	ph.writeJSONResponse(w, logger, http.StatusOK, board)
}

// HandleAchievementsGetRequest handles the get player achievements request.
func (ph *PlayerHandler) HandleAchievementsGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	address := r.PathValue("address")
	if address == "" {
		ph.handleError(w, logger, &constants.ErrorMissingWalletAddress)
		return
	}

	playerService := ph.provider.GetPlayerService()
	achievements, svcErr := playerService.GetPlayerAchievements(r.Context(), address)
	if svcErr != nil {
		ph.handleError(w, logger, svcErr)
		return
	}

	ph.writeJSONResponse(w, logger, http.StatusOK, achievements)
}

// HandleStatisticsGetRequest handles the get global statistics request.
func (ph *PlayerHandler) HandleStatisticsGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	playerService := ph.provider.GetPlayerService()
	statistics, svcErr := playerService.GetStatistics(r.Context())
	if svcErr != nil {
		ph.handleError(w, logger, svcErr)
		return
	}

	ph.writeJSONResponse(w, logger, http.StatusOK, statistics)
}

func (ph *PlayerHandler) writeJSONResponse(w http.ResponseWriter, logger *log.Logger,
	statusCode int, payload interface{}) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (ph *PlayerHandler) writeErrorResponse(w http.ResponseWriter, logger *log.Logger,
	statusCode int, errResp apierror.ErrorResponse) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		logger.Error("Error encoding error response", log.Error(err))
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}

// handleError handles service errors and returns appropriate HTTP responses.
func (ph *PlayerHandler) handleError(w http.ResponseWriter, logger *log.Logger,
	svcErr *serviceerror.ServiceError) {
	errResp := apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	}

	statusCode := http.StatusInternalServerError
	if svcErr.Type == serviceerror.ClientErrorType {
		switch svcErr.Code {
		case constants.ErrorPlayerNotFound.Code:
			statusCode = http.StatusNotFound
		case constants.ErrorUsernameConflict.Code, constants.ErrorPlayerAlreadyExists.Code:
			statusCode = http.StatusConflict
		default:
			statusCode = http.StatusBadRequest
		}
	}

	ph.writeErrorResponse(w, logger, statusCode, errResp)
}

// filterExpressionRegex matches filter expressions in the format:
// attribute eq "value" or attribute eq value
var filterExpressionRegex = regexp.MustCompile(`^(\w+(?:\.\w+)*)\s+(eq)\s+(?:"([^"]*)"|(\S+))$`)

// parseFilterParams parses and sanitizes the filter query parameter.
func parseFilterParams(query url.Values) (map[string]interface{}, *serviceerror.ServiceError) {
	filterStr := strings.TrimSpace(query.Get("filter"))
	if filterStr == "" {
		return nil, &constants.ErrorInvalidFilter
	}

	parsedFilter, err := parseFilterExpression(filterStr)
	if err != nil {
		return nil, &constants.ErrorInvalidFilter
	}

	return sanitizeFilter(parsedFilter), nil
}

// parseFilterExpression parses a single filter expression into a filters map.
func parseFilterExpression(filterStr string) (map[string]interface{}, error) {
	matches := filterExpressionRegex.FindStringSubmatch(filterStr)
	if len(matches) == 0 {
		return nil, fmt.Errorf("invalid filter format")
	}

	attribute := matches[1]
	if matches[3] != "" {
		return map[string]interface{}{attribute: matches[3]}, nil
	}

	value := matches[4]
	if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
		return map[string]interface{}{attribute: intVal}, nil
	}
	if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
		return map[string]interface{}{attribute: floatVal}, nil
	}
	if boolVal, err := strconv.ParseBool(value); err == nil {
		return map[string]interface{}{attribute: boolVal}, nil
	}
	return nil, fmt.Errorf("invalid filter value")
}

// sanitizeFilter sanitizes the parsed filter keys and string values.
func sanitizeFilter(filters map[string]interface{}) map[string]interface{} {
	sanitized := make(map[string]interface{}, len(filters))
	for key, value := range filters {
		sanitizedKey := sysutils.SanitizeString(key)
		if strValue, ok := value.(string); ok {
			sanitized[sanitizedKey] = sysutils.SanitizeString(strValue)
		} else {
			sanitized[sanitizedKey] = value
		}
	}
	return sanitized
}

func sanitizeCreatePlayerRequest(request *model.CreatePlayerRequest) model.CreatePlayerRequest {
	return model.CreatePlayerRequest{
		WalletAddress: sysutils.SanitizeString(request.WalletAddress),
		Username:      sysutils.SanitizeString(request.Username),
		Attributes:    request.Attributes,
	}
}
