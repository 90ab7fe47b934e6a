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

// Package handler provides the implementation for game session management operations.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/chainquest/vault/internal/session/constants"
	"github.com/chainquest/vault/internal/session/model"
	"github.com/chainquest/vault/internal/session/provider"
	serverconst "github.com/chainquest/vault/internal/system/constants"
	"github.com/chainquest/vault/internal/system/error/apierror"
	"github.com/chainquest/vault/internal/system/error/serviceerror"
	"github.com/chainquest/vault/internal/system/log"
	sysutils "github.com/chainquest/vault/internal/system/utils"
)

const loggerComponentName = "SessionHandler"

// SessionHandler is the handler for game session management operations.
type SessionHandler struct {
	provider provider.SessionProviderInterface
}

// NewSessionHandler creates a new instance of SessionHandler.
func NewSessionHandler(sessionProvider provider.SessionProviderInterface) *SessionHandler {
	return &SessionHandler{provider: sessionProvider}
}

// HandleSessionPostRequest handles the start session request.
func (sh *SessionHandler) HandleSessionPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	createRequest, err := sysutils.DecodeJSONBody[model.CreateSessionRequest](r)
	if err != nil {
		sh.writeErrorResponse(w, logger, http.StatusBadRequest, apierror.ErrorResponse{
			Code:        constants.ErrorInvalidRequestFormat.Code,
			Message:     constants.ErrorInvalidRequestFormat.Error,
			Description: "Failed to parse request body: " + err.Error(),
		})
		return
	}

	createRequest.WalletAddress = sysutils.SanitizeString(createRequest.WalletAddress)

	sessionService := sh.provider.GetSessionService()
	session, svcErr := sessionService.CreateSession(createRequest)
	if svcErr != nil {
		sh.handleError(w, logger, svcErr)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(session); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	logger.Debug("Session created", log.String(log.LoggerKeySessionID, session.SessionID))
}

// HandleSessionGetRequest handles the get session by ID request.
func (sh *SessionHandler) HandleSessionGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	sessionID := r.PathValue("id")
	if sessionID == "" {
		sh.handleError(w, logger, &constants.ErrorMissingSessionID)
		return
	}

	sessionService := sh.provider.GetSessionService()
	session, svcErr := sessionService.GetSession(r.Context(), sessionID)
	if svcErr != nil {
		sh.handleError(w, logger, svcErr)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(session); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// HandleSessionRefreshRequest handles the refresh session request.
func (sh *SessionHandler) HandleSessionRefreshRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	sessionID := r.PathValue("id")
	if sessionID == "" {
		sh.handleError(w, logger, &constants.ErrorMissingSessionID)
		return
	}

	sessionService := sh.provider.GetSessionService()
	if svcErr := sessionService.RefreshSession(sessionID); svcErr != nil {
		sh.handleError(w, logger, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleSessionDeleteRequest handles the end session request.
func (sh *SessionHandler) HandleSessionDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	sessionID := r.PathValue("id")
	if sessionID == "" {
		sh.handleError(w, logger, &constants.ErrorMissingSessionID)
		return
	}

	sessionService := sh.provider.GetSessionService()
	if svcErr := sessionService.EndSession(sessionID); svcErr != nil {
		sh.handleError(w, logger, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	logger.Debug("Session ended", log.String(log.LoggerKeySessionID, sessionID))
}

func (sh *SessionHandler) writeErrorResponse(w http.ResponseWriter, logger *log.Logger,
	statusCode int, errResp apierror.ErrorResponse) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		logger.Error("Error encoding error response", log.Error(err))
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}

// handleError handles service errors and returns appropriate HTTP responses.
func (sh *SessionHandler) handleError(w http.ResponseWriter, logger *log.Logger,
	svcErr *serviceerror.ServiceError) {
	errResp := apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	}

	statusCode := http.StatusInternalServerError
	if svcErr.Type == serviceerror.ClientErrorType {
		switch svcErr.Code {
		case constants.ErrorSessionNotFound.Code:
			statusCode = http.StatusNotFound
		default:
			statusCode = http.StatusBadRequest
		}
	}

	sh.writeErrorResponse(w, logger, statusCode, errResp)
}
