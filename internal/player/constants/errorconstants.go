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

// Package constants defines error constants for player management operations.
package constants

import "github.com/chainquest/vault/internal/system/error/serviceerror"

// Client errors for player management operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request format is invalid.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "PLY-1001",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorMissingWalletAddress is the error returned when the wallet address is missing.
	ErrorMissingWalletAddress = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "PLY-1002",
		Error:            "Invalid request format",
		ErrorDescription: "Wallet address is required",
	}
	// ErrorPlayerNotFound is the error returned when a player is not found.
	ErrorPlayerNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "PLY-1003",
		Error:            "Player not found",
		ErrorDescription: "The player with the specified wallet address does not exist",
	}
	// ErrorUsernameConflict is the error returned when the username is already taken.
	ErrorUsernameConflict = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "PLY-1004",
		Error:            "Username conflict",
		ErrorDescription: "A player with the same username already exists",
	}
	// ErrorPlayerAlreadyExists is the error returned when the wallet address is already registered.
	ErrorPlayerAlreadyExists = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "PLY-1005",
		Error:            "Player already exists",
		ErrorDescription: "A player with the same wallet address already exists",
	}
	// ErrorInvalidScore is the error returned when a submitted score is negative.
	ErrorInvalidScore = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "PLY-1006",
		Error:            "Invalid score",
		ErrorDescription: "The submitted score must not be negative",
	}
	// ErrorInvalidLimit is the error returned when a leaderboard limit is out of range.
	ErrorInvalidLimit = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "PLY-1007",
		Error:            "Invalid limit",
		ErrorDescription: "The leaderboard limit must be between 1 and 100",
	}
	// ErrorInvalidFilter is the error returned when an attribute filter is missing or malformed.
	ErrorInvalidFilter = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "PLY-1008",
		Error:            "Invalid filter",
		ErrorDescription: "The filter must be in the format: attribute eq \"value\"",
	}
)

// Server errors for player management operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "PLY-5001",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
