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

// Package model defines the data structures for game session management operations.
package model

// Session represents an active game session for a player.
type Session struct {
	SessionID     string `json:"sessionId"`
	WalletAddress string `json:"walletAddress"`
	StartedAt     string `json:"startedAt,omitempty"`
	LastSeenAt    string `json:"lastSeenAt,omitempty"`
}

// CreateSessionRequest represents the request body for starting a session.
type CreateSessionRequest struct {
	WalletAddress string `json:"walletAddress"`
}
