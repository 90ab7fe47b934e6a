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

// Package store provides the implementation for game session persistence operations.
package store

import "github.com/chainquest/vault/internal/system/database/model"

var (
	// QueryCreateSession is the query to create a new game session.
	QueryCreateSession = model.DBQuery{
		ID:    "CQV-SESSION_MGT-01",
		Query: "INSERT INTO GAME_SESSION (SESSION_ID, WALLET_ADDRESS) VALUES ($1, $2)",
	}
	// QueryGetSessionByID is the query to get a session by session ID.
	QueryGetSessionByID = model.DBQuery{
		ID: "CQV-SESSION_MGT-02",
		Query: "SELECT SESSION_ID, WALLET_ADDRESS, STARTED_AT, LAST_SEEN_AT " +
			"FROM GAME_SESSION WHERE SESSION_ID = $1",
	}
	// QueryTouchSession is the query to advance a session's last seen timestamp.
	QueryTouchSession = model.DBQuery{
		ID:    "CQV-SESSION_MGT-03",
		Query: "UPDATE GAME_SESSION SET LAST_SEEN_AT = CURRENT_TIMESTAMP WHERE SESSION_ID = $1",
	}
	// QueryDeleteSessionByID is the query to delete a session by session ID.
	QueryDeleteSessionByID = model.DBQuery{
		ID:    "CQV-SESSION_MGT-04",
		Query: "DELETE FROM GAME_SESSION WHERE SESSION_ID = $1",
	}
	// QueryDeleteSessionsByWalletAddress is the query to delete every session of a player.
	QueryDeleteSessionsByWalletAddress = model.DBQuery{
		ID:    "CQV-SESSION_MGT-05",
		Query: "DELETE FROM GAME_SESSION WHERE WALLET_ADDRESS = $1",
	}
	// QueryGetSessionCount is the query to get the total count of sessions.
	QueryGetSessionCount = model.DBQuery{
		ID:    "CQV-SESSION_MGT-06",
		Query: "SELECT COUNT(*) AS total FROM GAME_SESSION",
	}
)
