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

package handler

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/suite"
)

type FilterParamsTestSuite struct {
	suite.Suite
}

func TestFilterParamsTestSuite(t *testing.T) {
	suite.Run(t, new(FilterParamsTestSuite))
}

func (s *FilterParamsTestSuite) TestParseFilterParams() {
	testCases := []struct {
		name     string
		filter   string
		expected map[string]interface{}
		wantErr  bool
	}{
		{
			name:     "QuotedStringValue",
			filter:   `tier eq "premium"`,
			expected: map[string]interface{}{"tier": "premium"},
		},
		{
			name:     "IntegerValue",
			filter:   "level eq 12",
			expected: map[string]interface{}{"level": int64(12)},
		},
		{
			name:     "BooleanValue",
			filter:   "verified eq true",
			expected: map[string]interface{}{"verified": true},
		},
		{
			name:     "NestedAttribute",
			filter:   `profile.region eq "eu"`,
			expected: map[string]interface{}{"profile.region": "eu"},
		},
		{
			name:    "MissingFilter",
			filter:  "",
			wantErr: true,
		},
		{
			name:    "UnsupportedOperator",
			filter:  `tier gt "premium"`,
			wantErr: true,
		},
		{
			name:    "MalformedExpression",
			filter:  "tier premium",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			query := url.Values{}
			if tc.filter != "" {
				query.Set("filter", tc.filter)
			}

			filters, svcErr := parseFilterParams(query)
			if tc.wantErr {
				s.NotNil(svcErr)
				return
			}
			s.Require().Nil(svcErr)
			s.Equal(tc.expected, filters)
		})
	}
}
