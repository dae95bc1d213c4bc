// Copyright (c) 2019 Cisco and/or its affiliates.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at:
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ixvmapi

import (
	"encoding/json"
	"strings"
)

// Number is an identifier or a display index of a chassis, card or port. The
// controller has been seen to send these both as a JSON number and as a
// string, so both are accepted.
type Number string

// UnmarshalJSON decodes either a JSON number or a JSON string.
func (n *Number) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*n = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Number(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*n = Number(num.String())
	return nil
}

// String returns the number as text.
func (n Number) String() string {
	return string(n)
}

// ChassisRecord is one entry of the chassis listing.
type ChassisRecord struct {
	ID Number `json:"id"`
}

// CardRecord is one entry of the cards listing.
type CardRecord struct {
	ID         Number `json:"id"`
	ParentID   Number `json:"parentId"`
	CardNumber Number `json:"cardNumber"`
}

// PortRecord is one entry of the ports listing.
type PortRecord struct {
	ID         Number `json:"id"`
	ParentID   Number `json:"parentId"`
	PortNumber Number `json:"portNumber"`
}

// Session is the authenticated state returned by Login.
type Session struct {
	APIKey string
}

// Header returns headers to be added to authenticated requests.
func (s *Session) Header() map[string]string {
	if s == nil || s.APIKey == "" {
		return nil
	}
	return map[string]string{apiKeyHeader: s.APIKey}
}

type loginRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

type loginResponse struct {
	APIKey string `json:"apiKey"`
}
