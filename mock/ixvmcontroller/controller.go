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

package ixvmcontroller

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/unrolled/render"
)

const (
	// DefaultAPIKey is handed out by Login unless APIKey is changed.
	DefaultAPIKey = "mock-api-key"
)

// Chassis is a chassis record served by the mock. ID may be a number or a string.
type Chassis struct {
	ID interface{} `json:"id"`
}

// Card is a card record served by the mock. ID, ParentID and CardNumber may be
// numbers or strings.
type Card struct {
	ID         interface{} `json:"id"`
	ParentID   interface{} `json:"parentId,omitempty"`
	CardNumber interface{} `json:"cardNumber"`
}

// Port is a port record served by the mock. ID, ParentID and PortNumber may be
// numbers or strings.
type Port struct {
	ID         interface{} `json:"id"`
	ParentID   interface{} `json:"parentId"`
	PortNumber interface{} `json:"portNumber"`
}

// MockController simulates the IxVM controller REST API.
type MockController struct {
	sync.Mutex

	server    *httptest.Server
	formatter *render.Render

	User     string
	Password string
	APIKey   string

	Chassis []Chassis
	Cards   []Card
	Ports   []Port

	// DeployAfter is the number of /platform probes answered with 503
	// before the service is reported as deployed.
	DeployAfter int
	// StructureAfter is the number of cards/ports requests answered with
	// an empty list before the real listings are returned.
	StructureAfter int
	// FailPath makes the given path answer with 500.
	FailPath string

	PlatformProbes    int
	Logins            int
	StructureRequests int
}

// NewMockController starts the mock on a local port.
func NewMockController(user, password string) *MockController {
	m := &MockController{
		User:      user,
		Password:  password,
		APIKey:    DefaultAPIKey,
		formatter: render.New(),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/platform", m.platformHandler)
	mux.HandleFunc("/platform/api/v1/auth/session", m.loginHandler)
	mux.HandleFunc("/chassis/api/v2/ixos/chassis", m.authorized(m.chassisHandler))
	mux.HandleFunc("/chassis/api/v2/ixos/cards", m.authorized(m.cardsHandler))
	mux.HandleFunc("/chassis/api/v2/ixos/ports", m.authorized(m.portsHandler))
	m.server = httptest.NewServer(mux)
	return m
}

// Close stops the mock server.
func (m *MockController) Close() {
	m.server.Close()
}

// URL returns the base URL of the mock.
func (m *MockController) URL() string {
	return m.server.URL
}

// Host returns the address the mock listens on.
func (m *MockController) Host() string {
	host, _, _ := net.SplitHostPort(m.server.Listener.Addr().String())
	return host
}

// Port returns the TCP port the mock listens on.
func (m *MockController) Port() int {
	_, port, _ := net.SplitHostPort(m.server.Listener.Addr().String())
	p, _ := strconv.Atoi(port)
	return p
}

func (m *MockController) failing(w http.ResponseWriter, r *http.Request) bool {
	if m.FailPath != "" && r.URL.Path == m.FailPath {
		m.formatter.JSON(w, http.StatusInternalServerError, map[string]string{"error": "mock failure"})
		return true
	}
	return false
}

func (m *MockController) platformHandler(w http.ResponseWriter, r *http.Request) {
	m.Lock()
	defer m.Unlock()

	m.PlatformProbes++
	if m.failing(w, r) {
		return
	}
	if m.PlatformProbes <= m.DeployAfter {
		m.formatter.Text(w, http.StatusServiceUnavailable, "starting")
		return
	}
	m.formatter.Text(w, http.StatusOK, "ok")
}

func (m *MockController) loginHandler(w http.ResponseWriter, r *http.Request) {
	m.Lock()
	defer m.Unlock()

	if r.Method != http.MethodPost {
		m.formatter.JSON(w, http.StatusMethodNotAllowed, nil)
		return
	}
	if m.failing(w, r) {
		return
	}
	var creds struct {
		Username   string `json:"username"`
		Password   string `json:"password"`
		RememberMe bool   `json:"rememberMe"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		m.formatter.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if creds.Username != m.User || creds.Password != m.Password {
		m.formatter.JSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		return
	}
	m.Logins++
	m.formatter.JSON(w, http.StatusOK, map[string]string{"apiKey": m.APIKey})
}

func (m *MockController) authorized(handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.Lock()
		defer m.Unlock()

		if r.Header.Get("x-api-key") != m.APIKey {
			m.formatter.JSON(w, http.StatusUnauthorized, map[string]string{"error": "missing api key"})
			return
		}
		if m.failing(w, r) {
			return
		}
		handler(w, r)
	}
}

func (m *MockController) chassisHandler(w http.ResponseWriter, r *http.Request) {
	m.formatter.JSON(w, http.StatusOK, nonNil(m.Chassis))
}

func (m *MockController) cardsHandler(w http.ResponseWriter, r *http.Request) {
	m.StructureRequests++
	if m.StructureRequests <= m.StructureAfter {
		m.formatter.JSON(w, http.StatusOK, []Card{})
		return
	}
	m.formatter.JSON(w, http.StatusOK, nonNil(m.Cards))
}

func (m *MockController) portsHandler(w http.ResponseWriter, r *http.Request) {
	if m.StructureRequests <= m.StructureAfter {
		m.formatter.JSON(w, http.StatusOK, []Port{})
		return
	}
	m.formatter.JSON(w, http.StatusOK, nonNil(m.Ports))
}

// nonNil makes sure empty listings are rendered as [] and not null.
func nonNil(v interface{}) interface{} {
	switch list := v.(type) {
	case []Chassis:
		if list == nil {
			return []Chassis{}
		}
	case []Card:
		if list == nil {
			return []Card{}
		}
	case []Port:
		if list == nil {
			return []Port{}
		}
	}
	return v
}
