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

package sandboxapi

import (
	"fmt"
	"sync"

	"github.com/qualisystems/ixvm-vchassis/plugins/vchassis/api"
)

// RemoveCall is a recorded RemoveConnectorsFromReservation call.
type RemoveCall struct {
	ReservationID string
	Endpoints     []string
}

// SetCall is a recorded SetConnectorsInReservation call.
type SetCall struct {
	ReservationID string
	Connectors    []api.SetConnectorRequest
}

// MockSandboxAPI is a mock for the sandbox API of the orchestration host.
type MockSandboxAPI struct {
	sync.Mutex

	// Resources served by GetResourceDetails, by full name.
	Resources map[string]*api.ResourceInfo
	// Passwords maps encrypted values to plain text. Values not found are
	// returned unchanged.
	Passwords map[string]string

	DecryptErr error
	DetailsErr error
	RemoveErr  error
	SetErr     error

	removeCalls []RemoveCall
	setCalls    []SetCall
	domains     []string
}

// NewMockSandboxAPI is a constructor for MockSandboxAPI.
func NewMockSandboxAPI() *MockSandboxAPI {
	return &MockSandboxAPI{
		Resources: make(map[string]*api.ResourceInfo),
		Passwords: make(map[string]string),
	}
}

// Provider returns a provider always handing out this mock.
func (m *MockSandboxAPI) Provider() api.SandboxAPIProvider {
	return func(connectivity api.ConnectivityContext, domain string) (api.SandboxAPI, error) {
		m.Lock()
		defer m.Unlock()
		m.domains = append(m.domains, domain)
		return m, nil
	}
}

// AddResource makes the resource available to GetResourceDetails.
func (m *MockSandboxAPI) AddResource(fullName string, resource *api.ResourceInfo) {
	m.Lock()
	defer m.Unlock()
	m.Resources[fullName] = resource
}

// DecryptPassword returns the plain text of an encrypted password.
func (m *MockSandboxAPI) DecryptPassword(encrypted string) (string, error) {
	m.Lock()
	defer m.Unlock()
	if m.DecryptErr != nil {
		return "", m.DecryptErr
	}
	if plain, found := m.Passwords[encrypted]; found {
		return plain, nil
	}
	return encrypted, nil
}

// GetResourceDetails returns the resource stored under fullName.
func (m *MockSandboxAPI) GetResourceDetails(fullName string) (*api.ResourceInfo, error) {
	m.Lock()
	defer m.Unlock()
	if m.DetailsErr != nil {
		return nil, m.DetailsErr
	}
	resource, found := m.Resources[fullName]
	if !found {
		return nil, fmt.Errorf("resource %s not found", fullName)
	}
	return resource, nil
}

// RemoveConnectorsFromReservation records the call.
func (m *MockSandboxAPI) RemoveConnectorsFromReservation(reservationID string, endpoints []string) error {
	m.Lock()
	defer m.Unlock()
	m.removeCalls = append(m.removeCalls, RemoveCall{ReservationID: reservationID, Endpoints: endpoints})
	return m.RemoveErr
}

// SetConnectorsInReservation records the call.
func (m *MockSandboxAPI) SetConnectorsInReservation(reservationID string, connectors []api.SetConnectorRequest) error {
	m.Lock()
	defer m.Unlock()
	m.setCalls = append(m.setCalls, SetCall{ReservationID: reservationID, Connectors: connectors})
	return m.SetErr
}

// RemoveCalls returns the recorded remove calls.
func (m *MockSandboxAPI) RemoveCalls() []RemoveCall {
	m.Lock()
	defer m.Unlock()
	return append([]RemoveCall(nil), m.removeCalls...)
}

// SetCalls returns the recorded set calls.
func (m *MockSandboxAPI) SetCalls() []SetCall {
	m.Lock()
	defer m.Unlock()
	return append([]SetCall(nil), m.setCalls...)
}

// Domains returns the domains the provider was asked for.
func (m *MockSandboxAPI) Domains() []string {
	m.Lock()
	defer m.Unlock()
	return append([]string(nil), m.domains...)
}
