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

package api

// SandboxAPI is the subset of the sandbox automation API used by the driver.
type SandboxAPI interface {
	// DecryptPassword returns the clear text of an encrypted password attribute.
	DecryptPassword(encrypted string) (string, error)

	// GetResourceDetails returns the live resource with its child resources.
	GetResourceDetails(resourceFullName string) (*ResourceInfo, error)

	// RemoveConnectorsFromReservation removes all connectors between the given endpoints.
	RemoveConnectorsFromReservation(reservationID string, endpoints []string) error

	// SetConnectorsInReservation creates (or updates) the given connectors.
	SetConnectorsInReservation(reservationID string, connectors []SetConnectorRequest) error
}

// SandboxAPIProvider opens a sandbox API session for the given connectivity.
type SandboxAPIProvider func(connectivity ConnectivityContext, domain string) (SandboxAPI, error)

// ResourceDriver is the command contract the host dispatches to.
type ResourceDriver interface {
	// Initialize is called once per driver instance.
	Initialize(ctx InitCommandContext) (string, error)

	// GetInventory discovers the resource structure and attributes.
	GetInventory(ctx AutoLoadCommandContext) (*DiscoveryResult, error)

	// ConnectChildResources resolves the connectors of the resource onto its ports.
	ConnectChildResources(ctx ResourceCommandContext) (string, error)

	// Cleanup releases whatever Initialize acquired.
	Cleanup() error
}
