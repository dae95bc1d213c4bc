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

// ResourceContextDetails describes the resource a command runs on.
type ResourceContextDetails struct {
	Name       string            `json:"name"`
	FullName   string            `json:"fullname"`
	Address    string            `json:"address"`
	Family     string            `json:"family"`
	Model      string            `json:"model"`
	Attributes map[string]string `json:"attributes"`
}

// ReservationContextDetails identifies the reservation a command runs in.
type ReservationContextDetails struct {
	ReservationID string `json:"reservationId"`
	Domain        string `json:"domain"`
}

// ConnectivityContext tells the driver how to reach the sandbox API.
type ConnectivityContext struct {
	ServerAddress  string `json:"serverAddress"`
	AdminAuthToken string `json:"adminAuthToken"`
}

// InitCommandContext is passed to Initialize.
type InitCommandContext struct {
	Resource ResourceContextDetails `json:"resource"`
}

// AutoLoadCommandContext is passed to GetInventory.
type AutoLoadCommandContext struct {
	Resource     ResourceContextDetails `json:"resource"`
	Connectivity ConnectivityContext    `json:"connectivity"`
}

// ResourceCommandContext is passed to resource commands such as ConnectChildResources.
type ResourceCommandContext struct {
	Resource     ResourceContextDetails    `json:"resource"`
	Reservation  ReservationContextDetails `json:"reservation"`
	Connectivity ConnectivityContext       `json:"connectivity"`
	Connectors   []Connector               `json:"connectors"`
}

// Connector is a sandbox request to link two endpoints, as reported by the host.
type Connector struct {
	Source     string            `json:"source"`
	Target     string            `json:"target"`
	Direction  string            `json:"direction"`
	Alias      string            `json:"alias"`
	Attributes map[string]string `json:"attributes"`
}

// SetConnectorRequest is a connector the driver asks the sandbox to create.
type SetConnectorRequest struct {
	SourceResourceFullName string `json:"sourceResourceFullName"`
	TargetResourceFullName string `json:"targetResourceFullName"`
	Direction              string `json:"direction"`
	Alias                  string `json:"alias"`
}

// ResourceInfo is the live resource tree returned by the sandbox API.
type ResourceInfo struct {
	Name              string         `json:"name"`
	ResourceModelName string         `json:"resourceModelName"`
	ChildResources    []ResourceInfo `json:"childResources"`
}

// AutoLoadResource is one discovered sub-resource.
type AutoLoadResource struct {
	Model            string `json:"model"`
	Name             string `json:"name"`
	RelativeAddress  string `json:"relativeAddress"`
	UniqueIdentifier string `json:"uniqueIdentifier"`
}

// AutoLoadAttribute is one discovered attribute value.
type AutoLoadAttribute struct {
	RelativeAddress string `json:"relativeAddress"`
	AttributeName   string `json:"attributeName"`
	AttributeValue  string `json:"attributeValue"`
}

// DiscoveryResult is returned by GetInventory.
type DiscoveryResult struct {
	Resources  []AutoLoadResource  `json:"resources"`
	Attributes []AutoLoadAttribute `json:"attributes"`
}
