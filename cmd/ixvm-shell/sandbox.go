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

package main

import (
	"fmt"
	"io"

	"github.com/qualisystems/ixvm-vchassis/plugins/vchassis/api"
)

// LocalSandbox stands in for the sandbox API: passwords are stored in clear
// text, resource details come from the context file and connector changes are
// printed.
type LocalSandbox struct {
	cmdCtx *commandContext
	out    io.Writer
}

// NewLocalSandbox returns a sandbox backed by the command context.
func NewLocalSandbox(cmdCtx *commandContext, out io.Writer) *LocalSandbox {
	return &LocalSandbox{cmdCtx: cmdCtx, out: out}
}

// Provider returns a provider handing out the local sandbox.
func (s *LocalSandbox) Provider() api.SandboxAPIProvider {
	return func(api.ConnectivityContext, string) (api.SandboxAPI, error) {
		return s, nil
	}
}

// DecryptPassword returns the password unchanged.
func (s *LocalSandbox) DecryptPassword(encrypted string) (string, error) {
	return encrypted, nil
}

// GetResourceDetails returns the live resource of the context file.
func (s *LocalSandbox) GetResourceDetails(fullName string) (*api.ResourceInfo, error) {
	live := s.cmdCtx.LiveResource
	if live == nil || (live.Name != "" && live.Name != fullName) {
		return nil, fmt.Errorf("resource %s is not described in the context file", fullName)
	}
	return live, nil
}

// RemoveConnectorsFromReservation prints the endpoints.
func (s *LocalSandbox) RemoveConnectorsFromReservation(reservationID string, endpoints []string) error {
	return printYaml(s.out, map[string]interface{}{
		"reservationId":      reservationID,
		"removeConnectorsOf": endpoints,
	})
}

// SetConnectorsInReservation prints the connectors.
func (s *LocalSandbox) SetConnectorsInReservation(reservationID string, connectors []api.SetConnectorRequest) error {
	return printYaml(s.out, map[string]interface{}{
		"reservationId": reservationID,
		"setConnectors": connectors,
	})
}
