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
	"io/ioutil"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"

	"github.com/qualisystems/ixvm-vchassis/plugins/vchassis/api"
)

// commandContext is the content of the --context file.
type commandContext struct {
	Resource     api.ResourceContextDetails    `json:"resource"`
	Reservation  api.ReservationContextDetails `json:"reservation"`
	Connectivity api.ConnectivityContext       `json:"connectivity"`
	Connectors   []api.Connector               `json:"connectors"`

	// LiveResource is what the sandbox reports for the deployed resource.
	LiveResource *api.ResourceInfo `json:"liveResource"`
}

func loadCommandContext(path string) (*commandContext, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read context file %s", path)
	}
	cmdCtx := &commandContext{}
	if err := yaml.Unmarshal(data, cmdCtx); err != nil {
		return nil, errors.Wrapf(err, "parse context file %s", path)
	}
	if cmdCtx.Resource.FullName == "" {
		cmdCtx.Resource.FullName = cmdCtx.Resource.Name
	}
	return cmdCtx, nil
}

func (c *commandContext) autoloadContext() api.AutoLoadCommandContext {
	return api.AutoLoadCommandContext{Resource: c.Resource, Connectivity: c.Connectivity}
}

func (c *commandContext) resourceContext() api.ResourceCommandContext {
	return api.ResourceCommandContext{
		Resource:     c.Resource,
		Reservation:  c.Reservation,
		Connectivity: c.Connectivity,
		Connectors:   c.Connectors,
	}
}
