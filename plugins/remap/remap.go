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

package remap

import (
	"sort"
	"strings"

	"github.com/ligato/cn-infra/logging"

	"github.com/qualisystems/ixvm-vchassis/plugins/vchassis/api"
)

const (
	// AttrRequestedSourceVnic lists the vNIC ids requested when the chassis is
	// the connector source.
	AttrRequestedSourceVnic = "Requested Source vNIC Name"
	// AttrRequestedTargetVnic lists the vNIC ids requested when the chassis is
	// the connector target.
	AttrRequestedTargetVnic = "Requested Target vNIC Name"
)

// Request is a single expanded remap request. VnicID is empty when the user
// left the port unspecified.
type Request struct {
	api.Connector

	VnicID string
	// Me is the connector endpoint that refers to the chassis.
	Me string
	// Other is the opposite endpoint.
	Other string
}

// Plan lists the sandbox connector changes needed to bind the requests.
type Plan struct {
	// Disconnect holds the endpoints of the original connectors, two per connector.
	Disconnect []string
	// Connect holds the new connectors from the chosen ports.
	Connect []api.SetConnectorRequest
}

// Remapper resolves connectors onto ports.
type Remapper struct {
	Log logging.Logger
}

// NewRemapper returns a remapper logging into log.
func NewRemapper(log logging.Logger) *Remapper {
	return &Remapper{Log: log}
}

// Expand turns connectors into remap requests. resourceName must be one of the
// path segments of either the source or the target; the source is checked
// first. The second return value lists the endpoints of every connector once.
func (r *Remapper) Expand(resourceName string, connectors []api.Connector) ([]Request, []string, error) {
	var (
		requests   []Request
		disconnect []string
	)
	for _, connector := range connectors {
		var me, other, attr string
		switch {
		case hasSegment(connector.Source, resourceName):
			me, other, attr = connector.Source, connector.Target, AttrRequestedSourceVnic
		case hasSegment(connector.Target, resourceName):
			me, other, attr = connector.Target, connector.Source, AttrRequestedTargetVnic
		default:
			return nil, nil, api.NewMalformedConnectorError(connector.Source, connector.Target)
		}

		for _, vnicID := range strings.Split(lookupAttribute(connector.Attributes, attr), ",") {
			requests = append(requests, Request{
				Connector: connector,
				VnicID:    strings.TrimSpace(vnicID),
				Me:        me,
				Other:     other,
			})
		}
		disconnect = append(disconnect, me, other)
	}
	return requests, disconnect, nil
}

// Resolve expands connectors and binds every request to a port of ports.
// Allocated markers of the slots are updated in place. Requests with a vNIC id
// are bound first; the unspecified ones take the free ports in port order,
// starting from the last unspecified request.
func (r *Remapper) Resolve(resourceName string, connectors []api.Connector, ports *PortSet) (*Plan, error) {
	requests, disconnect, err := r.Expand(resourceName, connectors)
	if err != nil {
		return nil, err
	}

	var (
		withTarget    []Request
		withoutTarget []Request
	)
	for _, req := range requests {
		if req.VnicID != "" {
			withTarget = append(withTarget, req)
		} else {
			withoutTarget = append(withoutTarget, req)
		}
	}

	plan := &Plan{Disconnect: disconnect}
	for _, req := range withTarget {
		slot, found := ports.Get(req.VnicID)
		if !found {
			return nil, api.NewPortNotFoundError(req.VnicID)
		}
		if slot.Allocated {
			return nil, api.NewPortAlreadyAllocatedError(req.VnicID, slot.Name)
		}
		slot.Allocated = true
		plan.Connect = append(plan.Connect, connectRequest(slot, req))
		r.Log.Debugf("Connector to %s bound to requested port %s (%s)", req.Other, req.VnicID, slot.Name)
	}

	free := ports.Unallocated()
	if len(free) < len(withoutTarget) {
		return nil, api.NewInsufficientPortsError(len(withoutTarget), len(free))
	}
	bound, err := r.bindFree(free, withoutTarget)
	if err != nil {
		return nil, err
	}
	plan.Connect = append(plan.Connect, bound...)

	return plan, nil
}

// bindFree pops requests from the end and binds each to the next free port.
func (r *Remapper) bindFree(free []*PortSlot, requests []Request) ([]api.SetConnectorRequest, error) {
	var (
		bound   []api.SetConnectorRequest
		pending = requests
	)
	for _, slot := range free {
		if len(pending) == 0 {
			break
		}
		req := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		slot.Allocated = true
		bound = append(bound, connectRequest(slot, req))
		r.Log.Debugf("Connector to %s bound to free port %s (%s)", req.Other, slot.Key, slot.Name)
	}
	if len(pending) > 0 {
		return nil, api.NewInsufficientPortsError(len(requests), len(free))
	}
	return bound, nil
}

func connectRequest(slot *PortSlot, req Request) api.SetConnectorRequest {
	return api.SetConnectorRequest{
		SourceResourceFullName: slot.Name,
		TargetResourceFullName: req.Other,
		Direction:              req.Direction,
		Alias:                  req.Alias,
	}
}

// hasSegment reports whether name is one of the slash separated segments of path.
func hasSegment(path, name string) bool {
	for _, segment := range strings.Split(path, "/") {
		if segment == name {
			return true
		}
	}
	return false
}

// lookupAttribute returns the attribute stored under name, or under a shell
// namespaced name ending with "."+name. Among several namespaced keys the
// lowest one in sort order wins.
func lookupAttribute(attributes map[string]string, name string) string {
	if value, found := attributes[name]; found {
		return value
	}
	var keys []string
	for key := range attributes {
		if strings.HasSuffix(key, "."+name) {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)
	return attributes[keys[0]]
}
