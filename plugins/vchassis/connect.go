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

package vchassis

import (
	"strconv"

	"github.com/ligato/cn-infra/logging"
	"github.com/pkg/errors"

	"github.com/qualisystems/ixvm-vchassis/plugins/remap"
	"github.com/qualisystems/ixvm-vchassis/plugins/vchassis/api"
)

// legacyPortModel is the port model of first generation shells, whose ports
// are direct children of the chassis.
const legacyPortModel = "IxVM Virtual Traffic Generator Port"

// ConnectChildResources re-wires the connectors referencing the resource onto
// its ports. The sandbox is changed only when every connector was resolved.
func (p *Driver) ConnectChildResources(cmdCtx api.ResourceCommandContext) (result string, err error) {
	resource := NewResourceConfig(cmdCtx.Resource, p.config.ShellName)
	reservationID := cmdCtx.Reservation.ReservationID
	p.Log.WithFields(logging.Fields{
		"command":     connectCommand,
		"resource":    resource.FullName,
		"reservation": reservationID,
		"connectors":  len(cmdCtx.Connectors),
	}).Info("Connect child resources command started")
	defer func() { err = p.finishCommand(connectCommand, err) }()

	if err := resource.CheckFamily(p.config.ShellType); err != nil {
		return "", err
	}
	if !resource.IsDeployed() || len(cmdCtx.Connectors) == 0 {
		return connectResult, nil
	}

	domain := cmdCtx.Reservation.Domain
	if domain == "" {
		domain = defaultDomain
	}
	sandbox, err := p.SandboxAPI(cmdCtx.Connectivity, domain)
	if err != nil {
		return "", errors.Wrap(err, "open sandbox API session")
	}
	info, err := sandbox.GetResourceDetails(resource.FullName)
	if err != nil {
		return "", errors.Wrapf(err, "get details of %s", resource.FullName)
	}

	ports := p.collectPorts(info)
	p.Log.Debugf("Resource %s has %d live port(s): %v", resource.FullName, ports.Len(), ports.Keys())

	plan, err := remap.NewRemapper(p.Log).Resolve(resource.FullName, cmdCtx.Connectors, ports)
	if err != nil {
		return "", err
	}

	// no rollback: a failed set leaves the original connectors removed
	if err := sandbox.RemoveConnectorsFromReservation(reservationID, plan.Disconnect); err != nil {
		return "", errors.Wrap(err, "remove connectors from reservation")
	}
	if err := sandbox.SetConnectorsInReservation(reservationID, plan.Connect); err != nil {
		return "", errors.Wrap(err, "set connectors in reservation")
	}
	p.Log.Infof("%d connector(s) re-wired onto ports of %s", len(plan.Connect), resource.FullName)
	return connectResult, nil
}

// collectPorts indexes the live ports of the resource by vNIC id. Ports of
// module children are numbered from the configured first port index across
// all modules. Legacy resources with ports as direct children are numbered
// by their position among the children.
func (p *Driver) collectPorts(info *api.ResourceInfo) *remap.PortSet {
	ports := remap.NewPortSet()

	if hasDirectPorts(info) {
		for idx, child := range info.ChildResources {
			if child.ResourceModelName == legacyPortModel {
				ports.Add(strconv.Itoa(idx), child.Name)
			}
		}
		return ports
	}

	idx := p.config.FirstPortIndex
	for _, module := range info.ChildResources {
		if module.ResourceModelName != p.config.moduleModel() {
			continue
		}
		for _, port := range module.ChildResources {
			if port.ResourceModelName != p.config.portModel() {
				continue
			}
			ports.Add(strconv.Itoa(idx), port.Name)
			idx++
		}
	}
	return ports
}

func hasDirectPorts(info *api.ResourceInfo) bool {
	for _, child := range info.ChildResources {
		if child.ResourceModelName == legacyPortModel {
			return true
		}
	}
	return false
}
