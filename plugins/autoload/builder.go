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

package autoload

import (
	"fmt"

	"github.com/ligato/cn-infra/logging"
	"github.com/pkg/errors"

	"github.com/qualisystems/ixvm-vchassis/plugins/ixvmapi"
)

// Builder joins the controller listings into a resource tree.
type Builder struct {
	Log       logging.Logger
	ShellName string
}

// NewBuilder returns a builder for the given shell name (may be empty).
func NewBuilder(log logging.Logger, shellName string) *Builder {
	return &Builder{Log: log, ShellName: shellName}
}

// BuildTree returns the chassis node with one module per card (keyed by card
// number) and, under each module, one port per port whose parent is that card
// (keyed by port number). Only the first chassis is used: a controller is
// expected to expose exactly one. Ports whose parent is not a listed card are
// dropped.
func (b *Builder) BuildTree(chassis []ixvmapi.ChassisRecord, cards []ixvmapi.CardRecord,
	ports []ixvmapi.PortRecord) (*Resource, error) {

	if len(chassis) == 0 {
		return nil, errors.New("IxVM controller returned an empty chassis listing")
	}
	if len(chassis) > 1 {
		b.Log.Warnf("IxVM controller returned %d chassis, only %s is loaded", len(chassis), chassis[0].ID)
	}
	chassisID := chassis[0].ID.String()
	root := NewChassis(b.ShellName, fmt.Sprintf("IxVm Virtual Chassis %s", chassisID), chassisID)

	portsByCard := make(map[ixvmapi.Number][]ixvmapi.PortRecord)
	for _, port := range ports {
		portsByCard[port.ParentID] = append(portsByCard[port.ParentID], port)
		b.Log.Debugf("Found Port %s under the parent id %s", port.PortNumber, port.ParentID)
	}

	attached := 0
	for _, card := range cards {
		module := NewModule(b.ShellName, fmt.Sprintf("IxVm Virtual Module %s", card.CardNumber), card.ID.String())
		b.Log.Debugf("Adding Module %s to the Chassis", card.CardNumber)
		if err := root.AddSubResource(card.CardNumber.String(), module); err != nil {
			return nil, err
		}

		for _, port := range portsByCard[card.ID] {
			portRes := NewPort(b.ShellName, fmt.Sprintf("Port %s", port.PortNumber), port.ID.String())
			b.Log.Debugf("Adding Port %s under the module %s", port.PortNumber, card.ID)
			if err := module.AddSubResource(port.PortNumber.String(), portRes); err != nil {
				return nil, err
			}
			attached++
		}
	}
	if dropped := len(ports) - attached; dropped > 0 {
		b.Log.Debugf("%d port(s) reference no listed card and were skipped", dropped)
	}

	return root, nil
}
