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
	"strings"
)

// ResourceKind is the level of a node in the resource tree.
type ResourceKind int

const (
	// Chassis is the root of the tree.
	Chassis ResourceKind = iota
	// Module is a card of the chassis.
	Module
	// Port is a port of a card.
	Port
)

// String returns the name of the kind.
func (k ResourceKind) String() string {
	switch k {
	case Chassis:
		return "Chassis"
	case Module:
		return "Module"
	case Port:
		return "Port"
	}
	return fmt.Sprintf("ResourceKind(%d)", int(k))
}

const (
	chassisModel = "IxVM Virtual Chassis"
	moduleModel  = "Virtual Traffic Generator Module"
	portModel    = "Virtual Traffic Generator Port"
)

// Resource is a node of the resource tree.
type Resource struct {
	Kind      ResourceKind
	UniqueID  string
	Name      string
	ShellName string

	keys     []string
	children map[string]*Resource
}

// NewChassis creates a chassis node.
func NewChassis(shellName, name, uniqueID string) *Resource {
	return newResource(Chassis, shellName, name, uniqueID)
}

// NewModule creates a module node.
func NewModule(shellName, name, uniqueID string) *Resource {
	return newResource(Module, shellName, name, uniqueID)
}

// NewPort creates a port node.
func NewPort(shellName, name, uniqueID string) *Resource {
	return newResource(Port, shellName, name, uniqueID)
}

func newResource(kind ResourceKind, shellName, name, uniqueID string) *Resource {
	return &Resource{
		Kind:      kind,
		UniqueID:  uniqueID,
		Name:      name,
		ShellName: shellName,
		children:  make(map[string]*Resource),
	}
}

// Model returns the model name of the node, prefixed with the shell name
// for second generation shells.
func (r *Resource) Model() string {
	if r.ShellName == "" {
		switch r.Kind {
		case Chassis:
			return chassisModel
		case Module:
			return moduleModel
		default:
			return portModel
		}
	}
	if r.Kind == Chassis {
		return r.ShellName
	}
	return r.ShellName + "." + strings.Replace(r.defaultModel(), " ", "", -1)
}

func (r *Resource) defaultModel() string {
	if r.Kind == Module {
		return moduleModel
	}
	return portModel
}

// AttributePrefix returns the namespace attributes of this node are reported under.
func (r *Resource) AttributePrefix() string {
	if r.ShellName == "" {
		return ""
	}
	return r.Model() + "."
}

// AddSubResource attaches child under the given local key. A chassis only
// takes modules and a module only takes ports; ports are leaves. Adding under
// an existing key replaces the child and keeps its position.
func (r *Resource) AddSubResource(key string, child *Resource) error {
	if child == nil {
		return fmt.Errorf("cannot add nil sub-resource to %s %q", r.Kind, r.Name)
	}
	if child.Kind != r.Kind+1 || r.Kind == Port {
		return fmt.Errorf("%s %q cannot be added under %s %q", child.Kind, child.Name, r.Kind, r.Name)
	}
	if _, exists := r.children[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.children[key] = child
	return nil
}

// Keys returns the local keys of the children in insertion order.
func (r *Resource) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Child returns the child added under key, or nil.
func (r *Resource) Child(key string) *Resource {
	return r.children[key]
}

// Children returns the children in insertion order.
func (r *Resource) Children() []*Resource {
	children := make([]*Resource, 0, len(r.keys))
	for _, key := range r.keys {
		children = append(children, r.children[key])
	}
	return children
}
