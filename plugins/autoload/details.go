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
	"github.com/qualisystems/ixvm-vchassis/plugins/vchassis/api"
)

const (
	attrModelName    = "Model Name"
	attrVendor       = "Vendor"
	attrSerialNumber = "Serial Number"
	attrLogicalName  = "Logical Name"

	vendorName = "Ixia"
)

// DetailsBuilder flattens a resource tree into the discovery result.
type DetailsBuilder struct {
	root *Resource
}

// NewDetailsBuilder returns a builder for the given tree root.
func NewDetailsBuilder(root *Resource) *DetailsBuilder {
	return &DetailsBuilder{root: root}
}

// Details walks the tree depth-first. The root itself is not reported as a
// sub-resource, only its attributes are (under the empty relative address).
func (d *DetailsBuilder) Details() *api.DiscoveryResult {
	result := &api.DiscoveryResult{
		Resources:  []api.AutoLoadResource{},
		Attributes: []api.AutoLoadAttribute{},
	}
	if d.root == nil {
		return result
	}
	result.Attributes = append(result.Attributes, attributes(d.root, "")...)
	d.walk(d.root, "", result)
	return result
}

func (d *DetailsBuilder) walk(parent *Resource, parentAddr string, result *api.DiscoveryResult) {
	for _, key := range parent.Keys() {
		child := parent.Child(key)
		addr := key
		if parentAddr != "" {
			addr = parentAddr + "/" + key
		}
		result.Resources = append(result.Resources, api.AutoLoadResource{
			Model:            child.Model(),
			Name:             child.Name,
			RelativeAddress:  addr,
			UniqueIdentifier: child.UniqueID,
		})
		result.Attributes = append(result.Attributes, attributes(child, addr)...)
		d.walk(child, addr, result)
	}
}

func attributes(r *Resource, addr string) []api.AutoLoadAttribute {
	prefix := r.AttributePrefix()
	attr := func(name, value string) api.AutoLoadAttribute {
		return api.AutoLoadAttribute{RelativeAddress: addr, AttributeName: prefix + name, AttributeValue: value}
	}
	switch r.Kind {
	case Chassis:
		return []api.AutoLoadAttribute{
			attr(attrModelName, chassisModel),
			attr(attrVendor, vendorName),
			attr(attrSerialNumber, r.UniqueID),
		}
	case Module:
		return []api.AutoLoadAttribute{
			attr(attrModelName, moduleModel),
			attr(attrSerialNumber, r.UniqueID),
		}
	default:
		return []api.AutoLoadAttribute{
			attr(attrLogicalName, r.Name),
		}
	}
}
