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

// PortSlot is a live port of the chassis resource that a connector can be
// bound to.
type PortSlot struct {
	// Key is the vNIC id users refer to the port by.
	Key string
	// Name is the full name of the port resource in the sandbox.
	Name string
	// Allocated is set once a connector was bound to the port.
	Allocated bool
}

// PortSet is an ordered collection of port slots indexed by their key.
// Iteration follows insertion order.
type PortSet struct {
	keys  []string
	slots map[string]*PortSlot
}

// NewPortSet returns an empty port set.
func NewPortSet() *PortSet {
	return &PortSet{slots: make(map[string]*PortSlot)}
}

// Add inserts a port under key. Re-adding an existing key replaces the slot
// and keeps its position.
func (s *PortSet) Add(key, name string) *PortSlot {
	if _, exists := s.slots[key]; !exists {
		s.keys = append(s.keys, key)
	}
	slot := &PortSlot{Key: key, Name: name}
	s.slots[key] = slot
	return slot
}

// Get returns the slot stored under key.
func (s *PortSet) Get(key string) (slot *PortSlot, found bool) {
	slot, found = s.slots[key]
	return slot, found
}

// Len returns the number of ports.
func (s *PortSet) Len() int {
	return len(s.keys)
}

// Keys returns port keys in insertion order.
func (s *PortSet) Keys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Unallocated returns the slots without a bound connector, in insertion order.
func (s *PortSet) Unallocated() []*PortSlot {
	var free []*PortSlot
	for _, key := range s.keys {
		if slot := s.slots[key]; !slot.Allocated {
			free = append(free, slot)
		}
	}
	return free
}
