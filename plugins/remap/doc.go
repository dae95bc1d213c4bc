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

// Package remap resolves sandbox connectors that reference the virtual
// chassis onto its concrete ports.
//
// A connector may carry a comma separated list of requested vNIC ids for the
// chassis end. Every id becomes a separate request. Requests naming a vNIC are
// resolved first and always win the port they ask for; the remaining
// requests are spread over the ports nobody asked for. The result is a Plan
// which the driver applies against the reservation in two batched calls.
package remap
