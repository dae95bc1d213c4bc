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

// Package vchassis implements the resource driver of the IxVM virtual traffic
// chassis.
//
// The driver discovers the chassis of a deployed IxVM controller (autoload):
// it waits for the controller service, points the controller to the license
// server over its CLI, waits for the chassis structure and reports it as a
// chassis/module/port resource tree. Once the chassis is part of a
// reservation, the driver re-wires the sandbox connectors that reference it
// onto its concrete ports.
package vchassis
