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

// Package main implements ixvm-shell, a tool running the IxVM virtual chassis
// driver commands outside of the orchestration host.
//
// The command context (resource attributes, reservation, connectors and the
// live resource tree) is read from a YAML file. Sandbox API calls are printed
// instead of sent.
//
// Usage:
//
//	ixvm-shell autoload --context chassis.yaml
//	ixvm-shell connect --context chassis.yaml --config ixvm-vchassis.conf
package main
