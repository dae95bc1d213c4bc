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

// Package autoload builds the chassis -> module -> port resource tree out of the
// flat controller listings and flattens it into the discovery result reported
// to the sandbox.
//
// The local key a sub-resource is added under becomes part of its public
// address (e.g. "1/2" for port 2 of module 1), so children keep the insertion
// order of the source listing.
package autoload
