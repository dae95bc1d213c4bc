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

package configuration

import (
	"github.com/qualisystems/ixvm-vchassis/plugins/cli"
)

// LicenseServerIPArg is the placeholder of ConfigureLicenseServer.
const LicenseServerIPArg = "license_server_ip"

var (
	// ConfigureLicenseServer sets the license server of the controller.
	ConfigureLicenseServer = cli.NewCommandTemplate("set license-server {" + LicenseServerIPArg + "}")

	// RestartIxVMService restarts the controller service.
	RestartIxVMService = cli.NewCommandTemplate("restart-service ixServer")
)
