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
	"context"

	"github.com/ligato/cn-infra/logging"

	"github.com/qualisystems/ixvm-vchassis/plugins/cli"
)

// LicenseServerFlow configures the license server within one CLI session.
type LicenseServerFlow struct {
	Log      logging.Logger
	Sessions cli.SessionProvider
	Config   cli.SessionConfig
	Mode     cli.CommandMode
}

// Execute sets the license server and restarts the service. The session is
// released whatever the outcome.
func (f *LicenseServerFlow) Execute(ctx context.Context, licenseServerIP string) error {
	return f.Sessions.GetSession(ctx, f.Config, f.Mode, func(session cli.Session) error {
		executor := cli.NewExecutor(session)
		if _, err := executor.Execute(ctx, ConfigureLicenseServer,
			map[string]string{LicenseServerIPArg: licenseServerIP}); err != nil {
			return err
		}
		f.Log.Debugf("License server set to %s, restarting IxVM service", licenseServerIP)
		_, err := executor.Execute(ctx, RestartIxVMService, nil)
		return err
	})
}
