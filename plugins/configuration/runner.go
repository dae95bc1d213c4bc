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
	"strings"

	"github.com/ligato/cn-infra/logging"
	"github.com/pkg/errors"

	"github.com/qualisystems/ixvm-vchassis/plugins/cli"
)

// Runner exposes the configuration flows of one controller.
type Runner struct {
	Log      logging.Logger
	Sessions cli.SessionProvider
	Config   cli.SessionConfig
}

// NewRunner returns a runner opening sessions with cfg through sessions.
func NewRunner(sessions cli.SessionProvider, cfg cli.SessionConfig, log logging.Logger) *Runner {
	return &Runner{Log: log, Sessions: sessions, Config: cfg}
}

// ConfigureLicenseServer points the controller to the license server. An empty
// address leaves the controller untouched.
func (r *Runner) ConfigureLicenseServer(ctx context.Context, licenseServerIP string) error {
	licenseServerIP = strings.TrimSpace(licenseServerIP)
	if licenseServerIP == "" {
		r.Log.Info("No license server configured, skipping license server configuration")
		return nil
	}

	r.Log.Infof("Configuring license server %s on %s", licenseServerIP, r.Config.Host)
	flow := &LicenseServerFlow{
		Log:      r.Log,
		Sessions: r.Sessions,
		Config:   r.Config,
		Mode:     cli.DefaultCommandMode(),
	}
	if err := flow.Execute(ctx, licenseServerIP); err != nil {
		return errors.Wrapf(err, "configure license server %s", licenseServerIP)
	}
	return nil
}
