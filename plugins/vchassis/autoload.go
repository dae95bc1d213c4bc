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

package vchassis

import (
	"time"

	"github.com/ligato/cn-infra/logging"
	"github.com/pkg/errors"

	"github.com/qualisystems/ixvm-vchassis/plugins/autoload"
	"github.com/qualisystems/ixvm-vchassis/plugins/configuration"
	"github.com/qualisystems/ixvm-vchassis/plugins/ixvmapi"
	"github.com/qualisystems/ixvm-vchassis/plugins/readiness"
	"github.com/qualisystems/ixvm-vchassis/plugins/vchassis/api"
)

// GetInventory discovers the chassis structure of the controller behind the
// resource address. A resource without address (not deployed yet) has an
// empty structure.
func (p *Driver) GetInventory(cmdCtx api.AutoLoadCommandContext) (result *api.DiscoveryResult, err error) {
	resource := NewResourceConfig(cmdCtx.Resource, p.config.ShellName)
	p.Log.WithFields(logging.Fields{"command": autoloadCommand, "resource": resource.FullName}).
		Info("Autoload command started")
	defer func() { err = p.finishCommand(autoloadCommand, err) }()

	if err := resource.CheckFamily(p.config.ShellType); err != nil {
		return nil, err
	}
	if !resource.IsDeployed() {
		p.Log.Infof("Resource %s has no address, nothing to discover", resource.FullName)
		return &api.DiscoveryResult{Resources: []api.AutoLoadResource{}, Attributes: []api.AutoLoadAttribute{}}, nil
	}

	sandbox, err := p.SandboxAPI(cmdCtx.Connectivity, defaultDomain)
	if err != nil {
		return nil, errors.Wrap(err, "open sandbox API session")
	}
	password, err := sandbox.DecryptPassword(resource.Password())
	if err != nil {
		return nil, errors.Wrap(err, "decrypt controller password")
	}

	p.Log.Info("Initializing API client")
	client := ixvmapi.NewClient(ixvmapi.ClientConfig{
		Address:   resource.Address,
		User:      resource.User(),
		Password:  password,
		Scheme:    p.config.ControllerScheme,
		Port:      p.config.ControllerPort,
		VerifySSL: p.config.VerifySSL,
		Timeout:   p.config.HTTPTimeout,
	}, p.Log)

	ctx := p.commandContext()
	waiter := readiness.NewWaiter(p.Log)
	waiter.Interval = p.config.PollInterval

	p.Log.Info("Waiting for API service to be deployed")
	start := time.Now()
	err = waiter.WaitServiceDeployed(ctx, client, p.config.ServiceDeployTimeout)
	p.metrics.observeWait(stageServiceDeployed, start)
	if err != nil {
		return nil, err
	}

	p.Log.Info("Executing configure license server operation")
	runner := configuration.NewRunner(p.sessions(), resource.SessionConfig(password, p.config), p.Log)
	if err := runner.ConfigureLicenseServer(ctx, resource.LicenseServer()); err != nil {
		return nil, err
	}

	p.Log.Info("Performing API client login")
	sess, err := client.Login(ctx)
	if err != nil {
		return nil, err
	}

	p.Log.Info("Waiting for the Chassis data")
	start = time.Now()
	err = waiter.WaitChassisStructure(ctx, client, sess, p.config.StructureTimeout)
	p.metrics.observeWait(stageChassisStructure, start)
	if err != nil {
		return nil, err
	}

	p.Log.Info("Retrieving Chassis data from the API")
	chassis, err := client.GetChassis(ctx, sess)
	if err != nil {
		return nil, err
	}
	cards, err := client.GetCards(ctx, sess)
	if err != nil {
		return nil, err
	}
	ports, err := client.GetPorts(ctx, sess)
	if err != nil {
		return nil, err
	}

	root, err := autoload.NewBuilder(p.Log, resource.ShellName).BuildTree(chassis, cards, ports)
	if err != nil {
		return nil, err
	}
	return autoload.NewDetailsBuilder(root).Details(), nil
}
