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
	"context"
	"sync"

	"github.com/ligato/cn-infra/infra"
	"github.com/ligato/cn-infra/logging"
	"github.com/ligato/cn-infra/utils/safeclose"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/qualisystems/ixvm-vchassis/plugins/cli"
	"github.com/qualisystems/ixvm-vchassis/plugins/vchassis/api"
)

const (
	initializeCommand = "initialize"
	autoloadCommand   = "get_inventory"
	connectCommand    = "connect_child_resources"

	initializeResult = "Finished initializing"
	connectResult    = "Success"

	// defaultDomain is used for sandbox API sessions outside of a reservation.
	defaultDomain = "Global"
)

var _ api.ResourceDriver = (*Driver)(nil)

// Driver is the resource driver of the IxVM virtual chassis.
type Driver struct {
	Deps

	config  *Config
	metrics *metrics

	ctx    context.Context
	cancel context.CancelFunc

	// CLI session pool created by Initialize
	mu  sync.Mutex
	cli *cli.CLI
}

// Deps groups the dependencies of the Driver.
type Deps struct {
	infra.PluginDeps

	// SandboxAPI opens sessions to the sandbox API of the host.
	SandboxAPI api.SandboxAPIProvider

	// CLIFactory opens CLI sessions to the controller (SSH by default).
	CLIFactory cli.SessionFactory

	// Registerer receives the driver metrics (optional).
	Registerer prometheus.Registerer
}

// Init loads the configuration and the metrics of the driver.
func (p *Driver) Init() error {
	p.ctx, p.cancel = context.WithCancel(context.Background())

	if p.config == nil {
		p.config = DefaultConfig()
		if err := p.loadConfig(p.config); err != nil {
			return err
		}
	}
	if p.config.ServiceDeployTimeout <= 0 || p.config.StructureTimeout <= 0 {
		return api.NewConfigurationError("readiness timeouts must be positive, got %v and %v",
			p.config.ServiceDeployTimeout, p.config.StructureTimeout)
	}
	if p.config.FirstPortIndex < 0 {
		return api.NewConfigurationError("first port index must not be negative, got %d", p.config.FirstPortIndex)
	}
	if p.SandboxAPI == nil {
		return api.NewConfigurationError("%s: sandbox API provider is not set", p.String())
	}
	if p.CLIFactory == nil {
		p.CLIFactory = cli.NewSSHFactory(p.Log)
	}

	var err error
	if p.metrics, err = newMetrics(p.Registerer); err != nil {
		return errors.Wrap(err, "register driver metrics")
	}
	return nil
}

// loadConfig loads configuration file.
func (p *Driver) loadConfig(config *Config) error {
	if p.Cfg == nil {
		return nil
	}
	found, err := p.Cfg.LoadValue(config)
	if err != nil {
		return err
	} else if !found {
		p.Log.Debugf("%v config not found", p.PluginName)
		return nil
	}
	p.Log.Debugf("%v config found: %+v", p.PluginName, config)
	return nil
}

// Close stops running commands and releases the CLI sessions.
func (p *Driver) Close() error {
	return p.Cleanup()
}

// Initialize creates the CLI session pool bounded by the sessions
// concurrency limit of the resource.
func (p *Driver) Initialize(ctx api.InitCommandContext) (string, error) {
	resource := NewResourceConfig(ctx.Resource, p.config.ShellName)
	limit := resource.SessionsConcurrencyLimit(p.config.SessionsConcurrencyLimit)

	p.mu.Lock()
	previous := p.cli
	p.cli = cli.NewCLI(p.CLIFactory, limit, p.Log)
	p.mu.Unlock()

	if previous != nil {
		safeclose.Close(previous)
	}
	p.metrics.observeCommand(initializeCommand, nil)
	p.Log.WithFields(logging.Fields{"resource": resource.Name, "limit": limit}).Info("Driver initialized")
	return initializeResult, nil
}

// Cleanup cancels running commands and closes open CLI sessions.
func (p *Driver) Cleanup() error {
	if p.cancel != nil {
		p.cancel()
	}
	p.mu.Lock()
	pool := p.cli
	p.cli = nil
	p.mu.Unlock()
	if pool == nil {
		return nil
	}
	return safeclose.Close(pool)
}

// commandContext is cancelled by Cleanup.
func (p *Driver) commandContext() context.Context {
	if p.ctx == nil {
		return context.Background()
	}
	return p.ctx
}

// sessions returns the CLI pool, creating one with the configured limit when
// Initialize was not called.
func (p *Driver) sessions() *cli.CLI {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cli == nil {
		p.cli = cli.NewCLI(p.CLIFactory, p.config.SessionsConcurrencyLimit, p.Log)
	}
	return p.cli
}

// finishCommand records the outcome of a command and wraps a failure so that
// the host shows which command failed.
func (p *Driver) finishCommand(command string, err error) error {
	p.metrics.observeCommand(command, err)
	if err == nil {
		p.Log.WithFields(logging.Fields{"command": command}).Info("Command finished")
		return nil
	}
	p.Log.WithFields(logging.Fields{"command": command}).Errorf("Command failed: %v", err)
	return api.NewCommandError(command, err)
}
