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

	"github.com/qualisystems/ixvm-vchassis/plugins/cli"
	"github.com/qualisystems/ixvm-vchassis/plugins/ixvmapi"
	"github.com/qualisystems/ixvm-vchassis/plugins/readiness"
)

const (
	// DefaultShellName is the name of the second generation shell.
	DefaultShellName = "IxVM Virtual Traffic Chassis 2G"
	// DefaultShellType is the family of the shell.
	DefaultShellType = "CS_VirtualTrafficGeneratorChassis"

	// defaultFirstPortIndex is the vNIC id of the first live port; vNIC 1 is
	// the management interface of the chassis VM.
	defaultFirstPortIndex = 2

	moduleModelSuffix = ".VirtualTrafficGeneratorModule"
	portModelSuffix   = ".VirtualTrafficGeneratorPort"
)

// Config holds the driver configuration.
type Config struct {
	// readiness
	ServiceDeployTimeout time.Duration `json:"service-deploy-timeout"`
	StructureTimeout     time.Duration `json:"structure-timeout"`
	PollInterval         time.Duration `json:"poll-interval"`

	// controller REST API
	ControllerScheme string        `json:"controller-scheme"`
	ControllerPort   int           `json:"controller-port"`
	VerifySSL        bool          `json:"verify-ssl"`
	HTTPTimeout      time.Duration `json:"http-timeout"`

	// controller CLI
	CLIPort                  int           `json:"cli-port"`
	CLITimeout               time.Duration `json:"cli-timeout"`
	SessionsConcurrencyLimit int           `json:"sessions-concurrency-limit"`

	// resource models
	ShellName      string `json:"shell-name"`
	ShellType      string `json:"shell-type"`
	ModuleModel    string `json:"module-model"`
	PortModel      string `json:"port-model"`
	FirstPortIndex int    `json:"first-port-index"`
}

// DefaultConfig returns the configuration used when no config file is found.
func DefaultConfig() *Config {
	return &Config{
		ServiceDeployTimeout:     readiness.DefaultServiceDeployTimeout,
		StructureTimeout:         readiness.DefaultStructureTimeout,
		PollInterval:             readiness.DefaultInterval,
		ControllerScheme:         ixvmapi.DefaultScheme,
		ControllerPort:           ixvmapi.DefaultPort,
		HTTPTimeout:              ixvmapi.DefaultTimeout,
		CLIPort:                  cli.DefaultPort,
		CLITimeout:               cli.DefaultTimeout,
		SessionsConcurrencyLimit: cli.DefaultSessionsLimit,
		ShellName:                DefaultShellName,
		ShellType:                DefaultShellType,
		FirstPortIndex:           defaultFirstPortIndex,
	}
}

// moduleModel returns the model of live module resources.
func (c *Config) moduleModel() string {
	if c.ModuleModel != "" {
		return c.ModuleModel
	}
	return c.ShellName + moduleModelSuffix
}

// portModel returns the model of live port resources.
func (c *Config) portModel() string {
	if c.PortModel != "" {
		return c.PortModel
	}
	return c.ShellName + portModelSuffix
}
