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
	"github.com/ligato/cn-infra/config"
	"github.com/ligato/cn-infra/logging"
)

// NewPlugin creates a new Driver with the provided Options.
func NewPlugin(opts ...Option) *Driver {
	p := &Driver{}

	p.PluginName = "ixvm-vchassis"

	for _, o := range opts {
		o(p)
	}

	if p.Deps.Log == nil {
		p.Deps.Log = logging.ForPlugin(p.String())
	}
	if p.Deps.Cfg == nil && p.config == nil {
		p.Deps.Cfg = config.ForPlugin(p.String())
	}

	return p
}

// Option is a function that acts on a Driver to inject Dependencies or configuration.
type Option func(*Driver)

// UseDeps returns Option that can inject custom dependencies.
func UseDeps(cb func(*Deps)) Option {
	return func(p *Driver) {
		cb(&p.Deps)
	}
}

// UseConfig returns Option that sets the driver configuration instead of
// loading it from the config file.
func UseConfig(config *Config) Option {
	return func(p *Driver) {
		p.config = config
	}
}
