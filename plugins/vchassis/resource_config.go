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
	"strconv"
	"strings"

	"github.com/qualisystems/ixvm-vchassis/plugins/cli"
	"github.com/qualisystems/ixvm-vchassis/plugins/vchassis/api"
)

const (
	attrUser                     = "User"
	attrPassword                 = "Password"
	attrLicenseServer            = "License Server"
	attrSessionsConcurrencyLimit = "Sessions Concurrency Limit"

	// unsetAddress is the address of a chassis resource not deployed yet.
	unsetAddress = "NA"
)

// ResourceConfig is a view of the resource the command runs on. Attributes are
// looked up under the shell namespace ("<shell name>.<attribute>").
type ResourceConfig struct {
	Name       string
	FullName   string
	Address    string
	Family     string
	ShellName  string
	Attributes map[string]string
}

// NewResourceConfig wraps the resource details of a command context.
func NewResourceConfig(resource api.ResourceContextDetails, shellName string) *ResourceConfig {
	return &ResourceConfig{
		Name:       resource.Name,
		FullName:   resource.FullName,
		Address:    resource.Address,
		Family:     resource.Family,
		ShellName:  shellName,
		Attributes: resource.Attributes,
	}
}

func (r *ResourceConfig) attribute(name string) string {
	if r.ShellName != "" {
		return r.Attributes[r.ShellName+"."+name]
	}
	return r.Attributes[name]
}

// User is the controller user.
func (r *ResourceConfig) User() string {
	return r.attribute(attrUser)
}

// Password is the encrypted controller password.
func (r *ResourceConfig) Password() string {
	return r.attribute(attrPassword)
}

// LicenseServer is the address of the license server, may be empty.
func (r *ResourceConfig) LicenseServer() string {
	return r.attribute(attrLicenseServer)
}

// SessionsConcurrencyLimit returns the limit set on the resource, or def when
// the attribute is missing or invalid.
func (r *ResourceConfig) SessionsConcurrencyLimit(def int) int {
	value := strings.TrimSpace(r.attribute(attrSessionsConcurrencyLimit))
	if value == "" {
		return def
	}
	limit, err := strconv.Atoi(value)
	if err != nil || limit <= 0 {
		return def
	}
	return limit
}

// IsDeployed reports whether the resource has a controller address.
func (r *ResourceConfig) IsDeployed() bool {
	address := strings.TrimSpace(r.Address)
	return address != "" && !strings.EqualFold(address, unsetAddress)
}

// CheckFamily fails when the resource belongs to another shell family. A
// resource without family and an empty shell type are accepted.
func (r *ResourceConfig) CheckFamily(shellType string) error {
	if r.Family == "" || shellType == "" || strings.EqualFold(r.Family, shellType) {
		return nil
	}
	return api.NewConfigurationError("resource %s has family %q, expected %q", r.FullName, r.Family, shellType)
}

// SessionConfig returns the CLI session configuration of the controller.
func (r *ResourceConfig) SessionConfig(password string, cfg *Config) cli.SessionConfig {
	return cli.SessionConfig{
		Host:     r.Address,
		Port:     cfg.CLIPort,
		Username: r.User(),
		Password: password,
		Timeout:  cfg.CLITimeout,
	}
}
