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
	"errors"
	"testing"

	"github.com/ligato/cn-infra/logging/logrus"
	. "github.com/onsi/gomega"

	mockcli "github.com/qualisystems/ixvm-vchassis/mock/cli"
	"github.com/qualisystems/ixvm-vchassis/plugins/cli"
	"github.com/qualisystems/ixvm-vchassis/plugins/vchassis/api"
)

var sessionConfig = cli.SessionConfig{Host: "192.168.42.169", Port: 22, Username: "admin", Password: "admin"}

func newRunner() (*Runner, *mockcli.MockSessionFactory) {
	factory := mockcli.NewMockSessionFactory()
	pool := cli.NewCLI(factory, 1, logrus.DefaultLogger())
	return NewRunner(pool, sessionConfig, logrus.DefaultLogger()), factory
}

func TestConfigureLicenseServer(t *testing.T) {
	RegisterTestingT(t)

	runner, factory := newRunner()
	Expect(runner.ConfigureLicenseServer(context.Background(), "192.168.42.61")).To(Succeed())

	Expect(factory.Sessions()).To(HaveLen(1))
	Expect(factory.Commands()).To(Equal([]string{
		"set license-server 192.168.42.61",
		"restart-service ixServer",
	}))
	Expect(factory.Configs()).To(Equal([]cli.SessionConfig{sessionConfig}))
	Expect(factory.OpenSessions()).To(BeZero())
	Expect(factory.Sessions()[0].Mode().ExitCommand).To(Equal("\x03"))
}

func TestConfigureLicenseServerEmpty(t *testing.T) {
	RegisterTestingT(t)

	runner, factory := newRunner()
	Expect(runner.ConfigureLicenseServer(context.Background(), "  ")).To(Succeed())
	Expect(factory.Sessions()).To(BeEmpty())
}

func TestConfigureLicenseServerRejected(t *testing.T) {
	RegisterTestingT(t)

	runner, factory := newRunner()
	factory.Replies["set license-server"] = "Error: invalid address"

	err := runner.ConfigureLicenseServer(context.Background(), "not-an-ip")
	Expect(api.IsKind(err, api.CommandExecutionError)).To(BeTrue())
	Expect(err.Error()).To(ContainSubstring("configure license server not-an-ip"))

	// the service is not restarted and the session is released
	Expect(factory.Commands()).To(Equal([]string{"set license-server not-an-ip"}))
	Expect(factory.OpenSessions()).To(BeZero())
}

func TestConfigureLicenseServerNoSession(t *testing.T) {
	RegisterTestingT(t)

	runner, factory := newRunner()
	factory.OpenErr = errors.New("connection refused")

	err := runner.ConfigureLicenseServer(context.Background(), "192.168.42.61")
	Expect(err).ToNot(BeNil())
	Expect(err.Error()).To(ContainSubstring("connection refused"))
}
