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

package cli_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ligato/cn-infra/logging/logrus"
	. "github.com/onsi/gomega"

	mockcli "github.com/qualisystems/ixvm-vchassis/mock/cli"
	"github.com/qualisystems/ixvm-vchassis/plugins/cli"
	"github.com/qualisystems/ixvm-vchassis/plugins/vchassis/api"
)

var testConfig = cli.SessionConfig{Host: "192.168.42.169", Username: "admin", Password: "admin"}

func TestGetSessionReleasesSession(t *testing.T) {
	RegisterTestingT(t)

	factory := mockcli.NewMockSessionFactory()
	pool := cli.NewCLI(factory, 1, logrus.DefaultLogger())

	err := pool.GetSession(context.Background(), testConfig, cli.DefaultCommandMode(), func(session cli.Session) error {
		_, err := session.SendCommand(context.Background(), "show version")
		return err
	})
	Expect(err).To(BeNil())
	Expect(factory.Configs()).To(Equal([]cli.SessionConfig{testConfig}))
	Expect(factory.Commands()).To(Equal([]string{"show version"}))
	Expect(factory.OpenSessions()).To(BeZero())

	failure := errors.New("callback failed")
	err = pool.GetSession(context.Background(), testConfig, cli.DefaultCommandMode(), func(cli.Session) error {
		return failure
	})
	Expect(err).To(Equal(failure))
	Expect(factory.OpenSessions()).To(BeZero())
	Expect(factory.Sessions()[1].Closed()).To(BeTrue())
}

func TestGetSessionOpenFailure(t *testing.T) {
	RegisterTestingT(t)

	factory := mockcli.NewMockSessionFactory()
	factory.OpenErr = errors.New("connection refused")
	pool := cli.NewCLI(factory, 1, logrus.DefaultLogger())

	called := false
	err := pool.GetSession(context.Background(), testConfig, cli.DefaultCommandMode(), func(cli.Session) error {
		called = true
		return nil
	})
	Expect(err).ToNot(BeNil())
	Expect(err.Error()).To(ContainSubstring("open CLI session to 192.168.42.169"))
	Expect(called).To(BeFalse())

	// the slot was returned
	factory.OpenErr = nil
	Expect(pool.GetSession(context.Background(), testConfig, cli.DefaultCommandMode(),
		func(cli.Session) error { return nil })).To(Succeed())
}

func TestSessionsLimit(t *testing.T) {
	RegisterTestingT(t)

	factory := mockcli.NewMockSessionFactory()
	pool := cli.NewCLI(factory, 2, logrus.DefaultLogger())
	Expect(pool.Limit()).To(Equal(2))

	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pool.GetSession(context.Background(), testConfig, cli.DefaultCommandMode(), func(cli.Session) error {
				time.Sleep(10 * time.Millisecond)
				return nil
			})
		}()
	}
	wg.Wait()

	Expect(factory.Sessions()).To(HaveLen(6))
	Expect(factory.MaxOpenSessions()).To(BeNumerically("<=", 2))
	Expect(factory.OpenSessions()).To(BeZero())
}

func TestSessionsLimitDefault(t *testing.T) {
	RegisterTestingT(t)

	Expect(cli.NewCLI(mockcli.NewMockSessionFactory(), 0, logrus.DefaultLogger()).Limit()).To(Equal(cli.DefaultSessionsLimit))
}

func TestGetSessionCancelledWhileWaiting(t *testing.T) {
	RegisterTestingT(t)

	factory := mockcli.NewMockSessionFactory()
	pool := cli.NewCLI(factory, 1, logrus.DefaultLogger())

	holding := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error)
	go func() {
		done <- pool.GetSession(context.Background(), testConfig, cli.DefaultCommandMode(), func(cli.Session) error {
			close(holding)
			<-release
			return nil
		})
	}()
	<-holding

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := pool.GetSession(ctx, testConfig, cli.DefaultCommandMode(), func(cli.Session) error { return nil })
	Expect(err).ToNot(BeNil())
	Expect(err.Error()).To(ContainSubstring("wait for free CLI session"))

	close(release)
	Expect(<-done).To(BeNil())
	Expect(factory.Sessions()).To(HaveLen(1))
}

func TestCloseTerminatesOpenSessions(t *testing.T) {
	RegisterTestingT(t)

	factory := mockcli.NewMockSessionFactory()
	pool := cli.NewCLI(factory, 1, logrus.DefaultLogger())

	err := pool.GetSession(context.Background(), testConfig, cli.DefaultCommandMode(), func(session cli.Session) error {
		Expect(pool.Close()).To(Succeed())
		Expect(factory.OpenSessions()).To(BeZero())
		return nil
	})
	Expect(err).To(BeNil())
	// the session is not closed a second time on release
	Expect(factory.OpenSessions()).To(BeZero())

	err = pool.GetSession(context.Background(), testConfig, cli.DefaultCommandMode(), func(cli.Session) error { return nil })
	Expect(err).ToNot(BeNil())
	Expect(factory.Sessions()).To(HaveLen(1))
}

func TestCommandTemplate(t *testing.T) {
	RegisterTestingT(t)

	template := cli.NewCommandTemplate("set license-server {license_server_ip} {missing}",
		cli.ErrorPattern{Pattern: "invalid address", Description: "License server address is invalid"})
	Expect(template.Render(map[string]string{"license_server_ip": "10.0.0.5"})).
		To(Equal("set license-server 10.0.0.5 {missing}"))

	Expect(template.ErrorMap).To(Equal([]cli.ErrorPattern{
		{Pattern: "invalid address", Description: "License server address is invalid"},
		{Pattern: "error:", Description: "Error happens while executing CLI command"},
	}))

	pattern, failed := template.MatchError("ERROR: Invalid Address given")
	Expect(failed).To(BeTrue())
	Expect(pattern.Description).To(Equal("License server address is invalid"))

	_, failed = template.MatchError("license server set\n#")
	Expect(failed).To(BeFalse())
}

func TestExecutor(t *testing.T) {
	RegisterTestingT(t)

	factory := mockcli.NewMockSessionFactory()
	factory.Replies["restart-service"] = "Error: service ixServer not found"
	session, err := factory.NewSession(context.Background(), testConfig, cli.DefaultCommandMode())
	Expect(err).To(BeNil())
	executor := cli.NewExecutor(session)

	output, err := executor.Execute(context.Background(), cli.NewCommandTemplate("set license-server {ip}"),
		map[string]string{"ip": "10.0.0.5"})
	Expect(err).To(BeNil())
	Expect(output).To(Equal("#"))

	_, err = executor.Execute(context.Background(), cli.NewCommandTemplate("restart-service ixServer"), nil)
	Expect(api.IsKind(err, api.CommandExecutionError)).To(BeTrue())
	Expect(err.Error()).To(ContainSubstring("Error happens while executing CLI command"))
	Expect(factory.Commands()).To(Equal([]string{"set license-server 10.0.0.5", "restart-service ixServer"}))

	factory.SendErr = errors.New("broken pipe")
	_, err = executor.Execute(context.Background(), cli.NewCommandTemplate("show version"), nil)
	Expect(err).ToNot(BeNil())
	Expect(api.IsKind(err, api.CommandExecutionError)).To(BeFalse())
}
