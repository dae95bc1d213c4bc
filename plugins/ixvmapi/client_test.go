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

package ixvmapi

import (
	"context"
	"net"
	"testing"

	"github.com/ligato/cn-infra/logging/logrus"
	. "github.com/onsi/gomega"

	"github.com/qualisystems/ixvm-vchassis/mock/ixvmcontroller"
	"github.com/qualisystems/ixvm-vchassis/plugins/vchassis/api"
)

func newTestClient(m *ixvmcontroller.MockController, user, password string) *Client {
	return NewClient(ClientConfig{
		Address:  m.Host(),
		Port:     m.Port(),
		Scheme:   "http",
		User:     user,
		Password: password,
	}, logrus.DefaultLogger())
}

func TestLoginAndListings(t *testing.T) {
	RegisterTestingT(t)

	m := ixvmcontroller.NewMockController("admin", "secret")
	defer m.Close()
	m.Chassis = []ixvmcontroller.Chassis{{ID: "c1"}}
	m.Cards = []ixvmcontroller.Card{{ID: "m1", CardNumber: 1}, {ID: "m2", CardNumber: "2"}}
	m.Ports = []ixvmcontroller.Port{{ID: "p1", ParentID: "m1", PortNumber: 1}}

	client := newTestClient(m, "admin", "secret")
	Expect(client.BaseURL()).To(Equal(m.URL()))
	ctx := context.Background()

	sess, err := client.Login(ctx)
	Expect(err).To(BeNil())
	Expect(sess.APIKey).To(Equal(ixvmcontroller.DefaultAPIKey))
	Expect(sess.Header()).To(HaveKeyWithValue("x-api-key", ixvmcontroller.DefaultAPIKey))

	chassis, err := client.GetChassis(ctx, sess)
	Expect(err).To(BeNil())
	Expect(chassis).To(Equal([]ChassisRecord{{ID: "c1"}}))

	cards, err := client.GetCards(ctx, sess)
	Expect(err).To(BeNil())
	Expect(cards).To(HaveLen(2))
	Expect(cards[0].CardNumber).To(Equal(Number("1")))
	Expect(cards[1].CardNumber).To(Equal(Number("2")))

	ports, err := client.GetPorts(ctx, sess)
	Expect(err).To(BeNil())
	Expect(ports).To(Equal([]PortRecord{{ID: "p1", ParentID: "m1", PortNumber: "1"}}))
}

func TestLoginAndListingsNumericIDs(t *testing.T) {
	RegisterTestingT(t)

	m := ixvmcontroller.NewMockController("admin", "secret")
	defer m.Close()
	m.Chassis = []ixvmcontroller.Chassis{{ID: 7}}
	m.Cards = []ixvmcontroller.Card{{ID: 1, ParentID: 7, CardNumber: 1}, {ID: "2", ParentID: "7", CardNumber: 2}}
	m.Ports = []ixvmcontroller.Port{{ID: 11, ParentID: 1, PortNumber: 1}, {ID: 21, ParentID: "2", PortNumber: "1"}}

	client := newTestClient(m, "admin", "secret")
	ctx := context.Background()
	sess, err := client.Login(ctx)
	Expect(err).To(BeNil())

	chassis, err := client.GetChassis(ctx, sess)
	Expect(err).To(BeNil())
	Expect(chassis).To(Equal([]ChassisRecord{{ID: "7"}}))

	cards, err := client.GetCards(ctx, sess)
	Expect(err).To(BeNil())
	Expect(cards).To(Equal([]CardRecord{
		{ID: "1", ParentID: "7", CardNumber: "1"},
		{ID: "2", ParentID: "7", CardNumber: "2"},
	}))

	ports, err := client.GetPorts(ctx, sess)
	Expect(err).To(BeNil())
	Expect(ports).To(Equal([]PortRecord{
		{ID: "11", ParentID: "1", PortNumber: "1"},
		{ID: "21", ParentID: "2", PortNumber: "1"},
	}))
}

func TestListingWithoutSession(t *testing.T) {
	RegisterTestingT(t)

	m := ixvmcontroller.NewMockController("admin", "secret")
	defer m.Close()

	client := newTestClient(m, "admin", "secret")
	_, err := client.GetCards(context.Background(), nil)
	Expect(err).ToNot(BeNil())
	Expect(api.IsKind(err, api.TransportError)).To(BeTrue())
	Expect(err.Error()).To(ContainSubstring("401"))
}

func TestLoginWrongCredentials(t *testing.T) {
	RegisterTestingT(t)

	m := ixvmcontroller.NewMockController("admin", "secret")
	defer m.Close()

	client := newTestClient(m, "admin", "wrong")
	sess, err := client.Login(context.Background())
	Expect(sess).To(BeNil())
	Expect(api.IsKind(err, api.TransportError)).To(BeTrue())
	Expect(err.Error()).To(ContainSubstring("login to IxVM controller"))
}

func TestServerErrorIsTransportError(t *testing.T) {
	RegisterTestingT(t)

	m := ixvmcontroller.NewMockController("admin", "secret")
	defer m.Close()
	m.FailPath = "/chassis/api/v2/ixos/ports"

	client := newTestClient(m, "admin", "secret")
	sess, err := client.Login(context.Background())
	Expect(err).To(BeNil())

	_, err = client.GetPorts(context.Background(), sess)
	Expect(api.IsKind(err, api.TransportError)).To(BeTrue())
	Expect(err.Error()).To(ContainSubstring("returned status code 500"))
}

func TestIsDeployed(t *testing.T) {
	RegisterTestingT(t)

	m := ixvmcontroller.NewMockController("admin", "secret")
	defer m.Close()
	m.DeployAfter = 1

	client := newTestClient(m, "admin", "secret")
	deployed, err := client.IsDeployed(context.Background())
	Expect(err).To(BeNil())
	Expect(deployed).To(BeFalse())

	deployed, err = client.IsDeployed(context.Background())
	Expect(err).To(BeNil())
	Expect(deployed).To(BeTrue())
	Expect(m.PlatformProbes).To(Equal(2))
}

func TestIsDeployedConnectionRefused(t *testing.T) {
	RegisterTestingT(t)

	// grab a free port and release it so nothing listens there
	l, err := net.Listen("tcp", "127.0.0.1:0")
	Expect(err).To(BeNil())
	port := l.Addr().(*net.TCPAddr).Port
	l.Close()

	client := NewClient(ClientConfig{Address: "127.0.0.1", Port: port, Scheme: "http"}, logrus.DefaultLogger())
	deployed, err := client.IsDeployed(context.Background())
	Expect(err).To(BeNil())
	Expect(deployed).To(BeFalse())

	_, err = client.Login(context.Background())
	Expect(api.IsKind(err, api.TransportError)).To(BeTrue())
}
