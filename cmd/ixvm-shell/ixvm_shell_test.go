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

package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/qualisystems/ixvm-vchassis/plugins/vchassis/api"
)

const contextYaml = `
resource:
  name: ixvm-chassis
  address: 192.168.42.169
  attributes:
    IxVM Virtual Traffic Chassis 2G.User: admin
    IxVM Virtual Traffic Chassis 2G.Password: admin
reservation:
  reservationId: 0cc17f8c-75ba-495f-aeb5-df5f0f9a0e97
connectors:
- source: ixvm-chassis
  target: vlan-a
  direction: bi
  attributes:
    Requested Source vNIC Name: "2,3"
liveResource:
  name: ixvm-chassis
  childResources:
  - name: ixvm-chassis/Module 1
    resourceModelName: IxVM Virtual Traffic Chassis 2G.VirtualTrafficGeneratorModule
    childResources:
    - name: ixvm-chassis/Module 1/Port 1
      resourceModelName: IxVM Virtual Traffic Chassis 2G.VirtualTrafficGeneratorPort
`

func writeContext(t *testing.T, content string) (string, func()) {
	dir, err := ioutil.TempDir("", "ixvm-shell")
	Expect(err).To(BeNil())
	path := filepath.Join(dir, "context.yaml")
	Expect(ioutil.WriteFile(path, []byte(content), 0644)).To(Succeed())
	return path, func() { os.RemoveAll(dir) }
}

func TestLoadCommandContext(t *testing.T) {
	RegisterTestingT(t)

	path, cleanup := writeContext(t, contextYaml)
	defer cleanup()

	cmdCtx, err := loadCommandContext(path)
	Expect(err).To(BeNil())
	Expect(cmdCtx.Resource.FullName).To(Equal("ixvm-chassis"))
	Expect(cmdCtx.Resource.Attributes).To(HaveKeyWithValue("IxVM Virtual Traffic Chassis 2G.User", "admin"))
	Expect(cmdCtx.Connectors).To(HaveLen(1))
	Expect(cmdCtx.Connectors[0].Attributes).To(HaveKeyWithValue("Requested Source vNIC Name", "2,3"))
	Expect(cmdCtx.LiveResource.ChildResources[0].ChildResources).To(HaveLen(1))

	resourceCtx := cmdCtx.resourceContext()
	Expect(resourceCtx.Reservation.ReservationID).To(Equal("0cc17f8c-75ba-495f-aeb5-df5f0f9a0e97"))
	Expect(resourceCtx.Connectors).To(Equal(cmdCtx.Connectors))
}

func TestLoadCommandContextInvalid(t *testing.T) {
	RegisterTestingT(t)

	_, err := loadCommandContext("/nonexistent/context.yaml")
	Expect(err).ToNot(BeNil())

	path, cleanup := writeContext(t, "resource: [unclosed")
	defer cleanup()
	_, err = loadCommandContext(path)
	Expect(err).ToNot(BeNil())
}

func TestLocalSandbox(t *testing.T) {
	RegisterTestingT(t)

	path, cleanup := writeContext(t, contextYaml)
	defer cleanup()
	cmdCtx, err := loadCommandContext(path)
	Expect(err).To(BeNil())

	out := &bytes.Buffer{}
	sandbox, err := NewLocalSandbox(cmdCtx, out).Provider()(cmdCtx.Connectivity, "Global")
	Expect(err).To(BeNil())

	password, err := sandbox.DecryptPassword("admin")
	Expect(err).To(BeNil())
	Expect(password).To(Equal("admin"))

	live, err := sandbox.GetResourceDetails("ixvm-chassis")
	Expect(err).To(BeNil())
	Expect(live.ChildResources).To(HaveLen(1))
	_, err = sandbox.GetResourceDetails("other")
	Expect(err).ToNot(BeNil())

	Expect(sandbox.SetConnectorsInReservation("r1", []api.SetConnectorRequest{
		{SourceResourceFullName: "ixvm-chassis/Module 1/Port 1", TargetResourceFullName: "vlan-a"},
	})).To(Succeed())
	Expect(out.String()).To(ContainSubstring("sourceResourceFullName: ixvm-chassis/Module 1/Port 1"))
	Expect(out.String()).To(ContainSubstring("reservationId: r1"))
}
