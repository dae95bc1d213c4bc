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

package readiness

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ligato/cn-infra/logging/logrus"
	. "github.com/onsi/gomega"

	"github.com/qualisystems/ixvm-vchassis/plugins/ixvmapi"
	"github.com/qualisystems/ixvm-vchassis/plugins/vchassis/api"
)

type fakeProbe struct {
	readyAfter int
	failFirst  int
	calls      int
}

func (p *fakeProbe) IsDeployed(ctx context.Context) (bool, error) {
	p.calls++
	if p.calls <= p.failFirst {
		return false, errors.New("connection refused")
	}
	return p.readyAfter >= 0 && p.calls > p.readyAfter, nil
}

type fakeLister struct {
	cardsAfter int
	portsAfter int
	portsErr   error
	cardCalls  int
	portCalls  int
}

func (l *fakeLister) GetCards(ctx context.Context, sess *ixvmapi.Session) ([]ixvmapi.CardRecord, error) {
	l.cardCalls++
	if l.cardsAfter < 0 || l.cardCalls <= l.cardsAfter {
		return nil, nil
	}
	return []ixvmapi.CardRecord{{ID: "m1", CardNumber: "1"}}, nil
}

func (l *fakeLister) GetPorts(ctx context.Context, sess *ixvmapi.Session) ([]ixvmapi.PortRecord, error) {
	l.portCalls++
	if l.portsErr != nil {
		return nil, l.portsErr
	}
	if l.portsAfter < 0 || l.portCalls <= l.portsAfter {
		return []ixvmapi.PortRecord{}, nil
	}
	return []ixvmapi.PortRecord{{ID: "p1", ParentID: "m1", PortNumber: "1"}}, nil
}

func newTestWaiter() *Waiter {
	return &Waiter{Log: logrus.DefaultLogger(), Interval: time.Millisecond}
}

func TestWaitServiceDeployedImmediately(t *testing.T) {
	RegisterTestingT(t)

	probe := &fakeProbe{}
	err := newTestWaiter().WaitServiceDeployed(context.Background(), probe, time.Second)
	Expect(err).To(BeNil())
	Expect(probe.calls).To(Equal(1))
}

func TestWaitServiceDeployedAfterRetries(t *testing.T) {
	RegisterTestingT(t)

	probe := &fakeProbe{readyAfter: 3, failFirst: 2}
	err := newTestWaiter().WaitServiceDeployed(context.Background(), probe, 5*time.Second)
	Expect(err).To(BeNil())
	Expect(probe.calls).To(Equal(4))
}

func TestWaitServiceDeployedTimeout(t *testing.T) {
	RegisterTestingT(t)

	probe := &fakeProbe{readyAfter: -1}
	start := time.Now()
	err := newTestWaiter().WaitServiceDeployed(context.Background(), probe, 30*time.Millisecond)
	Expect(time.Since(start)).To(BeNumerically(">=", 30*time.Millisecond))
	Expect(api.IsKind(err, api.DeploymentTimeout)).To(BeTrue())
	Expect(err.Error()).To(ContainSubstring("IxVM Chassis service didn't start within"))
	Expect(probe.calls).To(BeNumerically(">", 1))
}

func TestWaitChassisStructure(t *testing.T) {
	RegisterTestingT(t)

	lister := &fakeLister{cardsAfter: 2, portsAfter: 1}
	err := newTestWaiter().WaitChassisStructure(context.Background(), lister, &ixvmapi.Session{}, 5*time.Second)
	Expect(err).To(BeNil())
	// ports are only listed once cards are present
	Expect(lister.cardCalls).To(Equal(4))
	Expect(lister.portCalls).To(Equal(2))
}

func TestWaitChassisStructureTimeout(t *testing.T) {
	RegisterTestingT(t)

	lister := &fakeLister{cardsAfter: 0, portsAfter: -1}
	err := newTestWaiter().WaitChassisStructure(context.Background(), lister, &ixvmapi.Session{}, 30*time.Millisecond)
	Expect(api.IsKind(err, api.StructureTimeout)).To(BeTrue())
	Expect(api.IsKind(err, api.DeploymentTimeout)).To(BeFalse())
}

func TestWaitChassisStructureListingError(t *testing.T) {
	RegisterTestingT(t)

	listErr := errors.New("boom")
	lister := &fakeLister{portsErr: listErr}
	err := newTestWaiter().WaitChassisStructure(context.Background(), lister, &ixvmapi.Session{}, time.Second)
	Expect(err).To(Equal(listErr))
	Expect(lister.cardCalls).To(Equal(1))
}
