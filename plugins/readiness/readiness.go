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
	"time"

	"github.com/ligato/cn-infra/logging"
	"k8s.io/apimachinery/pkg/util/wait"

	"github.com/qualisystems/ixvm-vchassis/plugins/ixvmapi"
	"github.com/qualisystems/ixvm-vchassis/plugins/vchassis/api"
)

const (
	// DefaultInterval is the time between two polls.
	DefaultInterval = 10 * time.Second
	// DefaultServiceDeployTimeout bounds the wait for the controller service.
	DefaultServiceDeployTimeout = 60 * time.Minute
	// DefaultStructureTimeout bounds the wait for cards and ports to appear.
	DefaultStructureTimeout = 10 * time.Minute
)

// DeploymentProbe reports whether the controller service is up.
type DeploymentProbe interface {
	IsDeployed(ctx context.Context) (bool, error)
}

// StructureLister lists the chassis structure of the controller.
type StructureLister interface {
	GetCards(ctx context.Context, sess *ixvmapi.Session) ([]ixvmapi.CardRecord, error)
	GetPorts(ctx context.Context, sess *ixvmapi.Session) ([]ixvmapi.PortRecord, error)
}

// Waiter polls on a fixed interval until a condition holds or the timeout expires.
type Waiter struct {
	Log      logging.Logger
	Interval time.Duration
}

// NewWaiter returns a waiter polling every DefaultInterval.
func NewWaiter(log logging.Logger) *Waiter {
	return &Waiter{Log: log, Interval: DefaultInterval}
}

func (w *Waiter) interval() time.Duration {
	if w.Interval <= 0 {
		return DefaultInterval
	}
	return w.Interval
}

// WaitServiceDeployed blocks until the probe reports the service as deployed.
// Unreachable controller is absorbed by the probe itself; any error the probe
// does return is treated as "not ready yet" as well.
func (w *Waiter) WaitServiceDeployed(ctx context.Context, probe DeploymentProbe, timeout time.Duration) error {
	err := wait.PollImmediate(w.interval(), timeout, func() (bool, error) {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		deployed, err := probe.IsDeployed(ctx)
		if err != nil {
			w.Log.Debugf("Controller service probe failed: %v", err)
		}
		if !deployed {
			w.Log.Info("Waiting for controller service start...")
		}
		return deployed, nil
	})
	if err == wait.ErrWaitTimeout {
		return api.NewDeploymentTimeoutError(timeout)
	}
	return err
}

// WaitChassisStructure blocks until both the cards and the ports listings are
// non-empty. Listing errors abort the wait.
func (w *Waiter) WaitChassisStructure(ctx context.Context, lister StructureLister, sess *ixvmapi.Session,
	timeout time.Duration) error {

	err := wait.PollImmediate(w.interval(), timeout, func() (bool, error) {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		cards, err := lister.GetCards(ctx, sess)
		if err != nil {
			return false, err
		}
		if len(cards) > 0 {
			ports, err := lister.GetPorts(ctx, sess)
			if err != nil {
				return false, err
			}
			if len(ports) > 0 {
				return true, nil
			}
		}
		w.Log.Info("Waiting for chassis structure appearance...")
		return false, nil
	})
	if err == wait.ErrWaitTimeout {
		return api.NewStructureTimeoutError(timeout)
	}
	return err
}
