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

	"github.com/prometheus/client_golang/prometheus"
)

const (
	commandLabel = "command"
	resultLabel  = "result"
	stageLabel   = "stage"

	resultSuccess = "success"
	resultError   = "error"

	stageServiceDeployed  = "service-deployed"
	stageChassisStructure = "chassis-structure"
)

// metrics groups the collectors of the driver. A nil *metrics is valid and
// records nothing.
type metrics struct {
	commands  *prometheus.CounterVec
	readiness *prometheus.HistogramVec
}

func newMetrics(registerer prometheus.Registerer) (*metrics, error) {
	if registerer == nil {
		return nil, nil
	}
	m := &metrics{
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ixvm",
			Subsystem: "vchassis",
			Name:      "commands_total",
			Help:      "Number of driver commands by result",
		}, []string{commandLabel, resultLabel}),
		readiness: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ixvm",
			Subsystem: "vchassis",
			Name:      "readiness_wait_seconds",
			Help:      "Time spent waiting for the controller to become ready",
			Buckets:   []float64{1, 10, 30, 60, 300, 600, 1800, 3600},
		}, []string{stageLabel}),
	}
	for _, collector := range []prometheus.Collector{m.commands, m.readiness} {
		if err := registerer.Register(collector); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *metrics) observeCommand(command string, err error) {
	if m == nil {
		return
	}
	result := resultSuccess
	if err != nil {
		result = resultError
	}
	m.commands.WithLabelValues(command, result).Inc()
}

func (m *metrics) observeWait(stage string, since time.Time) {
	if m == nil {
		return
	}
	m.readiness.WithLabelValues(stage).Observe(time.Since(since).Seconds())
}
