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

package cli

import (
	"context"

	"github.com/pkg/errors"

	"github.com/qualisystems/ixvm-vchassis/plugins/vchassis/api"
)

// Executor runs command templates in a session.
type Executor struct {
	Session Session
}

// NewExecutor returns an executor bound to session.
func NewExecutor(session Session) *Executor {
	return &Executor{Session: session}
}

// Execute renders the template, sends it and checks the output against the
// error map of the template.
func (e *Executor) Execute(ctx context.Context, template CommandTemplate, args map[string]string) (string, error) {
	command := template.Render(args)
	output, err := e.Session.SendCommand(ctx, command)
	if err != nil {
		return output, errors.Wrapf(err, "execute %q", command)
	}
	if pattern, failed := template.MatchError(output); failed {
		return output, api.NewCommandExecutionError(command, pattern.Description, output)
	}
	return output, nil
}
