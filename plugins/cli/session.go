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
	"time"
)

const (
	// DefaultPort is the SSH port of the controller appliance.
	DefaultPort = 22
	// DefaultTimeout bounds connecting and waiting for a prompt.
	DefaultTimeout = 30 * time.Second
)

// Session is an open CLI session in a given command mode.
type Session interface {
	// SendCommand sends a single command line and returns its output up to
	// the next prompt.
	SendCommand(ctx context.Context, command string) (output string, err error)

	// Close leaves the command mode and terminates the session.
	Close() error
}

// SessionConfig holds what is needed to open a session to one appliance.
type SessionConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
}

func (c SessionConfig) port() int {
	if c.Port == 0 {
		return DefaultPort
	}
	return c.Port
}

func (c SessionConfig) timeout() time.Duration {
	if c.Timeout == 0 {
		return DefaultTimeout
	}
	return c.Timeout
}

// SessionFactory opens sessions.
type SessionFactory interface {
	NewSession(ctx context.Context, cfg SessionConfig, mode CommandMode) (Session, error)
}

// SessionProvider gives out scoped sessions. The session passed to fn is
// released once fn returns.
type SessionProvider interface {
	GetSession(ctx context.Context, cfg SessionConfig, mode CommandMode, fn func(Session) error) error
}
