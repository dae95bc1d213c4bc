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
	"errors"
	"strings"
	"sync"

	"github.com/qualisystems/ixvm-vchassis/plugins/cli"
)

// MockSessionFactory is a mock for the CLI session factory. Every session it
// opens replies to commands from the same scripted table.
type MockSessionFactory struct {
	sync.Mutex

	// Replies maps a command prefix to its output. Unknown commands reply
	// with the prompt only.
	Replies map[string]string
	// OpenErr is returned by NewSession when set.
	OpenErr error
	// SendErr is returned by SendCommand when set.
	SendErr error

	configs  []cli.SessionConfig
	sessions []*MockSession
	opened   int
	maxOpen  int
}

// MockSession is a session opened by MockSessionFactory.
type MockSession struct {
	factory  *MockSessionFactory
	mode     cli.CommandMode
	commands []string
	closed   bool
}

// NewMockSessionFactory is a constructor for MockSessionFactory.
func NewMockSessionFactory() *MockSessionFactory {
	return &MockSessionFactory{Replies: make(map[string]string)}
}

// NewSession opens a new mock session.
func (m *MockSessionFactory) NewSession(ctx context.Context, cfg cli.SessionConfig, mode cli.CommandMode) (cli.Session, error) {
	m.Lock()
	defer m.Unlock()

	if m.OpenErr != nil {
		return nil, m.OpenErr
	}
	m.configs = append(m.configs, cfg)
	session := &MockSession{factory: m, mode: mode}
	m.sessions = append(m.sessions, session)
	m.opened++
	if m.opened > m.maxOpen {
		m.maxOpen = m.opened
	}
	return session, nil
}

// Configs returns the configurations sessions were opened with.
func (m *MockSessionFactory) Configs() []cli.SessionConfig {
	m.Lock()
	defer m.Unlock()
	return append([]cli.SessionConfig(nil), m.configs...)
}

// Sessions returns all sessions opened so far.
func (m *MockSessionFactory) Sessions() []*MockSession {
	m.Lock()
	defer m.Unlock()
	return append([]*MockSession(nil), m.sessions...)
}

// Commands returns the commands sent over all sessions, in order of opening.
func (m *MockSessionFactory) Commands() []string {
	m.Lock()
	defer m.Unlock()
	var commands []string
	for _, session := range m.sessions {
		commands = append(commands, session.commands...)
	}
	return commands
}

// OpenSessions returns the number of sessions not closed yet.
func (m *MockSessionFactory) OpenSessions() int {
	m.Lock()
	defer m.Unlock()
	return m.opened
}

// MaxOpenSessions returns the highest number of simultaneously open sessions.
func (m *MockSessionFactory) MaxOpenSessions() int {
	m.Lock()
	defer m.Unlock()
	return m.maxOpen
}

// SendCommand records the command and returns the scripted reply.
func (s *MockSession) SendCommand(ctx context.Context, command string) (string, error) {
	m := s.factory
	m.Lock()
	defer m.Unlock()

	if s.closed {
		return "", errors.New("session is closed")
	}
	s.commands = append(s.commands, command)
	if m.SendErr != nil {
		return "", m.SendErr
	}
	for prefix, reply := range m.Replies {
		if strings.HasPrefix(command, prefix) {
			return reply + "\n#", nil
		}
	}
	return "#", nil
}

// Close marks the session closed.
func (s *MockSession) Close() error {
	m := s.factory
	m.Lock()
	defer m.Unlock()

	if s.closed {
		return errors.New("session closed twice")
	}
	s.closed = true
	m.opened--
	return nil
}

// Commands returns the commands sent over this session.
func (s *MockSession) Commands() []string {
	s.factory.Lock()
	defer s.factory.Unlock()
	return append([]string(nil), s.commands...)
}

// Closed reports whether the session was closed.
func (s *MockSession) Closed() bool {
	s.factory.Lock()
	defer s.factory.Unlock()
	return s.closed
}

// Mode returns the command mode the session was opened in.
func (s *MockSession) Mode() cli.CommandMode {
	return s.mode
}
