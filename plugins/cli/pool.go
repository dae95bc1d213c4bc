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
	"sync"

	"github.com/ligato/cn-infra/logging"
	"github.com/ligato/cn-infra/utils/safeclose"
	"github.com/pkg/errors"
)

// DefaultSessionsLimit is used when no positive limit is configured.
const DefaultSessionsLimit = 1

// CLI hands out scoped sessions while keeping at most limit of them open.
type CLI struct {
	log     logging.Logger
	factory SessionFactory
	slots   chan struct{}

	mu     sync.Mutex
	open   map[Session]struct{}
	closed bool
}

// NewCLI returns a session pool on top of factory.
func NewCLI(factory SessionFactory, limit int, log logging.Logger) *CLI {
	if limit <= 0 {
		limit = DefaultSessionsLimit
	}
	return &CLI{
		log:     log,
		factory: factory,
		slots:   make(chan struct{}, limit),
		open:    make(map[Session]struct{}),
	}
}

// Limit returns the maximum number of concurrently open sessions.
func (c *CLI) Limit() int {
	return cap(c.slots)
}

// GetSession waits for a free slot, opens a session and runs fn with it.
// The session is closed and the slot returned on every exit path.
func (c *CLI) GetSession(ctx context.Context, cfg SessionConfig, mode CommandMode, fn func(Session) error) error {
	select {
	case c.slots <- struct{}{}:
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "wait for free CLI session")
	}
	defer func() { <-c.slots }()

	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return errors.New("CLI is closed")
	}

	session, err := c.factory.NewSession(ctx, cfg, mode)
	if err != nil {
		return errors.Wrapf(err, "open CLI session to %s", cfg.Host)
	}
	c.track(session)
	defer func() {
		if c.untrack(session) {
			if err := session.Close(); err != nil {
				c.log.Warnf("Closing CLI session to %s failed: %v", cfg.Host, err)
			}
		}
	}()

	return fn(session)
}

func (c *CLI) track(session Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open[session] = struct{}{}
}

// untrack reports whether the session was still tracked, i.e. not closed by Close.
func (c *CLI) untrack(session Session) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, tracked := c.open[session]
	delete(c.open, session)
	return tracked
}

// Close terminates sessions still open and refuses new ones.
func (c *CLI) Close() error {
	c.mu.Lock()
	c.closed = true
	var sessions []interface{}
	for session := range c.open {
		sessions = append(sessions, session)
	}
	c.open = make(map[Session]struct{})
	c.mu.Unlock()

	return safeclose.Close(sessions...)
}
