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
	"bytes"
	"context"
	"io"
	"net"
	"strconv"
	"time"

	"github.com/ligato/cn-infra/logging"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ssh"
)

const (
	terminalType   = "vt100"
	terminalHeight = 80
	terminalWidth  = 200
	readChunkSize  = 4096
)

// SSHFactory opens password authenticated SSH shell sessions.
type SSHFactory struct {
	Log logging.Logger
}

// NewSSHFactory returns a factory logging into log.
func NewSSHFactory(log logging.Logger) *SSHFactory {
	return &SSHFactory{Log: log}
}

// NewSession dials the appliance, starts an interactive shell on a pty and
// waits for the first prompt of mode.
func (f *SSHFactory) NewSession(ctx context.Context, cfg SessionConfig, mode CommandMode) (Session, error) {
	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.port()))
	sshCfg := &ssh.ClientConfig{
		User:            cfg.Username,
		Auth:            []ssh.AuthMethod{ssh.Password(cfg.Password)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         cfg.timeout(),
	}

	dialer := net.Dialer{Timeout: cfg.timeout()}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "dial %s", addr)
	}
	sshConn, chans, reqs, err := ssh.NewClientConn(conn, addr, sshCfg)
	if err != nil {
		conn.Close()
		return nil, errors.Wrapf(err, "ssh handshake with %s", addr)
	}
	client := ssh.NewClient(sshConn, chans, reqs)

	s, err := startShell(client, mode, cfg.timeout(), f.Log)
	if err != nil {
		client.Close()
		return nil, errors.Wrapf(err, "start shell on %s", addr)
	}
	if _, err := s.readUntilPrompt(ctx); err != nil {
		s.Close()
		return nil, errors.Wrapf(err, "wait for prompt on %s", addr)
	}
	if mode.EnterCommand != "" {
		if _, err := s.SendCommand(ctx, mode.EnterCommand); err != nil {
			s.Close()
			return nil, err
		}
	}
	f.Log.Debugf("CLI session to %s opened", addr)
	return s, nil
}

type sshSession struct {
	log     logging.Logger
	mode    CommandMode
	timeout time.Duration

	client  *ssh.Client
	session *ssh.Session
	stdin   io.WriteCloser

	chunks  chan []byte
	readErr error
	buf     bytes.Buffer
}

func startShell(client *ssh.Client, mode CommandMode, timeout time.Duration, log logging.Logger) (*sshSession, error) {
	session, err := client.NewSession()
	if err != nil {
		return nil, err
	}
	modes := ssh.TerminalModes{
		ssh.ECHO:          0,
		ssh.TTY_OP_ISPEED: 14400,
		ssh.TTY_OP_OSPEED: 14400,
	}
	if err := session.RequestPty(terminalType, terminalHeight, terminalWidth, modes); err != nil {
		session.Close()
		return nil, err
	}
	stdin, err := session.StdinPipe()
	if err != nil {
		session.Close()
		return nil, err
	}
	stdout, err := session.StdoutPipe()
	if err != nil {
		session.Close()
		return nil, err
	}
	if err := session.Shell(); err != nil {
		session.Close()
		return nil, err
	}

	s := &sshSession{
		log:     log,
		mode:    mode,
		timeout: timeout,
		client:  client,
		session: session,
		stdin:   stdin,
		chunks:  make(chan []byte),
	}
	go s.read(stdout)
	return s, nil
}

// read forwards shell output to the chunks channel until the shell ends.
func (s *sshSession) read(stdout io.Reader) {
	defer close(s.chunks)
	for {
		chunk := make([]byte, readChunkSize)
		n, err := stdout.Read(chunk)
		if n > 0 {
			s.chunks <- chunk[:n]
		}
		if err != nil {
			if err != io.EOF {
				s.readErr = err
			}
			return
		}
	}
}

// SendCommand writes the command followed by a newline and returns the
// output received until the prompt.
func (s *sshSession) SendCommand(ctx context.Context, command string) (string, error) {
	s.log.Debugf("CLI command: %s", command)
	if _, err := io.WriteString(s.stdin, command+"\n"); err != nil {
		return "", errors.Wrapf(err, "send command %q", command)
	}
	output, err := s.readUntilPrompt(ctx)
	if err != nil {
		return output, errors.Wrapf(err, "read output of %q", command)
	}
	s.log.Debugf("CLI output: %s", output)
	return output, nil
}

func (s *sshSession) readUntilPrompt(ctx context.Context) (string, error) {
	timer := time.NewTimer(s.timeout)
	defer timer.Stop()

	for {
		if s.mode.Prompt.Match(s.buf.Bytes()) {
			output := s.buf.String()
			s.buf.Reset()
			return output, nil
		}
		select {
		case chunk, ok := <-s.chunks:
			if !ok {
				if s.readErr != nil {
					return s.buf.String(), s.readErr
				}
				return s.buf.String(), io.ErrUnexpectedEOF
			}
			s.buf.Write(chunk)
		case <-timer.C:
			return s.buf.String(), errors.Errorf("no prompt within %v", s.timeout)
		case <-ctx.Done():
			return s.buf.String(), ctx.Err()
		}
	}
}

// Close sends the exit command of the mode without waiting for a reply and
// tears the connection down.
func (s *sshSession) Close() error {
	if s.mode.ExitCommand != "" {
		io.WriteString(s.stdin, s.mode.ExitCommand)
	}
	s.session.Close()
	err := s.client.Close()
	go func() {
		// unblock the reader if nobody consumes its output anymore
		for range s.chunks {
		}
	}()
	return err
}
