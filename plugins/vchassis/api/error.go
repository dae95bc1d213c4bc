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

package api

import (
	"fmt"
	"time"
)

// ErrorKind classifies failures of driver commands.
type ErrorKind int

const (
	// DeploymentTimeout is returned when the controller service did not start in time.
	DeploymentTimeout ErrorKind = iota + 1
	// StructureTimeout is returned when cards/ports did not appear in time.
	StructureTimeout
	// MalformedConnector is returned for a connector referencing neither endpoint of the resource.
	MalformedConnector
	// PortNotFound is returned when a requested vNIC is not a port of the deployed resource.
	PortNotFound
	// PortAlreadyAllocated is returned when two connectors claim the same port.
	PortAlreadyAllocated
	// InsufficientPorts is returned when there are more connectors than free ports.
	InsufficientPorts
	// CommandExecutionError is returned when CLI output matched an error pattern.
	CommandExecutionError
	// TransportError is returned for failed or non-2xx HTTP calls to the controller.
	TransportError
	// ConfigurationError is returned for missing or invalid resource attributes/configuration.
	ConfigurationError
)

var errorKindNames = map[ErrorKind]string{
	DeploymentTimeout:     "DeploymentTimeout",
	StructureTimeout:      "StructureTimeout",
	MalformedConnector:    "MalformedConnector",
	PortNotFound:          "PortNotFound",
	PortAlreadyAllocated:  "PortAlreadyAllocated",
	InsufficientPorts:     "InsufficientPorts",
	CommandExecutionError: "CommandExecutionError",
	TransportError:        "TransportError",
	ConfigurationError:    "ConfigurationError",
}

// String returns the name of the error kind.
func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

/********************************* Driver Error *******************************/

// Error is a classified driver failure. The message is shown to the operator
// as is, so it has to stay human-readable.
type Error struct {
	kind    ErrorKind
	msg     string
	origErr error
}

// NewError is the generic constructor for Error.
func NewError(kind ErrorKind, origErr error, format string, args ...interface{}) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...), origErr: origErr}
}

// Error returns the operator-facing message.
func (e *Error) Error() string {
	if e.origErr != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.origErr)
	}
	return e.msg
}

// Kind returns the classification of the error.
func (e *Error) Kind() ErrorKind {
	return e.kind
}

// GetOriginalError returns the underlying error (may be nil).
func (e *Error) GetOriginalError() error {
	return e.origErr
}

// NewDeploymentTimeoutError is returned by the service deployment waiter.
func NewDeploymentTimeoutError(timeout time.Duration) *Error {
	return NewError(DeploymentTimeout, nil,
		"IxVM Chassis service didn't start within %g minute(s)", timeout.Minutes())
}

// NewStructureTimeoutError is returned by the chassis structure waiter.
func NewStructureTimeoutError(timeout time.Duration) *Error {
	return NewError(StructureTimeout, nil,
		"Chassis data from IxVM Chassis service is empty and didn't appear within %g minute(s)", timeout.Minutes())
}

// NewMalformedConnectorError is returned for a connector that does not reference the resource.
func NewMalformedConnectorError(source, target string) *Error {
	return NewError(MalformedConnector, nil,
		"Oops, a connector doesn't have required details:\n Connector source: %s\nConnector target: %s\n"+
			"Please contact your admin", source, target)
}

// NewPortNotFoundError is returned when the requested vNIC is not on the reservation.
func NewPortNotFoundError(vnicID string) *Error {
	return NewError(PortNotFound, nil,
		"Tried to connect an interface that is not on reservation - %s", vnicID)
}

// NewPortAlreadyAllocatedError is returned when a port is requested twice.
func NewPortAlreadyAllocatedError(vnicID, portName string) *Error {
	return NewError(PortAlreadyAllocated, nil,
		"Tried to connect several connections to same interface: %s (vNIC %s)", portName, vnicID)
}

// NewInsufficientPortsError reports how many connectors could not get a port.
func NewInsufficientPortsError(requested, available int) *Error {
	return NewError(InsufficientPorts, nil,
		"There were more connections to TeraVM than available interfaces after deployment "+
			"(%d requested, %d available, %d missing)", requested, available, requested-available)
}

// NewCommandExecutionError is returned when the output of a CLI command matched an error pattern.
func NewCommandExecutionError(command, description, output string) *Error {
	return NewError(CommandExecutionError, nil,
		"%s. Command: '%s', output: '%s'", description, command, output)
}

// NewTransportError is returned for a failed HTTP call. Status is 0 when no response was received.
func NewTransportError(method, url string, status int, origErr error) *Error {
	if status == 0 {
		return NewError(TransportError, origErr, "%s %s failed", method, url)
	}
	return NewError(TransportError, origErr, "%s %s returned status code %d", method, url, status)
}

// NewConfigurationError is returned for invalid resource attributes or configuration.
func NewConfigurationError(format string, args ...interface{}) *Error {
	return NewError(ConfigurationError, nil, format, args...)
}

/******************************** Command Error *******************************/

// CommandError wraps any failure of a driver command so that the host
// shows which command failed.
type CommandError struct {
	command string
	origErr error
}

// NewCommandError is the constructor for CommandError.
func NewCommandError(command string, origErr error) error {
	return &CommandError{command: command, origErr: origErr}
}

// Error returns the message shown to the operator.
func (e *CommandError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.command, e.origErr)
}

// GetOriginalError returns the underlying error.
func (e *CommandError) GetOriginalError() error {
	return e.origErr
}

/*********************************** Helpers **********************************/

type causer interface {
	Cause() error
}

type originalErrorGetter interface {
	GetOriginalError() error
}

// IsKind walks the error chain (pkg/errors wrappers and driver wrappers)
// and reports whether any error in it is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.kind == kind {
			return true
		}
		switch wrapped := err.(type) {
		case causer:
			err = wrapped.Cause()
		case originalErrorGetter:
			err = wrapped.GetOriginalError()
		default:
			return false
		}
	}
	return false
}
