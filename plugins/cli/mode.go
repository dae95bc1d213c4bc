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
	"regexp"
)

// CommandMode describes a CLI mode of the appliance.
type CommandMode struct {
	// Prompt matches the end of the output once a command completed.
	Prompt *regexp.Regexp
	// EnterCommand is sent right after the session is opened, unless empty.
	EnterCommand string
	// ExitCommand is sent before the session is closed, unless empty.
	ExitCommand string
}

const (
	defaultPrompt      = `#\s*$`
	defaultExitCommand = "\x03" // Ctrl-C
)

// DefaultCommandMode is the only mode of the IxVM controller shell.
func DefaultCommandMode() CommandMode {
	return CommandMode{
		Prompt:      regexp.MustCompile(defaultPrompt),
		ExitCommand: defaultExitCommand,
	}
}
