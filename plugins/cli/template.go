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
	"strings"
)

// ErrorPattern maps an output fragment to a human readable description.
type ErrorPattern struct {
	Pattern     string
	Description string
}

// DefaultErrorMap is appended to every error map.
var DefaultErrorMap = []ErrorPattern{
	{Pattern: "error:", Description: "Error happens while executing CLI command"},
}

// PrepareErrorMap returns the given patterns followed by DefaultErrorMap.
func PrepareErrorMap(patterns ...ErrorPattern) []ErrorPattern {
	errorMap := make([]ErrorPattern, 0, len(patterns)+len(DefaultErrorMap))
	errorMap = append(errorMap, patterns...)
	return append(errorMap, DefaultErrorMap...)
}

// CommandTemplate is a command with {name} placeholders and the patterns
// that mark its output as failed. Patterns are checked in order.
type CommandTemplate struct {
	Command  string
	ErrorMap []ErrorPattern
}

// NewCommandTemplate returns a template checked against the default error map
// extended with patterns.
func NewCommandTemplate(command string, patterns ...ErrorPattern) CommandTemplate {
	return CommandTemplate{Command: command, ErrorMap: PrepareErrorMap(patterns...)}
}

var placeholder = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// Render substitutes placeholders with args. Placeholders without a value are
// left as they are.
func (t CommandTemplate) Render(args map[string]string) string {
	return placeholder.ReplaceAllStringFunc(t.Command, func(match string) string {
		if value, found := args[match[1:len(match)-1]]; found {
			return value
		}
		return match
	})
}

// MatchError returns the first pattern found in output, ignoring case.
func (t CommandTemplate) MatchError(output string) (ErrorPattern, bool) {
	lower := strings.ToLower(output)
	for _, pattern := range t.ErrorMap {
		if strings.Contains(lower, strings.ToLower(pattern.Pattern)) {
			return pattern, true
		}
	}
	return ErrorPattern{}, false
}
