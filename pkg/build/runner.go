// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package build

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"strings"

	"github.com/walteh/synthbuild/pkg/command"
	"gitlab.com/tozd/go/errors"
)

// Runner runs one compiler invocation with dir as its working directory.
type Runner interface {
	Run(ctx context.Context, dir string, cmd command.Command) error
}

// RunError is returned by ExecRunner when the compiler could not be started
// or exited non-zero.
type RunError struct {
	Err    error
	Stderr string
}

func (e *RunError) Error() string {
	if e.Stderr == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + lastLine(e.Stderr)
}

func (e *RunError) Unwrap() error {
	return e.Err
}

// ExecRunner runs the compiler as a child process. Its standard output is
// discarded; standard error is kept for the failure report.
type ExecRunner struct {
	// Stdout receives the compiler's standard output, io.Discard when nil.
	Stdout io.Writer
}

var _ Runner = (*ExecRunner)(nil)

// NewExecRunner returns a runner that discards compiler output.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdout: io.Discard}
}

func (r *ExecRunner) Run(ctx context.Context, dir string, c command.Command) error {
	args := c.Args()

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = dir

	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = io.Discard
	}

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return &RunError{
			Err:    errors.Errorf("running %s: %w", args[0], err),
			Stderr: stderr.String(),
		}
	}
	return nil
}

func lastLine(s string) string {
	s = strings.TrimRight(s, "\n")
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
