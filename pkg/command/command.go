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

// Package command formats the compiler invocation for a source document.
package command

import (
	"github.com/alessio/shellescape"
)

// DefaultCompiler is used when the configuration does not name one.
const DefaultCompiler = "pdflatex"

// Command is a compiler invocation that writes a PDF of Input into OutputDir.
type Command struct {
	Compiler  string
	OutputDir string
	Input     string
}

// Build returns the invocation compiling basename into folderPath. Neither
// the folder nor the compiler need to exist yet.
func Build(compiler, folderPath, basename string) Command {
	if compiler == "" {
		compiler = DefaultCompiler
	}
	return Command{Compiler: compiler, OutputDir: folderPath, Input: basename}
}

// Args returns the argv form of the command.
func (c Command) Args() []string {
	return []string{
		c.Compiler,
		"-interaction", "nonstopmode",
		"-output-format", "pdf",
		"-output-directory", c.OutputDir,
		c.Input,
	}
}

// String renders the command as a single shell line. Every word is quoted
// where needed, so the line splits back into exactly Args.
func (c Command) String() string {
	return shellescape.QuoteCommand(c.Args())
}
