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

package plan

import (
	"context"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"
	"github.com/walteh/synthbuild/pkg/command"
	"github.com/walteh/synthbuild/pkg/layout"
	"github.com/walteh/synthbuild/pkg/lookup"
	"github.com/walteh/synthbuild/pkg/metadata"
	"github.com/walteh/synthbuild/pkg/naming"
)

// Task is the unit of work for one source document.
type Task struct {
	Source   string // absolute path of the .tex file
	Dir      string // directory holding Source, the compiler's working directory
	Basename string
	Metadata metadata.Metadata
	Command  command.Command

	// FolderErr is set by EnsureFolders when the output folder could not
	// be created. Such a task is reported as failed and never compiled.
	FolderErr error
}

// Options carries what planning needs from the configuration.
type Options struct {
	Output   string
	Compiler string
	Tables   lookup.Tables
}

// Plan is the outcome of planning a batch.
type Plan struct {
	Output  string // root the folders are composed under
	Tasks   []*Task
	Skipped []string // files whose name does not fit the grammar
}

// New plans every file. Files that do not fit the naming grammar are
// recorded as skipped and produce no task.
func New(ctx context.Context, files []string, opts Options) *Plan {
	logger := zerolog.Ctx(ctx)
	p := &Plan{Output: opts.Output}

	for _, file := range files {
		task, ok := NewTask(file, opts)
		if !ok {
			logger.Debug().Str("file", file).Msg("name does not fit the grammar, skipping")
			p.Skipped = append(p.Skipped, file)
			continue
		}
		logger.Debug().
			Str("file", task.Basename).
			Object("metadata", task.Metadata).
			Str("folder", task.Metadata.FolderPath).
			Msg("planned")
		p.Tasks = append(p.Tasks, task)
	}

	return p
}

// NewTask runs parse, resolve, compose and command building for one file.
func NewTask(file string, opts Options) (*Task, bool) {
	basename := filepath.Base(file)
	dir := filepath.Dir(file)

	match, ok := naming.Parse(basename)
	if !ok {
		return nil, false
	}

	md := metadata.Resolve(match, dir, opts.Tables)
	md.FolderPath = layout.Compose(md, opts.Output)
	cmd := command.Build(opts.Compiler, md.FolderPath, basename)
	md.BuildCommand = cmd.String()

	return &Task{
		Source:   file,
		Dir:      dir,
		Basename: basename,
		Metadata: md,
		Command:  cmd,
	}, true
}

// Folders groups the tasks by output folder.
func (p *Plan) Folders() map[string][]*Task {
	out := make(map[string][]*Task)
	for _, t := range p.Tasks {
		out[t.Metadata.FolderPath] = append(out[t.Metadata.FolderPath], t)
	}
	return out
}

// Rel returns folder relative to the output root, for display.
func (p *Plan) Rel(folder string) string {
	rel, err := filepath.Rel(p.Output, folder)
	if err != nil {
		return folder
	}
	return filepath.ToSlash(rel)
}

// FolderPaths returns the distinct output folders, sorted.
func (p *Plan) FolderPaths() []string {
	folders := p.Folders()
	out := make([]string, 0, len(folders))
	for f := range folders {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
