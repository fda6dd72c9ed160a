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
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/kballard/go-shellquote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/synthbuild/pkg/lookup"
)

const (
	srcRoot = "/src"
	outRoot = "/out"
)

func fullTables() lookup.Tables {
	return lookup.Tables{
		Names:    lookup.Table[string]{"algo": "Algorithms"},
		Types:    lookup.Table[string]{"exercises": "exercises", "exam": "Exams"},
		Options:  lookup.Table[string]{"LINFO": "INFO"},
		Quarters: lookup.Table[int]{1: "BAC1"},
	}
}

func TestNewTask(t *testing.T) {
	tests := []struct {
		name       string
		file       string
		tables     lookup.Tables
		wantOK     bool
		wantFolder string
	}{
		{
			name:       "fully_classified",
			file:       "/src/q1/algo/algo-LINFO1101-exercises.tex",
			tables:     fullTables(),
			wantOK:     true,
			wantFolder: filepath.Join(outRoot, "BAC1", "INFO", "Q1", "LINFO1101 - Algorithms", "exercises"),
		},
		{
			name: "option_unresolved_truncates",
			file: "/src/q1/algo/algo-LINFO1101-exercises.tex",
			tables: lookup.Tables{
				Names:    lookup.Table[string]{"algo": "Algorithms"},
				Types:    lookup.Table[string]{"exercises": "exercises"},
				Quarters: lookup.Table[int]{1: "BAC1"},
			},
			wantOK:     true,
			wantFolder: filepath.Join(outRoot, "BAC1"),
		},
		{
			name:       "exam_period",
			file:       "/src/q1/algo/algo-LINFO1101-exam-2016-Juin-All.tex",
			tables:     fullTables(),
			wantOK:     true,
			wantFolder: filepath.Join(outRoot, "BAC1", "INFO", "Q1", "LINFO1101 - Algorithms", "Exams", "2016 - Juin"),
		},
		{
			name:       "no_quarter_and_empty_tables",
			file:       "/src/misc/foo-bar-baz.tex",
			tables:     lookup.Tables{},
			wantOK:     true,
			wantFolder: outRoot,
		},
		{
			name:   "not_in_grammar",
			file:   "/src/q1/readme.tex",
			tables: fullTables(),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, ok := NewTask(tt.file, Options{Output: outRoot, Tables: tt.tables})
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				assert.Nil(t, task)
				return
			}

			assert.Equal(t, tt.file, task.Source)
			assert.Equal(t, filepath.Dir(tt.file), task.Dir)
			assert.Equal(t, filepath.Base(tt.file), task.Basename)
			assert.Equal(t, tt.wantFolder, task.Metadata.FolderPath)

			words, err := shellquote.Split(task.Metadata.BuildCommand)
			require.NoError(t, err, "build command should be shell safe")
			assert.Equal(t, []string{
				"pdflatex", "-interaction", "nonstopmode", "-output-format", "pdf",
				"-output-directory", tt.wantFolder, filepath.Base(tt.file),
			}, words)
		})
	}
}

func TestNewPlan(t *testing.T) {
	files := []string{
		"/src/q1/algo/algo-LINFO1101-exercises.tex",
		"/src/q1/algo/algo-LINFO1101-exam-2016-Juin-All.tex",
		"/src/q1/algo/algo-LINFO1101-exam-2017-Juin-All.tex",
		"/src/q1/readme.tex",
		"/src/misc/foo-bar-baz.tex",
	}

	p := New(context.Background(), files, Options{Output: outRoot, Compiler: "pdflatex", Tables: fullTables()})

	require.Len(t, p.Tasks, 4, "every file in the grammar should produce a task")
	assert.Equal(t, []string{"/src/q1/readme.tex"}, p.Skipped)

	folders := p.Folders()
	assert.Len(t, folders, 4)
	assert.Len(t, folders[outRoot], 1, "unclassified file lands in the output root")
	assert.Len(t, folders[filepath.Join(outRoot, "BAC1", "INFO", "Q1", "LINFO1101 - Algorithms", "exercises")], 1)

	paths := p.FolderPaths()
	assert.IsNonDecreasing(t, paths)
	assert.Equal(t, outRoot, paths[0])
}

func TestEnsureFolders(t *testing.T) {
	out := t.TempDir()
	files := []string{
		"/src/q1/algo/algo-LINFO1101-exercises.tex",
		"/src/q1/algo/algo-LINFO1101-exam-2016-Juin-All.tex",
		"/src/misc/foo-bar-baz.tex",
	}
	p := New(context.Background(), files, Options{Output: out, Tables: fullTables()})

	require.NoError(t, EnsureFolders(context.Background(), p))
	for _, folder := range p.FolderPaths() {
		info, err := os.Stat(folder)
		require.NoError(t, err, "folder %s should exist", folder)
		assert.True(t, info.IsDir())
	}

	require.NoError(t, EnsureFolders(context.Background(), p), "second run should be a no-op")
}

func TestEnsureFoldersBlockedFolder(t *testing.T) {
	out := t.TempDir()
	p := New(context.Background(), []string{
		"/src/q1/algo/algo-LINFO1101-exercises.tex",
		"/src/q1/algo/algo-LINFO1101-exam-2016-Juin-All.tex",
	}, Options{Output: out, Tables: fullTables()})
	require.Len(t, p.Tasks, 2)

	// a regular file where the Exams folder should go
	course := filepath.Join(out, "BAC1", "INFO", "Q1", "LINFO1101 - Algorithms")
	require.NoError(t, os.MkdirAll(course, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(course, "Exams"), []byte("not a folder"), 0o644))

	require.NoError(t, EnsureFolders(context.Background(), p), "one bad folder should not fail the batch")

	exercises, exam := p.Tasks[0], p.Tasks[1]
	require.Equal(t, "algo-LINFO1101-exercises.tex", exercises.Basename)

	assert.NoError(t, exercises.FolderErr)
	assert.DirExists(t, exercises.Metadata.FolderPath)

	require.Error(t, exam.FolderErr)
	assert.Contains(t, exam.FolderErr.Error(), "creating folder")
	assert.NoDirExists(t, exam.Metadata.FolderPath)
}

func TestPlanRel(t *testing.T) {
	p := New(context.Background(), []string{"/src/q1/algo/algo-LINFO1101-exercises.tex"}, Options{Output: outRoot, Tables: fullTables()})

	assert.Equal(t, "BAC1/INFO/Q1/LINFO1101 - Algorithms/exercises", p.Rel(p.Tasks[0].Metadata.FolderPath))
	assert.Equal(t, ".", p.Rel(outRoot))
}

func TestEnsureFoldersConcurrent(t *testing.T) {
	out := t.TempDir()
	p := New(context.Background(), []string{
		"/src/q1/algo/algo-LINFO1101-exercises.tex",
		"/src/q1/algo/algo-LINFO1101-exam-2016-Juin-All.tex",
	}, Options{Output: out, Tables: fullTables()})

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = EnsureFolders(context.Background(), p)
		}()
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err, "shared parents created concurrently should not fail")
	}
}

func TestEnsureFoldersCancelled(t *testing.T) {
	p := New(context.Background(), []string{"/src/misc/foo-bar-baz.tex"}, Options{Output: t.TempDir()})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := EnsureFolders(ctx, p)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
