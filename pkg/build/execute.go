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

// Package build runs the compiler over a plan, one document at a time.
package build

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/synthbuild/pkg/log"
	"github.com/walteh/synthbuild/pkg/plan"
	"gitlab.com/tozd/go/errors"
)

// Failure records one document the compiler could not build.
type Failure struct {
	Task   *plan.Task
	Err    error
	Stderr string
}

// Report aggregates the outcome of a batch.
type Report struct {
	Total       int // tasks in the plan
	Built       int
	Failed      int
	Skipped     int // names outside the grammar, plus tasks never started
	Failures    []Failure
	Interrupted bool
}

// Execute runs every task of p through runner in plan order, reporting each
// outcome to the console logger carried by ctx. A failing task is reported
// and the batch moves on; a task whose output folder could not be created
// fails without reaching the compiler. Names outside the grammar only count
// towards Skipped. Cancelling ctx stops the batch before the next task
// starts.
func Execute(ctx context.Context, p *plan.Plan, runner Runner) Report {
	zlog := zerolog.Ctx(ctx)
	logger := log.FromContext(ctx)

	report := Report{
		Total:   len(p.Tasks),
		Skipped: len(p.Skipped),
	}

	for i, task := range p.Tasks {
		op := log.TaskOperation{
			File:    task.Basename,
			Folder:  p.Rel(task.Metadata.FolderPath),
			Current: i + 1,
			Total:   len(p.Tasks),
		}

		if ctx.Err() != nil {
			if !report.Interrupted {
				zlog.Warn().Int("remaining", len(p.Tasks)-i).Msg("interrupted")
				report.Interrupted = true
			}
			report.Skipped++
			op.Status = log.StatusSkipped
			logger.LogTask(ctx, op)
			continue
		}

		err := task.FolderErr
		if err == nil {
			zlog.Debug().Str("dir", task.Dir).Str("command", task.Metadata.BuildCommand).Msg("running compiler")
			err = runner.Run(ctx, task.Dir, task.Command)
		}

		if err != nil {
			failure := Failure{Task: task, Err: err}
			var runErr *RunError
			if errors.As(err, &runErr) {
				failure.Stderr = runErr.Stderr
			}
			report.Failures = append(report.Failures, failure)
			report.Failed++

			op.Status = log.StatusFailed
			op.Err = err
			logger.LogTask(ctx, op)
			continue
		}

		report.Built++
		op.Status = log.StatusBuilt
		logger.LogTask(ctx, op)
	}

	return report
}

// OK reports whether every started task built.
func (r Report) OK() bool {
	return r.Failed == 0 && !r.Interrupted
}
