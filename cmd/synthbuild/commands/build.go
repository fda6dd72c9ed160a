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

package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/synthbuild/cmd/synthbuild/opts"
	"github.com/walteh/synthbuild/pkg/build"
	"github.com/walteh/synthbuild/pkg/discover"
	"github.com/walteh/synthbuild/pkg/log"
	"github.com/walteh/synthbuild/pkg/plan"
	"github.com/walteh/synthbuild/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewBuildCmd creates a new build command
func NewBuildCmd(opts *opts.RootOpts, runner build.Runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compile every synthesis into its output folder",
		Long: `Build compiles every source document under the input root.
It will:
1. Discover the .tex files under the input root
2. Work out the output folder of each from its name
3. Create the output folders
4. Run the compiler for each file, one at a time

A file that fails to compile is reported and the batch carries on.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := opts.Prepare(cmd.Context())
			if err != nil {
				return err
			}
			cfg := opts.Config
			logger := opts.Logger

			logger.Header("building syntheses")

			files, err := discover.Find(ctx, cfg.Input, cfg.Ignore)
			if err != nil {
				return errors.Errorf("discovering sources: %w", err)
			}

			p := plan.New(ctx, files, planOptions(opts))

			logger.StartBatch(ctx, log.BatchOperation{
				RunID:  opts.RunID,
				Input:  cfg.Input,
				Output: cfg.Output,
				Files:  len(files),
			})
			defer logger.EndBatch(ctx)

			// only cancellation fails here; a folder that cannot be created
			// fails its own tasks
			if err := plan.EnsureFolders(ctx, p); err != nil {
				return errors.Errorf("preparing output folders: %w", err)
			}

			report := build.Execute(ctx, p, runner)

			formatter := status.NewDefaultFormatter()
			logger.LogNewline()
			logger.Info(formatter.FormatProgress(report.Built+report.Failed, report.Total))
			for _, f := range report.Failures {
				logger.Error(formatter.FormatTask(f.Task.Basename, f.Task.Metadata.FolderPath, f.Err))
			}

			summary := formatter.FormatSummary(report.Total+len(p.Skipped), report.Built, report.Failed, report.Skipped)
			if report.OK() {
				logger.Success(summary)
			} else {
				logger.Warning(summary)
			}

			if report.Interrupted {
				return errors.Errorf("build interrupted: %w", ctx.Err())
			}
			return nil
		},
	}

	return cmd
}

func planOptions(opts *opts.RootOpts) plan.Options {
	return plan.Options{
		Output:   opts.Config.Output,
		Compiler: opts.Config.Compiler,
		Tables:   opts.Config.Tables(),
	}
}
