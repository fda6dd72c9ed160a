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
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walteh/synthbuild/cmd/synthbuild/opts"
	"github.com/walteh/synthbuild/pkg/discover"
	"github.com/walteh/synthbuild/pkg/plan"
	"github.com/walteh/synthbuild/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewPlanCmd creates a new plan command
func NewPlanCmd(opts *opts.RootOpts) *cobra.Command {
	var showCommands bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show where every synthesis would be built",
		Long: `Plan discovers and classifies the source documents like build does,
then prints the output folder of each. Nothing is created and the compiler
is never run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := opts.Prepare(cmd.Context())
			if err != nil {
				return err
			}
			cfg := opts.Config

			files, err := discover.Find(ctx, cfg.Input, cfg.Ignore)
			if err != nil {
				return errors.Errorf("discovering sources: %w", err)
			}

			p := plan.New(ctx, files, planOptions(opts))

			if err := status.PrintPlan(cmd.OutOrStdout(), p, cfg.Output); err != nil {
				return err
			}

			if showCommands {
				for _, t := range p.Tasks {
					fmt.Fprintln(cmd.OutOrStdout(), t.Metadata.BuildCommand)
				}
			}

			opts.Logger.Infof("%d files planned into %d folders, %d skipped",
				len(p.Tasks), len(p.FolderPaths()), len(p.Skipped))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showCommands, "commands", false, "also print the compiler command of each file")

	return cmd
}
