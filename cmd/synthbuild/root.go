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

package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/synthbuild/cmd/synthbuild/commands"
	"github.com/walteh/synthbuild/cmd/synthbuild/opts"
	"github.com/walteh/synthbuild/pkg/build"
)

const defaultConfigFile = "config.yml"

func newRootCmd(console io.Writer, runner build.Runner) *cobra.Command {
	rootOpts := &opts.RootOpts{Console: console}

	rootCmd := &cobra.Command{
		Use:   "synthbuild",
		Short: "Batch-build LaTeX course syntheses into a classified folder tree",
		Long: `synthbuild finds every course synthesis under an input root, works out
where its PDF belongs from the file name, and runs the LaTeX compiler for it.

File names follow <courseLabel>-<courseId>-<resourceType>[<rest>].tex and the
lookup tables in the config file turn their tokens into folder names.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(rootOpts.Debug)
		},
	}

	rootCmd.SetOut(console)
	addRootFlags(rootCmd, rootOpts)

	rootCmd.AddCommand(
		commands.NewBuildCmd(rootOpts, runner),
		commands.NewPlanCmd(rootOpts),
		newVersionCmd(),
	)

	return rootCmd
}

func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", defaultConfigFile, "config file path")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
}

// structured events stay quiet unless asked for; the console logger
// already reports progress
func setupLogging(debug bool) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}
