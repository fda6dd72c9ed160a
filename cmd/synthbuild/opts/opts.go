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

package opts

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/walteh/synthbuild/pkg/config"
	"github.com/walteh/synthbuild/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// RootOpts holds the options shared by every command
type RootOpts struct {
	ConfigFile string
	Debug      bool
	Console    io.Writer

	// Filled by Prepare
	Config *config.Config
	Logger *log.Logger
	RunID  string
}

// Prepare stamps a run id on the context logger, loads the configuration and
// attaches the console logger. Nothing is loaded before flags are parsed.
func (o *RootOpts) Prepare(ctx context.Context) (context.Context, error) {
	o.RunID = uuid.NewString()

	zlog := zerolog.Ctx(ctx).With().Str("run_id", o.RunID).Logger()
	ctx = zlog.WithContext(ctx)

	cfg, err := config.Load(ctx, o.ConfigFile)
	if err != nil {
		return ctx, errors.Errorf("loading config: %w", err)
	}
	o.Config = cfg

	o.Logger = log.New(o.Console, zlog)
	return log.NewContext(ctx, o.Logger), nil
}
