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

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

const folderMode = 0o755

// EnsureFolders creates every output folder of p. A folder that already
// exists, or that appears while it is being created, counts as success.
//
// A folder that cannot be created only affects its own tasks: their
// FolderErr is set and the remaining folders are still created. The
// returned error is non-nil only when ctx is done.
func EnsureFolders(ctx context.Context, p *Plan) error {
	logger := zerolog.Ctx(ctx)

	folders := p.Folders()
	for _, folder := range p.FolderPaths() {
		if err := ctx.Err(); err != nil {
			return errors.Errorf("creating folders: %w", err)
		}
		// MkdirAll treats an existing directory, including one created
		// concurrently, as success.
		if err := os.MkdirAll(folder, folderMode); err != nil {
			logger.Warn().Err(err).Str("folder", folder).Int("tasks", len(folders[folder])).Msg("cannot create folder")
			for _, t := range folders[folder] {
				t.FolderErr = errors.Errorf("creating folder %s: %w", folder, err)
			}
			continue
		}
		logger.Debug().Str("folder", folder).Msg("folder ready")
	}

	return nil
}
