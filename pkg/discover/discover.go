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

// Package discover enumerates the source documents under the input root.
package discover

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/synthbuild/pkg/naming"
	"gitlab.com/tozd/go/errors"
)

// Pattern selects source documents, relative to the input root.
const Pattern = "**/*" + naming.Extension

// Find returns the absolute paths of every source document under root that
// no ignore pattern matches, sorted so runs are deterministic.
func Find(ctx context.Context, root string, ignore []string) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Errorf("resolving input root: %w", err)
	}

	if _, err := os.Stat(abs); err != nil {
		return nil, errors.Errorf("reading input root: %w", err)
	}

	for _, pattern := range ignore {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid ignore pattern %q", pattern)
		}
	}

	var files []string
	err = doublestar.GlobWalk(os.DirFS(abs), Pattern, func(path string, d fs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		if shouldIgnore(path, ignore) {
			logger.Debug().Str("file", path).Msg("file ignored by pattern")
			return nil
		}
		files = append(files, filepath.Join(abs, filepath.FromSlash(path)))
		return nil
	}, doublestar.WithFailOnIOErrors())
	if err != nil {
		return nil, errors.Errorf("walking %s: %w", abs, err)
	}

	sort.Strings(files)
	logger.Debug().Str("root", abs).Int("files", len(files)).Msg("discovered source documents")
	return files, nil
}

func shouldIgnore(path string, ignore []string) bool {
	for _, pattern := range ignore {
		// patterns were validated up front
		if matched, _ := doublestar.Match(pattern, path); matched {
			return true
		}
	}
	return false
}
