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

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/walteh/synthbuild/pkg/command"
	"github.com/walteh/synthbuild/pkg/lookup"
	"gitlab.com/tozd/go/errors"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.Base("invalid configuration")

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config read from path
	Parse(ctx context.Context, path string, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config represents the complete configuration
type Config struct {
	Input    string   // Root searched for source documents
	Output   string   // Root the output folders are composed under
	Compiler string   // Compiler binary, pdflatex by default
	Ignore   []string // Glob patterns, relative to Input, excluded from discovery

	Names    map[string]string // course label -> course name
	Types    map[string]string // resource type -> type folder
	Options  map[string]string // course id prefix -> option folder
	Quarters map[int]string    // quarter number -> quarter folder
}

// 🎯 Load loads the configuration from a file. Relative roots are resolved
// against the directory holding the file.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, path, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Errorf("resolving config path: %w", err)
	}
	cfg.ResolveRoots(filepath.Dir(abs))

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	logger.Debug().
		Str("input", cfg.Input).
		Str("output", cfg.Output).
		Int("names", len(cfg.Names)).
		Int("types", len(cfg.Types)).
		Int("options", len(cfg.Options)).
		Int("quarters", len(cfg.Quarters)).
		Msg("configuration loaded")

	return cfg, nil
}

// ResolveRoots makes relative input and output roots relative to base.
func (cfg *Config) ResolveRoots(base string) {
	if cfg.Input != "" && !filepath.IsAbs(cfg.Input) {
		cfg.Input = filepath.Join(base, cfg.Input)
	}
	if cfg.Output != "" && !filepath.IsAbs(cfg.Output) {
		cfg.Output = filepath.Join(base, cfg.Output)
	}
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	// Check required fields
	if cfg.Input == "" {
		return errors.Errorf("%w: input is required", ErrInvalid)
	}
	if cfg.Output == "" {
		return errors.Errorf("%w: output is required", ErrInvalid)
	}
	for q := range cfg.Quarters {
		if q < 1 || q > 8 {
			return errors.Errorf("%w: quarter %d is outside 1..8", ErrInvalid, q)
		}
	}

	// Clean up paths
	cfg.Input = filepath.Clean(cfg.Input)
	cfg.Output = filepath.Clean(cfg.Output)

	// Set defaults
	if cfg.Compiler == "" {
		cfg.Compiler = command.DefaultCompiler
	}

	return nil
}

// Tables exposes the lookup dictionaries to the resolver.
func (cfg *Config) Tables() lookup.Tables {
	return lookup.Tables{
		Names:    cfg.Names,
		Types:    cfg.Types,
		Options:  cfg.Options,
		Quarters: cfg.Quarters,
	}
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s -> %s (%s)", cfg.Input, cfg.Output, cfg.Compiler)
}

// quarterTable converts the string keyed quarter mapping every format decodes
// into its numeric form.
func quarterTable(raw map[string]string) (map[int]string, error) {
	if raw == nil {
		return nil, nil
	}
	out := make(map[int]string, len(raw))
	for k, v := range raw {
		q, err := strconv.Atoi(k)
		if err != nil {
			return nil, errors.Errorf("%w: quarter key %q is not a number", ErrInvalid, k)
		}
		out[q] = v
	}
	return out, nil
}
