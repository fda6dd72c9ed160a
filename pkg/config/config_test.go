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
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		config      string
		wantErr     bool
		errContains string
		wantInvalid bool
		check       func(t *testing.T, dir string, cfg *Config)
	}{
		{
			name:     "valid_yaml",
			filename: "synthbuild.yaml",
			config: `
input: /src
output: /build
compiler: lualatex
ignore:
  - "**/templates/**"
names:
  algo: Algorithms
types:
  exercises: Exercises
options:
  LINFO: INFO
quarters:
  1: BAC1
  2: BAC1
`,
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Equal(t, "/src", cfg.Input, "input should match")
				assert.Equal(t, "/build", cfg.Output, "output should match")
				assert.Equal(t, "lualatex", cfg.Compiler, "compiler should match")
				assert.Equal(t, []string{"**/templates/**"}, cfg.Ignore, "ignore patterns should match")
				assert.Equal(t, map[string]string{"algo": "Algorithms"}, cfg.Names)
				assert.Equal(t, map[string]string{"exercises": "Exercises"}, cfg.Types)
				assert.Equal(t, map[string]string{"LINFO": "INFO"}, cfg.Options)
				assert.Equal(t, map[int]string{1: "BAC1", 2: "BAC1"}, cfg.Quarters)
			},
		},
		{
			name:     "package_doc_example",
			filename: "synthbuild.yaml",
			config: `
input: ../src
output: ../build
ignore:
  - "templates/**"
names:
  algo: Algorithms
types:
  exercises: Exercises
options:
  LINFO: INFO
quarters:
  1: BAC1
  2: BAC1
`,
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Equal(t, filepath.Join(filepath.Dir(dir), "src"), cfg.Input, "input should resolve above the config dir")
				assert.Equal(t, filepath.Join(filepath.Dir(dir), "build"), cfg.Output, "output should resolve above the config dir")
				assert.Equal(t, []string{"templates/**"}, cfg.Ignore)
				assert.Equal(t, map[int]string{1: "BAC1", 2: "BAC1"}, cfg.Quarters)
			},
		},
		{
			name:     "minimal_yaml",
			filename: "synthbuild.yml",
			config: `
input: src
output: build
`,
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Equal(t, filepath.Join(dir, "src"), cfg.Input, "relative input resolves against config dir")
				assert.Equal(t, filepath.Join(dir, "build"), cfg.Output, "relative output resolves against config dir")
				assert.Equal(t, "pdflatex", cfg.Compiler, "compiler should have default value")
				assert.Nil(t, cfg.Names)
				assert.Nil(t, cfg.Quarters)
			},
		},
		{
			name:     "unknown_yaml_field",
			filename: "synthbuild.yaml",
			config: `
input: /src
output: /build
colour: blue
`,
			wantErr:     true,
			errContains: "parsing YAML",
		},
		{
			name:     "missing_input",
			filename: "synthbuild.yaml",
			config: `
output: /build
`,
			wantErr:     true,
			errContains: "input is required",
			wantInvalid: true,
		},
		{
			name:     "missing_output",
			filename: "synthbuild.yaml",
			config: `
input: /src
`,
			wantErr:     true,
			errContains: "output is required",
			wantInvalid: true,
		},
		{
			name:     "quarter_out_of_range",
			filename: "synthbuild.yaml",
			config: `
input: /src
output: /build
quarters:
  9: MASTER
`,
			wantErr:     true,
			errContains: "quarter 9 is outside 1..8",
			wantInvalid: true,
		},
		{
			name:     "quarter_not_a_number",
			filename: "synthbuild.yaml",
			config: `
input: /src
output: /build
quarters:
  first: BAC1
`,
			wantErr:     true,
			errContains: `quarter key "first" is not a number`,
			wantInvalid: true,
		},
		{
			name:     "valid_json",
			filename: "synthbuild.json",
			config: `{
	"input": "/src",
	"output": "/build",
	"names": {"algo": "Algorithms"},
	"quarters": {"3": "BAC2"}
}`,
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Equal(t, "/src", cfg.Input)
				assert.Equal(t, map[string]string{"algo": "Algorithms"}, cfg.Names)
				assert.Equal(t, map[int]string{3: "BAC2"}, cfg.Quarters)
			},
		},
		{
			name:     "valid_toml",
			filename: "synthbuild.toml",
			config: `
input = "/src"
output = "/build"
ignore = ["drafts/**"]

[types]
summary = "Summaries"

[quarters]
1 = "BAC1"
`,
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Equal(t, "/build", cfg.Output)
				assert.Equal(t, []string{"drafts/**"}, cfg.Ignore)
				assert.Equal(t, map[string]string{"summary": "Summaries"}, cfg.Types)
				assert.Equal(t, map[int]string{1: "BAC1"}, cfg.Quarters)
			},
		},
		{
			name:     "valid_hcl",
			filename: "synthbuild.hcl",
			config: `
input  = "${config_dir}/src"
output = "/build"
names = {
  algo = "Algorithms"
}
quarters = {
  "5" = "MASTER1"
}
`,
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Equal(t, filepath.Join(dir, "src"), cfg.Input, "config_dir should expand")
				assert.Equal(t, map[string]string{"algo": "Algorithms"}, cfg.Names)
				assert.Equal(t, map[int]string{5: "MASTER1"}, cfg.Quarters)
			},
		},
		{
			name:        "invalid_hcl",
			filename:    "synthbuild.hcl",
			config:      `input = `,
			wantErr:     true,
			errContains: "parsing HCL",
		},
		{
			name:        "unsupported_extension",
			filename:    "synthbuild.ini",
			config:      `input=/src`,
			wantErr:     true,
			errContains: "no parser found",
		},
	}

	ctx := zerolog.New(os.Stderr).WithContext(context.Background())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create temporary config file
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, tt.filename)
			err := os.WriteFile(configPath, []byte(tt.config), 0644)
			require.NoError(t, err, "writing config file should succeed")

			// Load config
			cfg, err := Load(ctx, configPath)
			if tt.wantErr {
				require.Error(t, err, "Load should return error")
				assert.Contains(t, err.Error(), tt.errContains, "error should contain expected message")
				assert.Equal(t, tt.wantInvalid, errors.Is(err, ErrInvalid), "validation errors should wrap ErrInvalid")
				return
			}

			require.NoError(t, err, "Load should succeed")
			if tt.check != nil {
				tt.check(t, tmpDir, cfg)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

// 🧪 TestParserSelection tests parser selection by file extension
func TestParserSelection(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     Parser
	}{
		{name: "yaml_file", filename: "config.yaml", want: &YAMLParser{}},
		{name: "yml_file", filename: "config.yml", want: &YAMLParser{}},
		{name: "hcl_file", filename: "config.hcl", want: &HCLParser{}},
		{name: "json_file", filename: "config.json", want: &JSONParser{}},
		{name: "toml_file", filename: "config.toml", want: &TOMLParser{}},
		{name: "unknown_extension", filename: "config.txt", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetParser(tt.filename)
			if tt.want == nil {
				assert.Nil(t, got, "should return nil for unknown extension")
				return
			}
			require.NotNil(t, got, "should return a parser")
			assert.IsType(t, tt.want, got, "should return correct parser type")
		})
	}
}

func TestTables(t *testing.T) {
	cfg := &Config{
		Names:    map[string]string{"algo": "Algorithms"},
		Quarters: map[int]string{1: "BAC1"},
	}

	tables := cfg.Tables()
	v, ok := tables.ResolveName("algo").Value()
	assert.True(t, ok)
	assert.Equal(t, "Algorithms", v)
	assert.False(t, tables.ResolveType("exercises").IsKnown(), "nil table should resolve unknown")
	assert.True(t, tables.ResolveQuarter(1).IsKnown())
}

func TestConfigString(t *testing.T) {
	cfg := &Config{Input: "/src", Output: "/build", Compiler: "pdflatex"}
	assert.Equal(t, "/src -> /build (pdflatex)", cfg.String())
}
