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

// document is the on-disk schema shared by the YAML, JSON and TOML parsers.
// Quarter keys stay strings here since not every format allows numeric keys.
type document struct {
	Input    string            `json:"input" yaml:"input" toml:"input"`
	Output   string            `json:"output" yaml:"output" toml:"output"`
	Compiler string            `json:"compiler,omitempty" yaml:"compiler,omitempty" toml:"compiler,omitempty"`
	Ignore   []string          `json:"ignore,omitempty" yaml:"ignore,omitempty" toml:"ignore,omitempty"`
	Names    map[string]string `json:"names,omitempty" yaml:"names,omitempty" toml:"names,omitempty"`
	Types    map[string]string `json:"types,omitempty" yaml:"types,omitempty" toml:"types,omitempty"`
	Options  map[string]string `json:"options,omitempty" yaml:"options,omitempty" toml:"options,omitempty"`
	Quarters map[string]string `json:"quarters,omitempty" yaml:"quarters,omitempty" toml:"quarters,omitempty"`
}

// 🔄 toConfig converts the decoded document to the model
func (d *document) toConfig() (*Config, error) {
	quarters, err := quarterTable(d.Quarters)
	if err != nil {
		return nil, err
	}
	return &Config{
		Input:    d.Input,
		Output:   d.Output,
		Compiler: d.Compiler,
		Ignore:   d.Ignore,
		Names:    d.Names,
		Types:    d.Types,
		Options:  d.Options,
		Quarters: quarters,
	}, nil
}
