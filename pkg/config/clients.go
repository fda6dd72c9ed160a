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
	"maps"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// clientsDocument is the older config.yml layout: each client lists nested
// output parameters, and every parameter naming an argument through key.arg
// may carry the mapping for that argument.
type clientsDocument struct {
	InputBase  string   `yaml:"input_base"`
	OutputBase string   `yaml:"output_base"`
	Clients    []client `yaml:"clients"`
}

type client struct {
	Output struct {
		Parameters []clientParameter `yaml:"parameters"`
	} `yaml:"output"`
}

type clientParameter struct {
	Key struct {
		Arg string `yaml:"arg"`
	} `yaml:"key"`
	Mapping    map[string]string `yaml:"mapping"`
	Parameters []clientParameter `yaml:"parameters"`
}

// arguments whose mappings feed a lookup table
const (
	argQuarter = "quadri"
	argOption  = "option"
	argName    = "name"
	argType    = "type"
)

func parseClients(data []byte) (*Config, error) {
	var doc clientsDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Errorf("parsing clients layout: %w", err)
	}

	tables := map[string]map[string]string{}
	for _, c := range doc.Clients {
		collectMappings(c.Output.Parameters, tables)
	}

	quarters, err := quarterTable(tables[argQuarter])
	if err != nil {
		return nil, err
	}

	return &Config{
		Input:    doc.InputBase,
		Output:   doc.OutputBase,
		Names:    tables[argName],
		Types:    tables[argType],
		Options:  tables[argOption],
		Quarters: quarters,
	}, nil
}

// collectMappings walks params depth first, merging every mapping into the
// table of its argument. Type mappings are spread over several clients.
func collectMappings(params []clientParameter, tables map[string]map[string]string) {
	for _, p := range params {
		if p.Key.Arg != "" && p.Mapping != nil {
			if tables[p.Key.Arg] == nil {
				tables[p.Key.Arg] = map[string]string{}
			}
			maps.Copy(tables[p.Key.Arg], p.Mapping)
		}
		collectMappings(p.Parameters, tables)
	}
}
