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

/*
Package config manages configuration parsing and validation for synthbuild.

	                 +-------------+
	                 |   Config    |
	                 | (roots and  |
	                 |  tables)    |
	                 +------+------+
	                        |
	     +---------+--------+--+---------+
	     |         |           |         |
	+----+---+ +---+----+ +----+---+ +---+----+
	|  YAML  | |  HCL   | |  JSON  | |  TOML  |
	+----+---+ +--------+ +--------+ +--------+
	     |
	+----+------+
	|  clients  |
	|  layout   |
	+-----------+

🎯 Purpose:
- Loads the input and output roots and the four lookup tables
- Picks the parser from the file extension
- Resolves relative roots against the config file's directory
- Rejects incomplete configurations before any file is processed

🔄 Flow:
1. Reads configuration from file
2. Parses format-specific syntax
3. Resolves roots and applies defaults
4. Validates configuration values

📝 Example (YAML):

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

🔍 Example:

	cfg, err := config.Load(ctx, "synthbuild.yaml")
	if err != nil {
		if errors.Is(err, config.ErrInvalid) {
			// missing root, bad quarter
		}
		return err
	}
	tables := cfg.Tables()
*/
package config
