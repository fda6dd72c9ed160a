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
Package layout decides where the output of a source document goes.

	<output>
	  └── BAC1                       quarter folder  (quarter number known in table)
	      └── INFO                   option          (course id prefix known in table)
	          └── Q1                 quarter
	              └── LINFO1101 - Algorithms    course (name known, sanitized)
	                  └── Exams      type
	                      └── 2016 - Juin       exam period (year and month parsed)

🔄 Flow:
Steps run in the order above. The first step whose inputs are missing or
Unknown stops the walk, so a path is always a prefix of the full layout and
files that cannot be classified land directly in the output root.
*/
package layout
