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

package naming

import "regexp"

// Extension is the source document extension the grammar accepts.
const Extension = ".tex"

// word mirrors a unicode-aware \w: letters, digits and underscore.
const word = `[\p{L}\p{N}_]+`

var reFilename = regexp.MustCompile(
	`^(?P<label>` + word + `)-(?P<id>` + word + `)-(?P<type>` + word + `)(?P<rest>.+)?\.tex$`)

// 📄 Match holds the fields extracted from a basename that fits the naming grammar
// <courseLabel>-<courseId>-<resourceType>[<rest>].tex
type Match struct {
	CourseLabel  string // short mnemonic, e.g. "algo"
	CourseID     string // formal identifier, e.g. "LINFO1101"
	ResourceType string // e.g. "exercises"
	Rest         string // trailing descriptor, empty when absent
}

// 🔍 Parse matches basename against the naming grammar. It reports false when
// the basename does not fit; no partial match is ever returned.
func Parse(basename string) (Match, bool) {
	m := reFilename.FindStringSubmatch(basename)
	if m == nil {
		return Match{}, false
	}
	return Match{
		CourseLabel:  m[reFilename.SubexpIndex("label")],
		CourseID:     m[reFilename.SubexpIndex("id")],
		ResourceType: m[reFilename.SubexpIndex("type")],
		Rest:         m[reFilename.SubexpIndex("rest")],
	}, true
}
