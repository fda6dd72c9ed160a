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

// ExamKind tells which part of the exam session a document covers.
type ExamKind string

const (
	ExamAll   ExamKind = "All"
	ExamMinor ExamKind = "Minor"
	ExamMajor ExamKind = "Major"
)

var examKinds = map[string]ExamKind{
	"All":   ExamAll,
	"Minor": ExamMinor,
	"Major": ExamMajor,
	// older files use the French spelling
	"Mineure": ExamMinor,
	"Majeure": ExamMajor,
}

// ParseExamKind maps a descriptor token to its kind.
func ParseExamKind(s string) (ExamKind, bool) {
	k, ok := examKinds[s]
	return k, ok
}

func (k ExamKind) String() string {
	return string(k)
}
