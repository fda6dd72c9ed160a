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

import (
	"regexp"
	"strconv"
)

var (
	// the course id must be exactly letters then digits, nothing else
	reOptionCode = regexp.MustCompile(`^([A-Za-z]+)([0-9]+)$`)

	// greedy prefix: the last q<n> followed by at least one character wins
	reQuarter = regexp.MustCompile(`^.+q([1-8]).+$`)

	reExam = regexp.MustCompile(`^-([0-9]+)-([A-Za-z]+)-(All|Minor|Major|Mineure|Majeure)$`)
)

// OptionCode is the decomposition of a course id such as LINFO1101.
type OptionCode struct {
	Prefix string // "LINFO"
	Code   string // "1101"
}

// ParseOptionCode splits courseID into its letter prefix and numeric code.
func ParseOptionCode(courseID string) (OptionCode, bool) {
	m := reOptionCode.FindStringSubmatch(courseID)
	if m == nil {
		return OptionCode{}, false
	}
	return OptionCode{Prefix: m[1], Code: m[2]}, true
}

// ParseQuarter extracts the academic quarter from the directory holding a
// source file. The result is always within [1,8].
func ParseQuarter(dir string) (int, bool) {
	m := reQuarter.FindStringSubmatch(dir)
	if m == nil {
		return 0, false
	}
	q, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return q, true
}

// Exam is the period a document belongs to, encoded in the trailing
// descriptor as -<year>-<month>-<kind>.
type Exam struct {
	Year  string
	Month string
	Kind  ExamKind
}

// ParseExam decodes a trailing descriptor. Anything that is not exactly
// -<digits>-<letters>-<kind> is rejected, including a trailing -Sol.
func ParseExam(rest string) (Exam, bool) {
	if rest == "" {
		return Exam{}, false
	}
	m := reExam.FindStringSubmatch(rest)
	if m == nil {
		return Exam{}, false
	}
	kind, ok := ParseExamKind(m[3])
	if !ok {
		return Exam{}, false
	}
	return Exam{Year: m[1], Month: m[2], Kind: kind}, true
}
