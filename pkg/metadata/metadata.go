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

// Package metadata turns a parsed filename into the resolved record the
// path composer and command builder work from.
package metadata

import (
	"github.com/rs/zerolog"
	"github.com/walteh/synthbuild/pkg/lookup"
	"github.com/walteh/synthbuild/pkg/naming"
)

// Metadata is everything known about one source document. Lookup backed
// fields carry their resolution state; the rest are empty when absent.
type Metadata struct {
	Name          lookup.Field // course name, from the course label
	Type          lookup.Field // type folder, from the resource type
	Option        lookup.Field // option folder, from the course id prefix
	QuarterFolder lookup.Field // quarter folder, from the quarter number

	CourseLabel string // the course id, verbatim
	Code        string // numeric part of the course id
	Quarter     int    // 1..8, 0 when the directory carries no marker

	Year     string
	Month    string
	ExamKind naming.ExamKind

	FolderPath   string
	BuildCommand string
}

// Resolve runs the secondary extractors over match and dir and resolves the
// raw tokens through tables. It never fails: unresolved tokens become Unknown
// and missing sub-patterns leave their fields absent.
func Resolve(match naming.Match, dir string, tables lookup.Tables) Metadata {
	md := Metadata{
		Name:        tables.ResolveName(match.CourseLabel),
		Type:        tables.ResolveType(match.ResourceType),
		CourseLabel: match.CourseID,
	}

	if oc, ok := naming.ParseOptionCode(match.CourseID); ok {
		md.Option = tables.ResolveOption(oc.Prefix)
		md.Code = oc.Code
	}

	if q, ok := naming.ParseQuarter(dir); ok {
		md.Quarter = q
		md.QuarterFolder = tables.ResolveQuarter(q)
	}

	if exam, ok := naming.ParseExam(match.Rest); ok {
		md.Year = exam.Year
		md.Month = exam.Month
		md.ExamKind = exam.Kind
	}

	return md
}

// MarshalZerologObject lets a Metadata be attached to log events.
func (md Metadata) MarshalZerologObject(e *zerolog.Event) {
	e.Stringer("name", md.Name).
		Stringer("type", md.Type).
		Stringer("option", md.Option).
		Stringer("quarter_folder", md.QuarterFolder).
		Str("course_label", md.CourseLabel).
		Str("code", md.Code).
		Int("quarter", md.Quarter).
		Str("year", md.Year).
		Str("month", md.Month).
		Str("exam_kind", string(md.ExamKind))
}
