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

package layout

import (
	"path/filepath"
	"strconv"

	"github.com/walteh/synthbuild/pkg/metadata"
)

// 🪜 Step produces one path segment. Segment reports false when the
// prerequisites of the step are not known, which ends the cascade.
type Step struct {
	Name    string
	Segment func(md metadata.Metadata) (string, bool)
}

var steps = []Step{
	{Name: "quarter_folder", Segment: quarterFolderSegment},
	{Name: "option", Segment: optionSegment},
	{Name: "quarter", Segment: quarterSegment},
	{Name: "course", Segment: courseSegment},
	{Name: "type", Segment: typeSegment},
	{Name: "exam_period", Segment: examPeriodSegment},
}

// Steps returns the cascade in application order.
func Steps() []Step {
	out := make([]Step, len(steps))
	copy(out, steps)
	return out
}

// 🎯 Segments folds the cascade over md and returns the segments applied
// before the first step that could not run. The result is never nil.
func Segments(md metadata.Metadata) []string {
	segs := make([]string, 0, len(steps))
	for _, s := range steps {
		seg, ok := s.Segment(md)
		if !ok {
			break
		}
		segs = append(segs, seg)
	}
	return segs
}

// 📁 Compose builds the output folder for md under outputRoot. When not even
// the quarter folder is known the result is outputRoot itself.
func Compose(md metadata.Metadata, outputRoot string) string {
	return filepath.Join(append([]string{outputRoot}, Segments(md)...)...)
}

// Depth is the number of segments Compose appends for md.
func Depth(md metadata.Metadata) int {
	return len(Segments(md))
}

func quarterFolderSegment(md metadata.Metadata) (string, bool) {
	return md.QuarterFolder.Value()
}

func optionSegment(md metadata.Metadata) (string, bool) {
	return md.Option.Value()
}

func quarterSegment(md metadata.Metadata) (string, bool) {
	if md.Quarter == 0 {
		return "", false
	}
	return "Q" + strconv.Itoa(md.Quarter), true
}

func courseSegment(md metadata.Metadata) (string, bool) {
	if md.CourseLabel == "" || !md.Name.IsKnown() {
		return "", false
	}
	folder := md.CourseLabel
	if name, ok := md.Name.Value(); ok {
		folder += " - " + name
	}
	return Sanitize(folder), true
}

func typeSegment(md metadata.Metadata) (string, bool) {
	return md.Type.Value()
}

func examPeriodSegment(md metadata.Metadata) (string, bool) {
	if md.Year == "" || md.Month == "" {
		return "", false
	}
	return md.Year + " - " + md.Month, true
}
