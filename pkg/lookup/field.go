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

package lookup

// State distinguishes why a field does or does not carry a value.
type State int

const (
	// Absent means no lookup was attempted, the raw token was not there.
	Absent State = iota
	// Unknown means the token was looked up and had no entry.
	Unknown
	// Known means the token resolved to a value.
	Known
)

func (s State) String() string {
	switch s {
	case Unknown:
		return "unknown"
	case Known:
		return "known"
	default:
		return "absent"
	}
}

// Field is the outcome of resolving one raw token. The zero value is Absent.
type Field struct {
	state State
	value string
}

// Resolved returns a known field holding value.
func Resolved(value string) Field {
	return Field{state: Known, value: value}
}

// Unresolved returns the Unknown marker.
func Unresolved() Field {
	return Field{state: Unknown}
}

func (f Field) State() State {
	return f.state
}

// IsKnown reports whether the field resolved to a value.
func (f Field) IsKnown() bool {
	return f.state == Known
}

// Value returns the resolved value and whether there was one.
func (f Field) Value() (string, bool) {
	return f.value, f.state == Known
}

// String renders the field for logs.
func (f Field) String() string {
	if f.state == Known {
		return f.value
	}
	return "<" + f.state.String() + ">"
}
