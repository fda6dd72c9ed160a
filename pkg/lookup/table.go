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

// 📚 Table maps raw tokens to human readable names. A nil Table is valid and
// resolves every key to Unknown.
type Table[K comparable] map[K]string

// 🔍 Resolve looks key up. A missing key yields the Unknown marker, never an error.
func (t Table[K]) Resolve(key K) Field {
	v, ok := t[key]
	if !ok {
		return Unresolved()
	}
	return Resolved(v)
}

// 🗂️ Tables groups the four dictionaries a run resolves tokens through.
type Tables struct {
	Names    Table[string] // course label -> course name
	Types    Table[string] // resource type -> type folder
	Options  Table[string] // course id prefix -> option folder
	Quarters Table[int]    // quarter number -> quarter folder
}

// ResolveName resolves a course label.
func (t Tables) ResolveName(label string) Field {
	return t.Names.Resolve(label)
}

// ResolveType resolves a resource type.
func (t Tables) ResolveType(resourceType string) Field {
	return t.Types.Resolve(resourceType)
}

// ResolveOption resolves the letter prefix of a course id.
func (t Tables) ResolveOption(prefix string) Field {
	return t.Options.Resolve(prefix)
}

// ResolveQuarter resolves a quarter number to its folder name.
func (t Tables) ResolveQuarter(quarter int) Field {
	return t.Quarters.Resolve(quarter)
}
