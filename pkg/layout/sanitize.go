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

import "strings"

// InvalidFolderChars are the characters Windows refuses in a directory name.
const InvalidFolderChars = `<>:"/\|?*`

var folderReplacer = func() *strings.Replacer {
	pairs := make([]string, 0, 2*len(InvalidFolderChars))
	for _, c := range InvalidFolderChars {
		pairs = append(pairs, string(c), " ")
	}
	return strings.NewReplacer(pairs...)
}()

// 🧹 Sanitize replaces every invalid folder character in s with a space.
func Sanitize(s string) string {
	return folderReplacer.Replace(s)
}
