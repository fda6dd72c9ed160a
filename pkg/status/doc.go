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
Package status renders batch progress for humans.

	+-----------+      +-------------+
	|   Plan    | ---> |  PlanTable  |  (dry run, pterm)
	+-----------+      +-------------+
	      |
	+-----------+      +-------------+
	|  Report   | ---> |  Formatter  |  (per task, summary)
	+-----------+      +-------------+

🎯 Purpose:
- One line per task while the batch runs
- A progress counter with percentage
- A closing summary of built, failed and skipped files
- A table of the planned folders for dry runs

Nothing here touches the file system or the compiler. The build and plan
commands hand over data and print whatever comes back.
*/
package status
