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
Package naming decodes the information carried by a source document's name.

	algo-LINFO1101-exam-2016-Juin-All.tex
	 |       |      |        |
	 |       |      |        +-- Rest   -> ParseExam    (year, month, kind)
	 |       |      +----------- ResourceType
	 |       +------------------ CourseID -> ParseOptionCode (prefix, code)
	 +-------------------------- CourseLabel

	.../q3/...                   directory -> ParseQuarter (1..8)

🎯 Purpose:
  - Parse applies the filename grammar; a miss means the file is not part of the batch
  - The secondary extractors are independent and optional, a miss leaves fields absent

None of these functions return errors: a name either fits or it does not.
*/
package naming
