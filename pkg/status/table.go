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

package status

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/walteh/synthbuild/pkg/plan"
	"gitlab.com/tozd/go/errors"
)

var planHeader = []string{"File", "Folder", "Name", "Type", "Quarter"}

// PlanTable lays out one row per task, folders shown relative to
// outputRoot. Skipped files close the table with an empty folder.
func PlanTable(p *plan.Plan, outputRoot string) pterm.TableData {
	data := pterm.TableData{planHeader}

	for _, t := range p.Tasks {
		md := t.Metadata
		quarter := "-"
		if md.Quarter > 0 {
			quarter = "Q" + strconv.Itoa(md.Quarter)
		}
		data = append(data, []string{
			t.Basename,
			relative(outputRoot, md.FolderPath),
			md.Name.String(),
			md.Type.String(),
			quarter,
		})
	}

	for _, s := range p.Skipped {
		data = append(data, []string{filepath.Base(s), "(skipped)", "", "", ""})
	}

	return data
}

// PrintPlan renders the plan table to w.
func PrintPlan(w io.Writer, p *plan.Plan, outputRoot string) error {
	out, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithData(PlanTable(p, outputRoot)).
		Srender()
	if err != nil {
		return errors.Errorf("rendering plan: %w", err)
	}

	_, err = fmt.Fprintln(w, out)
	return err
}

func relative(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
