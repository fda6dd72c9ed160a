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
)

// Formatter defines how task outcomes and batch progress are formatted
type Formatter interface {
	// FormatTask formats the outcome of one task
	FormatTask(file, folder string, err error) string

	// FormatProgress formats a progress message
	FormatProgress(current, total int) string

	// FormatSummary formats the closing line of a batch
	FormatSummary(total, built, failed, skipped int) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFormatter provides a default implementation of Formatter
type DefaultFormatter struct{}

var _ Formatter = (*DefaultFormatter)(nil)

// NewDefaultFormatter creates a new DefaultFormatter
func NewDefaultFormatter() *DefaultFormatter {
	return &DefaultFormatter{}
}

// FormatTask formats a task outcome with emojis
func (f *DefaultFormatter) FormatTask(file, folder string, err error) string {
	if err != nil {
		return fmt.Sprintf("❌ Failed %s: %v", file, err)
	}
	return fmt.Sprintf("📄 Built %s -> %s", file, folder)
}

// FormatProgress formats a progress message with percentage
func (f *DefaultFormatter) FormatProgress(current, total int) string {
	if current < 0 {
		current = 0
	}
	if total < 0 {
		total = 0
	}

	var percentage float64
	switch {
	case total == 0:
		percentage = 100
	case current >= total:
		percentage = 100
	default:
		percentage = float64(current) / float64(total) * 100
	}

	if current >= total {
		return fmt.Sprintf("✅ Progress: %d/%d (%.0f%%)", current, total, percentage)
	}
	return fmt.Sprintf("⏳ Progress: %d/%d (%.0f%%)", current, total, percentage)
}

// FormatSummary formats the batch summary
func (f *DefaultFormatter) FormatSummary(total, built, failed, skipped int) string {
	emoji := "🎉"
	if failed > 0 {
		emoji = "⚠️ "
	}
	return fmt.Sprintf("%s %d/%d built, %d failed, %d skipped", emoji, built, total, failed, skipped)
}

// FormatError formats an error message with emoji
func (f *DefaultFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}
