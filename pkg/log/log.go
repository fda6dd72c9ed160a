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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	fileIndent   = 4  // spaces to indent file entries
	nameWidth    = 45 // Base width for filename
	statusWidth  = 8  // Width for status text
	progressPart = 9  // Width for the [i/n] counter
)

// Task statuses
const (
	StatusBuilt   = "built"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)

// 🎯 TaskOperation represents one source document for logging
type TaskOperation struct {
	File    string // Source basename
	Folder  string // Output folder, as shown to the user
	Status  string // One of the Status constants
	Current int    // Position in the batch, 1 based
	Total   int    // Size of the batch
	Err     error  // Compiler failure, if any
}

// 📦 BatchOperation represents a whole run for logging
type BatchOperation struct {
	RunID  string // Identifier of the run
	Input  string // Input root
	Output string // Output root
	Files  int    // Number of discovered documents
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog       zerolog.Logger
	console    io.Writer
	mu         sync.Mutex
	currentOp  *BatchOperation
	operations []TaskOperation
}

// 🏭 New creates a new logger writing human output to console and
// structured events to zlog
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatTaskOperation formats a task for display
func (l *Logger) formatTaskOperation(op TaskOperation) string {
	// Determine symbol and color
	var symbol rune
	var symbolColor color.Attribute
	switch op.Status {
	case StatusBuilt:
		symbol = '✓'
		symbolColor = color.FgGreen
	case StatusFailed:
		symbol = '✗'
		symbolColor = color.FgRed
	default:
		symbol = '-'
		symbolColor = color.FgYellow
	}

	counter := ""
	if op.Total > 0 {
		counter = fmt.Sprintf("[%d/%d]", op.Current, op.Total)
	}

	// Build the line
	return fmt.Sprintf("%s%s %s %s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", progressPart, counter),
		fmt.Sprintf("%-*s", nameWidth, op.File),
		color.New(symbolColor).Sprint(fmt.Sprintf("%-*s", statusWidth, op.Status)),
		color.New(color.Faint).Sprint(op.Folder))
}

// 📝 LogTask logs the outcome of one task
func (l *Logger) LogTask(ctx context.Context, op TaskOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Add to operations list
	l.operations = append(l.operations, op)

	// Format and print
	fmt.Fprintln(l.console, l.formatTaskOperation(op))

	// Log to zerolog
	event := l.zlog.Info()
	if op.Err != nil {
		event = l.zlog.Error().Err(op.Err)
	}
	event.
		Str("file", op.File).
		Str("folder", op.Folder).
		Str("status", op.Status).
		Int("current", op.Current).
		Int("total", op.Total).
		Msg("task")
}

// 📝 StartBatch starts a new batch
func (l *Logger) StartBatch(ctx context.Context, op BatchOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentOp = &op
	l.operations = nil

	// Print batch header
	fmt.Fprintf(l.console, "[building %s]\n",
		color.New(color.FgCyan).Sprint(op.Input))

	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(op.Output),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgYellow).Sprintf("%d files", op.Files))

	// Log to zerolog
	l.zlog.Info().
		Str("run_id", op.RunID).
		Str("input", op.Input).
		Str("output", op.Output).
		Int("files", op.Files).
		Msg("starting batch")
}

// 📝 EndBatch ends the current batch
func (l *Logger) EndBatch(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentOp == nil {
		return
	}

	failed := 0
	for _, op := range l.operations {
		if op.Status == StatusFailed {
			failed++
		}
	}

	// Log summary
	l.zlog.Info().
		Str("run_id", l.currentOp.RunID).
		Int("tasks", len(l.operations)).
		Int("failed", failed).
		Msg("batch complete")

	l.currentOp = nil
	l.operations = nil
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("synthbuild")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}
