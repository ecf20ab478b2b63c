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
	"github.com/walteh/wdfconv/pkg/operation"
	"github.com/walteh/wdfconv/pkg/status"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // Base width for filename
	statusWidth = 10 // Width for status text
)

// 🎯 FileResult is the rendered state of one reached file
type FileResult struct {
	Path      string // Source file name
	Failed    bool   // Whether conversion failed
	Message   string // Failure message, if any
	Completed int    // 1-based position in the run
	Total     int    // Files in the run
}

// 🎯 Logger renders run events on a console. It implements operation.Observer.
type Logger struct {
	console   io.Writer
	formatter status.FileFormatter
	mu        sync.Mutex
	failures  map[string]string
	results   []FileResult
}

var _ operation.Observer = (*Logger)(nil)

// 🏭 New creates a new logger writing to console
func New(console io.Writer) *Logger {
	return &Logger{
		console:   console,
		formatter: status.NewDefaultFileFormatter(),
		failures:  make(map[string]string),
	}
}

// Results returns the files reached so far, in order
func (l *Logger) Results() []FileResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]FileResult, len(l.results))
	copy(out, l.results)
	return out
}

// 📝 formatFileResult formats a file result for display
func (l *Logger) formatFileResult(res FileResult) string {
	symbol, symbolColor, state := '✓', color.FgGreen, "converted"
	if res.Failed {
		symbol, symbolColor, state = '✗', color.FgRed, "failed"
	}

	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, res.Path),
		color.New(symbolColor).Sprint(fmt.Sprintf("%-*s", statusWidth, state)),
		color.New(color.Faint).Sprintf("(%d/%d)", res.Completed, res.Total))
}

// OnError remembers the failure so the progress line can show it
func (l *Logger) OnError(ctx context.Context, filename, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if filename == "" {
		fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(message))
		return
	}
	l.failures[filename] = message
	zerolog.Ctx(ctx).Debug().Str("file", filename).Str("error", message).Msg("file failed")
}

// OnProgress prints one line per reached file
func (l *Logger) OnProgress(ctx context.Context, filename string, completed, total int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	message, failed := l.failures[filename]
	delete(l.failures, filename)

	res := FileResult{
		Path:      filename,
		Failed:    failed,
		Message:   message,
		Completed: completed,
		Total:     total,
	}
	l.results = append(l.results, res)

	fmt.Fprintln(l.console, l.formatFileResult(res))
	if failed {
		fmt.Fprintf(l.console, "%*s%s\n", fileIndent+2, "", color.New(color.FgRed).Sprint(message))
	}

	zerolog.Ctx(ctx).Debug().Str("file", filename).Msg(l.formatter.FormatProgress(filename, completed, total))
}

// OnFinished prints the run summary
func (l *Logger) OnFinished(ctx context.Context, outcome operation.Outcome) {
	l.mu.Lock()
	defer l.mu.Unlock()

	failed := 0
	for _, res := range l.results {
		if res.Failed {
			failed++
		}
	}
	reached := len(l.results)
	total := 0
	if reached > 0 {
		total = l.results[reached-1].Total
	}

	fmt.Fprintln(l.console)
	switch outcome.Kind {
	case operation.OutcomeCompleted:
		summary := l.formatter.FormatSummary(reached, failed, total, false)
		if failed > 0 {
			l.printWarning(summary)
		} else {
			l.printSuccess(summary)
		}
	case operation.OutcomeCancelled:
		l.printWarning(l.formatter.FormatSummary(reached, failed, total, true))
	case operation.OutcomeFailedToStart:
		l.printError(l.formatter.FormatError(outcome.Err))
	}

	zerolog.Ctx(ctx).Debug().
		Stringer("outcome", outcome).
		Int("reached", reached).
		Int("failed", failed).
		Msg("run summary")
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("wdfconv")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
}

func (l *Logger) printSuccess(msg string) {
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
}

func (l *Logger) printWarning(msg string) {
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
}

func (l *Logger) printError(msg string) {
	fmt.Fprintf(l.console, "%s\n", color.New(color.FgRed).Sprint(msg))
}
