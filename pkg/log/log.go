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
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/walteh/wordswap/pkg/swap"
)

// 🎨 Display configuration
const (
	fileIndent   = 4  // spaces to indent output entries
	nameWidth    = 35 // Base width for filename
	sourceWidth  = 10 // Width for source kind
	separatorBar = "=========================="
)

// 🎯 OutputFile describes a written output file for display
type OutputFile struct {
	Path         string // Output file path
	Source       string // Source kind (file/html-file/url)
	IsModified   bool   // Whether any word was swapped
	Replacements int    // Number of replacements made
}

// 🎯 Logger writes user-facing output to the console and mirrors it to zerolog
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(level)
	return NewWithZerolog(console, zlog)
}

// 🏭 NewWithZerolog creates a logger that mirrors to an existing zerolog logger
func NewWithZerolog(console io.Writer, zlog zerolog.Logger) *Logger {
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

// 📝 formatOutputFile formats a written file for display
func (l *Logger) formatOutputFile(f OutputFile) string {
	symbol := '•'
	symbolColor := color.FgCyan
	status := "no change"
	if f.IsModified {
		symbol = '✓'
		symbolColor = color.FgGreen
		status = pluralize(f.Replacements, "replacement")
	}

	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, f.Path),
		color.New(color.FgYellow).Sprint(fmt.Sprintf("%-*s", sourceWidth, f.Source)),
		status)
}

// 📝 LogOutputFile logs a written output file
func (l *Logger) LogOutputFile(ctx context.Context, f OutputFile) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatOutputFile(f))

	l.zlog.Info().
		Str("file", f.Path).
		Str("source", f.Source).
		Bool("is_modified", f.IsModified).
		Int("replacements", f.Replacements).
		Msg("output file written")
}

// 📝 Section prints a titled block of text, like ORIGINAL TEXT or NEW TEXT
func (l *Logger) Section(title, body string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "%s\n%s\n", color.New(color.Bold).Sprint(title+":"), body)
	l.zlog.Debug().Str("section", title).Int("length", len(body)).Msg("section printed")
}

// 📝 Separator prints the bar between sections
func (l *Logger) Separator() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "\n%s\n\n", color.New(color.Faint).Sprint(separatorBar))
}

// 📝 Diff prints the changes between before and after.
// Removed text is shown as [-old-] and added text as {+new+}.
func (l *Logger) Diff(before, after string) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var b strings.Builder
	changes := 0
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			changes++
			b.WriteString(color.New(color.FgRed).Sprint("[-" + d.Text + "-]"))
		case diffmatchpatch.DiffInsert:
			changes++
			b.WriteString(color.New(color.FgGreen).Sprint("{+" + d.Text + "+}"))
		default:
			b.WriteString(d.Text)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "%s\n%s\n", color.New(color.Bold).Sprint("CHANGES:"), b.String())
	l.zlog.Debug().Int("hunks", changes).Msg("diff printed")
}

// 📝 Tallies prints per-rule replacement counts as a table.
// Rules that matched nothing are left out.
func (l *Logger) Tallies(tallies []swap.Tally) {
	data := pterm.TableData{{"Word", "Replacement", "Plural", "Possessive", "Singular", "Total"}}
	for _, t := range tallies {
		if t.Total() == 0 {
			continue
		}
		data = append(data, []string{
			t.Rule.Word,
			t.Rule.Replacement,
			strconv.Itoa(t.Plural),
			strconv.Itoa(t.Possessive),
			strconv.Itoa(t.Singular),
			strconv.Itoa(t.Total()),
		})
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if len(data) == 1 {
		fmt.Fprintln(l.console, color.New(color.Faint).Sprint("no words were swapped"))
		return
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		l.zlog.Error().Err(err).Msg("rendering tally table")
		return
	}
	fmt.Fprintln(l.console, table)

	for _, row := range data[1:] {
		l.zlog.Info().Str("word", row[0]).Str("replacement", row[1]).Str("total", row[5]).Msg("rule tally")
	}
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
	nameText := color.New(color.Bold, color.FgCyan).Sprint("wordswap")
	fmt.Fprintf(l.console, "\n%s %s\n\n", nameText, color.New(color.Faint).Sprint("• "+msg))
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

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
