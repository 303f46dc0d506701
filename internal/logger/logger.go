// Package logger provides leveled console logging for litholog.
// Warnings are always printed unless quiet mode is set; debug and info
// messages are printed only when verbose mode is enabled via --verbose.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	quiet   bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetQuiet suppresses warnings. Verbose output still follows SetVerbose.
func SetQuiet(q bool) {
	mu.Lock()
	defer mu.Unlock()
	quiet = q
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Logger prefixes every line with a scope such as a run ID.
// The zero value logs without a prefix.
type Logger struct {
	scope string
}

// For returns a logger scoped to the given run or file.
func For(scope string) *Logger {
	return &Logger{scope: scope}
}

func (l *Logger) write(level string, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if l.scope != "" {
		fmt.Fprintf(output, "[%s] (%s) "+format+"\n", append([]any{level, l.scope}, args...)...)
		return
	}
	fmt.Fprintf(output, "["+level+"] "+format+"\n", args...)
}

// Debug prints a message if verbose mode is enabled.
func (l *Logger) Debug(format string, args ...any) {
	if IsVerbose() {
		l.write("DEBUG", format, args...)
	}
}

// Info prints an informational message if verbose mode is enabled.
func (l *Logger) Info(format string, args ...any) {
	if IsVerbose() {
		l.write("INFO", format, args...)
	}
}

// Warn prints a warning unless quiet mode is enabled.
func (l *Logger) Warn(format string, args ...any) {
	mu.RLock()
	q := quiet
	mu.RUnlock()
	if !q {
		l.write("WARN", format, args...)
	}
}

var root = &Logger{}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	root.Debug(format, args...)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	root.Info(format, args...)
}

// Warn prints a warning unless quiet mode is enabled.
func Warn(format string, args ...any) {
	root.Warn(format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}
