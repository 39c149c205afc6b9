// Package output provides terminal output utilities.
package output

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// logger is the package-level logger. SetupLogging replaces it.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      "15:04:05",
})

// stdout receives plain, unformatted output.
var stdout io.Writer = os.Stdout

// LogConfig controls logger construction.
type LogConfig struct {
	// Verbose enables debug output, caller reporting and timestamps.
	Verbose bool

	// Timestamps toggles timestamps. Nil means on. Verbose forces them on.
	Timestamps *bool
}

// SetupLogging configures the package-level logger.
func SetupLogging(cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	timestamps := true
	if cfg.Timestamps != nil {
		timestamps = *cfg.Timestamps
	}
	if cfg.Verbose {
		timestamps = true
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: timestamps,
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
}

// SetLogWriter redirects log output. Used by tests.
func SetLogWriter(w io.Writer) {
	logger.SetOutput(w)
}

// SetOutputWriter redirects plain output. Used by tests.
func SetOutputWriter(w io.Writer) {
	stdout = w
}

// Logger returns the package-level logger.
func Logger() *log.Logger {
	return logger
}

// EntityLogger returns a sub-logger whose lines are prefixed with the
// entity name. It shares the level and output of the package logger.
func EntityLogger(name string) *log.Logger {
	return logger.WithPrefix(StyleDim.Render("m:") + StyleNoun.Render(name))
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	logger.Error(msg, keyvals...)
}

// Details writes a multi-line block to stderr, indented under the
// preceding log line.
func Details(text string) {
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		os.Stderr.WriteString("    " + line + "\n")
	}
}

// Print prints a message to stdout without any formatting.
func Print(msg string) {
	io.WriteString(stdout, msg)
}

// Println prints a message to stdout with a newline.
func Println(msg string) {
	io.WriteString(stdout, msg+"\n")
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}
