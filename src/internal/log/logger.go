package log

import (
	"fmt"
	"os"
)

type level uint8

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

var levelPrefixes = map[level]string{
	levelDebug: "\033[37m[DBG]\033[0m", // White
	levelInfo:  "\033[36m[INF]\033[0m", // Cyan
	levelWarn:  "\033[33m[WRN]\033[0m", // Yellow
	levelError: "\033[31m[ERR]\033[0m", // Red
}

var (
	verbose     = false
	disableLogs = false
)

// SetVerbose sets the logging verbosity. If true, debug messages are displayed.
func SetVerbose(v bool) {
	verbose = v
}

// IsVerbose returns true if verbose logging is enabled.
func IsVerbose() bool {
	return verbose
}

// DisableLogs silences all logging. Used by tests.
func DisableLogs() {
	disableLogs = true
}

// Debugf logs a debug message if verbose is enabled.
func Debugf(format string, args ...interface{}) {
	if verbose {
		logMessage(levelDebug, format, args...)
	}
}

// Infof logs an info message.
func Infof(format string, args ...interface{}) {
	logMessage(levelInfo, format, args...)
}

// Warnf logs a warning message.
func Warnf(format string, args ...interface{}) {
	logMessage(levelWarn, format, args...)
}

// Errorf logs an error message.
func Errorf(format string, args ...interface{}) {
	logMessage(levelError, format, args...)
}

// Fatalf logs an error message and exits the program.
func Fatalf(format string, args ...interface{}) {
	logMessage(levelError, format, args...)
	os.Exit(1)
}

func logMessage(lvl level, format string, args ...interface{}) {
	if disableLogs {
		return
	}

	output := levelPrefixes[lvl] + " " + fmt.Sprintf(format, args...) + "\n"

	// stdout may carry serialized artifact bytes; warnings and errors go to stderr
	if lvl >= levelWarn {
		_, _ = os.Stderr.WriteString(output)
	} else {
		_, _ = os.Stdout.WriteString(output)
	}
}
