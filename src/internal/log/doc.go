// Package log provides leveled, colorized logging for the application.
// Debug output is gated behind SetVerbose; warnings and errors go to
// stderr so stdout stays clean when an artifact is streamed to it.
package log
