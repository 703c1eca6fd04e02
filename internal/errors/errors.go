// Package errors provides structured error types and exit codes for the benchmark driver.
package errors

import (
	"fmt"
	"io"
	"os"
)

// Exit codes returned by the benchmark driver.
const (
	ExitSuccess = 0 // Success, including help, version and docs modes
	ExitFailure = 1 // Command line, configuration, unknown test or docs content error
	ExitFatal   = 2 // Developer error detected by the framework
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindCommandLine
	KindConfig
	KindNotFound
	KindDocs
)

// BenchError is the base error type for user-facing failures.
type BenchError struct {
	Kind    ErrorKind
	Message string
	Key     string // Argument key if applicable
	Cause   error  // Underlying error
}

func (e *BenchError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s: %s", e.Key, e.Message)
	}
	return e.Message
}

func (e *BenchError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *BenchError) ExitCode() int {
	return ExitFailure
}

// New creates a new runtime error.
func New(message string) *BenchError {
	return &BenchError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *BenchError {
	return New(fmt.Sprintf(format, args...))
}

// CommandLine creates a new command-line parsing error.
func CommandLine(message string) *BenchError {
	return &BenchError{
		Kind:    KindCommandLine,
		Message: message,
	}
}

// CommandLinef creates a new command-line parsing error with formatting.
func CommandLinef(format string, args ...interface{}) *BenchError {
	return CommandLine(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *BenchError {
	return &BenchError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *BenchError {
	return Config(fmt.Sprintf(format, args...))
}

// Docs creates an error for documentation content that breaks the docs protocol.
func Docs(message string) *BenchError {
	return &BenchError{
		Kind:    KindDocs,
		Message: message,
	}
}

// Docsf creates a documentation error with formatting.
func Docsf(format string, args ...interface{}) *BenchError {
	return Docs(fmt.Sprintf(format, args...))
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *BenchError {
	kind := KindRuntime
	if be, ok := err.(*BenchError); ok {
		kind = be.Kind
	}
	return &BenchError{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// NotFound creates a not found error.
func NotFound(what, name string) *BenchError {
	return &BenchError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found: %s", what, name),
	}
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if _, ok := err.(*FatalError); ok {
		return ExitFatal
	}
	if be, ok := err.(*BenchError); ok {
		return be.ExitCode()
	}
	return ExitFailure
}

// FatalError is a framework contract violation. It is raised with panic and
// recovered only by the driver, which reports it and terminates the run.
type FatalError struct {
	Message string
}

func (e *FatalError) Error() string {
	return e.Message
}

// Fatalf raises a fatal developer error.
func Fatalf(format string, args ...interface{}) {
	panic(&FatalError{Message: fmt.Sprintf(format, args...)})
}

// Recover converts a FatalError panic into a returned error. Other panics are re-raised.
// It must be called directly from a deferred function.
func Recover(r interface{}) error {
	if r == nil {
		return nil
	}
	if fe, ok := r.(*FatalError); ok {
		return fe
	}
	panic(r)
}

// Catch runs fn and returns the FatalError it raised, if any.
func Catch(fn func()) (err error) {
	defer func() {
		err = Recover(recover())
	}()
	fn()
	return nil
}

var warningSink io.Writer = os.Stderr

// SetWarningOutput redirects developer warnings and returns the previous sink.
func SetWarningOutput(w io.Writer) io.Writer {
	prev := warningSink
	warningSink = w
	return prev
}

// Warnf reports a non-fatal developer warning.
func Warnf(format string, args ...interface{}) {
	fmt.Fprintf(warningSink, "DEVELOPER_WARNING: "+format+"\n", args...)
}
