// Package gpubench provides public constants for tools driving benchmark binaries.
package gpubench

// Exit codes returned by every benchmark binary.
// These constants allow external tools to check exit codes symbolically
// rather than using magic numbers.
const (
	// ExitSuccess indicates a completed run, including help, version and docs modes.
	ExitSuccess = 0

	// ExitFailure indicates a command-line error, an unknown test case,
	// documentation content breaking the docs protocol or a failed test.
	ExitFailure = 1

	// ExitFatal indicates a developer error detected by the framework.
	ExitFatal = 2
)
