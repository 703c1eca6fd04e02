// Package cpucounter counts retired CPU instructions of the calling thread.
//
// A Counter measures only the OS thread that opened it, so callers lock their
// goroutine to the thread for the counter's lifetime.
package cpucounter

import (
	"github.com/AndreyAkinshin/gpubench/internal/errors"
)

// ErrUnsupported is returned when the platform offers no instruction counter.
var ErrUnsupported = errors.New("cpu hardware counters are not supported on this platform")
