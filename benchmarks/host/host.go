// Package host holds reference scenarios that run on the host CPU.
//
// They are registered for the OpenMP API, the host fallback device, and need
// no GPU driver, so a host-only build can exercise the whole engine.
package host

import (
	"github.com/AndreyAkinshin/gpubench/internal/testcase"
)

// Register adds every host scenario to r.
func Register(r *testcase.Registry) {
	r.Register(newHostMemcpy())
	r.Register(newTimerResolution())
	r.Register(newCpuInstructionCount())
}
