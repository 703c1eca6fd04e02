//go:build linux

package cpucounter

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/AndreyAkinshin/gpubench/internal/errors"
)

// Counter is an open perf event counting user-space instructions.
type Counter struct {
	fd int
}

// Open creates a disabled instruction counter for the calling thread.
func Open() (*Counter, error) {
	attr := unix.PerfEventAttr{
		Type:   unix.PERF_TYPE_HARDWARE,
		Config: unix.PERF_COUNT_HW_INSTRUCTIONS,
		Bits:   unix.PerfBitDisabled | unix.PerfBitExcludeKernel | unix.PerfBitExcludeHv,
	}
	attr.Size = uint32(unsafe.Sizeof(attr))

	fd, err := unix.PerfEventOpen(&attr, 0, -1, -1, unix.PERF_FLAG_FD_CLOEXEC)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("perf_event_open: %v", err))
	}
	return &Counter{fd: fd}, nil
}

// Start resets the count and enables counting.
func (c *Counter) Start() error {
	if err := unix.IoctlSetInt(c.fd, unix.PERF_EVENT_IOC_RESET, 0); err != nil {
		return errors.Wrap(err, "reset instruction counter")
	}
	if err := unix.IoctlSetInt(c.fd, unix.PERF_EVENT_IOC_ENABLE, 0); err != nil {
		return errors.Wrap(err, "enable instruction counter")
	}
	return nil
}

// Stop disables counting and returns the instructions retired since Start.
func (c *Counter) Stop() (uint64, error) {
	if err := unix.IoctlSetInt(c.fd, unix.PERF_EVENT_IOC_DISABLE, 0); err != nil {
		return 0, errors.Wrap(err, "disable instruction counter")
	}
	var buf [8]byte
	n, err := unix.Read(c.fd, buf[:])
	if err != nil {
		return 0, errors.Wrap(err, "read instruction counter")
	}
	if n != len(buf) {
		return 0, errors.Newf("short read from instruction counter: %d bytes", n)
	}
	return binary.NativeEndian.Uint64(buf[:]), nil
}

// Close releases the perf event.
func (c *Counter) Close() error {
	return unix.Close(c.fd)
}
