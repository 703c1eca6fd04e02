//go:build !linux

package cpucounter

// Counter is unavailable on this platform.
type Counter struct{}

// Open always fails with ErrUnsupported.
func Open() (*Counter, error) {
	return nil, ErrUnsupported
}

func (c *Counter) Start() error          { return ErrUnsupported }
func (c *Counter) Stop() (uint64, error) { return 0, ErrUnsupported }
func (c *Counter) Close() error          { return nil }
