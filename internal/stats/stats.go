// Package stats collects timed samples pushed by a running scenario and
// renders their aggregates.
//
// Samples are grouped by an optional free-text label. The unit and type of a
// label are fixed by its first push and a label never holds more samples than
// the configured iteration count; breaking either rule is a developer error.
package stats

import (
	"io"
	"math"
	"os"
	"sort"
	"time"

	"github.com/AndreyAkinshin/gpubench/internal/errors"
)

// Sink is the push-only interface handed to scenario implementations.
type Sink interface {
	// PushValue records a duration converted to Nanoseconds, Microseconds or Latency.
	PushValue(d time.Duration, unit Unit, typ Type, label string)
	// PushBandwidth records size/d in GB/s. The unit must be GigabytesPerSecond.
	PushBandwidth(d time.Duration, size uint64, unit Unit, typ Type, label string)
	PushPercentage(value float64, unit Unit, typ Type, label string)
	PushCpuCounter(count uint64, unit Unit, typ Type, label string)
	PushEnergy(microJoules uint64, unit Unit, typ Type, label string)
	PushPower(watts float64, unit Unit, typ Type, label string)
	// PushUnitAndType declares what a nooped run would have measured.
	PushUnitAndType(unit Unit, typ Type)
	IsEmpty() bool
	IsFull() bool
}

// Options configure one Statistics instance.
type Options struct {
	Iterations          int
	Warmup              int
	PrintType           PrintType
	DoNotPrintBandwidth bool
	NameColumnWidth     int
}

// Samples is the bucket of values pushed under one label.
type Samples struct {
	Unit   Unit
	Type   Type
	Values []float64
}

// Statistics accumulates the samples of one test-case run.
type Statistics struct {
	opts            Options
	out             io.Writer
	samples         map[string]*Samples
	noop            Samples
	reachedInfinity bool
}

// New creates an empty collector writing to out. A nil out writes to stdout.
func New(opts Options, out io.Writer) *Statistics {
	if out == nil {
		out = os.Stdout
	}
	if opts.NameColumnWidth <= 0 {
		opts.NameColumnWidth = DefaultNameColumnWidth
	}
	return &Statistics{
		opts:    opts,
		out:     out,
		samples: make(map[string]*Samples),
	}
}

func (s *Statistics) overrideUnit(unit Unit) Unit {
	if unit == GigabytesPerSecond && s.opts.DoNotPrintBandwidth {
		return Microseconds
	}
	return unit
}

func (s *Statistics) PushValue(d time.Duration, unit Unit, typ Type, label string) {
	unit = s.overrideUnit(unit)
	seconds := d.Seconds()
	switch unit {
	case Nanoseconds, Latency:
		s.push(seconds*1e9, label, unit, typ)
	case Microseconds:
		s.push(seconds*1e6, label, unit, typ)
	case GigabytesPerSecond:
		errors.Fatalf("buffer size needs to be passed when unit is %s", unit)
	default:
		errors.Fatalf("unknown measurement unit %s", unit)
	}
}

// PushBandwidth records bytes per nanosecond, which equals gigabytes per second.
// With DoNotPrintBandwidth the duration is recorded in microseconds instead.
func (s *Statistics) PushBandwidth(d time.Duration, size uint64, unit Unit, typ Type, label string) {
	if unit != GigabytesPerSecond {
		errors.Fatalf("test is passing size which requires bandwidth calculation, but unit is %s", unit)
	}
	unit = s.overrideUnit(unit)
	seconds := d.Seconds()
	switch unit {
	case Microseconds:
		s.push(seconds*1e6, label, unit, typ)
	case GigabytesPerSecond:
		s.push(float64(size)/(seconds*1e9), label, unit, typ)
	}
}

func (s *Statistics) PushPercentage(value float64, unit Unit, typ Type, label string) {
	if unit != Percentage {
		errors.Fatalf("incorrect measurement unit %s for a percentage", unit)
	}
	s.push(value, label, unit, typ)
}

func (s *Statistics) PushCpuCounter(count uint64, unit Unit, typ Type, label string) {
	if unit != CpuHardwareCounter {
		errors.Fatalf("incorrect measurement unit %s for a cpu counter", unit)
	}
	s.push(float64(count), label, unit, typ)
}

func (s *Statistics) PushEnergy(microJoules uint64, unit Unit, typ Type, label string) {
	if unit != MicroJoules {
		errors.Fatalf("incorrect measurement unit %s for energy", unit)
	}
	s.push(float64(microJoules), label, unit, typ)
}

func (s *Statistics) PushPower(watts float64, unit Unit, typ Type, label string) {
	if unit != Watts {
		errors.Fatalf("incorrect measurement unit %s for power", unit)
	}
	s.push(watts, label, unit, typ)
}

func (s *Statistics) PushUnitAndType(unit Unit, typ Type) {
	s.noop.Unit = s.overrideUnit(unit)
	s.noop.Type = typ
}

func (s *Statistics) push(value float64, label string, unit Unit, typ Type) {
	if unit == UnitUnknown {
		errors.Fatalf("concrete measurement unit has to be specified")
	}
	if typ == TypeUnknown {
		errors.Fatalf("concrete measurement type has to be specified")
	}

	b, ok := s.samples[label]
	if !ok {
		b = &Samples{Unit: unit, Type: typ, Values: make([]float64, 0, s.opts.Iterations)}
		s.samples[label] = b
	}
	if b.Unit != unit {
		errors.Fatalf("different units used for the same measurement %q: %s and %s", label, b.Unit, unit)
	}
	if b.Type != typ {
		errors.Fatalf("different types used for the same measurement %q: %s and %s", label, b.Type, typ)
	}
	if len(b.Values) >= s.opts.Iterations {
		errors.Fatalf("too many values pushed by the test under label %q", label)
	}

	b.Values = append(b.Values, value)
	if value >= math.MaxFloat64 {
		s.reachedInfinity = true
	}
}

// IsEmpty reports whether no value was pushed.
func (s *Statistics) IsEmpty() bool {
	for _, b := range s.samples {
		if len(b.Values) != 0 {
			return false
		}
	}
	return true
}

// IsFull reports whether every label holds exactly the configured number of values.
func (s *Statistics) IsFull() bool {
	if len(s.samples) == 0 {
		errors.Warnf("test did not generate any values")
	}
	for _, b := range s.samples {
		if len(b.Values) != s.opts.Iterations {
			return false
		}
	}
	return true
}

// ReachedInfinity reports whether a value hit the largest representable float.
func (s *Statistics) ReachedInfinity() bool { return s.reachedInfinity }

// Labels returns the labels in rendering order.
func (s *Statistics) Labels() []string {
	labels := make([]string, 0, len(s.samples))
	for label := range s.samples {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Samples returns the bucket for label, or nil.
func (s *Statistics) Samples(label string) *Samples {
	return s.samples[label]
}
