package stats

// Unit is the physical unit of a sample.
type Unit int

const (
	UnitUnknown Unit = iota
	Microseconds
	Nanoseconds
	GigabytesPerSecond
	Latency
	Percentage
	CpuHardwareCounter
	MicroJoules
	Watts
)

func (u Unit) String() string {
	switch u {
	case Microseconds:
		return "[us]"
	case Nanoseconds:
		return "[ns]"
	case GigabytesPerSecond:
		return "[GB/s]"
	case Latency:
		return "[latency ns]"
	case Percentage:
		return "[%]"
	case CpuHardwareCounter:
		return "[count]"
	case MicroJoules:
		return "[uJ]"
	case Watts:
		return "[W]"
	default:
		return "[unknown]"
	}
}

// Type is the timing domain a sample was observed in.
type Type int

const (
	TypeUnknown Type = iota
	Cpu
	Gpu
)

func (t Type) String() string {
	switch t {
	case Cpu:
		return "cpu"
	case Gpu:
		return "gpu"
	default:
		return "unknown"
	}
}

// PrintType selects how results are rendered.
type PrintType int

const (
	PrintDefault PrintType = iota
	PrintDefaultWithVerbose
	PrintCsv
	PrintNoop
)

func (p PrintType) String() string {
	switch p {
	case PrintDefault:
		return "default"
	case PrintDefaultWithVerbose:
		return "verbose"
	case PrintCsv:
		return "csv"
	case PrintNoop:
		return "noop"
	default:
		return "unknown"
	}
}
