package enum

import (
	"github.com/AndreyAkinshin/gpubench/internal/argument"
)

// MemoryPlacement is where a scenario allocates a buffer.
type MemoryPlacement int

const (
	PlacementUnknown MemoryPlacement = iota
	PlacementHost
	PlacementDevice
	PlacementShared
	PlacementNonUsm
)

var PlacementCodec = argument.NewTable("usm memory placement", PlacementUnknown,
	argument.EnumEntry[MemoryPlacement]{Value: PlacementHost, Name: "Host"},
	argument.EnumEntry[MemoryPlacement]{Value: PlacementDevice, Name: "Device"},
	argument.EnumEntry[MemoryPlacement]{Value: PlacementShared, Name: "Shared"},
	argument.EnumEntry[MemoryPlacement]{Value: PlacementNonUsm, Name: "non-usm"},
)

func (p MemoryPlacement) String() string {
	if name, ok := PlacementCodec.Serialize(p); ok {
		return name
	}
	return "unknown"
}
