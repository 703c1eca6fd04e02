package enum

import (
	"github.com/AndreyAkinshin/gpubench/internal/argument"
)

// DeviceSelection is a bit field of host, root device and sub-devices.
type DeviceSelection uint32

const (
	DeviceUnknown DeviceSelection = 0
	DeviceHost    DeviceSelection = 1 << 0
	DeviceRoot    DeviceSelection = 1 << 1
	DeviceTile0   DeviceSelection = 1 << 2
	DeviceTile1   DeviceSelection = 1 << 3
	DeviceTile2   DeviceSelection = 1 << 4
	DeviceTile3   DeviceSelection = 1 << 5
)

// DeviceSelectionCodec names each single device.
var DeviceSelectionCodec = argument.NewTable("device selection", DeviceUnknown,
	argument.EnumEntry[DeviceSelection]{Value: DeviceHost, Name: "Host"},
	argument.EnumEntry[DeviceSelection]{Value: DeviceRoot, Name: "Root"},
	argument.EnumEntry[DeviceSelection]{Value: DeviceTile0, Name: "Tile0"},
	argument.EnumEntry[DeviceSelection]{Value: DeviceTile1, Name: "Tile1"},
	argument.EnumEntry[DeviceSelection]{Value: DeviceTile2, Name: "Tile2"},
	argument.EnumEntry[DeviceSelection]{Value: DeviceTile3, Name: "Tile3"},
)

var subDevices = []DeviceSelection{DeviceTile0, DeviceTile1, DeviceTile2, DeviceTile3}

// Has reports whether every bit of device is selected.
func (d DeviceSelection) Has(device DeviceSelection) bool {
	return device != DeviceUnknown && d&device == device
}

// WithoutHost clears the host bit.
func (d DeviceSelection) WithoutHost() DeviceSelection {
	return d &^ DeviceHost
}

// Count returns the number of selected devices, host included.
func (d DeviceSelection) Count() int {
	n := 0
	for _, v := range DeviceSelectionCodec.Values() {
		if d.Has(v) {
			n++
		}
	}
	return n
}

// HasAnySubDevice reports whether any tile is selected.
func (d DeviceSelection) HasAnySubDevice() bool {
	for _, tile := range subDevices {
		if d.Has(tile) {
			return true
		}
	}
	return false
}

// SubDeviceIndex returns the tile index of a single-tile selection.
func (d DeviceSelection) SubDeviceIndex() (int, bool) {
	for i, tile := range subDevices {
		if d == tile {
			return i, true
		}
	}
	return 0, false
}

// UsmPlacementRule returns an extra check for USM allocations: at most one
// GPU device, and host-only, device-only or shared placement only when allowed.
func UsmPlacementRule(allowHost, allowDevice, allowShared bool) func(DeviceSelection) bool {
	return func(d DeviceSelection) bool {
		gpus := d.WithoutHost().Count()
		if gpus > 1 {
			return false
		}
		hasHost := d.Has(DeviceHost)
		hasDevice := gpus == 1
		switch {
		case hasHost && hasDevice:
			return allowShared
		case hasHost:
			return allowHost
		case hasDevice:
			return allowDevice
		}
		return false
	}
}
