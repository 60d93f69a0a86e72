package libinput

import (
	"strings"
	"unicode/utf8"
)

// Capability is a device capability bit.
type Capability uint32

const (
	CapKeyboard Capability = 1 << iota
	CapPointer
	CapTouch
	CapTabletTool
	CapTabletPad
	CapGesture
	CapSwitch
)

// native capability enum values, in the same order as the bits above
var nativeCapabilities = [...]struct {
	native uint32
	cap    Capability
	name   string
}{
	{0, CapKeyboard, "keyboard"},
	{1, CapPointer, "pointer"},
	{2, CapTouch, "touch"},
	{3, CapTabletTool, "tablet-tool"},
	{4, CapTabletPad, "tablet-pad"},
	{5, CapGesture, "gesture"},
	{6, CapSwitch, "switch"},
}

// Has reports whether every bit in c is set.
func (set Capability) Has(c Capability) bool { return set&c == c }

// Names lists the set capabilities in a fixed order.
func (set Capability) Names() []string {
	var names []string
	for _, nc := range nativeCapabilities {
		if set.Has(nc.cap) {
			names = append(names, nc.name)
		}
	}
	return names
}

func (set Capability) String() string {
	return strings.Join(set.Names(), ",")
}

// DeviceInfo is the snapshot of the device that produced an event. It is
// rebuilt for every event; compare by value, not identity.
type DeviceInfo struct {
	Name         string
	Sysname      string
	PhysicalSeat string
	LogicalSeat  string
	VendorID     uint32
	ProductID    uint32
	Capabilities Capability
}

// deviceInfo reads the device and seat reachable from an event. Text fields
// that are not valid UTF-8 are repaired with U+FFFD rather than failing.
func (d *Decoder) deviceInfo(raw RawEvent) DeviceInfo {
	dev := raw.Device()
	if dev == nil {
		return DeviceInfo{}
	}

	info := DeviceInfo{
		Name:      d.text("name", dev.Name()),
		Sysname:   d.text("sysname", dev.Sysname()),
		VendorID:  dev.VendorID(),
		ProductID: dev.ProductID(),
	}
	for _, nc := range nativeCapabilities {
		if dev.HasCapability(nc.native) {
			info.Capabilities |= nc.cap
		}
	}
	if seat := dev.Seat(); seat != nil {
		info.PhysicalSeat = d.text("physical_seat", seat.PhysicalName())
		info.LogicalSeat = d.text("logical_seat", seat.LogicalName())
	}
	return info
}

func (d *Decoder) text(field, s string) string {
	if utf8.ValidString(s) {
		return s
	}
	d.log.Debug("device field is not valid UTF-8", "field", field, "raw", []byte(s))
	return strings.ToValidUTF8(s, string(utf8.RuneError))
}
