//go:build linux && cgo

package libinput

/*
#cgo pkg-config: libinput
#include <libinput.h>
*/
import "C"

type cEvent struct {
	ev *C.struct_libinput_event
}

func (e cEvent) Type() uint32 { return uint32(C.libinput_event_get_type(e.ev)) }

func (e cEvent) Device() RawDevice {
	dev := C.libinput_event_get_device(e.ev)
	if dev == nil {
		return nil
	}
	return cDevice{dev: dev}
}

func (e cEvent) Keyboard() RawKeyboard {
	return cKeyboard{ev: C.libinput_event_get_keyboard_event(e.ev)}
}

func (e cEvent) Pointer() RawPointer {
	return cPointer{ev: C.libinput_event_get_pointer_event(e.ev)}
}

func (e cEvent) Touch() RawTouch {
	return cTouch{ev: C.libinput_event_get_touch_event(e.ev)}
}

func (e cEvent) Gesture() RawGesture {
	return cGesture{ev: C.libinput_event_get_gesture_event(e.ev)}
}

func (e cEvent) TabletTool() RawTabletTool {
	ev := C.libinput_event_get_tablet_tool_event(e.ev)
	return cTabletTool{ev: ev, tool: C.libinput_event_tablet_tool_get_tool(ev)}
}

func (e cEvent) TabletPad() RawTabletPad {
	return cTabletPad{ev: C.libinput_event_get_tablet_pad_event(e.ev)}
}

func (e cEvent) Switch() RawSwitch {
	return cSwitch{ev: C.libinput_event_get_switch_event(e.ev)}
}

func (e cEvent) Destroy() { C.libinput_event_destroy(e.ev) }

type cDevice struct {
	dev *C.struct_libinput_device
}

func (d cDevice) Name() string      { return C.GoString(C.libinput_device_get_name(d.dev)) }
func (d cDevice) Sysname() string   { return C.GoString(C.libinput_device_get_sysname(d.dev)) }
func (d cDevice) VendorID() uint32  { return uint32(C.libinput_device_get_id_vendor(d.dev)) }
func (d cDevice) ProductID() uint32 { return uint32(C.libinput_device_get_id_product(d.dev)) }

func (d cDevice) HasCapability(c uint32) bool {
	return C.libinput_device_has_capability(d.dev, C.enum_libinput_device_capability(c)) != 0
}

func (d cDevice) Seat() RawSeat {
	seat := C.libinput_device_get_seat(d.dev)
	if seat == nil {
		return nil
	}
	return cSeat{seat: seat}
}

type cSeat struct {
	seat *C.struct_libinput_seat
}

func (s cSeat) PhysicalName() string { return C.GoString(C.libinput_seat_get_physical_name(s.seat)) }
func (s cSeat) LogicalName() string  { return C.GoString(C.libinput_seat_get_logical_name(s.seat)) }

type cKeyboard struct {
	ev *C.struct_libinput_event_keyboard
}

func (k cKeyboard) TimeUsec() uint64     { return uint64(C.libinput_event_keyboard_get_time_usec(k.ev)) }
func (k cKeyboard) Key() uint32          { return uint32(C.libinput_event_keyboard_get_key(k.ev)) }
func (k cKeyboard) KeyState() uint32     { return uint32(C.libinput_event_keyboard_get_key_state(k.ev)) }
func (k cKeyboard) SeatKeyCount() uint32 { return uint32(C.libinput_event_keyboard_get_seat_key_count(k.ev)) }

type cPointer struct {
	ev *C.struct_libinput_event_pointer
}

func (p cPointer) TimeUsec() uint64 { return uint64(C.libinput_event_pointer_get_time_usec(p.ev)) }
func (p cPointer) Dx() float64      { return float64(C.libinput_event_pointer_get_dx(p.ev)) }
func (p cPointer) Dy() float64      { return float64(C.libinput_event_pointer_get_dy(p.ev)) }

func (p cPointer) DxUnaccelerated() float64 {
	return float64(C.libinput_event_pointer_get_dx_unaccelerated(p.ev))
}

func (p cPointer) DyUnaccelerated() float64 {
	return float64(C.libinput_event_pointer_get_dy_unaccelerated(p.ev))
}

func (p cPointer) AbsoluteX() float64 { return float64(C.libinput_event_pointer_get_absolute_x(p.ev)) }
func (p cPointer) AbsoluteY() float64 { return float64(C.libinput_event_pointer_get_absolute_y(p.ev)) }

func (p cPointer) AbsoluteXTransformed(width uint32) float64 {
	return float64(C.libinput_event_pointer_get_absolute_x_transformed(p.ev, C.uint32_t(width)))
}

func (p cPointer) AbsoluteYTransformed(height uint32) float64 {
	return float64(C.libinput_event_pointer_get_absolute_y_transformed(p.ev, C.uint32_t(height)))
}

func (p cPointer) Button() uint32      { return uint32(C.libinput_event_pointer_get_button(p.ev)) }
func (p cPointer) ButtonState() uint32 { return uint32(C.libinput_event_pointer_get_button_state(p.ev)) }

func (p cPointer) SeatButtonCount() uint32 {
	return uint32(C.libinput_event_pointer_get_seat_button_count(p.ev))
}

func (p cPointer) AxisSource() uint32 { return uint32(C.libinput_event_pointer_get_axis_source(p.ev)) }

func (p cPointer) HasAxis(axis uint32) bool {
	return C.libinput_event_pointer_has_axis(p.ev, C.enum_libinput_pointer_axis(axis)) != 0
}

func (p cPointer) AxisValue(axis uint32) float64 {
	return float64(C.libinput_event_pointer_get_axis_value(p.ev, C.enum_libinput_pointer_axis(axis)))
}

func (p cPointer) ScrollValue(axis uint32) float64 {
	return float64(C.libinput_event_pointer_get_scroll_value(p.ev, C.enum_libinput_pointer_axis(axis)))
}

func (p cPointer) ScrollValueV120(axis uint32) float64 {
	return float64(C.libinput_event_pointer_get_scroll_value_v120(p.ev, C.enum_libinput_pointer_axis(axis)))
}

type cTouch struct {
	ev *C.struct_libinput_event_touch
}

func (t cTouch) TimeUsec() uint64 { return uint64(C.libinput_event_touch_get_time_usec(t.ev)) }
func (t cTouch) Slot() int32      { return int32(C.libinput_event_touch_get_slot(t.ev)) }
func (t cTouch) SeatSlot() int32  { return int32(C.libinput_event_touch_get_seat_slot(t.ev)) }
func (t cTouch) X() float64       { return float64(C.libinput_event_touch_get_x(t.ev)) }
func (t cTouch) Y() float64       { return float64(C.libinput_event_touch_get_y(t.ev)) }

func (t cTouch) XTransformed(width uint32) float64 {
	return float64(C.libinput_event_touch_get_x_transformed(t.ev, C.uint32_t(width)))
}

func (t cTouch) YTransformed(height uint32) float64 {
	return float64(C.libinput_event_touch_get_y_transformed(t.ev, C.uint32_t(height)))
}

type cGesture struct {
	ev *C.struct_libinput_event_gesture
}

func (g cGesture) TimeUsec() uint64   { return uint64(C.libinput_event_gesture_get_time_usec(g.ev)) }
func (g cGesture) FingerCount() int   { return int(C.libinput_event_gesture_get_finger_count(g.ev)) }
func (g cGesture) Cancelled() bool    { return C.libinput_event_gesture_get_cancelled(g.ev) != 0 }
func (g cGesture) Dx() float64        { return float64(C.libinput_event_gesture_get_dx(g.ev)) }
func (g cGesture) Dy() float64        { return float64(C.libinput_event_gesture_get_dy(g.ev)) }
func (g cGesture) Scale() float64     { return float64(C.libinput_event_gesture_get_scale(g.ev)) }
func (g cGesture) AngleDelta() float64 { return float64(C.libinput_event_gesture_get_angle_delta(g.ev)) }

func (g cGesture) DxUnaccelerated() float64 {
	return float64(C.libinput_event_gesture_get_dx_unaccelerated(g.ev))
}

func (g cGesture) DyUnaccelerated() float64 {
	return float64(C.libinput_event_gesture_get_dy_unaccelerated(g.ev))
}

type cTabletTool struct {
	ev   *C.struct_libinput_event_tablet_tool
	tool *C.struct_libinput_tablet_tool
}

func (t cTabletTool) TimeUsec() uint64 {
	return uint64(C.libinput_event_tablet_tool_get_time_usec(t.ev))
}

func (t cTabletTool) ToolType() uint32 { return uint32(C.libinput_tablet_tool_get_type(t.tool)) }
func (t cTabletTool) Serial() uint64   { return uint64(C.libinput_tablet_tool_get_serial(t.tool)) }
func (t cTabletTool) X() float64       { return float64(C.libinput_event_tablet_tool_get_x(t.ev)) }
func (t cTabletTool) Y() float64       { return float64(C.libinput_event_tablet_tool_get_y(t.ev)) }

func (t cTabletTool) XTransformed(width uint32) float64 {
	return float64(C.libinput_event_tablet_tool_get_x_transformed(t.ev, C.uint32_t(width)))
}

func (t cTabletTool) YTransformed(height uint32) float64 {
	return float64(C.libinput_event_tablet_tool_get_y_transformed(t.ev, C.uint32_t(height)))
}

func (t cTabletTool) HasAxis(axis uint32) bool {
	var has C.int
	switch axis {
	case toolAxisPressure:
		has = C.libinput_tablet_tool_has_pressure(t.tool)
	case toolAxisDistance:
		has = C.libinput_tablet_tool_has_distance(t.tool)
	case toolAxisTiltX, toolAxisTiltY:
		has = C.libinput_tablet_tool_has_tilt(t.tool)
	case toolAxisRotation:
		has = C.libinput_tablet_tool_has_rotation(t.tool)
	case toolAxisSlider:
		has = C.libinput_tablet_tool_has_slider(t.tool)
	case toolAxisWheel:
		has = C.libinput_tablet_tool_has_wheel(t.tool)
	}
	return has != 0
}

func (t cTabletTool) Axis(axis uint32) float64 {
	switch axis {
	case toolAxisPressure:
		return float64(C.libinput_event_tablet_tool_get_pressure(t.ev))
	case toolAxisDistance:
		return float64(C.libinput_event_tablet_tool_get_distance(t.ev))
	case toolAxisTiltX:
		return float64(C.libinput_event_tablet_tool_get_tilt_x(t.ev))
	case toolAxisTiltY:
		return float64(C.libinput_event_tablet_tool_get_tilt_y(t.ev))
	case toolAxisRotation:
		return float64(C.libinput_event_tablet_tool_get_rotation(t.ev))
	case toolAxisSlider:
		return float64(C.libinput_event_tablet_tool_get_slider_position(t.ev))
	case toolAxisWheel:
		return float64(C.libinput_event_tablet_tool_get_wheel_delta(t.ev))
	}
	return 0
}

func (t cTabletTool) ProximityState() uint32 {
	return uint32(C.libinput_event_tablet_tool_get_proximity_state(t.ev))
}

func (t cTabletTool) TipState() uint32 { return uint32(C.libinput_event_tablet_tool_get_tip_state(t.ev)) }
func (t cTabletTool) Button() uint32   { return uint32(C.libinput_event_tablet_tool_get_button(t.ev)) }

func (t cTabletTool) ButtonState() uint32 {
	return uint32(C.libinput_event_tablet_tool_get_button_state(t.ev))
}

type cTabletPad struct {
	ev *C.struct_libinput_event_tablet_pad
}

func (p cTabletPad) TimeUsec() uint64 { return uint64(C.libinput_event_tablet_pad_get_time_usec(p.ev)) }
func (p cTabletPad) Mode() uint32     { return uint32(C.libinput_event_tablet_pad_get_mode(p.ev)) }

func (p cTabletPad) ButtonNumber() uint32 {
	return uint32(C.libinput_event_tablet_pad_get_button_number(p.ev))
}

func (p cTabletPad) ButtonState() uint32 {
	return uint32(C.libinput_event_tablet_pad_get_button_state(p.ev))
}

func (p cTabletPad) RingNumber() uint32 { return uint32(C.libinput_event_tablet_pad_get_ring_number(p.ev)) }

func (p cTabletPad) RingPosition() float64 {
	return float64(C.libinput_event_tablet_pad_get_ring_position(p.ev))
}

func (p cTabletPad) RingSource() uint32 { return uint32(C.libinput_event_tablet_pad_get_ring_source(p.ev)) }

func (p cTabletPad) StripNumber() uint32 {
	return uint32(C.libinput_event_tablet_pad_get_strip_number(p.ev))
}

func (p cTabletPad) StripPosition() float64 {
	return float64(C.libinput_event_tablet_pad_get_strip_position(p.ev))
}

func (p cTabletPad) StripSource() uint32 {
	return uint32(C.libinput_event_tablet_pad_get_strip_source(p.ev))
}

func (p cTabletPad) Key() uint32      { return uint32(C.libinput_event_tablet_pad_get_key(p.ev)) }
func (p cTabletPad) KeyState() uint32 { return uint32(C.libinput_event_tablet_pad_get_key_state(p.ev)) }

type cSwitch struct {
	ev *C.struct_libinput_event_switch
}

func (s cSwitch) TimeUsec() uint64    { return uint64(C.libinput_event_switch_get_time_usec(s.ev)) }
func (s cSwitch) Switch() uint32      { return uint32(C.libinput_event_switch_get_switch(s.ev)) }
func (s cSwitch) SwitchState() uint32 { return uint32(C.libinput_event_switch_get_switch_state(s.ev)) }
