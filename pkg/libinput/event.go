package libinput

import (
	"fmt"
	"strconv"
)

// Kind identifies an Event variant.
type Kind int

const (
	KindUnknown Kind = iota
	KindDeviceAdded
	KindDeviceRemoved
	KindKeyboardKey
	KindPointerMotion
	KindPointerMotionAbsolute
	KindPointerButton
	KindPointerAxis
	KindPointerScroll
	KindTouchDown
	KindTouchUp
	KindTouchMotion
	KindTouchCancel
	KindTouchFrame
	KindGestureSwipeBegin
	KindGestureSwipeUpdate
	KindGestureSwipeEnd
	KindGesturePinchBegin
	KindGesturePinchUpdate
	KindGesturePinchEnd
	KindGestureHoldBegin
	KindGestureHoldEnd
	KindTabletToolAxis
	KindTabletToolProximity
	KindTabletToolTip
	KindTabletToolButton
	KindTabletPadButton
	KindTabletPadRing
	KindTabletPadStrip
	KindTabletPadKey
	KindTabletPadDial
	KindSwitchToggle
)

var kindNames = [...]string{
	KindUnknown:               "unknown",
	KindDeviceAdded:           "device-added",
	KindDeviceRemoved:         "device-removed",
	KindKeyboardKey:           "keyboard-key",
	KindPointerMotion:         "pointer-motion",
	KindPointerMotionAbsolute: "pointer-motion-absolute",
	KindPointerButton:         "pointer-button",
	KindPointerAxis:           "pointer-axis",
	KindPointerScroll:         "pointer-scroll",
	KindTouchDown:             "touch-down",
	KindTouchUp:               "touch-up",
	KindTouchMotion:           "touch-motion",
	KindTouchCancel:           "touch-cancel",
	KindTouchFrame:            "touch-frame",
	KindGestureSwipeBegin:     "gesture-swipe-begin",
	KindGestureSwipeUpdate:    "gesture-swipe-update",
	KindGestureSwipeEnd:       "gesture-swipe-end",
	KindGesturePinchBegin:     "gesture-pinch-begin",
	KindGesturePinchUpdate:    "gesture-pinch-update",
	KindGesturePinchEnd:       "gesture-pinch-end",
	KindGestureHoldBegin:      "gesture-hold-begin",
	KindGestureHoldEnd:        "gesture-hold-end",
	KindTabletToolAxis:        "tablet-tool-axis",
	KindTabletToolProximity:   "tablet-tool-proximity",
	KindTabletToolTip:         "tablet-tool-tip",
	KindTabletToolButton:      "tablet-tool-button",
	KindTabletPadButton:       "tablet-pad-button",
	KindTabletPadRing:         "tablet-pad-ring",
	KindTabletPadStrip:        "tablet-pad-strip",
	KindTabletPadKey:          "tablet-pad-key",
	KindTabletPadDial:         "tablet-pad-dial",
	KindSwitchToggle:          "switch-toggle",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Event is one decoded input event. Exactly one concrete type below backs
// each value; switch on the type (or Kind) to read the payload. All fields
// are plain values, so two events compare equal with == when their fields do.
type Event interface {
	Kind() Kind
	Device() DeviceInfo
	// TimeUsec is the event timestamp in microseconds, 0 for device events.
	TimeUsec() uint64
	// Time is the event timestamp in milliseconds.
	Time() uint64

	isEvent()
}

// Header carries the fields every event has.
type Header struct {
	DeviceInfo DeviceInfo
	Timestamp  uint64 // microseconds
}

func (h Header) Device() DeviceInfo { return h.DeviceInfo }
func (h Header) TimeUsec() uint64   { return h.Timestamp }
func (h Header) Time() uint64       { return h.Timestamp / 1000 }
func (Header) isEvent()             {}

// State is a key or button state.
type State uint8

const (
	Released State = 0
	Pressed  State = 1
)

func (s State) String() string {
	if s == Pressed {
		return "pressed"
	}
	return "released"
}

// AxisValue is a delta that may be absent. A present zero is a real reading
// and differs from an absent axis.
type AxisValue struct {
	Value float64
	Valid bool
}

// Axis returns a present AxisValue.
func Axis(v float64) AxisValue { return AxisValue{Value: v, Valid: true} }

// Get returns the value and whether it is present.
func (a AxisValue) Get() (float64, bool) { return a.Value, a.Valid }

func (a AxisValue) String() string {
	if !a.Valid {
		return "-"
	}
	return strconv.FormatFloat(a.Value, 'f', 2, 64)
}

// Transform asks the decoder to also report absolute positions mapped onto a
// target of the given size. The zero value disables the mapping.
type Transform struct {
	Width, Height uint32
}

func (t Transform) enabled() bool { return t.Width > 0 && t.Height > 0 }

// ScreenPoint is an absolute position mapped through a Transform. Valid is
// false when no Transform was requested.
type ScreenPoint struct {
	X, Y  float64
	Valid bool
}

// AxisSource is the physical source of a scroll event.
type AxisSource uint8

const (
	SourceUnknown    AxisSource = 0
	SourceWheel      AxisSource = 1
	SourceFinger     AxisSource = 2
	SourceContinuous AxisSource = 3
	SourceWheelTilt  AxisSource = 4
)

func (s AxisSource) String() string {
	switch s {
	case SourceWheel:
		return "wheel"
	case SourceFinger:
		return "finger"
	case SourceContinuous:
		return "continuous"
	case SourceWheelTilt:
		return "wheel-tilt"
	default:
		return "unknown"
	}
}

type DeviceAdded struct{ Header }
type DeviceRemoved struct{ Header }

func (DeviceAdded) Kind() Kind   { return KindDeviceAdded }
func (DeviceRemoved) Kind() Kind { return KindDeviceRemoved }

type KeyboardInput struct {
	Header
	Key          uint32
	State        State
	SeatKeyCount uint32
}

func (KeyboardInput) Kind() Kind { return KindKeyboardKey }

type PointerMotion struct {
	Header
	Dx, Dy                           float64
	DxUnaccelerated, DyUnaccelerated float64
}

func (PointerMotion) Kind() Kind { return KindPointerMotion }

// PointerMotionAbsolute positions are in device coordinates (mm).
type PointerMotionAbsolute struct {
	Header
	X, Y   float64
	Screen ScreenPoint
}

func (PointerMotionAbsolute) Kind() Kind { return KindPointerMotionAbsolute }

type PointerButton struct {
	Header
	Button          uint32
	State           State
	SeatButtonCount uint32
}

func (PointerButton) Kind() Kind { return KindPointerButton }

type PointerAxis struct {
	Header
	Source     AxisSource
	Vertical   AxisValue
	Horizontal AxisValue
}

func (PointerAxis) Kind() Kind { return KindPointerAxis }

// PointerScroll is the high-resolution scroll event family. V120 values are
// only reported for wheel sources.
type PointerScroll struct {
	Header
	Source         AxisSource
	Vertical       AxisValue
	Horizontal     AxisValue
	VerticalV120   AxisValue
	HorizontalV120 AxisValue
}

func (PointerScroll) Kind() Kind { return KindPointerScroll }

type TouchDown struct {
	Header
	Slot, SeatSlot int32
	X, Y           float64
	Screen         ScreenPoint
}

type TouchMotion struct {
	Header
	Slot, SeatSlot int32
	X, Y           float64
	Screen         ScreenPoint
}

type TouchUp struct {
	Header
	Slot, SeatSlot int32
}

type TouchCancel struct {
	Header
	Slot, SeatSlot int32
}

type TouchFrame struct{ Header }

func (TouchDown) Kind() Kind   { return KindTouchDown }
func (TouchMotion) Kind() Kind { return KindTouchMotion }
func (TouchUp) Kind() Kind     { return KindTouchUp }
func (TouchCancel) Kind() Kind { return KindTouchCancel }
func (TouchFrame) Kind() Kind  { return KindTouchFrame }

// GestureDelta is the motion carried by swipe and pinch updates.
type GestureDelta struct {
	Dx, Dy                           float64
	DxUnaccelerated, DyUnaccelerated float64
}

type GestureSwipeBegin struct {
	Header
	Fingers int
}

type GestureSwipeUpdate struct {
	Header
	Fingers int
	GestureDelta
}

type GestureSwipeEnd struct {
	Header
	Fingers   int
	Cancelled bool
}

type GesturePinchBegin struct {
	Header
	Fingers int
}

type GesturePinchUpdate struct {
	Header
	Fingers int
	GestureDelta
	Scale      float64
	AngleDelta float64
}

type GesturePinchEnd struct {
	Header
	Fingers   int
	Cancelled bool
	Scale     float64
}

type GestureHoldBegin struct {
	Header
	Fingers int
}

type GestureHoldEnd struct {
	Header
	Fingers   int
	Cancelled bool
}

func (GestureSwipeBegin) Kind() Kind  { return KindGestureSwipeBegin }
func (GestureSwipeUpdate) Kind() Kind { return KindGestureSwipeUpdate }
func (GestureSwipeEnd) Kind() Kind    { return KindGestureSwipeEnd }
func (GesturePinchBegin) Kind() Kind  { return KindGesturePinchBegin }
func (GesturePinchUpdate) Kind() Kind { return KindGesturePinchUpdate }
func (GesturePinchEnd) Kind() Kind    { return KindGesturePinchEnd }
func (GestureHoldBegin) Kind() Kind   { return KindGestureHoldBegin }
func (GestureHoldEnd) Kind() Kind     { return KindGestureHoldEnd }

// ToolType is the kind of tablet tool in use.
type ToolType uint8

const (
	ToolUnknown  ToolType = 0
	ToolPen      ToolType = 1
	ToolEraser   ToolType = 2
	ToolBrush    ToolType = 3
	ToolPencil   ToolType = 4
	ToolAirbrush ToolType = 5
	ToolMouse    ToolType = 6
	ToolLens     ToolType = 7
	ToolTotem    ToolType = 8
)

var toolNames = [...]string{"unknown", "pen", "eraser", "brush", "pencil", "airbrush", "mouse", "lens", "totem"}

func (t ToolType) String() string {
	if int(t) < len(toolNames) {
		return toolNames[t]
	}
	return fmt.Sprintf("tool(%d)", uint8(t))
}

// ToolState is the tablet tool snapshot shared by all tablet tool events.
// Optional axes are only Valid when the tool has them.
type ToolState struct {
	Tool     ToolType
	Serial   uint64
	X, Y     float64
	Screen   ScreenPoint
	Pressure AxisValue
	Distance AxisValue
	TiltX    AxisValue
	TiltY    AxisValue
	Rotation AxisValue
	Slider   AxisValue
	Wheel    AxisValue
	// InProximity and TipDown reflect the state carried by the event.
	InProximity bool
	TipDown     bool
}

type TabletToolAxis struct {
	Header
	ToolState
}

type TabletToolProximity struct {
	Header
	ToolState
}

type TabletToolTip struct {
	Header
	ToolState
}

type TabletToolButton struct {
	Header
	ToolState
	Button uint32
	State  State
}

func (TabletToolAxis) Kind() Kind      { return KindTabletToolAxis }
func (TabletToolProximity) Kind() Kind { return KindTabletToolProximity }
func (TabletToolTip) Kind() Kind       { return KindTabletToolTip }
func (TabletToolButton) Kind() Kind    { return KindTabletToolButton }

// PadSource is the source of a ring or strip event.
type PadSource uint8

const (
	PadSourceUnknown PadSource = 1
	PadSourceFinger  PadSource = 2
)

func (s PadSource) String() string {
	if s == PadSourceFinger {
		return "finger"
	}
	return "unknown"
}

type TabletPadButton struct {
	Header
	Button uint32
	State  State
	Mode   uint32
}

type TabletPadRing struct {
	Header
	Number   uint32
	Position float64 // degrees, -1 when the finger lifts
	Source   PadSource
	Mode     uint32
}

type TabletPadStrip struct {
	Header
	Number   uint32
	Position float64 // normalized [0, 1], -1 when the finger lifts
	Source   PadSource
	Mode     uint32
}

type TabletPadKey struct {
	Header
	Key   uint32
	State State
}

// TabletPadDial is recognized but carries no payload.
type TabletPadDial struct{ Header }

func (TabletPadButton) Kind() Kind { return KindTabletPadButton }
func (TabletPadRing) Kind() Kind   { return KindTabletPadRing }
func (TabletPadStrip) Kind() Kind  { return KindTabletPadStrip }
func (TabletPadKey) Kind() Kind    { return KindTabletPadKey }
func (TabletPadDial) Kind() Kind   { return KindTabletPadDial }

// Switch identifies a hardware switch.
type Switch uint8

const (
	SwitchLid        Switch = 1
	SwitchTabletMode Switch = 2
)

func (s Switch) String() string {
	switch s {
	case SwitchLid:
		return "lid"
	case SwitchTabletMode:
		return "tablet-mode"
	default:
		return fmt.Sprintf("switch(%d)", uint8(s))
	}
}

type SwitchToggle struct {
	Header
	Switch Switch
	On     bool
}

func (SwitchToggle) Kind() Kind { return KindSwitchToggle }

// Unknown is an event of a native type this package does not decode.
type Unknown struct {
	Header
	Type uint32
}

func (Unknown) Kind() Kind { return KindUnknown }
