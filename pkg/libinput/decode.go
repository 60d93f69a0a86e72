package libinput

import (
	"fmt"
	"log/slog"

	"github.com/breeze-rmm/inputstream/internal/logging"
)

// Decoder turns native events into Event values. It holds no per-event
// state and may be reused for any number of events.
type Decoder struct {
	log       *slog.Logger
	transform Transform
}

// NewDecoder returns a Decoder. A nil logger uses the package logger; a
// zero Transform disables screen mapping.
func NewDecoder(logger *slog.Logger, t Transform) *Decoder {
	if logger == nil {
		logger = log
	}
	return &Decoder{log: logger, transform: t}
}

// Decode consumes raw and returns the matching Event. raw is destroyed
// exactly once before Decode returns, whichever branch runs. A native event
// of type none means the native layer broke its contract; Decode panics
// with an error wrapping ErrProtocolViolation.
func (d *Decoder) Decode(raw RawEvent) Event {
	defer raw.Destroy()

	tag := raw.Type()
	if tag == typeNone {
		panic(fmt.Errorf("%w: refusing to decode further events from this context", ErrProtocolViolation))
	}

	h := Header{DeviceInfo: d.deviceInfo(raw)}

	switch tag {
	case typeDeviceAdded:
		return DeviceAdded{h}
	case typeDeviceRemoved:
		return DeviceRemoved{h}

	case typeKeyboardKey:
		k := raw.Keyboard()
		h.Timestamp = k.TimeUsec()
		return KeyboardInput{Header: h, Key: k.Key(), State: state(k.KeyState()), SeatKeyCount: k.SeatKeyCount()}

	case typePointerMotion, typePointerMotionAbsolute, typePointerButton, typePointerAxis,
		typePointerScrollWheel, typePointerScrollFinger, typePointerScrollContinuous:
		return d.decodePointer(tag, h, raw.Pointer())

	case typeTouchDown, typeTouchUp, typeTouchMotion, typeTouchCancel, typeTouchFrame:
		return d.decodeTouch(tag, h, raw.Touch())

	case typeGestureSwipeBegin, typeGestureSwipeUpdate, typeGestureSwipeEnd,
		typeGesturePinchBegin, typeGesturePinchUpdate, typeGesturePinchEnd,
		typeGestureHoldBegin, typeGestureHoldEnd:
		return decodeGesture(tag, h, raw.Gesture())

	case typeTabletToolAxis, typeTabletToolProximity, typeTabletToolTip, typeTabletToolButton:
		return d.decodeTabletTool(tag, h, raw.TabletTool())

	case typeTabletPadButton, typeTabletPadRing, typeTabletPadStrip, typeTabletPadKey, typeTabletPadDial:
		return decodeTabletPad(tag, h, raw.TabletPad())

	case typeSwitchToggle:
		s := raw.Switch()
		h.Timestamp = s.TimeUsec()
		return SwitchToggle{Header: h, Switch: Switch(s.Switch()), On: s.SwitchState() == 1}
	}

	d.log.Debug("unrecognized event type", "type", tag, logging.KeyDevice, h.DeviceInfo.Sysname)
	return Unknown{Header: h, Type: tag}
}

func (d *Decoder) decodePointer(tag uint32, h Header, p RawPointer) Event {
	h.Timestamp = p.TimeUsec()

	switch tag {
	case typePointerMotion:
		return PointerMotion{
			Header:          h,
			Dx:              p.Dx(),
			Dy:              p.Dy(),
			DxUnaccelerated: p.DxUnaccelerated(),
			DyUnaccelerated: p.DyUnaccelerated(),
		}

	case typePointerMotionAbsolute:
		ev := PointerMotionAbsolute{Header: h, X: p.AbsoluteX(), Y: p.AbsoluteY()}
		if d.transform.enabled() {
			ev.Screen = ScreenPoint{
				X:     p.AbsoluteXTransformed(d.transform.Width),
				Y:     p.AbsoluteYTransformed(d.transform.Height),
				Valid: true,
			}
		}
		return ev

	case typePointerButton:
		return PointerButton{Header: h, Button: p.Button(), State: state(p.ButtonState()), SeatButtonCount: p.SeatButtonCount()}

	case typePointerAxis:
		return PointerAxis{
			Header:     h,
			Source:     AxisSource(p.AxisSource()),
			Vertical:   pointerAxis(p, axisScrollVertical, p.AxisValue),
			Horizontal: pointerAxis(p, axisScrollHorizontal, p.AxisValue),
		}
	}

	ev := PointerScroll{
		Header:     h,
		Vertical:   pointerAxis(p, axisScrollVertical, p.ScrollValue),
		Horizontal: pointerAxis(p, axisScrollHorizontal, p.ScrollValue),
	}
	switch tag {
	case typePointerScrollWheel:
		ev.Source = SourceWheel
		ev.VerticalV120 = pointerAxis(p, axisScrollVertical, p.ScrollValueV120)
		ev.HorizontalV120 = pointerAxis(p, axisScrollHorizontal, p.ScrollValueV120)
	case typePointerScrollFinger:
		ev.Source = SourceFinger
	default:
		ev.Source = SourceContinuous
	}
	return ev
}

// pointerAxis asks whether the axis is present before reading it; reading
// an absent axis is undefined in the native API.
func pointerAxis(p RawPointer, axis uint32, read func(uint32) float64) AxisValue {
	if !p.HasAxis(axis) {
		return AxisValue{}
	}
	return Axis(read(axis))
}

func (d *Decoder) decodeTouch(tag uint32, h Header, t RawTouch) Event {
	h.Timestamp = t.TimeUsec()

	switch tag {
	case typeTouchFrame:
		return TouchFrame{h}
	case typeTouchUp:
		return TouchUp{Header: h, Slot: t.Slot(), SeatSlot: t.SeatSlot()}
	case typeTouchCancel:
		return TouchCancel{Header: h, Slot: t.Slot(), SeatSlot: t.SeatSlot()}
	}

	var screen ScreenPoint
	if d.transform.enabled() {
		screen = ScreenPoint{X: t.XTransformed(d.transform.Width), Y: t.YTransformed(d.transform.Height), Valid: true}
	}
	if tag == typeTouchDown {
		return TouchDown{Header: h, Slot: t.Slot(), SeatSlot: t.SeatSlot(), X: t.X(), Y: t.Y(), Screen: screen}
	}
	return TouchMotion{Header: h, Slot: t.Slot(), SeatSlot: t.SeatSlot(), X: t.X(), Y: t.Y(), Screen: screen}
}

func decodeGesture(tag uint32, h Header, g RawGesture) Event {
	h.Timestamp = g.TimeUsec()
	fingers := g.FingerCount()

	switch tag {
	case typeGestureSwipeBegin:
		return GestureSwipeBegin{Header: h, Fingers: fingers}
	case typeGestureSwipeUpdate:
		return GestureSwipeUpdate{Header: h, Fingers: fingers, GestureDelta: gestureDelta(g)}
	case typeGestureSwipeEnd:
		return GestureSwipeEnd{Header: h, Fingers: fingers, Cancelled: g.Cancelled()}
	case typeGesturePinchBegin:
		return GesturePinchBegin{Header: h, Fingers: fingers}
	case typeGesturePinchUpdate:
		return GesturePinchUpdate{
			Header:       h,
			Fingers:      fingers,
			GestureDelta: gestureDelta(g),
			Scale:        g.Scale(),
			AngleDelta:   g.AngleDelta(),
		}
	case typeGesturePinchEnd:
		return GesturePinchEnd{Header: h, Fingers: fingers, Cancelled: g.Cancelled(), Scale: g.Scale()}
	case typeGestureHoldBegin:
		return GestureHoldBegin{Header: h, Fingers: fingers}
	default:
		return GestureHoldEnd{Header: h, Fingers: fingers, Cancelled: g.Cancelled()}
	}
}

func gestureDelta(g RawGesture) GestureDelta {
	return GestureDelta{
		Dx:              g.Dx(),
		Dy:              g.Dy(),
		DxUnaccelerated: g.DxUnaccelerated(),
		DyUnaccelerated: g.DyUnaccelerated(),
	}
}

func (d *Decoder) decodeTabletTool(tag uint32, h Header, t RawTabletTool) Event {
	h.Timestamp = t.TimeUsec()

	s := ToolState{
		Tool:        ToolType(t.ToolType()),
		Serial:      t.Serial(),
		X:           t.X(),
		Y:           t.Y(),
		Pressure:    toolAxis(t, toolAxisPressure),
		Distance:    toolAxis(t, toolAxisDistance),
		TiltX:       toolAxis(t, toolAxisTiltX),
		TiltY:       toolAxis(t, toolAxisTiltY),
		Rotation:    toolAxis(t, toolAxisRotation),
		Slider:      toolAxis(t, toolAxisSlider),
		Wheel:       toolAxis(t, toolAxisWheel),
		InProximity: t.ProximityState() == 1,
		TipDown:     t.TipState() == 1,
	}
	if d.transform.enabled() {
		s.Screen = ScreenPoint{X: t.XTransformed(d.transform.Width), Y: t.YTransformed(d.transform.Height), Valid: true}
	}

	switch tag {
	case typeTabletToolProximity:
		return TabletToolProximity{Header: h, ToolState: s}
	case typeTabletToolTip:
		return TabletToolTip{Header: h, ToolState: s}
	case typeTabletToolButton:
		return TabletToolButton{Header: h, ToolState: s, Button: t.Button(), State: state(t.ButtonState())}
	default:
		return TabletToolAxis{Header: h, ToolState: s}
	}
}

func toolAxis(t RawTabletTool, axis uint32) AxisValue {
	if !t.HasAxis(axis) {
		return AxisValue{}
	}
	return Axis(t.Axis(axis))
}

func decodeTabletPad(tag uint32, h Header, p RawTabletPad) Event {
	h.Timestamp = p.TimeUsec()

	switch tag {
	case typeTabletPadButton:
		return TabletPadButton{Header: h, Button: p.ButtonNumber(), State: state(p.ButtonState()), Mode: p.Mode()}
	case typeTabletPadRing:
		return TabletPadRing{Header: h, Number: p.RingNumber(), Position: p.RingPosition(), Source: PadSource(p.RingSource()), Mode: p.Mode()}
	case typeTabletPadStrip:
		return TabletPadStrip{Header: h, Number: p.StripNumber(), Position: p.StripPosition(), Source: PadSource(p.StripSource()), Mode: p.Mode()}
	case typeTabletPadKey:
		return TabletPadKey{Header: h, Key: p.Key(), State: state(p.KeyState())}
	default:
		return TabletPadDial{h}
	}
}

func state(v uint32) State {
	if v == 1 {
		return Pressed
	}
	return Released
}
