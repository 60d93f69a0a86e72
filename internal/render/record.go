package render

import "github.com/breeze-rmm/inputstream/pkg/libinput"

// Record is the serializable form of an event used by the json and yaml
// formats. Data holds only the fields the event actually carries; absent
// axes are left out.
type Record struct {
	Kind    string         `json:"kind" yaml:"kind"`
	Device  string         `json:"device" yaml:"device"`
	Sysname string         `json:"sysname" yaml:"sysname"`
	Seat    string         `json:"seat,omitempty" yaml:"seat,omitempty"`
	TimeUs  uint64         `json:"timeUs" yaml:"time_us"`
	Data    map[string]any `json:"data,omitempty" yaml:"data,omitempty"`
}

// NewRecord flattens ev.
func NewRecord(ev libinput.Event) Record {
	dev := ev.Device()
	r := Record{
		Kind:    ev.Kind().String(),
		Device:  dev.Name,
		Sysname: dev.Sysname,
		Seat:    dev.LogicalSeat,
		TimeUs:  ev.TimeUsec(),
		Data:    make(map[string]any),
	}
	d := r.Data

	switch e := ev.(type) {
	case libinput.DeviceAdded, libinput.DeviceRemoved:
		d["capabilities"] = dev.Capabilities.Names()
		d["vendor"] = dev.VendorID
		d["product"] = dev.ProductID
		d["physical_seat"] = dev.PhysicalSeat
	case libinput.KeyboardInput:
		d["key"] = e.Key
		d["state"] = e.State.String()
		d["seat_key_count"] = e.SeatKeyCount
	case libinput.PointerMotion:
		d["dx"] = e.Dx
		d["dy"] = e.Dy
		d["dx_unaccel"] = e.DxUnaccelerated
		d["dy_unaccel"] = e.DyUnaccelerated
	case libinput.PointerMotionAbsolute:
		d["x"] = e.X
		d["y"] = e.Y
		screen(d, e.Screen)
	case libinput.PointerButton:
		d["button"] = e.Button
		d["state"] = e.State.String()
		d["seat_button_count"] = e.SeatButtonCount
	case libinput.PointerAxis:
		d["source"] = e.Source.String()
		axis(d, "vertical", e.Vertical)
		axis(d, "horizontal", e.Horizontal)
	case libinput.PointerScroll:
		d["source"] = e.Source.String()
		axis(d, "vertical", e.Vertical)
		axis(d, "horizontal", e.Horizontal)
		axis(d, "vertical_v120", e.VerticalV120)
		axis(d, "horizontal_v120", e.HorizontalV120)
	case libinput.TouchDown:
		touch(d, e.Slot, e.SeatSlot)
		d["x"] = e.X
		d["y"] = e.Y
		screen(d, e.Screen)
	case libinput.TouchMotion:
		touch(d, e.Slot, e.SeatSlot)
		d["x"] = e.X
		d["y"] = e.Y
		screen(d, e.Screen)
	case libinput.TouchUp:
		touch(d, e.Slot, e.SeatSlot)
	case libinput.TouchCancel:
		touch(d, e.Slot, e.SeatSlot)
	case libinput.GestureSwipeBegin:
		d["fingers"] = e.Fingers
	case libinput.GestureSwipeUpdate:
		d["fingers"] = e.Fingers
		delta(d, e.GestureDelta)
	case libinput.GestureSwipeEnd:
		d["fingers"] = e.Fingers
		d["cancelled"] = e.Cancelled
	case libinput.GesturePinchBegin:
		d["fingers"] = e.Fingers
	case libinput.GesturePinchUpdate:
		d["fingers"] = e.Fingers
		delta(d, e.GestureDelta)
		d["scale"] = e.Scale
		d["angle_delta"] = e.AngleDelta
	case libinput.GesturePinchEnd:
		d["fingers"] = e.Fingers
		d["cancelled"] = e.Cancelled
		d["scale"] = e.Scale
	case libinput.GestureHoldBegin:
		d["fingers"] = e.Fingers
	case libinput.GestureHoldEnd:
		d["fingers"] = e.Fingers
		d["cancelled"] = e.Cancelled
	case libinput.TabletToolAxis:
		tool(d, e.ToolState)
	case libinput.TabletToolProximity:
		tool(d, e.ToolState)
	case libinput.TabletToolTip:
		tool(d, e.ToolState)
	case libinput.TabletToolButton:
		tool(d, e.ToolState)
		d["button"] = e.Button
		d["state"] = e.State.String()
	case libinput.TabletPadButton:
		d["button"] = e.Button
		d["state"] = e.State.String()
		d["mode"] = e.Mode
	case libinput.TabletPadRing:
		d["number"] = e.Number
		d["position"] = e.Position
		d["source"] = e.Source.String()
		d["mode"] = e.Mode
	case libinput.TabletPadStrip:
		d["number"] = e.Number
		d["position"] = e.Position
		d["source"] = e.Source.String()
		d["mode"] = e.Mode
	case libinput.TabletPadKey:
		d["key"] = e.Key
		d["state"] = e.State.String()
	case libinput.SwitchToggle:
		d["switch"] = e.Switch.String()
		d["on"] = e.On
	case libinput.Unknown:
		d["type"] = e.Type
	}

	if len(d) == 0 {
		r.Data = nil
	}
	return r
}

func axis(d map[string]any, key string, v libinput.AxisValue) {
	if v.Valid {
		d[key] = v.Value
	}
}

func screen(d map[string]any, p libinput.ScreenPoint) {
	if p.Valid {
		d["screen_x"] = p.X
		d["screen_y"] = p.Y
	}
}

func touch(d map[string]any, slot, seatSlot int32) {
	d["slot"] = slot
	d["seat_slot"] = seatSlot
}

func delta(d map[string]any, g libinput.GestureDelta) {
	d["dx"] = g.Dx
	d["dy"] = g.Dy
	d["dx_unaccel"] = g.DxUnaccelerated
	d["dy_unaccel"] = g.DyUnaccelerated
}

func tool(d map[string]any, s libinput.ToolState) {
	d["tool"] = s.Tool.String()
	d["serial"] = s.Serial
	d["x"] = s.X
	d["y"] = s.Y
	screen(d, s.Screen)
	axis(d, "pressure", s.Pressure)
	axis(d, "distance", s.Distance)
	axis(d, "tilt_x", s.TiltX)
	axis(d, "tilt_y", s.TiltY)
	axis(d, "rotation", s.Rotation)
	axis(d, "slider", s.Slider)
	axis(d, "wheel", s.Wheel)
	d["proximity"] = s.InProximity
	d["tip_down"] = s.TipDown
}
