package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/breeze-rmm/inputstream/pkg/libinput"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts text, json or yaml in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	}
	return "", fmt.Errorf("unknown format %q (use text, json or yaml)", s)
}

// Printer writes events in one format. Text output is one line per event,
// json is one object per line, yaml is one document per event.
type Printer struct {
	w        io.Writer
	format   Format
	showTime bool

	start   uint64
	started bool

	enc  *json.Encoder
	yenc *yaml.Encoder
}

// NewPrinter returns a Printer. showTime adds the time since the first
// printed event to text output.
func NewPrinter(w io.Writer, format Format, showTime bool) *Printer {
	p := &Printer{w: w, format: format, showTime: showTime}
	switch format {
	case FormatJSON:
		p.enc = json.NewEncoder(w)
	case FormatYAML:
		p.yenc = yaml.NewEncoder(w)
		p.yenc.SetIndent(2)
	}
	return p
}

func (p *Printer) Print(ev libinput.Event) error {
	switch p.format {
	case FormatJSON:
		return p.enc.Encode(NewRecord(ev))
	case FormatYAML:
		return p.yenc.Encode(NewRecord(ev))
	default:
		_, err := io.WriteString(p.w, p.line(ev)+"\n")
		return err
	}
}

// Close flushes the yaml stream. It does not close the underlying writer.
func (p *Printer) Close() error {
	if p.yenc != nil {
		return p.yenc.Close()
	}
	return nil
}

func (p *Printer) line(ev libinput.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-8s %-24s", sysname(ev.Device()), ev.Kind())

	if p.showTime {
		if ts := ev.TimeUsec(); ts != 0 {
			if !p.started {
				p.start, p.started = ts, true
			}
			fmt.Fprintf(&b, " %+9.3fs", float64(int64(ts-p.start))/1e6)
		} else {
			b.WriteString("           ")
		}
	}

	if d := Describe(ev); d != "" {
		b.WriteString("  ")
		b.WriteString(d)
	}
	return strings.TrimRight(b.String(), " ")
}

func sysname(d libinput.DeviceInfo) string {
	if d.Sysname == "" {
		return "-"
	}
	return d.Sysname
}

// Describe is the payload part of a text line.
func Describe(ev libinput.Event) string {
	switch e := ev.(type) {
	case libinput.DeviceAdded:
		d := e.Device()
		return fmt.Sprintf("%s seat %s/%s caps %s", quote(d.Name), d.PhysicalSeat, d.LogicalSeat, d.Capabilities)
	case libinput.DeviceRemoved:
		return quote(e.Device().Name)
	case libinput.KeyboardInput:
		return fmt.Sprintf("key %d %s (seat count %d)", e.Key, e.State, e.SeatKeyCount)
	case libinput.PointerMotion:
		return fmt.Sprintf("%6.2f/%6.2f (%+.2f/%+.2f unaccelerated)", e.Dx, e.Dy, e.DxUnaccelerated, e.DyUnaccelerated)
	case libinput.PointerMotionAbsolute:
		return point(e.X, e.Y, e.Screen)
	case libinput.PointerButton:
		return fmt.Sprintf("button %d %s (seat count %d)", e.Button, e.State, e.SeatButtonCount)
	case libinput.PointerAxis:
		return fmt.Sprintf("vert %s horiz %s (%s)", e.Vertical, e.Horizontal, e.Source)
	case libinput.PointerScroll:
		s := fmt.Sprintf("vert %s horiz %s (%s)", e.Vertical, e.Horizontal, e.Source)
		if e.VerticalV120.Valid || e.HorizontalV120.Valid {
			s += fmt.Sprintf(" v120 %s/%s", e.VerticalV120, e.HorizontalV120)
		}
		return s
	case libinput.TouchDown:
		return fmt.Sprintf("%d (%d) %s", e.Slot, e.SeatSlot, point(e.X, e.Y, e.Screen))
	case libinput.TouchMotion:
		return fmt.Sprintf("%d (%d) %s", e.Slot, e.SeatSlot, point(e.X, e.Y, e.Screen))
	case libinput.TouchUp:
		return fmt.Sprintf("%d (%d)", e.Slot, e.SeatSlot)
	case libinput.TouchCancel:
		return fmt.Sprintf("%d (%d)", e.Slot, e.SeatSlot)
	case libinput.GestureSwipeBegin:
		return fingers(e.Fingers)
	case libinput.GestureSwipeUpdate:
		return fmt.Sprintf("%s %5.2f/%5.2f", fingers(e.Fingers), e.Dx, e.Dy)
	case libinput.GestureSwipeEnd:
		return fingers(e.Fingers) + cancelled(e.Cancelled)
	case libinput.GesturePinchBegin:
		return fingers(e.Fingers)
	case libinput.GesturePinchUpdate:
		return fmt.Sprintf("%s %5.2f/%5.2f scale %5.2f angle %5.2f", fingers(e.Fingers), e.Dx, e.Dy, e.Scale, e.AngleDelta)
	case libinput.GesturePinchEnd:
		return fmt.Sprintf("%s scale %5.2f%s", fingers(e.Fingers), e.Scale, cancelled(e.Cancelled))
	case libinput.GestureHoldBegin:
		return fingers(e.Fingers)
	case libinput.GestureHoldEnd:
		return fingers(e.Fingers) + cancelled(e.Cancelled)
	case libinput.TabletToolAxis:
		return toolLine(e.ToolState)
	case libinput.TabletToolProximity:
		if e.InProximity {
			return toolLine(e.ToolState) + " proximity-in"
		}
		return toolLine(e.ToolState) + " proximity-out"
	case libinput.TabletToolTip:
		if e.TipDown {
			return toolLine(e.ToolState) + " down"
		}
		return toolLine(e.ToolState) + " up"
	case libinput.TabletToolButton:
		return fmt.Sprintf("%s button %d %s", toolLine(e.ToolState), e.Button, e.State)
	case libinput.TabletPadButton:
		return fmt.Sprintf("button %d %s (mode %d)", e.Button, e.State, e.Mode)
	case libinput.TabletPadRing:
		return fmt.Sprintf("ring %d position %.2f (%s, mode %d)", e.Number, e.Position, e.Source, e.Mode)
	case libinput.TabletPadStrip:
		return fmt.Sprintf("strip %d position %.2f (%s, mode %d)", e.Number, e.Position, e.Source, e.Mode)
	case libinput.TabletPadKey:
		return fmt.Sprintf("key %d %s", e.Key, e.State)
	case libinput.SwitchToggle:
		state := "off"
		if e.On {
			state = "on"
		}
		return fmt.Sprintf("switch %s state %s", e.Switch, state)
	case libinput.Unknown:
		return fmt.Sprintf("type %d", e.Type)
	}
	return ""
}

func quote(s string) string { return fmt.Sprintf("%q", s) }

func point(x, y float64, s libinput.ScreenPoint) string {
	out := fmt.Sprintf("%6.2f/%6.2f", x, y)
	if s.Valid {
		out += fmt.Sprintf(" (%.0f/%.0f)", s.X, s.Y)
	}
	return out
}

func fingers(n int) string { return fmt.Sprintf("%d fingers", n) }

func cancelled(c bool) string {
	if c {
		return " cancelled"
	}
	return ""
}

func toolLine(s libinput.ToolState) string {
	out := fmt.Sprintf("%s %s", s.Tool, point(s.X, s.Y, s.Screen))
	if s.Pressure.Valid {
		out += " pressure " + s.Pressure.String()
	}
	if s.TiltX.Valid || s.TiltY.Valid {
		out += fmt.Sprintf(" tilt %s/%s", s.TiltX, s.TiltY)
	}
	if s.Distance.Valid {
		out += " distance " + s.Distance.String()
	}
	return out
}
