package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/breeze-rmm/inputstream/internal/privilege"
	"github.com/breeze-rmm/inputstream/pkg/libinput"
)

var keyboard = libinput.DeviceInfo{
	Name:         "AT Translated Set 2 keyboard",
	Sysname:      "event3",
	PhysicalSeat: "seat0",
	LogicalSeat:  "default",
	Capabilities: libinput.CapKeyboard,
}

func keyEvent(usec uint64) libinput.KeyboardInput {
	return libinput.KeyboardInput{
		Header:       libinput.Header{DeviceInfo: keyboard, Timestamp: usec},
		Key:          30,
		State:        libinput.Pressed,
		SeatKeyCount: 1,
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Fatalf("ParseFormat(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestPrintText(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatText, true)

	if err := p.Print(keyEvent(1_000_000)); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if err := p.Print(keyEvent(1_500_000)); err != nil {
		t.Fatalf("Print: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	if !strings.HasPrefix(lines[0], "event3   keyboard-key") {
		t.Fatalf("line = %q", lines[0])
	}
	if !strings.Contains(lines[0], "+0.000s") || !strings.Contains(lines[1], "+0.500s") {
		t.Fatalf("relative times missing: %q", lines)
	}
	if !strings.HasSuffix(lines[1], "key 30 pressed (seat count 1)") {
		t.Fatalf("line = %q", lines[1])
	}
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatJSON, false)

	axis := libinput.PointerAxis{
		Header:   libinput.Header{DeviceInfo: keyboard, Timestamp: 42},
		Source:   libinput.SourceWheel,
		Vertical: libinput.Axis(-1),
	}
	if err := p.Print(axis); err != nil {
		t.Fatalf("Print: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if got["kind"] != "pointer-axis" || got["sysname"] != "event3" || got["timeUs"] != float64(42) {
		t.Fatalf("unexpected record: %v", got)
	}
	data := got["data"].(map[string]any)
	if data["vertical"] != float64(-1) || data["source"] != "wheel" {
		t.Fatalf("data = %v", data)
	}
	if _, ok := data["horizontal"]; ok {
		t.Fatal("absent axis should be omitted")
	}
}

func TestPrintYAML(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatYAML, false)

	if err := p.Print(keyEvent(5)); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if err := p.Print(libinput.TouchFrame{Header: libinput.Header{Timestamp: 6}}); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	dec := yaml.NewDecoder(&buf)
	var first, second Record
	if err := dec.Decode(&first); err != nil {
		t.Fatalf("decode first: %v", err)
	}
	if err := dec.Decode(&second); err != nil {
		t.Fatalf("decode second: %v", err)
	}
	if first.Kind != "keyboard-key" || first.Data["key"] != 30 {
		t.Fatalf("first = %+v", first)
	}
	if second.Kind != "touch-frame" || second.Data != nil {
		t.Fatalf("second = %+v", second)
	}
}

func TestDescribe(t *testing.T) {
	h := libinput.Header{DeviceInfo: keyboard}
	tests := []struct {
		ev   libinput.Event
		want string
	}{
		{libinput.PointerButton{Header: h, Button: 272, State: libinput.Released}, "button 272 released (seat count 0)"},
		{libinput.PointerAxis{Header: h, Source: libinput.SourceFinger, Horizontal: libinput.Axis(0)}, "vert - horiz 0.00 (finger)"},
		{libinput.GesturePinchEnd{Header: h, Fingers: 2, Scale: 1, Cancelled: true}, "2 fingers scale  1.00 cancelled"},
		{libinput.SwitchToggle{Header: h, Switch: libinput.SwitchLid, On: true}, "switch lid state on"},
		{libinput.Unknown{Header: h, Type: 1234}, "type 1234"},
		{libinput.TouchUp{Header: h, Slot: 1, SeatSlot: 3}, "1 (3)"},
		{libinput.TouchFrame{Header: h}, ""},
	}
	for _, tt := range tests {
		if got := Describe(tt.ev); got != tt.want {
			t.Fatalf("Describe(%s) = %q, want %q", tt.ev.Kind(), got, tt.want)
		}
	}
}

func TestPrintReport(t *testing.T) {
	r := &privilege.Report{
		Hostname: "box",
		Kernel:   "6.8.0",
		Devices: []privilege.DeviceNode{
			{Path: "/dev/input/event0", Readable: true},
			{Path: "/dev/input/event1", Error: "permission denied"},
		},
	}

	var text bytes.Buffer
	if err := PrintReport(&text, FormatText, r); err != nil {
		t.Fatalf("PrintReport: %v", err)
	}
	if !strings.Contains(text.String(), "Event nodes:  2 (1 readable)") {
		t.Fatalf("text report = %q", text.String())
	}

	var out bytes.Buffer
	if err := PrintReport(&out, FormatYAML, r); err != nil {
		t.Fatalf("PrintReport: %v", err)
	}
	var back privilege.Report
	if err := yaml.Unmarshal(out.Bytes(), &back); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if back.Kernel != "6.8.0" || len(back.Devices) != 2 || back.Devices[1].Error != "permission denied" {
		t.Fatalf("round trip = %+v", back)
	}
}
