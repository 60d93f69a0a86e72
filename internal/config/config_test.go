package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/breeze-rmm/inputstream/pkg/libinput"
)

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Setenv("INPUTSTREAM_CONFIG_DIR", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seat != "seat0" || cfg.Backend != "udev" || cfg.Format != "text" {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputstream.yaml")
	data := `seat: seat1
backend: path
devices:
  - /dev/input/event3
grab: true
format: json
screen: 1920x1080
device:
  tapping: "on"
  natural_scroll: true
  speed: -0.5
  scroll_method: two_finger
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seat != "seat1" || cfg.Backend != "path" || !cfg.Grab || cfg.Format != "json" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if len(cfg.Devices) != 1 || cfg.Devices[0] != "/dev/input/event3" {
		t.Fatalf("devices = %v", cfg.Devices)
	}
	if cfg.Device.Speed == nil || *cfg.Device.Speed != -0.5 {
		t.Fatalf("speed = %v", cfg.Device.Speed)
	}
	// Values not in the file keep their defaults.
	if cfg.LogMaxSizeMB != 10 {
		t.Fatalf("LogMaxSizeMB = %d, want default 10", cfg.LogMaxSizeMB)
	}

	if result := cfg.ValidateTiered(); result.HasFatals() {
		t.Fatalf("loaded config has fatals: %v", result.Fatals)
	}
	// An unquoted YAML boolean still maps onto a toggle.
	opts := cfg.Options()
	if opts.NaturalScroll != libinput.ToggleOn || opts.Tapping != libinput.ToggleOn {
		t.Fatalf("toggles = %v/%v", opts.NaturalScroll, opts.Tapping)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputstream.yaml")
	if err := os.WriteFile(path, []byte("seat: seat1\nformat: yaml\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("INPUTSTREAM_SEAT", "seat9")
	t.Setenv("INPUTSTREAM_DEVICE_TAPPING", "off")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seat != "seat9" {
		t.Fatalf("Seat = %q, want env override seat9", cfg.Seat)
	}
	if cfg.Format != "yaml" {
		t.Fatalf("Format = %q, want yaml from file", cfg.Format)
	}
	if cfg.Device.Tapping != "off" {
		t.Fatalf("Device.Tapping = %q, want off", cfg.Device.Tapping)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputstream.yaml")
	if err := os.WriteFile(path, []byte("seat: [unterminated\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Seat = "seat2"
	cfg.Device.ClickMethod = "clickfinger"
	speed := 0.75
	cfg.Device.Speed = &speed

	path := filepath.Join(t.TempDir(), "nested", "inputstream.yaml")
	written, err := SaveTo(cfg, path)
	if err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	if written != path {
		t.Fatalf("written to %q, want %q", written, path)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Seat != "seat2" || loaded.Device.ClickMethod != "clickfinger" {
		t.Fatalf("round trip lost values: %+v", loaded)
	}
	if loaded.Device.Speed == nil || *loaded.Device.Speed != 0.75 {
		t.Fatalf("speed = %v", loaded.Device.Speed)
	}
}

func TestSaveToDefaultDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("INPUTSTREAM_CONFIG_DIR", dir)

	written, err := SaveTo(Default(), "")
	if err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	if written != filepath.Join(dir, "inputstream.yaml") {
		t.Fatalf("written to %q", written)
	}
	if _, err := os.Stat(written); err != nil {
		t.Fatalf("config not written: %v", err)
	}
}

func TestLoadEnvSpeed(t *testing.T) {
	t.Setenv("INPUTSTREAM_CONFIG_DIR", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Device.Speed != nil {
		t.Fatalf("Speed = %v, want nil when unset", *cfg.Device.Speed)
	}

	t.Setenv("INPUTSTREAM_DEVICE_SPEED", "0.5")
	t.Setenv("INPUTSTREAM_DEVICE_TAPPING", "on")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Device.Speed == nil || *cfg.Device.Speed != 0.5 {
		t.Fatalf("Speed = %v, want 0.5 from INPUTSTREAM_DEVICE_SPEED", cfg.Device.Speed)
	}
	if cfg.Device.Tapping != "on" {
		t.Fatalf("Tapping = %q, want on", cfg.Device.Tapping)
	}
}
