package privilege

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsRunningAsRoot(t *testing.T) {
	if got, want := IsRunningAsRoot(), os.Geteuid() == 0; got != want {
		t.Fatalf("IsRunningAsRoot() = %v, want %v", got, want)
	}
}

func TestInGroupUnknown(t *testing.T) {
	if _, err := InGroup("no-such-group-inputstream"); err == nil {
		t.Fatal("expected an error for a missing group")
	}
}

func TestCanReadDevicesAsRoot(t *testing.T) {
	if !IsRunningAsRoot() {
		t.Skip("requires root")
	}
	if !CanReadDevices() {
		t.Fatal("root should always be able to read devices")
	}
}

func TestDiagnoseProbesEventNodes(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"event0", "event1", "mice", "js0"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	locked := filepath.Join(dir, "event2")
	if err := os.WriteFile(locked, nil, 0000); err != nil {
		t.Fatal(err)
	}

	r := Diagnose(dir)
	if len(r.Devices) != 3 {
		t.Fatalf("expected 3 event nodes, got %+v", r.Devices)
	}
	if r.Devices[0].Path != filepath.Join(dir, "event0") {
		t.Fatalf("unexpected order: %+v", r.Devices)
	}
	if r.Architecture == "" {
		t.Fatal("architecture not set")
	}

	want := 3
	if !IsRunningAsRoot() {
		want = 2
		if r.Devices[2].Readable || r.Devices[2].Error == "" {
			t.Fatalf("unreadable node reported as readable: %+v", r.Devices[2])
		}
	}
	if r.Readable() != want {
		t.Fatalf("Readable() = %d, want %d", r.Readable(), want)
	}
}

func TestDiagnoseMissingDir(t *testing.T) {
	r := Diagnose(filepath.Join(t.TempDir(), "missing"))
	if len(r.Devices) != 0 {
		t.Fatalf("expected no devices, got %+v", r.Devices)
	}
}
