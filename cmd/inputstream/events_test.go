package main

import (
	"slices"
	"testing"

	"github.com/breeze-rmm/inputstream/internal/config"
)

func TestApplyEventFlagsOnlyChanged(t *testing.T) {
	cfg := config.Default()
	cfg.Format = "yaml"
	cfg.Seat = "seat1"

	if err := eventsCmd.Flags().Set("device", "/dev/input/event3"); err != nil {
		t.Fatal(err)
	}
	if err := eventsCmd.Flags().Set("show-time", "true"); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		eventsCmd.Flags().Lookup("device").Changed = false
		eventsCmd.Flags().Lookup("show-time").Changed = false
		eventsDevices = nil
		eventsShowTime = false
	})

	applyEventFlags(eventsCmd, cfg)

	if cfg.Backend != "path" || len(cfg.Devices) != 1 || cfg.Devices[0] != "/dev/input/event3" {
		t.Fatalf("device flag not applied: %+v", cfg)
	}
	if !cfg.ShowTime {
		t.Fatal("show-time flag not applied")
	}
	// Untouched flags leave config values alone.
	if cfg.Format != "yaml" || cfg.Seat != "seat1" {
		t.Fatalf("unset flags overrode config: format=%q seat=%q", cfg.Format, cfg.Seat)
	}
	if result := cfg.ValidateTiered(); result.HasFatals() {
		t.Fatalf("flagged config invalid: %v", result.Fatals)
	}
}

type stubSession struct{ closed int }

func (s *stubSession) Close() error {
	s.closed++
	return nil
}

type stubLister []string

func (l stubLister) OpenDevices() []string { return l }

func TestCloseSessionReportsHeldDevices(t *testing.T) {
	s := &stubSession{}
	if held := closeSession(s, stubLister(nil)); len(held) != 0 {
		t.Fatalf("held = %v, want none", held)
	}
	if s.closed != 1 {
		t.Fatalf("Close called %d times, want 1", s.closed)
	}

	held := closeSession(&stubSession{}, stubLister{"/dev/input/event3"})
	if !slices.Equal(held, []string{"/dev/input/event3"}) {
		t.Fatalf("held = %v", held)
	}
}
