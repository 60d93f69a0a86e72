package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/breeze-rmm/inputstream/internal/logging"
	"github.com/breeze-rmm/inputstream/pkg/libinput"
)

var validLogLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

var validFormats = map[string]bool{
	"text": true,
	"json": true,
	"yaml": true,
}

var toggles = map[string]libinput.Toggle{
	"":         libinput.ToggleUnset,
	"on":       libinput.ToggleOn,
	"off":      libinput.ToggleOff,
	"true":     libinput.ToggleOn,
	"false":    libinput.ToggleOff,
	"enabled":  libinput.ToggleOn,
	"disabled": libinput.ToggleOff,
	// unquoted YAML booleans arrive weakly decoded
	"1": libinput.ToggleOn,
	"0": libinput.ToggleOff,
}

var tapMaps = map[string]libinput.TapButtonMap{
	"":    libinput.TapMapUnset,
	"lrm": libinput.TapMapLRM,
	"lmr": libinput.TapMapLMR,
}

var clickMethods = map[string]libinput.ClickMethod{
	"":             libinput.ClickMethodUnset,
	"none":         libinput.ClickMethodNone,
	"button_areas": libinput.ClickMethodButtonAreas,
	"clickfinger":  libinput.ClickMethodClickfinger,
}

var scrollMethods = map[string]libinput.ScrollMethod{
	"":           libinput.ScrollMethodUnset,
	"none":       libinput.ScrollMethodNone,
	"two_finger": libinput.ScrollMethodTwoFinger,
	"edge":       libinput.ScrollMethodEdge,
	"button":     libinput.ScrollMethodButton,
}

var accelProfiles = map[string]libinput.AccelProfile{
	"":         libinput.AccelProfileUnset,
	"flat":     libinput.AccelProfileFlat,
	"adaptive": libinput.AccelProfileAdaptive,
}

// ValidationResult separates errors that must stop startup from values that
// were corrected in place.
type ValidationResult struct {
	Fatals   []error
	Warnings []error
}

func (r ValidationResult) HasFatals() bool { return len(r.Fatals) > 0 }

func (r *ValidationResult) fatal(format string, args ...any) {
	r.Fatals = append(r.Fatals, fmt.Errorf(format, args...))
}

func (r *ValidationResult) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Errorf(format, args...))
}

// ValidateTiered checks the config. Out-of-range numbers are clamped and
// reported as warnings; anything that cannot be corrected is fatal.
func (c *Config) ValidateTiered() ValidationResult {
	var r ValidationResult

	switch strings.ToLower(c.Backend) {
	case "udev", "":
		if len(c.Devices) > 0 {
			r.warn("devices are ignored with the udev backend")
		}
	case "path":
		if len(c.Devices) == 0 {
			r.fatal("backend path needs at least one entry in devices")
		}
	default:
		r.fatal("backend %q is not valid (use udev or path)", c.Backend)
	}

	if c.Seat != "" && strings.ContainsAny(c.Seat, " \t\n/") {
		r.fatal("seat %q contains whitespace or a slash", c.Seat)
	}

	if !validFormats[strings.ToLower(c.Format)] {
		r.fatal("format %q is not valid (use text, json or yaml)", c.Format)
	}

	if _, err := ParseScreen(c.Screen); err != nil {
		r.fatal("%v", err)
	}

	if c.LogLevel != "" && !validLogLevels[strings.ToLower(c.LogLevel)] {
		r.fatal("log_level %q is not valid (use debug, info, warn, error)", c.LogLevel)
	}

	if c.LogFormat != "" && c.LogFormat != "text" && c.LogFormat != "json" {
		r.fatal("log_format %q is not valid (use text or json)", c.LogFormat)
	}

	if c.LogMaxSizeMB < 1 {
		r.warn("log_max_size_mb %d is below minimum 1, clamping", c.LogMaxSizeMB)
		c.LogMaxSizeMB = 1
	} else if c.LogMaxSizeMB > 1024 {
		r.warn("log_max_size_mb %d exceeds maximum 1024, clamping", c.LogMaxSizeMB)
		c.LogMaxSizeMB = 1024
	}

	if c.LogMaxBackups < 1 {
		r.warn("log_max_backups %d is below minimum 1, clamping", c.LogMaxBackups)
		c.LogMaxBackups = 1
	} else if c.LogMaxBackups > 20 {
		r.warn("log_max_backups %d exceeds maximum 20, clamping", c.LogMaxBackups)
		c.LogMaxBackups = 20
	}

	c.Device.validate(&r)
	return r
}

func (d *DeviceConfig) validate(r *ValidationResult) {
	for _, t := range []struct{ key, val string }{
		{"tapping", d.Tapping},
		{"drag", d.Drag},
		{"drag_lock", d.DragLock},
		{"natural_scroll", d.NaturalScroll},
		{"left_handed", d.LeftHanded},
		{"middle_button", d.MiddleButton},
		{"disable_while_typing", d.DisableWhileTyping},
	} {
		if _, ok := toggles[strings.ToLower(t.val)]; !ok {
			r.fatal("device.%s %q is not valid (use on or off)", t.key, t.val)
		}
	}

	if _, ok := tapMaps[strings.ToLower(d.TapButtonMap)]; !ok {
		r.fatal("device.tap_button_map %q is not valid (use lrm or lmr)", d.TapButtonMap)
	}
	if _, ok := clickMethods[strings.ToLower(d.ClickMethod)]; !ok {
		r.fatal("device.click_method %q is not valid (use none, button_areas or clickfinger)", d.ClickMethod)
	}
	if _, ok := accelProfiles[strings.ToLower(d.AccelProfile)]; !ok {
		r.fatal("device.accel_profile %q is not valid (use flat or adaptive)", d.AccelProfile)
	}

	method, ok := scrollMethods[strings.ToLower(d.ScrollMethod)]
	if !ok {
		r.fatal("device.scroll_method %q is not valid (use none, two_finger, edge or button)", d.ScrollMethod)
	}
	if d.ScrollButton != 0 && ok && method != libinput.ScrollMethodButton {
		r.warn("device.scroll_button %d has no effect unless scroll_method is button", d.ScrollButton)
	}

	if d.Speed != nil {
		if *d.Speed < -1 {
			r.warn("device.speed %.2f is below minimum -1, clamping", *d.Speed)
			*d.Speed = -1
		} else if *d.Speed > 1 {
			r.warn("device.speed %.2f exceeds maximum 1, clamping", *d.Speed)
			*d.Speed = 1
		}
	}
}

// Log writes warnings at warn level and fatals at error level.
func (r ValidationResult) Log(logger *slog.Logger) {
	for _, err := range r.Warnings {
		logger.Warn("config validation", logging.KeyError, err)
	}
	for _, err := range r.Fatals {
		logger.Error("config validation", logging.KeyError, err)
	}
}

// ParseScreen parses "WIDTHxHEIGHT". An empty string is the zero Transform.
func ParseScreen(s string) (libinput.Transform, error) {
	if s == "" {
		return libinput.Transform{}, nil
	}
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return libinput.Transform{}, fmt.Errorf("screen %q is not WIDTHxHEIGHT", s)
	}
	w, werr := strconv.ParseUint(ws, 10, 32)
	h, herr := strconv.ParseUint(hs, 10, 32)
	if werr != nil || herr != nil || w == 0 || h == 0 {
		return libinput.Transform{}, fmt.Errorf("screen %q is not WIDTHxHEIGHT with positive sizes", s)
	}
	return libinput.Transform{Width: uint32(w), Height: uint32(h)}, nil
}

// Options converts the config into a libinput options block. The config
// must have passed ValidateTiered without fatals.
func (c *Config) Options() libinput.Options {
	opts := libinput.DefaultOptions()
	if c.Seat != "" {
		opts.Seat = c.Seat
	}
	if strings.EqualFold(c.Backend, "path") {
		opts.Backend = libinput.BackendPath
		opts.Devices = append([]string(nil), c.Devices...)
	}
	opts.Grab = c.Grab

	d := c.Device
	opts.Tapping = toggles[strings.ToLower(d.Tapping)]
	opts.TapButtonMap = tapMaps[strings.ToLower(d.TapButtonMap)]
	opts.Drag = toggles[strings.ToLower(d.Drag)]
	opts.DragLock = toggles[strings.ToLower(d.DragLock)]
	opts.NaturalScroll = toggles[strings.ToLower(d.NaturalScroll)]
	opts.LeftHanded = toggles[strings.ToLower(d.LeftHanded)]
	opts.MiddleButton = toggles[strings.ToLower(d.MiddleButton)]
	opts.DisableWhileTyping = toggles[strings.ToLower(d.DisableWhileTyping)]
	opts.ClickMethod = clickMethods[strings.ToLower(d.ClickMethod)]
	opts.ScrollMethod = scrollMethods[strings.ToLower(d.ScrollMethod)]
	opts.ScrollButton = d.ScrollButton
	opts.AccelProfile = accelProfiles[strings.ToLower(d.AccelProfile)]
	if d.Speed != nil {
		speed := *d.Speed
		opts.Speed = &speed
	}
	return opts
}
