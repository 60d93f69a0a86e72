//go:build linux && cgo

package libinput

/*
#cgo pkg-config: libinput libudev

#include <stdarg.h>
#include <stdint.h>
#include <stdio.h>
#include <stdlib.h>
#include <string.h>
#include <libinput.h>
#include <libudev.h>

extern int goOpenRestricted(char *path, int flags, uintptr_t handle);
extern void goCloseRestricted(int fd, uintptr_t handle);
extern void goLogMessage(uintptr_t handle, int priority, char *message);

// device_config mirrors the Go Options knobs. -1 (or 0 for scroll_button,
// speed_set) leaves the device default alone.
typedef struct {
    int tapping;
    int tap_map;
    int drag;
    int drag_lock;
    int natural_scroll;
    int left_handed;
    int middle_button;
    int dwt;
    int click_method;
    int scroll_method;
    int accel_profile;
    unsigned int scroll_button;
    int speed_set;
    double speed;
} device_config;

static int open_restricted(const char *path, int flags, void *user_data) {
    return goOpenRestricted((char *)path, flags, (uintptr_t)user_data);
}

static void close_restricted(int fd, void *user_data) {
    goCloseRestricted(fd, (uintptr_t)user_data);
}

static const struct libinput_interface restricted_interface = {
    .open_restricted = open_restricted,
    .close_restricted = close_restricted,
};

static void log_handler(struct libinput *li, enum libinput_log_priority priority,
                        const char *format, va_list args) {
    char message[512];
    vsnprintf(message, sizeof(message), format, args);
    size_t n = strlen(message);
    if (n > 0 && message[n - 1] == '\n') {
        message[n - 1] = '\0';
    }
    goLogMessage((uintptr_t)libinput_get_user_data(li), (int)priority, message);
}

static void setup_logging(struct libinput *li, int priority) {
    libinput_log_set_handler(li, log_handler);
    libinput_log_set_priority(li, (enum libinput_log_priority)priority);
}

static struct libinput *seat_context_new(struct udev *udev, uintptr_t handle, int priority) {
    struct libinput *li = libinput_udev_create_context(&restricted_interface, (void *)handle, udev);
    if (li != NULL) {
        setup_logging(li, priority);
    }
    return li;
}

static struct libinput *path_context_new(uintptr_t handle, int priority) {
    struct libinput *li = libinput_path_create_context(&restricted_interface, (void *)handle);
    if (li != NULL) {
        setup_logging(li, priority);
    }
    return li;
}

static void apply_device_config(struct libinput_device *device, const device_config *c) {
    if (c->tapping >= 0)
        libinput_device_config_tap_set_enabled(device, c->tapping);
    if (c->tap_map >= 0)
        libinput_device_config_tap_set_button_map(device, c->tap_map);
    if (c->drag >= 0)
        libinput_device_config_tap_set_drag_enabled(device, c->drag);
    if (c->drag_lock >= 0)
        libinput_device_config_tap_set_drag_lock_enabled(device, c->drag_lock);
    if (c->natural_scroll >= 0)
        libinput_device_config_scroll_set_natural_scroll_enabled(device, c->natural_scroll);
    if (c->left_handed >= 0)
        libinput_device_config_left_handed_set(device, c->left_handed);
    if (c->middle_button >= 0)
        libinput_device_config_middle_emulation_set_enabled(device, c->middle_button);
    if (c->dwt >= 0)
        libinput_device_config_dwt_set_enabled(device, c->dwt);
    if (c->click_method >= 0)
        libinput_device_config_click_set_method(device, c->click_method);
    if (c->scroll_method >= 0)
        libinput_device_config_scroll_set_method(device, c->scroll_method);
    if (c->scroll_button > 0)
        libinput_device_config_scroll_set_button(device, c->scroll_button);
    if (c->accel_profile >= 0)
        libinput_device_config_accel_set_profile(device, c->accel_profile);
    if (c->speed_set && libinput_device_config_accel_is_available(device))
        libinput_device_config_accel_set_speed(device, c->speed);
}
*/
import "C"

import (
	"context"
	"log/slog"
	"runtime/cgo"
	"unsafe"
)

// Native log priorities.
const (
	priorityDebug = 10
	priorityInfo  = 20
	priorityError = 30
)

// bindingData is what the C callbacks reach through the context user data.
type bindingData struct {
	access FileAccess
	log    *slog.Logger
}

type cBinding struct{}

func systemNative() Native { return cBinding{} }

type cEnumerator struct {
	udev *C.struct_udev
}

func (e *cEnumerator) Unref() {
	if e.udev != nil {
		C.udev_unref(e.udev)
		e.udev = nil
	}
}

func (cBinding) NewEnumerator() (Enumerator, bool) {
	udev := C.udev_new()
	if udev == nil {
		return nil, false
	}
	return &cEnumerator{udev: udev}, true
}

func (cBinding) NewSeatContext(e Enumerator, access FileAccess, opts Options, logger *slog.Logger) (NativeContext, bool) {
	enum, ok := e.(*cEnumerator)
	if !ok || enum.udev == nil {
		return nil, false
	}
	c := newCContext(access, opts, logger)
	c.li = C.seat_context_new(enum.udev, C.uintptr_t(c.handle), logPriority(logger))
	if c.li == nil {
		c.handle.Delete()
		return nil, false
	}
	return c, true
}

func (cBinding) NewPathContext(access FileAccess, opts Options, logger *slog.Logger) (NativeContext, bool) {
	c := newCContext(access, opts, logger)
	c.li = C.path_context_new(C.uintptr_t(c.handle), logPriority(logger))
	if c.li == nil {
		c.handle.Delete()
		return nil, false
	}
	return c, true
}

func logPriority(logger *slog.Logger) C.int {
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		return priorityDebug
	}
	return priorityInfo
}

// cContext is a libinput context plus the handle its callbacks resolve.
type cContext struct {
	li     *C.struct_libinput
	handle cgo.Handle
	config C.device_config
}

func newCContext(access FileAccess, opts Options, logger *slog.Logger) *cContext {
	c := &cContext{
		handle: cgo.NewHandle(&bindingData{access: access, log: logger}),
	}
	c.config = deviceConfig(opts)
	return c
}

func (c *cContext) AssignSeat(seat string) int {
	cs := C.CString(seat)
	defer C.free(unsafe.Pointer(cs))
	return int(C.libinput_udev_assign_seat(c.li, cs))
}

func (c *cContext) AddDevice(path string) bool {
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))
	return C.libinput_path_add_device(c.li, cs) != nil
}

func (c *cContext) FD() int { return int(C.libinput_get_fd(c.li)) }

func (c *cContext) Dispatch() int { return int(C.libinput_dispatch(c.li)) }

func (c *cContext) NextEvent() RawEvent {
	ev := C.libinput_get_event(c.li)
	if ev == nil {
		return nil
	}
	if C.libinput_event_get_type(ev) == C.LIBINPUT_EVENT_DEVICE_ADDED {
		C.apply_device_config(C.libinput_event_get_device(ev), &c.config)
	}
	return cEvent{ev: ev}
}

// Unref drops the context. Devices still open are closed through the
// restricted callbacks during the call, so the handle outlives it.
func (c *cContext) Unref() {
	if c.li == nil {
		return
	}
	C.libinput_unref(c.li)
	c.li = nil
	c.handle.Delete()
}

func deviceConfig(opts Options) C.device_config {
	cfg := C.device_config{
		tapping:        toggle(opts.Tapping),
		tap_map:        -1,
		drag:           toggle(opts.Drag),
		drag_lock:      toggle(opts.DragLock),
		natural_scroll: toggle(opts.NaturalScroll),
		left_handed:    toggle(opts.LeftHanded),
		middle_button:  toggle(opts.MiddleButton),
		dwt:            toggle(opts.DisableWhileTyping),
		click_method:   -1,
		scroll_method:  -1,
		accel_profile:  -1,
		scroll_button:  C.uint(opts.ScrollButton),
	}

	switch opts.TapButtonMap {
	case TapMapLRM:
		cfg.tap_map = C.LIBINPUT_CONFIG_TAP_MAP_LRM
	case TapMapLMR:
		cfg.tap_map = C.LIBINPUT_CONFIG_TAP_MAP_LMR
	}

	switch opts.ClickMethod {
	case ClickMethodNone:
		cfg.click_method = C.LIBINPUT_CONFIG_CLICK_METHOD_NONE
	case ClickMethodButtonAreas:
		cfg.click_method = C.LIBINPUT_CONFIG_CLICK_METHOD_BUTTON_AREAS
	case ClickMethodClickfinger:
		cfg.click_method = C.LIBINPUT_CONFIG_CLICK_METHOD_CLICKFINGER
	}

	switch opts.ScrollMethod {
	case ScrollMethodNone:
		cfg.scroll_method = C.LIBINPUT_CONFIG_SCROLL_NO_SCROLL
	case ScrollMethodTwoFinger:
		cfg.scroll_method = C.LIBINPUT_CONFIG_SCROLL_2FG
	case ScrollMethodEdge:
		cfg.scroll_method = C.LIBINPUT_CONFIG_SCROLL_EDGE
	case ScrollMethodButton:
		cfg.scroll_method = C.LIBINPUT_CONFIG_SCROLL_ON_BUTTON_DOWN
	}

	switch opts.AccelProfile {
	case AccelProfileFlat:
		cfg.accel_profile = C.LIBINPUT_CONFIG_ACCEL_PROFILE_FLAT
	case AccelProfileAdaptive:
		cfg.accel_profile = C.LIBINPUT_CONFIG_ACCEL_PROFILE_ADAPTIVE
	}

	if opts.Speed != nil {
		cfg.speed_set = 1
		cfg.speed = C.double(*opts.Speed)
	}
	return cfg
}

func toggle(t Toggle) C.int {
	switch t {
	case ToggleOff:
		return 0
	case ToggleOn:
		return 1
	default:
		return -1
	}
}
