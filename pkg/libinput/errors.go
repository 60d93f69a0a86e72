package libinput

import "errors"

var (
	ErrAccessInitFailed  = errors.New("libinput: device enumeration backend failed to start")
	ErrContextInitFailed = errors.New("libinput: failed to create context")
	ErrSeatAssignFailed  = errors.New("libinput: failed to assign seat")
	ErrDeviceAddFailed   = errors.New("libinput: failed to add device")
	ErrSessionClosed     = errors.New("libinput: session already closed")
	ErrProtocolViolation = errors.New("libinput: native layer returned an event of type none")
	ErrUnsupported       = errors.New("libinput: not supported on this platform or build")
)
