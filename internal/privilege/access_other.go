//go:build !linux

package privilege

// DeviceAccess is only implemented on Linux.
type DeviceAccess struct {
	Grab bool
}

func NewDeviceAccess(grab bool) *DeviceAccess {
	return &DeviceAccess{Grab: grab}
}

func (a *DeviceAccess) OpenRestricted(path string, flags int) (int, error) {
	return -1, ErrNotSupported
}

func (a *DeviceAccess) CloseRestricted(fd int) {}

func (a *DeviceAccess) OpenDevices() []string { return nil }
