//go:build linux

package privilege

import (
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/breeze-rmm/inputstream/internal/logging"
)

// EVIOCGRAB = _IOW('E', 0x90, int)
const eviocgrab = 0x40044590

// DeviceAccess opens device nodes directly with the caller's credentials.
// It is the FileAccess handed to libinput sessions by the CLI.
type DeviceAccess struct {
	// Grab requests exclusive access to every opened device. A failed grab
	// is logged and the device is used anyway.
	Grab bool

	log  *slog.Logger
	mu   sync.Mutex
	open map[int]string
}

func NewDeviceAccess(grab bool) *DeviceAccess {
	return &DeviceAccess{Grab: grab, log: log, open: make(map[int]string)}
}

// OpenRestricted opens path with flags plus O_CLOEXEC.
func (a *DeviceAccess) OpenRestricted(path string, flags int) (int, error) {
	fd, err := unix.Open(path, flags|unix.O_CLOEXEC, 0)
	if err != nil {
		a.log.Warn("failed to open device", logging.KeyPath, path, logging.KeyError, err)
		return -1, fmt.Errorf("open %s: %w", path, err)
	}

	if a.Grab {
		if err := unix.IoctlSetInt(fd, eviocgrab, 1); err != nil {
			a.log.Warn("grab requested but failed", logging.KeyPath, path, logging.KeyError, err)
		}
	}

	a.mu.Lock()
	a.open[fd] = path
	a.mu.Unlock()

	a.log.Debug("device opened", logging.KeyPath, path, logging.KeyFD, fd)
	return fd, nil
}

// CloseRestricted closes fd. Closing also releases any grab.
func (a *DeviceAccess) CloseRestricted(fd int) {
	a.mu.Lock()
	path := a.open[fd]
	delete(a.open, fd)
	a.mu.Unlock()

	if err := unix.Close(fd); err != nil {
		a.log.Warn("failed to close device", logging.KeyPath, path, logging.KeyFD, fd, logging.KeyError, err)
		return
	}
	a.log.Debug("device closed", logging.KeyPath, path, logging.KeyFD, fd)
}

// OpenDevices lists the paths currently held open.
func (a *DeviceAccess) OpenDevices() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	paths := make([]string, 0, len(a.open))
	for _, p := range a.open {
		paths = append(paths, p)
	}
	return paths
}
