package privilege

import (
	"errors"
	"os"
	"os/user"
	"slices"
	"strconv"

	"github.com/breeze-rmm/inputstream/internal/logging"
)

var log = logging.L("privilege")

// ErrNotSupported is returned where device access is not implemented.
var ErrNotSupported = errors.New("privilege: device access not supported on this platform")

// InputGroup is the group that owns /dev/input/event* on most distributions.
const InputGroup = "input"

// IsRunningAsRoot returns true if the process is running with UID 0 (root).
func IsRunningAsRoot() bool {
	return os.Geteuid() == 0
}

// InGroup reports whether the process carries name in its supplementary
// groups or as its effective group.
func InGroup(name string) (bool, error) {
	g, err := user.LookupGroup(name)
	if err != nil {
		return false, err
	}
	gid, err := strconv.Atoi(g.Gid)
	if err != nil {
		return false, err
	}
	if os.Getegid() == gid {
		return true, nil
	}
	groups, err := os.Getgroups()
	if err != nil {
		return false, err
	}
	return slices.Contains(groups, gid), nil
}

// CanReadDevices is the quick check the CLI runs before opening a session.
func CanReadDevices() bool {
	if IsRunningAsRoot() {
		return true
	}
	ok, err := InGroup(InputGroup)
	if err != nil {
		log.Debug("input group lookup failed", logging.KeyError, err)
		return false
	}
	return ok
}
