//go:build linux && cgo

package libinput

/*
#include <stdint.h>
*/
import "C"

import (
	"context"
	"errors"
	"log/slog"
	"runtime/cgo"

	"golang.org/x/sys/unix"

	"github.com/breeze-rmm/inputstream/internal/logging"
)

// The callbacks below run on the goroutine that is inside the libinput call
// (Open, Dispatch, Close), so they never race with that Session.

//export goOpenRestricted
func goOpenRestricted(path *C.char, flags C.int, handle C.uintptr_t) C.int {
	b := cgo.Handle(handle).Value().(*bindingData)
	name := C.GoString(path)

	fd, err := b.access.OpenRestricted(name, int(flags))
	if err == nil && fd >= 0 {
		return C.int(fd)
	}

	b.log.Warn("open_restricted failed", logging.KeyPath, name, logging.KeyError, err)
	var errno unix.Errno
	if errors.As(err, &errno) && errno != 0 {
		return C.int(-int(errno))
	}
	return C.int(-int(unix.EACCES))
}

//export goCloseRestricted
func goCloseRestricted(fd C.int, handle C.uintptr_t) {
	b := cgo.Handle(handle).Value().(*bindingData)
	b.access.CloseRestricted(int(fd))
}

//export goLogMessage
func goLogMessage(handle C.uintptr_t, priority C.int, message *C.char) {
	b := cgo.Handle(handle).Value().(*bindingData)

	level := slog.LevelInfo
	switch {
	case priority <= priorityDebug:
		level = slog.LevelDebug
	case priority >= priorityError:
		level = slog.LevelError
	}
	b.log.Log(context.Background(), level, C.GoString(message), "source", "native")
}
