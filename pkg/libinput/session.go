package libinput

import (
	"fmt"
	"log/slog"
	"runtime"
	"slices"

	"github.com/breeze-rmm/inputstream/internal/logging"
)

var log = logging.L("libinput")

// Session owns one native context. It is not safe for concurrent use:
// closing a Session while another goroutine is blocked in EventSource.Next
// on it is a caller bug.
type Session struct {
	ctx     NativeContext
	fd      int
	seat    string
	opts    Options
	log     *slog.Logger
	closed  bool
	cleanup runtime.Cleanup
}

// Open creates a Session with the platform binding. It returns
// ErrUnsupported when the binary was built without the native library.
func Open(seat string, access FileAccess, opts Options) (*Session, error) {
	n := systemNative()
	if n == nil {
		return nil, ErrUnsupported
	}
	return OpenNative(n, seat, access, opts)
}

// OpenNative creates a Session over an explicit native binding. An empty
// seat falls back to opts.Seat, then DefaultSeat. Nothing native is left
// allocated when an error is returned.
func OpenNative(n Native, seat string, access FileAccess, opts Options) (*Session, error) {
	if seat == "" {
		seat = opts.Seat
	}
	if seat == "" {
		seat = DefaultSeat
	}
	opts.Seat = seat
	opts.Devices = slices.Clone(opts.Devices)

	if access == nil {
		return nil, fmt.Errorf("%w: no file access capability", ErrContextInitFailed)
	}

	logger := log.With(logging.KeySeat, seat, "backend", opts.Backend.String())

	var (
		ctx NativeContext
		err error
	)
	switch opts.Backend {
	case BackendPath:
		ctx, err = openPathContext(n, access, opts, logger)
	default:
		ctx, err = openSeatContext(n, seat, access, opts, logger)
	}
	if err != nil {
		logger.Warn("session open failed", logging.KeyError, err)
		return nil, err
	}

	s := &Session{
		ctx:  ctx,
		fd:   ctx.FD(),
		seat: seat,
		opts: opts,
		log:  logger,
	}
	// A Session dropped without Close still releases its context, once.
	s.cleanup = runtime.AddCleanup(s, func(c NativeContext) { c.Unref() }, ctx)

	logger.Debug("session opened", logging.KeyFD, s.fd)
	return s, nil
}

func openSeatContext(n Native, seat string, access FileAccess, opts Options, logger *slog.Logger) (NativeContext, error) {
	enum, ok := n.NewEnumerator()
	if !ok {
		return nil, ErrAccessInitFailed
	}
	// The context holds its own reference; ours is dropped on every path.
	defer enum.Unref()

	ctx, ok := n.NewSeatContext(enum, access, opts, logger)
	if !ok {
		return nil, ErrContextInitFailed
	}

	if status := ctx.AssignSeat(seat); status != 0 {
		ctx.Unref()
		return nil, fmt.Errorf("%w: seat %q (status %d)", ErrSeatAssignFailed, seat, status)
	}
	return ctx, nil
}

func openPathContext(n Native, access FileAccess, opts Options, logger *slog.Logger) (NativeContext, error) {
	if len(opts.Devices) == 0 {
		return nil, fmt.Errorf("%w: path backend needs at least one device", ErrDeviceAddFailed)
	}

	ctx, ok := n.NewPathContext(access, opts, logger)
	if !ok {
		return nil, ErrContextInitFailed
	}

	for _, path := range opts.Devices {
		if !ctx.AddDevice(path) {
			ctx.Unref()
			return nil, fmt.Errorf("%w: %s", ErrDeviceAddFailed, path)
		}
	}
	return ctx, nil
}

// FD returns the readiness descriptor. It belongs to the Session; do not
// close it.
func (s *Session) FD() int { return s.fd }

// Seat returns the seat the Session was opened on.
func (s *Session) Seat() string { return s.seat }

// Options returns the options block the Session was opened with.
func (s *Session) Options() Options {
	opts := s.opts
	opts.Devices = slices.Clone(opts.Devices)
	return opts
}

// Close releases the native context. Calling it again returns
// ErrSessionClosed and releases nothing.
func (s *Session) Close() error {
	if s.closed {
		return ErrSessionClosed
	}
	s.closed = true
	s.cleanup.Stop()
	s.ctx.Unref()
	s.log.Debug("session closed")
	return nil
}
