//go:build linux

package libinput

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/breeze-rmm/inputstream/internal/logging"
)

// PollWaiter blocks in poll(2) with no timeout. EINTR is retried, since
// the Go runtime interrupts syscalls with its own signals.
type PollWaiter struct{}

func (PollWaiter) Wait(fd int) error {
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	if err := poll(fds); err != nil {
		return fmt.Errorf("poll fd %d: %w", fd, err)
	}
	return checkRevents(fd, fds[0].Revents)
}

// ContextWaiter is a PollWaiter that also returns when its context is done.
// Cancellation wakes the poll through a self-pipe.
type ContextWaiter struct {
	ctx  context.Context
	stop func() bool

	mu     sync.Mutex
	r, w   int
	closed bool
}

// NewContextWaiter creates the wake pipe and arms it on ctx.
func NewContextWaiter(ctx context.Context) (*ContextWaiter, error) {
	var p [2]int
	if err := unix.Pipe2(p[:], unix.O_CLOEXEC|unix.O_NONBLOCK); err != nil {
		return nil, fmt.Errorf("wake pipe: %w", err)
	}
	cw := &ContextWaiter{ctx: ctx, r: p[0], w: p[1]}
	cw.stop = context.AfterFunc(ctx, cw.wake)
	return cw, nil
}

func (cw *ContextWaiter) wake() {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	if !cw.closed {
		if _, err := unix.Write(cw.w, []byte{1}); err != nil && err != unix.EAGAIN {
			log.Debug("wake context waiter", logging.KeyError, err)
		}
	}
}

// Wait returns nil when fd is readable, or ctx.Err() once the context is done.
func (cw *ContextWaiter) Wait(fd int) error {
	if err := cw.ctx.Err(); err != nil {
		return err
	}

	cw.mu.Lock()
	if cw.closed {
		cw.mu.Unlock()
		return unix.EBADF
	}
	wakeFd := cw.r
	cw.mu.Unlock()

	fds := []unix.PollFd{
		{Fd: int32(fd), Events: unix.POLLIN},
		{Fd: int32(wakeFd), Events: unix.POLLIN},
	}
	if err := poll(fds); err != nil {
		return fmt.Errorf("poll fd %d: %w", fd, err)
	}
	if fds[1].Revents != 0 {
		if err := cw.ctx.Err(); err != nil {
			return err
		}
	}
	return checkRevents(fd, fds[0].Revents)
}

// Close disarms the context hook and closes the pipe.
func (cw *ContextWaiter) Close() error {
	cw.stop()

	cw.mu.Lock()
	defer cw.mu.Unlock()
	if cw.closed {
		return nil
	}
	cw.closed = true
	unix.Close(cw.w)
	return unix.Close(cw.r)
}

func poll(fds []unix.PollFd) error {
	for {
		_, err := unix.Poll(fds, -1)
		if err == unix.EINTR {
			continue
		}
		return err
	}
}

func checkRevents(fd int, revents int16) error {
	if revents&(unix.POLLERR|unix.POLLNVAL) != 0 {
		return fmt.Errorf("poll fd %d: revents %#x", fd, revents)
	}
	// Hang-up without data would wake us forever.
	if revents&unix.POLLHUP != 0 && revents&unix.POLLIN == 0 {
		return fmt.Errorf("poll fd %d: hang-up", fd)
	}
	return nil
}
