//go:build !linux

package libinput

import "context"

// PollWaiter is only implemented on Linux.
type PollWaiter struct{}

func (PollWaiter) Wait(int) error { return ErrUnsupported }

// ContextWaiter is only implemented on Linux.
type ContextWaiter struct{}

func NewContextWaiter(context.Context) (*ContextWaiter, error) { return nil, ErrUnsupported }

func (*ContextWaiter) Wait(int) error { return ErrUnsupported }
func (*ContextWaiter) Close() error   { return nil }
