package libinput

import (
	"context"
	"fmt"
	"iter"
	"log/slog"

	"github.com/breeze-rmm/inputstream/internal/logging"
)

// Waiter blocks until fd is readable. A returned error is terminal for the
// EventSource using it.
type Waiter interface {
	Wait(fd int) error
}

// SourceOption configures an EventSource.
type SourceOption func(*sourceConfig)

type sourceConfig struct {
	waiter    Waiter
	ctx       context.Context
	transform Transform
	logger    *slog.Logger
}

// WithWaiter replaces the default poll(2) waiter.
func WithWaiter(w Waiter) SourceOption {
	return func(c *sourceConfig) { c.waiter = w }
}

// WithContext ends the stream when ctx is done, interrupting a blocked wait.
// Ignored when WithWaiter is also given.
func WithContext(ctx context.Context) SourceOption {
	return func(c *sourceConfig) { c.ctx = ctx }
}

// WithTransform requests screen-mapped coordinates for absolute events.
func WithTransform(t Transform) SourceOption {
	return func(c *sourceConfig) { c.transform = t }
}

// WithLogger sets the logger used by the source and its decoder.
func WithLogger(l *slog.Logger) SourceOption {
	return func(c *sourceConfig) { c.logger = l }
}

// EventSource is a blocking, non-restartable stream of events from one
// Session. Once it ends (wait failure, cancellation, closed session) it
// never yields again; open a new Session to resume.
type EventSource struct {
	session *Session
	decoder *Decoder
	waiter  Waiter
	release func() error
	log     *slog.Logger
	done    bool
	err     error
}

// Events returns a stream over the session's events.
func (s *Session) Events(opts ...SourceOption) *EventSource {
	cfg := sourceConfig{logger: s.log}
	for _, opt := range opts {
		opt(&cfg)
	}

	es := &EventSource{
		session: s,
		decoder: NewDecoder(cfg.logger, cfg.transform),
		log:     cfg.logger,
	}

	switch {
	case cfg.waiter != nil:
		es.waiter = cfg.waiter
	case cfg.ctx != nil:
		w, err := NewContextWaiter(cfg.ctx)
		if err != nil {
			es.finish(fmt.Errorf("create context waiter: %w", err))
			break
		}
		es.waiter = w
		es.release = w.Close
	default:
		es.waiter = PollWaiter{}
	}
	return es
}

// Next blocks until an event is available and returns it. ok is false once
// the stream has ended; every later call also returns false.
func (es *EventSource) Next() (ev Event, ok bool) {
	for !es.done {
		if es.session.closed {
			es.finish(ErrSessionClosed)
			break
		}

		ctx := es.session.ctx
		if status := ctx.Dispatch(); status < 0 {
			es.log.Debug("dispatch failed", "errno", -status)
		}

		if raw := ctx.NextEvent(); raw != nil {
			ev := es.decode(raw)
			switch ev.Kind() {
			case KindDeviceAdded, KindDeviceRemoved:
				es.log.Debug(ev.Kind().String(), logging.KeyDevice, ev.Device().Sysname, "name", ev.Device().Name)
			}
			return ev, true
		}

		// Readable is only a hint: after waking we dispatch again and may
		// find nothing, in which case we come straight back here.
		if err := es.waiter.Wait(es.session.fd); err != nil {
			es.log.Warn("readiness wait failed, ending event stream", logging.KeyError, err)
			es.finish(err)
		}
	}
	return nil, false
}

func (es *EventSource) decode(raw RawEvent) Event {
	defer func() {
		if r := recover(); r != nil {
			es.finish(fmt.Errorf("decode: %v", r))
			panic(r)
		}
	}()
	return es.decoder.Decode(raw)
}

// All returns the stream as an iterator. Breaking out of the loop leaves the
// source usable; the iterator ends when Next would return false.
func (es *EventSource) All() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for {
			ev, ok := es.Next()
			if !ok || !yield(ev) {
				return
			}
		}
	}
}

// Err returns the error that ended the stream, or nil while it is live.
func (es *EventSource) Err() error { return es.err }

// Close ends the stream and frees waiter resources. The Session stays open.
func (es *EventSource) Close() error {
	if es.done {
		return nil
	}
	es.finish(nil)
	return nil
}

func (es *EventSource) finish(err error) {
	if es.done {
		return
	}
	es.done = true
	es.err = err
	if es.release != nil {
		if rerr := es.release(); rerr != nil {
			es.log.Debug("release waiter", logging.KeyError, rerr)
		}
		es.release = nil
	}
}
