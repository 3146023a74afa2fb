// Package meditation implements the client-side meditation countdown.
//
// A Timer is Idle until Start, then Running for a fixed session length. Each
// Tick removes one second. When the countdown reaches zero, or Stop is called
// after at least one second, the session is submitted with the elapsed time
// rounded up to whole minutes and the timer returns to Idle.
package meditation

import (
	"context"
	"errors"
	"sync"
	"time"
)

// SessionLength is the fixed countdown of one session.
const SessionLength = 600 * time.Second

type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

var ErrAlreadyRunning = errors.New("meditation timer already running")

// Session is what gets submitted when a countdown ends.
type Session struct {
	DurationMinutes int
	Notes           string
}

// Submitter persists a finished session.
type Submitter interface {
	SubmitMeditation(ctx context.Context, s Session) error
}

// SubmitFunc adapts a function to Submitter.
type SubmitFunc func(ctx context.Context, s Session) error

func (f SubmitFunc) SubmitMeditation(ctx context.Context, s Session) error { return f(ctx, s) }

// Ambience is the background audio played while running.
type Ambience interface {
	Play()
	Pause()
}

type silence struct{}

func (silence) Play()  {}
func (silence) Pause() {}

type Option func(*Timer)

func WithAmbience(a Ambience) Option {
	return func(t *Timer) { t.ambience = a }
}

func WithLength(d time.Duration) Option {
	return func(t *Timer) { t.length = d }
}

type Timer struct {
	mu        sync.Mutex
	state     State
	length    time.Duration
	remaining time.Duration
	notes     string
	submitter Submitter
	ambience  Ambience
}

func NewTimer(submitter Submitter, opts ...Option) *Timer {
	t := &Timer{
		length:    SessionLength,
		submitter: submitter,
		ambience:  silence{},
	}
	for _, opt := range opts {
		opt(t)
	}
	t.remaining = t.length
	return t
}

func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *Timer) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

// SetNotes records notes to send with the session.
func (t *Timer) SetNotes(notes string) {
	t.mu.Lock()
	t.notes = notes
	t.mu.Unlock()
}

// Start moves Idle to Running with a full countdown.
func (t *Timer) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == Running {
		return ErrAlreadyRunning
	}
	t.state = Running
	t.remaining = t.length
	t.ambience.Play()
	return nil
}

// Tick removes one second. It reports whether the countdown finished and
// the session was submitted. Ticks while Idle are ignored.
func (t *Timer) Tick(ctx context.Context) (bool, error) {
	t.mu.Lock()
	if t.state != Running {
		t.mu.Unlock()
		return false, nil
	}
	t.remaining -= time.Second
	if t.remaining > 0 {
		t.mu.Unlock()
		return false, nil
	}
	session, ok := t.finishLocked()
	t.mu.Unlock()

	return ok, t.submit(ctx, session, ok)
}

// Stop ends a running session early. Nothing is submitted when no time has
// elapsed. It reports whether a session was submitted.
func (t *Timer) Stop(ctx context.Context) (bool, error) {
	t.mu.Lock()
	if t.state != Running {
		t.mu.Unlock()
		return false, nil
	}
	session, ok := t.finishLocked()
	t.mu.Unlock()

	return ok, t.submit(ctx, session, ok)
}

// Run drives the timer from ticks until the countdown finishes. When ctx is
// cancelled first, the session is stopped and whatever elapsed is submitted.
func (t *Timer) Run(ctx context.Context, ticks <-chan time.Time) (bool, error) {
	for {
		select {
		case <-ctx.Done():
			return t.Stop(context.WithoutCancel(ctx))
		case <-ticks:
			done, err := t.Tick(ctx)
			if done || err != nil {
				return done, err
			}
			if t.State() == Idle {
				return false, nil
			}
		}
	}
}

func (t *Timer) finishLocked() (Session, bool) {
	elapsed := t.length - t.remaining
	t.state = Idle
	t.remaining = t.length
	t.ambience.Pause()

	if elapsed <= 0 {
		return Session{}, false
	}
	return Session{DurationMinutes: Minutes(elapsed), Notes: t.notes}, true
}

func (t *Timer) submit(ctx context.Context, s Session, ok bool) error {
	if !ok || t.submitter == nil {
		return nil
	}
	return t.submitter.SubmitMeditation(ctx, s)
}

// Minutes rounds an elapsed duration up to whole minutes.
func Minutes(elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}
	return int((elapsed + time.Minute - 1) / time.Minute)
}
