// Package form models the contact form's submit feedback: after a submit the
// button shows a confirmation, and a delayed transition puts the form back
// to idle with its fields cleared.
package form

import (
	"errors"
	"strings"
	"time"
)

// RevertDelay is how long the confirmation stays up.
const RevertDelay = 3 * time.Second

var (
	ErrIncomplete = errors.New("name and message are required")
	ErrBusy       = errors.New("form already submitted")
)

type State int

const (
	Idle State = iota
	Submitted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitted:
		return "submitted"
	}
	return "unknown"
}

type Entry struct {
	Name    string
	Email   string
	Product string
	Message string
}

func (e Entry) validate() error {
	if strings.TrimSpace(e.Name) == "" || strings.TrimSpace(e.Message) == "" {
		return ErrIncomplete
	}
	return nil
}

// Form is driven by the frame loop: Tick fires the pending transition once
// its deadline passes, so tests can step time explicitly.
type Form struct {
	state    State
	entry    Entry
	deadline time.Time
	pending  bool
	delay    time.Duration

	// OnSubmit, if set, receives every accepted entry.
	OnSubmit func(Entry)
}

func New() *Form { return &Form{delay: RevertDelay} }

// WithDelay overrides the confirmation delay.
func (f *Form) WithDelay(d time.Duration) *Form {
	f.delay = d
	return f
}

func (f *Form) State() State { return f.state }

// Entry is the last accepted entry; it is cleared when the form reverts.
func (f *Form) Entry() Entry { return f.entry }

// Submit accepts e at now and schedules the revert.
func (f *Form) Submit(e Entry, now time.Time) error {
	if f.state == Submitted {
		return ErrBusy
	}
	if err := e.validate(); err != nil {
		return err
	}
	f.state = Submitted
	f.entry = e
	f.deadline = now.Add(f.delay)
	f.pending = true
	if f.OnSubmit != nil {
		f.OnSubmit(e)
	}
	return nil
}

// Tick fires the pending revert if its deadline has passed and reports
// whether it did.
func (f *Form) Tick(now time.Time) bool {
	if !f.pending || now.Before(f.deadline) {
		return false
	}
	f.reset()
	return true
}

// Cancel drops a pending revert and leaves the form in its current state.
func (f *Form) Cancel() {
	f.pending = false
}

func (f *Form) reset() {
	f.state = Idle
	f.entry = Entry{}
	f.pending = false
	f.deadline = time.Time{}
}

// Remaining is the time left until the revert, zero when none is pending.
func (f *Form) Remaining(now time.Time) time.Duration {
	if !f.pending {
		return 0
	}
	return max(0, f.deadline.Sub(now))
}

// Label is the submit button text for the current state.
func (f *Form) Label() string {
	if f.state == Submitted {
		return "Enviado!"
	}
	return "Enviar Mensaje"
}
