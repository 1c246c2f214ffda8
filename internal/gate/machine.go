// Package gate tracks the questionnaire's unlock flow: whether an
// evaluation may start, is running, passed, or was rejected. The contact
// form is revealed only from the Passed state.
package gate

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// State is the machine's current phase.
type State int

const (
	StateIdle State = iota
	StateEvaluating
	StatePassed
	StateRejected
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEvaluating:
		return "evaluating"
	case StatePassed:
		return "passed"
	case StateRejected:
		return "rejected"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

var (
	// ErrEvaluationInFlight refuses a second submission while one runs.
	ErrEvaluationInFlight = errors.New("an evaluation is already in flight")
	// ErrAlreadyUnlocked refuses re-evaluation once passed; Passed is
	// terminal for the session.
	ErrAlreadyUnlocked = errors.New("the form is already unlocked")
)

// IncompleteError blocks a submission whose answers fail the local
// completeness guard; no network call is made.
type IncompleteError struct {
	Reasons []string
}

func (e *IncompleteError) Error() string {
	return "cannot evaluate yet: " + strings.Join(e.Reasons, " · ")
}

// RejectKind classifies why an evaluation ended without unlocking.
type RejectKind int

const (
	// RejectNotPassed is a completed evaluation with pass=false.
	RejectNotPassed RejectKind = iota
	// RejectRateLimited carries the wait time before the next attempt.
	RejectRateLimited
	// RejectUnavailable covers network and parse failures.
	RejectUnavailable
)

// Rejection describes a terminated evaluation that kept the form locked.
type Rejection struct {
	Kind       RejectKind
	RetryAfter time.Duration
	Message    string
}

// Machine is the per-session gating state machine. It is not safe for
// concurrent use; one session drives it from one goroutine.
type Machine struct {
	state     State
	rejection *Rejection
}

// New starts a machine in Idle.
func New() *Machine {
	return &Machine{state: StateIdle}
}

func (m *Machine) State() State { return m.state }

// Unlocked reports whether the contact form may be shown.
func (m *Machine) Unlocked() bool { return m.state == StatePassed }

// Rejection returns the most recent rejection, or nil.
func (m *Machine) Rejection() *Rejection { return m.rejection }

// Begin transitions to Evaluating. blockers is the completeness guard's
// output; a non-empty list refuses the transition with the exact reasons.
func (m *Machine) Begin(blockers []string) error {
	switch m.state {
	case StateEvaluating:
		return ErrEvaluationInFlight
	case StatePassed:
		return ErrAlreadyUnlocked
	}
	if len(blockers) > 0 {
		return &IncompleteError{Reasons: blockers}
	}
	m.state = StateEvaluating
	m.rejection = nil
	return nil
}

// Pass unlocks the form. Only valid while Evaluating.
func (m *Machine) Pass() error {
	if m.state != StateEvaluating {
		return fmt.Errorf("cannot pass from %s", m.state)
	}
	m.state = StatePassed
	m.rejection = nil
	return nil
}

// Reject records a non-unlock outcome and returns to a retryable state.
func (m *Machine) Reject(r Rejection) error {
	if m.state != StateEvaluating {
		return fmt.Errorf("cannot reject from %s", m.state)
	}
	m.state = StateRejected
	m.rejection = &r
	return nil
}
