// Package flow implements the submission flow: an explicit four-state
// machine driving validation, the single report request, notifications,
// and the stored report.
package flow

import (
	"errors"
	"fmt"
)

// State is one of the four submission states.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateError      State = "error"
)

// Event triggers a state transition.
type Event string

const (
	EventSubmit  Event = "submit"
	EventSucceed Event = "succeed"
	EventFail    Event = "fail"
	EventReset   Event = "reset"
)

// ErrInFlight is returned when a submit is attempted while a
// submission is already pending. The attempt is a no-op.
var ErrInFlight = errors.New("a submission is already in flight")

// Next is the pure transition function. It never mutates anything and
// is independent of any concurrency primitive.
func Next(s State, e Event) (State, error) {
	switch s {
	case StateIdle:
		if e == EventSubmit {
			return StateSubmitting, nil
		}
	case StateSubmitting:
		switch e {
		case EventSucceed:
			return StateSuccess, nil
		case EventFail:
			return StateError, nil
		case EventSubmit:
			return s, ErrInFlight
		}
	case StateSuccess, StateError:
		if e == EventReset {
			return StateIdle, nil
		}
	}
	return s, fmt.Errorf("invalid transition: %s on %s", e, s)
}
