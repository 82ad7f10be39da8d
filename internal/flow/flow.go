package flow

import (
	"context"
	"sync"
	"time"

	"github.com/pkorolev/leadflow/internal/model"
	"github.com/pkorolev/leadflow/internal/notify"
	"github.com/pkorolev/leadflow/internal/validate"
)

// User-facing notification copy. Transport and malformed-response
// failures read identically; they differ only in the error value.
const (
	msgSuccess = "Your report is ready."
	msgFailure = "Something went wrong. Please try again."
)

// Generator produces a report for a validated submission.
type Generator interface {
	Generate(ctx context.Context, sub model.Submission) (*model.Report, error)
}

// Flow drives one lead through validate -> submit -> report. At most
// one submission is in flight at a time; the state machine enforces it.
type Flow struct {
	mu     sync.Mutex
	state  State
	report *model.Report
	fields model.Submission

	gen     Generator
	notices *notify.Queue

	successRevert time.Duration
	schedule      func(d time.Duration, fn func()) // injectable for tests
}

// New creates a Flow. successRevert is the fixed delay after which the
// Success state reverts to Idle.
func New(gen Generator, notices *notify.Queue, successRevert time.Duration) *Flow {
	if successRevert <= 0 {
		successRevert = 3 * time.Second
	}
	return &Flow{
		state:         StateIdle,
		gen:           gen,
		notices:       notices,
		successRevert: successRevert,
		schedule: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}
}

// State returns the current submission state.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Report returns the current report, or nil. A report is present only
// when the latest submission succeeded and no newer one has started.
func (f *Flow) Report() *model.Report {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.report
}

// Fields returns the last entered field values. They survive a failed
// submission so the user can correct and retry; a success clears them.
func (f *Flow) Fields() model.Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// Submit runs one submission attempt. Invalid input returns
// validate.FieldErrors without any network call. A submit while another
// submission is pending returns ErrInFlight without any network call.
func (f *Flow) Submit(ctx context.Context, sub model.Submission) (*model.Report, error) {
	if errs := validate.Submission(sub); errs != nil {
		f.mu.Lock()
		f.fields = sub
		f.mu.Unlock()
		return nil, errs
	}

	f.mu.Lock()
	next, err := Next(f.state, EventSubmit)
	if err != nil {
		f.mu.Unlock()
		return nil, err
	}
	f.state = next
	f.fields = sub
	f.report = nil // a newer submission invalidates the previous report
	f.mu.Unlock()

	report, genErr := f.gen.Generate(ctx, sub)

	f.mu.Lock()
	defer f.mu.Unlock()

	if genErr != nil {
		f.state, _ = Next(f.state, EventFail)
		f.notices.Enqueue(notify.KindError, msgFailure)
		// The affordance returns to Idle immediately so the user can retry.
		f.state, _ = Next(f.state, EventReset)
		return nil, genErr
	}

	f.report = report
	f.state, _ = Next(f.state, EventSucceed)
	f.notices.Enqueue(notify.KindSuccess, msgSuccess)
	f.fields = model.Submission{}

	f.schedule(f.successRevert, f.revert)

	return report, nil
}

// revert moves Success back to Idle once the fixed delay elapses.
func (f *Flow) revert() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateSuccess {
		f.state, _ = Next(f.state, EventReset)
	}
}
