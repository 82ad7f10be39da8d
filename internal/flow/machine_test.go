package flow

import (
	"errors"
	"testing"
)

func TestNext_Transitions(t *testing.T) {
	tests := []struct {
		from State
		on   Event
		want State
		ok   bool
	}{
		{StateIdle, EventSubmit, StateSubmitting, true},
		{StateSubmitting, EventSucceed, StateSuccess, true},
		{StateSubmitting, EventFail, StateError, true},
		{StateSuccess, EventReset, StateIdle, true},
		{StateError, EventReset, StateIdle, true},

		{StateIdle, EventSucceed, StateIdle, false},
		{StateIdle, EventFail, StateIdle, false},
		{StateIdle, EventReset, StateIdle, false},
		{StateSuccess, EventSubmit, StateSuccess, false},
		{StateError, EventSubmit, StateError, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_"+string(tt.on), func(t *testing.T) {
			got, err := Next(tt.from, tt.on)
			if tt.ok && err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if !tt.ok && err == nil {
				t.Fatal("Expected error, got nil")
			}
			if got != tt.want {
				t.Errorf("Next(%s, %s) = %s, want %s", tt.from, tt.on, got, tt.want)
			}
		})
	}
}

func TestNext_SubmitWhileSubmitting(t *testing.T) {
	got, err := Next(StateSubmitting, EventSubmit)
	if !errors.Is(err, ErrInFlight) {
		t.Fatalf("Expected ErrInFlight, got %v", err)
	}
	if got != StateSubmitting {
		t.Errorf("Expected state unchanged, got %s", got)
	}
}
