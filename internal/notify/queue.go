package notify

import (
	"sync"
	"time"
)

// Kind classifies a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notification is one transient message communicating the outcome of
// an action.
type Notification struct {
	ID      int       `json:"id"`
	Kind    Kind      `json:"kind"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Queue is a process-wide queue of notifications with explicit enqueue
// and dismiss operations and a fixed auto-dismiss timeout.
type Queue struct {
	mu      sync.Mutex
	entries []Notification
	nextID  int
	timeout time.Duration
	now     func() time.Time // injectable for tests
}

// NewQueue creates a queue whose entries auto-dismiss after timeout.
func NewQueue(timeout time.Duration) *Queue {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Queue{
		timeout: timeout,
		now:     time.Now,
		nextID:  1,
	}
}

// Enqueue adds a notification and returns its ID.
func (q *Queue) Enqueue(kind Kind, message string) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	id := q.nextID
	q.nextID++
	q.entries = append(q.entries, Notification{
		ID:      id,
		Kind:    kind,
		Message: message,
		At:      q.now(),
	})
	return id
}

// Dismiss removes the notification with the given ID. Dismissing an
// unknown ID is a no-op.
func (q *Queue) Dismiss(id int) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, e := range q.entries {
		if e.ID == id {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return
		}
	}
}

// Active returns the notifications that have not been dismissed and
// have not outlived the auto-dismiss timeout. Expired entries are
// pruned as a side effect.
func (q *Queue) Active() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	cutoff := q.now().Add(-q.timeout)
	kept := q.entries[:0]
	for _, e := range q.entries {
		if e.At.After(cutoff) {
			kept = append(kept, e)
		}
	}
	q.entries = kept

	out := make([]Notification, len(q.entries))
	copy(out, q.entries)
	return out
}

// Len reports the number of undismissed entries, including expired
// ones not yet pruned.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}
