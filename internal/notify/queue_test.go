package notify

import (
	"testing"
	"time"
)

func TestQueue_EnqueueAndActive(t *testing.T) {
	q := NewQueue(5 * time.Second)

	id := q.Enqueue(KindSuccess, "report ready")
	if id == 0 {
		t.Fatal("Expected non-zero ID")
	}

	active := q.Active()
	if len(active) != 1 {
		t.Fatalf("Expected 1 active notification, got %d", len(active))
	}
	if active[0].Kind != KindSuccess || active[0].Message != "report ready" {
		t.Errorf("Unexpected notification: %+v", active[0])
	}
}

func TestQueue_Dismiss(t *testing.T) {
	q := NewQueue(5 * time.Second)

	first := q.Enqueue(KindError, "submission failed")
	second := q.Enqueue(KindSuccess, "copied")

	q.Dismiss(first)

	active := q.Active()
	if len(active) != 1 {
		t.Fatalf("Expected 1 active notification, got %d", len(active))
	}
	if active[0].ID != second {
		t.Errorf("Expected remaining ID %d, got %d", second, active[0].ID)
	}

	// Unknown IDs are a no-op.
	q.Dismiss(9999)
	if q.Len() != 1 {
		t.Errorf("Expected 1 entry after no-op dismiss, got %d", q.Len())
	}
}

func TestQueue_AutoDismiss(t *testing.T) {
	q := NewQueue(5 * time.Second)

	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	q.now = func() time.Time { return current }

	q.Enqueue(KindSuccess, "report ready")

	current = current.Add(3 * time.Second)
	if got := len(q.Active()); got != 1 {
		t.Fatalf("Expected notification still active at 3s, got %d", got)
	}

	current = current.Add(3 * time.Second)
	if got := len(q.Active()); got != 0 {
		t.Fatalf("Expected notification expired at 6s, got %d", got)
	}
	if q.Len() != 0 {
		t.Errorf("Expected expired entries pruned, got %d", q.Len())
	}
}

func TestQueue_IDsIncrease(t *testing.T) {
	q := NewQueue(time.Second)
	a := q.Enqueue(KindSuccess, "a")
	b := q.Enqueue(KindError, "b")
	if b <= a {
		t.Errorf("Expected increasing IDs, got %d then %d", a, b)
	}
}
