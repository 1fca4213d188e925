package core

import (
	"testing"
	"time"
)

func TestFixedStepDue(t *testing.T) {
	now := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return now }

	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("interval %v", fs.Interval())
	}
	// The first call releases the tick primed at construction.
	if n := fs.Due(4); n != 1 {
		t.Fatalf("first call expected 1 tick, got %d", n)
	}
	now = now.Add(50 * time.Millisecond)
	if n := fs.Due(4); n != 0 {
		t.Fatalf("half an interval expected 0 ticks, got %d", n)
	}
	now = now.Add(260 * time.Millisecond)
	if n := fs.Due(4); n != 3 {
		t.Fatalf("expected 3 accumulated ticks, got %d", n)
	}
	now = now.Add(2 * time.Second)
	if n := fs.Due(4); n != 4 {
		t.Fatalf("expected catch-up capped at 4, got %d", n)
	}
	now = now.Add(10 * time.Millisecond)
	if n := fs.Due(4); n != 0 {
		t.Fatalf("capped backlog should be dropped, got %d", n)
	}
}

func TestFixedStepDefaultsTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("expected 60 TPS fallback, got %v", fs.Interval())
	}
}
