package trashpanda

import (
	"testing"
	"time"
)

func TestClockSingleChain(t *testing.T) {
	var c Clock
	rec := &recorder{}

	c.Start(rec)
	c.Start(rec)
	if rec.requests != 1 {
		t.Errorf("second Start with a pending frame requested again: %d requests", rec.requests)
	}

	// Stop then restart before the pending frame lands
	c.Stop()
	c.Start(rec)
	if rec.requests != 1 {
		t.Errorf("pause/resume created a second chain: %d requests", rec.requests)
	}

	if !c.Deliver() {
		t.Fatal("running clock should run the delivered frame")
	}
	c.Rearm(rec)
	if rec.requests != 2 {
		t.Errorf("Rearm should request the next frame, got %d requests", rec.requests)
	}
}

func TestClockStoppedFrameIsDropped(t *testing.T) {
	var c Clock
	rec := &recorder{}

	c.Start(rec)
	c.Stop()
	if c.Deliver() {
		t.Error("frame delivered after Stop should not run")
	}
	c.Rearm(rec)
	if rec.requests != 1 {
		t.Errorf("stopped clock should not rearm, got %d requests", rec.requests)
	}
	if c.Pending() {
		t.Error("delivered frame should clear pending")
	}

	c.Start(rec)
	if rec.requests != 2 {
		t.Errorf("Start after the chain drained should request once, got %d", rec.requests)
	}
	if c.Frames() != 0 {
		t.Errorf("Frames() = %d, expected 0", c.Frames())
	}
}

func TestClockSpawnGate(t *testing.T) {
	var c Clock

	if !c.SpawnDue(epoch, time.Second) {
		t.Error("first check with no previous spawn should be due")
	}
	c.MarkSpawn(epoch)

	tests := []struct {
		elapsed time.Duration
		due     bool
	}{
		{0, false},
		{999 * time.Millisecond, false},
		{time.Second, false}, // strictly greater only
		{time.Second + time.Millisecond, true},
	}
	for _, tc := range tests {
		if got := c.SpawnDue(epoch.Add(tc.elapsed), time.Second); got != tc.due {
			t.Errorf("SpawnDue(+%v) = %v, expected %v", tc.elapsed, got, tc.due)
		}
	}
	if !c.LastSpawn().Equal(epoch) {
		t.Errorf("LastSpawn() = %v", c.LastSpawn())
	}
}
