package trashpanda

import (
	"time"

	"github.com/vovakirdan/trashpanda/internal/core"
)

// Clock drives the frame chain and the spawn gate.
//
// running says whether frames should do work; pending says a frame has been
// requested from the host and not delivered yet. Keeping them apart means a
// quick pause/resume never starts a second chain next to the first.
type Clock struct {
	running   bool
	pending   bool
	frames    uint64
	lastSpawn time.Time
}

// Start marks the clock running and requests a frame unless one is pending.
func (c *Clock) Start(s core.FrameScheduler) {
	c.running = true
	c.request(s)
}

// Stop marks the clock stopped; a pending frame will be delivered and ignored.
func (c *Clock) Stop() {
	c.running = false
}

// Running reports whether frames do work.
func (c *Clock) Running() bool {
	return c.running
}

// Pending reports whether a frame has been requested and not yet delivered.
func (c *Clock) Pending() bool {
	return c.pending
}

// Frames returns how many frames did work since the clock was created.
func (c *Clock) Frames() uint64 {
	return c.frames
}

// Deliver consumes the pending frame and reports whether it should run.
func (c *Clock) Deliver() bool {
	c.pending = false
	if !c.running {
		return false
	}
	c.frames++
	return true
}

// Rearm requests the next frame while running.
func (c *Clock) Rearm(s core.FrameScheduler) {
	if c.running {
		c.request(s)
	}
}

func (c *Clock) request(s core.FrameScheduler) {
	if c.pending {
		return
	}
	c.pending = true
	s.RequestFrame()
}

// SpawnDue reports whether more than interval has elapsed since the last spawn.
// The zero lastSpawn makes the very first check succeed.
func (c *Clock) SpawnDue(now time.Time, interval time.Duration) bool {
	return now.Sub(c.lastSpawn) > interval
}

// MarkSpawn resets the spawn gate to now.
func (c *Clock) MarkSpawn(now time.Time) {
	c.lastSpawn = now
}

// LastSpawn returns the time of the last spawn.
func (c *Clock) LastSpawn() time.Time {
	return c.lastSpawn
}
