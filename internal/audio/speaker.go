// Package audio plays the game's sound effects on the local sound card.
// All sounds are synthesised; there are no asset files.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Speaker implements core.AudioFeedback with beep's speaker.
// Calls before Initialize or after Close are silently dropped.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSpeaker creates an uninitialised speaker.
func NewSpeaker() *Speaker {
	return &Speaker{mixer: &beep.Mixer{}}
}

// Initialize opens the audio device.
func (s *Speaker) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Close silences everything and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.mixer.Clear()
	s.initialized = false
}

// PlayMovement plays a short high blip.
func (s *Speaker) PlayMovement() {
	s.play(Movement())
}

// PlayCatch plays a rising chirp.
func (s *Speaker) PlayCatch() {
	s.play(Catch())
}

// PlayGameOver plays a falling tone.
func (s *Speaker) PlayGameOver() {
	s.play(GameOver())
}

func (s *Speaker) play(st beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	// The mixer is read by the speaker goroutine
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Movement returns the movement blip.
func Movement() beep.Streamer {
	return Sweep(880, 880, 40*time.Millisecond, 0.15)
}

// Catch returns the catch chirp.
func Catch() beep.Streamer {
	return Sweep(600, 1200, 120*time.Millisecond, 0.2)
}

// GameOver returns the game-over tone.
func GameOver() beep.Streamer {
	return Sweep(440, 110, 600*time.Millisecond, 0.25)
}

// Sweep returns a sine tone that glides from one frequency to another over d.
func Sweep(from, to float64, d time.Duration, amp float64) beep.Streamer {
	n := sampleRate.N(d)
	return beep.Take(n, &sweepGenerator{
		sr:    sampleRate,
		from:  from,
		to:    to,
		total: n,
		amp:   amp,
	})
}

// sweepGenerator is an endless streamer; Sweep bounds it with beep.Take.
type sweepGenerator struct {
	sr    beep.SampleRate
	from  float64
	to    float64
	total int
	amp   float64
	pos   int
	phase float64
}

func (g *sweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.total), 1)
		freq := g.from + (g.to-g.from)*progress

		// Short linear fade at both ends avoids clicks
		env := math.Min(1, math.Min(progress, 1-progress)*20)
		sample := g.amp * env * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += 2 * math.Pi * freq / float64(g.sr)
		if g.phase > 2*math.Pi {
			g.phase -= 2 * math.Pi
		}
		g.pos++
	}
	return len(samples), true
}

func (g *sweepGenerator) Err() error {
	return nil
}
