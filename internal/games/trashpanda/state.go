package trashpanda

import (
	"math"
	"time"
)

// Phase is the session's position in its state machine.
type Phase int

const (
	// PhaseRunning is the normal, unpaused state.
	PhaseRunning Phase = iota
	// PhasePaused freezes the frame loop.
	PhasePaused
	// PhaseGameOver is transient: notification and reset happen synchronously
	// and the session is back in PhaseRunning before control returns.
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Difficulty is the ratcheting part of the game state. The spawn interval
// here is the same value the spawn gate reads.
type Difficulty struct {
	CollectibleSpeed  float64
	HazardSpeed       float64
	HazardProbability float64
	SpawnInterval     time.Duration
}

// GameState is the single explicit value holding score, pause flag and
// difficulty for one session.
type GameState struct {
	Score  int
	Paused bool
	Phase  Phase
	Difficulty

	tuning Tuning
}

// NewGameState creates a state at the tuning's initial constants.
func NewGameState(t Tuning) *GameState {
	s := &GameState{tuning: t}
	s.Reset()
	return s
}

// Reset restores score, pause flag and difficulty to the initial constants.
func (s *GameState) Reset() {
	s.Score = 0
	s.Paused = false
	s.Phase = PhaseRunning
	s.Difficulty = s.initialDifficulty()
}

func (s *GameState) initialDifficulty() Difficulty {
	return Difficulty{
		CollectibleSpeed:  s.tuning.CollectibleSpeed,
		HazardSpeed:       s.tuning.HazardSpeed,
		HazardProbability: s.tuning.HazardProbability,
		SpawnInterval:     s.tuning.SpawnInterval,
	}
}

// AddCatch increments the score and returns the new value.
func (s *GameState) AddCatch() int {
	s.Score++
	return s.Score
}

// TickDifficulty ratchets the difficulty once. It runs on every spawn, so
// the spawn cadence accelerates itself down to the floor.
func (s *GameState) TickDifficulty() {
	t := s.tuning
	if !t.RampEnabled {
		return
	}
	s.HazardProbability = math.Min(t.HazardProbabilityCap, s.HazardProbability+t.HazardProbabilityStep)
	s.CollectibleSpeed = math.Min(t.SpeedCap, s.CollectibleSpeed+t.SpeedStep)
	s.HazardSpeed = math.Min(t.SpeedCap, s.HazardSpeed+t.SpeedStep)
	s.SpawnInterval = max(t.SpawnIntervalFloor, s.SpawnInterval-t.SpawnIntervalStep)
}

// SetPaused moves between PhaseRunning and PhasePaused.
func (s *GameState) SetPaused(paused bool) {
	s.Paused = paused
	if paused {
		s.Phase = PhasePaused
	} else {
		s.Phase = PhaseRunning
	}
}

// AtInitial reports whether score and difficulty equal the initial constants.
func (s *GameState) AtInitial() bool {
	return s.Score == 0 && !s.Paused && s.Difficulty == s.initialDifficulty()
}
