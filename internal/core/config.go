package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the host (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
	Muted    bool  // Start with audio feedback muted
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score  int  // Current score
	Paused bool // Whether the game is paused
	Muted  bool // Whether audio feedback is muted
}

// EventKind identifies something notable that happened during a step.
type EventKind int

const (
	// EventCaught is emitted once per collectible caught.
	EventCaught EventKind = iota + 1
	// EventGameOver is emitted when a run ends; the game has already reset.
	EventGameOver
)

// Event is a single notable occurrence reported by Game.Step.
type Event struct {
	Kind  EventKind
	Score int // Score at the time of the event (final score for EventGameOver)
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
