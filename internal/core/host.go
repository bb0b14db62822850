package core

// FrameScheduler is the host's animation primitive: each RequestFrame call
// asks the host to invoke the game's frame callback once, later.
type FrameScheduler interface {
	RequestFrame()
}

// FrameSchedulerFunc adapts a function to the FrameScheduler interface.
type FrameSchedulerFunc func()

// RequestFrame calls f().
func (f FrameSchedulerFunc) RequestFrame() { f() }

// AudioFeedback plays the short sound effects a game emits.
// Implementations must not block the caller.
type AudioFeedback interface {
	PlayMovement()
	PlayCatch()
	PlayGameOver()
}

// NopAudio is an AudioFeedback that plays nothing.
type NopAudio struct{}

func (NopAudio) PlayMovement() {}
func (NopAudio) PlayCatch()    {}
func (NopAudio) PlayGameOver() {}

// Host bundles the capabilities a platform hands to a game on Reset.
// Nil fields are replaced with no-op implementations by the game.
type Host struct {
	Frames FrameScheduler
	Audio  AudioFeedback
}
