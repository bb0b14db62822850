package trashpanda

import "github.com/vovakirdan/trashpanda/internal/core"

// Sprite identifies an image the renderer knows how to draw.
// The simulation never sees pixels; hosts map sprites to glyphs or images.
type Sprite int

const (
	SpritePlayer Sprite = iota
	SpriteCollectible
	SpriteHazard
)

// String returns the sprite's asset-style name.
func (s Sprite) String() string {
	switch s {
	case SpritePlayer:
		return "racoon"
	case SpriteCollectible:
		return "trash"
	case SpriteHazard:
		return "enemy"
	default:
		return "unknown"
	}
}

// Renderer draws one frame. DrawSprite receives the top-left corner and size
// in world units.
type Renderer interface {
	Clear(w, h float64)
	DrawSprite(s Sprite, x, y, w, h float64)
}

// Notifier shows a user-facing message. Hosts decide whether it blocks.
type Notifier interface {
	Notify(message string)
}

// ScoreListener is told about every score change, including resets to zero.
type ScoreListener interface {
	ScoreChanged(score int)
}

// Ambience toggles the host's background animation.
type Ambience interface {
	SetAmbientActive(active bool)
}

type nopRenderer struct{}

func (nopRenderer) Clear(float64, float64)                                {}
func (nopRenderer) DrawSprite(Sprite, float64, float64, float64, float64) {}

type nopNotifier struct{}

func (nopNotifier) Notify(string) {}

type nopScores struct{}

func (nopScores) ScoreChanged(int) {}

type nopAmbience struct{}

func (nopAmbience) SetAmbientActive(bool) {}

type nopScheduler struct{}

func (nopScheduler) RequestFrame() {}

// SoundBoard gates an AudioFeedback behind the global mute flag.
type SoundBoard struct {
	out   core.AudioFeedback
	muted bool
}

// NewSoundBoard wraps out; a nil out plays nothing.
func NewSoundBoard(out core.AudioFeedback, muted bool) *SoundBoard {
	if out == nil {
		out = core.NopAudio{}
	}
	return &SoundBoard{out: out, muted: muted}
}

// PlayMovement plays the movement blip unless muted.
func (b *SoundBoard) PlayMovement() {
	if !b.muted {
		b.out.PlayMovement()
	}
}

// PlayCatch plays the catch sound unless muted.
func (b *SoundBoard) PlayCatch() {
	if !b.muted {
		b.out.PlayCatch()
	}
}

// PlayGameOver plays the game-over sound unless muted.
func (b *SoundBoard) PlayGameOver() {
	if !b.muted {
		b.out.PlayGameOver()
	}
}

// Muted reports the mute flag.
func (b *SoundBoard) Muted() bool { return b.muted }

// SetMuted sets the mute flag.
func (b *SoundBoard) SetMuted(muted bool) { b.muted = muted }

// Toggle flips the mute flag and returns the new value.
func (b *SoundBoard) Toggle() bool {
	b.muted = !b.muted
	return b.muted
}

// TouchDirection maps a horizontal touch or click position to a move.
// The left half of the viewport moves left, everything else moves right.
func TouchDirection(x, viewportW float64) Direction {
	if core.TouchAction(x, viewportW) == core.ActionLeft {
		return Left
	}
	return Right
}
