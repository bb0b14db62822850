package trashpanda

import "time"

// recorder implements every port and remembers what it was told.
type recorder struct {
	requests  int
	cleared   int
	sprites   []drawnSprite
	movement  int
	catches   int
	gameOvers int
	notes     []string
	scores    []int
	ambient   []bool
}

type drawnSprite struct {
	sprite     Sprite
	x, y, w, h float64
}

func (r *recorder) RequestFrame() { r.requests++ }

func (r *recorder) Clear(_, _ float64) {
	r.cleared++
	r.sprites = r.sprites[:0]
}

func (r *recorder) DrawSprite(s Sprite, x, y, w, h float64) {
	r.sprites = append(r.sprites, drawnSprite{s, x, y, w, h})
}

func (r *recorder) PlayMovement() { r.movement++ }
func (r *recorder) PlayCatch()    { r.catches++ }
func (r *recorder) PlayGameOver() { r.gameOvers++ }

func (r *recorder) Notify(message string) { r.notes = append(r.notes, message) }

func (r *recorder) ScoreChanged(score int) { r.scores = append(r.scores, score) }

func (r *recorder) SetAmbientActive(active bool) { r.ambient = append(r.ambient, active) }

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// newTestSession builds an 800x600 session wired to a recorder.
func newTestSession() (*Session, *recorder) {
	rec := &recorder{}
	s := NewSession(Options{
		Tuning:    DefaultTuning(),
		Viewport:  Viewport{W: 800, H: 600},
		Seed:      42,
		Renderer:  rec,
		Audio:     rec,
		Notifier:  rec,
		Scores:    rec,
		Ambience:  rec,
		Scheduler: rec,
	})
	return s, rec
}

// holdSpawns closes the spawn gate for frames stamped at epoch.
func holdSpawns(s *Session) {
	s.clock.MarkSpawn(epoch)
}
