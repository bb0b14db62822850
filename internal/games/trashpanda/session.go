package trashpanda

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/trashpanda/internal/core"
)

// Options configures a new Session. Nil collaborators become no-ops.
type Options struct {
	Tuning   Tuning
	Viewport Viewport
	Seed     int64
	Muted    bool

	Renderer  Renderer
	Audio     core.AudioFeedback
	Notifier  Notifier
	Scores    ScoreListener
	Ambience  Ambience
	Scheduler core.FrameScheduler
	Logger    *log.Logger
}

// FrameReport summarises what one frame did.
type FrameReport struct {
	Ran        bool // False when the frame was delivered while stopped
	Caught     int
	Reaped     int
	Spawned    bool
	Spawn      Entity // Valid when Spawned
	GameOver   bool
	FinalScore int // Score the run ended with, valid when GameOver
}

// Session owns the simulation for one player: the player, the entity field,
// the game state and the clock. All methods must be called from one goroutine.
type Session struct {
	tuning   Tuning
	viewport Viewport
	rng      *rand.Rand

	player *Player
	field  *EntityField
	state  *GameState
	clock  Clock

	renderer  Renderer
	sound     *SoundBoard
	notifier  Notifier
	scores    ScoreListener
	ambience  Ambience
	scheduler core.FrameScheduler
	logger    *log.Logger

	gameOvers int
}

// NewSession builds a session in the Running phase with score 0.
// Call Start to begin the frame chain.
func NewSession(opts Options) *Session {
	s := &Session{
		tuning:    opts.Tuning,
		viewport:  sanitize(opts.Viewport),
		rng:       rand.New(rand.NewSource(opts.Seed)),
		renderer:  opts.Renderer,
		sound:     NewSoundBoard(opts.Audio, opts.Muted),
		notifier:  opts.Notifier,
		scores:    opts.Scores,
		ambience:  opts.Ambience,
		scheduler: opts.Scheduler,
		logger:    opts.Logger,
	}
	if s.renderer == nil {
		s.renderer = nopRenderer{}
	}
	if s.notifier == nil {
		s.notifier = nopNotifier{}
	}
	if s.scores == nil {
		s.scores = nopScores{}
	}
	if s.ambience == nil {
		s.ambience = nopAmbience{}
	}
	if s.scheduler == nil {
		s.scheduler = nopScheduler{}
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	s.player = NewPlayer(s.tuning, s.viewport)
	s.field = NewEntityField(s.tuning.EntitySize)
	s.state = NewGameState(s.tuning)
	return s
}

// sanitize clamps negative viewport sizes to zero.
func sanitize(vp Viewport) Viewport {
	return Viewport{W: max(vp.W, 0), H: max(vp.H, 0)}
}

// Start begins the frame chain and the ambient animation.
func (s *Session) Start() {
	s.logger.Debug("session started", "viewport_w", s.viewport.W, "viewport_h", s.viewport.H)
	s.scores.ScoreChanged(s.state.Score)
	s.clock.Start(s.scheduler)
	s.ambience.SetAmbientActive(true)
}

// Move handles a directional command. It is ignored while paused; otherwise
// it always plays the movement sound, even when the player is pinned at an edge.
func (s *Session) Move(dir Direction) bool {
	if s.state.Paused {
		return false
	}
	s.sound.PlayMovement()
	s.player.Move(dir, s.viewport.W)
	return true
}

// TogglePause flips between Running and Paused and returns the new pause flag.
func (s *Session) TogglePause() bool {
	if s.state.Paused {
		s.resume()
	} else {
		s.pause()
	}
	return s.state.Paused
}

func (s *Session) pause() {
	s.state.SetPaused(true)
	s.clock.Stop()
	s.ambience.SetAmbientActive(false)
	s.logger.Info("game paused", "score", s.state.Score)
}

func (s *Session) resume() {
	s.state.SetPaused(false)
	s.clock.Start(s.scheduler)
	s.ambience.SetAmbientActive(true)
	s.logger.Info("game resumed", "score", s.state.Score)
}

// ToggleMute flips the global mute flag and returns the new value.
func (s *Session) ToggleMute() bool {
	muted := s.sound.Toggle()
	if muted {
		s.logger.Info("audio muted")
	} else {
		s.logger.Info("audio unmuted")
	}
	return muted
}

// Resize re-reads the viewport size. The simulation is not reset; the player
// is re-clamped into the new bounds.
func (s *Session) Resize(w, h float64) {
	s.viewport = sanitize(Viewport{W: w, H: h})
	s.player.Fit(s.viewport)
	s.logger.Debug("viewport resized", "w", s.viewport.W, "h", s.viewport.H)
}

// Frame is the per-frame callback. now is sampled once by the host and used
// for the spawn gate.
func (s *Session) Frame(now time.Time) FrameReport {
	var rep FrameReport
	if !s.clock.Deliver() {
		return rep
	}
	rep.Ran = true

	s.field.Advance(s.state.CollectibleSpeed, s.state.HazardSpeed)
	for _, o := range s.field.ResolveCollisions(s.player.Hitbox()) {
		if o.Kind == FatalContact {
			rep.GameOver = true
			rep.FinalScore = s.state.Score
			s.onFatalContact()
			// The reset cleared the field; remaining outcomes belong to the old run
			break
		}
		s.onCaught()
		rep.Caught++
	}
	rep.Reaped = s.field.Reap(s.viewport.H)

	s.draw()
	s.clock.Rearm(s.scheduler)

	if s.clock.SpawnDue(now, s.state.SpawnInterval) {
		rep.Spawn = s.field.Spawn(s.viewport.W, s.state.HazardProbability, s.rng)
		rep.Spawned = true
		s.clock.MarkSpawn(now)
		s.state.TickDifficulty()
	}

	return rep
}

func (s *Session) onCaught() {
	score := s.state.AddCatch()
	s.scores.ScoreChanged(score)
	s.sound.PlayCatch()
}

func (s *Session) onFatalContact() {
	s.sound.PlayGameOver()
	s.state.Phase = PhaseGameOver
	s.gameOvers++
	s.logger.Info("game over", "score", s.state.Score, "runs", s.gameOvers)
	s.notifier.Notify(GameOverMessage)
	s.Reset()
}

// Reset clears the field and restores the initial constants. A paused
// session is resumed because reset leaves the game unpaused.
func (s *Session) Reset() {
	wasPaused := s.state.Paused
	s.field.Clear()
	s.state.Reset()
	s.player.Place(s.viewport)
	s.scores.ScoreChanged(s.state.Score)
	if wasPaused {
		s.clock.Start(s.scheduler)
		s.ambience.SetAmbientActive(true)
	}
	s.logger.Debug("session reset")
}

// draw renders the player and every entity.
func (s *Session) draw() {
	s.renderer.Clear(s.viewport.W, s.viewport.H)

	p := s.player
	s.renderer.DrawSprite(SpritePlayer, p.X-p.Width/2, p.Y-p.Height/2, p.Width, p.Height)

	for _, e := range s.field.entities {
		sprite := SpriteCollectible
		if e.Kind == Hazard {
			sprite = SpriteHazard
		}
		s.renderer.DrawSprite(sprite, e.X-e.Size/2, e.Y-e.Size/2, e.Size, e.Size)
	}
}

// Redraw renders the current positions without advancing the simulation.
// Hosts use it after a resize while paused.
func (s *Session) Redraw() {
	s.draw()
}

// Score returns the current score.
func (s *Session) Score() int { return s.state.Score }

// Paused reports the pause flag.
func (s *Session) Paused() bool { return s.state.Paused }

// Muted reports the mute flag.
func (s *Session) Muted() bool { return s.sound.Muted() }

// Phase returns the state machine phase.
func (s *Session) Phase() Phase { return s.state.Phase }

// Difficulty returns the current difficulty parameters.
func (s *Session) Difficulty() Difficulty { return s.state.Difficulty }

// Tuning returns the initial constants the session resets to.
func (s *Session) Tuning() Tuning { return s.tuning }

// Viewport returns the current viewport.
func (s *Session) Viewport() Viewport { return s.viewport }

// Player returns a copy of the player.
func (s *Session) Player() Player { return *s.player }

// Entities returns a snapshot of the live entities.
func (s *Session) Entities() []Entity { return s.field.Entities() }

// Running reports whether the frame chain is active.
func (s *Session) Running() bool { return s.clock.Running() }

// GameOvers returns how many runs have ended since the session was created.
func (s *Session) GameOvers() int { return s.gameOvers }
