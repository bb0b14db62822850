// Package desktop runs Trash Panda in a window using Ebiten.
// World units are pixels; the window can be resized while playing.
package desktop

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/trashpanda/internal/core"
	"github.com/vovakirdan/trashpanda/internal/games/trashpanda"
	"github.com/vovakirdan/trashpanda/internal/storage"
)

const bannerDuration = 2 * time.Second

// Config configures a desktop run.
type Config struct {
	Width, Height int // Initial window size in pixels
	TickRate      int
	Seed          int64
	Muted         bool
	Tuning        trashpanda.Tuning
	Store         *storage.Store // nil disables score saving
	Player        string
	Audio         core.AudioFeedback // nil uses a Beeper
	Logger        *log.Logger
}

// DefaultConfig returns an 800x600 window at 60 frames per second.
func DefaultConfig() Config {
	return Config{
		Width:    800,
		Height:   600,
		TickRate: 60,
		Tuning:   trashpanda.DefaultTuning(),
	}
}

// frameFlag is the window's frame scheduler: a requested frame runs on the
// next Update.
type frameFlag struct {
	requested bool
}

func (f *frameFlag) RequestFrame() { f.requested = true }

func (f *frameFlag) take() bool {
	r := f.requested
	f.requested = false
	return r
}

// Game implements ebiten.Game around a trashpanda.Session.
type Game struct {
	cfg     Config
	session *trashpanda.Session
	frames  *frameFlag
	list    *drawList
	images  images
	stripes *stripes
	logger  *log.Logger

	width, height int // Last layout size
	banner        string
	bannerUntil   time.Time
	best          int
	saved         int
	now           func() time.Time
}

// NewGame builds the session. It does not open a window.
func NewGame(cfg Config) *Game {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		d := DefaultConfig()
		cfg.Width, cfg.Height = d.Width, d.Height
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Player == "" {
		cfg.Player = storage.DefaultPlayer
	}

	g := &Game{
		cfg:     cfg,
		frames:  &frameFlag{},
		list:    &drawList{},
		stripes: &stripes{},
		logger:  cfg.Logger,
		width:   cfg.Width,
		height:  cfg.Height,
		now:     time.Now,
	}
	g.session = trashpanda.NewSession(trashpanda.Options{
		Tuning:    cfg.Tuning,
		Viewport:  trashpanda.Viewport{W: float64(cfg.Width), H: float64(cfg.Height)},
		Seed:      cfg.Seed,
		Muted:     cfg.Muted,
		Renderer:  g.list,
		Audio:     cfg.Audio,
		Notifier:  g,
		Scores:    g,
		Ambience:  g.stripes,
		Scheduler: g.frames,
		Logger:    cfg.Logger,
	})
	g.session.Start()
	return g
}

// Notify shows a banner for a while; the new run plays underneath.
func (g *Game) Notify(message string) {
	g.banner = message
	g.bannerUntil = g.now().Add(bannerDuration)
}

// ScoreChanged tracks the best score of this window.
func (g *Game) ScoreChanged(score int) {
	g.best = max(g.best, score)
}

// Session exposes the underlying session.
func (g *Game) Session() *trashpanda.Session {
	return g.session
}

// Update delivers input as it arrives, then runs a frame if one is pending.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	g.handleKeys()
	g.handlePointer()

	if g.frames.take() {
		g.frame(g.now())
	}
	return nil
}

func (g *Game) handleKeys() {
	switch {
	case justPressed(ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyH):
		g.session.Move(trashpanda.Left)
	case justPressed(ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyL):
		g.session.Move(trashpanda.Right)
	}
	if justPressed(ebiten.KeyP, ebiten.KeySpace) {
		g.session.TogglePause()
	}
	if justPressed(ebiten.KeyM) {
		g.session.ToggleMute()
	}
}

func justPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// handlePointer turns taps and left clicks into moves toward that half.
func (g *Game) handlePointer() {
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, _ := ebiten.TouchPosition(id)
		g.tap(float64(x))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, _ := ebiten.CursorPosition()
		g.tap(float64(x))
	}
}

func (g *Game) tap(x float64) {
	g.session.Move(trashpanda.TouchDirection(x, float64(g.width)))
}

// frame runs one simulation frame and saves finished runs.
func (g *Game) frame(now time.Time) trashpanda.FrameReport {
	rep := g.session.Frame(now)
	if rep.Ran {
		g.stripes.advance()
	}
	if rep.GameOver && rep.FinalScore > 0 && g.cfg.Store != nil {
		if _, err := g.cfg.Store.SaveScore("trashpanda", g.cfg.Player, rep.FinalScore); err != nil {
			g.logger.Warn("could not save score", "err", err)
		} else {
			g.saved++
		}
	}
	return rep
}

// Draw replays the last frame and draws the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)
	g.stripes.draw(screen)
	drawSprites(screen, g.list, &g.images)
	ebitenutil.DebugPrintAt(screen, hudText(g.session), 8, 6)

	if g.session.Paused() {
		g.drawCentered(screen, "PAUSED\n\nP: resume  Esc: quit")
	}
	if g.banner != "" && g.now().Before(g.bannerUntil) {
		g.drawCentered(screen, fmt.Sprintf("%s\n\nBest this window: %d", g.banner, g.best))
	}
}

func (g *Game) drawCentered(screen *ebiten.Image, text string) {
	const boxW, boxH = 240, 64
	x := (g.width - boxW) / 2
	y := (g.height - boxH) / 2
	vector.DrawFilledRect(screen, float32(x), float32(y), boxW, boxH, colBanner, false)
	ebitenutil.DebugPrintAt(screen, text, x+16, y+12)
}

// hudText is the score line with the pause and mute labels.
func hudText(s *trashpanda.Session) string {
	pause := "[P] Pause"
	if s.Paused() {
		pause = "[P] Resume"
	}
	mute := "[M] Mute Sound"
	if s.Muted() {
		mute = "[M] Unmute Sound"
	}
	return fmt.Sprintf("Score: %d    %s    %s", s.Score(), pause, mute)
}

// Layout uses the window size as the world size and refits the session when
// the window changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.session.Resize(float64(outsideWidth), float64(outsideHeight))
		g.session.Redraw()
	}
	return g.width, g.height
}

// Run opens the window and blocks until it is closed.
func Run(cfg Config) error {
	if cfg.Audio == nil {
		cfg.Audio = NewBeeper()
	}
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}
	g := NewGame(cfg)

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle("Trash Panda")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g.logger.Info("window opened", "width", g.width, "height", g.height)
	err := ebiten.RunGame(g)
	g.logger.Info("window closed", "score", g.session.Score(), "saved", g.saved)
	return err
}
