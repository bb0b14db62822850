// Package trashpanda implements a catch-the-falling-objects game.
// A raccoon at the bottom of the screen catches falling trash for points and
// must dodge falling enemies; touching one ends the run and starts a new one.
package trashpanda

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/trashpanda/internal/config"
	"github.com/vovakirdan/trashpanda/internal/core"
	"github.com/vovakirdan/trashpanda/internal/registry"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// bannerDuration is how long the game-over banner stays up.
const bannerDuration = 2 * time.Second

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives session events. Terminal hosts own stdout, so the default
// discards everything.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger used by new sessions. nil restores the default.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// LoadTuning resolves the YAML config and the difficulty preset into tuning.
// Config errors are logged and the built-in defaults are used instead.
func LoadTuning() (Tuning, config.TrashPandaConfig) {
	cfg, err := config.LoadTrashPanda(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultTrashPandaConfig()
	}
	if difficultyPreset != "" {
		config.ApplyTrashPandaPreset(&cfg, difficultyPreset)
	}
	return TuningFromConfig(cfg), cfg
}

// Game adapts a Session to the arcade registry and character screens.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.TrashPandaConfig
	session *Session

	canvas   *core.Screen
	renderer *ScreenRenderer
	ambient  *ambientField
	banner   banner

	best int
	now  time.Time
}

// New creates a new Trash Panda game instance.
func New() *Game {
	return &Game{ambient: &ambientField{}}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "trashpanda"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Trash Panda"
}

// Reset builds a fresh session sized to the screen and starts its frame chain.
func (g *Game) Reset(cfg core.RuntimeConfig, host core.Host) {
	tuning, tpCfg := LoadTuning()
	g.runtime = cfg
	g.cfg = tpCfg
	g.best = 0
	g.banner = banner{}

	rows := max(cfg.ScreenH-hudRows, 0)
	g.canvas = core.NewScreen(cfg.ScreenW, rows)
	g.renderer = NewScreenRenderer(g.canvas, tpCfg.Display.CellWidth, tpCfg.Display.CellHeight)

	g.session = NewSession(Options{
		Tuning:    tuning,
		Viewport:  g.renderer.WorldSize(cfg.ScreenW, rows),
		Seed:      cfg.Seed,
		Muted:     cfg.Muted || tpCfg.Audio.Muted,
		Renderer:  g.renderer,
		Audio:     host.Audio,
		Notifier:  g,
		Scores:    g,
		Ambience:  g.ambient,
		Scheduler: host.Frames,
		Logger:    logger,
	})
	g.session.Start()
}

// HandleAction applies an input action immediately.
func (g *Game) HandleAction(a core.Action) {
	if g.session == nil {
		return
	}
	switch a {
	case core.ActionLeft:
		g.session.Move(Left)
	case core.ActionRight:
		g.session.Move(Right)
	case core.ActionPause:
		g.session.TogglePause()
	case core.ActionMute:
		g.session.ToggleMute()
	}
}

// Step runs one frame of the session.
func (g *Game) Step(now time.Time) core.StepResult {
	g.now = now

	var events []core.Event
	rep := g.session.Frame(now)
	if rep.Ran {
		g.ambient.advance()
	}
	for i := 0; i < rep.Caught; i++ {
		events = append(events, core.Event{Kind: core.EventCaught, Score: g.session.Score()})
	}
	if rep.GameOver {
		events = append(events, core.Event{Kind: core.EventGameOver, Score: rep.FinalScore})
	}

	return core.StepResult{State: g.State(), Events: events}
}

// Resize refits the session to a new screen size without restarting it.
func (g *Game) Resize(w, h int) {
	if g.session == nil {
		return
	}
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	rows := max(h-hudRows, 0)
	g.canvas.Resize(w, rows)
	vp := g.renderer.WorldSize(w, rows)
	g.session.Resize(vp.W, vp.H)
	g.session.Redraw()
}

// Notify shows the message as a banner; play continues underneath it.
func (g *Game) Notify(message string) {
	g.banner = banner{text: message, until: g.now.Add(bannerDuration)}
}

// ScoreChanged tracks the best score since Reset.
func (g *Game) ScoreChanged(score int) {
	g.best = max(g.best, score)
}

// Render draws the HUD, the ambient field and the last frame's sprites.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	g.ambient.draw(dst, hudRows)
	dst.Overlay(g.canvas, 0, hudRows)
	g.drawHUD(dst)

	if g.session.Paused() {
		drawMessage(dst, "PAUSED", "P: resume  B: menu  Q: quit")
	}
	if g.banner.visible(g.now) {
		drawMessage(dst, g.banner.text, fmt.Sprintf("Best this session: %d", g.best))
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.session.Score()), core.ColorBrightYellow)

	pause := "[P] Pause"
	if g.session.Paused() {
		pause = "[P] Resume"
	}
	mute := "[M] Mute Sound"
	if g.session.Muted() {
		mute = "[M] Unmute Sound"
	}
	controls := pause + "  " + mute
	dst.DrawTextColored(dst.Width()-len(controls)-1, 0, controls, core.ColorGray)
}

// drawMessage draws a centered box with a title and a subtitle.
func drawMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 6
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBrightRed)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:  g.session.Score(),
		Paused: g.session.Paused(),
		Muted:  g.session.Muted(),
	}
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Canvas returns the playfield as drawn by the last frame.
func (g *Game) Canvas() *core.Screen {
	return g.canvas
}

// banner is a message that expires on its own.
type banner struct {
	text  string
	until time.Time
}

func (b banner) visible(now time.Time) bool {
	return b.text != "" && now.Before(b.until)
}

// ambientField is a slow drifting pattern behind the playfield.
// It only moves while active.
type ambientField struct {
	active bool
	phase  int
}

// SetAmbientActive starts or stops the drift.
func (a *ambientField) SetAmbientActive(active bool) {
	a.active = active
}

func (a *ambientField) advance() {
	if a.active {
		a.phase++
	}
}

func (a *ambientField) draw(dst *core.Screen, top int) {
	shift := a.phase / 8
	for y := top; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if (x*7+(y+shift)*13)%41 == 0 {
				dst.SetColored(x, y, '·', core.ColorDarkGray)
			}
		}
	}
}

// Register the game with the registry
func init() {
	registry.Register("trashpanda", func() registry.Game {
		return New()
	})
}
