package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/trashpanda/internal/core"
	"github.com/vovakirdan/trashpanda/internal/registry"
	"github.com/vovakirdan/trashpanda/internal/storage"
)

// Options configures a game Model.
type Options struct {
	Store  *storage.Store
	Config core.RuntimeConfig
	Audio  core.AudioFeedback // nil plays nothing
	Player string             // Name stored with scores
	Logger *log.Logger
}

// Model is the Bubble Tea model for running one game.
// Frames are only scheduled when the game asks for them, so a paused game
// costs nothing until the next key press.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	audio      core.AudioFeedback
	player     string
	logger     *log.Logger
	frames     *frameQueue
	keyMapper  *KeyMapper
	gameState  core.GameState
	saved      int // Scores saved this session
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Config
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Audio == nil {
		opts.Audio = core.NopAudio{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(discard{})
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     opts.Store,
		config:    cfg,
		audio:     opts.Audio,
		player:    opts.Player,
		logger:    opts.Logger,
		frames:    &frameQueue{},
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config, core.Host{Frames: m.frames, Audio: m.audio})
	return m.nextFrame()
}

// nextFrame returns a frame command if the game asked for one.
func (m Model) nextFrame() tea.Cmd {
	if m.frames.take() {
		return frameCmd(m.config.TickRate)
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey delivers the action to the game immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a := m.keyMapper.MapKey(msg); a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.backToMenu = true
		return m, nil
	case core.ActionScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case core.ActionNone:
		return m, nil
	default:
		m.game.HandleAction(a)
	}

	m.gameState = m.game.State()
	return m, m.nextFrame()
}

// handleMouse maps a left click to a move toward that half of the screen.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	m.game.HandleAction(core.TouchAction(float64(msg.X), float64(m.config.ScreenW)))
	return m, m.nextFrame()
}

// handleResize processes window resize events. The run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, m.nextFrame()
}

// handleFrame runs one frame and persists finished runs.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	result := m.game.Step(now)
	m.gameState = result.State

	for _, ev := range result.Events {
		if ev.Kind == core.EventGameOver {
			m.saveScore(ev.Score)
		}
	}

	return m, m.nextFrame()
}

// saveScore stores a finished run. Zero scores are not worth a row.
func (m *Model) saveScore(score int) {
	if score <= 0 || m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.player, score); err != nil {
		m.logger.Warn("could not save score", "err", err)
		return
	}
	m.saved++
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Saved returns how many scores this model stored.
func (m Model) Saved() int {
	return m.saved
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks move the player
	)

	_, err := p.Run()
	return err
}

// discard is an io.Writer that drops everything.
type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
