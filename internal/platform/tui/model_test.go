package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/trashpanda/internal/core"
	"github.com/vovakirdan/trashpanda/internal/storage"
)

// stubGame records what the model asks of it.
type stubGame struct {
	host     core.Host
	actions  []core.Action
	steps    int
	resized  [2]int
	state    core.GameState
	events   []core.Event
	rearm    bool // Request another frame from Step
	resetCfg core.RuntimeConfig
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig, host core.Host) {
	g.resetCfg = cfg
	g.host = host
	host.Frames.RequestFrame()
}

func (g *stubGame) HandleAction(a core.Action) { g.actions = append(g.actions, a) }

func (g *stubGame) Step(time.Time) core.StepResult {
	g.steps++
	if g.rearm {
		g.host.Frames.RequestFrame()
	}
	ev := g.events
	g.events = nil
	return core.StepResult{State: g.state, Events: ev}
}

func (g *stubGame) Resize(w, h int)         { g.resized = [2]int{w, h} }
func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub") }
func (g *stubGame) State() core.GameState   { return g.state }

func newStubModel(t *testing.T, g *stubGame, store *storage.Store) Model {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	m := NewModel(g, Options{Store: store, Config: cfg, Player: "tester"})
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init should schedule the first frame the game asked for")
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelInitPassesConfigAndHost(t *testing.T) {
	g := &stubGame{}
	newStubModel(t, g, nil)

	if g.resetCfg.Seed != 1 || g.resetCfg.ScreenW != 80 {
		t.Errorf("Reset got %+v", g.resetCfg)
	}
	if g.host.Frames == nil || g.host.Audio == nil {
		t.Error("Reset should receive a scheduler and an audio sink")
	}
}

func TestModelFramesOnlyWhenRequested(t *testing.T) {
	g := &stubGame{rearm: true}
	m := newStubModel(t, g, nil)

	m, cmd := update(t, m, FrameMsg(time.Now()))
	if g.steps != 1 || cmd == nil {
		t.Fatalf("steps=%d cmd=%v, expected one step and a rearmed frame", g.steps, cmd)
	}

	g.rearm = false
	_, cmd = update(t, m, FrameMsg(time.Now()))
	if cmd != nil {
		t.Error("no frame should be scheduled when the game did not ask for one")
	}
}

func TestModelKeysBecomeActions(t *testing.T) {
	g := &stubGame{}
	m := newStubModel(t, g, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	want := []core.Action{core.ActionLeft, core.ActionRight, core.ActionPause, core.ActionMute}
	if len(g.actions) != len(want) {
		t.Fatalf("actions = %v, expected %v", g.actions, want)
	}
	for i := range want {
		if g.actions[i] != want[i] {
			t.Errorf("actions[%d] = %v, expected %v", i, g.actions[i], want[i])
		}
	}
}

func TestModelBackAndQuit(t *testing.T) {
	g := &stubGame{}
	m := newStubModel(t, g, nil)

	back, _ := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.BackToMenu() || back.IsQuitting() {
		t.Error("esc should go back to the menu")
	}

	quit, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !quit.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if quit.View() != "" {
		t.Error("a quitting model renders nothing")
	}
	if len(g.actions) != 0 {
		t.Errorf("back and quit are not game actions, got %v", g.actions)
	}
}

func TestModelClickMovesTowardHalf(t *testing.T) {
	g := &stubGame{}
	m := newStubModel(t, g, nil)

	press := func(x int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	}
	m, _ = update(t, m, press(10))
	m, _ = update(t, m, press(70))
	update(t, m, tea.MouseMsg{X: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	if len(g.actions) != 2 || g.actions[0] != core.ActionLeft || g.actions[1] != core.ActionRight {
		t.Errorf("actions = %v", g.actions)
	}
}

func TestModelResizeDoesNotReset(t *testing.T) {
	g := &stubGame{}
	m := newStubModel(t, g, nil)
	seed := g.resetCfg.Seed

	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resized != [2]int{100, 30} {
		t.Errorf("resized = %v", g.resized)
	}
	if g.resetCfg.Seed != seed || g.resetCfg.ScreenW != 80 {
		t.Error("resize must not reset the game")
	}
}

func TestModelSavesFinishedRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	g := &stubGame{}
	m := newStubModel(t, g, store)

	g.events = []core.Event{{Kind: core.EventCaught, Score: 3}, {Kind: core.EventGameOver, Score: 3}}
	m, _ = update(t, m, FrameMsg(time.Now()))

	// Runs that scored nothing are not stored
	g.events = []core.Event{{Kind: core.EventGameOver, Score: 0}}
	m, _ = update(t, m, FrameMsg(time.Now()))

	if m.Saved() != 1 {
		t.Errorf("Saved() = %d, expected 1", m.Saved())
	}
	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].Score != 3 || scores[0].Player != "tester" {
		t.Errorf("scores = %+v", scores)
	}
}

func TestFrameQueue(t *testing.T) {
	var q frameQueue
	if q.take() {
		t.Error("empty queue should have nothing to take")
	}
	q.RequestFrame()
	q.RequestFrame()
	if !q.take() {
		t.Error("expected a pending request")
	}
	if q.take() {
		t.Error("requests collapse into one frame")
	}
}
