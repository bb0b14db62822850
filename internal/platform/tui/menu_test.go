package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/trashpanda/internal/core"
	"github.com/vovakirdan/trashpanda/internal/registry"
)

func init() {
	registry.Register("stub", func() registry.Game { return &stubGame{} })
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestMenuItems(t *testing.T) {
	m := NewMenuModel(nil, "", core.DefaultConfig())

	// One play entry per game plus scores, sound and quit
	if len(m.items) != len(registry.List())+3 {
		t.Fatalf("items = %+v", m.items)
	}
	if m.items[0].Kind != MenuItemPlay || m.items[0].GameID != "stub" {
		t.Errorf("first item = %+v", m.items[0])
	}
	if !strings.Contains(m.View(), "Play Stub") {
		t.Error("view should list the game")
	}
}

func TestMenuSelectGame(t *testing.T) {
	m := menuUpdate(t, NewMenuModel(nil, "", core.DefaultConfig()), keyMsg("enter"))

	res := m.Result()
	if res.GameID != "stub" || res.Quit || res.WantsScoreboard {
		t.Errorf("result = %+v", res)
	}
}

func TestMenuSoundToggle(t *testing.T) {
	m := NewMenuModel(nil, "", core.DefaultConfig())
	if !strings.Contains(m.View(), "Sound: On") {
		t.Fatal("sound starts on")
	}

	m = menuUpdate(t, m, keyMsg("m"))
	if !m.Config().Muted || !strings.Contains(m.View(), "Sound: Off") {
		t.Error("m should mute")
	}

	// Select the sound entry directly
	for m.items[m.cursor].Kind != MenuItemSound {
		m = menuUpdate(t, m, keyMsg("down"))
	}
	m = menuUpdate(t, m, keyMsg("enter"))
	if m.Config().Muted {
		t.Error("selecting the sound entry should unmute")
	}
	if m.Result().GameID != "" {
		t.Error("toggling sound must not start a game")
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := menuUpdate(t, NewMenuModel(nil, "", core.DefaultConfig()), keyMsg("tab"))
	if !m.Result().WantsScoreboard {
		t.Error("tab should open the scoreboard")
	}

	m = menuUpdate(t, NewMenuModel(nil, "", core.DefaultConfig()), keyMsg("q"))
	if !m.Result().Quit {
		t.Error("q should quit")
	}
}

func TestMenuCursorBounds(t *testing.T) {
	m := NewMenuModel(nil, "", core.DefaultConfig())
	m = menuUpdate(t, m, keyMsg("up"))
	if m.cursor != 0 {
		t.Errorf("cursor = %d after moving up from the top", m.cursor)
	}
	for i := 0; i < len(m.items)+5; i++ {
		m = menuUpdate(t, m, keyMsg("down"))
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, expected last item", m.cursor)
	}
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestSessionFlow(t *testing.T) {
	s := NewSessionModel(SessionOptions{Config: core.DefaultConfig(), Player: "alice"})

	s, cmd := sessionUpdate(t, s, keyMsg("enter"))
	if s.current != screenGame {
		t.Fatalf("expected the game screen, got %v", s.current)
	}
	if cmd == nil {
		t.Error("starting a game should schedule its first frame")
	}
	if !strings.Contains(s.View(), "stub") {
		t.Error("the game should be rendered")
	}

	s, _ = sessionUpdate(t, s, keyMsg("esc"))
	if s.current != screenMenu || s.quitting {
		t.Fatalf("esc should return to the menu, got %v", s.current)
	}

	// A frame left over from the game is harmless
	s, _ = sessionUpdate(t, s, FrameMsg{})
	if s.current != screenMenu {
		t.Error("stale frames must not leave the menu")
	}

	s, _ = sessionUpdate(t, s, keyMsg("tab"))
	if s.current != screenScores {
		t.Fatalf("expected the scoreboard, got %v", s.current)
	}
	s, _ = sessionUpdate(t, s, keyMsg("esc"))
	if s.current != screenMenu {
		t.Fatalf("esc should leave the scoreboard, got %v", s.current)
	}

	s, cmd = sessionUpdate(t, s, keyMsg("q"))
	if !s.quitting || cmd == nil {
		t.Error("q should end the session")
	}
}

func TestSessionKeepsMuteForGames(t *testing.T) {
	s := NewSessionModel(SessionOptions{Config: core.DefaultConfig()})
	s, _ = sessionUpdate(t, s, keyMsg("m"))
	s, _ = sessionUpdate(t, s, keyMsg("enter"))

	if !s.gameModel.config.Muted {
		t.Error("the game should start muted after toggling sound in the menu")
	}
}
