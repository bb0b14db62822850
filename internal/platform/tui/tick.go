// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is delivered when a frame the game asked for is due.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that delivers one FrameMsg after one
// frame interval at the specified rate.
func frameCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// frameQueue is the FrameScheduler handed to games. Bubble Tea commands can
// only be returned from Update, so requests are recorded and turned into a
// frameCmd when Update finishes.
type frameQueue struct {
	requested bool
}

// RequestFrame records that the game wants one more frame.
func (q *frameQueue) RequestFrame() {
	q.requested = true
}

// take reports and clears a pending request.
func (q *frameQueue) take() bool {
	r := q.requested
	q.requested = false
	return r
}
