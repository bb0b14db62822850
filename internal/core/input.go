package core

// Action represents a semantic game action, abstracted from physical key presses.
// Hosts deliver actions as discrete events the moment they happen; they are not
// batched per tick.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // Left arrow, A, H, left half of the screen
	ActionRight             // Right arrow, D, L, right half of the screen
	ActionPause             // P, Space - pause/resume toggle
	ActionMute              // M - mute/unmute toggle
	ActionConfirm           // Enter - confirm selection in menu
	ActionBack              // B, Escape - go back to menu
	ActionQuit              // Q, Ctrl+C - exit game/session
	ActionScreenshot        // Ctrl+S - dump the canvas to a text file
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionMute:
		return "Mute"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// TouchAction maps a horizontal touch or click position to a movement action.
// The left half of the viewport moves left, everything else moves right.
func TouchAction(x, viewportW float64) Action {
	if x < viewportW/2 {
		return ActionLeft
	}
	return ActionRight
}
