package core

// Action represents a semantic game action, abstracted from physical key presses.
// Both terminal backends translate their key events into Actions so the game
// never sees backend-specific key types.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, K, Up arrow
	ActionDown             // S, J, Down arrow
	ActionLeft             // A, H, Left arrow
	ActionRight            // D, L, Right arrow
	ActionReset            // R - reload the current level
	ActionNextLevel        // N - skip to the next level
	ActionPrevLevel        // P - go back to the previous level
	ActionQuit             // Q, Esc, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionReset:
		return "Reset"
	case ActionNextLevel:
		return "NextLevel"
	case ActionPrevLevel:
		return "PrevLevel"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
