package core

// Action represents a semantic input command, abstracted from physical key presses.
// Drivers map raw keys to at most one Action per tick.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // w
	ActionDown         // s
	ActionLeft         // a
	ActionRight        // d
	ActionQuit         // q, Ctrl+C
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
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Delta returns the single-axis unit step for a move action.
// Non-move actions return (0, 0).
func (a Action) Delta() (dx, dy int) {
	switch a {
	case ActionUp:
		return 0, -1
	case ActionDown:
		return 0, 1
	case ActionLeft:
		return -1, 0
	case ActionRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// IsMove reports whether the action moves the player.
func (a Action) IsMove() bool {
	dx, dy := a.Delta()
	return dx != 0 || dy != 0
}
