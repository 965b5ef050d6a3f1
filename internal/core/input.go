package core

// Gesture is a hand pose classified from camera landmarks.
type Gesture int

const (
	GestureNone Gesture = iota
	GestureUp
	GestureDown
	GestureLeft
	GestureRight
)

// String returns the upper-case name used in logs and on screen.
func (g Gesture) String() string {
	switch g {
	case GestureUp:
		return "UP"
	case GestureDown:
		return "DOWN"
	case GestureLeft:
		return "LEFT"
	case GestureRight:
		return "RIGHT"
	default:
		return "NONE"
	}
}

// Direction maps a gesture onto a heading. ok is false for GestureNone.
func (g Gesture) Direction() (d Direction, ok bool) {
	switch g {
	case GestureUp:
		return DirUp, true
	case GestureDown:
		return DirDown, true
	case GestureLeft:
		return DirLeft, true
	case GestureRight:
		return DirRight, true
	default:
		return DirRight, false
	}
}

// Action is a keyboard control request. Steering never comes from the
// keyboard; these only drive the session.
type Action int

const (
	ActionNone    Action = iota
	ActionPause          // P - pause/unpause
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Esc, Ctrl+C - end the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
