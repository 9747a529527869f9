package core

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends translate keys into actions; the game never sees raw keys.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - move platform left
	ActionRight          // Right arrow, D - move platform right
	ActionLaunch         // Space - launch the ball
	ActionPause          // P - pause/unpause
	ActionHelp           // H - open/close the help overlay
	ActionBack           // Esc - close any overlay
	ActionRestart        // R, Enter - full reset after the game ended
	ActionQuit           // Q, Ctrl+C - exit
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
	case ActionLaunch:
		return "Launch"
	case ActionPause:
		return "Pause"
	case ActionHelp:
		return "Help"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns -1 for ActionLeft, +1 for ActionRight and 0 otherwise.
func (a Action) Direction() int {
	switch a {
	case ActionLeft:
		return -1
	case ActionRight:
		return 1
	default:
		return 0
	}
}

// InputFrame collects the key-down and key-up signals received between two
// simulation ticks. Input handlers only record signals here; the game
// consumes them at the start of the next tick.
type InputFrame struct {
	Pressed  map[Action]bool
	Released map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed:  make(map[Action]bool),
		Released: make(map[Action]bool),
	}
}

// Press records a key-down signal for the action.
func (f *InputFrame) Press(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
}

// Release records a key-up signal for the action.
func (f *InputFrame) Release(a Action) {
	if f.Released == nil {
		f.Released = make(map[Action]bool)
	}
	f.Released[a] = true
}

// Has returns true if the action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Pressed[a]
}

// HasReleased returns true if the action was released this frame.
func (f InputFrame) HasReleased(a Action) bool {
	return f.Released[a]
}

// Empty reports whether no signal was recorded.
func (f InputFrame) Empty() bool {
	return len(f.Pressed) == 0 && len(f.Released) == 0
}

// Clear resets all signals for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Pressed)
	clear(f.Released)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Pressed {
		clone.Pressed[k] = v
	}
	for k, v := range f.Released {
		clone.Released[k] = v
	}
	return clone
}
