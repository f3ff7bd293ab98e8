package core

// Action is a semantic game intent, abstracted from physical key presses.
// Edge-triggered actions fire once on the tick they were pressed; hold
// actions are level-triggered and stay set while the key is held.
type Action int

const (
	ActionNone Action = iota

	// Edge-triggered
	ActionJump        // Up, W - jump (second press mid-air is the double jump)
	ActionFire        // Space pressed - throw a projectile and start running
	ActionFireRelease // Space released - stop running
	ActionStart       // Dismiss the intro screen
	ActionRestart     // Restart after game over
	ActionPause       // P - pause/unpause
	ActionConfirm     // Enter - menu selection
	ActionBack        // B, Esc - back to menu
	ActionQuit        // Q, Ctrl+C

	// Level-triggered
	HoldLeft  // Left, A held
	HoldRight // Right, D held
	HoldRun   // Run modifier held
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionFire:
		return "Fire"
	case ActionFireRelease:
		return "FireRelease"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case HoldLeft:
		return "HoldLeft"
	case HoldRight:
		return "HoldRight"
	case HoldRun:
		return "HoldRun"
	default:
		return "Unknown"
	}
}

// IsHold reports whether the action is level-triggered.
func (a Action) IsHold() bool {
	return a >= HoldLeft
}

// InputFrame is the input for a single simulation tick: the edge-triggered
// actions that happened since the previous tick plus the hold flags that are
// currently down.
type InputFrame struct {
	Actions map[Action]bool
	Holds   map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Holds:   make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame. Hold actions are routed
// to Hold.
func (f *InputFrame) Set(a Action) {
	if a.IsHold() {
		f.Hold(a, true)
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Hold sets or clears a level-triggered flag.
func (f *InputFrame) Hold(a Action, down bool) {
	if f.Holds == nil {
		f.Holds = make(map[Action]bool)
	}
	if down {
		f.Holds[a] = true
		return
	}
	delete(f.Holds, a)
}

// Has returns true if the given edge action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Held returns true if the given hold flag is down.
func (f InputFrame) Held(a Action) bool {
	return f.Holds[a]
}

// Clear resets edge actions for the next frame. Hold flags persist until
// released.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
