package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/escape-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// Terminals report presses and autorepeats but never releases, so the
// mapper keeps a HoldTracker that lets held keys decay when they stop
// repeating.
type KeyMapper struct {
	holds *HoldTracker
}

// NewKeyMapper creates a key mapper whose hold windows are sized for the
// given tick rate.
func NewKeyMapper(tickRate int) *KeyMapper {
	return &KeyMapper{holds: NewHoldTracker(tickRate)}
}

// MapKey translates a key message to the actions it triggers.
// Returns the actions (may be empty) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (actions []core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return []core.Action{core.ActionQuit}, true
	}

	switch key {
	case "left", "a":
		return []core.Action{core.HoldLeft}, false
	case "right", "d":
		return []core.Action{core.HoldRight}, false
	case "shift+left", "A":
		return []core.Action{core.HoldLeft, core.HoldRun}, false
	case "shift+right", "D":
		return []core.Action{core.HoldRight, core.HoldRun}, false
	case "up", "w", "W":
		return []core.Action{core.ActionJump}, false
	case " ": // Space throws; on the intro screen it also starts
		return []core.Action{core.ActionFire, core.ActionStart}, false
	case "enter":
		return []core.Action{core.ActionStart, core.ActionConfirm}, false
	case "r":
		return []core.Action{core.ActionRestart}, false
	case "p":
		return []core.Action{core.ActionPause}, false
	case "b", "esc":
		return []core.Action{core.ActionBack}, false
	}

	return nil, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	actions, isQuit := km.MapKey(msg)

	run := false
	for _, a := range actions {
		if a == core.HoldRun {
			run = true
		}
	}
	for _, a := range actions {
		switch {
		case a == core.HoldLeft || a == core.HoldRight:
			km.holds.Press(a, frame)
			if !run {
				km.holds.Release(core.HoldRun, frame)
			}
		case a.IsHold():
			km.holds.Press(a, frame)
		case a == core.ActionFire:
			frame.Set(a)
			km.holds.Press(a, frame)
		default:
			frame.Set(a)
		}
	}
	return isQuit
}

// Tick ages the tracked holds by one simulation tick, writing the releases
// of keys that stopped repeating into frame.
func (km *KeyMapper) Tick(frame *core.InputFrame) {
	km.holds.Tick(frame)
}

// Reset forgets every tracked key.
func (km *KeyMapper) Reset(frame *core.InputFrame) {
	km.holds.Reset(frame)
}

// HoldTracker emulates key-up events for a terminal. A press holds its
// action for a long initial window that covers the autorepeat delay; each
// repeat extends it by a short window. When a window runs out the action is
// released. The fire key is tracked the same way so its release can be
// reported as ActionFireRelease.
type HoldTracker struct {
	initial   int
	repeat    int
	remaining map[core.Action]int
}

// NewHoldTracker sizes the windows for the given tick rate: half a second
// for the first press and an eighth of a second per repeat.
func NewHoldTracker(tickRate int) *HoldTracker {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &HoldTracker{
		initial:   max(tickRate/2, 2),
		repeat:    max(tickRate/8, 2),
		remaining: make(map[core.Action]int),
	}
}

// Press records a press or autorepeat of a.
func (h *HoldTracker) Press(a core.Action, frame *core.InputFrame) {
	window := h.initial
	if left, ok := h.remaining[a]; ok {
		window = max(left, h.repeat)
	}
	h.remaining[a] = window

	// Terminals repeat only the last key, so the opposite direction is up.
	switch a {
	case core.HoldLeft:
		h.Release(core.HoldRight, frame)
	case core.HoldRight:
		h.Release(core.HoldLeft, frame)
	}

	if a.IsHold() {
		frame.Hold(a, true)
	}
}

// Release drops a immediately.
func (h *HoldTracker) Release(a core.Action, frame *core.InputFrame) {
	if _, ok := h.remaining[a]; !ok {
		return
	}
	delete(h.remaining, a)
	h.release(a, frame)
}

// Held reports whether a is still inside its window.
func (h *HoldTracker) Held(a core.Action) bool {
	_, ok := h.remaining[a]
	return ok
}

// Tick counts every window down by one and releases the expired ones.
func (h *HoldTracker) Tick(frame *core.InputFrame) {
	for a, left := range h.remaining {
		left--
		if left > 0 {
			h.remaining[a] = left
			continue
		}
		delete(h.remaining, a)
		h.release(a, frame)
	}
}

// Reset releases everything.
func (h *HoldTracker) Reset(frame *core.InputFrame) {
	for a := range h.remaining {
		delete(h.remaining, a)
		h.release(a, frame)
	}
}

func (h *HoldTracker) release(a core.Action, frame *core.InputFrame) {
	if a == core.ActionFire {
		frame.Set(core.ActionFireRelease)
		return
	}
	frame.Hold(a, false)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
