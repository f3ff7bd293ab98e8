// Package tui is the terminal front end. It drives a registered game from a
// Bubble Tea loop, maps keys to actions, and serves the same models over SSH.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen names the model
// whose tick chain produced it; a model ignores ticks from other chains.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

var tickGen atomic.Uint64

// nextTickGen returns a generation no other model in the process holds.
func nextTickGen() uint64 {
	return tickGen.Add(1)
}

// tickCmd schedules the next simulation tick. A non-positive rate falls back
// to 60 ticks per second.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
