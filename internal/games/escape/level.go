package escape

import (
	"math"

	"github.com/vovakirdan/escape-arcade/internal/core"
)

// Platform is an immutable lunch table the bodies can land on.
type Platform struct {
	X, Y, W, H float64
}

// Box returns the platform's bounding box.
func (p Platform) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Generated layouts (level 3 and beyond).
const (
	genCount     = 5
	genBaseX     = 50
	genSpacing   = 140
	genBaseDrop  = 160 // Distance of the base line above the world bottom
	genAmplitude = 60
	genPhaseStep = 0.8
	genWidth     = 100
	genHeight    = 25
)

// Layout returns the platform layout for a 1-based level in a world of the
// given height. It is a pure function: the same level always yields the same
// platforms.
func Layout(level int, worldH float64) []Platform {
	h := worldH
	switch {
	case level <= 1:
		return []Platform{
			{X: 150, Y: h - 180, W: 120, H: 25},
			{X: 350, Y: h - 250, W: 120, H: 25},
			{X: 550, Y: h - 200, W: 120, H: 25},
		}
	case level == 2:
		return []Platform{
			{X: 80, Y: h - 160, W: 100, H: 25},
			{X: 220, Y: h - 220, W: 100, H: 25},
			{X: 380, Y: h - 180, W: 100, H: 25},
			{X: 520, Y: h - 280, W: 100, H: 25},
			{X: 650, Y: h - 160, W: 100, H: 25},
		}
	}

	platforms := make([]Platform, genCount)
	for i := range genCount {
		fi := float64(i)
		platforms[i] = Platform{
			X: genBaseX + fi*genSpacing,
			Y: h - genBaseDrop + genAmplitude*math.Sin(fi*genPhaseStep),
			W: genWidth,
			H: genHeight,
		}
	}
	return platforms
}

// Director owns the current level and its platform set.
type Director struct {
	level      int
	platforms  []Platform
	world      World
	exitMargin float64
}

// NewDirector creates a director with level 1 loaded.
func NewDirector(world World, exitMargin float64) *Director {
	d := &Director{world: world, exitMargin: exitMargin}
	d.Load(1)
	return d
}

// Level returns the current 1-based level.
func (d *Director) Level() int {
	return d.level
}

// Platforms returns a copy of the current platform set.
func (d *Director) Platforms() []Platform {
	out := make([]Platform, len(d.platforms))
	copy(out, d.platforms)
	return out
}

// view returns the live platform slice for controller ticks. Callers must
// treat it as read-only.
func (d *Director) view() []Platform {
	return d.platforms
}

// Load replaces the platform set with the layout of the given level.
func (d *Director) Load(level int) {
	if level < 1 {
		level = 1
	}
	d.level = level
	d.platforms = Layout(level, d.world.H)
}

// Advance moves to the next level.
func (d *Director) Advance() {
	d.Load(d.level + 1)
}

// Completed reports whether a player at playerX has reached the exit.
func (d *Director) Completed(playerX float64) bool {
	return playerX > d.world.W-d.exitMargin
}
