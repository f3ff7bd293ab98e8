package escape

import (
	"github.com/vovakirdan/escape-arcade/internal/config"
	"github.com/vovakirdan/escape-arcade/internal/core"
)

// World holds the playfield dimensions shared by every controller tick.
type World struct {
	W, H    float64
	FloorY  float64 // Ground plane; bodies never sink below it
	Gravity float64
}

// NewWorld derives the playfield from its configuration.
func NewWorld(cfg config.WorldConfig) World {
	return World{
		W:       cfg.Width,
		H:       cfg.Height,
		FloorY:  cfg.Height - cfg.FloorMargin,
		Gravity: cfg.Gravity,
	}
}

// Body is the kinematic primitive shared by the player and the adversary.
// Pos is the top-left corner of its box; Y grows downward.
type Body struct {
	Pos      core.Vec
	Vel      core.Vec
	W, H     float64
	OnGround bool // Recomputed by every Resolve call
}

// Box returns the body's bounding box.
func (b *Body) Box() core.Box {
	return core.Box{X: b.Pos.X, Y: b.Pos.Y, W: b.W, H: b.H}
}

// Center returns the center of the bounding box.
func (b *Body) Center() core.Vec {
	return b.Box().Center()
}

// Integrate applies gravity to the velocity, then the velocity to the position.
func (b *Body) Integrate(gravity float64) {
	b.Vel.Y += gravity
	b.Pos = b.Pos.Add(b.Vel)
}

// ClampX keeps the body inside [0, worldW-W]. With zeroVelocity set, hitting
// a wall also kills horizontal momentum.
func (b *Body) ClampX(worldW float64, zeroVelocity bool) {
	maxX := worldW - b.W
	clamped := core.ClampF(b.Pos.X, 0, maxX)
	if clamped != b.Pos.X {
		b.Pos.X = clamped
		if zeroVelocity {
			b.Vel.X = 0
		}
	}
}

// Resolve lands the body on the first eligible platform, then on the ground
// plane, then clamps it below the top of the world. prevY is the body's Y
// before this tick's integration. It reports whether the body is supported.
//
// A platform only catches a falling body whose top was above the platform
// top before the move, so bodies pass upward through platforms freely.
func (b *Body) Resolve(prevY float64, platforms []Platform, floorY float64) bool {
	b.OnGround = false

	box := b.Box()
	for _, p := range platforms {
		if b.Vel.Y <= 0 {
			break
		}
		if box.OverlapsX(p.Box()) && prevY < p.Y && b.Pos.Y+b.H >= p.Y {
			b.land(p.Y)
		}
	}

	// The ground plane always runs last and wins.
	if b.Pos.Y+b.H > floorY {
		b.land(floorY)
	}

	if b.Pos.Y < 0 {
		b.Pos.Y = 0
		b.Vel.Y = 0
	}
	return b.OnGround
}

func (b *Body) land(surfaceY float64) {
	b.Pos.Y = surfaceY - b.H
	b.Vel.Y = 0
	b.OnGround = true
}
