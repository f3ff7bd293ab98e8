package escape

import (
	"testing"

	"github.com/vovakirdan/escape-arcade/internal/config"
	"github.com/vovakirdan/escape-arcade/internal/core"
)

func newTestAdversary(seed int64) *Adversary {
	return NewAdversary(config.DefaultEscapeConfig().Adversary, testWorld(), seed)
}

func TestAdversaryStart(t *testing.T) {
	a := newTestAdversary(1)
	if a.Pos != (core.Vec{X: 640, Y: 330}) {
		t.Errorf("start Pos = %v, expected (640, 330)", a.Pos)
	}
	if a.Behavior != Pursuing {
		t.Errorf("Behavior = %v, expected pursuing", a.Behavior)
	}
}

func TestAdversaryPursues(t *testing.T) {
	tests := []struct {
		name    string
		targetX float64
		wantDX  float64
	}{
		{"target left", 100, -2},
		{"target right", 700, 2},
		{"inside dead zone", 644, 0},
		{"dead zone edge", 645, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAdversary(1)
			x := a.Pos.X
			a.Tick(core.Vec{X: tt.targetX}, nil, testWorld())
			if got := a.Pos.X - x; got != tt.wantDX {
				t.Errorf("moved %v, expected %v", got, tt.wantDX)
			}
		})
	}
}

func TestAdversaryNeverJumps(t *testing.T) {
	a := newTestAdversary(1)
	world := testWorld()
	for range 300 {
		a.Tick(core.Vec{X: 0, Y: 0}, nil, world)
		if a.Vel.Y < 0 {
			t.Fatal("adversary should never move upward")
		}
	}
	if !a.OnGround {
		t.Error("adversary should rest on the floor")
	}
}

func TestAdversaryStunIdempotent(t *testing.T) {
	a := newTestAdversary(1)

	a.Stun()
	if a.Behavior != Stunned || a.StunTicks != 120 {
		t.Fatalf("after Stun: %v with %d ticks", a.Behavior, a.StunTicks)
	}

	for range 50 {
		a.Tick(core.Vec{}, nil, testWorld())
	}
	a.Stun()
	if a.StunTicks != 120 {
		t.Errorf("re-stun StunTicks = %d, expected reset to 120", a.StunTicks)
	}

	a.Stun()
	a.Stun()
	if a.StunTicks != 120 {
		t.Errorf("repeated Stun StunTicks = %d, expected no stacking past 120", a.StunTicks)
	}
}

func TestAdversaryStunnedHoldsPosition(t *testing.T) {
	a := newTestAdversary(1)
	world := testWorld()
	a.Tick(core.Vec{X: 640}, nil, world) // settle on the floor

	a.Stun()
	x := a.Pos.X
	counter := a.DirectionChangeCounter
	for range 119 {
		a.Tick(core.Vec{X: 0}, nil, world)
	}
	if a.Pos.X != x {
		t.Errorf("stunned adversary moved from %v to %v", x, a.Pos.X)
	}
	if a.DirectionChangeCounter != counter {
		t.Error("stunned adversary should skip wander sampling")
	}
	if !a.OnGround {
		t.Error("stunned adversary still receives gravity and collision")
	}
}

func TestAdversaryStunExpiry(t *testing.T) {
	a := newTestAdversary(1)
	a.Behavior = Stunned
	a.StunTicks = 1
	x := a.Pos.X

	a.Tick(core.Vec{X: 100}, nil, testWorld())

	if a.Behavior != Pursuing {
		t.Fatalf("Behavior = %v, expected pursuing after expiry", a.Behavior)
	}
	if a.StunTicks != 0 {
		t.Errorf("StunTicks = %d, expected 0", a.StunTicks)
	}
	if a.Pos.X != x-2 {
		t.Errorf("Pos.X = %v, expected pursuit to resume this tick (%v)", a.Pos.X, x-2)
	}
}

func TestAdversaryWanderBiasIsCosmetic(t *testing.T) {
	a := newTestAdversary(1)
	b := newTestAdversary(99)
	world := testWorld()

	sampled := false
	for tick := range 240 {
		target := core.Vec{X: float64(tick * 3)}
		a.Tick(target, nil, world)
		b.Tick(target, nil, world)
		if a.Pos != b.Pos {
			t.Fatalf("tick %d: motion depends on the wander seed", tick)
		}
		if a.WanderBias < -1 || a.WanderBias > 1 {
			t.Fatalf("WanderBias = %v out of [-1, 1]", a.WanderBias)
		}
		if a.WanderBias != 0 {
			sampled = true
		}
	}
	if !sampled {
		t.Error("wander bias was never resampled")
	}
}

func TestAdversaryClampIsPositional(t *testing.T) {
	a := newTestAdversary(1)
	a.Pos.X = 760
	a.Tick(core.Vec{X: 2000}, nil, testWorld())

	if a.Pos.X != 800-45 {
		t.Errorf("Pos.X = %v, expected clamp to %v", a.Pos.X, 800-45)
	}
	if a.Vel.X != 2 {
		t.Errorf("Vel.X = %v, clamp should not zero velocity", a.Vel.X)
	}
}

func TestAdversarySetPace(t *testing.T) {
	a := newTestAdversary(1)
	a.SetPace(3, 60)
	a.Stun()
	if a.StunTicks != 60 {
		t.Errorf("StunTicks = %d, expected 60", a.StunTicks)
	}
	a.Reset(testWorld(), 1)
	if a.Speed() != 2 {
		t.Errorf("Reset should restore base speed, got %v", a.Speed())
	}
}
