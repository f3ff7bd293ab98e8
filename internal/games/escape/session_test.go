package escape

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/escape-arcade/internal/config"
	"github.com/vovakirdan/escape-arcade/internal/core"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(config.DefaultEscapeConfig(), 42)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return s
}

// playingSession returns a session past the intro.
func playingSession(t *testing.T) *Session {
	t.Helper()
	s := newTestSession(t)
	s.Step(frame(core.ActionStart))
	if s.Phase() != PhasePlaying {
		t.Fatalf("Phase() = %v, expected playing", s.Phase())
	}
	return s
}

// frame builds an input frame from edge actions and hold flags.
func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestNewSessionRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultEscapeConfig()
	cfg.World.Width = -1

	_, err := NewSession(cfg, 1)
	if err == nil {
		t.Fatal("expected error for negative world width")
	}
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("error %v should wrap config.ErrInvalidConfig", err)
	}
}

func TestSessionIntroFreezes(t *testing.T) {
	s := newTestSession(t)
	if s.Phase() != PhaseIntro || s.Level() != 1 {
		t.Fatalf("new session: phase %v level %d", s.Phase(), s.Level())
	}

	before := s.Snapshot()
	for range 10 {
		r := s.Step(frame(core.HoldRight, core.ActionJump, core.ActionFire))
		if r.Simulated {
			t.Fatal("intro must not simulate")
		}
	}
	after := s.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("intro changed simulation state")
	}

	// The start tick only transitions.
	r := s.Step(frame(core.ActionStart, core.HoldRight))
	if !r.Started || r.Simulated || s.Phase() != PhasePlaying {
		t.Errorf("start step: %+v phase %v", r, s.Phase())
	}
	if s.Player().Pos != (core.Vec{X: 50, Y: 330}) {
		t.Error("player moved on the transition tick")
	}

	r = s.Step(frame(core.HoldRight))
	if !r.Simulated || s.Player().Vel.X != 1 {
		t.Errorf("first playing tick: simulated=%v Vel.X=%v", r.Simulated, s.Player().Vel.X)
	}
}

func TestSessionLevelCompletion(t *testing.T) {
	s := playingSession(t)
	s.Adversary().Pos.X = 100 // out of reach
	p := s.Player()
	p.Pos = core.Vec{X: 800 - 101, Y: 330}
	p.Vel = core.Vec{X: 2}

	r := s.Step(frame(core.HoldRight))

	if !r.LevelUp || s.Level() != 2 {
		t.Fatalf("LevelUp = %v Level = %d, expected level 2", r.LevelUp, s.Level())
	}
	if p.Pos != (core.Vec{X: 50, Y: 330}) || p.Vel != (core.Vec{}) {
		t.Errorf("player not reset: Pos %v Vel %v", p.Pos, p.Vel)
	}
	if !reflect.DeepEqual(s.Platforms(), Layout(2, 480)) {
		t.Errorf("platforms = %v, expected level 2 layout", s.Platforms())
	}
	if s.Score() != 100 {
		t.Errorf("Score() = %d, expected 100", s.Score())
	}
}

func TestSessionCatchEndsRun(t *testing.T) {
	s := playingSession(t)
	s.Player().Pos = core.Vec{X: 300, Y: 330}
	s.Adversary().Pos = core.Vec{X: 330, Y: 320}

	r := s.Step(frame())

	if !r.Caught || s.Phase() != PhaseGameOver {
		t.Fatalf("Caught = %v Phase = %v, expected game over", r.Caught, s.Phase())
	}
	if s.Reason() != CaughtReason {
		t.Errorf("Reason() = %q, expected %q", s.Reason(), CaughtReason)
	}

	frozen := s.Snapshot()
	for range 30 {
		r := s.Step(frame(core.HoldLeft, core.ActionJump, core.ActionFire, core.ActionStart, core.ActionPause))
		if r.Simulated {
			t.Fatal("game over must not simulate")
		}
	}
	if after := s.Snapshot(); after.Hash() != frozen.Hash() {
		t.Error("physics ran during game over")
	}
}

func TestSessionCatchUsesCenters(t *testing.T) {
	tests := []struct {
		name   string
		advX   float64
		caught bool
	}{
		// Player center is (320, 355); the adversary steps 2 toward it
		// and settles with its center at y 350.
		{"just inside", 320 + 48 + 2 - 22.5, true},
		{"just outside", 320 + 50 + 2 - 22.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := playingSession(t)
			s.Player().Pos = core.Vec{X: 300, Y: 330}
			s.Adversary().Pos = core.Vec{X: tt.advX, Y: 325}

			s.Step(frame())
			if got := s.Phase() == PhaseGameOver; got != tt.caught {
				d := s.Player().Center().Dist(s.Adversary().Center())
				t.Errorf("caught = %v at distance %v, expected %v", got, d, tt.caught)
			}
		})
	}
}

func TestSessionRestart(t *testing.T) {
	s := playingSession(t)
	s.director.Load(4)
	s.stuns = 3
	s.projectiles.Spawn(Projectile{Pos: core.Vec{X: 10, Y: 10}, Dir: 1})
	s.Player().Pos = core.Vec{X: 300, Y: 330}
	s.Adversary().Pos = core.Vec{X: 330, Y: 320}
	s.Step(frame())
	if s.Phase() != PhaseGameOver {
		t.Fatal("setup: expected game over")
	}

	r := s.Step(frame(core.ActionRestart))

	if !r.Restarted || s.Phase() != PhasePlaying {
		t.Fatalf("Restarted = %v Phase = %v", r.Restarted, s.Phase())
	}
	if s.Level() != 1 || s.Score() != 0 || s.Projectiles().Len() != 0 {
		t.Errorf("restart left level %d score %d projectiles %d", s.Level(), s.Score(), s.Projectiles().Len())
	}
	if s.Player().Pos != (core.Vec{X: 50, Y: 330}) {
		t.Errorf("player Pos = %v, expected start", s.Player().Pos)
	}
	if s.Adversary().Pos != (core.Vec{X: 640, Y: 330}) || s.Adversary().Behavior != Pursuing {
		t.Errorf("adversary = %v %v, expected start and pursuing", s.Adversary().Pos, s.Adversary().Behavior)
	}
	if s.Reason() != "" {
		t.Errorf("Reason() = %q after restart", s.Reason())
	}
	if !reflect.DeepEqual(s.Platforms(), Layout(1, 480)) {
		t.Error("restart should load the level 1 layout")
	}
}

func TestSessionPause(t *testing.T) {
	s := playingSession(t)
	s.Step(frame(core.HoldRight))

	r := s.Step(frame(core.ActionPause))
	if !r.Paused || r.Simulated || !s.Paused() {
		t.Fatalf("pause step: %+v", r)
	}

	before := s.Snapshot()
	for range 10 {
		s.Step(frame(core.HoldRight))
	}
	after := s.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("paused session changed state")
	}

	r = s.Step(frame(core.ActionPause, core.HoldRight))
	if r.Paused || !r.Simulated {
		t.Errorf("resume step: %+v", r)
	}
}

func TestSessionRunLatch(t *testing.T) {
	s := playingSession(t)

	s.Step(frame(core.ActionFire, core.HoldRight))
	for range 20 {
		s.Step(frame(core.HoldRight))
	}
	if v := s.Player().Vel.X; v != 12 {
		t.Fatalf("latched run Vel.X = %v, expected 12", v)
	}

	s.Step(frame(core.ActionFireRelease, core.HoldRight))
	if v := s.Player().Vel.X; v != 6 {
		t.Errorf("after release Vel.X = %v, expected walk cap 6", v)
	}

	s.Step(frame(core.HoldRun, core.HoldRight))
	if v := s.Player().Vel.X; v != 7 {
		t.Errorf("held run Vel.X = %v, expected 7", v)
	}
}

func TestSessionThrowStunsAndScores(t *testing.T) {
	s := playingSession(t)

	r := s.Step(frame(core.ActionFire))
	if !r.Threw || s.Projectiles().Len() != 1 {
		t.Fatalf("Threw = %v Len = %d", r.Threw, s.Projectiles().Len())
	}

	hits := 0
	for range 80 {
		r := s.Step(frame(core.ActionFireRelease))
		hits += r.Hits
		if hits > 0 {
			break
		}
	}
	if hits != 1 {
		t.Fatalf("hits = %d, expected the felafel to reach the adversary", hits)
	}
	if s.Adversary().Behavior != Stunned || s.Stuns() != 1 || s.Score() != 10 {
		t.Errorf("behavior %v stuns %d score %d", s.Adversary().Behavior, s.Stuns(), s.Score())
	}
}

func TestSessionGroundedImpliesRest(t *testing.T) {
	s := playingSession(t)

	for tick := range 3000 {
		var actions []core.Action
		if tick%37 == 0 || tick%37 == 9 {
			actions = append(actions, core.ActionJump)
		}
		if tick%25 == 0 {
			actions = append(actions, core.ActionFire)
		}
		if tick%25 == 12 {
			actions = append(actions, core.ActionFireRelease)
		}
		if (tick/90)%3 == 0 {
			actions = append(actions, core.HoldLeft)
		} else {
			actions = append(actions, core.HoldRight)
		}
		if s.Phase() == PhaseGameOver {
			actions = append(actions, core.ActionRestart)
		}

		s.Step(frame(actions...))

		for name, b := range map[string]*Body{"player": &s.Player().Body, "adversary": &s.Adversary().Body} {
			if b.OnGround && b.Vel.Y != 0 {
				t.Fatalf("tick %d: %s OnGround with Vel.Y = %v", tick, name, b.Vel.Y)
			}
			if b.Pos.X < 0 || b.Pos.X > 800-b.W {
				t.Fatalf("tick %d: %s x = %v outside the world", tick, name, b.Pos.X)
			}
		}
		if jc := s.Player().JumpCount; jc < 0 || jc > 2 {
			t.Fatalf("tick %d: JumpCount = %d", tick, jc)
		}
	}
}

func TestSessionDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputs[i].Set(core.ActionStart)
		case i%40 == 5:
			inputs[i].Set(core.ActionJump)
		case i%30 == 7:
			inputs[i].Set(core.ActionFire)
		}
		if i%200 < 120 {
			inputs[i].Hold(core.HoldRight, true)
		}
		inputs[i].Set(core.ActionRestart)
	}

	run := func() Snapshot {
		s := newTestSession(t)
		for _, in := range inputs {
			s.Step(in)
		}
		return s.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Tick != snap2.Tick || snap1.Level != snap2.Level {
		t.Errorf("Determinism failed: tick %d/%d level %d/%d", snap1.Tick, snap2.Tick, snap1.Level, snap2.Level)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := playingSession(t)
	s.Step(frame(core.ActionFire))

	snap := s.Snapshot()
	snap.Platforms[0].X = -1
	snap.Projectiles[0].X = -1

	if s.Platforms()[0].X == -1 {
		t.Error("snapshot platforms alias the session")
	}
	if s.Projectiles().Active()[0].Pos.X == -1 {
		t.Error("snapshot projectiles alias the session")
	}
}

func TestDifficultyScalesAdversaryPerLevel(t *testing.T) {
	cfg := config.DefaultEscapeConfig()
	cfg.Difficulty.Progression = config.ProgressionConfig{Type: "level", MaxAt: 3}
	cfg.Difficulty.Scaling.SpeedMultiplier = 1

	s, err := NewSession(cfg, 1)
	if err != nil {
		t.Fatal(err)
	}
	if s.Adversary().Speed() != 2 {
		t.Fatalf("level 1 speed = %v, expected 2", s.Adversary().Speed())
	}

	s.director.Advance()
	s.director.Advance()
	s.applyPace()
	if s.Adversary().Speed() != 4 {
		t.Errorf("level 3 speed = %v, expected 4", s.Adversary().Speed())
	}
}

func TestSessionAdversaryReadsUpdatedPlayer(t *testing.T) {
	s := playingSession(t)
	s.Player().Pos.X = 400
	s.Player().Vel.X = 6
	s.Adversary().Pos.X = 399

	// Before the move the gap is inside the dead zone; after it, outside.
	s.Step(frame(core.HoldRight))

	if got := s.Player().Pos.X; got != 406 {
		t.Fatalf("player x = %v, expected 406", got)
	}
	if got := s.Adversary().Pos.X; got != 401 {
		t.Errorf("adversary x = %v, expected 401 (chasing this tick's position)", got)
	}
}
