package escape

import (
	"fmt"

	"github.com/vovakirdan/escape-arcade/internal/config"
	"github.com/vovakirdan/escape-arcade/internal/core"
)

// CaughtReason is the game-over text when the adversary reaches the player.
const CaughtReason = "THE MENAHEL CAUGHT YOU!"

// Scoring.
const (
	pointsPerLevel = 100
	pointsPerStun  = 10
)

// Phase is the top-level session state.
type Phase int

const (
	PhaseIntro Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// phaseState is the session's current phase along with the data only that
// phase carries.
type phaseState interface {
	phase() Phase
}

type introPhase struct{}

type playingPhase struct {
	paused bool
}

type gameOverPhase struct {
	reason string
}

func (introPhase) phase() Phase    { return PhaseIntro }
func (playingPhase) phase() Phase  { return PhasePlaying }
func (gameOverPhase) phase() Phase { return PhaseGameOver }

// StepReport describes what happened during one Step.
type StepReport struct {
	Phase     Phase
	Started   bool // Intro dismissed
	Restarted bool // New run after game over
	Paused    bool // Pause state after this step
	Simulated bool // Physics ran this step
	Jumped    bool
	Threw     bool
	Hits      int
	LevelUp   bool
	Caught    bool
}

// Session owns one run: the level, both bodies, the projectiles and the
// phase machine. A single goroutine drives it through Step.
type Session struct {
	cfg        config.EscapeConfig
	world      World
	seed       int64
	difficulty *config.DifficultyManager

	state       phaseState
	director    *Director
	player      *Player
	adversary   *Adversary
	projectiles *ProjectileSet

	runLatch bool   // Set by a throw, cleared by its release
	tick     uint64 // Simulated ticks since the session was created
	runTicks int    // Simulated ticks in the current run
	stuns    int
}

// NewSession validates cfg and creates a session in the intro phase.
// seed drives the adversary's wander sampling.
func NewSession(cfg config.EscapeConfig, seed int64) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("escape: invalid config: %w", err)
	}

	world := NewWorld(cfg.World)
	s := &Session{
		cfg:         cfg,
		world:       world,
		seed:        seed,
		difficulty:  config.NewDifficultyManager(cfg.Difficulty),
		state:       introPhase{},
		director:    NewDirector(world, cfg.Session.ExitMargin),
		player:      NewPlayer(cfg.Player, world),
		adversary:   NewAdversary(cfg.Adversary, world, seed),
		projectiles: NewProjectileSet(cfg.Projectile),
	}
	s.applyPace()
	return s, nil
}

// Step runs one fixed tick. Intro and game over only watch for their exit
// intent; the simulation resumes on the tick after a transition.
func (s *Session) Step(in core.InputFrame) StepReport {
	var r StepReport

	switch st := s.state.(type) {
	case introPhase:
		if in.Has(core.ActionStart) {
			s.state = playingPhase{}
			r.Started = true
		}
	case gameOverPhase:
		if in.Has(core.ActionRestart) {
			s.restart()
			s.state = playingPhase{}
			r.Restarted = true
		}
	case playingPhase:
		if in.Has(core.ActionPause) {
			st.paused = !st.paused
			s.state = st
		}
		r.Paused = st.paused
		if !st.paused {
			s.simulate(in, &r)
		}
	}

	r.Phase = s.Phase()
	return r
}

// simulate runs the fixed per-tick order: intents, player, adversary,
// projectiles, then the game-over and level-exit checks.
func (s *Session) simulate(in core.InputFrame, r *StepReport) {
	r.Simulated = true
	s.tick++
	s.runTicks++
	platforms := s.director.view()

	if in.Has(core.ActionFire) {
		s.runLatch = true
	}
	if in.Has(core.ActionFireRelease) {
		s.runLatch = false
	}
	running := in.Held(core.HoldRun) || s.runLatch

	left, right := in.Held(core.HoldLeft), in.Held(core.HoldRight)
	switch {
	case left && !right:
		s.player.MoveLeft(running)
	case right && !left:
		s.player.MoveRight(running)
	default:
		s.player.Stop()
	}

	if in.Has(core.ActionJump) {
		r.Jumped = s.player.TryJump()
	}
	if in.Has(core.ActionFire) {
		if p, ok := s.player.TryFire(); ok {
			s.projectiles.Spawn(p)
			r.Threw = true
		}
	}

	s.player.Tick(platforms, s.world)
	s.adversary.Tick(s.player.Pos, platforms, s.world)
	r.Hits = s.projectiles.Tick(s.world.W, s.adversary)
	s.stuns += r.Hits

	if s.player.Center().Dist(s.adversary.Center()) < s.cfg.Session.CatchDistance {
		s.state = gameOverPhase{reason: CaughtReason}
		r.Caught = true
		return
	}

	if s.director.Completed(s.player.Pos.X) {
		s.director.Advance()
		s.player.Reset(s.world)
		s.applyPace()
		r.LevelUp = true
	}
}

// restart begins a fresh run at level 1.
func (s *Session) restart() {
	s.director.Load(1)
	s.player.Reset(s.world)
	s.adversary.Reset(s.world, s.seed)
	s.projectiles.Clear()
	s.applyPace()
	s.runLatch = false
	s.runTicks = 0
	s.stuns = 0
}

// applyPace sets the adversary's speed and stun duration for the level.
func (s *Session) applyPace() {
	level := s.director.Level()
	s.adversary.SetPace(
		s.difficulty.AdversarySpeed(s.cfg.Adversary.Speed, level),
		s.difficulty.StunTicks(s.cfg.Adversary.StunTicks, level),
	)
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.state.phase()
}

// Paused reports whether a playing session is paused.
func (s *Session) Paused() bool {
	st, ok := s.state.(playingPhase)
	return ok && st.paused
}

// Reason returns the game-over reason, or "" outside game over.
func (s *Session) Reason() string {
	if st, ok := s.state.(gameOverPhase); ok {
		return st.reason
	}
	return ""
}

// Level returns the current 1-based level.
func (s *Session) Level() int {
	return s.director.Level()
}

// Score returns the score of the current run.
func (s *Session) Score() int {
	return (s.director.Level()-1)*pointsPerLevel + s.stuns*pointsPerStun
}

// Stuns returns the number of projectile hits in the current run.
func (s *Session) Stuns() int {
	return s.stuns
}

// RunTicks returns the simulated ticks of the current run.
func (s *Session) RunTicks() int {
	return s.runTicks
}

// World returns the playfield dimensions.
func (s *Session) World() World {
	return s.world
}

// Player returns the player. Callers outside the simulation must not mutate it.
func (s *Session) Player() *Player {
	return s.player
}

// Adversary returns the adversary. Callers outside the simulation must not mutate it.
func (s *Session) Adversary() *Adversary {
	return s.adversary
}

// Projectiles returns the projectile set.
func (s *Session) Projectiles() *ProjectileSet {
	return s.projectiles
}

// Platforms returns a copy of the current platform set.
func (s *Session) Platforms() []Platform {
	return s.director.Platforms()
}
