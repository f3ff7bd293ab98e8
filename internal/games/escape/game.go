// Package escape implements the lunchroom escape platformer: a student
// runs across lunch tables toward the exit while the menahel chases them,
// throwing felafel balls to stun him.
//
// Session is the deterministic simulation core. Game adapts it to the
// registry so the terminal front ends can drive it.
package escape

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/escape-arcade/internal/config"
	"github.com/vovakirdan/escape-arcade/internal/core"
	"github.com/vovakirdan/escape-arcade/internal/registry"
)

// ID is the registry and score-store identifier.
const ID = "escape"

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names select the
// config file's own difficulty.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// LoadConfig loads the configuration selected by SetConfigPath and applies
// the preset selected by SetDifficultyPreset.
func LoadConfig() (config.EscapeConfig, error) {
	cfg, err := config.LoadEscape(configPath)
	if err != nil {
		return cfg, err
	}
	if difficultyPreset != "" {
		config.ApplyEscapePreset(&cfg, difficultyPreset)
	}
	return cfg, nil
}

// Game adapts a Session to registry.Game.
type Game struct {
	session *Session
	runtime core.RuntimeConfig
}

// New creates a new escape game instance. Reset must be called before any
// other method except ID and Title.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Escape the Menahel"
}

// Reset starts a new session at the intro screen. A config that fails to
// load or validate is logged and the session falls back to the defaults.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := LoadConfig()
	if err != nil {
		log.Error("cannot load config, using defaults", "game", ID, "path", configPath, "error", err)
		cfg = config.DefaultEscapeConfig()
	}

	s, err := NewSession(cfg, runtime.Seed)
	if err != nil {
		log.Error("invalid config, using defaults", "game", ID, "path", configPath, "error", err)
		s, _ = NewSession(config.DefaultEscapeConfig(), runtime.Seed) //nolint:errcheck // defaults always validate
	}
	g.session = s
}

// Session exposes the simulation for front ends that draw the world
// themselves.
func (g *Game) Session() *Session {
	return g.session
}

// Reason returns why the last run ended, or "" while it is still going.
func (g *Game) Reason() string {
	return g.session.Reason()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	r := g.session.Step(in)

	var events []string
	switch {
	case r.Started:
		events = append(events, "start")
	case r.Restarted:
		events = append(events, "restart")
	}
	if r.Hits > 0 {
		events = append(events, fmt.Sprintf("stunned x%d", r.Hits))
	}
	if r.LevelUp {
		events = append(events, fmt.Sprintf("level %d", g.session.Level()))
	}
	if r.Caught {
		events = append(events, "caught")
	}

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session
	return core.GameState{
		Score:    s.Score(),
		Level:    s.Level(),
		Stuns:    s.Stuns(),
		Ticks:    s.RunTicks(),
		Started:  s.Phase() != PhaseIntro,
		GameOver: s.Phase() == PhaseGameOver,
		Paused:   s.Paused(),
	}
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
