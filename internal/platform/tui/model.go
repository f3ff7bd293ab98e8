package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/escape-arcade/internal/core"
	"github.com/vovakirdan/escape-arcade/internal/registry"
	"github.com/vovakirdan/escape-arcade/internal/storage"
)

// LocalPlayer is the name recorded for runs played outside SSH.
const LocalPlayer = "local"

// Options identify who is playing and where diagnostics go.
type Options struct {
	Player string      // Name recorded with saved runs; empty means LocalPlayer
	Logger *log.Logger // Nil means log.Default()
}

func (o Options) withDefaults() Options {
	if o.Player == "" {
		o.Player = LocalPlayer
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	keyMapper  *KeyMapper
	tickGen    uint64 // Only ticks carrying this generation step the game
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the finished run has been stored
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		opts:       opts.withDefaults(),
		keyMapper:  NewKeyMapper(cfg.TickRate),
		tickGen:    nextTickGen(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.opts.Logger.Debug("game ready", "game", m.game.ID(), "player", m.opts.Player, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate, m.tickGen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The simulation runs in world units, so a resize only rescales.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		// A tick from an earlier model's chain would double the rate.
		if msg.Gen != m.tickGen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu only where it cannot lose a run in progress
	if m.inputFrame.Has(core.ActionBack) && (!m.gameState.Started || m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	for _, ev := range result.Events {
		m.opts.Logger.Debug("game event", "game", m.game.ID(), "player", m.opts.Player, "event", ev)
	}

	if wasOver && !m.gameState.GameOver {
		m.runSaved = false
	}
	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	// Clear input for next frame, then age the held keys
	m.inputFrame.Clear()
	m.keyMapper.Tick(&m.inputFrame)

	return m, tickCmd(m.config.TickRate, m.tickGen)
}

// saveRun stores the finished run. Failures are logged and the game goes on.
func (m Model) saveRun() {
	st := m.gameState
	m.opts.Logger.Info("run finished",
		"game", m.game.ID(),
		"player", m.opts.Player,
		"score", st.Score,
		"level", st.Level,
		"stuns", st.Stuns,
		"ticks", st.Ticks,
	)
	if m.store == nil {
		return
	}

	run := storage.Run{
		GameID: m.game.ID(),
		Player: m.opts.Player,
		Score:  st.Score,
		Level:  st.Level,
		Stuns:  st.Stuns,
		Ticks:  st.Ticks,
		Reason: gameOverReason(m.game),
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.opts.Logger.Error("cannot save run", "error", err)
	}
}

// reasoner is implemented by games that explain why a run ended.
type reasoner interface {
	Reason() string
}

func gameOverReason(g registry.Game) string {
	if r, ok := g.(reasoner); ok {
		return r.Reason()
	}
	return ""
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".escape", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game. It returns true
// when the player asked to go back to the menu rather than quit.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	model := newStandaloneModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if sm, ok := final.(standaloneModel); ok {
		return sm.BackToMenu(), nil
	}
	return false, nil
}

// standaloneModel quits the program when the player goes back, so a
// caller running its own menu loop can take over.
type standaloneModel struct {
	Model
}

func newStandaloneModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) standaloneModel {
	return standaloneModel{Model: NewModel(game, store, cfg, opts)}
}

func (m standaloneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.Model.Update(msg)
	if gm, ok := next.(Model); ok {
		m.Model = gm
	}
	if m.BackToMenu() {
		return m, tea.Quit
	}
	return m, cmd
}
