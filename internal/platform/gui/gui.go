// Package gui is the windowed front end. It runs the escape session on
// Ebitengine, which reports real key releases, and draws the world with
// vector shapes instead of terminal cells.
package gui

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/escape-arcade/internal/core"
	"github.com/vovakirdan/escape-arcade/internal/games/escape"
	"github.com/vovakirdan/escape-arcade/internal/storage"
)

// Palette
var (
	wallColor      = color.RGBA{232, 222, 196, 255}
	floorColor     = color.RGBA{110, 72, 40, 255}
	tableTopColor  = color.RGBA{150, 100, 55, 255}
	tableLegColor  = color.RGBA{120, 120, 120, 255}
	doorColor      = color.RGBA{70, 140, 90, 255}
	playerColor    = color.RGBA{50, 110, 220, 255}
	menahelColor   = color.RGBA{200, 40, 40, 255}
	stunnedColor   = color.RGBA{150, 110, 110, 255}
	eyeColor       = color.RGBA{255, 255, 255, 255}
	starColor      = color.RGBA{250, 210, 40, 255}
	felafelColor   = color.RGBA{190, 120, 30, 255}
	hudColor       = color.RGBA{40, 30, 20, 255}
	panelColor     = color.RGBA{0, 0, 0, 190}
	panelTextColor = color.RGBA{240, 240, 240, 255}
	titleColor     = color.RGBA{250, 210, 40, 255}
)

const (
	lineHeight = 18
	hudMargin  = 8
	legWidth   = 6
)

// Game implements ebiten.Game around an escape game.
type Game struct {
	game     *escape.Game
	store    *storage.Store
	logger   *log.Logger
	face     *text.GoXFace
	frame    core.InputFrame
	state    core.GameState
	runSaved bool
}

// New creates the windowed game and resets the session.
func New(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	g := &Game{
		game:   escape.New(),
		store:  store,
		logger: logger,
		face:   text.NewGoXFace(basicfont.Face7x13),
		frame:  core.NewInputFrame(),
	}
	g.game.Reset(cfg)
	return g
}

// Update reads the keyboard and advances one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.readInput()
	wasOver := g.state.GameOver
	res := g.game.Step(g.frame)
	g.state = res.State
	for _, ev := range res.Events {
		g.logger.Debug("game event", "game", escape.ID, "event", ev)
	}

	if wasOver && !g.state.GameOver {
		g.runSaved = false
	}
	if g.state.GameOver && !g.runSaved {
		g.saveRun()
		g.runSaved = true
	}

	g.frame.Clear()
	return nil
}

func (g *Game) readInput() {
	g.frame.Hold(core.HoldLeft, anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA))
	g.frame.Hold(core.HoldRight, anyPressed(ebiten.KeyArrowRight, ebiten.KeyD))
	g.frame.Hold(core.HoldRun, anyPressed(ebiten.KeyShift))

	if anyJustPressed(ebiten.KeyArrowUp, ebiten.KeyW) {
		g.frame.Set(core.ActionJump)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.frame.Set(core.ActionFire)
		g.frame.Set(core.ActionStart)
	}
	if inpututil.IsKeyJustReleased(ebiten.KeySpace) {
		g.frame.Set(core.ActionFireRelease)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.frame.Set(core.ActionStart)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.frame.Set(core.ActionRestart)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.frame.Set(core.ActionPause)
	}
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (g *Game) saveRun() {
	st := g.state
	g.logger.Info("run finished", "game", escape.ID, "score", st.Score, "level", st.Level, "stuns", st.Stuns, "ticks", st.Ticks)
	if g.store == nil {
		return
	}
	_, err := g.store.SaveRun(storage.Run{
		GameID: escape.ID,
		Player: "local",
		Score:  st.Score,
		Level:  st.Level,
		Stuns:  st.Stuns,
		Ticks:  st.Ticks,
		Reason: g.game.Reason(),
	})
	if err != nil {
		g.logger.Error("cannot save run", "error", err)
	}
}

// Draw renders the current snapshot in world units.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.game.Session().Snapshot()
	w := snap.World

	screen.Fill(wallColor)

	// Exit door on the far wall
	doorH := float32(w.FloorY / 3)
	fillRect(screen, float32(w.W)-24, float32(w.FloorY)-doorH, 20, doorH, doorColor)

	fillRect(screen, 0, float32(w.FloorY), float32(w.W), float32(w.H-w.FloorY), floorColor)

	for _, p := range snap.Platforms {
		drawTable(screen, p.Box(), w.FloorY)
	}

	for _, pos := range snap.Projectiles {
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(snap.ProjectileRadius), felafelColor, true)
	}

	drawMenahel(screen, &snap.Adversary, snap.Tick)
	drawPlayer(screen, &snap.Player)

	left, right := escape.HUD(&snap)
	g.drawText(screen, left, hudMargin, hudMargin, hudColor)
	g.drawText(screen, right, float64(w.W)-text.Advance(right, g.face)-hudMargin, hudMargin, hudColor)

	if lines := escape.Overlay(&snap); lines != nil {
		g.drawPanel(screen, w, lines)
	}
}

func fillRect(dst *ebiten.Image, x, y, w, h float32, clr color.Color) {
	vector.DrawFilledRect(dst, x, y, w, h, clr, false)
}

func fillBox(dst *ebiten.Image, b core.Box, clr color.Color) {
	fillRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), clr)
}

func drawTable(dst *ebiten.Image, b core.Box, floorY float64) {
	fillBox(dst, b, tableTopColor)
	legTop := b.Bottom()
	if legTop >= floorY {
		return
	}
	legH := float32(floorY - legTop)
	fillRect(dst, float32(b.X)+8, float32(legTop), legWidth, legH, tableLegColor)
	fillRect(dst, float32(b.Right())-8-legWidth, float32(legTop), legWidth, legH, tableLegColor)
}

func drawPlayer(dst *ebiten.Image, p *escape.PlayerPose) {
	fillBox(dst, p.Box, playerColor)

	eyeX := p.Box.X + p.Box.W*0.25
	if p.FacingRight {
		eyeX = p.Box.X + p.Box.W*0.75
	}
	vector.DrawFilledCircle(dst, float32(eyeX), float32(p.Box.Y+12), 4, eyeColor, true)
}

func drawMenahel(dst *ebiten.Image, a *escape.AdversaryPose, tick uint64) {
	body := menahelColor
	if a.Behavior == escape.Stunned {
		body = stunnedColor
	}
	fillBox(dst, a.Box, body)

	// The wander bias only moves his glance.
	eyeX := a.Box.X + (a.WanderBias+1)/2*a.Box.W
	vector.DrawFilledCircle(dst, float32(eyeX), float32(a.Box.Y+14), 5, eyeColor, true)

	if a.Behavior == escape.Stunned {
		offset := float64(tick%30) / 30 * a.Box.W
		for i := range 3 {
			x := a.Box.X + float64(i)*a.Box.W/3 + offset/3
			vector.DrawFilledCircle(dst, float32(x), float32(a.Box.Y-10), 4, starColor, true)
		}
	}
}

func (g *Game) drawText(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, g.face, op)
}

func (g *Game) drawPanel(dst *ebiten.Image, w escape.World, lines []string) {
	width := 0.0
	for _, l := range lines {
		width = max(width, text.Advance(l, g.face))
	}
	boxW := width + 40
	boxH := float64(len(lines)*lineHeight) + 30
	x := (w.W - boxW) / 2
	y := (w.H - boxH) / 2
	fillRect(dst, float32(x), float32(y), float32(boxW), float32(boxH), panelColor)

	for i, l := range lines {
		clr := color.Color(panelTextColor)
		if i == 0 {
			clr = titleColor
		}
		lx := (w.W - text.Advance(l, g.face)) / 2
		g.drawText(dst, l, lx, y+15+float64(i*lineHeight), clr)
	}
}

// Layout keeps the logical screen at world size; Ebitengine scales it to
// the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := g.game.Session().World()
	return int(w.W), int(w.H)
}

// Run opens a window and plays until it is closed.
func Run(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	g := New(store, cfg, logger)
	w := g.game.Session().World()

	ebiten.SetWindowSize(int(w.W), int(w.H))
	ebiten.SetWindowTitle(g.game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
