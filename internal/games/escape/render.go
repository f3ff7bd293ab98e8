package escape

import (
	"fmt"

	"github.com/vovakirdan/escape-arcade/internal/core"
)

// Visual characters for rendering
const (
	TableTopChar  = '▀'
	TableLegChar  = '│'
	FloorChar     = '▓'
	PlayerChar    = 'T'
	AdversaryChar = 'M'
	EyeChar       = '•'
	StunChar      = '*'
	FelafelChar   = 'o'
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// viewport maps world units onto screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(dst *core.Screen, w World) viewport {
	return viewport{
		sx: float64(dst.Width()) / w.W,
		sy: float64(dst.Height()-hudRows) / w.H,
	}
}

func (v viewport) col(x float64) int {
	return int(x * v.sx)
}

func (v viewport) row(y float64) int {
	return hudRows + int(y*v.sy)
}

// rect maps a world box to cells, never smaller than one cell.
func (v viewport) rect(b core.Box) core.Rect {
	x0, y0 := v.col(b.X), v.row(b.Y)
	x1, y1 := v.col(b.Right()), v.row(b.Bottom())
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	snap := g.session.Snapshot()
	RenderSnapshot(dst, &snap)
}

// RenderSnapshot draws a snapshot scaled to the screen.
func RenderSnapshot(dst *core.Screen, snap *Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() <= hudRows {
		return
	}
	v := newViewport(dst, snap.World)
	floorRow := v.row(snap.World.FloorY)

	dst.SetPen(core.ColorDarkBrown)
	for y := floorRow; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), FloorChar)
	}

	for _, p := range snap.Platforms {
		drawTable(dst, v.rect(p.Box()), floorRow)
	}

	dst.SetPen(core.ColorOrange)
	for _, pos := range snap.Projectiles {
		dst.Set(v.col(pos.X), v.row(pos.Y), FelafelChar)
	}

	drawAdversary(dst, v.rect(snap.Adversary.Box), &snap.Adversary, snap.Tick)

	dst.SetPen(core.ColorBlue)
	dst.DrawRect(v.rect(snap.Player.Box), PlayerChar)

	drawHUD(dst, snap)

	if lines := Overlay(snap); lines != nil {
		drawPanel(dst, overlayColor(snap.Phase), lines...)
	}
}

// Overlay returns the centered message block for the snapshot, title
// first. It is nil during unpaused play.
func Overlay(snap *Snapshot) []string {
	switch snap.Phase {
	case PhaseIntro:
		return []string{
			"ESCAPE THE MENAHEL",
			"",
			"Reach the far door before he catches you.",
			"A/D or arrows move   W jumps twice",
			"Space throws felafel and runs",
			"",
			"Press Enter to start",
		}
	case PhaseGameOver:
		return []string{
			snap.Reason,
			"",
			fmt.Sprintf("Level %d   Score %d", snap.Level, snap.Score),
			"",
			"Press R to restart",
		}
	case PhasePlaying:
		if snap.Paused {
			return []string{"PAUSED", "Press P to resume"}
		}
	}
	return nil
}

func overlayColor(p Phase) core.Color {
	switch p {
	case PhaseIntro:
		return core.ColorYellow
	case PhaseGameOver:
		return core.ColorRed
	default:
		return core.ColorWhite
	}
}

// drawTable draws a lunch table: a top bar with two legs down to the floor.
func drawTable(dst *core.Screen, r core.Rect, floorRow int) {
	dst.SetPen(core.ColorBrown)
	dst.DrawHLine(r.X, r.Y, r.W, TableTopChar)

	legLen := floorRow - r.Y - 1
	if legLen <= 0 {
		return
	}
	dst.SetPen(core.ColorGray)
	dst.DrawVLine(r.X+1, r.Y+1, legLen, TableLegChar)
	if r.W > 3 {
		dst.DrawVLine(r.Right()-2, r.Y+1, legLen, TableLegChar)
	}
}

func drawAdversary(dst *core.Screen, r core.Rect, a *AdversaryPose, tick uint64) {
	dst.SetPen(core.ColorRed)
	dst.DrawRect(r, AdversaryChar)

	// The wander bias only moves his glance.
	eye := r.X + int((a.WanderBias+1)/2*float64(r.W-1)+0.5)
	dst.SetPen(core.ColorWhite)
	dst.Set(eye, r.Y, EyeChar)

	if a.Behavior == Stunned {
		dst.SetPen(core.ColorYellow)
		phase := int(tick/8) % 2
		for x := r.X - 1; x <= r.Right(); x++ {
			if (x+phase)%2 == 0 {
				dst.Set(x, r.Y-1, StunChar)
			}
		}
	}
}

// HUD returns the status line halves: progress on the left, the throw or
// stun state on the right.
func HUD(snap *Snapshot) (left, right string) {
	left = fmt.Sprintf("LEVEL %d  SCORE %d  DISTANCE %d", snap.Level, snap.Score, int(snap.Distance()))

	switch {
	case snap.Adversary.Behavior == Stunned:
		right = fmt.Sprintf("STUNNED %d", snap.Adversary.StunTicks)
	case snap.Player.CanFire:
		right = "FELAFEL READY"
	default:
		right = "RELOADING"
	}
	return left, right
}

func drawHUD(dst *core.Screen, snap *Snapshot) {
	left, right := HUD(snap)

	dst.SetPen(core.ColorWhite)
	dst.DrawText(1, 0, left)

	if snap.Adversary.Behavior == Stunned {
		dst.SetPen(core.ColorYellow)
	}
	dst.DrawText(dst.Width()-len([]rune(right))-1, 0, right)
}

// drawPanel draws a boxed, centered block of lines.
func drawPanel(dst *core.Screen, titleColor core.Color, lines ...string) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	boxW := w + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.SetPen(core.ColorDefault)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, l := range lines {
		if i == 0 {
			dst.SetPen(titleColor)
		} else {
			dst.SetPen(core.ColorWhite)
		}
		x := box.X + (boxW-len([]rune(l)))/2
		dst.DrawText(x, box.Y+1+i, l)
	}
}
