package armorcrush

import (
	"fmt"

	"github.com/L0weN/ArmorCrush/internal/core"
	"github.com/L0weN/ArmorCrush/internal/match3"
)

const (
	cellCols   = 3 // terminal columns per board cell; one row per cell
	hudRows    = 2
	footerRows = 2
)

// layout positions the board cells centered below the HUD.
func (g *Game) layout() {
	w := g.board.Width() * cellCols
	h := g.board.Height()
	boxW, boxH := w+2, h+2

	g.tooSmall = g.screenW < boxW || g.screenH < boxH+hudRows+footerRows
	left := core.Max(0, (g.screenW-boxW)/2)
	g.cells = core.NewRect(left+1, hudRows+1, w, h)
}

// Resize relayouts the board for a new screen size, keeping the game.
func (g *Game) Resize(width, height int) {
	g.screenW, g.screenH = width, height
	if g.board != nil {
		g.layout()
	}
}

// cellScreen returns the left column and row where cell c is drawn.
// Board row 0 is the bottom screen row of the board.
func (g *Game) cellScreen(c match3.Coord) (int, int) {
	return g.cells.X + c.X*cellCols, g.cells.Y + (g.board.Height() - 1 - c.Y)
}

// screenToWorld maps a terminal cell to the world point under it.
// Points outside the board map to off-board world coordinates.
func (g *Game) screenToWorld(sx, sy int) match3.Vec2 {
	size := g.board.CellSize()
	origin := g.board.Origin()
	col := float64(sx-g.cells.X) + 0.5
	row := float64(g.cells.Bottom()-1-sy) + 0.5
	return match3.V(origin.X+col/cellCols*size, origin.Y+row*size)
}

// Render draws the board, HUD and footer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	dst.DrawBox(g.cells.Inset(-1), core.ColorGray)
	g.renderBoard(dst)
	if g.debug {
		g.renderDebug(dst)
	}
	g.renderFooter(dst)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", g.cells.W+2, g.cells.H+2+hudRows+footerRows))
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, fmt.Sprintf("%s %dx%d", g.variant.Title, g.board.Width(), g.board.Height()))

	left := g.cells.X - 1
	dst.DrawText(left, 1, fmt.Sprintf("Turn %d", g.turns))

	status := g.status
	if g.paused {
		status = "PAUSED"
	}
	dst.DrawTextColored(g.cells.Right()+1-len([]rune(status)), 1, status, core.ColorBrightWhite)
}

func (g *Game) renderBoard(dst *core.Screen) {
	for y := 0; y < g.display.Height; y++ {
		for x := 0; x < g.display.Width; x++ {
			c := match3.C(x, y)
			sx, sy := g.cellScreen(c)

			slot := g.display.At(c)
			if !slot.Present {
				dst.SetColored(sx+1, sy, '·', core.ColorGray)
			} else if t, ok := g.tokens.Type(slot.Value.Kind); ok {
				dst.SetColored(sx+1, sy, t.Glyph, t.Color)
			} else {
				dst.Set(sx+1, sy, '?')
			}

			switch {
			case g.marked && c == g.mark:
				dst.SetColored(sx, sy, '<', core.ColorBrightYellow)
				dst.SetColored(sx+2, sy, '>', core.ColorBrightYellow)
			case c == g.cursor:
				dst.SetColored(sx, sy, '[', core.ColorBrightWhite)
				dst.SetColored(sx+2, sy, ']', core.ColorBrightWhite)
			}
		}
	}
}

// renderDebug labels columns on the top border and rows on the left
// border, and prints the cursor's world position.
func (g *Game) renderDebug(dst *core.Screen) {
	for x := 0; x < g.board.Width(); x++ {
		sx, _ := g.cellScreen(match3.C(x, 0))
		dst.SetColored(sx+1, g.cells.Y-1, rune('0'+x%10), core.ColorCyan)
	}
	for y := 0; y < g.board.Height(); y++ {
		_, sy := g.cellScreen(match3.C(0, y))
		dst.SetColored(g.cells.X-1, sy, rune('0'+y%10), core.ColorCyan)
	}

	center := g.board.GridToWorldCenter(g.cursor)
	info := fmt.Sprintf("cursor %s world (%.1f,%.1f) seed %d", g.cursor, center.X, center.Y, g.seed)
	dst.DrawTextColored(g.cells.X-1, g.cells.Bottom()+1, info, core.ColorCyan)
}

func (g *Game) renderFooter(dst *core.Screen) {
	if g.debug {
		return
	}
	dst.DrawTextCentered(g.cells.Bottom()+1, "arrows move  space pick  x cancel  r new  p pause  q quit")
}
