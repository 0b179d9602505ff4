package mahjong

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-mahjong/internal/core"
)

// Board units are projected onto terminal cells at a fixed scale.
const (
	unitsPerCol = 10
	unitsPerRow = 22
	originX     = 40 // Board unit mapped to column 0
	originY     = 40 // Board unit mapped to row 0

	hudRows    = 2 // Title and status above the board
	footerRows = 2 // Message and controls below it

	minScreenW = 40
	minScreenH = 14
)

// cellRect projects a board rectangle to screen cells, including the
// horizontal centering offset and the vertical scroll.
func (g *Game) cellRect(x, y, w, h int) core.Rect {
	return core.Rect{
		X: (x-originX)/unitsPerCol + g.offsetX(),
		Y: (y-originY)/unitsPerRow + hudRows - g.scrollY,
		W: w / unitsPerCol,
		H: h / unitsPerRow,
	}
}

// boardCols returns the width of the current board in cells.
func (g *Game) boardCols() int {
	cols := 0
	for _, t := range g.session.Board().tiles {
		cols = max(cols, (t.X+t.Width-originX)/unitsPerCol)
	}
	return cols
}

func (g *Game) offsetX() int {
	return max(0, (g.screenW-g.boardCols())/2)
}

func (g *Game) viewRows() int {
	return g.screenH - hudRows - footerRows
}

// ensureVisible scrolls so the cursor tile is fully inside the board view.
func (g *Game) ensureVisible() {
	t, ok := g.session.Board().Tile(g.cursor)
	if !ok || g.viewRows() <= 0 {
		return
	}
	top := (t.Y-originY)/unitsPerRow + hudRows
	bottom := top + t.Height/unitsPerRow

	g.scrollY = max(0, core.Clamp(g.scrollY, bottom-hudRows-g.viewRows(), top-hudRows))
}

// TileAt returns the topmost live tile drawn at the given screen cell.
func (g *Game) TileAt(x, y int) (int, bool) {
	if y < hudRows || y >= hudRows+g.viewRows() {
		return 0, false
	}
	tiles := g.session.RenderableTiles()
	for i := len(tiles) - 1; i >= 0; i-- {
		t := tiles[i]
		if g.cellRect(t.X, t.Y, t.Width, t.Height).Contains(x, y) {
			return t.ID, true
		}
	}
	return 0, false
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenW < minScreenW || g.screenH < minScreenH {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderFooter(dst)
	g.renderOverlays(dst)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderHUD(dst *core.Screen) {
	board := g.session.Board()
	pairs := len(g.session.Rules().AvailablePairs(board))

	dst.DrawTextCentered(0, "M A H J O N G")
	info := fmt.Sprintf("Level %d   Tiles %d/%d   Moves %d", g.session.Level(), board.Remaining(), board.Len(), pairs)
	dst.DrawTextColor(max(0, (g.screenW-len(info))/2), 1, info, core.ColorGray)
}

func (g *Game) renderBoard(dst *core.Screen) {
	board := g.session.Board()
	rules := g.session.Rules()
	hinting := g.hintTicks > 0

	for _, t := range g.session.RenderableTiles() {
		r := g.cellRect(t.X, t.Y, t.Width, t.Height)
		if r.Bottom() <= hudRows || r.Y >= hudRows+g.viewRows() {
			continue
		}

		tile, _ := board.Tile(t.ID)
		border := core.ColorGray
		switch {
		case t.Selected:
			border = core.ColorBrightYellow
		case t.ID == g.cursor:
			border = core.ColorBrightCyan
		case hinting && (t.ID == g.hint.A || t.ID == g.hint.B):
			border = core.ColorBrightGreen
		case rules.IsFree(tile, board):
			border = core.ColorWhite
		}

		g.drawTile(dst, r, t, border)
	}
}

// drawTile paints one tile box clipped to the board view.
func (g *Game) drawTile(dst *core.Screen, r core.Rect, t RenderTile, border core.Color) {
	scratch := core.NewScreen(r.W, r.H)
	scratch.DrawBox(core.NewRect(0, 0, r.W, r.H), border)

	label := t.Type
	lx := (r.W - len([]rune(label))) / 2
	scratch.DrawTextColor(lx, (r.H-1)/2, label, suitColor(label))
	if t.Z > 0 && r.W > 2 && r.H > 2 {
		scratch.SetColor(r.W-2, r.H-2, rune('0'+t.Z%10), core.ColorGray)
	}

	for y := 0; y < r.H; y++ {
		sy := r.Y + y
		if sy < hudRows || sy >= hudRows+g.viewRows() {
			continue
		}
		for x := 0; x < r.W; x++ {
			c := scratch.GetCell(x, y)
			dst.SetColor(r.X+x, sy, c.Rune, c.Color)
		}
	}
}

// suitColor picks a color from the label's suit letter.
func suitColor(label string) core.Color {
	switch {
	case strings.HasSuffix(label, "m"):
		return core.ColorBrightRed
	case strings.HasSuffix(label, "s"):
		return core.ColorBrightGreen
	case strings.HasSuffix(label, "p"):
		return core.ColorBrightCyan
	default:
		return core.ColorBrightWhite
	}
}

func (g *Game) renderFooter(dst *core.Screen) {
	msg := g.session.Message()
	if msg == "" && g.hintTicks > 0 {
		msg = "Hint: the highlighted tiles match."
	}
	dst.DrawTextColor(1, g.screenH-2, msg, core.ColorYellow)
	dst.DrawTextColor(1, g.screenH-1, g.Controls(), core.ColorGray)
}

func (g *Game) renderOverlays(dst *core.Screen) {
	cx := g.screenW / 2
	cy := hudRows + g.viewRows()/2

	if g.showHelp {
		g.drawOverlay(dst, cx, cy,
			"HOW TO PLAY",
			"",
			"Remove all tiles by matching pairs.",
			"Pick two free tiles with the same face.",
			"A tile is free when nothing lies on top",
			"of it and its left or right side is open.",
			"",
			"Arrows/WASD move  Enter/Space/click pick",
			"T hint  N new game  ? close  Q quit",
		)
		return
	}

	if g.session.Phase() == PhaseBetweenLevels {
		g.drawOverlay(dst, cx, cy,
			fmt.Sprintf("LEVEL %d CLEARED", g.session.Level()),
			fmt.Sprintf("Next: Level %d", g.session.Level()+1),
		)
		return
	}

	if g.session.Stuck() {
		g.drawOverlay(dst, cx, cy, "NO MOVES LEFT", "Press N for a new game")
	}
}

// drawOverlay draws a centered boxed text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows: Move | Enter/Click: Pick | T: Hint | N: New | ?: Help | Q: Quit"
}
