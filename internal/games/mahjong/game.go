package mahjong

import (
	"math/rand"

	"github.com/vovakirdan/tui-mahjong/internal/config"
	"github.com/vovakirdan/tui-mahjong/internal/core"
)

// GameID is the identifier used for CLI commands and result storage.
const GameID = "mahjong"

// hintDuration is how long a hint stays highlighted, in ticks.
const hintDuration = 90

// Game adapts a Session to the terminal platform: it owns the keyboard
// cursor, pointer hit testing, the help overlay and rendering.
type Game struct {
	cfg     config.MahjongConfig
	session *Session
	tick    uint64

	screenW int
	screenH int
	scrollY int

	cursor    int // Tile id under the keyboard cursor
	showHelp  bool
	hint      Pair
	hintTicks int

	levelsCleared int
}

// New creates a game using the given configuration.
func New(cfg config.MahjongConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Mahjong Solitaire"
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Reset starts a new run with the runtime seed and screen size.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.session = NewSession(SessionConfigFrom(g.cfg, rc.TickRate), rand.New(rand.NewSource(rc.Seed)))
	g.tick = 0
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.scrollY = 0
	g.showHelp = false
	g.hintTicks = 0
	g.levelsCleared = 0
	g.resetCursor()
}

// SessionConfigFrom converts YAML configuration into session settings.
// The level advance delay is converted from milliseconds to ticks.
func SessionConfigFrom(cfg config.MahjongConfig, tickRate int) SessionConfig {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	grid := func(gc config.GridConfig) Grid {
		return Grid{
			Cols:    gc.Cols,
			Rows:    gc.Rows,
			OriginX: gc.OriginX,
			OriginY: gc.OriginY,
			PitchX:  gc.PitchX,
			PitchY:  gc.PitchY,
		}
	}

	alphabet := cfg.Deck.Alphabet
	if len(alphabet) == 0 {
		alphabet = DefaultAlphabet
	}

	return SessionConfig{
		Geometry: Geometry{
			TileWidth:  cfg.Layout.TileWidth,
			TileHeight: cfg.Layout.TileHeight,
			Base:       grid(cfg.Layout.Base),
			Top:        grid(cfg.Layout.Top),
			Extra:      grid(cfg.Layout.Extra),
		},
		Rules:        Rules{TouchTolerance: cfg.Rules.TouchTolerance},
		Alphabet:     alphabet,
		AdvanceDelay: cfg.Gameplay.AdvanceDelayMS * tickRate / 1000,
	}
}

// Resize updates the screen size without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.ensureVisible()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	var events []core.Event

	if g.hintTicks > 0 {
		g.hintTicks--
	}

	// Input gathered during the pause belongs to the cleared board, so it
	// must not reach the board built on this tick.
	paused := g.session.Phase() == PhaseBetweenLevels
	if g.session.Step() {
		events = append(events, g.levelStarted())
	}

	if in.Has(core.ActionNewGame) {
		g.session.NewGame()
		g.levelsCleared = 0
		g.showHelp = false
		g.hintTicks = 0
		g.resetCursor()
		events = append(events, core.Event{Kind: core.EventNewGame, Level: 1, Tiles: g.session.Board().Len()})
		return core.StepResult{State: g.State(), Events: events}
	}

	if in.Has(core.ActionHelp) {
		g.showHelp = !g.showHelp
	}
	if g.showHelp {
		// The overlay is modal: a click or confirm dismisses it.
		if in.Has(core.ActionConfirm) || in.Click.Valid {
			g.showHelp = false
		}
		return core.StepResult{State: g.State(), Events: events}
	}

	if paused {
		return core.StepResult{State: g.State(), Events: events}
	}

	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(0, -1)
	case in.Has(core.ActionDown):
		g.moveCursor(0, 1)
	case in.Has(core.ActionLeft):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionRight):
		g.moveCursor(1, 0)
	}

	if in.Has(core.ActionHint) {
		if pair, ok := g.session.Hint(); ok {
			g.hint = pair
			g.hintTicks = hintDuration
			g.cursor = pair.A
			g.ensureVisible()
		}
	}

	if in.Has(core.ActionConfirm) {
		events = append(events, g.click(g.cursor)...)
	}

	if in.Click.Valid {
		if id, ok := g.TileAt(in.Click.X, in.Click.Y); ok {
			g.cursor = id
			events = append(events, g.click(id)...)
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// click forwards a tile click to the session and keeps the cursor on a
// live tile afterwards.
func (g *Game) click(id int) []core.Event {
	outcome := g.session.HandleTileClick(id)
	switch outcome {
	case OutcomeMatched:
		g.hintTicks = 0
		g.fixCursor()
	case OutcomeLevelCleared:
		g.hintTicks = 0
		g.levelsCleared++
		return []core.Event{{
			Kind:  core.EventLevelCleared,
			Level: g.session.Level(),
			Tiles: g.session.Board().Len(),
		}}
	}
	return nil
}

func (g *Game) levelStarted() core.Event {
	g.resetCursor()
	return core.Event{
		Kind:  core.EventLevelStarted,
		Level: g.session.Level(),
		Tiles: g.session.Board().Len(),
	}
}

// State returns the platform-visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.levelsCleared,
		Level:    g.session.Level(),
		Tiles:    g.session.Board().Remaining(),
		GameOver: g.session.Stuck(),
		Paused:   g.showHelp || g.session.Phase() == PhaseBetweenLevels,
	}
}

// resetCursor puts the cursor on the first free tile of a fresh board.
func (g *Game) resetCursor() {
	g.scrollY = 0
	g.cursor = 0
	if free := g.session.Rules().FreeTiles(g.session.Board()); len(free) > 0 {
		g.cursor = free[0]
	}
	g.ensureVisible()
}

// fixCursor moves the cursor to the nearest live tile if its tile was removed.
func (g *Game) fixCursor() {
	board := g.session.Board()
	cur, ok := board.Tile(g.cursor)
	if ok && !cur.Removed {
		return
	}

	cx, cy := cur.Rect().Center()
	best, bestDist := -1, 0
	for _, t := range board.RenderableTiles() {
		tx, ty := t.rect().Center()
		d := core.Abs(tx-cx) + core.Abs(ty-cy)
		if best < 0 || d < bestDist || (d == bestDist && t.Z >= board.tiles[best].Z) {
			best, bestDist = t.ID, d
		}
	}
	if best >= 0 {
		g.cursor = best
	}
	g.ensureVisible()
}

// moveCursor jumps to the nearest live tile in the given direction.
// Distance along the direction counts once, sideways drift counts double.
func (g *Game) moveCursor(dx, dy int) {
	board := g.session.Board()
	cur, ok := board.Tile(g.cursor)
	if !ok {
		return
	}
	cx, cy := cur.Rect().Center()

	best, bestScore := -1, 0
	for _, t := range board.RenderableTiles() {
		if t.ID == cur.ID {
			continue
		}
		tx, ty := t.rect().Center()
		along := (tx-cx)*dx + (ty-cy)*dy
		if along <= 0 {
			continue
		}
		side := core.Abs((tx-cx)*dy) + core.Abs((ty-cy)*dx)
		score := along + 2*side
		if best < 0 || score < bestScore || (score == bestScore && t.Z > board.tiles[best].Z) {
			best, bestScore = t.ID, score
		}
	}
	if best >= 0 {
		g.cursor = best
		g.ensureVisible()
	}
}

// Cursor returns the tile id under the keyboard cursor.
func (g *Game) Cursor() int {
	return g.cursor
}

// HelpVisible reports whether the help overlay is open.
func (g *Game) HelpVisible() bool {
	return g.showHelp
}

func (t RenderTile) rect() core.Rect {
	return core.NewRect(t.X, t.Y, t.Width, t.Height)
}
