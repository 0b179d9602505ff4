package mahjong

// Snapshot is a read-only view of the game used by tests and logging.
type Snapshot struct {
	Tick      uint64
	Level     int
	Phase     Phase
	Remaining int
	Types     []string // Tile types in id order
	Selected  int      // -1 when nothing is selected
	Cursor    int
	Message   string
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	board := g.session.Board()
	types := make([]string, 0, board.Len())
	for _, t := range board.tiles {
		types = append(types, t.Type)
	}

	selected := -1
	if id, ok := board.Selected(); ok {
		selected = id
	}

	return Snapshot{
		Tick:      g.tick,
		Level:     g.session.Level(),
		Phase:     g.session.Phase(),
		Remaining: board.Remaining(),
		Types:     types,
		Selected:  selected,
		Cursor:    g.cursor,
		Message:   g.session.Message(),
	}
}
