package mahjong

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/vovakirdan/tui-mahjong/internal/core"
)

var (
	// ErrUnknownTile is returned when an id does not name a tile on the board.
	ErrUnknownTile = errors.New("mahjong: unknown tile")
	// ErrTileRemoved is returned when a tile has already been removed.
	ErrTileRemoved = errors.New("mahjong: tile already removed")
)

// Tile is a typed piece placed on one slot. Geometry never changes after
// the board is built; Removed only ever goes from false to true.
type Tile struct {
	ID            int
	Type          string
	X, Y          int
	Z             int
	Width, Height int
	Removed       bool
}

// Rect returns the tile's footprint on the board plane.
func (t Tile) Rect() core.Rect {
	return core.NewRect(t.X, t.Y, t.Width, t.Height)
}

// Board holds every tile of the current level and the selected tile.
type Board struct {
	tiles       []Tile
	selected    int
	hasSelected bool
}

// Build generates the layout for level, deals a shuffled deck onto it and
// returns the resulting board.
func Build(level int, geom Geometry, alphabet []string, rng *rand.Rand) *Board {
	slots := geom.Generate(level)
	deck := BuildDeck(len(slots), alphabet, rng)
	return NewBoard(slots, deck)
}

// NewBoard places deck[i] on slots[i] with tile id i. Extra slots or labels
// beyond the shorter of the two are dropped.
func NewBoard(slots []Slot, deck []string) *Board {
	n := min(len(slots), len(deck))
	tiles := make([]Tile, n)
	for i := range n {
		s := slots[i]
		tiles[i] = Tile{
			ID:     i,
			Type:   deck[i],
			X:      s.X,
			Y:      s.Y,
			Z:      s.Z,
			Width:  s.Width,
			Height: s.Height,
		}
	}
	return &Board{tiles: tiles}
}

// Len returns the number of tiles, removed or not.
func (b *Board) Len() int {
	return len(b.tiles)
}

// Tile returns the tile with the given id.
func (b *Board) Tile(id int) (Tile, bool) {
	if id < 0 || id >= len(b.tiles) {
		return Tile{}, false
	}
	return b.tiles[id], true
}

// Tiles returns a copy of all tiles in id order.
func (b *Board) Tiles() []Tile {
	out := make([]Tile, len(b.tiles))
	copy(out, b.tiles)
	return out
}

// Remaining returns the number of tiles not yet removed.
func (b *Board) Remaining() int {
	n := 0
	for _, t := range b.tiles {
		if !t.Removed {
			n++
		}
	}
	return n
}

// Selected returns the selected tile id, if any.
func (b *Board) Selected() (int, bool) {
	return b.selected, b.hasSelected
}

// SetSelected selects a tile. Only live tiles can be selected.
func (b *Board) SetSelected(id int) error {
	t, ok := b.Tile(id)
	if !ok {
		return fmt.Errorf("select %d: %w", id, ErrUnknownTile)
	}
	if t.Removed {
		return fmt.Errorf("select %d: %w", id, ErrTileRemoved)
	}
	b.selected = id
	b.hasSelected = true
	return nil
}

// ClearSelection drops the current selection.
func (b *Board) ClearSelection() {
	b.selected = 0
	b.hasSelected = false
}

// MarkRemoved removes a tile from play. A selection pointing at the tile
// is cleared so the selection never refers to a removed tile.
func (b *Board) MarkRemoved(id int) error {
	if id < 0 || id >= len(b.tiles) {
		return fmt.Errorf("remove %d: %w", id, ErrUnknownTile)
	}
	if b.tiles[id].Removed {
		return fmt.Errorf("remove %d: %w", id, ErrTileRemoved)
	}
	b.tiles[id].Removed = true
	if b.hasSelected && b.selected == id {
		b.ClearSelection()
	}
	return nil
}

// RenderTile is the presentation view of a tile.
type RenderTile struct {
	ID            int
	Type          string
	X, Y          int
	Z             int
	Width, Height int
	Selected      bool
	Removed       bool
}

// RenderableTiles returns the live tiles ordered by ascending layer (ties by
// id), so painting in order stacks higher layers on top.
func (b *Board) RenderableTiles() []RenderTile {
	out := make([]RenderTile, 0, len(b.tiles))
	for _, t := range b.tiles {
		if t.Removed {
			continue
		}
		out = append(out, RenderTile{
			ID:       t.ID,
			Type:     t.Type,
			X:        t.X,
			Y:        t.Y,
			Z:        t.Z,
			Width:    t.Width,
			Height:   t.Height,
			Selected: b.hasSelected && b.selected == t.ID,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Z < out[j].Z
	})
	return out
}
