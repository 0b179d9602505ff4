// Package mahjong implements Mahjong solitaire: a layered tile layout, a
// paired shuffled deck, the free-tile rule and the selection state machine.
package mahjong

import "github.com/vovakirdan/tui-mahjong/internal/core"

// Slot is a layout position: a rectangle on the board plane plus a layer.
type Slot struct {
	X, Y          int
	Z             int
	Width, Height int
}

// Rect returns the slot's footprint on the board plane.
func (s Slot) Rect() core.Rect {
	return core.NewRect(s.X, s.Y, s.Width, s.Height)
}

// Grid is a block of slots laid out row-major on a single pitch.
type Grid struct {
	Cols, Rows int
	OriginX    int
	OriginY    int
	PitchX     int
	PitchY     int
}

// Geometry describes the board layout in board units.
type Geometry struct {
	TileWidth  int
	TileHeight int
	Base       Grid // Layer 0
	Top        Grid // Layer 1
	Extra      Grid // One row per level beyond the first; Rows is ignored
}

// Base layout sizes.
const (
	BaseSlotCount  = 36
	ExtraSlotCount = 4
)

// DefaultGeometry is the classic layout: a 7x4 floor, a 4x2 second layer
// centered over it, and a row of four added for each level past the first.
var DefaultGeometry = Geometry{
	TileWidth:  80,
	TileHeight: 100,
	Base:       Grid{Cols: 7, Rows: 4, OriginX: 50, OriginY: 50, PitchX: 100, PitchY: 110},
	Top:        Grid{Cols: 4, Rows: 2, OriginX: 200, OriginY: 150, PitchX: 100, PitchY: 110},
	Extra:      Grid{Cols: 4, Rows: 1, OriginX: 150, OriginY: 300, PitchX: 90, PitchY: 110},
}

// Generate returns the slots for a level using DefaultGeometry.
func Generate(level int) []Slot {
	return DefaultGeometry.Generate(level)
}

// SlotCount returns how many slots Generate produces for a level.
func (g Geometry) SlotCount(level int) int {
	if level < 1 {
		level = 1
	}
	return g.Base.Cols*g.Base.Rows + g.Top.Cols*g.Top.Rows + g.Extra.Cols*(level-1)
}

// Generate returns the ordered slots for a level: layer 0, then layer 1,
// then one extra layer per level beyond the first, each row-major.
// Levels below 1 are treated as level 1.
func (g Geometry) Generate(level int) []Slot {
	if level < 1 {
		level = 1
	}

	slots := make([]Slot, 0, g.SlotCount(level))
	slots = g.appendGrid(slots, g.Base, g.Base.Rows, 0, 0)
	slots = g.appendGrid(slots, g.Top, g.Top.Rows, 0, 1)

	for extra := 0; extra < level-1; extra++ {
		slots = g.appendGrid(slots, g.Extra, 1, extra*g.Extra.PitchY, 2+extra)
	}
	return slots
}

func (g Geometry) appendGrid(slots []Slot, grid Grid, rows, offsetY, z int) []Slot {
	for row := 0; row < rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			slots = append(slots, Slot{
				X:      grid.OriginX + col*grid.PitchX,
				Y:      grid.OriginY + row*grid.PitchY + offsetY,
				Z:      z,
				Width:  g.TileWidth,
				Height: g.TileHeight,
			})
		}
	}
	return slots
}
