package mahjong

import (
	"math/rand"
	"reflect"
	"testing"
)

func levelBoard(level int) *Board {
	return Build(level, DefaultGeometry, DefaultAlphabet, rand.New(rand.NewSource(1)))
}

func TestIsFreeLevelOne(t *testing.T) {
	b := levelBoard(1)

	// Base tiles in rows 1-2, columns 1-5 sit under the second layer.
	covered := map[int]bool{}
	for _, row := range []int{1, 2} {
		for col := 1; col <= 5; col++ {
			covered[row*7+col] = true
		}
	}

	for _, tile := range b.Tiles() {
		want := !covered[tile.ID]
		if got := IsFree(tile, b); got != want {
			t.Errorf("IsFree(tile %d at z=%d) = %v, want %v", tile.ID, tile.Z, got, want)
		}
	}
}

func TestIsFreeAfterUncovering(t *testing.T) {
	b := levelBoard(1)
	tile8, _ := b.Tile(8)
	if IsFree(tile8, b) {
		t.Fatal("tile 8 should start covered")
	}

	// Tile 28 is the only second-layer tile over tile 8.
	if err := b.MarkRemoved(28); err != nil {
		t.Fatal(err)
	}
	if !IsFree(tile8, b) {
		t.Error("tile 8 should be free once tile 28 is gone")
	}

	tile9, _ := b.Tile(9)
	if IsFree(tile9, b) {
		t.Error("tile 9 is still under tile 29")
	}
}

func TestIsFreeExtraRowTouching(t *testing.T) {
	b := levelBoard(2)

	// The extra row is spaced 10 apart, so inner tiles touch on both sides.
	tests := []struct {
		id   int
		want bool
	}{
		{36, true},
		{37, false},
		{38, false},
		{39, true},
	}
	for _, tt := range tests {
		tile, _ := b.Tile(tt.id)
		if got := IsFree(tile, b); got != tt.want {
			t.Errorf("IsFree(tile %d) = %v, want %v", tt.id, got, tt.want)
		}
	}

	// Top-layer tiles in row 1 are now covered by the extra row.
	tile32, _ := b.Tile(32)
	if IsFree(tile32, b) {
		t.Error("tile 32 should be covered by the extra row")
	}
}

func TestIsFreeRemovedTile(t *testing.T) {
	b := levelBoard(1)
	if err := b.MarkRemoved(0); err != nil {
		t.Fatal(err)
	}
	tile, _ := b.Tile(0)
	if IsFree(tile, b) {
		t.Error("removed tile reported free")
	}
}

func row(z int, xs ...int) []Slot {
	slots := make([]Slot, 0, len(xs))
	for _, x := range xs {
		slots = append(slots, Slot{X: x, Y: 0, Z: z, Width: 80, Height: 100})
	}
	return slots
}

func TestIsFreeTolerance(t *testing.T) {
	tests := []struct {
		name  string
		slots []Slot
		want  bool
	}{
		{
			name:  "both neighbours flush",
			slots: row(0, 100, 20, 180),
			want:  false,
		},
		{
			name:  "both neighbours within tolerance",
			slots: row(0, 100, 10, 190),
			want:  false,
		},
		{
			name:  "left gap past tolerance",
			slots: row(0, 100, 9, 180),
			want:  true,
		},
		{
			name:  "right gap past tolerance",
			slots: row(0, 100, 20, 191),
			want:  true,
		},
		{
			name:  "only left neighbour",
			slots: row(0, 100, 20),
			want:  true,
		},
		{
			name:  "neighbours on another layer",
			slots: append(row(0, 100), row(1, 1000, 1100)...),
			want:  true,
		},
		{
			name: "neighbour offset vertically without overlap",
			slots: append(row(0, 100, 20),
				Slot{X: 180, Y: 100, Z: 0, Width: 80, Height: 100}),
			want: true,
		},
		{
			name: "neighbour offset vertically with overlap",
			slots: append(row(0, 100, 20),
				Slot{X: 180, Y: 99, Z: 0, Width: 80, Height: 100}),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(tt.slots, make([]string, len(tt.slots)))
			tile, _ := b.Tile(0)
			if got := IsFree(tile, b); got != tt.want {
				t.Errorf("IsFree = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsFreeOcclusionDominates(t *testing.T) {
	slots := []Slot{
		{X: 100, Y: 0, Z: 0, Width: 80, Height: 100},
		{X: 170, Y: 90, Z: 1, Width: 80, Height: 100}, // Corner overlap
	}
	b := NewBoard(slots, []string{"a", "a"})
	tile, _ := b.Tile(0)
	if IsFree(tile, b) {
		t.Error("tile with open sides but a tile above should not be free")
	}

	// Edge contact alone does not occlude.
	slots[1] = Slot{X: 180, Y: 0, Z: 1, Width: 80, Height: 100}
	b = NewBoard(slots, []string{"a", "a"})
	tile, _ = b.Tile(0)
	if !IsFree(tile, b) {
		t.Error("tile touching a higher tile only at an edge should be free")
	}
}

func TestRulesCustomTolerance(t *testing.T) {
	b := NewBoard(row(0, 100, 0, 200), make([]string, 3))
	tile, _ := b.Tile(0)

	if !(Rules{TouchTolerance: 10}).IsFree(tile, b) {
		t.Error("20-unit gaps should not block with tolerance 10")
	}
	if (Rules{TouchTolerance: 20}).IsFree(tile, b) {
		t.Error("20-unit gaps should block with tolerance 20")
	}
}

func TestAvailablePairs(t *testing.T) {
	slots := append(row(0, 0, 200, 400, 600, 800), Slot{X: 0, Y: 0, Z: 1, Width: 80, Height: 100})
	b := NewBoard(slots, []string{"a", "b", "a", "b", "a", "c"})

	// Tile 0 is covered by tile 5, so only tiles 2 and 4 form an "a" pair.
	got := DefaultRules.AvailablePairs(b)
	want := []Pair{{A: 1, B: 3}, {A: 2, B: 4}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AvailablePairs = %v, want %v", got, want)
	}

	if err := b.MarkRemoved(5); err != nil {
		t.Fatal(err)
	}
	got = AvailablePairs(b)
	want = []Pair{{A: 0, B: 2}, {A: 0, B: 4}, {A: 1, B: 3}, {A: 2, B: 4}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AvailablePairs after uncovering = %v, want %v", got, want)
	}
}

func TestFreeTiles(t *testing.T) {
	b := levelBoard(1)
	free := FreeTiles(b)
	if len(free) != 26 {
		t.Errorf("FreeTiles returned %d ids, want 26", len(free))
	}
	for i := 1; i < len(free); i++ {
		if free[i] <= free[i-1] {
			t.Fatalf("FreeTiles not in id order: %v", free)
		}
	}
}
