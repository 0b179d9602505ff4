package mahjong

import (
	"errors"
	"math/rand"
	"testing"
)

func TestBuildBoard(t *testing.T) {
	b := Build(2, DefaultGeometry, DefaultAlphabet, rand.New(rand.NewSource(3)))

	if b.Len() != 40 {
		t.Fatalf("Len() = %d, want 40", b.Len())
	}
	if b.Remaining() != 40 {
		t.Errorf("Remaining() = %d, want 40", b.Remaining())
	}
	if _, ok := b.Selected(); ok {
		t.Error("new board has a selection")
	}

	slots := Generate(2)
	for i, tile := range b.Tiles() {
		if tile.ID != i {
			t.Errorf("tile %d has id %d", i, tile.ID)
		}
		s := slots[i]
		if tile.X != s.X || tile.Y != s.Y || tile.Z != s.Z {
			t.Errorf("tile %d at (%d,%d,%d), want slot (%d,%d,%d)", i, tile.X, tile.Y, tile.Z, s.X, s.Y, s.Z)
		}
	}
}

func TestNewBoardTruncates(t *testing.T) {
	b := NewBoard(Generate(1), []string{"a", "a", "b", "b"})
	if b.Len() != 4 {
		t.Errorf("Len() = %d, want 4", b.Len())
	}
}

func TestMarkRemoved(t *testing.T) {
	b := NewBoard(Generate(1), []string{"a", "a", "b", "b"})

	if err := b.MarkRemoved(1); err != nil {
		t.Fatalf("MarkRemoved(1) error = %v", err)
	}
	if b.Remaining() != 3 {
		t.Errorf("Remaining() = %d, want 3", b.Remaining())
	}

	if err := b.MarkRemoved(1); !errors.Is(err, ErrTileRemoved) {
		t.Errorf("second MarkRemoved(1) error = %v, want ErrTileRemoved", err)
	}
	if err := b.MarkRemoved(99); !errors.Is(err, ErrUnknownTile) {
		t.Errorf("MarkRemoved(99) error = %v, want ErrUnknownTile", err)
	}
	if err := b.MarkRemoved(-1); !errors.Is(err, ErrUnknownTile) {
		t.Errorf("MarkRemoved(-1) error = %v, want ErrUnknownTile", err)
	}
}

func TestSelection(t *testing.T) {
	b := NewBoard(Generate(1), []string{"a", "a", "b", "b"})

	if err := b.SetSelected(2); err != nil {
		t.Fatalf("SetSelected(2) error = %v", err)
	}
	if id, ok := b.Selected(); !ok || id != 2 {
		t.Errorf("Selected() = %d, %v, want 2, true", id, ok)
	}

	// Removing the selected tile clears the selection.
	if err := b.MarkRemoved(2); err != nil {
		t.Fatal(err)
	}
	if _, ok := b.Selected(); ok {
		t.Error("selection survived removal of the selected tile")
	}

	if err := b.SetSelected(2); !errors.Is(err, ErrTileRemoved) {
		t.Errorf("SetSelected(removed) error = %v, want ErrTileRemoved", err)
	}
	if err := b.SetSelected(10); !errors.Is(err, ErrUnknownTile) {
		t.Errorf("SetSelected(10) error = %v, want ErrUnknownTile", err)
	}

	if err := b.SetSelected(0); err != nil {
		t.Fatal(err)
	}
	if err := b.MarkRemoved(3); err != nil {
		t.Fatal(err)
	}
	if id, ok := b.Selected(); !ok || id != 0 {
		t.Errorf("removing another tile changed selection to %d, %v", id, ok)
	}

	b.ClearSelection()
	if _, ok := b.Selected(); ok {
		t.Error("ClearSelection left a selection")
	}
}

func TestRenderableTiles(t *testing.T) {
	slots := []Slot{
		{X: 0, Y: 0, Z: 2, Width: 80, Height: 100},
		{X: 100, Y: 0, Z: 0, Width: 80, Height: 100},
		{X: 200, Y: 0, Z: 1, Width: 80, Height: 100},
		{X: 300, Y: 0, Z: 0, Width: 80, Height: 100},
	}
	b := NewBoard(slots, []string{"a", "b", "a", "b"})
	if err := b.MarkRemoved(3); err != nil {
		t.Fatal(err)
	}
	if err := b.SetSelected(2); err != nil {
		t.Fatal(err)
	}

	tiles := b.RenderableTiles()
	wantIDs := []int{1, 2, 0}
	if len(tiles) != len(wantIDs) {
		t.Fatalf("got %d tiles, want %d", len(tiles), len(wantIDs))
	}
	for i, id := range wantIDs {
		if tiles[i].ID != id {
			t.Errorf("tiles[%d].ID = %d, want %d", i, tiles[i].ID, id)
		}
		if tiles[i].Removed {
			t.Errorf("tile %d reported as removed", tiles[i].ID)
		}
		if tiles[i].Selected != (id == 2) {
			t.Errorf("tile %d Selected = %v", id, tiles[i].Selected)
		}
	}
}

func TestRenderableTilesStableWithinLayer(t *testing.T) {
	b := Build(1, DefaultGeometry, DefaultAlphabet, rand.New(rand.NewSource(5)))
	tiles := b.RenderableTiles()
	for i := 1; i < len(tiles); i++ {
		prev, cur := tiles[i-1], tiles[i]
		if cur.Z < prev.Z || (cur.Z == prev.Z && cur.ID < prev.ID) {
			t.Fatalf("tiles out of order at %d: %+v after %+v", i, cur, prev)
		}
	}
}
