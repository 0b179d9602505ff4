package mahjong

import (
	"reflect"
	"testing"
)

func TestGenerateSlotCount(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{level: 1, want: 36},
		{level: 2, want: 40},
		{level: 3, want: 44},
		{level: 10, want: 72},
		{level: 0, want: 36},
		{level: -3, want: 36},
	}

	for _, tt := range tests {
		slots := Generate(tt.level)
		if len(slots) != tt.want {
			t.Errorf("Generate(%d) returned %d slots, want %d", tt.level, len(slots), tt.want)
		}
		if len(slots)%2 != 0 {
			t.Errorf("Generate(%d) returned odd slot count %d", tt.level, len(slots))
		}
		if got := DefaultGeometry.SlotCount(tt.level); got != tt.want {
			t.Errorf("SlotCount(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestGenerateParityAllLevels(t *testing.T) {
	for level := 1; level <= 50; level++ {
		n := len(Generate(level))
		if n != BaseSlotCount+ExtraSlotCount*(level-1) || n%2 != 0 {
			t.Errorf("level %d: %d slots", level, n)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for level := 1; level <= 5; level++ {
		a := Generate(level)
		b := Generate(level)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("Generate(%d) is not deterministic", level)
		}
	}
}

func TestGenerateOrdering(t *testing.T) {
	slots := Generate(3)

	tests := []struct {
		name string
		idx  int
		want Slot
	}{
		{"first base", 0, Slot{X: 50, Y: 50, Z: 0, Width: 80, Height: 100}},
		{"base row 0 end", 6, Slot{X: 650, Y: 50, Z: 0, Width: 80, Height: 100}},
		{"base row 1 start", 7, Slot{X: 50, Y: 160, Z: 0, Width: 80, Height: 100}},
		{"last base", 27, Slot{X: 650, Y: 380, Z: 0, Width: 80, Height: 100}},
		{"first top", 28, Slot{X: 200, Y: 150, Z: 1, Width: 80, Height: 100}},
		{"last top", 35, Slot{X: 500, Y: 260, Z: 1, Width: 80, Height: 100}},
		{"first extra", 36, Slot{X: 150, Y: 300, Z: 2, Width: 80, Height: 100}},
		{"extra row 1 end", 39, Slot{X: 420, Y: 300, Z: 2, Width: 80, Height: 100}},
		{"extra row 2 start", 40, Slot{X: 150, Y: 410, Z: 3, Width: 80, Height: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if slots[tt.idx] != tt.want {
				t.Errorf("slot %d = %+v, want %+v", tt.idx, slots[tt.idx], tt.want)
			}
		})
	}
}

func TestGenerateLayers(t *testing.T) {
	slots := Generate(4)
	counts := map[int]int{}
	for _, s := range slots {
		counts[s.Z]++
	}

	want := map[int]int{0: 28, 1: 8, 2: 4, 3: 4, 4: 4}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("layer counts = %v, want %v", counts, want)
	}

	// Slots are emitted layer by layer.
	for i := 1; i < len(slots); i++ {
		if slots[i].Z < slots[i-1].Z {
			t.Fatalf("slot %d has layer %d after layer %d", i, slots[i].Z, slots[i-1].Z)
		}
	}
}
