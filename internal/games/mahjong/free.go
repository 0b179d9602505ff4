package mahjong

import "sort"

// TouchTolerance is how far apart two same-layer edges may be and still
// count as touching.
const TouchTolerance = 10

// Rules holds the tunable parts of the free-tile rule.
type Rules struct {
	TouchTolerance int
}

// DefaultRules uses TouchTolerance.
var DefaultRules = Rules{TouchTolerance: TouchTolerance}

// IsFree reports whether t can be selected on b under DefaultRules.
func IsFree(t Tile, b *Board) bool {
	return DefaultRules.IsFree(t, b)
}

// IsFree reports whether t can be selected: it is not removed, no live tile
// on a higher layer overlaps it, and at least one of its left or right
// sides is open on its own layer.
func (r Rules) IsFree(t Tile, b *Board) bool {
	if t.Removed {
		return false
	}
	if r.occluded(t, b) {
		return false
	}

	leftBlocked, rightBlocked := false, false
	for _, other := range b.tiles {
		if other.Removed || other.Z != t.Z || other.ID == t.ID {
			continue
		}
		if r.touchingLeft(t, other) {
			leftBlocked = true
		}
		if r.touchingRight(t, other) {
			rightBlocked = true
		}
		if leftBlocked && rightBlocked {
			return false
		}
	}
	return true
}

func (r Rules) occluded(t Tile, b *Board) bool {
	rect := t.Rect()
	for _, other := range b.tiles {
		if other.Removed || other.Z <= t.Z {
			continue
		}
		if rect.Intersects(other.Rect()) {
			return true
		}
	}
	return false
}

// touchingLeft reports whether other's right edge sits against t's left edge.
func (r Rules) touchingLeft(t, other Tile) bool {
	edge := other.X + other.Width
	if edge < t.X-r.TouchTolerance || edge > t.X+r.TouchTolerance {
		return false
	}
	return t.Rect().OverlapsY(other.Rect())
}

// touchingRight reports whether other's left edge sits against t's right edge.
func (r Rules) touchingRight(t, other Tile) bool {
	right := t.X + t.Width
	if other.X < right-r.TouchTolerance || other.X > right+r.TouchTolerance {
		return false
	}
	return t.Rect().OverlapsY(other.Rect())
}

// FreeTiles returns the free tile ids on b under DefaultRules.
func FreeTiles(b *Board) []int {
	return DefaultRules.FreeTiles(b)
}

// AvailablePairs returns the matchable pairs on b under DefaultRules.
func AvailablePairs(b *Board) []Pair {
	return DefaultRules.AvailablePairs(b)
}

// FreeTiles returns the ids of all currently free tiles in id order.
func (r Rules) FreeTiles(b *Board) []int {
	var ids []int
	for _, t := range b.tiles {
		if r.IsFree(t, b) {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

// Pair is two tile ids that can be matched right now.
type Pair struct {
	A, B int
}

// AvailablePairs returns every pair of free tiles sharing a type, ordered
// by the first id and then the second.
func (r Rules) AvailablePairs(b *Board) []Pair {
	byType := make(map[string][]int)
	var order []string
	for _, id := range r.FreeTiles(b) {
		typ := b.tiles[id].Type
		if _, seen := byType[typ]; !seen {
			order = append(order, typ)
		}
		byType[typ] = append(byType[typ], id)
	}

	var pairs []Pair
	for _, typ := range order {
		ids := byType[typ]
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				pairs = append(pairs, Pair{A: ids[i], B: ids[j]})
			}
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})
	return pairs
}
