package mahjong

import (
	"math/rand"
	"slices"
	"strings"
	"testing"
)

func TestBuildDeckPairs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	deck := BuildDeck(36, DefaultAlphabet, rng)

	if len(deck) != 36 {
		t.Fatalf("deck length = %d, want 36", len(deck))
	}

	counts := map[string]int{}
	for _, label := range deck {
		counts[label]++
	}
	if len(counts) != 18 {
		t.Errorf("distinct labels = %d, want 18", len(counts))
	}
	for label, n := range counts {
		if n != 2 {
			t.Errorf("label %q appears %d times, want 2", label, n)
		}
	}
	for _, label := range DefaultAlphabet[:18] {
		if counts[label] != 2 {
			t.Errorf("label %q missing from deck", label)
		}
	}
}

func TestBuildDeckWrapsAlphabet(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	deck := BuildDeck(60, DefaultAlphabet, rng)

	counts := map[string]int{}
	for _, label := range deck {
		counts[label]++
	}
	// 30 unique labels over a 27-label alphabet: the first three wrap.
	for i, label := range DefaultAlphabet {
		want := 2
		if i < 3 {
			want = 4
		}
		if counts[label] != want {
			t.Errorf("label %q appears %d times, want %d", label, counts[label], want)
		}
	}
}

func TestBuildDeckOddCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	deck := BuildDeck(7, []string{"a", "b"}, rng)
	if len(deck) != 6 {
		t.Errorf("deck length = %d, want 6", len(deck))
	}
}

func TestBuildDeckEmptyAlphabetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("BuildDeck with empty alphabet did not panic")
		}
	}()
	BuildDeck(4, nil, rand.New(rand.NewSource(1)))
}

func TestBuildDeckDeterministic(t *testing.T) {
	a := BuildDeck(40, DefaultAlphabet, rand.New(rand.NewSource(42)))
	b := BuildDeck(40, DefaultAlphabet, rand.New(rand.NewSource(42)))
	if !slices.Equal(a, b) {
		t.Error("same seed produced different decks")
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	labels := []string{"a", "b", "c", "d", "e", "f", "g"}
	shuffled := slices.Clone(labels)
	Shuffle(shuffled, rand.New(rand.NewSource(7)))

	sorted := slices.Clone(shuffled)
	slices.Sort(sorted)
	if !slices.Equal(sorted, labels) {
		t.Errorf("Shuffle lost or duplicated labels: %v", shuffled)
	}
}

func TestShuffleUniform(t *testing.T) {
	const trials = 60000
	rng := rand.New(rand.NewSource(99))

	counts := map[string]int{}
	for range trials {
		labels := []string{"a", "b", "c"}
		Shuffle(labels, rng)
		counts[strings.Join(labels, "")]++
	}

	if len(counts) != 6 {
		t.Fatalf("saw %d permutations, want 6", len(counts))
	}
	expected := trials / 6
	for perm, n := range counts {
		if n < expected*95/100 || n > expected*105/100 {
			t.Errorf("permutation %s seen %d times, want about %d", perm, n, expected)
		}
	}
}

func TestShuffleShortInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	Shuffle(nil, rng)

	one := []string{"x"}
	Shuffle(one, rng)
	if one[0] != "x" {
		t.Errorf("single label changed to %q", one[0])
	}
}
