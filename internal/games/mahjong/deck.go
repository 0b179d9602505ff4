package mahjong

import "math/rand"

// DefaultAlphabet is the 27-tile set: characters, bamboo and circles, 1-9.
var DefaultAlphabet = []string{
	"1m", "2m", "3m", "4m", "5m", "6m", "7m", "8m", "9m",
	"1s", "2s", "3s", "4s", "5s", "6s", "7s", "8s", "9s",
	"1p", "2p", "3p", "4p", "5p", "6p", "7p", "8p", "9p",
}

// BuildDeck returns slotCount labels in random order, built from
// slotCount/2 labels taken from alphabet in order (wrapping around), each
// emitted twice. An empty alphabet is a programming error and panics.
func BuildDeck(slotCount int, alphabet []string, rng *rand.Rand) []string {
	if len(alphabet) == 0 {
		panic("mahjong: empty tile alphabet")
	}

	uniqueCount := slotCount / 2
	deck := make([]string, 0, uniqueCount*2)
	for i := range uniqueCount {
		label := alphabet[i%len(alphabet)]
		deck = append(deck, label, label)
	}

	Shuffle(deck, rng)
	return deck
}

// Shuffle permutes labels in place with Fisher-Yates: every permutation
// is equally likely given a uniform rng.
func Shuffle(labels []string, rng *rand.Rand) {
	for i := len(labels) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		labels[i], labels[j] = labels[j], labels[i]
	}
}
