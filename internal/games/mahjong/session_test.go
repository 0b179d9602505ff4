package mahjong

import (
	"fmt"
	"math/rand"
	"testing"
)

// newTestSession returns a level-1 session playing on the given board.
func newTestSession(board *Board, delay int) *Session {
	cfg := DefaultSessionConfig(30)
	cfg.AdvanceDelay = delay
	return &Session{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(1)),
		level: 1,
		board: board,
		phase: PhasePlaying,
	}
}

// forcedDeck puts "A" on tiles 0 and 6 and unique pairs everywhere else.
func forcedDeck() []string {
	deck := make([]string, BaseSlotCount)
	deck[0], deck[6] = "A", "A"
	k := 0
	for i := range deck {
		if deck[i] != "" {
			continue
		}
		deck[i] = fmt.Sprintf("T%d", k/2)
		k++
	}
	return deck
}

func TestSessionMatch(t *testing.T) {
	s := newTestSession(NewBoard(Generate(1), forcedDeck()), 60)

	if got := s.HandleTileClick(0); got != OutcomeSelected {
		t.Fatalf("first click = %v, want selected", got)
	}
	if want := "Selected tile A. Click on a matching free tile."; s.Message() != want {
		t.Errorf("message = %q, want %q", s.Message(), want)
	}

	if got := s.HandleTileClick(6); got != OutcomeMatched {
		t.Fatalf("second click = %v, want matched", got)
	}
	if want := "Matched A pair!"; s.Message() != want {
		t.Errorf("message = %q, want %q", s.Message(), want)
	}
	if s.Board().Remaining() != 34 {
		t.Errorf("Remaining() = %d, want 34", s.Board().Remaining())
	}
	if _, ok := s.Board().Selected(); ok {
		t.Error("selection left after match")
	}
	for _, id := range []int{0, 6} {
		tile, _ := s.Board().Tile(id)
		if !tile.Removed {
			t.Errorf("tile %d not removed", id)
		}
	}
}

func TestSessionMismatch(t *testing.T) {
	s := newTestSession(NewBoard(Generate(1), forcedDeck()), 60)

	s.HandleTileClick(0)
	if got := s.HandleTileClick(1); got != OutcomeMismatch {
		t.Fatalf("click = %v, want mismatch", got)
	}
	if want := "Tiles do not match. Try again."; s.Message() != want {
		t.Errorf("message = %q, want %q", s.Message(), want)
	}
	if _, ok := s.Board().Selected(); ok {
		t.Error("selection left after mismatch")
	}
	if s.Board().Remaining() != 36 {
		t.Errorf("Remaining() = %d, want 36", s.Board().Remaining())
	}
}

func TestSessionDeselect(t *testing.T) {
	s := newTestSession(NewBoard(Generate(1), forcedDeck()), 60)

	s.HandleTileClick(0)
	if got := s.HandleTileClick(0); got != OutcomeDeselected {
		t.Fatalf("click = %v, want deselected", got)
	}
	if s.Message() != "" {
		t.Errorf("message = %q, want empty", s.Message())
	}
	if _, ok := s.Board().Selected(); ok {
		t.Error("selection left after deselect")
	}
}

func TestSessionNotFree(t *testing.T) {
	s := newTestSession(NewBoard(Generate(1), forcedDeck()), 60)

	s.HandleTileClick(0)
	if got := s.HandleTileClick(8); got != OutcomeNotFree {
		t.Fatalf("click = %v, want not free", got)
	}
	if want := "Tile is not free."; s.Message() != want {
		t.Errorf("message = %q, want %q", s.Message(), want)
	}
	// The earlier selection is untouched.
	if id, ok := s.Board().Selected(); !ok || id != 0 {
		t.Errorf("Selected() = %d, %v, want 0, true", id, ok)
	}
}

func TestSessionIgnoredClicks(t *testing.T) {
	s := newTestSession(NewBoard(Generate(1), forcedDeck()), 60)
	s.HandleTileClick(0)
	s.HandleTileClick(6)

	for _, id := range []int{0, -1, 500} {
		if got := s.HandleTileClick(id); got != OutcomeIgnored {
			t.Errorf("click on %d = %v, want ignored", id, got)
		}
	}
	if want := "Matched A pair!"; s.Message() != want {
		t.Errorf("ignored clicks changed message to %q", s.Message())
	}
}

func TestSessionLevelAdvance(t *testing.T) {
	slots := Generate(1)[:2]
	s := newTestSession(NewBoard(slots, []string{"A", "A"}), 3)

	s.HandleTileClick(0)
	if got := s.HandleTileClick(1); got != OutcomeLevelCleared {
		t.Fatalf("click = %v, want level cleared", got)
	}
	if want := "Congratulations! You cleared level 1!"; s.Message() != want {
		t.Errorf("message = %q, want %q", s.Message(), want)
	}
	if s.Phase() != PhaseBetweenLevels {
		t.Fatalf("phase = %v, want between levels", s.Phase())
	}

	// Clicks while waiting never touch the old or the next board.
	if got := s.HandleTileClick(0); got != OutcomeIgnored {
		t.Errorf("click between levels = %v, want ignored", got)
	}
	if _, ok := s.Hint(); ok {
		t.Error("Hint returned a pair between levels")
	}
	if s.Stuck() {
		t.Error("Stuck() true between levels")
	}

	rebuilt := 0
	for i := 0; i < 3; i++ {
		if s.Step() {
			rebuilt++
			if i != 2 {
				t.Errorf("level built on step %d, want step 2", i)
			}
		}
	}
	if rebuilt != 1 {
		t.Fatalf("level built %d times, want 1", rebuilt)
	}

	if s.Level() != 2 {
		t.Errorf("Level() = %d, want 2", s.Level())
	}
	if s.Board().Len() != 40 {
		t.Errorf("board has %d tiles, want 40", s.Board().Len())
	}
	if s.Phase() != PhasePlaying {
		t.Errorf("phase = %v, want playing", s.Phase())
	}
	if s.Message() != "" {
		t.Errorf("message = %q, want empty after rebuild", s.Message())
	}

	// No further rebuilds without another clear.
	for range 10 {
		if s.Step() {
			t.Fatal("Step rebuilt while playing")
		}
	}
}

func TestSessionZeroDelayStillWaitsOneStep(t *testing.T) {
	s := newTestSession(NewBoard(Generate(1)[:2], []string{"A", "A"}), 0)
	s.HandleTileClick(0)
	s.HandleTileClick(1)

	if s.Level() != 1 {
		t.Fatalf("level advanced during the click")
	}
	if !s.Step() {
		t.Fatal("first Step did not build the next level")
	}
	if s.Level() != 2 {
		t.Errorf("Level() = %d, want 2", s.Level())
	}
}

func TestSessionNewGame(t *testing.T) {
	s := NewSession(DefaultSessionConfig(30), rand.New(rand.NewSource(1)))
	s.level = 5
	s.board = Build(5, DefaultGeometry, DefaultAlphabet, s.rng)
	s.message = "Matched 1m pair!"

	s.NewGame()

	if s.Level() != 1 {
		t.Errorf("Level() = %d, want 1", s.Level())
	}
	if s.Board().Len() != 36 || s.Board().Remaining() != 36 {
		t.Errorf("board has %d/%d tiles, want 36/36", s.Board().Remaining(), s.Board().Len())
	}
	if s.Message() != "" {
		t.Errorf("message = %q, want empty", s.Message())
	}
	if s.Phase() != PhasePlaying {
		t.Errorf("phase = %v, want playing", s.Phase())
	}
}

func TestSessionNewGameCancelsTransition(t *testing.T) {
	s := newTestSession(NewBoard(Generate(1)[:2], []string{"A", "A"}), 5)
	s.HandleTileClick(0)
	s.HandleTileClick(1)

	s.NewGame()
	for range 10 {
		if s.Step() {
			t.Fatal("pending transition survived NewGame")
		}
	}
	if s.Level() != 1 {
		t.Errorf("Level() = %d, want 1", s.Level())
	}
}

func TestSessionStuck(t *testing.T) {
	slots := []Slot{
		{X: 0, Y: 0, Z: 0, Width: 80, Height: 100},
		{X: 200, Y: 0, Z: 0, Width: 80, Height: 100},
		{X: 400, Y: 0, Z: 0, Width: 80, Height: 100},
		{X: 400, Y: 0, Z: 1, Width: 80, Height: 100},
	}
	s := newTestSession(NewBoard(slots, []string{"A", "A", "B", "B"}), 3)

	if s.Stuck() {
		t.Fatal("Stuck() true with an open pair")
	}
	pair, ok := s.Hint()
	if !ok || pair != (Pair{A: 0, B: 1}) {
		t.Errorf("Hint() = %v, %v, want {0 1}, true", pair, ok)
	}

	s.HandleTileClick(0)
	s.HandleTileClick(1)

	if !s.Stuck() {
		t.Error("Stuck() false with the last pair stacked")
	}
	want := "Matched A pair! No moves left - press N for a new game."
	if s.Message() != want {
		t.Errorf("message = %q, want %q", s.Message(), want)
	}
}

func TestSessionDeterministicBySeed(t *testing.T) {
	a := NewSession(DefaultSessionConfig(30), rand.New(rand.NewSource(11)))
	b := NewSession(DefaultSessionConfig(30), rand.New(rand.NewSource(11)))

	ta, tb := a.Board().Tiles(), b.Board().Tiles()
	for i := range ta {
		if ta[i].Type != tb[i].Type {
			t.Fatalf("tile %d: %q vs %q", i, ta[i].Type, tb[i].Type)
		}
	}
}

func TestOutcomeString(t *testing.T) {
	if OutcomeLevelCleared.String() != "level_cleared" {
		t.Errorf("String() = %q", OutcomeLevelCleared.String())
	}
	if Outcome(99).String() != "unknown" {
		t.Errorf("String() = %q", Outcome(99).String())
	}
}
