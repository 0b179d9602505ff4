package mahjong

import (
	"fmt"
	"math/rand"
)

// Phase is the controller's coarse state.
type Phase string

const (
	PhasePlaying       Phase = "playing"
	PhaseBetweenLevels Phase = "between_levels"
)

// Outcome describes what a click did.
type Outcome int

const (
	OutcomeIgnored Outcome = iota
	OutcomeNotFree
	OutcomeSelected
	OutcomeDeselected
	OutcomeMatched
	OutcomeMismatch
	OutcomeLevelCleared
)

// String returns a short name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeNotFree:
		return "not_free"
	case OutcomeSelected:
		return "selected"
	case OutcomeDeselected:
		return "deselected"
	case OutcomeMatched:
		return "matched"
	case OutcomeMismatch:
		return "mismatch"
	case OutcomeLevelCleared:
		return "level_cleared"
	default:
		return "unknown"
	}
}

// Status messages shown to the player.
const (
	msgNotFree  = "Tile is not free."
	msgMismatch = "Tiles do not match. Try again."
	msgNoMoves  = " No moves left - press N for a new game."
)

// SessionConfig configures a Session.
type SessionConfig struct {
	Geometry Geometry
	Rules    Rules
	Alphabet []string
	// AdvanceDelay is how many Step calls pass between clearing a level
	// and building the next one.
	AdvanceDelay int
}

// DefaultSessionConfig returns the classic layout and rules with a
// two-second delay at the given tick rate.
func DefaultSessionConfig(tickRate int) SessionConfig {
	if tickRate <= 0 {
		tickRate = 30
	}
	return SessionConfig{
		Geometry:     DefaultGeometry,
		Rules:        DefaultRules,
		Alphabet:     DefaultAlphabet,
		AdvanceDelay: 2 * tickRate,
	}
}

// Session owns one game: the level counter, the board and the status
// message. All mutation goes through HandleTileClick, Step and NewGame.
type Session struct {
	cfg     SessionConfig
	rng     *rand.Rand
	level   int
	board   *Board
	message string
	phase   Phase

	advanceIn int // Steps left before the next level is built
}

// NewSession creates a session and starts a new game at level 1.
func NewSession(cfg SessionConfig, rng *rand.Rand) *Session {
	s := &Session{cfg: cfg, rng: rng}
	s.NewGame()
	return s
}

// NewGame resets the level to 1 and builds a fresh board, discarding any
// pending level transition.
func (s *Session) NewGame() {
	s.level = 1
	s.buildBoard()
	s.message = ""
}

func (s *Session) buildBoard() {
	s.board = Build(s.level, s.cfg.Geometry, s.cfg.Alphabet, s.rng)
	s.phase = PhasePlaying
	s.advanceIn = 0
}

// Level returns the current level, starting at 1.
func (s *Session) Level() int {
	return s.level
}

// Message returns the current status message.
func (s *Session) Message() string {
	return s.message
}

// Phase returns whether the session is playing or waiting for the next level.
func (s *Session) Phase() Phase {
	return s.phase
}

// Board returns the current board. Callers must not mutate it.
func (s *Session) Board() *Board {
	return s.board
}

// Rules returns the free-tile rules in use.
func (s *Session) Rules() Rules {
	return s.cfg.Rules
}

// RenderableTiles returns live tiles ordered for painting.
func (s *Session) RenderableTiles() []RenderTile {
	return s.board.RenderableTiles()
}

// IsFree reports whether the tile with the given id can be selected.
func (s *Session) IsFree(id int) bool {
	t, ok := s.board.Tile(id)
	return ok && s.cfg.Rules.IsFree(t, s.board)
}

// Hint returns a currently matchable pair, if any.
func (s *Session) Hint() (Pair, bool) {
	if s.phase != PhasePlaying {
		return Pair{}, false
	}
	pairs := s.cfg.Rules.AvailablePairs(s.board)
	if len(pairs) == 0 {
		return Pair{}, false
	}
	return pairs[0], true
}

// Stuck reports whether tiles remain but no pair can be matched.
func (s *Session) Stuck() bool {
	if s.phase != PhasePlaying || s.board.Remaining() == 0 {
		return false
	}
	return len(s.cfg.Rules.AvailablePairs(s.board)) == 0
}

// HandleTileClick applies a click on the tile with the given id.
// Clicks are ignored between levels so stale ids never touch the next board.
func (s *Session) HandleTileClick(id int) Outcome {
	if s.phase != PhasePlaying {
		return OutcomeIgnored
	}

	tile, ok := s.board.Tile(id)
	if !ok || tile.Removed {
		return OutcomeIgnored
	}

	if !s.cfg.Rules.IsFree(tile, s.board) {
		s.message = msgNotFree
		return OutcomeNotFree
	}

	selectedID, hasSelected := s.board.Selected()
	if !hasSelected {
		// Cannot fail: tile exists and is live.
		_ = s.board.SetSelected(id)
		s.message = fmt.Sprintf("Selected tile %s. Click on a matching free tile.", tile.Type)
		return OutcomeSelected
	}

	if selectedID == id {
		s.board.ClearSelection()
		s.message = ""
		return OutcomeDeselected
	}

	first, _ := s.board.Tile(selectedID)
	s.board.ClearSelection()
	if first.Type != tile.Type {
		s.message = msgMismatch
		return OutcomeMismatch
	}

	_ = s.board.MarkRemoved(first.ID)
	_ = s.board.MarkRemoved(tile.ID)
	s.message = fmt.Sprintf("Matched %s pair!", tile.Type)

	return s.checkWin()
}

// checkWin starts the level transition once the board is empty.
func (s *Session) checkWin() Outcome {
	if s.board.Remaining() > 0 {
		if s.Stuck() {
			s.message += msgNoMoves
		}
		return OutcomeMatched
	}

	s.message = fmt.Sprintf("Congratulations! You cleared level %d!", s.level)
	s.phase = PhaseBetweenLevels
	s.advanceIn = s.cfg.AdvanceDelay
	if s.advanceIn < 1 {
		s.advanceIn = 1
	}
	return OutcomeLevelCleared
}

// Step advances the pending level transition by one tick. It returns true
// on the tick that builds the next level.
func (s *Session) Step() bool {
	if s.phase != PhaseBetweenLevels {
		return false
	}
	s.advanceIn--
	if s.advanceIn > 0 {
		return false
	}

	s.level++
	s.buildBoard()
	s.message = ""
	return true
}
