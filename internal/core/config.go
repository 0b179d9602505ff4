package core

// RuntimeConfig contains configuration passed to a game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0,
	}
}

// GameState is the platform-visible summary of a running game.
type GameState struct {
	Score    int  // Levels cleared in the current run
	Level    int  // Level currently being played
	Tiles    int  // Tiles left on the board
	GameOver bool // No moves are left on the board
	Paused   bool // Input is not being accepted (between levels, help open)
}

// EventKind identifies something notable that happened during a step.
type EventKind int

const (
	EventLevelCleared EventKind = iota + 1
	EventLevelStarted
	EventNewGame
)

func (k EventKind) String() string {
	switch k {
	case EventLevelCleared:
		return "level_cleared"
	case EventLevelStarted:
		return "level_started"
	case EventNewGame:
		return "new_game"
	default:
		return "unknown"
	}
}

// Event is emitted by Step so the platform can react (persist results,
// log, trace) without inspecting game internals.
type Event struct {
	Kind  EventKind
	Level int
	Tiles int
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
