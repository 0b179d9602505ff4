// Package tui runs a game in the terminal with Bubble Tea. It maps keys and
// mouse clicks to input frames, drives the tick loop, records level clears
// and serves sessions over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mahjong/internal/core"
)

// Game is what the platform runs. Implementations are deterministic given
// the seed in RuntimeConfig and the sequence of input frames.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Resizer is implemented by games that can follow a terminal resize
// without restarting.
type Resizer interface {
	Resize(w, h int)
}

// GameFactory creates a fresh game, one per player session.
type GameFactory func() Game

// TickMsg advances the game by one step.
type TickMsg time.Time

// tickCmd schedules the next TickMsg. Non-positive rates fall back to 30.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
