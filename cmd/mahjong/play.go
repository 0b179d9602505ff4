package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mahjong/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a new game at level 1.

Controls:
  Mouse click        - Select a tile
  Arrows/WASD/HJKL   - Move the cursor
  Enter/Space        - Select the tile under the cursor
  T                  - Hint: jump to a playable tile
  N                  - New game
  ?                  - Help
  Esc                - Leave
  Q/Ctrl+C           - Quit

Examples:
  mahjong play
  mahjong play --seed 42
  mahjong play --config ./my-mahjong.yaml
  mahjong play --log-file ./mahjong.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	newGame, err := loadGame()
	if err != nil {
		fatalf("%v", err)
	}

	logger, closeLog, err := fileLogger(flagLogFile)
	if err != nil {
		fatalf("%v", err)
	}
	defer closeLog()

	store := openStore(flagDBPath)
	opts := tui.Options{Store: store, Logger: logger, Tracer: currentTracer()}

	_, runErr := tui.Run(newGame(), opts, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fatalf("running game: %v", runErr)
	}
}
