// mahjong is a Mahjong solitaire game for the terminal.
//
// Usage:
//
//	mahjong play             - Play right away
//	mahjong menu             - Start with the title menu
//	mahjong serve            - Start SSH server for remote play
//	mahjong scores           - Show the best runs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.mahjong/results.db)
//	--config <path> - Use a custom game config YAML
//	--log-file <p>  - Write debug logs to a file
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/tui-mahjong/internal/telemetry"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string

	// Replaced by setupTelemetry when an endpoint is configured
	tracer = telemetry.NoopTracer()

	shutdownTelemetry func(context.Context) error
)

func main() {
	err := rootCmd.Execute()
	stopTelemetry()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mahjong",
	Short: "Mahjong solitaire in your terminal",
	Long: `Match pairs of free tiles until the board is empty. Every cleared
board brings a bigger one.

Available commands:
  play     - Start a game directly
  menu     - Title menu with best runs
  serve    - Start SSH server for remote play
  scores   - View the best runs

Examples:
  mahjong play
  mahjong play --seed 42
  mahjong menu
  mahjong serve --ssh :2222
  mahjong scores`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupTelemetry()
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mahjong/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setupTelemetry loads .env and starts the OTLP exporter when an endpoint
// is configured. Without one every span goes to a no-op tracer.
func setupTelemetry() {
	// Not fatal: env vars might be set directly
	_ = godotenv.Load()

	if !telemetry.Enabled() {
		return
	}

	shutdown, err := telemetry.Setup(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: telemetry setup failed: %v\n", err)
		return
	}
	shutdownTelemetry = shutdown
	tracer = telemetry.Tracer("tui")
}

func stopTelemetry() {
	if shutdownTelemetry == nil {
		return
	}
	if err := shutdownTelemetry(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error shutting down telemetry: %v\n", err)
	}
	shutdownTelemetry = nil
}

// fatalf prints an error, flushes telemetry and exits.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	stopTelemetry()
	os.Exit(1)
}

// currentTracer is read after PersistentPreRun has run.
func currentTracer() trace.Tracer {
	return tracer
}
