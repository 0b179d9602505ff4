package tui

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/tui-mahjong/internal/core"
	"github.com/vovakirdan/tui-mahjong/internal/storage"
	"github.com/vovakirdan/tui-mahjong/internal/telemetry"
)

// RunTracker follows one player's runs: it records level clears, logs
// game events and keeps a span open per run and per level.
// A run lasts from a fresh board at level 1 until the next new game or quit.
type RunTracker struct {
	gameID string
	store  *storage.Store
	logger *log.Logger
	tracer trace.Tracer

	runID     string
	clears    int
	runCtx    context.Context
	runSpan   trace.Span
	levelSpan trace.Span
}

// NewRunTracker creates a tracker. A nil store disables persistence, a nil
// logger discards logs and a nil tracer disables tracing.
func NewRunTracker(gameID string, store *storage.Store, logger *log.Logger, tracer trace.Tracer) *RunTracker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if tracer == nil {
		tracer = telemetry.NoopTracer()
	}
	return &RunTracker{
		gameID: gameID,
		store:  store,
		logger: logger,
		tracer: tracer,
	}
}

// RunID returns the id of the current run, or "" before Start.
func (r *RunTracker) RunID() string {
	return r.runID
}

// Clears returns how many levels the current run has cleared.
func (r *RunTracker) Clears() int {
	return r.clears
}

// Start begins a new run at the given state, ending any run in progress.
func (r *RunTracker) Start(st core.GameState) {
	r.End()

	r.runID = uuid.NewString()
	r.clears = 0
	r.runCtx, r.runSpan = r.tracer.Start(context.Background(), "mahjong.run",
		trace.WithAttributes(
			attribute.String("run.id", r.runID),
			attribute.String("game.id", r.gameID),
		),
	)
	r.logger.Info("run started", "run", r.runID, "level", st.Level, "tiles", st.Tiles)
	r.startLevel(st.Level, st.Tiles)
}

// Observe reacts to the events of one game step.
func (r *RunTracker) Observe(res core.StepResult) {
	for _, ev := range res.Events {
		switch ev.Kind {
		case core.EventLevelCleared:
			r.levelCleared(ev)
		case core.EventLevelStarted:
			r.logger.Info("level started", "run", r.runID, "level", ev.Level, "tiles", ev.Tiles)
			r.startLevel(ev.Level, ev.Tiles)
		case core.EventNewGame:
			r.logger.Info("new game requested", "run", r.runID, "cleared", r.clears)
			r.Start(res.State)
		}
	}
}

// End closes the spans of the current run.
func (r *RunTracker) End() {
	if r.levelSpan != nil {
		r.levelSpan.End()
		r.levelSpan = nil
	}
	if r.runSpan != nil {
		r.runSpan.End()
		r.runSpan = nil
		r.logger.Debug("run ended", "run", r.runID)
	}
}

func (r *RunTracker) startLevel(level, tiles int) {
	if r.levelSpan != nil {
		r.levelSpan.End()
	}
	ctx := r.runCtx
	if ctx == nil {
		ctx = context.Background()
	}
	_, r.levelSpan = r.tracer.Start(ctx, "mahjong.level",
		trace.WithAttributes(
			attribute.Int("level", level),
			attribute.Int("tiles", tiles),
		),
	)
}

func (r *RunTracker) levelCleared(ev core.Event) {
	r.clears++
	r.logger.Info("level cleared", "run", r.runID, "level", ev.Level)

	if r.levelSpan != nil {
		r.levelSpan.SetAttributes(attribute.Bool("cleared", true))
		r.levelSpan.End()
		r.levelSpan = nil
	}

	if r.store == nil {
		return
	}
	if _, err := r.store.SaveClear(r.runID, r.gameID, ev.Level); err != nil {
		r.logger.Warn("could not save level clear", "run", r.runID, "level", ev.Level, "error", err)
	}
}
