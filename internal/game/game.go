package game

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// FrameRate is the number of ticks per second the host loop aims for.
const FrameRate = 60

// Game drives a State from a fixed-rate frame loop.
type Game struct {
	cfg      Config
	opts     []Option
	log      zerolog.Logger
	tracer   trace.Tracer
	interval time.Duration
	state    *State
}

// New creates a new game instance.
func New(cfg Config, opts ...Option) (*Game, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		opts:     append(opts[:len(opts):len(opts)], WithTheme(o.theme)),
		log:      o.logger,
		tracer:   o.tracer,
		interval: time.Second / FrameRate,
	}, nil
}

// State returns the running state, or nil before Run.
func (g *Game) State() *State {
	return g.state
}

// Run executes the main game loop until the host asks to quit or ctx is done.
func (g *Game) Run(ctx context.Context, host Host) error {
	_, initSpan := g.tracer.Start(ctx, "game.init")
	state, err := NewState(ctx, g.cfg, g.opts...)
	if err != nil {
		initSpan.RecordError(err)
		initSpan.End()
		return err
	}
	g.state = state
	initSpan.SetAttributes(
		attribute.Int("player.start_x", state.Player.Head.X),
		attribute.Int("player.start_y", state.Player.Head.Y),
		attribute.Int("food.x", state.Food.Position.X),
		attribute.Int("food.y", state.Food.Position.Y),
		attribute.Int("frame_rate", FrameRate),
	)
	initSpan.End()

	defer state.Close()

	g.log.Info().Int("frame_rate", FrameRate).Msg("game loop started")

	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	for {
		state.Tick(ctx, host)
		host.Show()

		if host.QuitRequested() {
			g.log.Info().Uint64("ticks", state.Ticks).Msg("game loop stopped")
			return nil
		}

		select {
		case <-ctx.Done():
			g.log.Info().Err(ctx.Err()).Msg("game loop interrupted")
			return nil
		case <-ticker.C:
		}
	}
}
