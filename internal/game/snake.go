package game

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/snek/internal/entity"
	"github.com/samdwyer/snek/internal/gamedata"
	"github.com/samdwyer/snek/internal/input"
	"github.com/samdwyer/snek/internal/telemetry"
	"github.com/samdwyer/snek/internal/world"
)

const (
	// MoveEvery is the number of ticks between snake moves.
	MoveEvery = 5

	// Start positions. A restart uses a different cell from the first round.
	firstStartX, firstStartY     = 2, 2
	restartStartX, restartStartY = 20, 20
)

// State holds everything that changes while the game runs.
type State struct {
	Mode   Mode
	Player *entity.Player
	Food   *entity.Food
	Ticks  uint64
	Score  int

	theme  *gamedata.Theme
	newRNG func() *rand.Rand
	log    zerolog.Logger
	tracer trace.Tracer

	roundID uuid.UUID
	round   trace.Span
}

// Option customizes a State or Game.
type Option func(*options)

type options struct {
	logger zerolog.Logger
	tracer trace.Tracer
	theme  *gamedata.Theme
}

// WithLogger sets the logger used for game events.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithTracer sets the tracer used for round spans.
func WithTracer(t trace.Tracer) Option {
	return func(o *options) { o.tracer = t }
}

// WithTheme overrides the embedded theme.
func WithTheme(t *gamedata.Theme) Option {
	return func(o *options) { o.theme = t }
}

func buildOptions(opts []Option) (options, error) {
	o := options{
		logger: zerolog.Nop(),
		tracer: telemetry.NoopTracer(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.theme == nil {
		theme, err := gamedata.LoadTheme()
		if err != nil {
			return o, fmt.Errorf("load theme: %w", err)
		}
		o.theme = theme
	}
	return o, nil
}

// NewState creates the initial game state: playing, no ticks, no score and
// the snake at its first start cell.
func NewState(ctx context.Context, cfg Config, opts ...Option) (*State, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	s := &State{
		Mode:   ModePlaying,
		theme:  o.theme,
		newRNG: cfg.rngSource(),
		log:    o.logger,
		tracer: o.tracer,
	}
	s.reset(ctx, firstStartX, firstStartY)
	return s, nil
}

// Tick advances the game by one frame.
func (s *State) Tick(ctx context.Context, surf Surface) {
	switch s.Mode {
	case ModePlaying:
		s.play(ctx, surf)
	case ModeDead:
		s.dead(ctx, surf)
	}
	s.Ticks++
}

// Restart starts a new round at the restart cell.
func (s *State) Restart(ctx context.Context) {
	s.Mode = ModePlaying
	s.reset(ctx, restartStartX, restartStartY)
	s.log.Info().Str("round", s.roundID.String()).Msg("round restarted")
}

// Close ends the current round span, if any.
func (s *State) Close() {
	if s.round != nil {
		s.round.SetAttributes(attribute.String("round.outcome", "abandoned"))
		s.round.End()
		s.round = nil
	}
}

func (s *State) reset(ctx context.Context, x, y int) {
	s.Close()

	s.Player = entity.NewPlayer(x, y)
	s.Food = entity.NewFood(s.newRNG())
	s.Ticks = 0
	s.Score = 0

	s.roundID = uuid.New()
	_, s.round = s.tracer.Start(ctx, "game.round",
		trace.WithAttributes(
			attribute.String("round.id", s.roundID.String()),
			attribute.Int("player.start_x", x),
			attribute.Int("player.start_y", y),
			attribute.Int("food.x", s.Food.Position.X),
			attribute.Int("food.y", s.Food.Position.Y),
		),
	)
}

// play runs one tick of the Playing mode.
func (s *State) play(ctx context.Context, surf Surface) {
	surf.Clear()
	s.drawCell(surf, s.Food.Position, &s.theme.Food)

	s.Player.UpdateDirection(surf.PollKey())
	if s.Ticks%MoveEvery == 0 {
		s.Player.UpdatePosition()
	}

	for _, c := range s.Player.Segments() {
		s.drawCell(surf, c, &s.theme.Snake)
	}

	if s.Player.IsOutOfBounds() {
		s.die()
	}

	if s.Player.Head == s.Food.Position {
		s.eat()
	}
}

func (s *State) eat() {
	eaten := s.Food.Position
	grew := s.Player.Grow()
	if grew {
		s.Score++
	}
	s.Food.Respawn()

	s.log.Debug().
		Str("round", s.roundID.String()).
		Int("x", eaten.X).
		Int("y", eaten.Y).
		Bool("grew", grew).
		Int("score", s.Score).
		Msg("food eaten")

	if s.round != nil {
		s.round.AddEvent("food.eaten", trace.WithAttributes(
			attribute.Int("food.x", eaten.X),
			attribute.Int("food.y", eaten.Y),
			attribute.Bool("player.grew", grew),
			attribute.Int("score", s.Score),
		))
	}
}

func (s *State) die() {
	s.Mode = ModeDead

	head := s.Player.Head
	s.log.Info().
		Str("round", s.roundID.String()).
		Int("score", s.Score).
		Uint64("ticks", s.Ticks).
		Int("head_x", head.X).
		Int("head_y", head.Y).
		Msg("player died")

	if s.round != nil {
		s.round.AddEvent("player.died")
		s.round.SetAttributes(
			attribute.String("round.outcome", "died"),
			attribute.Int("score", s.Score),
			attribute.Int("player.length", s.Player.Length()),
			attribute.Int64("round.ticks", int64(s.Ticks)),
		)
		s.round.End()
		s.round = nil
	}
}

// dead runs one tick of the death screen.
func (s *State) dead(ctx context.Context, surf Surface) {
	ds := s.theme.DeathScreen

	surf.Clear()
	surf.PrintCentered(ds.Title.Row, ds.Title.Text)
	surf.PrintCentered(ds.Score.Row, fmt.Sprintf(ds.Score.Text, s.Score))
	for _, line := range ds.Options {
		surf.PrintCentered(line.Row, line.Text)
	}

	switch surf.PollKey() {
	case input.P:
		s.Restart(ctx)
	case input.Q:
		s.log.Info().Int("score", s.Score).Msg("quit requested")
		surf.RequestQuit()
	}
}

// drawCell draws c as a PixelsPerCell x PixelsPerCell block.
func (s *State) drawCell(surf Surface, c world.Cell, g *gamedata.GlyphDef) {
	px, py := c.Pixel()
	glyph := g.GlyphRune()
	fg, bg := g.Colors()
	for dy := 0; dy < world.PixelsPerCell; dy++ {
		for dx := 0; dx < world.PixelsPerCell; dx++ {
			surf.DrawBlock(px+dx, py+dy, glyph, fg, bg)
		}
	}
}
