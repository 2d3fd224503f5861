package game

import (
	"context"

	"the-snake/game/types"

	"github.com/rs/zerolog"
)

// Loop drives a Game at a fixed rate against its front-end capabilities.
type Loop struct {
	game    *Game
	surface Surface
	input   InputSource
	clock   Clock
	rate    int
	log     zerolog.Logger
}

func NewLoop(g *Game, surface Surface, input InputSource, clock Clock, log zerolog.Logger) *Loop {
	return &Loop{
		game:    g,
		surface: surface,
		input:   input,
		clock:   clock,
		rate:    types.TickRate,
		log:     log,
	}
}

// Run ticks until a quit event arrives or ctx is done. Both are normal
// termination and return nil; releasing the surface is up to the caller.
func (l *Loop) Run(ctx context.Context) error {
	l.log.Info().Int("rate_hz", l.rate).Msg("Game loop started")

	for {
		l.clock.WaitForNextTick(l.rate)

		if err := ctx.Err(); err != nil {
			l.logStop("context done")
			return nil
		}

		if !l.game.Step(l.input.PollEvents()) {
			l.logStop("quit")
			return nil
		}
		l.game.Draw(l.surface)
	}
}

func (l *Loop) logStop(reason string) {
	stats := l.game.Stats()
	l.log.Info().
		Str("reason", reason).
		Int("ticks", stats.Ticks).
		Int("apples", stats.ApplesEaten).
		Int("resets", stats.Resets).
		Int("best_length", stats.BestLength).
		Dur("elapsed", l.game.stateMgr.Elapsed()).
		Msg("Game loop stopped")
}
