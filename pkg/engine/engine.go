// Package engine implements the decision core's orchestrator: the single
// public entry point that wires the board, legality, territory, generate,
// pattern, and persona packages into one move decision.
package engine

import (
	"context"

	"github.com/nanogyth/go-bot/pkg/board"
	"github.com/nanogyth/go-bot/pkg/generate"
	"github.com/nanogyth/go-bot/pkg/legality"
	"github.com/nanogyth/go-bot/pkg/pattern"
	"github.com/nanogyth/go-bot/pkg/persona"
	"github.com/nanogyth/go-bot/pkg/rng"
	"github.com/nanogyth/go-bot/pkg/territory"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

// Version identifies this build of the decision core.
var Version = build.NewVersion(0, 1, 0)

var catalog = pattern.NewCatalog(true)

// GetMove runs the full decision: persona priority call first, then a
// gather-filter-pick fallback over the reasonable-move set. It never
// mutates state.Board.
func GetMove(ctx context.Context, state board.State, player board.Color, opponent persona.Opponent, source rng.Source, yielder rng.Yielder, opts ...Option) (Play, error) {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}

	yielder.Yield(ctx)

	if state.IsGameOver() {
		logw.Debugf(ctx, "GetMove: board is already game over")
		return Play{Type: GameOver}, nil
	}
	if opponent == persona.NoAI {
		logw.Debugf(ctx, "GetMove: NoAI opponent, passing")
		return Play{Type: Pass}, nil
	}

	smart, ok := o.Smart.V()
	if !ok {
		smart = persona.SmartFlag(opponent, source)
	}

	available := territory.FindDisputedTerritory(state.Board, player, emptyPoints(state.Board), smart)
	table := generate.NewTable(ctx, state.Board, player, available, source, yielder, smart)
	table.Register("pattern", patternGenerator(catalog, smart, yielder))

	if p, found := persona.SelectMove(ctx, opponent, table, source); found {
		logw.Debugf(ctx, "GetMove: persona %v chose (%v,%v)", opponent, p.X, p.Y)
		yielder.Yield(ctx)
		return Play{Type: Move, X: p.X, Y: p.Y}, nil
	}

	fallback := gatherFallback(ctx, table, state, player)
	yielder.Yield(ctx)

	if len(fallback) == 0 {
		logw.Debugf(ctx, "GetMove: no reasonable fallback move, passing")
		return Play{Type: Pass}, nil
	}
	p := rng.Choice(source, fallback)
	return Play{Type: Move, X: p.X, Y: p.Y}, nil
}

// fallbackOrder is the fixed priority order the fallback stage gathers
// candidates in: growth and surround come first since they resolve
// existing fights, pattern and the eye generators last since they're
// the weakest signal when nothing stronger applies.
var fallbackOrder = []string{"growth", "surround", "defend", "expansion", "pattern", "eyeMove", "eyeBlock"}

func gatherFallback(ctx context.Context, table *generate.Table, state board.State, player board.Color) []board.Point {
	var out []board.Point
	for _, name := range fallbackOrder {
		c, found := table.Get(name)
		if !found {
			continue
		}
		if legality.Evaluate(ctx, state, c.Point.X, c.Point.Y, player, true) != legality.Valid {
			continue
		}
		out = append(out, c.Point)
	}
	return out
}

func emptyPoints(b *board.Board) []board.Point {
	var out []board.Point
	for _, p := range b.Points() {
		if p.Color == board.Empty {
			out = append(out, p)
		}
	}
	return out
}

// patternGenerator adapts pattern.Match into a generate.Func so the
// orchestrator can fold it into the same memoized table as the other
// generators, without pkg/generate importing pkg/pattern.
func patternGenerator(c *pattern.Catalog, smart bool, yielder rng.Yielder) generate.Func {
	return func(ctx context.Context, b *board.Board, player board.Color, available []board.Point, src rng.Source) (generate.Candidate, bool) {
		p, ok := pattern.Match(ctx, c, b, player, available, smart, src, yielder)
		if !ok {
			return generate.Candidate{}, false
		}
		return generate.Candidate{Point: p}, true
	}
}
