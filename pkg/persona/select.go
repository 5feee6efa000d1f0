package persona

import (
	"context"

	"github.com/nanogyth/go-bot/pkg/board"
	"github.com/nanogyth/go-bot/pkg/generate"
	"github.com/nanogyth/go-bot/pkg/rng"
)

// SelectMove asks persona o for its priority move against the given
// decision's generator table, walking that persona's fixed priority list. A
// false second return means "no strong preference" -- the orchestrator
// should fall back to the reasonable-move set.
func SelectMove(ctx context.Context, o Opponent, table *generate.Table, src rng.Source) (board.Point, bool) {
	switch o {
	case Daedalus:
		if src.Float64() < 0.9 {
			return SelectMove(ctx, Illuminati, table, src)
		}
		return board.Point{}, false

	case Tetrads:
		return selectTetrads(table, src)

	case TheBlackHand:
		return selectTheBlackHand(table, src)

	case SlumSnakes:
		return selectSlumSnakes(table, src)

	case Netburners:
		return selectNetburners(table, src)

	case NoAI:
		return board.Point{}, false

	default: // Illuminati, and the unrecognized-name fallback
		return selectIlluminati(table, src)
	}
}

func surroundWithMaxLiberties(table *generate.Table, max int) (board.Point, bool) {
	c, ok := table.Get("surround")
	if !ok {
		return board.Point{}, false
	}
	newLib, present := c.NewLiberties.V()
	if !present || newLib > max {
		return board.Point{}, false
	}
	return c.Point, true
}

func get(table *generate.Table, name string) (board.Point, bool) {
	c, ok := table.Get(name)
	if !ok {
		return board.Point{}, false
	}
	return c.Point, true
}

func selectIlluminati(table *generate.Table, src rng.Source) (board.Point, bool) {
	steps := []func() (board.Point, bool){
		func() (board.Point, bool) { return get(table, "capture") },
		func() (board.Point, bool) { return get(table, "defendCapture") },
		func() (board.Point, bool) { return get(table, "eyeMove") },
		func() (board.Point, bool) { return surroundWithMaxLiberties(table, 1) },
		func() (board.Point, bool) { return get(table, "eyeBlock") },
		func() (board.Point, bool) { return get(table, "corner") },
	}

	for _, step := range steps {
		if p, ok := step(); ok {
			return p, true
		}
	}

	// Every step above already failed, so "no other moves" always holds
	// here -- pattern is consulted unconditionally rather than gated
	// behind the usual rng coin flip.
	if p, ok := get(table, "pattern"); ok {
		return p, true
	}
	if src.Float64() > 0.4 {
		if p, ok := get(table, "jump"); ok {
			return p, true
		}
	}
	if src.Float64() < 0.6 {
		if p, ok := surroundWithMaxLiberties(table, 2); ok {
			return p, true
		}
	}
	return board.Point{}, false
}

func selectTetrads(table *generate.Table, src rng.Source) (board.Point, bool) {
	if p, ok := get(table, "capture"); ok {
		return p, true
	}
	if p, ok := get(table, "defendCapture"); ok {
		return p, true
	}
	if p, ok := get(table, "pattern"); ok {
		return p, true
	}
	if p, ok := surroundWithMaxLiberties(table, 1); ok {
		return p, true
	}
	if src.Float64() < 0.4 {
		return selectIlluminati(table, src)
	}
	return board.Point{}, false
}

func selectTheBlackHand(table *generate.Table, src rng.Source) (board.Point, bool) {
	if p, ok := get(table, "capture"); ok {
		return p, true
	}
	if p, ok := surroundWithMaxLiberties(table, 1); ok {
		return p, true
	}
	if p, ok := get(table, "defendCapture"); ok {
		return p, true
	}
	if p, ok := surroundWithMaxLiberties(table, 2); ok {
		return p, true
	}
	if src.Float64() < 0.3 {
		return selectIlluminati(table, src)
	}
	if src.Float64() < 0.75 {
		if p, ok := get(table, "surround"); ok {
			return p, true
		}
	}
	if src.Float64() < 0.8 {
		if p, ok := get(table, "random"); ok {
			return p, true
		}
	}
	return board.Point{}, false
}

func selectSlumSnakes(table *generate.Table, src rng.Source) (board.Point, bool) {
	if p, ok := get(table, "defendCapture"); ok {
		return p, true
	}
	if src.Float64() < 0.2 {
		return selectIlluminati(table, src)
	}
	if src.Float64() < 0.6 {
		if p, ok := get(table, "growth"); ok {
			return p, true
		}
	}
	if src.Float64() < 0.65 {
		if p, ok := get(table, "random"); ok {
			return p, true
		}
	}
	return board.Point{}, false
}

func selectNetburners(table *generate.Table, src rng.Source) (board.Point, bool) {
	if src.Float64() < 0.2 {
		return selectIlluminati(table, src)
	}
	if src.Float64() < 0.4 {
		if p, ok := get(table, "expansion"); ok {
			return p, true
		}
	}
	if src.Float64() < 0.6 {
		if p, ok := get(table, "growth"); ok {
			return p, true
		}
	}
	if src.Float64() < 0.75 {
		if p, ok := get(table, "random"); ok {
			return p, true
		}
	}
	return board.Point{}, false
}
