package generate

import (
	"context"

	"github.com/nanogyth/go-bot/pkg/board"
	"github.com/nanogyth/go-bot/pkg/rng"
)

// slot holds one generator's memoized result for the decision: read/written
// at most once, keyed by generator identity rather than a board hash.
type slot struct {
	evaluated bool
	candidate Candidate
	ok        bool
}

// Table is the per-decision lazily-memoized binding of every move
// generator against one (board, player, availableSpaces) triple: each
// generator runs at most once per decision no matter how many personas or
// fallback stages probe it.
type Table struct {
	ctx       context.Context
	b         *board.Board
	player    board.Color
	available []board.Point
	src       rng.Source
	yielder   rng.Yielder

	slots map[string]*slot
	funcs map[string]Func
}

// NewTable builds the generator table for one decision. smart gates the
// quality-sensitive generators (Surround and its Capture derivative); every
// other generator is smart-independent. yielder is given a chance to
// suspend on every Get call, whether or not that call is a cache hit, since
// callers probe the table once per candidate priority check.
func NewTable(ctx context.Context, b *board.Board, player board.Color, available []board.Point, src rng.Source, yielder rng.Yielder, smart bool) *Table {
	t := &Table{
		ctx:       ctx,
		b:         b,
		player:    player,
		available: available,
		src:       src,
		yielder:   yielder,
		slots:     map[string]*slot{},
	}
	t.funcs = map[string]Func{
		"expansion":     Expansion,
		"jump":          Jump,
		"growth":        Growth,
		"defend":        Defend,
		"surround":      NewSurround(smart),
		"capture":       NewCapture(smart),
		"defendCapture": DefendCapture,
		"eyeMove":       EyeMove,
		"eyeBlock":      EyeBlock,
		"corner":        Corner,
		"random":        Random,
	}
	return t
}

// Register binds an additional generator into the table under name,
// overwriting any earlier binding. The orchestrator uses this to fold the
// pattern-matcher generator into the same lazily-memoized table as the
// generators above, rather than this package importing pattern directly.
func (t *Table) Register(name string, fn Func) {
	t.funcs[name] = fn
}

// Get runs (or replays the memoized result of) the named generator.
func (t *Table) Get(name string) (Candidate, bool) {
	t.yielder.Yield(t.ctx)

	if s, ok := t.slots[name]; ok {
		return s.candidate, s.ok
	}
	fn, ok := t.funcs[name]
	if !ok {
		panic("generate: unknown generator " + name)
	}
	c, found := fn(t.ctx, t.b, t.player, t.available, t.src)
	t.slots[name] = &slot{evaluated: true, candidate: c, ok: found}
	return c, found
}
