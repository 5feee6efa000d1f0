package generate_test

import (
	"context"
	"testing"

	"github.com/nanogyth/go-bot/pkg/board"
	"github.com/nanogyth/go-bot/pkg/board/simple"
	"github.com/nanogyth/go-bot/pkg/generate"
	"github.com/nanogyth/go-bot/pkg/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource always returns the same float, making generator choices
// deterministic in tests that don't care which of several equal candidates
// wins.
type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

func decode(t *testing.T, rows ...string) *board.Board {
	t.Helper()
	b, err := simple.Decode(context.Background(), simple.Board(rows))
	require.NoError(t, err)
	return b
}

func allEmpty(b *board.Board) []board.Point {
	var ret []board.Point
	for _, p := range b.Points() {
		if p.Color == board.Empty {
			ret = append(ret, p)
		}
	}
	return ret
}

func TestExpansionPrefersWideOpenPoints(t *testing.T) {
	b := decode(t, ".....", ".X...", ".....", ".....", ".....")
	c, ok := generate.Expansion(context.Background(), b, board.Black, allEmpty(b), fixedSource(0))
	require.True(t, ok)

	// (0,0) has only 2 in-bounds neighbors so can never be "wide open";
	// the chosen point must have all 4 orthogonal neighbors empty.
	n := b.NeighborCoords(c.Point.X, c.Point.Y)
	assert.Len(t, n, 4)
}

func TestJumpRequiresFriendlyStoneTwoAway(t *testing.T) {
	b := decode(t, ".....", "..X..", ".....", ".....", ".....")
	c, ok := generate.Jump(context.Background(), b, board.Black, allEmpty(b), fixedSource(0))
	require.True(t, ok)

	dx, dy := c.Point.X-1, c.Point.Y-2
	assert.True(t, (dx == 0 && (dy == 2 || dy == -2)) || (dy == 0 && (dx == 2 || dx == -2)))
}

func TestGrowthPicksPositiveLibertyGain(t *testing.T) {
	// Black chain of 1 stone at (2,2) with 4 liberties; playing (2,1)
	// extends into an open area, never decreasing liberties.
	b := decode(t, ".....", ".....", "..X..", ".....", ".....")
	c, ok := generate.Growth(context.Background(), b, board.Black, allEmpty(b), fixedSource(0))
	require.True(t, ok)

	newLib, _ := c.NewLiberties.V()
	oldLib, _ := c.OldLiberties.V()
	assert.Greater(t, newLib, 1)
	assert.GreaterOrEqual(t, newLib, oldLib)
}

func TestDefendRescuesAtariChain(t *testing.T) {
	// Black stone at (2,2) in atari (single liberty at (2,3)); White
	// stones on three sides.
	b := decode(t, ".....", "..O..", ".OX..", "..O..", ".....")
	c, ok := generate.Defend(context.Background(), b, board.Black, allEmpty(b), fixedSource(0))
	require.True(t, ok)

	old, _ := c.OldLiberties.V()
	assert.Equal(t, 1, old)
	assert.Equal(t, 2, c.Point.X)
	assert.Equal(t, 3, c.Point.Y)
}

func TestNewCaptureReturnsZeroLibertyResult(t *testing.T) {
	// White stone at (2,2) in atari, single liberty at (2,1).
	b := decode(t, ".....", "..X..", "..OX.", "..X..", ".....")
	capture := generate.NewCapture(true)
	c, ok := capture(context.Background(), b, board.Black, allEmpty(b), fixedSource(0))
	require.True(t, ok)

	newLib, _ := c.NewLiberties.V()
	assert.Equal(t, 0, newLib)
	assert.Equal(t, 2, c.Point.X)
	assert.Equal(t, 1, c.Point.Y)
}

func TestCornerReturnsInnerPointOfEmptyCorner(t *testing.T) {
	b, err := board.NewBoard(9)
	require.NoError(t, err)
	b.UpdateChains(true)

	c, ok := generate.Corner(context.Background(), b, board.Black, allEmpty(b), fixedSource(0))
	require.True(t, ok)
	assert.Equal(t, 6, c.Point.X)
	assert.Equal(t, 6, c.Point.Y)
}

func TestRandomDeclinesOnEmptyAvailableSet(t *testing.T) {
	b := decode(t, "...", "...", "...")
	_, ok := generate.Random(context.Background(), b, board.Black, nil, fixedSource(0))
	assert.False(t, ok)
}

func TestTableMemoizesGeneratorResult(t *testing.T) {
	b := decode(t, ".....", ".X...", ".....", ".....", ".....")
	table := generate.NewTable(context.Background(), b, board.Black, allEmpty(b), fixedSource(0), rng.Noop{}, true)

	first, ok1 := table.Get("expansion")
	second, ok2 := table.Get("expansion")
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, first, second)
}

type countingYielder struct{ n int }

func (y *countingYielder) Yield(context.Context) { y.n++ }

func TestTableYieldsOnEveryGetIncludingCacheHits(t *testing.T) {
	b := decode(t, ".....", ".X...", ".....", ".....", ".....")
	y := &countingYielder{}
	table := generate.NewTable(context.Background(), b, board.Black, allEmpty(b), fixedSource(0), y, true)

	table.Get("expansion")
	table.Get("expansion")
	table.Get("growth")
	assert.Equal(t, 3, y.n)
}
