package board_test

import (
	"context"
	"testing"

	"github.com/nanogyth/go-bot/pkg/board"
	"github.com/nanogyth/go-bot/pkg/board/simple"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rows ...string) *board.Board {
	t.Helper()
	b, err := simple.Decode(context.Background(), simple.Board(rows))
	require.NoError(t, err)
	return b
}

func TestUpdateChainsConnectedComponents(t *testing.T) {
	// columns (x): "XX.", "X.O", "..." -- (0,0)(0,1) and (1,0) are Black and
	// orthogonally connected; (1,2) is a lone White stone.
	b := decode(t, "XX.", "X.O", "...")

	p00, ok := b.At(0, 0)
	require.True(t, ok)
	p10, ok := b.At(1, 0)
	require.True(t, ok)
	p01, ok := b.At(0, 1)
	require.True(t, ok)
	p12, ok := b.At(1, 2)
	require.True(t, ok)

	assert.Equal(t, p00.Chain, p10.Chain, "orthogonally connected same-color stones share a chain")
	assert.Equal(t, p00.Chain, p01.Chain)
	assert.NotEqual(t, p00.Chain, p12.Chain, "different colors never share a chain")
}

func TestUpdateChainsLiberties(t *testing.T) {
	// single Black stone at (1,1) on a 3x3, with four empty neighbors.
	b := decode(t, "...", ".X.", "...")

	p, ok := b.At(1, 1)
	require.True(t, ok)
	assert.Len(t, p.Liberties, 4)
}

func TestEvaluateMoveResultDoesNotMutateInput(t *testing.T) {
	b := decode(t, "...", "...", "...")
	before := b.Copy()

	ctx := context.Background()
	_, err := b.EvaluateMoveResult(ctx, 1, 1, board.Black)
	require.NoError(t, err)

	assert.True(t, b.Equals(before), "EvaluateMoveResult must not mutate its input board")
}

func TestCapturePriorityOverSuicide(t *testing.T) {
	// A single Black stone at the center of a 3x3 ring of White stones missing
	// one link at (2,1). The ring's only liberty and Black's only liberty are
	// the same point. White plays there: White's own ring would have zero
	// liberties too, but capturing Black takes priority, so Black is removed
	// and White's ring survives via the freed center point.
	b := decode(t, "OOO", "OXO", "O.O")

	next, err := b.EvaluateMoveResult(context.Background(), 2, 1, board.White)
	require.NoError(t, err)

	center, ok := next.At(1, 1)
	require.True(t, ok)
	assert.Equal(t, board.Empty, center.Color, "captured Black stone should be removed")

	placed, ok := next.At(2, 1)
	require.True(t, ok)
	assert.Equal(t, board.White, placed.Color, "the placing White stone survives via the freed liberty")
}

func TestSuicideRemovedWhenNoCapture(t *testing.T) {
	// Black plays into a point surrounded by four separate White stones, each
	// of which keeps its own liberties elsewhere -- so nothing is captured
	// and Black's stone is removed as suicide.
	b := decode(t, ".....", "..O..", ".O.O.", "..O..", ".....")

	next, err := b.EvaluateMoveResult(context.Background(), 2, 2, board.Black)
	require.NoError(t, err)

	p, ok := next.At(2, 2)
	require.True(t, ok)
	assert.Equal(t, board.Empty, p.Color, "suicide move is removed when no capture occurs")

	survivor, ok := next.At(2, 1)
	require.True(t, ok)
	assert.Equal(t, board.White, survivor.Color, "uninvolved White stones are unaffected")
}

func TestAbsentCellsBlockFlood(t *testing.T) {
	// Black stones at (0,0) and (2,0), with a hole at (1,0) between them.
	b := decode(t, "X..", "#..", "X..")

	p0, ok := b.At(0, 0)
	require.True(t, ok)
	p2, ok := b.At(2, 0)
	require.True(t, ok)
	assert.NotEqual(t, p0.Chain, p2.Chain, "a hole blocks the flood fill between same-color stones")

	_, ok = b.At(1, 0)
	assert.False(t, ok, "a hole is not a present point")
}
