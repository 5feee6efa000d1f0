package legality_test

import (
	"context"
	"testing"

	"github.com/nanogyth/go-bot/pkg/board"
	"github.com/nanogyth/go-bot/pkg/board/simple"
	"github.com/nanogyth/go-bot/pkg/legality"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rows ...string) *board.Board {
	t.Helper()
	b, err := simple.Decode(context.Background(), simple.Board(rows))
	require.NoError(t, err)
	return b
}

func TestGameOver(t *testing.T) {
	b := decode(t, "...", "...", "...")
	state := board.State{Board: b, PreviousPlayer: board.Empty}

	got := legality.Evaluate(context.Background(), state, 1, 1, board.Black, true)
	assert.Equal(t, legality.GameOver, got)
}

func TestNotYourTurn(t *testing.T) {
	b := decode(t, "...", "...", "...")
	state := board.State{Board: b, PreviousPlayer: board.Black}

	got := legality.Evaluate(context.Background(), state, 1, 1, board.Black, true)
	assert.Equal(t, legality.NotYourTurn, got)
}

func TestPointBroken(t *testing.T) {
	b := decode(t, "X..", "#..", "X..")
	state := board.State{Board: b, PreviousPlayer: board.White}

	got := legality.Evaluate(context.Background(), state, 1, 0, board.Black, true)
	assert.Equal(t, legality.PointBroken, got)
}

func TestPointNotEmpty(t *testing.T) {
	b := decode(t, "X..", "...", "...")
	state := board.State{Board: b, PreviousPlayer: board.White}

	got := legality.Evaluate(context.Background(), state, 0, 0, board.Black, true)
	assert.Equal(t, legality.PointNotEmpty, got)
}

func TestNoSuicide(t *testing.T) {
	// Black plays into a point surrounded by independently-alive White stones.
	b := decode(t, ".....", "..O..", ".O.O.", "..O..", ".....")
	state := board.State{Board: b, PreviousPlayer: board.White}

	got := legality.Evaluate(context.Background(), state, 2, 2, board.Black, true)
	assert.Equal(t, legality.NoSuicide, got)
}

func TestCaptureOfStoneInAtariIsValid(t *testing.T) {
	// 5x5, single White stone at (2,2) in atari with its only liberty at
	// (2,1); Black plays there to capture.
	b := decode(t, ".....", "..X..", "..OX.", "..X..", ".....")
	state := board.State{Board: b, PreviousPlayer: board.White}

	got := legality.Evaluate(context.Background(), state, 2, 1, board.Black, true)
	assert.Equal(t, legality.Valid, got)
}

func TestSuperkoBlocksSlowPath(t *testing.T) {
	// Classic ko shape: White(2,2) sits in atari with its only liberty at
	// (2,1), itself guarded by three independent White stones. Black
	// capturing at (2,1) reaches a position that, once already visited,
	// must be refused on replay.
	b := decode(t, ".....", ".OX..", "O.OX.", ".OX..", ".....")
	ctx := context.Background()

	next, err := b.EvaluateMoveResult(ctx, 2, 1, board.Black) // Black captures White(2,2)
	require.NoError(t, err)

	state := board.State{
		Board:          b,
		PreviousPlayer: board.White,
		PreviousBoards: []string{next.Key()},
	}

	got := legality.Evaluate(ctx, state, 2, 1, board.Black, false)
	assert.Equal(t, legality.BoardRepeated, got)
}
