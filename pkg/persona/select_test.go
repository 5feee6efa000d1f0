package persona_test

import (
	"context"
	"testing"

	"github.com/nanogyth/go-bot/pkg/board"
	"github.com/nanogyth/go-bot/pkg/board/simple"
	"github.com/nanogyth/go-bot/pkg/generate"
	"github.com/nanogyth/go-bot/pkg/persona"
	"github.com/nanogyth/go-bot/pkg/rng"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

func decode(t *testing.T, rows ...string) *board.Board {
	t.Helper()
	b, err := simple.Decode(context.Background(), simple.Board(rows))
	require.NoError(t, err)
	return b
}

func TestSelectIlluminatiPrefersCapture(t *testing.T) {
	b := decode(t, ".....", ".....", ".....", ".....", ".....")
	table := generate.NewTable(context.Background(), b, board.Black, b.Points(), fixedSource(0), rng.Noop{}, true)
	table.Register("capture", fixedCandidate(board.Point{X: 0, Y: 0}))
	table.Register("defendCapture", fixedCandidate(board.Point{X: 1, Y: 1}))

	p, ok := persona.SelectMove(context.Background(), persona.Illuminati, table, fixedSource(0))
	require.True(t, ok)
	assert.Equal(t, board.Point{X: 0, Y: 0}, p)
}

func TestSelectIlluminatiFallsThroughToPatternWhenNothingElseFires(t *testing.T) {
	b := decode(t, ".....", ".....", ".....", ".....", ".....")
	table := generate.NewTable(context.Background(), b, board.Black, b.Points(), fixedSource(0), rng.Noop{}, true)
	table.Register("corner", func(ctx context.Context, b *board.Board, player board.Color, available []board.Point, src rng.Source) (generate.Candidate, bool) {
		return generate.Candidate{}, false
	})
	table.Register("pattern", fixedCandidate(board.Point{X: 3, Y: 3}))

	p, ok := persona.SelectMove(context.Background(), persona.Illuminati, table, fixedSource(0.9))
	require.True(t, ok)
	assert.Equal(t, board.Point{X: 3, Y: 3}, p)
}

func TestSelectDaedalusDefersToIlluminatiBelowThreshold(t *testing.T) {
	b := decode(t, ".....", ".....", ".....", ".....", ".....")
	table := generate.NewTable(context.Background(), b, board.Black, b.Points(), fixedSource(0), rng.Noop{}, true)
	table.Register("capture", fixedCandidate(board.Point{X: 2, Y: 2}))

	p, ok := persona.SelectMove(context.Background(), persona.Daedalus, table, fixedSource(0.1))
	require.True(t, ok)
	assert.Equal(t, board.Point{X: 2, Y: 2}, p)
}

func TestSelectDaedalusDeclinesAboveThreshold(t *testing.T) {
	b := decode(t, ".....", ".....", ".....", ".....", ".....")
	table := generate.NewTable(context.Background(), b, board.Black, b.Points(), fixedSource(0), rng.Noop{}, true)
	table.Register("capture", fixedCandidate(board.Point{X: 2, Y: 2}))

	_, ok := persona.SelectMove(context.Background(), persona.Daedalus, table, fixedSource(0.95))
	assert.False(t, ok)
}

func TestSelectTheBlackHandChecksSurroundBeforeDefendCapture(t *testing.T) {
	b := decode(t, ".....", ".....", ".....", ".....", ".....")
	table := generate.NewTable(context.Background(), b, board.Black, b.Points(), fixedSource(0), rng.Noop{}, true)
	table.Register("surround", func(ctx context.Context, b *board.Board, player board.Color, available []board.Point, src rng.Source) (generate.Candidate, bool) {
		return generate.Candidate{Point: board.Point{X: 4, Y: 4}, NewLiberties: lang.Some(1)}, true
	})
	table.Register("defendCapture", fixedCandidate(board.Point{X: 0, Y: 0}))

	p, ok := persona.SelectMove(context.Background(), persona.TheBlackHand, table, fixedSource(0))
	require.True(t, ok)
	assert.Equal(t, board.Point{X: 4, Y: 4}, p)
}

func TestSelectNetburnersFallsBackToRandom(t *testing.T) {
	b := decode(t, ".....", ".....", ".....", ".....", ".....")
	table := generate.NewTable(context.Background(), b, board.Black, b.Points(), fixedSource(0), rng.Noop{}, true)
	table.Register("random", fixedCandidate(board.Point{X: 1, Y: 0}))

	p, ok := persona.SelectMove(context.Background(), persona.Netburners, table, fixedSource(0.7))
	require.True(t, ok)
	assert.Equal(t, board.Point{X: 1, Y: 0}, p)
}

func fixedCandidate(p board.Point) generate.Func {
	return func(ctx context.Context, b *board.Board, player board.Color, available []board.Point, src rng.Source) (generate.Candidate, bool) {
		return generate.Candidate{Point: p}, true
	}
}
