package generate

import (
	"context"

	"github.com/nanogyth/go-bot/pkg/board"
	"github.com/nanogyth/go-bot/pkg/rng"
)

// Expansion picks uniformly among empty points all four of whose orthogonal
// neighbors are Empty. If none exist, it falls back to available points
// that belong to an Empty chain of size 1 (a lone isolated empty point).
func Expansion(ctx context.Context, b *board.Board, player board.Color, available []board.Point, src rng.Source) (Candidate, bool) {
	candidates := expansionCandidates(b, available)
	if len(candidates) == 0 {
		return Candidate{}, false
	}
	return Candidate{Point: rng.Choice(src, candidates)}, true
}

func expansionCandidates(b *board.Board, available []board.Point) []board.Point {
	var wide []board.Point
	for _, p := range available {
		if p.Color == board.Empty && hasAllEmptyNeighbors(b, p) {
			wide = append(wide, p)
		}
	}
	if len(wide) > 0 {
		return wide
	}

	chainSize := map[string]int{}
	for _, p := range b.Points() {
		if p.Color == board.Empty {
			chainSize[p.Chain]++
		}
	}

	var lone []board.Point
	for _, p := range available {
		if p.Color == board.Empty && chainSize[p.Chain] == 1 {
			lone = append(lone, p)
		}
	}
	return lone
}

// Jump picks uniformly among Expansion candidates that have a friendly stone
// exactly two cells away orthogonally.
func Jump(ctx context.Context, b *board.Board, player board.Color, available []board.Point, src rng.Source) (Candidate, bool) {
	var jumps []board.Point
	for _, p := range expansionCandidates(b, available) {
		if hasFriendlyJumpNeighbor(b, p, player) {
			jumps = append(jumps, p)
		}
	}
	if len(jumps) == 0 {
		return Candidate{}, false
	}
	return Candidate{Point: rng.Choice(src, jumps)}, true
}

func hasFriendlyJumpNeighbor(b *board.Board, p board.Point, player board.Color) bool {
	for _, d := range [][2]int{{0, 2}, {0, -2}, {2, 0}, {-2, 0}} {
		x, y := p.X+d[0], p.Y+d[1]
		if n, ok := b.At(x, y); ok && n.Color == player {
			return true
		}
	}
	return false
}
