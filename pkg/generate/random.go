package generate

import (
	"context"

	"github.com/nanogyth/go-bot/pkg/board"
	"github.com/nanogyth/go-bot/pkg/rng"
)

// Random picks uniformly over availableSpaces, but only when availableSpaces
// is non-empty -- an empty set means passing is equivalent, so Random
// declines rather than manufacture a pointless move.
func Random(ctx context.Context, b *board.Board, player board.Color, available []board.Point, src rng.Source) (Candidate, bool) {
	if len(available) == 0 {
		return Candidate{}, false
	}
	return Candidate{Point: rng.Choice(src, available)}, true
}
