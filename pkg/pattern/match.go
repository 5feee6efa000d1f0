package pattern

import (
	"context"

	"github.com/nanogyth/go-bot/pkg/board"
	"github.com/nanogyth/go-bot/pkg/rng"
)

// matches reports whether pattern p matches the 3x3 neighborhood of (x,y)
// for the given player (X) versus opponent (O). Row 0 of p is the top
// (y+1); column 0 is the left (x-1).
func matches(p Pattern, b *board.Board, x, y int, player board.Color) bool {
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			pc := cellAt(p[row], col)
			wx, wy := x+(col-1), y+(1-row)
			if !cellMatches(pc, b, wx, wy, player) {
				return false
			}
		}
	}
	return true
}

func cellMatches(pc rune, b *board.Board, x, y int, player board.Color) bool {
	if pc == Any {
		return true
	}

	cell, ok := b.At(x, y)
	switch pc {
	case OffBoard:
		return !ok
	case EmptyCell:
		return ok && cell.Color == board.Empty
	case Player:
		return ok && cell.Color == player
	case Opponent:
		return ok && cell.Color == player.Opponent()
	case NotOpponent:
		return ok && cell.Color != player.Opponent()
	case NotPlayer:
		return ok && cell.Color != player
	default:
		// Includes the comma filler produced by the unfixed horizontal
		// mirror and any out-of-range sentinel: never matches.
		return false
	}
}

// Match scans every non-absent cell in available and attempts every
// pattern in the catalog against its 3x3 neighborhood. If smart, a
// matching cell is additionally required to yield more than one effective
// (hypothetical) liberty when played. Match returns a uniformly random
// survivor. available is assumed to be in column-major order (as produced
// by board.Points() and its derivatives); yielder gets a chance to suspend
// once per column, the scan's outer dimension.
func Match(ctx context.Context, c *Catalog, b *board.Board, player board.Color, available []board.Point, smart bool, src rng.Source, yielder rng.Yielder) (board.Point, bool) {
	var hits []board.Point
	col, haveCol := 0, false
	for _, p := range available {
		if !haveCol || p.X != col {
			yielder.Yield(ctx)
			col, haveCol = p.X, true
		}
		if b.IsAbsent(p.X, p.Y) {
			continue
		}
		matched := false
		for _, pat := range c.Patterns() {
			if matches(pat, b, p.X, p.Y, player) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		if smart && effectiveLiberties(b, p, player) <= 1 {
			continue
		}
		hits = append(hits, p)
	}
	if len(hits) == 0 {
		return board.Point{}, false
	}
	return rng.Choice(src, hits), true
}

// effectiveLiberties counts the empty orthogonal neighbors of p plus the
// liberties of friendly orthogonal chains (minus p itself) -- the same
// hypothetical-liberty notion as the Growth generator's new-liberty count.
func effectiveLiberties(b *board.Board, p board.Point, player board.Color) int {
	set := map[string]bool{}
	for _, c := range b.NeighborCoords(p.X, p.Y) {
		n, ok := b.At(c[0], c[1])
		if ok && n.Color == board.Empty {
			set[n.ID()] = true
		}
	}
	for _, n := range b.Neighbors(p.X, p.Y) {
		if n.Color != player {
			continue
		}
		for _, l := range n.Liberties {
			if !l.Equals(p) {
				set[l.ID()] = true
			}
		}
	}
	return len(set)
}
