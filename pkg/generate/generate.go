// Package generate implements the decision core's move generators: each is
// a pure function of (board, player, availableSpaces, rng) returning at most
// one candidate move.
package generate

import (
	"context"

	"github.com/nanogyth/go-bot/pkg/board"
	"github.com/nanogyth/go-bot/pkg/rng"
	"github.com/seekerror/stdlib/pkg/lang"
)

// Candidate is a single generator's proposed move, together with whatever
// liberty bookkeeping produced it. OldLiberties and NewLiberties are unset
// for generators that don't reason about liberties (Expansion, Jump, Corner,
// Random).
type Candidate struct {
	Point board.Point

	OldLiberties lang.Optional[int]
	NewLiberties lang.Optional[int]

	// CreatesLife reports whether playing Point strictly increases the
	// mover's count of living (two-eyed) groups.
	CreatesLife bool
}

// Func is the shape every generator conforms to. It returns false when the
// generator has no candidate for this board. A plain function value rather
// than an interface hierarchy, since every generator needs exactly these
// five inputs and nothing more.
type Func func(ctx context.Context, b *board.Board, player board.Color, available []board.Point, src rng.Source) (Candidate, bool)

func containsPoint(pts []board.Point, p board.Point) bool {
	for _, q := range pts {
		if q.Equals(p) {
			return true
		}
	}
	return false
}

func hasAllEmptyNeighbors(b *board.Board, p board.Point) bool {
	neighbors := b.NeighborCoords(p.X, p.Y)
	if len(neighbors) < 4 {
		return false
	}
	for _, c := range neighbors {
		n, ok := b.At(c[0], c[1])
		if !ok || n.Color != board.Empty {
			return false
		}
	}
	return true
}

// friendlyNeighborChains returns the distinct friendly chains bordering p,
// deduplicated by chain id.
func friendlyNeighborChains(b *board.Board, p board.Point, player board.Color) []board.Point {
	seen := map[string]bool{}
	var reps []board.Point
	for _, n := range b.Neighbors(p.X, p.Y) {
		if n.Color == player && !seen[n.Chain] {
			seen[n.Chain] = true
			reps = append(reps, n)
		}
	}
	return reps
}

// hypotheticalLiberties computes the new-liberty-count and old-liberty-count
// for playing at q for player: new liberties are the union of q's own empty
// orthogonal neighbors (excluding q) and the current liberties of q's
// friendly orthogonal neighbor chains; old liberties is the minimum
// current-liberty-count across those chains, or 99 if q borders no friendly
// chain.
func hypotheticalLiberties(b *board.Board, q board.Point, player board.Color) (newLib, oldLib int) {
	newSet := map[string]bool{}
	for _, c := range b.NeighborCoords(q.X, q.Y) {
		n, ok := b.At(c[0], c[1])
		if ok && n.Color == board.Empty {
			newSet[n.ID()] = true
		}
	}

	oldLib = 99
	for _, chain := range friendlyNeighborChains(b, q, player) {
		lib := 0
		for _, l := range chain.Liberties {
			if !l.Equals(q) {
				newSet[l.ID()] = true
			}
			lib++
		}
		if lib < oldLib {
			oldLib = lib
		}
	}
	return len(newSet), oldLib
}
