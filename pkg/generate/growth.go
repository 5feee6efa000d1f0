package generate

import (
	"context"

	"github.com/nanogyth/go-bot/pkg/board"
	"github.com/nanogyth/go-bot/pkg/rng"
	"github.com/seekerror/stdlib/pkg/lang"
)

// Growth considers every liberty in availableSpaces of every friendly
// chain, keeps those that strictly don't shrink the chain below two
// liberties, and picks uniformly among those maximizing the liberty gain.
func Growth(ctx context.Context, b *board.Board, player board.Color, available []board.Point, src rng.Source) (Candidate, bool) {
	return pickBestGrowth(b, player, available, src, func(newLib, oldLib int) bool {
		return newLib > 1 && newLib >= oldLib
	})
}

// Defend is Growth restricted to chains already in atari (oldLib<=1) that
// can actually improve their liberty count.
func Defend(ctx context.Context, b *board.Board, player board.Color, available []board.Point, src rng.Source) (Candidate, bool) {
	return pickBestGrowth(b, player, available, src, func(newLib, oldLib int) bool {
		return oldLib <= 1 && newLib > oldLib
	})
}

func pickBestGrowth(b *board.Board, player board.Color, available []board.Point, src rng.Source, keep func(newLib, oldLib int) bool) (Candidate, bool) {
	friendlyLiberties := collectFriendlyLiberties(b, player, available)

	var best []Candidate
	bestGain := -1
	for _, q := range friendlyLiberties {
		newLib, oldLib := hypotheticalLiberties(b, q, player)
		if !keep(newLib, oldLib) {
			continue
		}
		gain := newLib - oldLib
		switch {
		case gain > bestGain:
			bestGain = gain
			best = []Candidate{{Point: q, OldLiberties: lang.Some(oldLib), NewLiberties: lang.Some(newLib)}}
		case gain == bestGain:
			best = append(best, Candidate{Point: q, OldLiberties: lang.Some(oldLib), NewLiberties: lang.Some(newLib)})
		}
	}
	if len(best) == 0 {
		return Candidate{}, false
	}
	return rng.Choice(src, best), true
}

// collectFriendlyLiberties returns, deduplicated, every liberty in
// available of every friendly chain on the board.
func collectFriendlyLiberties(b *board.Board, player board.Color, available []board.Point) []board.Point {
	avail := map[string]bool{}
	for _, p := range available {
		avail[p.ID()] = true
	}

	seenChain := map[string]bool{}
	seenLib := map[string]bool{}
	var ret []board.Point
	for _, p := range b.Points() {
		if p.Color != player || seenChain[p.Chain] {
			continue
		}
		seenChain[p.Chain] = true
		for _, l := range p.Liberties {
			if avail[l.ID()] && !seenLib[l.ID()] {
				seenLib[l.ID()] = true
				ret = append(ret, l)
			}
		}
	}
	return ret
}
