package generate

import (
	"context"

	"github.com/nanogyth/go-bot/pkg/board"
	"github.com/nanogyth/go-bot/pkg/rng"
	"github.com/seekerror/stdlib/pkg/lang"
)

type surroundClass int

const (
	classNone surroundClass = iota
	classCapture
	classAtari
	classSurround
)

type surroundCandidate struct {
	class  surroundClass
	point  board.Point
	oldLib int
	newLib int
}

// NewSurround returns a Surround generator for the given decision's smart
// flag, baked in once per decision rather than threaded through every call,
// matching the per-decision memoized generator table's construction-time
// binding.
//
// Surround considers, for each enemy chain liberty in availableSpaces, the
// hypothetical newLibertyCount of playing there and classifies the move
// against the weakest bordering enemy chain. It returns the first Capture,
// else the first Atari, else the first Surround (by scan order); ties are
// not randomized -- the first match by scan order wins.
func NewSurround(smart bool) Func {
	return func(ctx context.Context, b *board.Board, player board.Color, available []board.Point, src rng.Source) (Candidate, bool) {
		return surroundWithSmart(b, player, available, smart)
	}
}

// NewCapture is the Surround result restricted to moves that fully remove
// the weakest enemy chain (newLib==0).
func NewCapture(smart bool) Func {
	surround := NewSurround(smart)
	return func(ctx context.Context, b *board.Board, player board.Color, available []board.Point, src rng.Source) (Candidate, bool) {
		c, ok := surround(ctx, b, player, available, src)
		if !ok {
			return Candidate{}, false
		}
		if newLib, _ := c.NewLiberties.V(); newLib != 0 {
			return Candidate{}, false
		}
		return c, true
	}
}

// DefendCapture is the Defend result restricted to moves that rescue a
// chain from atari (oldLib==1) to safety (newLib>1).
func DefendCapture(ctx context.Context, b *board.Board, player board.Color, available []board.Point, src rng.Source) (Candidate, bool) {
	c, ok := Defend(ctx, b, player, available, src)
	if !ok {
		return Candidate{}, false
	}
	old, _ := c.OldLiberties.V()
	updated, _ := c.NewLiberties.V()
	if old != 1 || updated <= 1 {
		return Candidate{}, false
	}
	return c, true
}

func surroundWithSmart(b *board.Board, player board.Color, available []board.Point, smart bool) (Candidate, bool) {
	avail := map[string]bool{}
	for _, p := range available {
		avail[p.ID()] = true
	}

	opponent := player.Opponent()
	seenLib := map[string]bool{}
	var candidates []surroundCandidate

	for _, p := range b.Points() {
		if p.Color != opponent {
			continue
		}
		for _, q := range p.Liberties {
			if !avail[q.ID()] || seenLib[q.ID()] {
				continue
			}
			seenLib[q.ID()] = true

			weakest, ok := weakestEnemyNeighborChain(b, q, opponent)
			if !ok {
				continue
			}
			newLib, _ := hypotheticalLiberties(b, q, player)
			enemyLib := len(weakest.Liberties)
			enemyNewLib := enemyLib - 1

			class := classifySurround(enemyLib, enemyNewLib, newLib, weakest, b, smart)
			if class == classNone {
				continue
			}
			candidates = append(candidates, surroundCandidate{
				class:  class,
				point:  q,
				oldLib: enemyLib,
				newLib: enemyNewLib,
			})
		}
	}

	for _, want := range []surroundClass{classCapture, classAtari, classSurround} {
		for _, c := range candidates {
			if c.class == want {
				return Candidate{
					Point:        c.point,
					OldLiberties: lang.Some(c.oldLib),
					NewLiberties: lang.Some(c.newLib),
				}, true
			}
		}
	}
	return Candidate{}, false
}

// weakestEnemyNeighborChain returns a representative point of the enemy
// chain bordering q with the fewest liberties.
func weakestEnemyNeighborChain(b *board.Board, q board.Point, opponent board.Color) (board.Point, bool) {
	seen := map[string]bool{}
	var weakest board.Point
	found := false
	for _, n := range b.Neighbors(q.X, q.Y) {
		if n.Color != opponent || seen[n.Chain] {
			continue
		}
		seen[n.Chain] = true
		if !found || len(n.Liberties) < len(weakest.Liberties) {
			weakest = n
			found = true
		}
	}
	return weakest, found
}

func classifySurround(enemyLib, enemyNewLib, newLib int, weakest board.Point, b *board.Board, smart bool) surroundClass {
	if enemyLib <= 1 {
		return classCapture
	}
	if enemyLib == 2 {
		libertyGroupCount, weakestLen := enemyLibertyGroupStats(b, weakest)
		if newLib >= 2 || (libertyGroupCount == 1 && weakestLen > 3) || !smart {
			return classAtari
		}
	}
	if newLib <= 2 && enemyLib > 2 {
		return classNone
	}
	if newLib >= 2 {
		return classSurround
	}
	return classNone
}

// enemyLibertyGroupStats returns the number of distinct liberties the
// weakest chain has and the chain's stone count.
func enemyLibertyGroupStats(b *board.Board, weakest board.Point) (libertyGroupCount, chainLen int) {
	seenLib := map[string]bool{}
	for _, p := range b.Points() {
		if p.Chain != weakest.Chain {
			continue
		}
		chainLen++
		for _, l := range p.Liberties {
			seenLib[l.ID()] = true
		}
	}
	return len(seenLib), chainLen
}
