package board

import (
	"context"
	"fmt"
	"sort"

	"github.com/seekerror/logw"
)

type coord = [2]int

// UpdateChains assigns chain ids and liberty lists to every non-absent point.
// Traversal is column-major (x outer, y inner), so results are a deterministic
// function of the board layout. If resetFirst, all existing chain/liberty
// state is cleared before recomputing; otherwise only unassigned points
// (Chain == "") are flood-filled, which is cheaper when the board is mostly
// already up to date.
func (b *Board) UpdateChains(resetFirst bool) {
	if resetFirst {
		for x := 0; x < b.Size; x++ {
			for y := 0; y < b.Size; y++ {
				if p := b.cells[x][y]; p != nil {
					p.Chain = ""
					p.Liberties = nil
				}
			}
		}
	}

	for x := 0; x < b.Size; x++ {
		for y := 0; y < b.Size; y++ {
			p := b.cells[x][y]
			if p == nil || p.Chain != "" {
				continue
			}
			b.floodAssign(x, y)
		}
	}
}

// floodAssign flood-fills the same-color (or all-empty) chain originating at
// (sx,sy), assigning it the canonical "x,y" chain id and computing its
// liberties as the set of empty orthogonal neighbors of the whole chain.
func (b *Board) floodAssign(sx, sy int) {
	color := b.cells[sx][sy].Color
	id := fmt.Sprintf("%v,%v", sx, sy)

	var members []coord
	liberties := map[coord]bool{}
	visited := map[coord]bool{{sx, sy}: true}
	queue := []coord{{sx, sy}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		members = append(members, cur)

		for _, n := range b.NeighborCoords(cur[0], cur[1]) {
			np := b.cells[n[0]][n[1]]
			if np == nil {
				continue // absent cells block flood
			}
			switch {
			case np.Color == color:
				if !visited[n] {
					visited[n] = true
					queue = append(queue, n)
				}
			case color != Empty && np.Color == Empty:
				liberties[n] = true
			}
		}
	}

	keys := make([]coord, 0, len(liberties))
	for k := range liberties {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})

	libs := make([]Point, 0, len(keys))
	for _, k := range keys {
		libs = append(libs, *b.cells[k[0]][k[1]])
	}

	for _, m := range members {
		mp := b.cells[m[0]][m[1]]
		mp.Chain = id
		mp.Liberties = libs
	}
}

// chainsOf groups every current point of the given color into its distinct
// chains (by chain id), in first-encountered (column-major) order.
func (b *Board) chainsOf(color Color) [][]Point {
	var order []string
	groups := map[string][]Point{}
	for _, p := range b.Points() {
		if p.Color != color {
			continue
		}
		if _, ok := groups[p.Chain]; !ok {
			order = append(order, p.Chain)
		}
		groups[p.Chain] = append(groups[p.Chain], p)
	}

	ret := make([][]Point, 0, len(order))
	for _, id := range order {
		ret = append(ret, groups[id])
	}
	return ret
}

// zeroLibertyChains returns the chains of the given color with no liberties.
func (b *Board) zeroLibertyChains(color Color) [][]Point {
	var ret [][]Point
	for _, chain := range b.chainsOf(color) {
		if len(chain[0].Liberties) == 0 {
			ret = append(ret, chain)
		}
	}
	return ret
}

// UpdateCaptures refreshes chains and then removes chains left with zero
// liberties, giving capture priority over suicide: opposing zero-liberty
// chains are removed first, and a friendly zero-liberty chain is only
// removed if no opposing chain was captured. Returns the captured points
// (nil if none -- equivalent to an empty list for all callers).
func (b *Board) UpdateCaptures(ctx context.Context, playerWhoMoved Color) []Point {
	b.UpdateChains(true)

	var captured []Point
	opponentDead := b.zeroLibertyChains(playerWhoMoved.Opponent())
	if len(opponentDead) > 0 {
		for _, chain := range opponentDead {
			captured = append(captured, chain...)
		}
	} else {
		for _, chain := range b.zeroLibertyChains(playerWhoMoved) {
			captured = append(captured, chain...)
		}
	}

	for _, p := range captured {
		b.SetColor(p.X, p.Y, Empty)
	}
	if len(captured) > 0 {
		b.UpdateChains(true)
		logw.Debugf(ctx, "captured %v stones", len(captured))
	}
	return captured
}

// EvaluateMoveResult returns a new board reflecting a hypothetical placement
// of player's stone at (x,y) and any resulting captures. The receiver is
// never mutated. An error is returned if (x,y) is absent or already occupied
// -- legality beyond that is the adjudicator's concern, not this function's.
func (b *Board) EvaluateMoveResult(ctx context.Context, x, y int, player Color) (*Board, error) {
	p, ok := b.At(x, y)
	if !ok {
		return nil, fmt.Errorf("board: (%v,%v) is absent", x, y)
	}
	if p.Color != Empty {
		return nil, fmt.Errorf("board: (%v,%v) is not empty", x, y)
	}

	next := b.Copy()
	next.SetColor(x, y, player)
	next.UpdateCaptures(ctx, player)
	return next, nil
}
