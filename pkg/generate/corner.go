package generate

import (
	"context"

	"github.com/nanogyth/go-bot/pkg/board"
	"github.com/nanogyth/go-bot/pkg/rng"
)

type cornerBox struct {
	minX, minY, maxX, maxY int
	inner                  [2]int
}

// Corner checks the board's four 3x3 corners in a fixed order and returns
// the inner point of the first one that has at least 7 non-absent cells and
// zero stones.
func Corner(ctx context.Context, b *board.Board, player board.Color, available []board.Point, src rng.Source) (Candidate, bool) {
	m := b.Size - 3
	corners := []cornerBox{
		{m, m, b.Size - 1, b.Size - 1, [2]int{m, m}},
		{0, m, 2, b.Size - 1, [2]int{2, m}},
		{0, 0, 2, 2, [2]int{2, 2}},
		{m, 0, b.Size - 1, 2, [2]int{m, 2}},
	}

	for _, c := range corners {
		live, stones := 0, 0
		for x := c.minX; x <= c.maxX; x++ {
			for y := c.minY; y <= c.maxY; y++ {
				p, ok := b.At(x, y)
				if !ok {
					continue
				}
				live++
				if p.Color != board.Empty {
					stones++
				}
			}
		}
		if live >= 7 && stones == 0 {
			p, ok := b.At(c.inner[0], c.inner[1])
			if !ok {
				continue
			}
			return Candidate{Point: p}, true
		}
	}
	return Candidate{}, false
}
