package generate

import (
	"context"

	"github.com/nanogyth/go-bot/pkg/board"
	"github.com/nanogyth/go-bot/pkg/rng"
	"github.com/nanogyth/go-bot/pkg/territory"
)

// EyeMove considers, among friendly chains of length >1 not yet living, the
// liberties whose neighborhood has at least two non-opposing neighbors and
// at least one Empty neighbor; it plays each hypothetically and keeps those
// that strictly increase the living-group count, or increase the eye count
// without decreasing the living-group count. Candidates that create life sort first; the first
// survivor (by that order) is returned.
func EyeMove(ctx context.Context, b *board.Board, player board.Color, available []board.Point, src rng.Source) (Candidate, bool) {
	return eyeMoveWithMaxLiberties(ctx, b, player, available, src, 0)
}

// eyeMoveWithMaxLiberties is EyeMove generalized with an optional liberty
// cap on the candidate friendly chain (0 means no cap). EyeBlock does not
// call it: it runs its own scan for the opponent with a cap of 5.
func eyeMoveWithMaxLiberties(ctx context.Context, b *board.Board, player board.Color, available []board.Point, src rng.Source, maxLiberties int) (Candidate, bool) {
	avail := map[string]bool{}
	for _, p := range available {
		avail[p.ID()] = true
	}

	before := territory.Analyze(b)
	livingBefore := countLiving(before, b, player)
	eyesBefore := countEyes(before, b, player)

	var life, gain []Candidate
	seenChain := map[string]bool{}
	for _, p := range b.Points() {
		if p.Color != player || seenChain[p.Chain] {
			continue
		}
		seenChain[p.Chain] = true
		chainLen := chainLength(b, p.Chain)
		if chainLen <= 1 || before.IsLiving(p.Chain) {
			continue
		}
		if maxLiberties > 0 && len(p.Liberties) > maxLiberties {
			continue
		}

		for _, q := range p.Liberties {
			if !avail[q.ID()] {
				continue
			}
			if !eyeShapeCandidate(b, q, player) {
				continue
			}

			next, err := b.EvaluateMoveResult(ctx, q.X, q.Y, player)
			if err != nil {
				continue
			}
			after := territory.Analyze(next)
			livingAfter := countLiving(after, next, player)
			eyesAfter := countEyes(after, next, player)

			switch {
			case livingAfter > livingBefore:
				life = append(life, Candidate{Point: q, CreatesLife: true})
			case eyesAfter > eyesBefore && livingAfter >= livingBefore:
				gain = append(gain, Candidate{Point: q})
			}
		}
	}

	if len(life) > 0 {
		return life[0], true
	}
	if len(gain) > 0 {
		return gain[0], true
	}
	return Candidate{}, false
}

// EyeBlock runs EyeMove for the opponent with maxLiberties=5: if exactly one
// two-eye-creating move exists, that move (played by the current player to
// deny it) is returned; else if no two-eye move exists and exactly one
// one-eye move exists, that is returned; else null.
func EyeBlock(ctx context.Context, b *board.Board, player board.Color, available []board.Point, src rng.Source) (Candidate, bool) {
	opponent := player.Opponent()
	avail := map[string]bool{}
	for _, p := range available {
		avail[p.ID()] = true
	}

	before := territory.Analyze(b)
	livingBefore := countLiving(before, b, opponent)
	eyesBefore := countEyes(before, b, opponent)

	var twoEye, oneEye []board.Point
	seenChain := map[string]bool{}
	for _, p := range b.Points() {
		if p.Color != opponent || seenChain[p.Chain] {
			continue
		}
		seenChain[p.Chain] = true
		if chainLength(b, p.Chain) <= 1 || before.IsLiving(p.Chain) {
			continue
		}
		if len(p.Liberties) > 5 {
			continue
		}

		for _, q := range p.Liberties {
			if !avail[q.ID()] {
				continue
			}
			if !eyeShapeCandidate(b, q, opponent) {
				continue
			}

			next, err := b.EvaluateMoveResult(ctx, q.X, q.Y, opponent)
			if err != nil {
				continue
			}
			after := territory.Analyze(next)
			livingAfter := countLiving(after, next, opponent)
			eyesAfter := countEyes(after, next, opponent)

			switch {
			case livingAfter > livingBefore:
				twoEye = append(twoEye, q)
			case eyesAfter > eyesBefore && livingAfter >= livingBefore:
				oneEye = append(oneEye, q)
			}
		}
	}

	if len(twoEye) == 1 {
		return Candidate{Point: twoEye[0]}, true
	}
	if len(twoEye) == 0 && len(oneEye) == 1 {
		return Candidate{Point: oneEye[0]}, true
	}
	return Candidate{}, false
}

// eyeShapeCandidate reports whether q has at least two non-opposing
// neighbors (empty or same-color-as-chain, i.e. not the opponent of chain)
// and at least one Empty neighbor.
func eyeShapeCandidate(b *board.Board, q board.Point, chainColor board.Color) bool {
	nonOpposing, hasEmpty := 0, false
	for _, n := range b.Neighbors(q.X, q.Y) {
		if n.Color == board.Empty {
			hasEmpty = true
			nonOpposing++
			continue
		}
		if n.Color != chainColor.Opponent() {
			nonOpposing++
		}
	}
	return nonOpposing >= 2 && hasEmpty
}

func chainLength(b *board.Board, chainID string) int {
	n := 0
	for _, p := range b.Points() {
		if p.Chain == chainID {
			n++
		}
	}
	return n
}

func countLiving(a territory.Analysis, b *board.Board, color board.Color) int {
	n := 0
	seen := map[string]bool{}
	for _, p := range b.Points() {
		if p.Color != color || seen[p.Chain] {
			continue
		}
		seen[p.Chain] = true
		if a.IsLiving(p.Chain) {
			n++
		}
	}
	return n
}

func countEyes(a territory.Analysis, b *board.Board, color board.Color) int {
	n := 0
	seen := map[string]bool{}
	for _, p := range b.Points() {
		if p.Color != color || seen[p.Chain] {
			continue
		}
		seen[p.Chain] = true
		n += len(a.EyesByChain[p.Chain])
	}
	return n
}
