// Package legality adjudicates the validity of a hypothetical move against a
// board.State: superko, suicide, turn order and game-over rules.
package legality

import (
	"context"

	"github.com/nanogyth/go-bot/pkg/board"
)

// Status classifies a hypothetical move. Only Valid permits playing it.
type Status int

const (
	Valid Status = iota
	GameOver
	NotYourTurn
	PointBroken
	PointNotEmpty
	NoSuicide
	BoardRepeated
)

func (s Status) String() string {
	switch s {
	case Valid:
		return "valid"
	case GameOver:
		return "gameOver"
	case NotYourTurn:
		return "notYourTurn"
	case PointBroken:
		return "pointBroken"
	case PointNotEmpty:
		return "pointNotEmpty"
	case NoSuicide:
		return "noSuicide"
	case BoardRepeated:
		return "boardRepeated"
	default:
		return "invalid"
	}
}

// Evaluate classifies playing player's stone at (x,y) against state. With
// fastPath (the default), a cheap, sufficient-but-not-exhaustive superko
// check is used, tolerating a one-position superko window in exchange for
// materializing a hypothetical board only when a cheap check collides with a
// recorded prior position; without it, the move is fully
// simulated via board.EvaluateMoveResult and compared against every recorded
// prior position.
//
// Evaluate is a pure, total function of its inputs: it never mutates state
// and never panics on a well-formed state (a malformed one -- e.g. a nil
// Board -- is a programming error, not a user-triggerable condition).
func Evaluate(ctx context.Context, state board.State, x, y int, player board.Color, fastPath bool) Status {
	if state.IsGameOver() {
		return GameOver
	}
	if state.PreviousPlayer == player {
		return NotYourTurn
	}

	b := state.Board
	if b.IsAbsent(x, y) {
		return PointBroken
	}
	p, ok := b.At(x, y)
	if !ok {
		return PointBroken
	}
	if p.Color != board.Empty {
		return PointNotEmpty
	}

	if fastPath {
		return evaluateFastPath(ctx, state, x, y, player)
	}
	return evaluateSlowPath(ctx, state, x, y, player)
}

// evaluateFastPath runs five ordered, cheap checks against local chain and
// liberty state. A superko collision that isn't otherwise suicide is not
// resolvable by the fast path alone; it falls through to the slow path
// rather than risk a wrong answer.
func evaluateFastPath(ctx context.Context, state board.State, x, y int, player board.Color) Status {
	b := state.Board
	superkoMatch := recordedPlayerStoneAt(state, x, y, player)

	hasEmptyNeighbor := false
	for _, n := range b.Neighbors(x, y) {
		if n.Color == board.Empty {
			hasEmptyNeighbor = true
			break
		}
	}
	if hasEmptyNeighbor && !superkoMatch {
		return Valid
	}

	friendlyChainWithSpareLiberty := false
	for _, n := range b.Neighbors(x, y) {
		if n.Color == player && len(n.Liberties) > 1 {
			friendlyChainWithSpareLiberty = true
			break
		}
	}
	if friendlyChainWithSpareLiberty && !superkoMatch {
		return Valid
	}

	capturesOpponent := false
	for _, n := range b.Neighbors(x, y) {
		if n.Color == player.Opponent() && len(n.Liberties) <= 1 {
			capturesOpponent = true
			break
		}
	}
	if capturesOpponent && !superkoMatch {
		return Valid
	}

	if !hasEmptyNeighbor && !capturesOpponent && !friendlyChainWithSpareLiberty {
		return NoSuicide
	}

	// Ambiguous: the move would otherwise be valid but collided with a
	// recorded prior board. Resolve precisely.
	return evaluateSlowPath(ctx, state, x, y, player)
}

// recordedPlayerStoneAt reports whether any recorded prior board already has
// player's stone at (x,y) -- the fast path's cheap, approximate superko
// guard, which tolerates a one-position window rather than materializing a
// hypothetical board on every call.
func recordedPlayerStoneAt(state board.State, x, y int, player board.Color) bool {
	if len(state.PreviousBoards) == 0 {
		return false
	}
	idx := x*state.Board.Size + y
	want := player.Rune()
	for _, snapshot := range state.PreviousBoards {
		if r := runeAtFlatIndex(snapshot, state.Board.Size, idx); r == want {
			return true
		}
	}
	return false
}

// runeAtFlatIndex reads the rune at the given flattened column-major index
// out of a board.Key()-style snapshot ("col0|col1|...").
func runeAtFlatIndex(snapshot string, size, flatIndex int) rune {
	col := flatIndex / size
	row := flatIndex % size
	runes := []rune(snapshot)

	// Each column contributes size runes plus one '|' separator, except none
	// trailing the last column.
	pos := col*(size+1) + row
	if pos < 0 || pos >= len(runes) {
		return 0
	}
	return runes[pos]
}

func evaluateSlowPath(ctx context.Context, state board.State, x, y int, player board.Color) Status {
	next, err := state.Board.EvaluateMoveResult(ctx, x, y, player)
	if err != nil {
		// Board.At already confirmed the cell is empty and present; this can
		// only mean a programming error upstream.
		panic("legality: EvaluateMoveResult failed on a pre-validated point: " + err.Error())
	}

	placed, ok := next.At(x, y)
	if !ok || placed.Color != player {
		return NoSuicide
	}

	key := next.Key()
	for _, snapshot := range state.PreviousBoards {
		if snapshot == key {
			return BoardRepeated
		}
	}
	return Valid
}
