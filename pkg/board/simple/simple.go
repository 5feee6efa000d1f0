// Package simple implements the SimpleBoard textual encoding: a sequence of
// N strings of length N, one string per column, one character per row,
// adapted to the board's column-major, fixed-alphabet layout.
package simple

import (
	"context"
	"fmt"

	"github.com/nanogyth/go-bot/pkg/board"
)

// Board is the SimpleBoard textual form: Board[x] is column x, read bottom
// (row 0) to top (row N-1) left to right in the string.
type Board []string

// Decode parses a SimpleBoard into a Board, installing chain ids and
// liberties via a single UpdateChains pass. Unknown characters decode as
// absent cells -- Decode itself never panics on a malformed character. A
// non-square SimpleBoard is rejected with an error, since that is the one
// shape check callers are expected to have done themselves.
func Decode(ctx context.Context, s Board) (*board.Board, error) {
	size := len(s)
	for _, col := range s {
		if len(col) != size {
			return nil, fmt.Errorf("simple: non-square board: %v columns, column length %v", size, len(col))
		}
	}

	b, err := board.NewBoard(size)
	if err != nil {
		return nil, err
	}

	for x, col := range s {
		for y, ch := range col {
			switch ch {
			case 'X':
				b.SetColor(x, y, board.Black)
			case 'O':
				b.SetColor(x, y, board.White)
			case '.':
				b.SetColor(x, y, board.Empty)
			default:
				b.SetAbsent(x, y) // '#' and any unrecognized character
			}
		}
	}

	b.UpdateChains(true)
	return b, nil
}

// Encode renders a Board back to its SimpleBoard form. Encode(Decode(s)) == s
// for every well-formed SimpleBoard s: chain ids and liberties do not survive
// the round trip, since they are derived state, not part of the encoding.
func Encode(b *board.Board) Board {
	ret := make(Board, b.Size)
	for x := 0; x < b.Size; x++ {
		row := make([]rune, b.Size)
		for y := 0; y < b.Size; y++ {
			if p, ok := b.At(x, y); ok {
				row[y] = p.Color.Rune()
			} else {
				row[y] = '#'
			}
		}
		ret[x] = string(row)
	}
	return ret
}
