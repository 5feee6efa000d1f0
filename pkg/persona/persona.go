// Package persona implements the six fixed opponent personalities as a
// closed tagged variant with a single dispatch function, rather than one
// type per persona: the set is small and fixed, so the extra indirection
// of a per-persona interface buys nothing.
package persona

import "github.com/nanogyth/go-bot/pkg/rng"

// Opponent is the external personality selector (GoOpponent).
type Opponent int

const (
	NoAI Opponent = iota
	Netburners
	SlumSnakes
	TheBlackHand
	Tetrads
	Daedalus
	Illuminati
)

func (o Opponent) String() string {
	switch o {
	case NoAI:
		return "No AI"
	case Netburners:
		return "Netburners"
	case SlumSnakes:
		return "Slum Snakes"
	case TheBlackHand:
		return "The Black Hand"
	case Tetrads:
		return "Tetrads"
	case Daedalus:
		return "Daedalus"
	case Illuminati:
		return "Illuminati"
	default:
		return "Illuminati"
	}
}

// Parse normalizes an external GoOpponent name to its Opponent. The
// unrecognized name "????????????" -- and any other unrecognized string --
// is treated as Illuminati, the strongest and most general persona.
func Parse(s string) Opponent {
	switch s {
	case "No AI":
		return NoAI
	case "Netburners":
		return Netburners
	case "Slum Snakes":
		return SlumSnakes
	case "The Black Hand":
		return TheBlackHand
	case "Tetrads":
		return Tetrads
	case "Daedalus":
		return Daedalus
	case "Illuminati":
		return Illuminati
	default:
		return Illuminati
	}
}

// SmartFlag draws the persona-dependent "smart" quality-filter coin flip:
// deterministically false for Netburners, probabilistic for SlumSnakes and
// TheBlackHand, else deterministically true.
func SmartFlag(o Opponent, src rng.Source) bool {
	switch o {
	case Netburners:
		return false
	case SlumSnakes:
		return src.Float64() < 0.3
	case TheBlackHand:
		return src.Float64() < 0.8
	default:
		return true
	}
}
