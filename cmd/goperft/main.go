// goperft is a decision-core diagnostic tool: it runs many GetMove decisions
// against randomly generated boards and reports timing and outcome counts,
// grounded on cmd/perft's depth-by-depth node-count/timing report.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/nanogyth/go-bot/pkg/board"
	"github.com/nanogyth/go-bot/pkg/engine"
	"github.com/nanogyth/go-bot/pkg/persona"
	"github.com/nanogyth/go-bot/pkg/rng"
	"github.com/seekerror/logw"
)

var (
	size     = flag.Int("size", 9, "Board size")
	density  = flag.Float64("density", 0.3, "Fraction of points pre-occupied by a stone")
	trials   = flag.Int("trials", 1000, "Number of decisions to run")
	opponent = flag.String("opponent", "Illuminati", "GoOpponent persona name")
	seed     = flag.Int64("seed", time.Now().UnixNano(), "RNG seed")
)

func main() {
	flag.Parse()
	ctx := context.Background()

	src := rand.New(rand.NewSource(*seed))
	op := persona.Parse(*opponent)

	counts := map[engine.PlayType]int{}
	start := time.Now()

	for i := 0; i < *trials; i++ {
		b := randomBoard(src, *size, *density)
		state := board.State{Board: b, PreviousPlayer: board.White}

		play, err := engine.GetMove(ctx, state, board.Black, op, src, rng.Noop{})
		if err != nil {
			logw.Exitf(ctx, "GetMove failed on trial %v: %v", i, err)
		}
		counts[play.Type]++
	}

	elapsed := time.Since(start)
	fmt.Printf("goperft,trials=%v,size=%v,density=%v,opponent=%v,move=%v,pass=%v,gameOver=%v,elapsedMicros=%v\n",
		*trials, *size, *density, op, counts[engine.Move], counts[engine.Pass], counts[engine.GameOver], elapsed.Microseconds())
}

// randomBoard builds a fresh, chain-recomputed board of the given size with
// each point independently a stone of random color with probability density,
// else empty.
func randomBoard(src *rand.Rand, size int, density float64) *board.Board {
	b, err := board.NewBoard(size)
	if err != nil {
		panic(err)
	}
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			if src.Float64() < density {
				if src.Float64() < 0.5 {
					b.SetColor(x, y, board.Black)
				} else {
					b.SetColor(x, y, board.White)
				}
			}
		}
	}
	b.UpdateChains(true)
	return b
}
