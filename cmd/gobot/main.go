// gobot is a CLI driver for the Go decision core: it reads a SimpleBoard and
// a few options, runs one decision, and prints the chosen Play.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/nanogyth/go-bot/pkg/board"
	"github.com/nanogyth/go-bot/pkg/board/simple"
	"github.com/nanogyth/go-bot/pkg/engine"
	"github.com/nanogyth/go-bot/pkg/persona"
	"github.com/nanogyth/go-bot/pkg/rng"
	"github.com/seekerror/logw"
)

type rowsFlag []string

func (r *rowsFlag) String() string     { return strings.Join(*r, ",") }
func (r *rowsFlag) Set(v string) error { *r = append(*r, v); return nil }

var (
	rows           rowsFlag
	player         = flag.String("player", "Black", "Color to move: Black or White")
	previousPlayer = flag.String("previous-player", "White", "Color that moved last; Empty means the game is already over")
	previousBoards = flag.String("previous-boards", "", "Comma-separated prior board.Key() snapshots, for superko")
	opponentName   = flag.String("opponent", "Illuminati", "GoOpponent persona name")
	seed           = flag.Int64("seed", time.Now().UnixNano(), "RNG seed")
	showVersion    = flag.Bool("version", false, "Print the decision core version and exit")
)

func init() {
	flag.Var(&rows, "row", "One SimpleBoard column (repeat once per column, bottom-to-top within each string)")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: gobot -row <col0> -row <col1> ... [options]

gobot runs one decision of the Go opponent decision core against a SimpleBoard.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	if *showVersion {
		fmt.Println(engine.Version)
		return
	}

	if len(rows) == 0 {
		flag.Usage()
		logw.Exitf(ctx, "At least one -row is required")
	}

	b, err := simple.Decode(ctx, simple.Board(rows))
	if err != nil {
		logw.Exitf(ctx, "Invalid board: %v", err)
	}

	p, ok := board.ParseColor(*player)
	if !ok {
		logw.Exitf(ctx, "Invalid -player: %v", *player)
	}
	prev, ok := board.ParseColor(*previousPlayer)
	if !ok {
		logw.Exitf(ctx, "Invalid -previous-player: %v", *previousPlayer)
	}

	var history []string
	if *previousBoards != "" {
		history = strings.Split(*previousBoards, ",")
	}
	state := board.State{Board: b, PreviousPlayer: prev, PreviousBoards: history}

	opponent := persona.Parse(*opponentName)
	source := rand.New(rand.NewSource(*seed))

	play, err := engine.GetMove(ctx, state, p, opponent, source, rng.Noop{})
	if err != nil {
		logw.Exitf(ctx, "GetMove failed: %v", err)
	}

	switch play.Type {
	case engine.Move:
		fmt.Printf("move,%v,%v\n", play.X, play.Y)
	case engine.Pass:
		fmt.Println("pass")
	case engine.GameOver:
		fmt.Println("gameOver")
	}
}
