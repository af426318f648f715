/*

	main.go - rejection-sampling board generator exercising the
	solvability oracle

*/

// Command boardgen repeatedly samples classic boards and keeps the first
// one the solvability oracle accepts, per spec.md §4.6: "the board
// generator (external) must repeatedly sample layouts and reject
// non-solvable ones". It reports failure rather than looping forever,
// per SPEC_FULL.md §9's retry-cap decision.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/pocomotech/sweeper/config"
	"github.com/pocomotech/sweeper/internal/classicgame"
	"github.com/pocomotech/sweeper/internal/geom"
	"github.com/pocomotech/sweeper/internal/log"
	"github.com/pocomotech/sweeper/sweeper/oracle"
)

// MaxAttempts caps rejection-sampling retries before boardgen gives up.
const MaxAttempts = 10000

func main() {
	difficulty := flag.String("difficulty", "easy", "classic difficulty preset (easy, medium, hard)")
	firstRow := flag.Int("row", -1, "first-click row (defaults to board centre)")
	firstCol := flag.Int("col", -1, "first-click column (defaults to board centre)")
	flag.Parse()

	log.Initialize(log.DefaultConfig())
	rand.Seed(time.Now().UnixNano())

	cfg := config.Default()
	preset, ok := cfg.Preset(config.VersionClassic, *difficulty)
	if !ok {
		fmt.Fprintf(os.Stderr, "boardgen: unknown difficulty %q\n", *difficulty)
		os.Exit(1)
	}

	first := geom.Tile{Row: *firstRow, Col: *firstCol}
	if first.Row < 0 {
		first.Row = preset.Height / 2
	}
	if first.Col < 0 {
		first.Col = preset.Width / 2
	}

	board, attempts, err := generate(cfg, *difficulty, first)
	if err != nil {
		fmt.Fprintln(os.Stderr, "boardgen: ", err)
		os.Exit(1)
	}

	fmt.Printf("accepted after %d attempt(s)\n", attempts)
	board.Click(first)
	board.ConsoleRender(os.Stdout)
}

func generate(cfg config.Config, difficulty string, first geom.Tile) (*classicgame.Board, int, error) {
	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		board := classicgame.NewBoard(cfg, difficulty)
		if board == nil {
			return nil, attempt, fmt.Errorf("unknown difficulty %q", difficulty)
		}
		board.Initialize(first)

		if oracle.Solvable(board.ShadowBoard(), first) {
			return board, attempt, nil
		}
		log.Debug("boardgen: rejected layout", "attempt", attempt)
	}
	return nil, MaxAttempts, fmt.Errorf("no solvable layout found in %d attempts", MaxAttempts)
}
