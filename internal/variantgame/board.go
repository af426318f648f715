/*

	board.go - colour-banded variant board state, adapted from the
	package-level gomines.Board for the constraint solver's game-layer
	adapter

*/

// Package variantgame implements the colour-banded ruleset (Thrill
// Digger style): revealed cells show a colour band instead of an exact
// count, and a placed mine is either a lethal "B" or a non-lethal
// "Rupoor" trap. Like classicgame, it owns no constraint algebra — it
// is a thin adapter around sweeper.Sweeper.
package variantgame

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/pocomotech/sweeper/config"
	"github.com/pocomotech/sweeper/internal/geom"
)

type cell struct {
	hasMine  bool
	isRupoor bool // a non-lethal trap rather than a lethal mine
	score    int
	flagged  bool
	revealed bool
}

// Board manages the state of a variant (colour-banded) board.
type Board struct {
	rows, cols int
	mineCount  int

	initialized      bool
	cells            [][]cell
	safeRemaining    int
	explosionOccured bool
}

// NewBoard allocates an uninitialized board for a named difficulty preset.
func NewBoard(cfg config.Config, difficulty string) *Board {
	preset, ok := cfg.Preset(config.VersionVariant, difficulty)
	if !ok {
		return nil
	}
	return &Board{rows: preset.Height, cols: preset.Width, mineCount: preset.Bombs}
}

// NewCustomBoard allocates an uninitialized board with explicit dimensions.
func NewCustomBoard(rows, cols, mineCount int) *Board {
	return &Board{rows: rows, cols: cols, mineCount: mineCount}
}

// Initialize places mines (and marks a random subset as Rupoors rather
// than lethal bombs), keeping safespot and its neighbours mine-free.
func (b *Board) Initialize(safespot geom.Tile) error {
	b.cells = make([][]cell, b.rows)
	for row := range b.cells {
		b.cells[row] = make([]cell, b.cols)
	}
	b.safeRemaining = b.rows * b.cols

	protected := map[geom.Tile]bool{safespot: true}
	for _, n := range geom.Neighbours(safespot.Row, safespot.Col, b.rows, b.cols) {
		protected[n] = true
	}

	minesToPlace := b.mineCount
	for minesToPlace > 0 {
		for row := range b.cells {
			for col := range b.cells[row] {
				if minesToPlace == 0 {
					continue
				}
				loc := geom.Tile{Row: row, Col: col}
				if protected[loc] {
					continue
				}
				if rand.Intn(100) < 2 {
					if b.cells[row][col].hasMine {
						continue
					}
					b.cells[row][col].hasMine = true
					b.cells[row][col].isRupoor = rand.Intn(2) == 0
					minesToPlace--
					b.safeRemaining--
				}
			}
		}
	}

	b.initializeScores()
	b.initialized = true
	return nil
}

func (b *Board) initializeScores() {
	for row := range b.cells {
		for col := range b.cells[row] {
			score := 0
			for _, n := range geom.Neighbours(row, col, b.rows, b.cols) {
				if b.cells[n.Row][n.Col].hasMine {
					score++
				}
			}
			b.cells[row][col].score = score
		}
	}
}

func (b *Board) getCell(loc geom.Tile) *cell {
	if loc.Row < 0 || loc.Row >= b.rows || loc.Col < 0 || loc.Col >= b.cols {
		return nil
	}
	return &b.cells[loc.Row][loc.Col]
}

// Initialized reports whether the board has been populated.
func (b *Board) Initialized() bool {
	return b != nil && b.initialized
}

// Dimensions returns rows, cols and the declared mine count.
func (b *Board) Dimensions() (rows, cols, mines int) {
	return b.rows, b.cols, b.mineCount
}

// SafeRemaining reports the number of unrevealed non-mine cells.
func (b *Board) SafeRemaining() int {
	if b == nil || !b.initialized {
		return 0
	}
	return b.safeRemaining
}

// Click reveals a cell; returns whether it detonated a lethal mine. A
// Rupoor reveals like any other trap label and does not end the game.
func (b *Board) Click(l geom.Tile) (hitMine bool) {
	c := b.getCell(l)
	if c == nil || c.flagged || c.revealed {
		return false
	}

	c.revealed = true
	if c.hasMine {
		if !c.isRupoor {
			b.explosionOccured = true
			return true
		}
		return false
	}
	b.safeRemaining--
	return false
}

// ToggleFlag toggles the flag on an unrevealed cell; a no-op otherwise.
func (b *Board) ToggleFlag(l geom.Tile) {
	c := b.getCell(l)
	if c != nil && !c.revealed {
		c.flagged = !c.flagged
	}
}

// ValidLocation reports whether l lies within the board.
func (b *Board) ValidLocation(l geom.Tile) bool {
	return l.Row >= 0 && l.Row < b.rows && l.Col >= 0 && l.Col < b.cols
}

// MineHit reports whether a lethal mine has been detonated.
func (b *Board) MineHit() bool {
	return b.explosionOccured
}

// colourBand maps an adjacent-mine count to its display colour band.
func colourBand(score int) string {
	switch {
	case score == 0:
		return "Green"
	case score <= 2:
		return "Blue"
	case score <= 4:
		return "Red"
	case score <= 6:
		return "Silver"
	default:
		return "Gold"
	}
}

// Label returns the revealed label for a cell, for feeding
// sweeper.Sweeper.IntegrateNewInfo, or "" if it is not revealed.
func (b *Board) Label(l geom.Tile) string {
	c := b.getCell(l)
	if c == nil || !c.revealed {
		return ""
	}
	if c.hasMine {
		if c.isRupoor {
			return "Rupoor"
		}
		return "B"
	}
	return colourBand(c.score)
}

// ConsoleRender renders the board's current visible state using each
// cell's label (or "." for unrevealed, "+" for flagged).
func (b *Board) ConsoleRender(cout io.Writer) error {
	if b == nil || !b.initialized {
		return errors.New("called ConsoleRender() on an uninitialized board")
	}
	for row := range b.cells {
		line := ""
		for col := range b.cells[row] {
			if col != 0 {
				line += " "
			}
			c := &b.cells[row][col]
			switch {
			case !c.revealed && c.flagged:
				line += "+"
			case !c.revealed:
				line += "."
			default:
				line += b.Label(geom.Tile{Row: row, Col: col})
			}
		}
		fmt.Fprintln(cout, line)
	}
	return nil
}
