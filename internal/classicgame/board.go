/*

	board.go - classic Minesweeper board state, adapted from msboard.Board
	for the constraint solver's game-layer adapter

*/

// Package classicgame owns mine placement and reveal bookkeeping for the
// standard numbered-tile ruleset. It does not know anything about
// constraint algebra — it calls into sweeper.Sweeper for advice the same
// way a real player would, and exposes a ShadowBoard for the solvability
// oracle.
package classicgame

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/pocomotech/sweeper/config"
	"github.com/pocomotech/sweeper/internal/geom"
)

// cell manages state for a single board cell.
type cell struct {
	hasMine  bool
	score    int // adjacent mine count, cached once mines are placed
	flagged  bool
	revealed bool
}

var scoreRunes = [...]rune{'_', '1', '2', '3', '4', '5', '6', '7', '8'}

func (c *cell) render() rune {
	if c == nil {
		return '~'
	}
	if !c.revealed {
		return '.'
	} else if c.flagged {
		return '+'
	} else if c.hasMine {
		return '*'
	}
	return scoreRunes[c.score]
}

// Board manages the state of a classic Minesweeper board.
type Board struct {
	rows, cols int
	mineCount  int

	initialized      bool
	cells            [][]cell
	safeRemaining    int
	explosionOccured bool
}

// NewBoard allocates an uninitialized board for a named difficulty
// preset from cfg ("easy"/"medium"/"hard").
func NewBoard(cfg config.Config, difficulty string) *Board {
	preset, ok := cfg.Preset(config.VersionClassic, difficulty)
	if !ok {
		return nil
	}
	return &Board{rows: preset.Height, cols: preset.Width, mineCount: preset.Bombs}
}

// NewCustomBoard allocates an uninitialized board with explicit dimensions.
func NewCustomBoard(rows, cols, mineCount int) *Board {
	return &Board{rows: rows, cols: cols, mineCount: mineCount}
}

// Initialize places mines, keeping safespot and all of its neighbours
// mine-free so the first click always opens a zero-score region, per
// spec.md §4.6's "first-click zone must be forced bomb-free".
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

// Click reveals a cell and propagates through connected zero-score cells.
// Reports whether the click detonated a mine.
func (b *Board) Click(l geom.Tile) (hitMine bool) {
	c := b.getCell(l)
	if c == nil || c.flagged || c.revealed {
		return false
	}

	c.revealed = true
	if c.hasMine {
		b.explosionOccured = true
		return true
	}
	b.safeRemaining--

	if c.score == 0 {
		b.propagateReveals(l)
	}
	return false
}

func (b *Board) propagateReveals(from geom.Tile) {
	for _, n := range geom.Neighbours(from.Row, from.Col, b.rows, b.cols) {
		c := b.getCell(n)
		if c.revealed || c.flagged {
			continue
		}
		c.revealed = true
		if !c.hasMine {
			b.safeRemaining--
		}
		if c.score == 0 && !c.hasMine {
			b.propagateReveals(n)
		}
	}
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

// MineHit reports whether a mine has been detonated.
func (b *Board) MineHit() bool {
	return b.explosionOccured
}

// Label returns the revealed label for a cell, for feeding
// sweeper.Sweeper.IntegrateNewInfo, or "" if it is not revealed.
func (b *Board) Label(l geom.Tile) string {
	c := b.getCell(l)
	if c == nil || !c.revealed {
		return ""
	}
	if c.hasMine {
		return "B"
	}
	return fmt.Sprintf("%d", c.score)
}

// ShadowBoard returns the ground-truth grid the solvability oracle reads:
// -1 for a mine, else the adjacent mine count, regardless of reveal state.
func (b *Board) ShadowBoard() [][]int {
	out := make([][]int, b.rows)
	for row := range out {
		out[row] = make([]int, b.cols)
		for col := range out[row] {
			if b.cells[row][col].hasMine {
				out[row][col] = -1
			} else {
				out[row][col] = b.cells[row][col].score
			}
		}
	}
	return out
}

// ConsoleRender renders the board's current visible state.
func (b *Board) ConsoleRender(cout io.Writer) error {
	if b == nil || !b.initialized {
		return errors.New("called ConsoleRender() on an uninitialized board")
	}
	for row := range b.cells {
		line := ""
		for col := range b.cells[row] {
			if col != 0 {
				line += "  "
			}
			line += string(b.cells[row][col].render())
		}
		fmt.Fprintln(cout, line)
	}
	return nil
}
