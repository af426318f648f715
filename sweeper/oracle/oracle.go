/*

	oracle.go - solvability oracle: does the first click deduce the whole board?

*/

// Package oracle implements spec.md §4.6's solvability oracle: it drives a
// fresh Sweeper through repeated safe-tile deduction against a
// fully-populated ground-truth shadow board, the way a board generator
// rejects unsolvable layouts before handing them to a player.
package oracle

import (
	"strconv"

	"github.com/pocomotech/sweeper/config"
	"github.com/pocomotech/sweeper/internal/geom"
	"github.com/pocomotech/sweeper/sweeper"
)

// safeMarker is the board-display string the façade writes for a tile it
// has deduced is certainly bomb-free. It mirrors sweeper's unexported
// markerSafe constant — duplicated here because it is part of the
// external board-output alphabet (spec.md §6), not an implementation detail.
const safeMarker = "S"

// Solvable reports whether, starting from first, the classic Sweeper can
// deduce every non-bomb tile of shadow without ever needing a guess.
// shadow[r][c] is the ground-truth adjacent-bomb count, or -1 for a bomb.
func Solvable(shadow [][]int, first geom.Tile) bool {
	height := len(shadow)
	if height == 0 {
		return false
	}
	width := len(shadow[0])

	bombs := 0
	for _, row := range shadow {
		for _, v := range row {
			if v < 0 {
				bombs++
			}
		}
	}

	s := sweeper.New(config.Default(), config.VersionClassic, height, width, bombs)
	squaresLeft := height*width - bombs
	revealed := make(map[geom.Tile]bool, height*width)
	worklist := []geom.Tile{first}

	for len(worklist) > 0 {
		for _, t := range worklist {
			if revealed[t] {
				continue
			}
			v := shadow[t.Row][t.Col]
			if v < 0 {
				// The generator promised a bomb-free first-click zone; a
				// negative shadow value on a tile the solver deduced safe
				// means the board violates that promise.
				return false
			}
			revealed[t] = true
			squaresLeft--
			s.IntegrateNewInfo(t.Row, t.Col, strconv.Itoa(v))
		}

		if s.Message() != "" {
			break // contradiction or oversized component: stop deducing
		}

		s.CalculateBoard()
		worklist = newlySafeTiles(s, revealed, height, width)
	}

	return squaresLeft == 0
}

func newlySafeTiles(s *sweeper.Sweeper, revealed map[geom.Tile]bool, height, width int) []geom.Tile {
	board := s.Board()
	var out []geom.Tile
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			tile := geom.Tile{Row: r, Col: c}
			if board[r][c] == safeMarker && !revealed[tile] {
				out = append(out, tile)
			}
		}
	}
	return out
}
