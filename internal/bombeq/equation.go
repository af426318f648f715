/*

	equation.go - BombEquation: a subset-sum constraint over board tiles

*/

// Package bombeq implements the BombEquation value type: "the number of
// bombs among this set of tiles lies in this set of counts". Equations
// are immutable and compared structurally; tiles and bomb counts are
// stored in canonical (sorted, deduplicated) form so two equations with
// the same meaning are always equal and hashable via Key().
package bombeq

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pocomotech/sweeper/internal/geom"
)

// Tile re-exports geom.Tile so callers of this package rarely need to
// import geom directly for simple equation construction.
type Tile = geom.Tile

// Equation is an immutable pair (Tiles, Bombs): the tile set the
// constraint talks about, and the ascending, deduplicated set of bomb
// counts consistent with it. The zero value is not meaningful; build
// equations with New.
type Equation struct {
	tiles []Tile
	bombs []int
}

// New builds an Equation in canonical form: tiles sorted and
// deduplicated, bombs sorted, deduplicated, and clipped to [0, len(tiles)].
func New(tiles []Tile, bombs []int) Equation {
	t := uniqueSortedTiles(tiles)
	b := uniqueSortedBombs(bombs, len(t))
	return Equation{tiles: t, bombs: b}
}

func uniqueSortedTiles(in []Tile) []Tile {
	out := make([]Tile, len(in))
	copy(out, in)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	deduped := out[:0]
	for i, t := range out {
		if i == 0 || t != out[i-1] {
			deduped = append(deduped, t)
		}
	}
	return deduped
}

func uniqueSortedBombs(in []int, numTiles int) []int {
	out := make([]int, 0, len(in))
	for _, b := range in {
		if b >= 0 && b <= numTiles {
			out = append(out, b)
		}
	}
	sort.Ints(out)

	deduped := out[:0]
	for i, b := range out {
		if i == 0 || b != out[i-1] {
			deduped = append(deduped, b)
		}
	}
	return deduped
}

// Tiles returns a copy of the equation's tile set in canonical order.
func (e Equation) Tiles() []Tile {
	out := make([]Tile, len(e.tiles))
	copy(out, e.tiles)
	return out
}

// Bombs returns a copy of the equation's ascending bomb-count set.
func (e Equation) Bombs() []int {
	out := make([]int, len(e.bombs))
	copy(out, e.bombs)
	return out
}

// NumTiles returns |T(e)|.
func (e Equation) NumTiles() int {
	return len(e.tiles)
}

// HasTile reports whether t is one of this equation's tiles.
func (e Equation) HasTile(t Tile) bool {
	for _, et := range e.tiles {
		if et == t {
			return true
		}
	}
	return false
}

// Equal reports structural equality: same tile set, same bomb set.
func (e Equation) Equal(other Equation) bool {
	if len(e.tiles) != len(other.tiles) || len(e.bombs) != len(other.bombs) {
		return false
	}
	for i := range e.tiles {
		if e.tiles[i] != other.tiles[i] {
			return false
		}
	}
	for i := range e.bombs {
		if e.bombs[i] != other.bombs[i] {
			return false
		}
	}
	return true
}

// Key returns a canonical string uniquely determined by (Tiles, Bombs),
// suitable for use as a map key — Go has no structural hashing for
// slices, so callers that need equation identity (e.g. dedup sets) hash
// this string instead.
func (e Equation) Key() string {
	var b strings.Builder
	for _, t := range e.tiles {
		b.WriteString(t.String())
		b.WriteByte(';')
	}
	b.WriteByte('|')
	for _, n := range e.bombs {
		b.WriteString(strconv.Itoa(n))
		b.WriteByte(';')
	}
	return b.String()
}

// IsImpossible reports whether no bomb count is consistent with this
// equation (Bombs is empty after canonicalisation).
func (e Equation) IsImpossible() bool {
	return len(e.bombs) == 0
}

// IsTrivial reports whether this equation directly resolves a single
// tile: one tile, one possible bomb count.
func (e Equation) IsTrivial() bool {
	return len(e.tiles) == 1 && len(e.bombs) == 1
}

// IsInert reports whether this is a single-tile equation carrying no
// information at all (bomb count could be 0 or 1). Inert equations must
// be discarded by the integrator rather than stored.
func (e Equation) IsInert() bool {
	return len(e.tiles) == 1 && len(e.bombs) == 2 && e.bombs[0] == 0 && e.bombs[1] == 1
}

// IsSplittable reports whether this multi-tile equation carries no
// per-tile information beyond the trivial case: every tile is known
// bomb-free (Bombs = {0}), every tile is known bomb (Bombs = {|T|}), or
// every tile is totally unknown (Bombs = {0,1,...,|T|}).
func (e Equation) IsSplittable() bool {
	if len(e.tiles) == 1 {
		return false
	}
	if len(e.bombs) == 1 {
		return e.bombs[0] == 0 || e.bombs[0] == len(e.tiles)
	}
	return len(e.bombs) == len(e.tiles)+1
}

// Split decomposes a splittable equation into |T| single-tile equations:
// all safe, all bombs, or all fully unknown (one per tile), matching the
// case that made it splittable. Callers must only invoke this when
// IsSplittable() is true.
func (e Equation) Split() []Equation {
	out := make([]Equation, 0, len(e.tiles))
	if len(e.bombs) > 1 {
		for _, t := range e.tiles {
			out = append(out, New([]Tile{t}, []int{0, 1}))
		}
		return out
	}
	bomb := 0
	if e.bombs[0] != 0 {
		bomb = 1
	}
	for _, t := range e.tiles {
		out = append(out, New([]Tile{t}, []int{bomb}))
	}
	return out
}

// LE implements the integrator's comparison e ⊑ other: this equation's
// tiles are a subset of other's, and this equation pins down an exact
// bomb count (a single value), so it can be subtracted from other.
func (e Equation) LE(other Equation) bool {
	if len(e.bombs) != 1 {
		return false
	}
	return isSubset(e.tiles, other.tiles)
}

func isSubset(a, b []Tile) bool {
	if len(a) > len(b) {
		return false
	}
	set := make(map[Tile]struct{}, len(b))
	for _, t := range b {
		set[t] = struct{}{}
	}
	for _, t := range a {
		if _, ok := set[t]; !ok {
			return false
		}
	}
	return true
}

// Sub computes other - e, the weakening of other once e's exact bomb
// count is known: other's tiles minus e's tiles, and other's bomb counts
// each shifted down by e's known count and clipped to the remaining
// tile range. Only valid when e.LE(other).
func (e Equation) Sub(other Equation) Equation {
	exclude := make(map[Tile]struct{}, len(e.tiles))
	for _, t := range e.tiles {
		exclude[t] = struct{}{}
	}
	remaining := make([]Tile, 0, len(other.tiles)-len(e.tiles))
	for _, t := range other.tiles {
		if _, skip := exclude[t]; !skip {
			remaining = append(remaining, t)
		}
	}

	known := e.bombs[0]
	shifted := make([]int, 0, len(other.bombs))
	for _, n := range other.bombs {
		shifted = append(shifted, n-known)
	}

	return New(remaining, shifted)
}
