/*

	area.go - recursive enumeration over a connected constraint group

*/

// Package area implements the area solver: given a set of BombEquations,
// it enumerates every bomb assignment to the tiles they mention that
// satisfies all of them, and returns the aggregated solution.Solution.
// Disjoint connected components (see internal/group) are solved
// independently and combined with solution.Cross; within a component the
// solver picks the most-constrained tile, branches on it being a bomb or
// not, and recurses on the weakened constraint set.
package area

import (
	"errors"
	"math/big"

	"github.com/pocomotech/sweeper/internal/bombeq"
	"github.com/pocomotech/sweeper/internal/group"
	"github.com/pocomotech/sweeper/internal/integrate"
	"github.com/pocomotech/sweeper/internal/solution"
)

// ErrTooLarge is returned when a connected constraint component mentions
// more tiles than MaxComponentTiles, so the recursive enumeration is
// refused rather than left to run for an unbounded time (spec's
// concurrency/resource model flags the area solver's recursion as the
// hot path whose worst case is exponential).
var ErrTooLarge = errors.New("area: connected component too large to enumerate")

// MaxComponentTiles bounds the size of a single connected component the
// solver will enumerate. The documented board maxima are 30x16 classic
// and 5x8 variant; a component spanning the entire classic-hard board
// (480 tiles) is never produced in practice because the unconstrained
// pool absorbs everything not adjacent to a revealed tile, but pathological
// inputs (e.g. synthetic test boards) could otherwise run unbounded.
var MaxComponentTiles = 40

// Solve enumerates all bomb assignments to the tiles named by equations
// that satisfy every one of them, returning the aggregated Solution.
func Solve(equations []bombeq.Equation) (solution.Solution, error) {
	if len(equations) == 0 {
		return solution.Empty(), nil
	}
	if len(equations) == 1 {
		return solveSingleton(equations[0]), nil
	}

	groups := group.Group(equations)
	if len(groups) > 1 {
		total := solution.Empty()
		for _, g := range groups {
			sol, err := Solve(g)
			if err != nil {
				return nil, err
			}
			total = solution.Cross(total, sol)
		}
		return total, nil
	}

	return solveComponent(groups[0])
}

func solveSingleton(e bombeq.Equation) solution.Solution {
	tiles := e.Tiles()
	n := len(tiles)
	sol := solution.Solution{}
	for _, b := range e.Bombs() {
		freq := make(map[bombeq.Tile]*big.Int, n)
		perTile := solution.Binomial(n-1, b-1)
		for _, t := range tiles {
			freq[t] = new(big.Int).Set(perTile)
		}
		layout := solution.Layout{Freq: freq, N: solution.Binomial(n, b)}
		sol = solution.Add(sol, solution.Solution{b: layout})
	}
	return sol
}

// solveComponent handles a single connected component with at least two
// equations: pick the most-shared tile, branch on {0,1}, and recurse on
// the reduced constraint set produced by the integrator.
func solveComponent(equations []bombeq.Equation) (solution.Solution, error) {
	tileCount := countTiles(equations)
	if tileCount > MaxComponentTiles {
		return nil, ErrTooLarge
	}

	pivot := mostSharedTile(equations)

	result := solution.Solution{}
	for _, bomb := range []int{0, 1} {
		store := integrate.NewStore()
		if err := store.Integrate(equations); errors.Is(err, integrate.ErrContradiction) {
			return solution.Solution{}, nil // no assignment satisfies the component
		} else if err != nil {
			return nil, err
		}
		pivotEq := bombeq.New([]bombeq.Tile{pivot}, []int{bomb})

		if err := store.Integrate([]bombeq.Equation{pivotEq}); errors.Is(err, integrate.ErrContradiction) {
			continue // this branch is inconsistent, skip it
		} else if err != nil {
			return nil, err
		}

		// The pivot literal stays in the store after integration; drop it so
		// the pivot tile is counted once, by pivotLayout below.
		reduced := make([]bombeq.Equation, 0, store.Len())
		for _, e := range store.Equations() {
			if !e.Equal(pivotEq) {
				reduced = append(reduced, e)
			}
		}
		sub, err := Solve(reduced)
		if err != nil {
			return nil, err
		}

		pivotLayout := solution.Solution{bomb: {
			Freq: map[bombeq.Tile]*big.Int{pivot: big.NewInt(int64(bomb))},
			N:    big.NewInt(1),
		}}
		result = solution.Add(result, solution.Cross(pivotLayout, sub))
	}

	return result, nil
}

func countTiles(equations []bombeq.Equation) int {
	seen := map[bombeq.Tile]struct{}{}
	for _, e := range equations {
		for _, t := range e.Tiles() {
			seen[t] = struct{}{}
		}
	}
	return len(seen)
}

// mostSharedTile returns the tile mentioned by the most equations,
// breaking ties by lexicographically smallest tile. The choice only
// affects performance, not correctness — any deterministic rule yields
// the same Solution.
func mostSharedTile(equations []bombeq.Equation) bombeq.Tile {
	counts := map[bombeq.Tile]int{}
	for _, e := range equations {
		for _, t := range e.Tiles() {
			counts[t]++
		}
	}

	var best bombeq.Tile
	bestCount := -1
	for t, c := range counts {
		if c > bestCount || (c == bestCount && t.Less(best)) {
			best = t
			bestCount = c
		}
	}
	return best
}
