package area

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/pocomotech/sweeper/internal/bombeq"
	"github.com/pocomotech/sweeper/internal/solution"
	"pgregory.net/rapid"
)

func eq(tiles []bombeq.Tile, bombs []int) bombeq.Equation {
	return bombeq.New(tiles, bombs)
}

func TestSolveEmpty(t *testing.T) {
	sol, err := Solve(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !solution.Equal(sol, solution.Empty()) {
		t.Fatalf("Solve(nil) = %v, want identity solution", sol)
	}
}

func TestSolveSingletonKnownBomb(t *testing.T) {
	sol, err := Solve([]bombeq.Equation{eq([]bombeq.Tile{{0, 0}}, []int{1})})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	layout, ok := sol[1]
	if !ok || layout.N.Int64() != 1 || layout.Freq[bombeq.Tile{0, 0}].Int64() != 1 {
		t.Fatalf("unexpected solution: %v", sol)
	}
}

func TestSolveTwoTilesOneBomb(t *testing.T) {
	sol, err := Solve([]bombeq.Equation{eq([]bombeq.Tile{{0, 0}, {1, 1}}, []int{1})})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	layout, ok := sol[1]
	if !ok {
		t.Fatalf("expected an entry at k=1, got %v", sol)
	}
	if layout.N.Int64() != 2 {
		t.Fatalf("expected 2 layouts, got %v", layout.N)
	}
	for _, tile := range []bombeq.Tile{{0, 0}, {1, 1}} {
		if layout.Freq[tile].Int64() != 1 {
			t.Errorf("expected tile %v to be a bomb in exactly 1 of 2 layouts, got %v", tile, layout.Freq[tile])
		}
	}
}

// bruteForceSolve enumerates every bomb assignment for the union of a
// equation's tiles and checks each equation directly, for comparison
// against Solve on small inputs.
func bruteForceSolve(equations []bombeq.Equation) solution.Solution {
	tileSet := map[bombeq.Tile]struct{}{}
	for _, e := range equations {
		for _, t := range e.Tiles() {
			tileSet[t] = struct{}{}
		}
	}
	tiles := make([]bombeq.Tile, 0, len(tileSet))
	for t := range tileSet {
		tiles = append(tiles, t)
	}

	result := solution.Solution{}
	for mask := 0; mask < (1 << len(tiles)); mask++ {
		assignment := map[bombeq.Tile]bool{}
		bombCount := 0
		for i, t := range tiles {
			on := mask&(1<<i) != 0
			assignment[t] = on
			if on {
				bombCount++
			}
		}

		consistent := true
		for _, e := range equations {
			count := 0
			for _, t := range e.Tiles() {
				if assignment[t] {
					count++
				}
			}
			found := false
			for _, b := range e.Bombs() {
				if b == count {
					found = true
					break
				}
			}
			if !found {
				consistent = false
				break
			}
		}
		if !consistent {
			continue
		}

		freq := map[bombeq.Tile]*big.Int{}
		for _, t := range tiles {
			v := int64(0)
			if assignment[t] {
				v = 1
			}
			freq[t] = big.NewInt(v)
		}
		layout := solution.Layout{Freq: freq, N: big.NewInt(1)}
		result = solution.Add(result, solution.Solution{bombCount: layout})
	}
	return result
}

func TestSolveMatchesBruteForceOnSmallGroups(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		numTiles := rapid.IntRange(1, 7).Draw(t, "numTiles")
		tiles := make([]bombeq.Tile, numTiles)
		for i := range tiles {
			tiles[i] = bombeq.Tile{Row: 0, Col: i}
		}

		numEquations := rapid.IntRange(1, 4).Draw(t, "numEquations")
		equations := make([]bombeq.Equation, 0, numEquations)
		for i := 0; i < numEquations; i++ {
			groupSize := rapid.IntRange(1, numTiles).Draw(t, "groupSize")
			rand.Shuffle(len(tiles), func(a, b int) { tiles[a], tiles[b] = tiles[b], tiles[a] })
			chosen := append([]bombeq.Tile(nil), tiles[:groupSize]...)

			bombVal := rapid.IntRange(0, groupSize).Draw(t, "bombVal")
			equations = append(equations, eq(chosen, []int{bombVal}))
		}

		got, err := Solve(equations)
		if err != nil {
			t.Fatalf("Solve returned error: %v", err)
		}
		want := bruteForceSolve(equations)

		if !solution.Equal(got, want) {
			t.Fatalf("Solve(%v) = %v, brute force = %v", equations, got, want)
		}
	})
}

func TestSolveInvariantUnderPermutation(t *testing.T) {
	equations := []bombeq.Equation{
		eq([]bombeq.Tile{{0, 1}, {1, 0}, {1, 1}}, []int{1, 2}),
		eq([]bombeq.Tile{{0, 0}}, []int{0}),
	}
	reversed := []bombeq.Equation{equations[1], equations[0]}

	a, err := Solve(equations)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Solve(reversed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !solution.Equal(a, b) {
		t.Fatalf("Solve is not invariant under permutation: %v vs %v", a, b)
	}
}

func TestSolveSumOfLayoutsMatchesSatisfyingAssignmentCount(t *testing.T) {
	equations := []bombeq.Equation{
		eq([]bombeq.Tile{{0, 1}, {1, 0}, {1, 1}}, []int{1, 2}),
		eq([]bombeq.Tile{{0, 0}}, []int{0}),
	}
	sol, err := Solve(equations)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	total := big.NewInt(0)
	for _, layout := range sol {
		total.Add(total, layout.N)
	}

	brute := bruteForceSolve(equations)
	bruteTotal := big.NewInt(0)
	for _, layout := range brute {
		bruteTotal.Add(bruteTotal, layout.N)
	}

	if total.Cmp(bruteTotal) != 0 {
		t.Fatalf("sum of N_k = %v, brute force satisfying assignment count = %v", total, bruteTotal)
	}
}

func TestSolveTooLargeComponent(t *testing.T) {
	orig := MaxComponentTiles
	MaxComponentTiles = 2
	defer func() { MaxComponentTiles = orig }()

	equations := []bombeq.Equation{
		eq([]bombeq.Tile{{0, 0}, {0, 1}, {0, 2}}, []int{1}),
	}
	// Force a multi-equation path so component-size checking triggers:
	// a second equation sharing a tile keeps it one connected component.
	equations = append(equations, eq([]bombeq.Tile{{0, 2}, {0, 3}}, []int{1}))

	_, err := Solve(equations)
	if err != ErrTooLarge {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
}
