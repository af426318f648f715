package bombeq

import (
	"testing"

	"pgregory.net/rapid"
)

func tileSlice(n int) []Tile {
	out := make([]Tile, n)
	for i := range out {
		out[i] = Tile{Row: i / 8, Col: i % 8}
	}
	return out
}

// genEquation draws a random small equation: a tile count, then a
// random subset of [0, numTiles] as the bomb-count set.
func genEquation(t *rapid.T, label string) Equation {
	numTiles := rapid.IntRange(1, 6).Draw(t, label+"_n")
	tiles := tileSlice(numTiles)

	bombSetSize := rapid.IntRange(0, numTiles+1).Draw(t, label+"_bn")
	seen := map[int]struct{}{}
	bombs := make([]int, 0, bombSetSize)
	for len(bombs) < bombSetSize {
		v := rapid.IntRange(0, numTiles).Draw(t, label+"_b")
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		bombs = append(bombs, v)
	}
	return New(tiles, bombs)
}

func TestCanonicalBombsInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := genEquation(t, "e")
		for _, b := range e.Bombs() {
			if b < 0 || b > e.NumTiles() {
				t.Fatalf("bomb count %d out of range [0,%d]", b, e.NumTiles())
			}
		}
		bombs := e.Bombs()
		for i := 1; i < len(bombs); i++ {
			if bombs[i] <= bombs[i-1] {
				t.Fatalf("bombs not strictly ascending: %v", bombs)
			}
		}
	})
}

func TestLENewEquationHasExactCount(t *testing.T) {
	// e1 <= e2 requires e1 to have exactly one possible bomb count.
	e1 := New([]Tile{{0, 0}}, []int{1})
	e2 := New([]Tile{{0, 0}, {0, 1}, {1, 0}}, []int{1, 2})

	if !e1.LE(e2) {
		t.Fatal("single-tile exact-count equation should be <= a superset equation")
	}

	e3 := New([]Tile{{0, 0}}, []int{0, 1})
	if e3.LE(e2) {
		t.Fatal("an equation without an exact bomb count must never be <=")
	}
}

func TestSubPreservesTileRangeAndBombRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		// Build e2 over n tiles, then e1 as an exact-count equation over
		// a strict prefix subset, so e1.LE(e2) holds.
		n := rapid.IntRange(2, 6).Draw(t, "n")
		tiles := tileSlice(n)
		k := rapid.IntRange(1, n-1).Draw(t, "k")

		exact := rapid.IntRange(0, k).Draw(t, "exact")
		e1 := New(tiles[:k], []int{exact})

		bombSize := rapid.IntRange(1, n+1).Draw(t, "bombSize")
		seen := map[int]struct{}{}
		bombs := make([]int, 0, bombSize)
		for len(bombs) < bombSize {
			v := rapid.IntRange(0, n).Draw(t, "bomb")
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			bombs = append(bombs, v)
		}
		e2 := New(tiles, bombs)

		if !e1.LE(e2) {
			return // e2's canonicalisation may have dropped tiles/bombs; skip
		}

		diff := e1.Sub(e2)
		if diff.NumTiles() != e2.NumTiles()-e1.NumTiles() {
			t.Fatalf("|T(e2-e1)| = %d, want %d", diff.NumTiles(), e2.NumTiles()-e1.NumTiles())
		}
		for _, b := range diff.Bombs() {
			if b < 0 || b > diff.NumTiles() {
				t.Fatalf("e2-e1 bomb count %d out of range [0,%d]", b, diff.NumTiles())
			}
		}
	})
}

func TestEqualityIsStructural(t *testing.T) {
	a := New([]Tile{{1, 1}, {0, 0}}, []int{2, 1})
	b := New([]Tile{{0, 0}, {1, 1}}, []int{1, 2})
	if !a.Equal(b) {
		t.Fatal("equations built from the same tiles/bombs in different order must be equal")
	}
	if a.Key() != b.Key() {
		t.Fatalf("equal equations must share a canonical key: %q vs %q", a.Key(), b.Key())
	}
}

func TestTrivialSplittableInertImpossible(t *testing.T) {
	var cases = []struct {
		name               string
		eq                 Equation
		trivial, splittable, inert, impossible bool
	}{
		{"single known bomb", New([]Tile{{0, 0}}, []int{1}), true, false, false, false},
		{"single known safe", New([]Tile{{0, 0}}, []int{0}), true, false, false, false},
		{"single unknown", New([]Tile{{0, 0}}, []int{0, 1}), false, false, true, false},
		{"all safe splittable", New([]Tile{{0, 0}, {0, 1}, {1, 0}}, []int{0}), false, true, false, false},
		{"all bombs splittable", New([]Tile{{0, 0}, {0, 1}, {1, 0}}, []int{3}), false, true, false, false},
		{"fully unknown splittable", New([]Tile{{0, 0}, {0, 1}, {1, 0}}, []int{0, 1, 2, 3}), false, true, false, false},
		{"normal constrained", New([]Tile{{0, 0}, {0, 1}, {1, 0}}, []int{1}), false, false, false, false},
		{"impossible", New([]Tile{{0, 0}}, []int{5, -1}), false, false, false, true},
	}

	for _, tc := range cases {
		if got := tc.eq.IsTrivial(); got != tc.trivial {
			t.Errorf("%s: IsTrivial() = %v, want %v", tc.name, got, tc.trivial)
		}
		if got := tc.eq.IsSplittable(); got != tc.splittable {
			t.Errorf("%s: IsSplittable() = %v, want %v", tc.name, got, tc.splittable)
		}
		if got := tc.eq.IsInert(); got != tc.inert {
			t.Errorf("%s: IsInert() = %v, want %v", tc.name, got, tc.inert)
		}
		if got := tc.eq.IsImpossible(); got != tc.impossible {
			t.Errorf("%s: IsImpossible() = %v, want %v", tc.name, got, tc.impossible)
		}
	}
}

func TestSplitAllSafe(t *testing.T) {
	eq := New([]Tile{{0, 0}, {0, 1}, {1, 0}}, []int{0})
	parts := eq.Split()
	if len(parts) != 3 {
		t.Fatalf("expected 3 split parts, got %d", len(parts))
	}
	for _, p := range parts {
		if !p.IsTrivial() || p.Bombs()[0] != 0 {
			t.Errorf("split part %v should be a trivial safe equation", p)
		}
	}
}

func TestSplitAllBombs(t *testing.T) {
	eq := New([]Tile{{0, 0}, {0, 1}, {1, 0}}, []int{3})
	parts := eq.Split()
	for _, p := range parts {
		if !p.IsTrivial() || p.Bombs()[0] != 1 {
			t.Errorf("split part %v should be a trivial bomb equation", p)
		}
	}
}

func TestSplitFullyUnknown(t *testing.T) {
	eq := New([]Tile{{0, 0}, {0, 1}, {1, 0}}, []int{0, 1, 2, 3})
	parts := eq.Split()
	for _, p := range parts {
		if !p.IsInert() {
			t.Errorf("split part %v of a fully unknown equation should be inert", p)
		}
	}
}

func TestSubThenReaddPreservesSatisfyingAssignments(t *testing.T) {
	// e2 - e1, re-integrated with e1's fixed tile, must describe the same
	// set of satisfying assignments as e2 did originally. We check this by
	// brute force over a small tile universe.
	e2 := New([]Tile{{0, 0}, {0, 1}, {1, 1}}, []int{1, 2})
	e1 := New([]Tile{{0, 0}}, []int{1})

	diff := e1.Sub(e2)

	satisfies := func(assignment map[Tile]bool, e Equation) bool {
		count := 0
		for _, t := range e.Tiles() {
			if assignment[t] {
				count++
			}
		}
		for _, b := range e.Bombs() {
			if b == count {
				return true
			}
		}
		return false
	}

	tiles := []Tile{{0, 0}, {0, 1}, {1, 1}}
	for mask := 0; mask < (1 << len(tiles)); mask++ {
		assignment := map[Tile]bool{}
		for i, tl := range tiles {
			assignment[tl] = mask&(1<<i) != 0
		}
		if !satisfies(assignment, e1) {
			continue // subtraction's equivalence only holds conditional on e1
		}
		originalOK := satisfies(assignment, e2)
		recombinedOK := satisfies(assignment, diff)
		if originalOK != recombinedOK {
			t.Errorf("assignment %v: original satisfies=%v, diff satisfies=%v", assignment, originalOK, recombinedOK)
		}
	}
}
