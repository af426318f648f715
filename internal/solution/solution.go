/*

	solution.go - the Solution distribution and its ⊕ / ⊗ combinators

*/

// Package solution implements the Solution distribution produced by the
// area solver: for an area (a set of tiles governed by some constraints),
// a mapping from total bomb count to the number of consistent layouts
// with that total and, for each tile, how many of those layouts place a
// bomb there. Counts use math/big throughout: a 30x16 board with 99
// bombs has layout counts that exceed 2^64, so fixed-width integers are
// not an option (spec's resource model explicitly calls this out).
package solution

import (
	"math/big"

	"github.com/pocomotech/sweeper/internal/bombeq"
)

// Layout is the per-bomb-total slice of a Solution: N is the number of
// satisfying layouts with that many bombs, Freq maps each tile in the
// area to how many of those N layouts place a bomb on it.
type Layout struct {
	Freq map[bombeq.Tile]*big.Int
	N    *big.Int
}

// Solution maps a total bomb count over an area to its Layout.
type Solution map[int]Layout

// Empty returns the identity element for Cross (⊗): a single layout with
// zero bombs, zero tiles, and exactly one way to achieve it.
func Empty() Solution {
	return Solution{0: Layout{Freq: map[bombeq.Tile]*big.Int{}, N: big.NewInt(1)}}
}

// cloneLayout deep-copies a Layout so combinators never mutate their
// inputs — Add and Cross are specified as pure, associative/commutative
// operations and property tests rely on that.
func cloneLayout(l Layout) Layout {
	freq := make(map[bombeq.Tile]*big.Int, len(l.Freq))
	for t, n := range l.Freq {
		freq[t] = new(big.Int).Set(n)
	}
	return Layout{Freq: freq, N: new(big.Int).Set(l.N)}
}

// Clone deep-copies a Solution.
func (s Solution) Clone() Solution {
	out := make(Solution, len(s))
	for k, l := range s {
		out[k] = cloneLayout(l)
	}
	return out
}

// Add combines two alternative Solutions for the *same* area (⊕):
// per bomb-total, N and every tile's frequency are summed pointwise.
func Add(a, b Solution) Solution {
	out := a.Clone()
	for k, bl := range b {
		al, ok := out[k]
		if !ok {
			out[k] = cloneLayout(bl)
			continue
		}
		freq := make(map[bombeq.Tile]*big.Int, len(al.Freq)+len(bl.Freq))
		for t, n := range al.Freq {
			freq[t] = new(big.Int).Set(n)
		}
		for t, n := range bl.Freq {
			if existing, ok := freq[t]; ok {
				freq[t] = new(big.Int).Add(existing, n)
			} else {
				freq[t] = new(big.Int).Set(n)
			}
		}
		out[k] = Layout{Freq: freq, N: new(big.Int).Add(al.N, bl.N)}
	}
	return out
}

// Cross combines Solutions for two *disjoint* areas (⊗): every pair of
// bomb-totals (k1, k2) contributes a k1+k2 entry whose layout count is
// the product N1*N2, and whose per-tile frequency scales each side's
// frequency by the other side's layout count.
func Cross(a, b Solution) Solution {
	out := Solution{}
	for k1, l1 := range a {
		for k2, l2 := range b {
			freq := make(map[bombeq.Tile]*big.Int, len(l1.Freq)+len(l2.Freq))
			for t, n := range l1.Freq {
				freq[t] = new(big.Int).Mul(n, l2.N)
			}
			for t, n := range l2.Freq {
				freq[t] = new(big.Int).Mul(n, l1.N)
			}
			layout := Layout{Freq: freq, N: new(big.Int).Mul(l1.N, l2.N)}
			out = Add(out, Solution{k1 + k2: layout})
		}
	}
	return out
}

// Equal reports whether two Solutions describe the same distribution:
// same set of bomb-totals, same N and per-tile frequencies at each.
func Equal(a, b Solution) bool {
	if len(a) != len(b) {
		return false
	}
	for k, la := range a {
		lb, ok := b[k]
		if !ok || la.N.Cmp(lb.N) != 0 {
			return false
		}
		if len(la.Freq) != len(lb.Freq) {
			return false
		}
		for t, n := range la.Freq {
			m, ok := lb.Freq[t]
			if !ok || n.Cmp(m) != 0 {
				return false
			}
		}
	}
	return true
}

// Binomial returns C(n, k), zero for k < 0 or k > n.
func Binomial(n, k int) *big.Int {
	if k < 0 || n < 0 || k > n {
		return big.NewInt(0)
	}
	return new(big.Int).Binomial(int64(n), int64(k))
}
