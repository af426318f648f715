/*

	integrate.go - constraint store and the fixed-point integrator

*/

// Package integrate folds newly observed BombEquations into a canonical
// constraint store, simplifying existing equations against new ones (and
// vice versa) until no further reduction is possible.
package integrate

import (
	"errors"

	"github.com/pocomotech/sweeper/internal/bombeq"
)

// ErrContradiction is returned when an equation with no possible bomb
// count enters the worklist. The store that produced it is left in
// whatever partial state it reached and must not be trusted further;
// callers treat this as terminal until the owning Sweeper is reset.
var ErrContradiction = errors.New("contradiction")

// Store holds the reduced set of constraints: no two equations are
// equal, none is splittable, inert, or impossible. Trivial single-tile
// equations (a tile known safe or known bomb) are kept in the store, so
// equations integrated later that mention the tile are reduced by them.
type Store struct {
	equations []bombeq.Equation
}

// NewStore returns an empty constraint store.
func NewStore() *Store {
	return &Store{}
}

// Equations returns a copy of the current constraint set.
func (s *Store) Equations() []bombeq.Equation {
	out := make([]bombeq.Equation, len(s.equations))
	copy(out, s.equations)
	return out
}

// Clone returns a copy of the store that can be integrated into without
// affecting the original.
func (s *Store) Clone() *Store {
	return &Store{equations: s.Equations()}
}

// Len reports the number of equations currently held.
func (s *Store) Len() int {
	return len(s.equations)
}

// Integrate folds newEquations into the store via the queue-driven fixed
// point: each popped equation is checked for impossibility, split if
// splittable, discarded if inert, then compared against every stored
// equation. Equations that exactly match are discarded; equations the
// popped one logically implies are weakened and requeued; an equation
// that the popped one is implied by causes the popped equation itself to
// be weakened and requeued instead. The store is mutated in place.
func (s *Store) Integrate(newEquations []bombeq.Equation) error {
	worklist := append([]bombeq.Equation(nil), newEquations...)

	for len(worklist) > 0 {
		e := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		if e.IsImpossible() {
			return ErrContradiction
		}
		if e.IsSplittable() {
			worklist = append(worklist, e.Split()...)
			continue
		}
		if e.IsInert() {
			continue
		}

		addE := true
		var toRemove []int // indices into s.equations, scanned in order

		for i, stored := range s.equations {
			switch {
			case e.Equal(stored):
				addE = false
			case e.LE(stored):
				// e's exact count is known and e's tiles are a subset of
				// stored's: weaken stored by subtracting e from it.
				worklist = append(worklist, e.Sub(stored))
				toRemove = append(toRemove, i)
				continue
			case stored.LE(e):
				// stored's exact count is known and its tiles are a
				// subset of e's: weaken e by subtracting stored from it.
				worklist = append(worklist, stored.Sub(e))
				addE = false
			default:
				continue
			}
			break
		}

		if len(toRemove) > 0 {
			s.removeIndices(toRemove)
		}
		if addE {
			s.equations = append(s.equations, e)
		}
	}

	return nil
}

// removeIndices deletes the given (ascending, as produced by the scan
// above) indices from the store in a single pass.
func (s *Store) removeIndices(indices []int) {
	remove := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		remove[i] = struct{}{}
	}
	kept := s.equations[:0]
	for i, eq := range s.equations {
		if _, skip := remove[i]; skip {
			continue
		}
		kept = append(kept, eq)
	}
	s.equations = kept
}
