/*

	percent.go - exact round-half-to-even percentage for board display

*/

package sweeper

import "math/big"

// roundPercent computes round(100*m/n) using round-half-to-even on the
// exact rational 100*m/n, never an intermediate float. spec.md leaves
// the .5 tie-break an open question; this module picks banker's
// rounding (round half to even) and documents the choice here rather
// than in comments scattered across the call sites.
func roundPercent(m, n *big.Int) int {
	numerator := new(big.Int).Mul(big.NewInt(100), m)
	quotient, remainder := new(big.Int).QuoRem(numerator, n, new(big.Int))

	twiceRemainder := new(big.Int).Lsh(remainder, 1) // 2*remainder
	switch twiceRemainder.Cmp(n) {
	case -1:
		// below the halfway point, round down
	case 1:
		quotient.Add(quotient, big.NewInt(1))
	default:
		// exactly halfway: round to the nearest even integer
		if quotient.Bit(0) == 1 {
			quotient.Add(quotient, big.NewInt(1))
		}
	}

	return int(quotient.Int64())
}
