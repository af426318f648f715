/*

	sweeper.go - Sweeper façade: owns the store, ingests observations,
	projects a probability board

*/

// Package sweeper implements the Sweeper façade described by spec.md §4.5
// and §6: it owns the constraint store and the unconstrained tile pool,
// dispatches observations into BombEquations for the integrator, and
// projects the current state into a board of display strings via the
// area solver. Unlike the algebra packages underneath (bombeq,
// integrate, group, area, solution), which use neither the logging nor
// the config package, it reads config and logs contradictions.
package sweeper

import (
	"errors"
	"fmt"
	"math/big"
	"sort"

	"github.com/google/uuid"

	"github.com/pocomotech/sweeper/config"
	"github.com/pocomotech/sweeper/internal/area"
	"github.com/pocomotech/sweeper/internal/bombeq"
	"github.com/pocomotech/sweeper/internal/geom"
	"github.com/pocomotech/sweeper/internal/integrate"
	"github.com/pocomotech/sweeper/internal/log"
	"github.com/pocomotech/sweeper/internal/solution"
)

const (
	markerSafe        = "S"
	markerCertainBomb = "B/R"
	messageImpossible = "Impossible layout"
	messageTooLarge   = "Constraint area too large to enumerate"
	messageNone       = ""
)

// InvalidCoordinateError is the precondition-violation fault raised when
// a caller passes a tile outside the board's bounds. Per spec.md §7 this
// is a programmer error, not a recoverable runtime condition — callers
// should validate coordinates before calling IntegrateNewInfo, the same
// way the teacher's Board.ValidLocation gate existed for that purpose.
type InvalidCoordinateError struct {
	Row, Col      int
	Height, Width int
}

func (e InvalidCoordinateError) Error() string {
	return fmt.Sprintf("sweeper: tile (%d,%d) out of bounds for %dx%d board", e.Row, e.Col, e.Height, e.Width)
}

// Sweeper holds everything needed to answer "what's the bomb probability
// of every covered tile", given a stream of observations.
type Sweeper struct {
	ID uuid.UUID

	cfg        config.Config
	version    string
	difficulty string

	height, width, bombs int

	board         [][]string
	store         *integrate.Store
	unconstrained map[geom.Tile]struct{}
	message       string
}

// New creates a Sweeper with explicit dimensions, per spec.md §6's
// new(version, height, width, bombs).
func New(cfg config.Config, version string, height, width, bombs int) *Sweeper {
	s := &Sweeper{ID: uuid.New(), cfg: cfg, version: version, difficulty: "custom"}
	s.height, s.width, s.bombs = height, width, bombs
	s.Reset()
	return s
}

// NewDefault creates a Sweeper using config.Default() and the "easy"
// preset of the given version.
func NewDefault(version string) *Sweeper {
	s := &Sweeper{ID: uuid.New(), cfg: config.Default(), version: version}
	if err := s.SetDifficulty("easy"); err != nil {
		// config.Default() always defines an "easy" preset for both
		// versions; this can only happen if a caller corrupts the
		// built-in config, which is itself a programmer error.
		panic(err)
	}
	return s
}

// Reset zeroes the board, clears the constraint store, restores every
// tile to unconstrained, and clears any message.
func (s *Sweeper) Reset() {
	s.board = make([][]string, s.height)
	for r := range s.board {
		s.board[r] = make([]string, s.width)
	}
	s.store = integrate.NewStore()
	s.unconstrained = make(map[geom.Tile]struct{}, s.height*s.width)
	for r := 0; r < s.height; r++ {
		for c := 0; c < s.width; c++ {
			s.unconstrained[geom.Tile{Row: r, Col: c}] = struct{}{}
		}
	}
	s.message = messageNone
}

// SetVersion switches the ruleset (classic/variant) and resets to that
// version's easy preset, mirroring the reference implementation's
// set_classic/set_thrill_digger behaviour of always landing on "easy".
func (s *Sweeper) SetVersion(version string) error {
	s.version = version
	return s.SetDifficulty("easy")
}

// SetDifficulty looks up a named preset for the current version, applies
// its dimensions, and resets. Every difficulty change implies Reset, per
// spec.md §9's decision on the mid-game set_difficulty open question.
func (s *Sweeper) SetDifficulty(name string) error {
	preset, ok := s.cfg.Preset(s.version, name)
	if !ok {
		return fmt.Errorf("sweeper: unknown %s preset %q", s.version, name)
	}
	s.height, s.width, s.bombs = preset.Height, preset.Width, preset.Bombs
	s.difficulty = name
	s.Reset()
	return nil
}

// SetCustom applies explicit dimensions and resets.
func (s *Sweeper) SetCustom(height, width, bombs int) {
	s.height, s.width, s.bombs = height, width, bombs
	s.difficulty = "custom"
	s.Reset()
}

// Dimensions returns the board's height, width and declared bomb count.
func (s *Sweeper) Dimensions() (height, width, bombs int) {
	return s.height, s.width, s.bombs
}

// Message returns the current diagnostic message ("" if none).
func (s *Sweeper) Message() string {
	return s.message
}

// Board returns a snapshot of the display grid.
func (s *Sweeper) Board() [][]string {
	out := make([][]string, len(s.board))
	for r, row := range s.board {
		out[r] = append([]string(nil), row...)
	}
	return out
}

func (s *Sweeper) validate(row, col int) {
	if row < 0 || row >= s.height || col < 0 || col >= s.width {
		panic(InvalidCoordinateError{Row: row, Col: col, Height: s.height, Width: s.width})
	}
}

// IntegrateNewInfo ingests one revealed tile's label. Numeric/colour
// labels push both a "this tile is not a bomb" equation and a
// neighbourhood bomb-count equation; bomb labels pin the tile to exactly
// one bomb; empty or unrecognised labels are a no-op. Out-of-range
// coordinates panic — this is a precondition violation, not a runtime
// error the caller can recover from (spec.md §7).
func (s *Sweeper) IntegrateNewInfo(row, col int, label string) {
	s.validate(row, col)
	tile := geom.Tile{Row: row, Col: col}

	if counts, ok := s.cfg.BombCounts(s.version, label); ok {
		s.board[row][col] = label
		delete(s.unconstrained, tile)

		neighbours := geom.Neighbours(row, col, s.height, s.width)
		for _, n := range neighbours {
			delete(s.unconstrained, n)
		}

		newEquations := []bombeq.Equation{bombeq.New([]bombeq.Tile{tile}, []int{0})}
		if len(neighbours) > 0 {
			newEquations = append(newEquations, bombeq.New(neighbours, counts))
		}
		s.integrate(newEquations)
		return
	}

	if s.cfg.IsBombLabel(s.version, label) {
		s.board[row][col] = label
		delete(s.unconstrained, tile)
		s.integrate([]bombeq.Equation{bombeq.New([]bombeq.Tile{tile}, []int{1})})
		return
	}

	// Empty, "F", "?", or anything else: still covered, no-op.
}

func (s *Sweeper) integrate(equations []bombeq.Equation) {
	if err := s.store.Integrate(equations); err != nil {
		if errors.Is(err, integrate.ErrContradiction) {
			s.message = messageImpossible
			log.Warn("sweeper: contradiction", "session", s.ID, "equations", len(equations))
			return
		}
		panic(err) // integrate.Store.Integrate has no other error kind
	}
}

// CalculateBoard recomputes the probability board from the current
// constraint store and unconstrained pool, per spec.md §4.5. It is
// idempotent: calling it twice with no intervening observation produces
// the same board (the deferred-trivials feedback it performs only tightens
// the store, it never changes the displayed values).
func (s *Sweeper) CalculateBoard() {
	if s.message == messageImpossible {
		return // solver stays inert until Reset, per spec.md §7
	}

	sol, err := area.Solve(s.store.Equations())
	if errors.Is(err, area.ErrTooLarge) {
		s.message = messageTooLarge
		return
	}
	if errors.Is(err, integrate.ErrContradiction) {
		s.message = messageImpossible
		return
	}
	if err != nil {
		panic(err)
	}

	bombInstances, total := s.bombFractions(sol)
	s.applyBombFractions(bombInstances, total)
}

// bombFractions folds the constrained-area Solution together with the
// closed-form combinatorics of the unconstrained pool, per spec.md §4.5
// step 2: for each bomb-total k in sol, the unconstrained pool can supply
// the remaining bombs in C(U, bombs-k) ways.
func (s *Sweeper) bombFractions(sol solution.Solution) (map[geom.Tile]*big.Int, *big.Int) {
	u := len(s.unconstrained)
	bombInstances := map[geom.Tile]*big.Int{}
	unconstrainedInstances := big.NewInt(0)
	total := big.NewInt(0)

	for k, layout := range sol {
		remainderLayouts := solution.Binomial(u, s.bombs-k)

		for tile, freq := range layout.Freq {
			contribution := new(big.Int).Mul(freq, remainderLayouts)
			if existing, ok := bombInstances[tile]; ok {
				bombInstances[tile] = new(big.Int).Add(existing, contribution)
			} else {
				bombInstances[tile] = contribution
			}
		}

		perUnconstrainedTile := solution.Binomial(u-1, s.bombs-k-1)
		unconstrainedInstances.Add(unconstrainedInstances, new(big.Int).Mul(layout.N, perUnconstrainedTile))

		total.Add(total, new(big.Int).Mul(layout.N, remainderLayouts))
	}

	for tile := range s.unconstrained {
		bombInstances[tile] = unconstrainedInstances
	}

	return bombInstances, total
}

// applyBombFractions writes "S"/"B/R"/"NN%" into the board for every
// covered tile, and feeds newly-certain tiles back through the
// integrator so the next CalculateBoard call sees a tighter store.
func (s *Sweeper) applyBombFractions(bombInstances map[geom.Tile]*big.Int, total *big.Int) {
	if total.Sign() == 0 {
		s.message = messageImpossible
		return
	}

	tiles := make([]geom.Tile, 0, len(bombInstances))
	for t := range bombInstances {
		tiles = append(tiles, t)
	}
	sort.Slice(tiles, func(i, j int) bool { return tiles[i].Less(tiles[j]) })

	deferred := make([]bombeq.Equation, 0)
	for _, tile := range tiles {
		m := bombInstances[tile]
		row, col := tile.Row, tile.Col

		switch {
		case m.Sign() == 0:
			if _, observed := s.cfg.BombCounts(s.version, s.board[row][col]); !observed {
				s.board[row][col] = markerSafe
				deferred = append(deferred, bombeq.New([]bombeq.Tile{tile}, []int{0}))
				delete(s.unconstrained, tile)
			}
		case m.Cmp(total) == 0:
			deferred = append(deferred, bombeq.New([]bombeq.Tile{tile}, []int{1}))
			delete(s.unconstrained, tile)
			if !s.cfg.IsBombLabel(s.version, s.board[row][col]) {
				s.board[row][col] = markerCertainBomb
			}
		default:
			s.board[row][col] = fmt.Sprintf("%d%%", roundPercent(m, total))
		}
	}

	s.integrate(deferred)
}
