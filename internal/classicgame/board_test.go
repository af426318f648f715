package classicgame

import (
	"testing"

	"github.com/pocomotech/sweeper/config"
	"github.com/pocomotech/sweeper/internal/geom"
)

func TestInitializeKeepsFirstClickZoneSafe(t *testing.T) {
	b := NewBoard(config.Default(), "easy")
	if b == nil {
		t.Fatal("NewBoard returned nil for a known preset")
	}
	safespot := geom.Tile{Row: 4, Col: 4}
	if err := b.Initialize(safespot); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	if b.ShadowBoard()[4][4] < 0 {
		t.Fatal("safe spot must not be a mine")
	}
	for _, n := range geom.Neighbours(4, 4, 9, 9) {
		if b.ShadowBoard()[n.Row][n.Col] < 0 {
			t.Fatalf("neighbour %+v of safe spot must not be a mine", n)
		}
	}
}

func TestClickRevealsAndPropagatesZeroRegion(t *testing.T) {
	b := NewCustomBoard(9, 9, 0) // no mines: every click should flood the whole board
	b.Initialize(geom.Tile{Row: 0, Col: 0})

	if hit := b.Click(geom.Tile{Row: 0, Col: 0}); hit {
		t.Fatal("unexpected mine hit on a mine-free board")
	}
	if b.SafeRemaining() != 0 {
		t.Errorf("SafeRemaining = %d, want 0 after flooding a mine-free board", b.SafeRemaining())
	}
}

func TestUnknownDifficultyReturnsNil(t *testing.T) {
	if NewBoard(config.Default(), "impossible") != nil {
		t.Fatal("expected nil board for an unrecognised difficulty")
	}
}

func TestToggleFlagProtectsFromReveal(t *testing.T) {
	b := NewCustomBoard(3, 3, 0)
	b.Initialize(geom.Tile{Row: 1, Col: 1})
	loc := geom.Tile{Row: 0, Col: 0}

	b.ToggleFlag(loc)
	b.Click(loc)
	if b.Label(loc) != "" {
		t.Error("a flagged cell must not reveal on click")
	}
}
