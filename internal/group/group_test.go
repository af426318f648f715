package group

import (
	"testing"

	"github.com/pocomotech/sweeper/internal/bombeq"
)

func TestGroupSplitsDisjointComponents(t *testing.T) {
	a := bombeq.New([]bombeq.Tile{{0, 0}, {0, 1}}, []int{1})
	b := bombeq.New([]bombeq.Tile{{0, 1}, {0, 2}}, []int{1})
	c := bombeq.New([]bombeq.Tile{{5, 5}, {5, 6}}, []int{1})

	groups := Group([]bombeq.Equation{a, b, c})
	if len(groups) != 2 {
		t.Fatalf("expected 2 components, got %d: %v", len(groups), groups)
	}

	sizes := map[int]int{}
	for _, g := range groups {
		sizes[len(g)]++
	}
	if sizes[2] != 1 || sizes[1] != 1 {
		t.Fatalf("expected one 2-equation component (a,b chained via tile (0,1)) and one 1-equation component, got sizes %v", groups)
	}
}

func TestGroupEmpty(t *testing.T) {
	if got := Group(nil); got != nil {
		t.Fatalf("Group(nil) = %v, want nil", got)
	}
}

func TestGroupSingleComponent(t *testing.T) {
	a := bombeq.New([]bombeq.Tile{{0, 0}, {0, 1}}, []int{1})
	b := bombeq.New([]bombeq.Tile{{0, 1}, {0, 2}}, []int{1})
	c := bombeq.New([]bombeq.Tile{{0, 2}, {0, 3}}, []int{1})

	groups := Group([]bombeq.Equation{a, b, c})
	if len(groups) != 1 || len(groups[0]) != 3 {
		t.Fatalf("expected a single 3-equation component, got %v", groups)
	}
}
