/*

	group.go - partition constraints into tile-connected components

*/

// Package group partitions a set of BombEquations into maximal groups
// such that two equations are in the same group iff they are joined by a
// chain of shared tiles. This lets the area solver treat disjoint
// portions of the board as independent subproblems and combine them
// multiplicatively instead of enumerating the whole board jointly.
package group

import (
	"github.com/pocomotech/sweeper/internal/bombeq"
)

// unionFind is a standard disjoint-set structure over tiles, with path
// compression and union-by-rank for near-linear amortised operations.
type unionFind struct {
	parent map[bombeq.Tile]bombeq.Tile
	rank   map[bombeq.Tile]int
	order  []bombeq.Tile // first-seen order, for deterministic output grouping
}

func newUnionFind() *unionFind {
	return &unionFind{
		parent: make(map[bombeq.Tile]bombeq.Tile),
		rank:   make(map[bombeq.Tile]int),
	}
}

func (u *unionFind) find(t bombeq.Tile) bombeq.Tile {
	root, ok := u.parent[t]
	if !ok {
		u.parent[t] = t
		u.order = append(u.order, t)
		return t
	}
	if root != t {
		root = u.find(root)
		u.parent[t] = root
	}
	return root
}

func (u *unionFind) union(a, b bombeq.Tile) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}
}

// Group partitions equations by tile-connectivity. The output preserves
// the order in which each component's root tile was first encountered;
// within a component, equations retain their relative input order. Any
// correct partition satisfies the module's contract, but this ordering
// makes results deterministic for a fixed input order.
func Group(equations []bombeq.Equation) [][]bombeq.Equation {
	if len(equations) == 0 {
		return nil
	}

	uf := newUnionFind()
	for _, e := range equations {
		tiles := e.Tiles()
		for _, t := range tiles {
			uf.find(t) // register
		}
		for i := 1; i < len(tiles); i++ {
			uf.union(tiles[0], tiles[i])
		}
	}

	rootOrder := make([]bombeq.Tile, 0)
	rootIndex := make(map[bombeq.Tile]int)
	buckets := make([][]bombeq.Equation, 0)

	for _, e := range equations {
		root := uf.find(e.Tiles()[0])
		idx, ok := rootIndex[root]
		if !ok {
			idx = len(buckets)
			rootIndex[root] = idx
			rootOrder = append(rootOrder, root)
			buckets = append(buckets, nil)
		}
		buckets[idx] = append(buckets[idx], e)
	}

	return buckets
}
