package mst

import (
	"sort"

	"github.com/Actimia/aoc25/core"
	"github.com/Actimia/aoc25/unionfind"
)

// Kruskal computes a minimum spanning tree by scanning edges in ascending
// weight order and joining components through a disjoint-set forest.
//
// Steps:
//  1. Validate: graph non-nil; empty graph → ErrDisconnected; a single
//     vertex → trivial empty MST.
//  2. Collect edges, skipping self-loops.
//  3. Stable-sort by weight; equal weights keep the deterministic (U, V)
//     order of core.Edges, so ties break the same way on every run.
//  4. For each edge joining two components, union them and keep the edge,
//     stopping at |V|-1 edges.
//  5. Fewer than |V|-1 kept edges means the graph was disconnected.
//
// Complexity: O(E log E + E·α(V)) ≈ O(E log V). Memory: O(V + E).
func Kruskal(g *core.Graph) ([]core.Edge, int64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	all := g.Edges()
	edges := make([]core.Edge, 0, len(all))
	for _, e := range all {
		if e.U == e.V {
			continue // self-loop, never part of a spanning tree
		}
		edges = append(edges, e)
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	dsu := unionfind.New()
	for _, id := range vertices {
		if err := dsu.Add(id); err != nil {
			return nil, 0, err
		}
	}

	var (
		tree  []core.Edge
		total int64
	)
	for _, e := range edges {
		joined, err := dsu.Connected(e.U, e.V)
		if err != nil {
			return nil, 0, err
		}
		if joined {
			continue
		}
		if _, err = dsu.Union(e.U, e.V); err != nil {
			return nil, 0, err
		}
		tree = append(tree, e)
		total += e.Weight
		if len(tree) == len(vertices)-1 {
			break
		}
	}

	if len(tree) < len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}
