package search

import (
	"fmt"

	"github.com/Actimia/aoc25/core"
	"github.com/Actimia/aoc25/pqueue"
)

// Dijkstra computes minimum path costs from source to every reachable
// vertex. Edge weights must be non-negative.
//
// Returns:
//
//   - dist: vertex ID → minimum cost; vertices absent from the map are
//     unreachable from source.
//   - prev: vertex ID → predecessor on a cheapest path (absent for the
//     source itself).
//
// Validation order: nil graph (ErrNilGraph), missing source
// (ErrVertexNotFound), then an upfront scan of all edges to fail fast on
// negative weights (ErrNegativeWeight with the offending edge).
//
// The priority queue uses lazy decrease-key: improved distances push a new
// entry, stale entries are skipped after popping.
//
// Complexity: O((V + E) log V). Space: O(V + E).
func Dijkstra(g *core.Graph, source string) (map[string]int64, map[string]string, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, nil, ErrVertexNotFound
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s—%s weight=%d", ErrNegativeWeight, e.U, e.V, e.Weight)
		}
	}

	n := g.VertexCount()
	dist := make(map[string]int64, n)
	prev := make(map[string]string, n)
	done := make(map[string]bool, n)

	pq := pqueue.New[string, int64]()
	dist[source] = 0
	pq.Push(source, 0)

	for pq.Len() > 0 {
		u, d, err := pq.Pop()
		if err != nil {
			return nil, nil, err
		}
		if done[u] {
			continue // stale lazy entry
		}
		done[u] = true

		edges, err := g.Neighbors(u)
		if err != nil {
			return nil, nil, fmt.Errorf("search: neighbors of %q: %w", u, err)
		}
		for _, e := range edges {
			v := e.Other(u)
			cand := d + e.Weight
			if cur, ok := dist[v]; ok && cand >= cur {
				continue
			}
			dist[v] = cand
			prev[v] = u
			pq.Push(v, cand)
		}
	}

	return dist, prev, nil
}

// ShortestPath returns a cheapest path from source to dest and its cost.
// Returns ErrNoPath when dest is unreachable.
// Complexity: one Dijkstra run, O((V + E) log V).
func ShortestPath(g *core.Graph, source, dest string) ([]string, int64, error) {
	if g != nil && !g.HasVertex(dest) {
		return nil, 0, ErrVertexNotFound
	}
	dist, prev, err := Dijkstra(g, source)
	if err != nil {
		return nil, 0, err
	}
	cost, ok := dist[dest]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrNoPath, dest)
	}

	path := []string{dest}
	for cur := dest; cur != source; {
		cur = prev[cur]
		path = append(path, cur)
	}
	reverse(path)

	return path, cost, nil
}
