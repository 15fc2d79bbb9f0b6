package search

import (
	"fmt"

	"github.com/Actimia/aoc25/core"
)

// BFS runs a breadth-first traversal from start.
// Complexity: O(V + E) with sorted neighbor iteration.
func BFS(g *core.Graph, start string) (*Result, error) {
	return Traverse(g, start, BreadthFirst)
}

// DFS runs a depth-first traversal from start.
// Complexity: O(V + E) with sorted neighbor iteration.
func DFS(g *core.Graph, start string) (*Result, error) {
	return Traverse(g, start, DepthFirst)
}

// Traverse walks the component containing start. The mode decides whether
// the frontier behaves as a queue (BreadthFirst) or a stack (DepthFirst);
// everything else is shared, the way a single search routine can serve
// both disciplines.
//
// Vertices are marked when they enter the frontier, so each is visited
// exactly once. Returns ErrNilGraph or ErrVertexNotFound on invalid input.
func Traverse(g *core.Graph, start string, mode Mode) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(start) {
		return nil, ErrVertexNotFound
	}

	n := g.VertexCount()
	res := &Result{
		Order:  make([]string, 0, n),
		Depth:  make(map[string]int, n),
		Parent: make(map[string]string, n),
	}

	type frame struct {
		id    string
		depth int
	}
	frontier := []frame{{id: start, depth: 0}}
	seen := map[string]bool{start: true}
	res.Depth[start] = 0

	for len(frontier) > 0 {
		var cur frame
		if mode == BreadthFirst {
			cur = frontier[0]
			frontier = frontier[1:]
		} else {
			cur = frontier[len(frontier)-1]
			frontier = frontier[:len(frontier)-1]
		}
		res.Order = append(res.Order, cur.id)

		nbrs, err := g.NeighborIDs(cur.id)
		if err != nil {
			return nil, fmt.Errorf("search: neighbors of %q: %w", cur.id, err)
		}
		for _, nbr := range nbrs {
			if seen[nbr] {
				continue
			}
			seen[nbr] = true
			res.Depth[nbr] = cur.depth + 1
			res.Parent[nbr] = cur.id
			frontier = append(frontier, frame{id: nbr, depth: cur.depth + 1})
		}
	}

	return res, nil
}
