package mst

import (
	"github.com/Actimia/aoc25/core"
	"github.com/Actimia/aoc25/pqueue"
)

// Prim computes a minimum spanning tree by growing the tree outward from
// root, always taking the lightest edge crossing the frontier. The
// frontier lives in a min-heap with lazy entries: edges into already
// claimed vertices are discarded when popped.
//
// Validation: graph non-nil (ErrNilGraph), non-empty (ErrDisconnected),
// root provided (ErrEmptyRoot) and present (ErrVertexNotFound).
//
// Complexity: O(E log E). Memory: O(V + E).
func Prim(g *core.Graph, root string) ([]core.Edge, int64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !g.HasVertex(root) {
		return nil, 0, ErrVertexNotFound
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	inTree := make(map[string]bool, len(vertices))
	frontier := pqueue.New[core.Edge, int64]()

	// claim marks a vertex as part of the tree and pushes its crossing
	// edges onto the frontier.
	claim := func(id string) error {
		inTree[id] = true
		edges, err := g.Neighbors(id)
		if err != nil {
			return err
		}
		for _, e := range edges {
			if e.U == e.V {
				continue // self-loop
			}
			if !inTree[e.Other(id)] {
				frontier.Push(e, e.Weight)
			}
		}

		return nil
	}

	var (
		tree  []core.Edge
		total int64
	)
	if err := claim(root); err != nil {
		return nil, 0, err
	}
	for frontier.Len() > 0 && len(tree) < len(vertices)-1 {
		e, _, err := frontier.Pop()
		if err != nil {
			return nil, 0, err
		}

		// Exactly one endpoint may still be outside the tree; both inside
		// means the entry went stale while queued.
		var next string
		switch {
		case !inTree[e.U]:
			next = e.U
		case !inTree[e.V]:
			next = e.V
		default:
			continue
		}

		tree = append(tree, e)
		total += e.Weight
		if err = claim(next); err != nil {
			return nil, 0, err
		}
	}

	if len(tree) < len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}
