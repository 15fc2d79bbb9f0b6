// Package search implements graph traversal and shortest-path algorithms
// over core.Graph: breadth-first and depth-first traversal, Dijkstra, and
// A*.
//
// All algorithms visit neighbors in ascending vertex-ID order, so results
// are deterministic for a given graph.
package search

import (
	"errors"
	"fmt"
)

// Sentinel errors for search operations.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrVertexNotFound indicates a start or goal vertex does not exist.
	ErrVertexNotFound = errors.New("search: vertex not found")

	// ErrNegativeWeight indicates a negative edge weight, which Dijkstra
	// and A* cannot handle.
	ErrNegativeWeight = errors.New("search: negative edge weight encountered")

	// ErrNoPath indicates no path exists to the requested destination.
	ErrNoPath = errors.New("search: no path to destination")

	// ErrNilHeuristic indicates AStar was called without a heuristic.
	ErrNilHeuristic = errors.New("search: heuristic is nil")
)

// Mode selects the traversal discipline for Traverse.
type Mode int

const (
	// BreadthFirst explores the frontier as a FIFO queue.
	BreadthFirst Mode = iota

	// DepthFirst explores the frontier as a LIFO stack.
	DepthFirst
)

// Result holds the outcome of a traversal:
//   - Order: vertices in visit sequence.
//   - Depth: vertex ID → depth (in edges) in the traversal tree.
//   - Parent: vertex ID → predecessor in the traversal tree (absent for
//     the start vertex).
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo reconstructs the tree path from the start vertex to dest.
// Returns ErrNoPath if dest was never reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoPath, dest)
	}

	path := []string{dest}
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	reverse(path)

	return path, nil
}

// reverse flips a path in place.
func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
