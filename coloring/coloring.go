// Package coloring assigns colors to the vertices of an undirected graph
// so that adjacent vertices never share a color.
//
// Greedy runs the sequential coloring heuristic under a configurable
// vertex order: natural ID order, largest-degree-first, or DSATUR
// (highest saturation first). Greedy colorings are valid but not
// necessarily minimal; DSATUR is exact on bipartite graphs and usually
// tightest in practice.
//
// IsBipartite answers 2-colorability directly via BFS and returns the
// witness 2-coloring when one exists.
package coloring

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Actimia/aoc25/core"
)

// Sentinel errors for coloring operations.
var (
	// ErrNilGraph indicates a nil graph argument.
	ErrNilGraph = errors.New("coloring: nil graph")

	// ErrSelfLoop indicates a graph with a self-loop, which no proper
	// coloring can satisfy.
	ErrSelfLoop = errors.New("coloring: graph has a self-loop")

	// ErrUnknownOrder indicates an unrecognized vertex order.
	ErrUnknownOrder = errors.New("coloring: unknown vertex order")

	// ErrInvalidColoring indicates a candidate assignment that misses a
	// vertex or colors two adjacent vertices alike.
	ErrInvalidColoring = errors.New("coloring: invalid coloring")
)

// Order selects the vertex sequence the greedy heuristic follows.
type Order string

const (
	// OrderNatural colors vertices in sorted ID order.
	OrderNatural Order = "natural"

	// OrderLargestFirst colors by descending degree, IDs ascending on
	// ties (Welsh-Powell).
	OrderLargestFirst Order = "largest-first"

	// OrderDSATUR always colors the uncolored vertex with the most
	// distinctly-colored neighbors next (Brélaz).
	OrderDSATUR Order = "dsatur"
)

// Coloring is a proper vertex coloring: 0-based colors per vertex ID.
type Coloring struct {
	// Colors maps every vertex to its color.
	Colors map[string]int

	// NumColors is the number of distinct colors used.
	NumColors int
}

// Options configures Greedy.
type Options struct {
	// Order is the vertex sequencing strategy.
	Order Order
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions colors in natural order.
func DefaultOptions() Options {
	return Options{Order: OrderNatural}
}

// WithOrder selects the vertex sequencing strategy.
func WithOrder(order Order) Option {
	return func(o *Options) { o.Order = order }
}

// Greedy colors g sequentially, giving each vertex the smallest color
// absent from its already-colored neighbors.
//
// Validation: g non-nil (ErrNilGraph), loop-free (ErrSelfLoop), known
// order (ErrUnknownOrder). An empty graph yields an empty coloring.
//
// Complexity: O(V² + E) for DSATUR, O(V log V + E) otherwise.
func Greedy(g *core.Graph, opts ...Option) (*Coloring, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := rejectLoops(g); err != nil {
		return nil, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	colors := make(map[string]int, g.VertexCount())
	switch o.Order {
	case OrderNatural:
		colorSequence(g, g.Vertices(), colors)
	case OrderLargestFirst:
		colorSequence(g, largestFirst(g), colors)
	case OrderDSATUR:
		colorDSATUR(g, colors)
	default:
		return nil, ErrUnknownOrder
	}

	return &Coloring{Colors: colors, NumColors: countColors(colors)}, nil
}

// IsBipartite reports whether g is 2-colorable, returning the witness
// coloring when it is. Runs BFS from every component, alternating the
// two colors level by level.
//
// Complexity: O(V + E).
func IsBipartite(g *core.Graph) (*Coloring, bool, error) {
	if g == nil {
		return nil, false, ErrNilGraph
	}
	if err := rejectLoops(g); err != nil {
		return nil, false, err
	}

	colors := make(map[string]int, g.VertexCount())
	for _, start := range g.Vertices() {
		if _, done := colors[start]; done {
			continue
		}
		colors[start] = 0
		queue := []string{start}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			neighbors, err := g.NeighborIDs(cur)
			if err != nil {
				return nil, false, err
			}
			for _, next := range neighbors {
				if c, seen := colors[next]; seen {
					if c == colors[cur] {
						return nil, false, nil
					}
					continue
				}
				colors[next] = 1 - colors[cur]
				queue = append(queue, next)
			}
		}
	}

	return &Coloring{Colors: colors, NumColors: countColors(colors)}, true, nil
}

// Validate checks a candidate assignment against g: every vertex must
// be colored and no edge monochromatic. Violations return errors
// wrapping ErrInvalidColoring.
func Validate(g *core.Graph, c *Coloring) error {
	if g == nil {
		return ErrNilGraph
	}
	if c == nil {
		return fmt.Errorf("%w: nil coloring", ErrInvalidColoring)
	}
	for _, id := range g.Vertices() {
		if _, ok := c.Colors[id]; !ok {
			return fmt.Errorf("%w: vertex %q uncolored", ErrInvalidColoring, id)
		}
	}
	for _, e := range g.Edges() {
		if c.Colors[e.U] == c.Colors[e.V] {
			return fmt.Errorf("%w: edge %s-%s monochromatic", ErrInvalidColoring, e.U, e.V)
		}
	}

	return nil
}

// rejectLoops fails on any self-loop.
func rejectLoops(g *core.Graph) error {
	for _, e := range g.Edges() {
		if e.U == e.V {
			return ErrSelfLoop
		}
	}

	return nil
}

// colorSequence assigns each vertex in sequence the smallest color its
// colored neighbors do not use.
func colorSequence(g *core.Graph, sequence []string, colors map[string]int) {
	for _, id := range sequence {
		neighbors, err := g.NeighborIDs(id)
		if err != nil {
			continue // vertex removed concurrently; nothing to color
		}
		colors[id] = smallestFree(neighbors, colors)
	}
}

// largestFirst orders vertices by descending degree, ascending ID on
// ties.
func largestFirst(g *core.Graph) []string {
	ids := g.Vertices()
	degrees := make(map[string]int, len(ids))
	for _, id := range ids {
		d, _ := g.Degree(id)
		degrees[id] = d
	}
	sort.SliceStable(ids, func(i, j int) bool {
		if degrees[ids[i]] != degrees[ids[j]] {
			return degrees[ids[i]] > degrees[ids[j]]
		}

		return ids[i] < ids[j]
	})

	return ids
}

// colorDSATUR repeatedly colors the uncolored vertex with the highest
// saturation (distinct neighbor colors), breaking ties by degree then
// ID.
func colorDSATUR(g *core.Graph, colors map[string]int) {
	ids := g.Vertices()
	degrees := make(map[string]int, len(ids))
	for _, id := range ids {
		d, _ := g.Degree(id)
		degrees[id] = d
	}

	for len(colors) < len(ids) {
		bestID := ""
		bestSat := -1
		for _, id := range ids {
			if _, done := colors[id]; done {
				continue
			}
			sat := saturation(g, id, colors)
			switch {
			case sat > bestSat:
				bestID, bestSat = id, sat
			case sat == bestSat && degrees[id] > degrees[bestID]:
				bestID = id
			}
		}

		neighbors, err := g.NeighborIDs(bestID)
		if err != nil {
			return
		}
		colors[bestID] = smallestFree(neighbors, colors)
	}
}

// saturation counts the distinct colors among id's colored neighbors.
func saturation(g *core.Graph, id string, colors map[string]int) int {
	neighbors, err := g.NeighborIDs(id)
	if err != nil {
		return 0
	}
	distinct := make(map[int]bool)
	for _, n := range neighbors {
		if c, ok := colors[n]; ok {
			distinct[c] = true
		}
	}

	return len(distinct)
}

// smallestFree returns the lowest color unused by the colored vertices
// in neighbors.
func smallestFree(neighbors []string, colors map[string]int) int {
	used := make(map[int]bool, len(neighbors))
	for _, n := range neighbors {
		if c, ok := colors[n]; ok {
			used[c] = true
		}
	}
	for c := 0; ; c++ {
		if !used[c] {
			return c
		}
	}
}

// countColors returns the number of distinct colors in an assignment.
func countColors(colors map[string]int) int {
	distinct := make(map[int]bool, len(colors))
	for _, c := range colors {
		distinct[c] = true
	}

	return len(distinct)
}
