// Package mst computes minimum spanning trees of undirected weighted
// graphs, via Kruskal's or Prim's algorithm.
//
// Both algorithms return the MST edge set and its total weight. A graph
// with a single vertex has the trivial empty MST; an empty or
// disconnected graph has none (ErrDisconnected). Self-loops can never be
// part of a spanning tree and are skipped.
package mst

import (
	"errors"

	"github.com/Actimia/aoc25/core"
)

// Sentinel errors for MST computation.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrDisconnected indicates no spanning tree covers all vertices.
	ErrDisconnected = errors.New("mst: graph is disconnected")

	// ErrEmptyRoot indicates no start vertex was specified for Prim.
	ErrEmptyRoot = errors.New("mst: empty root vertex")

	// ErrVertexNotFound indicates Prim's root does not exist in the graph.
	ErrVertexNotFound = errors.New("mst: root vertex not found")

	// ErrUnknownMethod indicates an unrecognized Options.Method.
	ErrUnknownMethod = errors.New("mst: unknown method")
)

// MethodKruskal selects Kruskal's algorithm (sort all edges, union-find).
const MethodKruskal = "kruskal"

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// Options configures Compute: which algorithm to run and, for Prim, the
// starting vertex.
type Options struct {
	// Method is MethodKruskal or MethodPrim.
	Method string

	// Root is the starting vertex for Prim; ignored by Kruskal.
	Root string
}

// Option configures Options via functional arguments.
type Option func(*Options)

// WithMethod selects the algorithm: MethodKruskal or MethodPrim.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// WithRoot sets the starting vertex for Prim; Kruskal ignores it.
func WithRoot(root string) Option {
	return func(o *Options) { o.Root = root }
}

// DefaultOptions returns the default setup: Kruskal, no root.
func DefaultOptions() Options {
	return Options{Method: MethodKruskal}
}

// Compute runs the MST algorithm selected by the options.
// Both algorithms can also be called directly.
func Compute(g *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, cfg.Root)
	default:
		return nil, 0, ErrUnknownMethod
	}
}
