// Package core defines the undirected Graph type the rest of the toolkit
// builds on, along with its Vertex and Edge primitives.
//
// The graph is value-carrying: vertices are identified by string IDs and may
// carry an arbitrary Value; edges carry an int64 Weight. Endpoints are
// normalized internally, so the edge (u,v) and the edge (v,u) are the same
// edge. At most one edge exists per vertex pair: re-adding replaces the
// weight and reports the previous one.
//
// All mutating and reading APIs take an internal sync.RWMutex, so a Graph
// can be shared across goroutines.
//
// Errors:
//
//	ErrEmptyVertexID  - a vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrLoopNotAllowed - self-loop when loops are disabled (the default).
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph. Value stores
// arbitrary user data; it is shared (not deep-copied) by Clone.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Value is arbitrary user data attached to the vertex.
	Value any
}

// Edge represents an undirected connection between two vertices.
//
// Endpoints are normalized so that U ≤ V lexicographically; a self-loop has
// U == V. Weight is the cost attached to the connection (0 for graphs used
// as unweighted).
type Edge struct {
	// U is the lexicographically smaller endpoint ID.
	U string

	// V is the lexicographically larger endpoint ID.
	V string

	// Weight is the cost of the edge.
	Weight int64
}

// Other returns the endpoint opposite to id. For a self-loop both endpoints
// equal id and id is returned.
func (e Edge) Other(id string) string {
	if e.U == id {
		return e.V
	}

	return e.U
}

// GraphOption configures behavior of a Graph at construction time.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core in-memory undirected graph.
//
// vertices maps vertex ID → Vertex; adjacency maps vertex ID → neighbor
// ID → edge weight. A self-loop appears once in adjacency (adjacency[v][v]).
// edgeCount tracks distinct edges so EdgeCount is O(1).
type Graph struct {
	mu sync.RWMutex

	allowLoops bool

	vertices  map[string]*Vertex
	adjacency map[string]map[string]int64
	edgeCount int
}

// NewGraph creates an empty undirected Graph.
// By default self-loops are rejected; enable them with WithLoops.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string]int64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// normalize orders a pair of endpoint IDs so that the first return value is
// lexicographically ≤ the second. Every edge is stored and reported in this
// orientation.
func normalize(u, v string) (string, string) {
	if u <= v {
		return u, v
	}

	return v, u
}
