package core

import "sort"

// AddEdge connects u and v with the given weight, creating missing endpoint
// vertices on the fly. If the edge already exists its weight is replaced and
// the previous weight is returned with replaced=true.
//
// Returns ErrEmptyVertexID if either endpoint ID is empty, and
// ErrLoopNotAllowed for u == v unless the graph was built WithLoops.
// Complexity: O(1).
func (g *Graph) AddEdge(u, v string, weight int64) (prev int64, replaced bool, err error) {
	if u == "" || v == "" {
		return 0, false, ErrEmptyVertexID
	}
	if u == v && !g.allowLoops {
		return 0, false, ErrLoopNotAllowed
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertexLocked(u)
	g.ensureVertexLocked(v)

	a, b := normalize(u, v)
	prev, replaced = g.adjacency[a][b]
	g.adjacency[a][b] = weight
	g.adjacency[b][a] = weight
	if !replaced {
		g.edgeCount++
	}

	return prev, replaced, nil
}

// RemoveEdge deletes the edge between u and v and returns its weight.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v string) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	w, ok := g.adjacency[u][v]
	if !ok {
		return 0, ErrEdgeNotFound
	}
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)
	g.edgeCount--

	return w, nil
}

// HasEdge reports whether an edge between u and v exists (in either
// argument order).
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[u][v]

	return ok
}

// Weight returns the weight of the edge between u and v,
// or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) Weight(u, v string) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adjacency[u][v]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// Neighbors returns the edges incident to the vertex, sorted by the opposite
// endpoint ID. A self-loop appears once. Returns ErrVertexNotFound for
// unknown vertices.
// Complexity: O(deg(v) log deg(v)).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	edges := make([]Edge, 0, len(g.adjacency[id]))
	for nbr, w := range g.adjacency[id] {
		a, b := normalize(id, nbr)
		edges = append(edges, Edge{U: a, V: b, Weight: w})
	}
	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Other(id) < edges[j].Other(id)
	})

	return edges, nil
}

// NeighborIDs returns the IDs adjacent to the vertex in ascending order.
// A self-loop contributes the vertex's own ID.
// Complexity: O(deg(v) log deg(v)).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	ids := make([]string, 0, len(g.adjacency[id]))
	for nbr := range g.adjacency[id] {
		ids = append(ids, nbr)
	}
	sort.Strings(ids)

	return ids, nil
}

// Edges returns every edge exactly once, sorted by (U, V).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adjacency {
		for v, w := range nbrs {
			// Emit each undirected edge from its smaller endpoint only.
			if u > v {
				continue
			}
			edges = append(edges, Edge{U: u, V: v, Weight: w})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}

		return edges[i].V < edges[j].V
	})

	return edges
}

// EdgeCount returns the number of distinct edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Clone returns a deep structural copy of the graph: vertex set, adjacency
// and weights are copied, vertex Values are shared (shallow).
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		allowLoops: g.allowLoops,
		vertices:   make(map[string]*Vertex, len(g.vertices)),
		adjacency:  make(map[string]map[string]int64, len(g.adjacency)),
		edgeCount:  g.edgeCount,
	}
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: id, Value: v.Value}
	}
	for id, nbrs := range g.adjacency {
		bucket := make(map[string]int64, len(nbrs))
		for nbr, w := range nbrs {
			bucket[nbr] = w
		}
		clone.adjacency[id] = bucket
	}

	return clone
}
