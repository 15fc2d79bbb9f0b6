package core

import "sort"

// AddVertex ensures a vertex with the given ID exists.
// Adding an existing vertex is a no-op that preserves its Value.
// Returns ErrEmptyVertexID for the empty string.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertexLocked(id)

	return nil
}

// AddVertexWithValue ensures the vertex exists and sets its Value,
// overwriting any previous one.
// Complexity: O(1).
func (g *Graph) AddVertexWithValue(id string, value any) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertexLocked(id)
	g.vertices[id].Value = value

	return nil
}

// VertexValue returns the Value attached to the vertex, or ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) VertexValue(id string) (any, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v.Value, nil
}

// SetVertexValue replaces the Value of an existing vertex.
// Unlike AddVertexWithValue it does not create the vertex.
// Complexity: O(1).
func (g *Graph) SetVertexValue(id string, value any) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Value = value

	return nil
}

// RemoveVertex deletes the vertex and every edge incident to it.
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(deg(v)).
func (g *Graph) RemoveVertex(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}

	// Drop the reverse entries first, counting each removed edge once.
	for nbr := range g.adjacency[id] {
		if nbr != id {
			delete(g.adjacency[nbr], id)
		}
		g.edgeCount--
	}
	delete(g.adjacency, id)
	delete(g.vertices, id)

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs in ascending lexicographic order.
// The slice is freshly allocated on every call.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of edge endpoints incident to the vertex;
// a self-loop contributes 2, per the usual graph-theoretic convention.
// Returns ErrVertexNotFound for unknown vertices.
// Complexity: O(deg(v)).
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	deg := len(g.adjacency[id])
	if _, loop := g.adjacency[id][id]; loop {
		deg++
	}

	return deg, nil
}

// ensureVertexLocked inserts the vertex and its adjacency bucket if absent.
// Caller must hold g.mu for writing.
func (g *Graph) ensureVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = &Vertex{ID: id}
	g.adjacency[id] = make(map[string]int64)
}
