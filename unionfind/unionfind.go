// Package unionfind implements a disjoint-set forest (union-find) over
// string elements, with path compression and union by rank.
//
// The element domain matches core vertex IDs, so a DSU can track connected
// components of a graph directly. Union auto-registers unknown elements
// (mirroring how core.AddEdge creates missing endpoints); read-only
// operations on unknown elements fail with ErrElementNotFound.
//
// Complexity: a sequence of m Find/Union operations over n elements costs
// O(m·α(n)), where α is the inverse Ackermann function — effectively
// constant per operation.
package unionfind

import (
	"errors"
	"sort"
)

// Sentinel errors for union-find operations.
var (
	// ErrEmptyElement indicates an element ID was the empty string.
	ErrEmptyElement = errors.New("unionfind: element ID is empty")

	// ErrElementNotFound indicates a lookup referenced an unregistered element.
	ErrElementNotFound = errors.New("unionfind: element not found")
)

// DSU is a disjoint-set forest. The zero value is not usable; construct
// with New. DSU is not safe for concurrent use.
type DSU struct {
	parent map[string]string // element → parent; roots point at themselves
	rank   map[string]int    // root → tree-depth upper bound
	size   map[string]int    // root → number of elements in the set
	sets   int               // number of disjoint sets
}

// New returns an empty disjoint-set forest.
// Complexity: O(1).
func New() *DSU {
	return &DSU{
		parent: make(map[string]string),
		rank:   make(map[string]int),
		size:   make(map[string]int),
	}
}

// Add registers id as a singleton set. Adding a known element is a no-op.
// Returns ErrEmptyElement for the empty string.
// Complexity: O(1).
func (d *DSU) Add(id string) error {
	if id == "" {
		return ErrEmptyElement
	}
	if _, ok := d.parent[id]; ok {
		return nil
	}
	d.parent[id] = id
	d.rank[id] = 0
	d.size[id] = 1
	d.sets++

	return nil
}

// Find returns the representative (root) of the set containing id,
// compressing the path as it walks. Returns ErrElementNotFound for
// unregistered elements.
func (d *DSU) Find(id string) (string, error) {
	if _, ok := d.parent[id]; !ok {
		return "", ErrElementNotFound
	}

	return d.findRoot(id), nil
}

// findRoot walks to the root with grandparent-pointer path compression.
// Caller guarantees id is registered.
func (d *DSU) findRoot(id string) string {
	for d.parent[id] != id {
		d.parent[id] = d.parent[d.parent[id]]
		id = d.parent[id]
	}

	return id
}

// Union merges the sets containing a and b, registering either element if
// unknown, and returns the representative of the merged set. Union of two
// elements already in the same set is a no-op.
func (d *DSU) Union(a, b string) (string, error) {
	if err := d.Add(a); err != nil {
		return "", err
	}
	if err := d.Add(b); err != nil {
		return "", err
	}

	rootA := d.findRoot(a)
	rootB := d.findRoot(b)
	if rootA == rootB {
		return rootA, nil
	}

	// Attach the smaller-rank tree under the larger-rank root.
	if d.rank[rootA] < d.rank[rootB] {
		rootA, rootB = rootB, rootA
	}
	d.parent[rootB] = rootA
	d.size[rootA] += d.size[rootB]
	delete(d.size, rootB)
	if d.rank[rootA] == d.rank[rootB] {
		d.rank[rootA]++
	}
	d.sets--

	return rootA, nil
}

// Connected reports whether a and b belong to the same set.
// Returns ErrElementNotFound if either element is unregistered.
func (d *DSU) Connected(a, b string) (bool, error) {
	rootA, err := d.Find(a)
	if err != nil {
		return false, err
	}
	rootB, err := d.Find(b)
	if err != nil {
		return false, err
	}

	return rootA == rootB, nil
}

// SetSize returns the number of elements in the set containing id.
func (d *DSU) SetSize(id string) (int, error) {
	root, err := d.Find(id)
	if err != nil {
		return 0, err
	}

	return d.size[root], nil
}

// Count returns the number of disjoint sets.
// Complexity: O(1).
func (d *DSU) Count() int {
	return d.sets
}

// Len returns the number of registered elements.
// Complexity: O(1).
func (d *DSU) Len() int {
	return len(d.parent)
}

// Elements returns every registered element in ascending order.
// Complexity: O(n log n).
func (d *DSU) Elements() []string {
	ids := make([]string, 0, len(d.parent))
	for id := range d.parent {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Groups returns the disjoint sets as sorted slices, ordered by each
// group's smallest element. Useful for reporting components.
// Complexity: O(n·α(n) + n log n).
func (d *DSU) Groups() [][]string {
	byRoot := make(map[string][]string, d.sets)
	for id := range d.parent {
		root := d.findRoot(id)
		byRoot[root] = append(byRoot[root], id)
	}

	groups := make([][]string, 0, len(byRoot))
	for _, members := range byRoot {
		sort.Strings(members)
		groups = append(groups, members)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i][0] < groups[j][0]
	})

	return groups
}
