package mst_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Actimia/aoc25/core"
	"github.com/Actimia/aoc25/mst"
)

// buildTriangle constructs A—B (1), B—C (2), A—C (3); its MST is
// {A—B, B—C} with total weight 3.
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	_, _, _ = g.AddEdge("A", "B", 1)
	_, _, _ = g.AddEdge("B", "C", 2)
	_, _, _ = g.AddEdge("A", "C", 3)

	return g
}

// buildConnected creates a connected graph of n vertices: a random-weight
// chain for connectivity plus extra random edges, seeded deterministically.
func buildConnected(t *testing.T, n, extra int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	r := rand.New(rand.NewSource(42))

	for i := 1; i < n; i++ {
		_, _, err := g.AddEdge(fmt.Sprintf("V%d", i-1), fmt.Sprintf("V%d", i), int64(1+r.Intn(10)))
		require.NoError(t, err)
	}
	for added := 0; added < extra; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		a, b := fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v)
		if g.HasEdge(a, b) {
			continue // keep chain weights intact
		}
		_, _, err := g.AddEdge(a, b, int64(1+r.Intn(100)))
		require.NoError(t, err)
		added++
	}

	return g
}

// TestValidation_EmptyAndNil covers the shared input checks.
func TestValidation_EmptyAndNil(t *testing.T) {
	_, _, err := mst.Kruskal(nil)
	assert.ErrorIs(t, err, mst.ErrNilGraph)
	_, _, err = mst.Prim(nil, "A")
	assert.ErrorIs(t, err, mst.ErrNilGraph)

	empty := core.NewGraph()
	_, _, err = mst.Kruskal(empty)
	assert.ErrorIs(t, err, mst.ErrDisconnected)
	_, _, err = mst.Prim(empty, "A")
	assert.ErrorIs(t, err, mst.ErrDisconnected)
}

// TestValidation_PrimRoot covers root-specific checks.
func TestValidation_PrimRoot(t *testing.T) {
	g := buildTriangle(t)
	_, _, err := mst.Prim(g, "")
	assert.ErrorIs(t, err, mst.ErrEmptyRoot)
	_, _, err = mst.Prim(g, "Z")
	assert.ErrorIs(t, err, mst.ErrVertexNotFound)
}

// TestSingleVertex is the trivial MST: no edges, weight 0.
func TestSingleVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))

	edges, total, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, edges)
	assert.Zero(t, total)

	edges, total, err = mst.Prim(g, "A")
	require.NoError(t, err)
	assert.Empty(t, edges)
	assert.Zero(t, total)
}

// TestTriangle pins the exact MST of the triangle for both algorithms.
func TestTriangle(t *testing.T) {
	g := buildTriangle(t)

	edgesK, totalK, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, int64(3), totalK)
	require.Len(t, edgesK, 2)
	assert.Equal(t, core.Edge{U: "A", V: "B", Weight: 1}, edgesK[0])
	assert.Equal(t, core.Edge{U: "B", V: "C", Weight: 2}, edgesK[1])

	edgesP, totalP, err := mst.Prim(g, "C")
	require.NoError(t, err)
	assert.Equal(t, int64(3), totalP)
	assert.Len(t, edgesP, 2)
}

// TestDisconnected: two components cannot be spanned.
func TestDisconnected(t *testing.T) {
	g := buildTriangle(t)
	_, _, _ = g.AddEdge("X", "Y", 1)

	_, _, err := mst.Kruskal(g)
	assert.ErrorIs(t, err, mst.ErrDisconnected)
	_, _, err = mst.Prim(g, "A")
	assert.ErrorIs(t, err, mst.ErrDisconnected)
}

// TestSelfLoopsSkipped: loops never enter the tree.
func TestSelfLoopsSkipped(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, _, _ = g.AddEdge("A", "B", 2)
	_, _, _ = g.AddEdge("A", "A", 0) // tempting weight, ineligible

	edges, total, err := mst.Kruskal(g)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, int64(2), total)

	edges, total, err = mst.Prim(g, "A")
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, int64(2), total)
}

// TestKruskalPrimAgree cross-checks both algorithms on a seeded random
// graph: MST total weights must match (edge sets may differ on ties).
func TestKruskalPrimAgree(t *testing.T) {
	g := buildConnected(t, 60, 150)

	edgesK, totalK, err := mst.Kruskal(g)
	require.NoError(t, err)
	edgesP, totalP, err := mst.Prim(g, "V0")
	require.NoError(t, err)

	assert.Len(t, edgesK, 59)
	assert.Len(t, edgesP, 59)
	assert.Equal(t, totalK, totalP)
}

// TestCompute_Dispatch exercises the options front door.
func TestCompute_Dispatch(t *testing.T) {
	g := buildTriangle(t)

	_, total, err := mst.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	_, total, err = mst.Compute(g, mst.WithMethod(mst.MethodPrim), mst.WithRoot("A"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	_, _, err = mst.Compute(g, mst.WithMethod("boruvka"))
	assert.ErrorIs(t, err, mst.ErrUnknownMethod)
}
