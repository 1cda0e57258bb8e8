package core_test

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coactive/core"
)

func TestAddVertexIdempotent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"))
	assert.Equal(t, 1, g.VertexCount())
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	assert.False(t, g.HasVertex(""))
}

func TestLabels(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("0"))
	assert.Equal(t, "0", g.Label("0"), "falls back to ID")
	require.NoError(t, g.SetLabel("0", "Insula"))
	assert.Equal(t, "Insula", g.Label("0"))
	assert.ErrorIs(t, g.SetLabel("missing", "x"), core.ErrVertexNotFound)
}

func TestAddEdgeValidation(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 2)
	assert.ErrorIs(t, err, core.ErrBadWeight, "unweighted graph rejects non-zero weight")

	w := core.NewGraph(core.WithWeighted())
	_, err = w.AddEdge("A", "B", math.NaN())
	assert.ErrorIs(t, err, core.ErrBadWeight)
	_, err = w.AddEdge("A", "A", 1)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = w.AddEdge("", "A", 1)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	id, err := w.AddEdge("A", "B", 1.5)
	require.NoError(t, err)
	assert.Equal(t, "e1", id)
	_, err = w.AddEdge("B", "A", 3)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed, "undirected mirror counts as parallel")
}

func TestUndirectedMirror(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("A", "B", 4)
	require.NoError(t, err)
	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"))
	w, err := g.Weight("B", "A")
	require.NoError(t, err)
	assert.Equal(t, 4.0, w)
	assert.Equal(t, 1, g.EdgeCount())

	require.NoError(t, g.RemoveEdgeBetween("B", "A"))
	assert.False(t, g.HasEdge("A", "B"))
	assert.ErrorIs(t, g.RemoveEdgeBetween("A", "B"), core.ErrEdgeNotFound)
}

func TestDirectedDegreeAndStrength(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("C", "A", 2)
	_, err := g.AddEdge("B", "A", 5)
	require.NoError(t, err, "reverse direction is a distinct edge")
	assert.False(t, g.HasEdge("A", "C"))

	d, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 3, d)
	s, err := g.Strength("A")
	require.NoError(t, err)
	assert.Equal(t, 8.0, s)

	_, err = g.Degree("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestSelfLoopDegree(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, err := g.AddEdge("A", "A", 0)
	require.NoError(t, err)
	d, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 2, d)
}

func TestRemoveVertexDropsIncidentEdges(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	require.NoError(t, g.RemoveVertex("B"))
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, []string{"A", "C"}, g.Vertices())
	ids, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.ErrorIs(t, g.RemoveVertex("B"), core.ErrVertexNotFound)
}

func TestDeterministicOrder(t *testing.T) {
	g := core.NewGraph()
	for _, p := range [][2]string{{"C", "A"}, {"B", "D"}, {"A", "B"}} {
		_, err := g.AddEdge(p[0], p[1], 0)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())

	edges := g.Edges()
	got := make([]string, len(edges))
	for i, e := range edges {
		got[i] = e.From + e.To
	}
	assert.Equal(t, []string{"AB", "BD", "CA"}, got)

	ids, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, ids)
}

func TestFilterEdges(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 3)
	g.FilterEdges(func(e core.Edge) bool { return e.Weight > 2 })
	assert.False(t, g.HasEdge("B", "A"))
	assert.True(t, g.HasEdge("C", "B"))
	assert.Equal(t, 3, g.VertexCount(), "vertices untouched")
}

func TestCloneIsIndependent(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_ = g.SetLabel("A", "left")

	c := g.Clone()
	id, err := c.AddEdge("B", "C", 2)
	require.NoError(t, err)
	assert.Equal(t, "e2", id, "clone continues edge numbering")
	require.NoError(t, c.RemoveEdgeBetween("A", "B"))

	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasVertex("C"))
	assert.Equal(t, "left", c.Label("A"))

	empty := g.CloneEmpty()
	assert.Equal(t, 2, empty.VertexCount())
	assert.Equal(t, 0, empty.EdgeCount())
	assert.True(t, empty.Weighted())
}

func TestViews(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 0.5)
	_, _ = g.AddEdge("B", "C", 0.7)

	u := core.UnweightedView(g)
	assert.False(t, u.Weighted())
	w, err := u.Weight("A", "B")
	require.NoError(t, err)
	assert.Zero(t, w)

	sub := core.InducedSubgraph(g, map[string]bool{"A": true, "B": true})
	assert.Equal(t, []string{"A", "B"}, sub.Vertices())
	assert.Equal(t, 1, sub.EdgeCount())
	assert.Equal(t, 3, g.VertexCount())
}

func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = g.AddEdge(fmt.Sprintf("v%d", i), "hub", float64(i+1))
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, g.EdgeCount())
	d, err := g.Degree("hub")
	require.NoError(t, err)
	assert.Equal(t, 50, d)
}
