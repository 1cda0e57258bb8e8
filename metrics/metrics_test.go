package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coactive/core"
	"github.com/katalvlaran/coactive/errkind"
	"github.com/katalvlaran/coactive/metrics"
)

type wedge struct {
	u, v string
	w    float64
}

func build(t *testing.T, weighted bool, edges ...wedge) *core.Graph {
	t.Helper()
	var opts []core.GraphOption
	if weighted {
		opts = append(opts, core.WithWeighted())
	}
	g := core.NewGraph(opts...)
	for _, e := range edges {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	return g
}

func TestRunBasicPath(t *testing.T) {
	g := build(t, false, wedge{"A", "B", 0}, wedge{"B", "C", 0})
	r, err := metrics.RunBasic(g, 5)
	require.NoError(t, err)

	assert.False(t, r.Weighted)
	assert.Equal(t, map[string]float64{"A": 1, "B": 2, "C": 1}, r.Degrees)
	assert.Equal(t, map[string]float64{"A": 0, "B": 1, "C": 0}, r.Betweenness)
	assert.Equal(t, map[string]float64{"A": 0.5, "B": 1, "C": 0.5}, r.DegreeCentrality)
	assert.InDelta(t, 8.0/6.0, r.AveragePathLength, 1e-12)
	assert.Equal(t, []metrics.Ranked{{"B", 2}, {"A", 1}, {"C", 1}}, r.TopDegrees)
}

func TestRunBasicClusteringAndBetweenness(t *testing.T) {
	g := build(t, false, wedge{"A", "B", 0}, wedge{"B", "C", 0}, wedge{"C", "A", 0}, wedge{"C", "D", 0})
	r, err := metrics.RunBasic(g, 2)
	require.NoError(t, err)

	assert.Equal(t, 1.0, r.Clustering["A"])
	assert.Equal(t, 1.0, r.Clustering["B"])
	assert.InDelta(t, 1.0/3.0, r.Clustering["C"], 1e-12)
	assert.Zero(t, r.Clustering["D"])
	assert.InDelta(t, 4.0/6.0, r.Betweenness["C"], 1e-12)
	assert.Zero(t, r.Betweenness["A"])
	require.Len(t, r.TopBetweenness, 2)
	assert.Equal(t, "C", r.TopBetweenness[0].Node)
	assert.Equal(t, "A", r.TopBetweenness[1].Node, "ties broken by ascending ID")
}

func TestRunBasicIgnoresWeights(t *testing.T) {
	g := build(t, true, wedge{"A", "B", 1}, wedge{"B", "C", 1}, wedge{"A", "C", 3})
	r, err := metrics.RunBasic(g, 3)
	require.NoError(t, err)
	assert.Zero(t, r.Betweenness["B"])
	assert.Equal(t, 1.0, r.AveragePathLength)
}

func TestRunWeighted(t *testing.T) {
	g := build(t, true, wedge{"A", "B", 1}, wedge{"B", "C", 1}, wedge{"A", "C", 3})
	r, err := metrics.RunWeighted(g, 3)
	require.NoError(t, err)

	assert.True(t, r.Weighted)
	assert.Equal(t, map[string]float64{"A": 4, "B": 2, "C": 4}, r.Degrees)
	assert.Equal(t, 1.0, r.Betweenness["B"], "A–C is shorter through B")
	// distances: A-B 1, B-C 1, A-C 2
	assert.InDelta(t, 8.0/6.0, r.AveragePathLength, 1e-12)
	assert.Equal(t, 1.0, r.DegreeCentrality["B"])
	// triangle weights normalized by 3: cbrt(1/3 · 1/3 · 1)
	for _, id := range []string{"A", "B", "C"} {
		assert.InDelta(t, 0.4807498567691362, r.Clustering[id], 1e-12, id)
	}
}

func TestOnnelaClustering(t *testing.T) {
	g := build(t, true, wedge{"A", "B", 1}, wedge{"B", "C", 1}, wedge{"C", "A", 0.125})
	r, err := metrics.RunWeighted(g, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, r.Clustering["A"], 1e-12)
	assert.Empty(t, r.TopClustering)
}

func TestDisconnected(t *testing.T) {
	g := build(t, false, wedge{"A", "B", 0}, wedge{"C", "D", 0})
	_, err := metrics.RunBasic(g, 1)
	assert.ErrorIs(t, err, errkind.ErrDisconnectedGraph)

	w := build(t, true, wedge{"A", "B", 1}, wedge{"C", "D", 1})
	_, err = metrics.RunWeighted(w, 1)
	assert.ErrorIs(t, err, errkind.ErrDisconnectedGraph)

	single := core.NewGraph()
	_ = single.AddVertex("A")
	_, err = metrics.RunBasic(single, 1)
	assert.ErrorIs(t, err, errkind.ErrDisconnectedGraph)
}

func TestValidation(t *testing.T) {
	_, err := metrics.RunBasic(nil, 1)
	assert.ErrorIs(t, err, metrics.ErrGraphNil)

	dg := core.NewGraph(core.WithDirected(true))
	_, _ = dg.AddEdge("A", "B", 0)
	_, err = metrics.RunBasic(dg, 1)
	assert.ErrorIs(t, err, metrics.ErrDirectedGraph)

	_, err = metrics.RunWeighted(build(t, false, wedge{"A", "B", 0}), 1)
	assert.ErrorIs(t, err, metrics.ErrUnweightedGraph)

	_, err = metrics.RunBasic(build(t, false, wedge{"A", "B", 0}), -1)
	assert.ErrorIs(t, err, metrics.ErrBadTopN)
}

func TestTopK(t *testing.T) {
	vals := map[string]float64{"b": 1, "a": 1, "c": 2}
	assert.Equal(t, []metrics.Ranked{{"c", 2}, {"a", 1}}, metrics.TopK(vals, 2))
	assert.Len(t, metrics.TopK(vals, 10), 3)
	assert.Empty(t, metrics.TopK(vals, 0))
}
