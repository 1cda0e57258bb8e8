// Package dijkstra_test validates Dijkstra on float64 weights: input
// validation, distances, path counting, MaxDistance and InfEdgeThreshold.
package dijkstra_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/katalvlaran/coactive/core"
	"github.com/katalvlaran/coactive/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Validation Tests
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_ = g.AddVertex("A")

	if _, err := dijkstra.Dijkstra(g); err != dijkstra.ErrEmptySource {
		t.Fatalf("Expected ErrEmptySource, got %v", err)
	}
	if _, err := dijkstra.Dijkstra(nil, dijkstra.Source("A")); err != dijkstra.ErrNilGraph {
		t.Fatalf("Expected ErrNilGraph, got %v", err)
	}
	if _, err := dijkstra.Dijkstra(core.NewGraph(), dijkstra.Source("A")); err != dijkstra.ErrUnweightedGraph {
		t.Fatalf("Expected ErrUnweightedGraph, got %v", err)
	}
	if _, err := dijkstra.Dijkstra(g, dijkstra.Source("Z")); err != dijkstra.ErrVertexNotFound {
		t.Fatalf("Expected ErrVertexNotFound, got %v", err)
	}
	if _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(-1)); err != dijkstra.ErrBadMaxDistance {
		t.Fatalf("Expected ErrBadMaxDistance, got %v", err)
	}
	if _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(0)); err != dijkstra.ErrBadInfThreshold {
		t.Fatalf("Expected ErrBadInfThreshold, got %v", err)
	}

	_, _ = g.AddEdge("A", "B", -0.5)
	if _, err := dijkstra.Dijkstra(g, dijkstra.Source("A")); !errors.Is(err, dijkstra.ErrNegativeWeight) {
		t.Fatalf("Expected ErrNegativeWeight, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Distances and path counts
// ------------------------------------------------------------------------

// square: A–B 1, B–D 1, A–C 0.5, C–D 1.5, D–E 2
func square(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for _, e := range []struct {
		u, v string
		w    float64
	}{{"A", "B", 1}, {"B", "D", 1}, {"A", "C", 0.5}, {"C", "D", 1.5}, {"D", "E", 2}} {
		if _, err := g.AddEdge(e.u, e.v, e.w); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}

	return g
}

func TestDijkstra_DistancesAndSigma(t *testing.T) {
	res, err := dijkstra.Dijkstra(square(t), dijkstra.Source("A"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]float64{"A": 0, "B": 1, "C": 0.5, "D": 2, "E": 4}
	if !reflect.DeepEqual(res.Dist, want) {
		t.Errorf("Dist = %v; want %v", res.Dist, want)
	}
	if res.Sigma["D"] != 2 || res.Sigma["E"] != 2 {
		t.Errorf("Sigma[D]=%v Sigma[E]=%v; want 2, 2", res.Sigma["D"], res.Sigma["E"])
	}
	if wantOrder := []string{"A", "C", "B", "D", "E"}; !reflect.DeepEqual(res.Order, wantOrder) {
		t.Errorf("Order = %v; want %v", res.Order, wantOrder)
	}
	if got := res.Preds["D"]; len(got) != 2 {
		t.Errorf("Preds[D] = %v; want two predecessors", got)
	}
	path, err := res.PathTo("E")
	if err != nil {
		t.Fatalf("PathTo: %v", err)
	}
	if path[0] != "A" || path[len(path)-1] != "E" || len(path) != 4 {
		t.Errorf("PathTo(E) = %v", path)
	}
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := square(t)
	_ = g.AddVertex("Z")
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsInf(res.Dist["Z"], 1) {
		t.Errorf("Dist[Z] = %v; want +Inf", res.Dist["Z"])
	}
	if _, err := res.PathTo("Z"); err == nil {
		t.Error("PathTo(Z) should fail")
	}
}

// ------------------------------------------------------------------------
// 3. Options
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistance(t *testing.T) {
	res, err := dijkstra.Dijkstra(square(t), dijkstra.Source("A"), dijkstra.WithMaxDistance(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsInf(res.Dist["E"], 1) {
		t.Errorf("Dist[E] = %v; want +Inf beyond MaxDistance", res.Dist["E"])
	}
	if res.Dist["D"] != 2 {
		t.Errorf("Dist[D] = %v; want 2", res.Dist["D"])
	}
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	res, err := dijkstra.Dijkstra(square(t), dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(1.5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Dist["D"] != 2 || res.Sigma["D"] != 1 {
		t.Errorf("D: dist=%v sigma=%v; want 2, 1 (C–D is a wall)", res.Dist["D"], res.Sigma["D"])
	}
	if !math.IsInf(res.Dist["E"], 1) {
		t.Errorf("Dist[E] = %v; want +Inf (D–E is a wall)", res.Dist["E"])
	}
}

func TestDijkstra_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("C", "A", 1)
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsInf(res.Dist["C"], 1) {
		t.Errorf("Dist[C] = %v; want +Inf against edge direction", res.Dist["C"])
	}
}
