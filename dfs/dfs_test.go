// SPDX-License-Identifier: MIT

package dfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/coactive/core"
	"github.com/katalvlaran/coactive/dfs"
)

// twoIslands: A–B, B–C and D–E, plus isolated F.
func twoIslands(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"D", "E"}} {
		if _, err := g.AddEdge(e[0], e[1], 0); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}
	if err := g.AddVertex("F"); err != nil {
		t.Fatalf("AddVertex: %v", err)
	}

	return g
}

func TestDFS_Errors(t *testing.T) {
	if _, err := dfs.DFS(nil, "A"); !errors.Is(err, dfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	if _, err := dfs.DFS(core.NewGraph(), "X"); !errors.Is(err, dfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	if _, err := dfs.Components(core.NewGraph(core.WithDirected(true))); !errors.Is(err, dfs.ErrDirectedGraph) {
		t.Errorf("directed: want ErrDirectedGraph, got %v", err)
	}
}

func TestDFS_SingleTree(t *testing.T) {
	res, err := dfs.DFS(twoIslands(t), "A")
	if err != nil {
		t.Fatalf("DFS: %v", err)
	}
	if want := []string{"C", "B", "A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v, want %v", res.Order, want)
	}
	if res.Depth["C"] != 2 || res.Parent["C"] != "B" {
		t.Errorf("C: depth %d parent %q", res.Depth["C"], res.Parent["C"])
	}
	if _, ok := res.Root["D"]; ok {
		t.Error("D must not be reached from A")
	}
}

func TestDFS_FilterAndHook(t *testing.T) {
	var seen []string
	res, err := dfs.DFS(twoIslands(t), "A",
		dfs.WithFilterNeighbor(func(id string) bool { return id != "C" }),
		dfs.WithOnVisit(func(id string) error { seen = append(seen, id); return nil }),
	)
	if err != nil {
		t.Fatalf("DFS: %v", err)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(seen, want) {
		t.Errorf("visited %v, want %v", seen, want)
	}
	if len(res.Order) != 2 {
		t.Errorf("Order = %v", res.Order)
	}

	stop := errors.New("stop")
	_, err = dfs.DFS(twoIslands(t), "A", dfs.WithOnVisit(func(string) error { return stop }))
	if !errors.Is(err, stop) {
		t.Errorf("hook error: got %v", err)
	}
}

func TestDFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := dfs.DFS(twoIslands(t), "A", dfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

func TestComponents(t *testing.T) {
	comps, err := dfs.Components(twoIslands(t))
	if err != nil {
		t.Fatalf("Components: %v", err)
	}
	want := [][]string{{"A", "B", "C"}, {"D", "E"}, {"F"}}
	if !reflect.DeepEqual(comps, want) {
		t.Errorf("Components = %v, want %v", comps, want)
	}

	empty, err := dfs.Components(core.NewGraph())
	if err != nil || len(empty) != 0 {
		t.Errorf("empty graph: %v, %v", empty, err)
	}
}

func TestPartition(t *testing.T) {
	got := dfs.Partition(map[string]int{"r3": 1, "r1": 0, "r2": 1, "r0": 2})
	want := [][]string{{"r0"}, {"r1"}, {"r2", "r3"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Partition = %v, want %v", got, want)
	}
}
