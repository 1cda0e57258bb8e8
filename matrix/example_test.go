package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/coactive/matrix"
)

// ExampleToGraph turns a co-activation matrix into a region graph.
func ExampleToGraph() {
	m, _ := matrix.FromRows([][]float64{
		{3, 2, 1},
		{2, 3, 0},
		{1, 0, 1},
	})
	g, _ := matrix.ToGraph(m, []string{"amygdala", "insula", "acc"}, false)
	for _, e := range g.Edges() {
		fmt.Printf("%s-%s %.0f\n", g.Label(e.From), g.Label(e.To), e.Weight)
	}
	// Output:
	// amygdala-insula 2
	// amygdala-acc 1
}
