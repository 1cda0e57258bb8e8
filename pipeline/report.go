// SPDX-License-Identifier: MIT

package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/coactive/metrics"
)

// Link is one weighted edge, endpoints given by vertex ID.
type Link struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// ControlSummary describes the averaged control network.
type ControlSummary struct {
	Studies    int     `json:"studies"`
	Iterations int     `json:"iterations"`
	Seed       int64   `json:"seed"`
	Edges      int     `json:"edges"`
	MeanWeight float64 `json:"mean_weight"`
}

// WriteText writes c as a single line.
func (c *ControlSummary) WriteText(w io.Writer) error {
	var b strings.Builder
	c.writeLine(&b)
	_, err := io.WriteString(w, b.String())

	return err
}

// WriteJSON writes c as indented JSON.
func (c *ControlSummary) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(c)
}

func (c *ControlSummary) writeLine(b *strings.Builder) {
	fmt.Fprintf(b, "control: %d studies x %d iterations (seed %d), %d edges, mean weight %.4f\n",
		c.Studies, c.Iterations, c.Seed, c.Edges, c.MeanWeight)
}

// Report is the outcome of one pipeline run.
type Report struct {
	RunID    string            `json:"run_id"`
	Regions  []string          `json:"regions"`
	Labels   map[string]string `json:"labels"` // vertex ID -> region label
	Universe int               `json:"universe"`
	Total    int               `json:"total"`

	Decision      string     `json:"decision"`
	Alpha         float64    `json:"alpha"`
	CoactivePairs int        `json:"coactive_pairs"`
	RetainedPairs int        `json:"retained_pairs"`
	Cost          float64    `json:"cost"`
	ZTransformed  bool       `json:"z_transformed"`
	Vertices      []string   `json:"vertices"`
	Edges         []Link     `json:"edges"`
	Components    [][]string `json:"components"`

	Basic     *metrics.Report `json:"basic,omitempty"`
	Weighted  *metrics.Report `json:"weighted,omitempty"`
	Influence []Link          `json:"influence,omitempty"`
	Control   *ControlSummary `json:"control,omitempty"`
	Notes     []string        `json:"notes,omitempty"`
}

func (r *Report) label(id string) string {
	if l, ok := r.Labels[id]; ok && l != "" {
		return l
	}

	return id
}

// WriteJSON writes r as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

// WriteText writes a human-readable summary of r. Numbers are printed with
// four decimals so the output is stable across platforms.
func (r *Report) WriteText(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "run: %s\n", r.RunID)
	fmt.Fprintf(&b, "regions: %d (%s)\n", len(r.Regions), strings.Join(r.Regions, ", "))
	fmt.Fprintf(&b, "universe: %d keycodes, total: %d\n", r.Universe, r.Total)
	fmt.Fprintf(&b, "significance: %s, alpha %.4f, retained %d of %d co-active pairs\n",
		r.Decision, r.Alpha, r.RetainedPairs, r.CoactivePairs)
	z := ""
	if r.ZTransformed {
		z = ", z-scores"
	}
	fmt.Fprintf(&b, "graph: %d vertices, %d edges (cost %.4f%s)\n", len(r.Vertices), len(r.Edges), r.Cost, z)
	for _, e := range r.Edges {
		fmt.Fprintf(&b, "  %s -- %s  %.4f\n", r.label(e.From), r.label(e.To), e.Weight)
	}
	if len(r.Components) > 1 {
		fmt.Fprintf(&b, "  %d components:", len(r.Components))
		for _, c := range r.Components {
			names := make([]string, len(c))
			for i, id := range c {
				names[i] = r.label(id)
			}
			fmt.Fprintf(&b, " {%s}", strings.Join(names, ", "))
		}
		b.WriteString("\n")
	}

	r.writeMetrics(&b, "basic metrics", r.Basic)
	r.writeMetrics(&b, "weighted metrics", r.Weighted)

	if len(r.Influence) > 0 {
		b.WriteString("\ninfluence\n")
		for _, e := range r.Influence {
			fmt.Fprintf(&b, "  %s -> %s  %.4f\n", r.label(e.From), r.label(e.To), e.Weight)
		}
	}
	if r.Control != nil {
		b.WriteString("\n")
		r.Control.writeLine(&b)
	}
	if len(r.Notes) > 0 {
		b.WriteString("\nnotes\n")
		for _, n := range r.Notes {
			fmt.Fprintf(&b, "  %s\n", n)
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func (r *Report) writeMetrics(b *strings.Builder, title string, m *metrics.Report) {
	if m == nil {
		return
	}
	degree := "degree"
	if m.Weighted {
		degree = "strength"
	}
	fmt.Fprintf(b, "\n%s\n", title)
	fmt.Fprintf(b, "  average path length: %.4f\n", m.AveragePathLength)
	r.writeRanked(b, "top "+degree, m.TopDegrees)
	r.writeRanked(b, "top clustering", m.TopClustering)
	r.writeRanked(b, "top degree centrality", m.TopDegreeCentrality)
	r.writeRanked(b, "top betweenness", m.TopBetweenness)
}

func (r *Report) writeRanked(b *strings.Builder, name string, ranked []metrics.Ranked) {
	parts := make([]string, len(ranked))
	for i, e := range ranked {
		parts[i] = fmt.Sprintf("%s %.4f", r.label(e.Node), e.Value)
	}
	fmt.Fprintf(b, "  %s: %s\n", name, strings.Join(parts, ", "))
}
