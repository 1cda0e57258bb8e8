// SPDX-License-Identifier: MIT

package metrics

import "errors"

var (
	// ErrGraphNil indicates a nil input graph.
	ErrGraphNil = errors.New("metrics: graph is nil")

	// ErrDirectedGraph indicates a directed input; metrics are defined on undirected graphs.
	ErrDirectedGraph = errors.New("metrics: graph must be undirected")

	// ErrUnweightedGraph indicates RunWeighted on a graph without weights.
	ErrUnweightedGraph = errors.New("metrics: weighted metrics need a weighted graph")

	// ErrBadTopN indicates a negative ranking size.
	ErrBadTopN = errors.New("metrics: topN must be >= 0")
)

// Ranked is one entry of a top-K list.
type Ranked struct {
	Node  string  `json:"node"`
	Value float64 `json:"value"`
}

// Report holds every metric of one run, keyed by vertex ID.
type Report struct {
	Weighted bool `json:"weighted"`

	Degrees           map[string]float64 `json:"degrees"`
	Clustering        map[string]float64 `json:"clustering"`
	DegreeCentrality  map[string]float64 `json:"degree_centrality"`
	Betweenness       map[string]float64 `json:"betweenness"`
	AveragePathLength float64            `json:"average_path_length"`

	TopDegrees          []Ranked `json:"top_degrees"`
	TopClustering       []Ranked `json:"top_clustering"`
	TopDegreeCentrality []Ranked `json:"top_degree_centrality"`
	TopBetweenness      []Ranked `json:"top_betweenness"`
}
