// SPDX-License-Identifier: MIT

// Package coactive builds and analyzes co-activation networks of brain
// regions from per-region sets of study keycodes.
//
// The analysis is split into small packages that can be used on their own:
//
//	keycode/       keycode sets, CSV readers, domain filter, region labels
//	coactivation/  co-activation counts and Jaccard similarity matrices
//	significance/  binomial likelihood-ratio filter of the counts
//	matrix/        dense matrices, graph conversion, z-transform
//	core/          thread-safe weighted graph
//	threshold/     cost thresholding, weight pruning, binarization
//	influence/     directed influence matrix and graph
//	bfs/, dijkstra/, dfs/  traversals behind the metrics and components
//	metrics/       degree, clustering, centrality, betweenness, path length
//	control/       seeded resampled control networks
//	pipeline/      end-to-end run driven by config/
//
// The coactive command (cmd/coactive) wires everything together:
//
//	coactive analyze -i regions.csv --cost 0.1 --format json
//	coactive control -i regions.csv --studies 100 --iterations 50 --seed 7
package coactive
