// SPDX-License-Identifier: MIT

// Package pipeline runs the complete co-activation analysis described by a
// config.Config and assembles the result into a Report.
//
// Stages, in order:
//
//  1. read the keycode sets (spreadsheet CSV or a workspace directory) and
//     apply the optional domain filter;
//  2. build the co-activation counts C and the Jaccard matrix J;
//  3. filter C with the binomial likelihood-ratio test and zero every
//     Jaccard cell whose count was rejected;
//  4. optionally z-transform J (negative scores are clamped to zero);
//  5. convert J to a weighted graph, keep the strongest edges for the
//     configured cost, prune weak edges and drop edgeless regions;
//  6. rank influence edges, then compute hop-based and weighted metrics;
//  7. optionally summarize a resampled control network.
//
// A disconnected graph does not abort a run: the affected metric set is
// left out and a note is recorded instead.
package pipeline
