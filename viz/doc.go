// Package viz renders per-trial visualization artifacts for the sweep's
// example cadence.
//
// For a trial with base name n<N>_d<pct>_t<trial> it can produce:
//
//	matrix_<base>.png — heatmap of the adjacency matrix
//	graph_<base>.png  — circular-layout drawing of the digraph
//	adj_<base>.txt    — adjacency list, one "u: v1 v2 ..." line per vertex
//	topo_<base>.txt   — topological order, or the single word CYCLE
//
// Every saver honors the overwrite policy: an existing file is left
// untouched (and reported as not written) unless overwrite is forced.
// Skips are not errors; a caller distinguishes "skipped" from "failed"
// via the boolean result.
package viz
