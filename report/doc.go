// Package report owns the results-CSV schema and turns raw trial rows
// into summary statistics and plots.
//
// The CSV layout is one row per (n, density, trial):
//
//	n,density,trial,list_ns,matrix_ns,edges,cyclic
//
// Times are integer nanoseconds; "cyclic" records whether the sampled
// digraph contained a cycle (random digraphs usually do — Kahn still
// performs its full peeling work before detecting it, which is exactly
// the cost being measured).
//
// Summarize aggregates mean and sample standard deviation of both
// timings per (density, n); PlotAll renders one time-vs-n figure per
// density with a line-and-marker series for each representation.
package report
