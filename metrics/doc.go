// Package metrics computes per-graph statistics over any core.Topology and
// aggregates them across a Trial Collection.
//
// Per graph:
//
//   - AverageDegree:      Σdeg / N.
//   - AverageClustering:  mean local clustering coefficient.
//   - AveragePathLength:  mean hop distance over ordered pairs; undefined
//     (ErrDisconnected) when the graph is not connected.
//   - DegreeHistogram:    ascending (degree, count) bins.
//
// Across trials, Analyze produces an aligned Series honoring a
// disconnected-graph Policy, and Summarize reduces it with gonum/stat.
//
// Graphs that implement core.ShortestPather or core.ComponentFinder supply
// their own algorithms; otherwise package bfs is used.
package metrics
