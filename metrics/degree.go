// File: degree.go
// Role: average degree and degree histograms.
//
// Determinism:
//   - DegreeHistogram bins are sorted by degree ascending.

package metrics

import (
	"slices"

	"github.com/katalvlaran/randnet/core"
)

// AverageDegree returns Σdeg(v) / N, which equals 2·|E| / N.
// A graph without vertices has average degree 0.
//
// Complexity: O(V).
func AverageDegree(g core.Topology) float64 {
	n := g.VertexCount()
	if n == 0 {
		return 0
	}
	sum := 0
	for v := 0; v < n; v++ {
		d, _ := g.Degree(v)
		sum += d
	}

	return float64(sum) / float64(n)
}

// Bin is one histogram entry: Count vertices have exactly Degree neighbors.
type Bin struct {
	Degree int
	Count  int
}

// Histogram is a degree distribution, ascending by degree, one bin per
// degree actually present.
type Histogram []Bin

// Nodes returns Σ Count, the vertex count of the source graph.
func (h Histogram) Nodes() int {
	total := 0
	for _, b := range h {
		total += b.Count
	}

	return total
}

// DegreeSum returns Σ Degree·Count, twice the edge count of the source graph.
func (h Histogram) DegreeSum() int {
	total := 0
	for _, b := range h {
		total += b.Degree * b.Count
	}

	return total
}

// DegreeHistogram tallies the degree of every vertex of g.
// The result is deterministic for a given graph.
//
// Complexity: O(V + D log D), D the number of distinct degrees.
func DegreeHistogram(g core.Topology) Histogram {
	counts := make(map[int]int)
	for v := 0; v < g.VertexCount(); v++ {
		d, _ := g.Degree(v)
		counts[d]++
	}

	h := make(Histogram, 0, len(counts))
	for d, c := range counts {
		h = append(h, Bin{Degree: d, Count: c})
	}
	slices.SortFunc(h, func(a, b Bin) int { return a.Degree - b.Degree })

	return h
}
