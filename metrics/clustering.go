// File: clustering.go
// Role: average local clustering coefficient.

package metrics

import "github.com/katalvlaran/randnet/core"

// AverageClustering returns the mean local clustering coefficient over all
// vertices. The local coefficient of v is the fraction of neighbor pairs of v
// that are themselves adjacent; vertices with degree below 2 contribute 0.
//
// Implementation:
//   - Stage 1: copy the neighbors of v into a reused buffer and stamp them in
//     a marker slice (no clearing between vertices, the stamp is v+1).
//   - Stage 2: for each buffered neighbor u, count neighbors of u carrying
//     the stamp. Every linked pair is seen twice, which the d·(d-1)
//     denominator absorbs.
//
// Neighbor iterations are never nested, so a graph that holds a read lock
// for the length of an iteration is only ever locked once at a time.
//
// Complexity: O(Σ deg(v)²) time, O(V) space.
func AverageClustering(g core.Topology) float64 {
	n := g.VertexCount()
	if n == 0 {
		return 0
	}

	mark := make([]int, n)
	var nbrs []int
	sum := 0.0
	for v := 0; v < n; v++ {
		stamp := v + 1
		nbrs = nbrs[:0]
		for u := range g.Neighbors(v) {
			mark[u] = stamp
			nbrs = append(nbrs, u)
		}
		d := len(nbrs)
		if d < 2 {
			continue
		}
		links := 0
		for _, u := range nbrs {
			for w := range g.Neighbors(u) {
				if mark[w] == stamp {
					links++
				}
			}
		}
		sum += float64(links) / float64(d*(d-1))
	}

	return sum / float64(n)
}
