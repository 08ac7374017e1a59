// File: summary.go
// Role: means and standard deviations across a Series (gonum/stat).

package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates a Series across trials.
type Summary struct {
	MeanDegree     float64
	MeanClustering float64
	MeanPathLength float64 // NaN when no graph had a defined path length

	StdDevDegree     float64
	StdDevClustering float64
	StdDevPathLength float64

	// Graphs is the number of analysed graphs; PathSamples how many of them
	// contributed to the path-length statistics.
	Graphs      int
	PathSamples int
}

// Summarize returns arithmetic means and sample standard deviations of every
// metric. Undefined path lengths are excluded from the path statistics.
// Standard deviations of fewer than two values are 0.
//
// Complexity: O(N) for N graphs.
func Summarize(s Series) Summary {
	paths := make([]float64, 0, s.Len())
	for i, ok := range s.PathDefined {
		if ok {
			paths = append(paths, s.PathLength[i])
		}
	}

	return Summary{
		MeanDegree:       mean(s.Degree),
		MeanClustering:   mean(s.Clustering),
		MeanPathLength:   mean(paths),
		StdDevDegree:     stdDev(s.Degree),
		StdDevClustering: stdDev(s.Clustering),
		StdDevPathLength: stdDev(paths),
		Graphs:           s.Len(),
		PathSamples:      len(paths),
	}
}

// mean is stat.Mean with NaN for an empty sample. O(len(x)).
func mean(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return stat.Mean(x, nil)
}

// stdDev is the unbiased stat.StdDev, 0 below two values. O(len(x)).
func stdDev(x []float64) float64 {
	if len(x) < 2 {
		return 0
	}
	return stat.StdDev(x, nil)
}
