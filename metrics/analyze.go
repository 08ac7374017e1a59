// File: analyze.go
// Role: per-graph metric triples over a Trial Collection, policy handling.
//
// Determinism:
//   - Graphs are analysed in collection order; Replacer calls happen in that
//     order too, so a shared RNG stays reproducible.
//
// Concurrency:
//   - Analyze is sequential; graphs are only read, except that
//     PolicyRegenerate writes replacements into the caller's slice.

package metrics

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/randnet/common"
	"github.com/katalvlaran/randnet/core"
)

// Triple is the metric record of one graph.
type Triple struct {
	Degree      float64
	Clustering  float64
	PathLength  float64 // NaN when PathDefined is false
	PathDefined bool
}

// Series holds per-graph metrics aligned with the analysed Trial Collection:
// entry i of every slice belongs to graph i.
type Series struct {
	Degree      []float64
	Clustering  []float64
	PathLength  []float64
	PathDefined []bool
}

// Len returns the number of analysed graphs.
func (s Series) Len() int { return len(s.Degree) }

// At returns the Triple of graph i.
func (s Series) At(i int) Triple {
	return Triple{
		Degree:      s.Degree[i],
		Clustering:  s.Clustering[i],
		PathLength:  s.PathLength[i],
		PathDefined: s.PathDefined[i],
	}
}

func (s *Series) append(t Triple) {
	s.Degree = append(s.Degree, t.Degree)
	s.Clustering = append(s.Clustering, t.Clustering)
	s.PathLength = append(s.PathLength, t.PathLength)
	s.PathDefined = append(s.PathDefined, t.PathDefined)
}

// Replacer draws a fresh graph to stand in for the disconnected graph at
// index i of the collection.
type Replacer func(ctx context.Context, i int) (core.Topology, error)

// DefaultMaxReplacements bounds PolicyRegenerate attempts per graph.
const DefaultMaxReplacements = 10

// Option configures Analyze.
type Option func(*analyzeOptions)

type analyzeOptions struct {
	policy          Policy
	replace         Replacer
	maxReplacements int
}

// WithPolicy selects the disconnected-graph policy (default PolicyFail).
// Out-of-range values are rejected by Analyze with ErrUnknownPolicy.
func WithPolicy(p Policy) Option {
	return func(o *analyzeOptions) { o.policy = p }
}

// WithReplacement supplies the graph source used by PolicyRegenerate and the
// number of attempts per graph (values below 1 mean DefaultMaxReplacements).
func WithReplacement(fn Replacer, maxAttempts int) Option {
	return func(o *analyzeOptions) {
		o.replace = fn
		if maxAttempts > 0 {
			o.maxReplacements = maxAttempts
		}
	}
}

// Analyze computes the Triple of every graph, logging
// "Analysing graph... i" (1-based) through the logger in ctx.
//
// With PolicyRegenerate, a disconnected graph is replaced in graphs itself,
// so later consumers of the collection (degree histograms) see the graph
// that was actually measured.
//
// Errors:
//   - *DisconnectedGraphError under PolicyFail, or under PolicyRegenerate
//     once attempts are exhausted.
//   - ErrUnknownPolicy for an out-of-range Policy.
//   - Replacer and context errors, wrapped with the graph number.
//
// Complexity: per graph O(V·(V+E)) for the path length plus O(Σ deg²) for
// clustering; PolicyRegenerate repeats that at most maxAttempts more times.
func Analyze(ctx context.Context, graphs []core.Topology, opts ...Option) (Series, error) {
	o := analyzeOptions{policy: PolicyFail, maxReplacements: DefaultMaxReplacements}
	for _, opt := range opts {
		opt(&o)
	}
	if _, ok := policyNames[o.policy]; !ok {
		return Series{}, fmt.Errorf("Analyze: %w: %v", ErrUnknownPolicy, o.policy)
	}
	if o.policy == PolicyRegenerate && o.replace == nil {
		return Series{}, fmt.Errorf("Analyze: %w", ErrNoReplacement)
	}

	logger := common.Logger(ctx)
	var out Series
	for i := range graphs {
		logger.Infof("Analysing graph... %d", i+1)
		t, err := analyzeOne(ctx, graphs, i, o)
		if err != nil {
			return Series{}, fmt.Errorf("Analyze: graph %d: %w", i+1, err)
		}
		out.append(t)
	}

	return out, nil
}

// AnalyzeGraph computes the Triple of a single graph under policy p.
// PolicyRegenerate cannot act on a lone graph and behaves as PolicyFail.
func AnalyzeGraph(ctx context.Context, g core.Topology, p Policy) (Triple, error) {
	if p == PolicyRegenerate {
		p = PolicyFail
	}
	graphs := []core.Topology{g}

	return analyzeOne(ctx, graphs, 0, analyzeOptions{policy: p})
}

// analyzeOne measures graphs[i], applying o.policy when the path length is
// undefined. Under PolicyRegenerate it loops until a connected replacement
// is found or the attempts run out.
func analyzeOne(ctx context.Context, graphs []core.Topology, i int, o analyzeOptions) (Triple, error) {
	logger := common.Logger(ctx)
	for attempt := 0; ; attempt++ {
		g := graphs[i]
		t := Triple{
			Degree:     AverageDegree(g),
			Clustering: AverageClustering(g),
		}
		apl, err := AveragePathLength(ctx, g)
		if err == nil {
			t.PathLength, t.PathDefined = apl, true
			return t, nil
		}
		if !errors.Is(err, ErrDisconnected) {
			return Triple{}, err
		}

		switch o.policy {
		case PolicySkip:
			logger.WithError(err).Warnf("graph %d: path length undefined, skipped", i+1)
			t.PathLength = math.NaN()
			return t, nil

		case PolicyLargestComponent:
			if apl, err = AveragePathLengthLargestComponent(ctx, g); err != nil {
				return Triple{}, err
			}
			logger.WithError(ErrDisconnected).Debugf("graph %d: path length from largest component", i+1)
			t.PathLength, t.PathDefined = apl, true
			return t, nil

		case PolicyRegenerate:
			if attempt >= o.maxReplacements {
				return Triple{}, fmt.Errorf("gave up after %d replacements: %w", attempt, err)
			}
			logger.WithError(err).Warnf("graph %d: disconnected, regenerating (attempt %d)", i+1, attempt+1)
			fresh, rerr := o.replace(ctx, i)
			if rerr != nil {
				return Triple{}, rerr
			}
			graphs[i] = fresh

		default:
			return Triple{}, err
		}
	}
}
