// File: plan.go
// Role: Plan (a batch of configurations) and Result.

package experiment

import (
	"fmt"

	"github.com/katalvlaran/randnet/metrics"
	"github.com/katalvlaran/randnet/render"
)

// Plan defaults.
const (
	DefaultIterations      = 30
	DefaultSampleSize      = 5
	DefaultMaxRegeneration = metrics.DefaultMaxReplacements
)

// Plan is one batch of configurations sharing iterations, sampling, the
// disconnected-graph policy, the RNG and an output location.
type Plan struct {
	Name           string
	Configurations []Configuration
	Iterations     int
	SampleSize     int
	// Seed initialises the plan's single RNG; 0 picks a time-based seed,
	// which is logged so the run can be reproduced.
	Seed int64
	// OnDisconnected is the disconnected-graph policy.
	OnDisconnected metrics.Policy
	// MaxRegenerations bounds replacements per graph under PolicyRegenerate.
	MaxRegenerations int
	Output           render.PathPolicy
	// StopOnError aborts the plan at the first failed configuration instead
	// of recording the failure and moving on.
	StopOnError bool
}

// Validate checks the plan-level parameters and every configuration.
func (p Plan) Validate() error {
	if len(p.Configurations) == 0 {
		return fmt.Errorf("plan %q: no configurations: %w", p.Name, ErrInvalidPlan)
	}
	if p.Iterations < 1 {
		return fmt.Errorf("plan %q: iterations=%d: %w", p.Name, p.Iterations, ErrInvalidPlan)
	}
	if p.SampleSize < 0 {
		return fmt.Errorf("plan %q: sample size=%d: %w", p.Name, p.SampleSize, ErrInvalidPlan)
	}
	for i, c := range p.Configurations {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("plan %q: configuration %d: %w", p.Name, i+1, err)
		}
	}

	return nil
}

// sampleSize is min(SampleSize, Iterations).
func (p Plan) sampleSize() int {
	return min(p.SampleSize, p.Iterations)
}

// Result is the outcome of one configuration.
type Result struct {
	// Index is the zero-based position of the configuration in the plan.
	Index         int
	Configuration Configuration
	Summary       metrics.Summary
	// Sampled lists the plotted trial indices in draw order.
	Sampled    []int
	FigurePath string
	// Err is non-nil when the configuration failed; the other fields then
	// hold whatever was computed before the failure.
	Err error
}
