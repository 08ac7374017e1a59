// File: runner.go
// Role: the experiment driver: generate, analyze, report, sample, render.
//
// Determinism:
//   - One *rand.Rand per plan feeds generation, regeneration and sampling in
//     that order, so a fixed Seed reproduces every summary and figure.
//
// Concurrency:
//   - Configurations run sequentially; a Runner may serve several plans in
//     turn but is not meant for concurrent Run calls sharing one Sink.

package experiment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/randnet/builder"
	"github.com/katalvlaran/randnet/common"
	"github.com/katalvlaran/randnet/core"
	"github.com/katalvlaran/randnet/metrics"
	"github.com/katalvlaran/randnet/render"
)

// Separator is printed after every configuration.
var Separator = strings.Repeat("-", 70)

// Runner executes plans. The zero value is not usable; call NewRunner.
type Runner struct {
	factory core.Factory
	sink    render.Sink
	out     io.Writer
	now     func() time.Time
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithFactory selects the graph backend (default core.NewFactory()).
func WithFactory(f core.Factory) RunnerOption {
	return func(r *Runner) {
		if f != nil {
			r.factory = f
		}
	}
}

// WithSink selects where figures go (default render.NewPlotSink()).
func WithSink(s render.Sink) RunnerOption {
	return func(r *Runner) {
		if s != nil {
			r.sink = s
		}
	}
}

// WithOutput sets the writer receiving the summary lines (default os.Stdout).
func WithOutput(w io.Writer) RunnerOption {
	return func(r *Runner) {
		if w != nil {
			r.out = w
		}
	}
}

// NewRunner returns a Runner with the given options applied.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		factory: core.NewFactory(),
		sink:    render.NewPlotSink(),
		out:     os.Stdout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run executes every configuration of plan in order:
// generate, analyze and report, sample, histogram, render.
//
// Each configuration runs in isolation: its failure is stored on its Result
// and the next configuration starts, unless plan.StopOnError is set.
// Cancellation of ctx always stops the run. The returned error joins every
// configuration error (nil when all succeeded).
//
// Complexity: Σ over configurations of Iterations × (generation + analysis),
// dominated by the O(V·(V+E)) path-length pass per graph.
func (r *Runner) Run(ctx context.Context, plan Plan) ([]Result, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	seed := plan.Seed
	if seed == 0 {
		seed = r.now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	logger := common.Logger(ctx).WithField("plan", plan.Name)
	logger.WithField("seed", seed).Info("starting plan")
	ctx = common.WithLogger(ctx, logger)

	var (
		results = make([]Result, 0, len(plan.Configurations))
		errs    []error
	)
	for i, cfg := range plan.Configurations {
		res := r.runConfiguration(ctx, plan, rng, i, cfg)
		results = append(results, res)
		fmt.Fprintln(r.out, Separator)

		if res.Err == nil {
			continue
		}
		errs = append(errs, res.Err)
		if ctx.Err() != nil || plan.StopOnError {
			break
		}
		logger.WithError(res.Err).Errorf("configuration %d failed, continuing", i+1)
	}

	return results, errors.Join(errs...)
}

// runConfiguration is the pipeline of one configuration.
//
// Steps:
//  1. Generate plan.Iterations graphs with the shared RNG.
//  2. Analyze them under plan.OnDisconnected, regenerating from the same RNG.
//  3. Print the three summary lines.
//  4. Sample trial indices, build their degree histograms and the figure.
//  5. Resolve the output path and hand the figure to the sink.
//
// Any failure stops the pipeline and is returned on Result.Err.
func (r *Runner) runConfiguration(ctx context.Context, plan Plan, rng *rand.Rand, i int, cfg Configuration) Result {
	res := Result{Index: i, Configuration: cfg}
	logger := common.Logger(ctx).WithFields(logrus.Fields{"configuration": i + 1, "params": cfg.String()})
	ctx = common.WithLogger(ctx, logger)
	fail := func(err error) Result {
		res.Err = fmt.Errorf("configuration %d %v: %w", i+1, cfg, err)
		return res
	}

	opts := []builder.BuilderOption{builder.WithRand(rng), builder.WithEdgeHint(cfg.EdgeHint())}
	graphs, err := builder.Generate(ctx, r.factory, cfg.Nodes, cfg.Constructor(), plan.Iterations, opts...)
	if err != nil {
		return fail(err)
	}

	replace := func(_ context.Context, _ int) (core.Topology, error) {
		g, err := builder.BuildGraph(r.factory, cfg.Nodes, opts, cfg.Constructor())
		if err != nil {
			return nil, err
		}
		return g, nil
	}
	series, err := metrics.Analyze(ctx, graphs,
		metrics.WithPolicy(plan.OnDisconnected),
		metrics.WithReplacement(replace, plan.MaxRegenerations))
	if err != nil {
		return fail(err)
	}
	res.Summary = metrics.Summarize(series)
	r.report(res.Summary)
	if res.Summary.PathSamples < res.Summary.Graphs {
		logger.Warnf("path length averaged over %d of %d graphs", res.Summary.PathSamples, res.Summary.Graphs)
	}

	if res.Sampled, err = SampleIndices(rng, plan.Iterations, plan.sampleSize()); err != nil {
		return fail(err)
	}
	hists := make([]metrics.Histogram, 0, len(res.Sampled))
	for _, idx := range res.Sampled {
		logger.Infof("Plotting degree distribution of graph number: %d", idx+1)
		hists = append(hists, metrics.DegreeHistogram(graphs[idx]))
	}

	fig, err := render.FromHistograms(cfg.Model.Title(), hists, res.Sampled)
	if err != nil {
		return fail(err)
	}
	if res.FigurePath, err = plan.Output.Resolve(i); err != nil {
		return fail(err)
	}
	if err = r.sink.Render(ctx, fig, res.FigurePath); err != nil {
		return fail(err)
	}

	return res
}

// report prints the three summary lines.
func (r *Runner) report(s metrics.Summary) {
	fmt.Fprintln(r.out, "Average Degree of the network =", s.MeanDegree)
	fmt.Fprintln(r.out, "Average Clustering Coefficient of the network is =", s.MeanClustering)
	fmt.Fprintln(r.out, "Average Path Length of the network is =", s.MeanPathLength)
}
