package experiment_test

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/randnet/builder"
	"github.com/katalvlaran/randnet/common"
	"github.com/katalvlaran/randnet/experiment"
	"github.com/katalvlaran/randnet/gonumgraph"
	"github.com/katalvlaran/randnet/metrics"
	"github.com/katalvlaran/randnet/render"
)

// memorySink records figures instead of writing files.
type memorySink struct {
	figures []render.Figure
	paths   []string
	err     error
}

func (m *memorySink) Render(_ context.Context, fig render.Figure, path string) error {
	if m.err != nil {
		return m.err
	}
	m.figures = append(m.figures, fig)
	m.paths = append(m.paths, path)
	return nil
}

func testContext() (context.Context, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return common.WithLogger(context.Background(), logger), hook
}

var lattice = experiment.Configuration{Model: experiment.WattsStrogatz, Nodes: 10, Neighbors: 4, Probability: 0}

func TestRun_RingLatticeEndToEnd(t *testing.T) {
	ctx, hook := testContext()
	sink := &memorySink{}
	out := &bytes.Buffer{}
	runner := experiment.NewRunner(experiment.WithSink(sink), experiment.WithOutput(out))

	results, err := runner.Run(ctx, experiment.Plan{
		Name:           "ws",
		Configurations: []experiment.Configuration{lattice},
		Iterations:     3,
		SampleSize:     5,
		Seed:           1,
		Output:         render.PathPolicy{Dir: filepath.Join("Figures", "sidework")},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	res := results[0]
	require.NoError(t, res.Err)

	assert.InDelta(t, 4.0, res.Summary.MeanDegree, 1e-12)
	assert.InDelta(t, 0.5, res.Summary.MeanClustering, 1e-12)
	assert.InDelta(t, 15.0/9.0, res.Summary.MeanPathLength, 1e-12)
	assert.Equal(t, 3, res.Summary.PathSamples)

	// sample size is clamped to the number of trials
	assert.ElementsMatch(t, []int{0, 1, 2}, res.Sampled)

	require.Len(t, sink.figures, 1)
	fig := sink.figures[0]
	assert.Equal(t, "Average Degree Distribution - Watts Strogatz", fig.Title)
	require.Len(t, fig.Lines, 3)
	for _, line := range fig.Lines {
		assert.Equal(t, []render.Point{{X: 4, Y: 10}}, line.Points)
	}
	assert.Equal(t, filepath.Join("Figures", "sidework", "degree_distribution_configuration_1.png"), sink.paths[0])
	assert.Equal(t, sink.paths[0], res.FigurePath)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Average Degree of the network = 4", lines[0])
	assert.Equal(t, "Average Clustering Coefficient of the network is = 0.5", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "Average Path Length of the network is = 1.66666"))
	assert.Equal(t, experiment.Separator, lines[3])
	assert.Len(t, experiment.Separator, 70)

	var messages []string
	for _, e := range hook.AllEntries() {
		messages = append(messages, e.Message)
	}
	assert.Contains(t, messages, "Running loop on graph number: 3")
	assert.Contains(t, messages, "Analysing graph... 2")
	assert.Contains(t, messages, "Plotting degree distribution of graph number: 1")
}

func TestRun_CompleteGraph(t *testing.T) {
	ctx, _ := testContext()
	sink := &memorySink{}
	runner := experiment.NewRunner(experiment.WithSink(sink), experiment.WithOutput(&bytes.Buffer{}))

	results, err := runner.Run(ctx, experiment.Plan{
		Configurations: []experiment.Configuration{{Model: experiment.ErdosRenyi, Nodes: 10, Probability: 1}},
		Iterations:     2,
		SampleSize:     1,
		Seed:           3,
	})
	require.NoError(t, err)
	s := results[0].Summary
	assert.InDelta(t, 9.0, s.MeanDegree, 1e-12)
	assert.InDelta(t, 1.0, s.MeanClustering, 1e-12)
	assert.InDelta(t, 1.0, s.MeanPathLength, 1e-12)
	assert.Equal(t, "Average Degree Distribution - Erdos Renyi", sink.figures[0].Title)
	assert.Equal(t, []render.Point{{X: 9, Y: 10}}, sink.figures[0].Lines[0].Points)
}

func TestRun_FailureIsolation(t *testing.T) {
	ctx, _ := testContext()
	empty := experiment.Configuration{Model: experiment.ErdosRenyi, Nodes: 30, Probability: 0}
	plan := experiment.Plan{
		Configurations: []experiment.Configuration{empty, lattice},
		Iterations:     2,
		SampleSize:     2,
		Seed:           5,
	}

	out := &bytes.Buffer{}
	sink := &memorySink{}
	results, err := experiment.NewRunner(experiment.WithSink(sink), experiment.WithOutput(out)).Run(ctx, plan)
	require.Error(t, err)
	assert.ErrorIs(t, err, metrics.ErrDisconnected)
	require.Len(t, results, 2)
	assert.ErrorIs(t, results[0].Err, metrics.ErrDisconnected)
	assert.NoError(t, results[1].Err)
	assert.Len(t, sink.figures, 1)
	assert.Equal(t, 2, strings.Count(out.String(), experiment.Separator))

	plan.StopOnError = true
	results, err = experiment.NewRunner(experiment.WithSink(&memorySink{}), experiment.WithOutput(&bytes.Buffer{})).Run(ctx, plan)
	assert.Error(t, err)
	assert.Len(t, results, 1)

	plan.StopOnError = false
	plan.OnDisconnected = metrics.PolicySkip
	results, err = experiment.NewRunner(experiment.WithSink(&memorySink{}), experiment.WithOutput(&bytes.Buffer{})).Run(ctx, plan)
	require.NoError(t, err)
	assert.Zero(t, results[0].Summary.PathSamples)
}

func TestRun_SinkError(t *testing.T) {
	ctx, _ := testContext()
	boom := errors.New("disk full")
	results, err := experiment.NewRunner(
		experiment.WithSink(&memorySink{err: boom}),
		experiment.WithOutput(&bytes.Buffer{}),
	).Run(ctx, experiment.Plan{Configurations: []experiment.Configuration{lattice}, Iterations: 1, SampleSize: 1, Seed: 2})
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, results[0].Err, boom)
	assert.InDelta(t, 4.0, results[0].Summary.MeanDegree, 1e-12)
}

func TestRun_Regenerate(t *testing.T) {
	ctx, _ := testContext()
	results, err := experiment.NewRunner(
		experiment.WithSink(&memorySink{}),
		experiment.WithOutput(&bytes.Buffer{}),
		experiment.WithFactory(gonumgraph.NewFactory()),
	).Run(ctx, experiment.Plan{
		Configurations:   []experiment.Configuration{{Model: experiment.ErdosRenyi, Nodes: 20, Probability: 0.3}},
		Iterations:       5,
		SampleSize:       2,
		Seed:             9,
		OnDisconnected:   metrics.PolicyRegenerate,
		MaxRegenerations: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, results[0].Summary.PathSamples)
	assert.GreaterOrEqual(t, results[0].Summary.MeanPathLength, 1.0)
}

func TestRun_Deterministic(t *testing.T) {
	ctx, _ := testContext()
	plan := experiment.Plan{
		Configurations: []experiment.Configuration{{Model: experiment.WattsStrogatz, Nodes: 40, Neighbors: 4, Probability: 0.2}},
		Iterations:     6,
		SampleSize:     3,
		Seed:           77,
		OnDisconnected: metrics.PolicyLargestComponent,
	}
	run := func() experiment.Result {
		results, err := experiment.NewRunner(experiment.WithSink(&memorySink{}), experiment.WithOutput(&bytes.Buffer{})).Run(ctx, plan)
		require.NoError(t, err)
		return results[0]
	}
	a, b := run(), run()
	assert.Equal(t, a.Sampled, b.Sampled)
	assert.Equal(t, a.Summary, b.Summary)
}

func TestRun_WritesPNG(t *testing.T) {
	ctx, _ := testContext()
	dir := filepath.Join(t.TempDir(), "Figures")
	results, err := experiment.NewRunner(experiment.WithOutput(&bytes.Buffer{})).Run(ctx, experiment.Plan{
		Configurations: []experiment.Configuration{lattice},
		Iterations:     2,
		SampleSize:     2,
		Seed:           4,
		Output:         render.PathPolicy{Dir: dir, CreateDirs: true},
	})
	require.NoError(t, err)
	assert.FileExists(t, results[0].FigurePath)

	// without CreateDirs a missing directory is an I/O error for that configuration
	missing := filepath.Join(t.TempDir(), "absent")
	results, err = experiment.NewRunner(experiment.WithOutput(&bytes.Buffer{})).Run(ctx, experiment.Plan{
		Configurations: []experiment.Configuration{lattice},
		Iterations:     1,
		SampleSize:     1,
		Seed:           4,
		Output:         render.PathPolicy{Dir: missing},
	})
	assert.Error(t, err)
	assert.ErrorContains(t, results[0].Err, missing)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, _ := testContext()
	ctx, cancel := context.WithCancel(ctx)
	cancel()
	results, err := experiment.NewRunner(experiment.WithSink(&memorySink{}), experiment.WithOutput(&bytes.Buffer{})).Run(ctx, experiment.Plan{
		Configurations: []experiment.Configuration{lattice, lattice},
		Iterations:     2,
		Seed:           1,
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, results, 1)
}

func TestPlanValidate(t *testing.T) {
	ok := experiment.Plan{Configurations: []experiment.Configuration{lattice}, Iterations: 1}
	require.NoError(t, ok.Validate())

	cases := []struct {
		name string
		plan experiment.Plan
		want error
	}{
		{"no configs", experiment.Plan{Iterations: 1}, experiment.ErrInvalidPlan},
		{"no iterations", experiment.Plan{Configurations: ok.Configurations}, experiment.ErrInvalidPlan},
		{"negative sample", experiment.Plan{Configurations: ok.Configurations, Iterations: 1, SampleSize: -1}, experiment.ErrInvalidPlan},
		{"odd k", experiment.Plan{Iterations: 1, Configurations: []experiment.Configuration{
			{Model: experiment.WattsStrogatz, Nodes: 10, Neighbors: 3}}}, builder.ErrOddNeighbors},
		{"k too large", experiment.Plan{Iterations: 1, Configurations: []experiment.Configuration{
			{Model: experiment.WattsStrogatz, Nodes: 4, Neighbors: 4}}}, builder.ErrTooFewVertices},
		{"bad p", experiment.Plan{Iterations: 1, Configurations: []experiment.Configuration{
			{Model: experiment.ErdosRenyi, Nodes: 10, Probability: 1.2}}}, builder.ErrInvalidProbability},
		{"no nodes", experiment.Plan{Iterations: 1, Configurations: []experiment.Configuration{
			{Model: experiment.ErdosRenyi}}}, builder.ErrTooFewVertices},
		{"no model", experiment.Plan{Iterations: 1, Configurations: []experiment.Configuration{
			{Nodes: 3}}}, experiment.ErrUnknownModel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.plan.Validate(), tc.want)
			_, err := experiment.NewRunner().Run(context.Background(), tc.plan)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSampleIndices(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	for trial := 0; trial < 20; trial++ {
		idx, err := experiment.SampleIndices(rng, 30, 5)
		require.NoError(t, err)
		require.Len(t, idx, 5)
		seen := map[int]bool{}
		for _, i := range idx {
			assert.True(t, i >= 0 && i < 30, "index %d out of range", i)
			assert.False(t, seen[i], "duplicate index %d", i)
			seen[i] = true
		}
	}

	all, err := experiment.SampleIndices(rng, 6, 6)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5}, all)

	none, err := experiment.SampleIndices(rng, 6, 0)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = experiment.SampleIndices(rng, 3, 4)
	assert.ErrorIs(t, err, experiment.ErrSampleTooLarge)
}

func TestModelParsing(t *testing.T) {
	for in, want := range map[string]experiment.Model{
		"er": experiment.ErdosRenyi, "Erdos-Renyi": experiment.ErdosRenyi,
		"WS": experiment.WattsStrogatz, "watts-strogatz": experiment.WattsStrogatz,
	} {
		got, err := experiment.ParseModel(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := experiment.ParseModel("ba")
	assert.ErrorIs(t, err, experiment.ErrUnknownModel)

	assert.Equal(t, "ws(n=10, k=4, p=0)", lattice.String())
	assert.Equal(t, "er(n=2500, p=0.01)", experiment.Configuration{Model: experiment.ErdosRenyi, Nodes: 2500, Probability: 0.01}.String())
	assert.Equal(t, 20, lattice.EdgeHint())
}
