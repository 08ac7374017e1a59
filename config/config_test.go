package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/randnet/builder"
	"github.com/katalvlaran/randnet/core"
	"github.com/katalvlaran/randnet/experiment"
	"github.com/katalvlaran/randnet/gonumgraph"
	"github.com/katalvlaran/randnet/metrics"
)

func TestDefaultPlans(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	plans, err := cfg.Plans(experiment.ErdosRenyi, experiment.WattsStrogatz)
	require.NoError(t, err)
	require.Len(t, plans, 2)

	er, ws := plans[0], plans[1]
	assert.Equal(t, "er", er.Name)
	assert.Equal(t, 30, er.Iterations)
	assert.Equal(t, 5, er.SampleSize)
	assert.Equal(t, "Figures", er.Output.Dir)
	assert.False(t, er.Output.CreateDirs)
	assert.Equal(t, []experiment.Configuration{
		{Model: experiment.ErdosRenyi, Nodes: 2500, Probability: 0.01},
		{Model: experiment.ErdosRenyi, Nodes: 1000, Probability: 0.05},
		{Model: experiment.ErdosRenyi, Nodes: 500, Probability: 0.25},
	}, er.Configurations)

	assert.Equal(t, filepath.Join("Figures", "sidework"), ws.Output.Dir)
	assert.Equal(t, 50, ws.Configurations[0].Neighbors)
	assert.Equal(t, metrics.PolicyFail, ws.OnDisconnected)

	g, err := cfg.Factory()(3, 0)
	require.NoError(t, err)
	assert.IsType(t, &core.Graph{}, g)
}

func TestLoad(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "small.yaml"))
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, metrics.PolicyLargestComponent, cfg.OnDisconnected)
	assert.Equal(t, BackendGonum, cfg.Backend)
	// untouched keys keep their defaults
	assert.Equal(t, experiment.DefaultMaxRegeneration, cfg.MaxRegenerations)
	assert.Equal(t, filepath.Join("Figures", "sidework"), cfg.WattsStrogatz.Output)

	plans, err := cfg.Plans(experiment.WattsStrogatz)
	require.NoError(t, err)
	require.Len(t, plans[0].Configurations, 2)
	assert.True(t, plans[0].Output.CreateDirs)
	assert.Equal(t, int64(42), plans[0].Seed)

	g, err := cfg.Factory()(5, 0)
	require.NoError(t, err)
	assert.IsType(t, &gonumgraph.Graph{}, g)

	_, err = Load(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)
}

func TestDecodeErrors(t *testing.T) {
	cases := map[string]string{
		"unknown key":     "iterations: 3\ncolour: blue\n",
		"bad policy":      "on_disconnected: retry\n",
		"zero iterations": "iterations: 0\n",
		"bad backend":     "backend: networkx\n",
		"negative sample": "sample: -1\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}

	_, err := Decode(strings.NewReader("backend: networkx\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	cfg, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestPlansRejectBadConfigurations(t *testing.T) {
	cfg := Default()
	cfg.WattsStrogatz.Configurations = []Params{{Nodes: 10, Neighbors: 3, Probability: 0.1}}
	_, err := cfg.Plans(experiment.WattsStrogatz)
	assert.ErrorIs(t, err, builder.ErrOddNeighbors)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	// the ER side is still valid on its own
	_, err = cfg.Plans(experiment.ErdosRenyi)
	assert.NoError(t, err)

	_, err = cfg.Plans(experiment.Model(7))
	assert.ErrorIs(t, err, experiment.ErrUnknownModel)
}

func TestOverrides(t *testing.T) {
	cfg := Default()
	cfg.SetOutput("plots")
	assert.Equal(t, "plots", cfg.ErdosRenyi.Output)
	assert.Equal(t, "plots", cfg.WattsStrogatz.Output)

	b, err := ParseBackend(" Gonum ")
	require.NoError(t, err)
	assert.Equal(t, BackendGonum, b)
	_, err = ParseBackend("igraph")
	assert.ErrorIs(t, err, ErrInvalidConfig)

	cfg.Backend = BackendCore
	g, err := cfg.Factory()(2, 0)
	require.NoError(t, err)
	assert.IsType(t, &core.Graph{}, g)
}
