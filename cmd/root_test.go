package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/randnet/experiment"
	"github.com/katalvlaran/randnet/metrics"
	"github.com/katalvlaran/randnet/render"
)

type countingSink struct{ paths []string }

func (c *countingSink) Render(_ context.Context, _ render.Figure, path string) error {
	c.paths = append(c.paths, path)
	return nil
}

const smallConfig = `
er:
  output: er-out
  configurations:
    - {nodes: 12, p: 1}
ws:
  output: ws-out
  configurations:
    - {nodes: 10, k: 4, p: 0}
    - {nodes: 12, k: 2, p: 0}
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "randnet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func execute(t *testing.T, input *Input, args ...string) (string, error) {
	t.Helper()
	rootCmd := createRootCommand(context.Background(), input, "test")
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRun(t *testing.T) {
	sink := &countingSink{}
	out, err := execute(t, &Input{sink: sink},
		"-c", writeConfig(t, smallConfig), "--iterations", "2", "--sample", "1", "--seed", "5")
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(out, experiment.Separator))
	assert.Contains(t, out, "Average Degree of the network = 11\n")
	assert.Contains(t, out, "Average Degree of the network = 4\n")
	assert.Equal(t, []string{
		filepath.Join("er-out", "degree_distribution_configuration_1.png"),
		filepath.Join("ws-out", "degree_distribution_configuration_1.png"),
		filepath.Join("ws-out", "degree_distribution_configuration_2.png"),
	}, sink.paths)
}

func TestRunSingleModel(t *testing.T) {
	sink := &countingSink{}
	out, err := execute(t, &Input{sink: sink},
		"ws", "WS", "-c", writeConfig(t, smallConfig), "--iterations", "1", "--seed", "1",
		"--backend", "gonum", "--out", "plots", "-v", "--json")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, experiment.Separator))
	require.Len(t, sink.paths, 2)
	assert.Equal(t, "plots", filepath.Dir(sink.paths[0]))
}

func TestRunFailures(t *testing.T) {
	_, err := execute(t, &Input{sink: &countingSink{}}, "ba")
	assert.ErrorIs(t, err, experiment.ErrUnknownModel)

	_, err = execute(t, &Input{sink: &countingSink{}}, "--on-disconnected", "retry")
	assert.ErrorIs(t, err, metrics.ErrUnknownPolicy)

	_, err = execute(t, &Input{sink: &countingSink{}}, "--iterations", "0")
	assert.Error(t, err)

	_, err = execute(t, &Input{sink: &countingSink{}}, "-c", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	disconnected := `
er:
  configurations:
    - {nodes: 20, p: 0}
    - {nodes: 5, p: 1}
`
	sink := &countingSink{}
	out, err := execute(t, &Input{sink: sink}, "er", "-c", writeConfig(t, disconnected), "--iterations", "1", "--seed", "2")
	assert.ErrorIs(t, err, metrics.ErrDisconnected)
	assert.Len(t, sink.paths, 1, "second configuration still runs")
	assert.Equal(t, 2, strings.Count(out, experiment.Separator))

	sink = &countingSink{}
	_, err = execute(t, &Input{sink: sink}, "er", "-c", writeConfig(t, disconnected), "--iterations", "1", "--seed", "2", "--stop-on-error")
	assert.Error(t, err)
	assert.Empty(t, sink.paths)

	sink = &countingSink{}
	_, err = execute(t, &Input{sink: sink}, "er", "-c", writeConfig(t, disconnected), "--iterations", "1", "--seed", "2", "--on-disconnected", "skip")
	assert.NoError(t, err)
	assert.Len(t, sink.paths, 2)
}

func TestFlags(t *testing.T) {
	rootCmd := createRootCommand(context.Background(), &Input{}, "")
	for _, f := range []string{"config", "seed", "iterations", "sample", "on-disconnected", "backend", "out", "create-dirs", "stop-on-error", "verbose", "json"} {
		assert.NotNil(t, rootCmd.Flag(f), f)
	}
}

func TestParseModels(t *testing.T) {
	models, err := parseModels(nil)
	require.NoError(t, err)
	assert.Equal(t, []experiment.Model{experiment.ErdosRenyi, experiment.WattsStrogatz}, models)

	models, err = parseModels([]string{"ws", "er"})
	require.NoError(t, err)
	assert.Equal(t, []experiment.Model{experiment.WattsStrogatz, experiment.ErdosRenyi}, models)
}
