// Package config loads experiment settings from YAML and turns them into
// experiment plans. The defaults are the reference study: three
// Erdős–Rényi and three Watts–Strogatz configurations, 30 trials each,
// 5 plotted samples.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/randnet/core"
	"github.com/katalvlaran/randnet/experiment"
	"github.com/katalvlaran/randnet/gonumgraph"
	"github.com/katalvlaran/randnet/metrics"
	"github.com/katalvlaran/randnet/render"
)

// Backend names a graph implementation.
type Backend string

const (
	// BackendCore is the built-in adjacency-slice graph.
	BackendCore Backend = "core"
	// BackendGonum is gonum's simple.UndirectedGraph.
	BackendGonum Backend = "gonum"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Params is one configuration entry of a model.
type Params struct {
	Nodes       int     `yaml:"nodes"`
	Neighbors   int     `yaml:"k,omitempty"`
	Probability float64 `yaml:"p"`
}

// ModelConfig groups the configurations of one model with its output directory.
type ModelConfig struct {
	Output         string   `yaml:"output"`
	Configurations []Params `yaml:"configurations"`
}

// Config is the full settings file.
type Config struct {
	Seed             int64          `yaml:"seed"`
	Iterations       int            `yaml:"iterations"`
	SampleSize       int            `yaml:"sample"`
	OnDisconnected   metrics.Policy `yaml:"on_disconnected"`
	MaxRegenerations int            `yaml:"max_regenerations"`
	Backend          Backend        `yaml:"backend"`
	CreateDirs       bool           `yaml:"create_dirs"`
	StopOnError      bool           `yaml:"stop_on_error"`

	ErdosRenyi    ModelConfig `yaml:"er"`
	WattsStrogatz ModelConfig `yaml:"ws"`
}

// Default returns the reference study settings.
func Default() Config {
	return Config{
		Iterations:       experiment.DefaultIterations,
		SampleSize:       experiment.DefaultSampleSize,
		OnDisconnected:   metrics.PolicyFail,
		MaxRegenerations: experiment.DefaultMaxRegeneration,
		Backend:          BackendCore,
		ErdosRenyi: ModelConfig{
			Output: "Figures",
			Configurations: []Params{
				{Nodes: 2500, Probability: 0.01},
				{Nodes: 1000, Probability: 0.05},
				{Nodes: 500, Probability: 0.25},
			},
		},
		WattsStrogatz: ModelConfig{
			Output: filepath.Join("Figures", "sidework"),
			Configurations: []Params{
				{Nodes: 2500, Neighbors: 50, Probability: 0.01},
				{Nodes: 1000, Neighbors: 20, Probability: 0.05},
				{Nodes: 500, Neighbors: 10, Probability: 0.25},
			},
		},
	}
}

// Load reads path on top of Default. Keys missing from the file keep their
// default; unknown keys are an error. An empty file yields Default.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads YAML from r on top of Default.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks plan-level settings; per-configuration parameters are
// validated when the plans are built.
func (c Config) Validate() error {
	var errs []error
	if c.Iterations < 1 {
		errs = append(errs, fmt.Errorf("iterations must be ≥ 1, got %d", c.Iterations))
	}
	if c.SampleSize < 0 {
		errs = append(errs, fmt.Errorf("sample must be ≥ 0, got %d", c.SampleSize))
	}
	if c.MaxRegenerations < 0 {
		errs = append(errs, fmt.Errorf("max_regenerations must be ≥ 0, got %d", c.MaxRegenerations))
	}
	if c.Backend != BackendCore && c.Backend != BackendGonum {
		errs = append(errs, fmt.Errorf("backend must be %q or %q, got %q", BackendCore, BackendGonum, c.Backend))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}

// Factory returns the graph factory for the configured backend.
func (c Config) Factory() core.Factory {
	if c.Backend == BackendGonum {
		return gonumgraph.NewFactory()
	}
	return core.NewFactory()
}

// Plans builds one experiment.Plan per requested model, in the given order.
// Every configuration is validated.
func (c Config) Plans(models ...experiment.Model) ([]experiment.Plan, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	plans := make([]experiment.Plan, 0, len(models))
	for _, m := range models {
		mc, err := c.model(m)
		if err != nil {
			return nil, err
		}
		plan := experiment.Plan{
			Name:             m.String(),
			Iterations:       c.Iterations,
			SampleSize:       c.SampleSize,
			Seed:             c.Seed,
			OnDisconnected:   c.OnDisconnected,
			MaxRegenerations: c.MaxRegenerations,
			StopOnError:      c.StopOnError,
			Output:           render.PathPolicy{Dir: mc.Output, CreateDirs: c.CreateDirs},
		}
		for _, p := range mc.Configurations {
			plan.Configurations = append(plan.Configurations, experiment.Configuration{
				Model:       m,
				Nodes:       p.Nodes,
				Neighbors:   p.Neighbors,
				Probability: p.Probability,
			})
		}
		if err = plan.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		plans = append(plans, plan)
	}

	return plans, nil
}

// SetOutput overrides the output directory of every model.
func (c *Config) SetOutput(dir string) {
	c.ErdosRenyi.Output = dir
	c.WattsStrogatz.Output = dir
}

func (c Config) model(m experiment.Model) (ModelConfig, error) {
	switch m {
	case experiment.ErdosRenyi:
		return c.ErdosRenyi, nil
	case experiment.WattsStrogatz:
		return c.WattsStrogatz, nil
	}

	return ModelConfig{}, fmt.Errorf("%w: %w", ErrInvalidConfig, experiment.ErrUnknownModel)
}

// ParseBackend accepts "core" or "gonum", case-insensitively.
func ParseBackend(s string) (Backend, error) {
	b := Backend(strings.ToLower(strings.TrimSpace(s)))
	if b != BackendCore && b != BackendGonum {
		return "", fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, s)
	}

	return b, nil
}
