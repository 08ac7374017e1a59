// File: configuration.go
// Role: models and per-configuration parameters, validated before generation.

package experiment

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/randnet/builder"
)

// Model names a random-graph family.
type Model int

const (
	// ErdosRenyi is G(n,p).
	ErdosRenyi Model = iota + 1
	// WattsStrogatz is the rewired ring lattice.
	WattsStrogatz
)

// String returns the short command-line name ("er" or "ws").
func (m Model) String() string {
	switch m {
	case ErdosRenyi:
		return "er"
	case WattsStrogatz:
		return "ws"
	default:
		return fmt.Sprintf("Model(%d)", int(m))
	}
}

// Title returns the degree-distribution figure title for m.
func (m Model) Title() string {
	switch m {
	case ErdosRenyi:
		return "Average Degree Distribution - Erdos Renyi"
	case WattsStrogatz:
		return "Average Degree Distribution - Watts Strogatz"
	default:
		return "Average Degree Distribution"
	}
}

// ParseModel accepts "er", "erdos-renyi", "ws" and "watts-strogatz",
// case-insensitively.
func ParseModel(s string) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "er", "erdos-renyi":
		return ErdosRenyi, nil
	case "ws", "watts-strogatz":
		return WattsStrogatz, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownModel, s)
}

// Configuration is one parameter set of an experiment.
type Configuration struct {
	Model       Model
	Nodes       int
	Probability float64
	Neighbors   int // Watts–Strogatz only
}

// String renders the parameters, e.g. "er(n=2500, p=0.01)".
func (c Configuration) String() string {
	if c.Model == WattsStrogatz {
		return fmt.Sprintf("%s(n=%d, k=%d, p=%g)", c.Model, c.Nodes, c.Neighbors, c.Probability)
	}
	return fmt.Sprintf("%s(n=%d, p=%g)", c.Model, c.Nodes, c.Probability)
}

// Validate checks the parameters with the same sentinels the builder uses,
// so a bad configuration is rejected before any graph is generated.
func (c Configuration) Validate() error {
	if c.Model != ErdosRenyi && c.Model != WattsStrogatz {
		return fmt.Errorf("%v: %w", c.Model, ErrUnknownModel)
	}
	if c.Nodes < builder.MinVertices {
		return fmt.Errorf("%v: nodes must be ≥ %d: %w", c, builder.MinVertices, builder.ErrTooFewVertices)
	}
	if c.Probability < builder.MinProbability || c.Probability > builder.MaxProbability {
		return fmt.Errorf("%v: %w", c, builder.ErrInvalidProbability)
	}
	if c.Model == WattsStrogatz {
		if c.Neighbors%2 != 0 {
			return fmt.Errorf("%v: %w", c, builder.ErrOddNeighbors)
		}
		if c.Neighbors < 0 || c.Neighbors >= c.Nodes {
			return fmt.Errorf("%v: k must satisfy 0 ≤ k < n: %w", c, builder.ErrTooFewVertices)
		}
	}

	return nil
}

// Constructor returns the builder constructor for c.
func (c Configuration) Constructor() builder.Constructor {
	if c.Model == WattsStrogatz {
		return builder.WattsStrogatz(c.Nodes, c.Neighbors, c.Probability)
	}
	return builder.ErdosRenyi(c.Nodes, c.Probability)
}

// EdgeHint is the expected edge count, used to pre-size graphs:
// n·k/2 for Watts–Strogatz, p·C(n,2) for Erdős–Rényi. O(1).
func (c Configuration) EdgeHint() int {
	if c.Model == WattsStrogatz {
		return c.Nodes * c.Neighbors / 2
	}
	pairs := float64(c.Nodes) * float64(c.Nodes-1) / 2

	return int(c.Probability * pairs)
}
