// File: policy.go
// Role: disconnected-graph policies and their text form.

package metrics

import (
	"fmt"
	"strings"
)

// Policy decides what happens when a graph's average path length is
// undefined because the graph is disconnected.
type Policy int

const (
	// PolicyFail aborts the analysis with the *DisconnectedGraphError.
	PolicyFail Policy = iota
	// PolicySkip marks the path length undefined for that graph and leaves
	// it out of the path-length mean.
	PolicySkip
	// PolicyLargestComponent measures the largest connected component instead.
	PolicyLargestComponent
	// PolicyRegenerate replaces the graph with a fresh draw (see WithReplacement).
	PolicyRegenerate
)

var policyNames = map[Policy]string{
	PolicyFail:             "fail",
	PolicySkip:             "skip",
	PolicyLargestComponent: "largest-component",
	PolicyRegenerate:       "regenerate",
}

// String returns the command-line spelling of p.
func (p Policy) String() string {
	if s, ok := policyNames[p]; ok {
		return s
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy maps a command-line spelling to a Policy. Matching is
// case-insensitive; the empty string means PolicyFail.
//
// Errors:
//   - ErrUnknownPolicy for any other spelling.
func ParsePolicy(s string) (Policy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return PolicyFail, nil
	}
	for p, name := range policyNames {
		if name == s {
			return p, nil
		}
	}

	return PolicyFail, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// MarshalText implements encoding.TextMarshaler so policies round-trip
// through YAML configuration files.
func (p Policy) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed

	return nil
}
