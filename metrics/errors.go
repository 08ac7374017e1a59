// File: errors.go
// Role: sentinel errors and the typed disconnected-graph error.

package metrics

import (
	"errors"
	"fmt"
)

// Sentinel errors for metric computation.
var (
	// ErrDisconnected is matched (errors.Is) by every *DisconnectedGraphError.
	ErrDisconnected = errors.New("metrics: graph is disconnected")

	// ErrEmptyGraph indicates a metric was requested on a graph with no vertices.
	ErrEmptyGraph = errors.New("metrics: graph has no vertices")

	// ErrUnknownPolicy indicates ParsePolicy received an unrecognised name.
	ErrUnknownPolicy = errors.New("metrics: unknown disconnected-graph policy")

	// ErrNoReplacement indicates PolicyRegenerate was chosen without WithReplacement.
	ErrNoReplacement = errors.New("metrics: regenerate policy needs a replacement source")
)

// DisconnectedGraphError reports that the average path length is undefined
// because the graph splits into several components.
type DisconnectedGraphError struct {
	// Components is the number of connected components found.
	Components int
	// Largest is the vertex count of the largest component.
	Largest int
}

func (e *DisconnectedGraphError) Error() string {
	return fmt.Sprintf("metrics: graph is disconnected (%d components, largest has %d vertices)",
		e.Components, e.Largest)
}

// Is makes errors.Is(err, ErrDisconnected) hold.
func (e *DisconnectedGraphError) Is(target error) bool {
	return target == ErrDisconnected
}
