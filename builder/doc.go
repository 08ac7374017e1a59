// Package builder provides “functional-options”-style random graph
// constructors that write into any core.Mutator.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds the RNG and the edge-count hint.
//   - Constructors (type Constructor):
//     – ErdosRenyi(n, p):       G(n,p), geometric skip sampling in O(n+m).
//     – RingLattice(n, k):      circulant lattice, every degree exactly k.
//     – WattsStrogatz(n, k, p): ring lattice with per-edge rewiring.
//     – Complete(n):            K_n.
//   - Orchestrators:
//     – BuildGraph:  one graph from a core.Factory and a list of constructors.
//     – Generate:    a Trial Collection of identical-parameter graphs.
//   - Validation sentinels:
//     – ErrTooFewVertices, ErrInvalidProbability, ErrOddNeighbors,
//       ErrNeedRandSource, ErrConstructFailed.
//
// Guarantees:
//
//   - Determinism: a fixed seed, parameter set and call order reproduce the
//     same graphs edge for edge.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors for invalid build parameters, always wrapping a
//     sentinel so callers can branch with errors.Is.
//
// Example:
//
//	g, err := builder.BuildGraph(core.NewFactory(), 1000,
//	    []builder.BuilderOption{builder.WithSeed(42)},
//	    builder.WattsStrogatz(1000, 20, 0.05))
package builder
