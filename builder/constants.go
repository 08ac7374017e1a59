package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodErdosRenyi is the canonical name for the ErdosRenyi constructor.
	MethodErdosRenyi = "ErdosRenyi"
	// MethodRingLattice is the canonical name for the RingLattice constructor.
	MethodRingLattice = "RingLattice"
	// MethodWattsStrogatz is the canonical name for the WattsStrogatz constructor.
	MethodWattsStrogatz = "WattsStrogatz"
	// MethodBuildGraph is the context used by BuildGraph.
	MethodBuildGraph = "BuildGraph"
	// MethodGenerate is the context used by Generate.
	MethodGenerate = "Generate"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinVertices is the smallest vertex count any constructor accepts.
const MinVertices = 1

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the lower bound for an edge or rewiring probability, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for an edge or rewiring probability, inclusive.
const MaxProbability = 1.0
