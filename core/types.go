// Package core - shared pricing-instance types and sentinel errors.
package core

import "errors"

// Sentinel errors returned by Instance validation.
var (
	// ErrNilInstance indicates that a nil *Instance was passed to Validate.
	ErrNilInstance = errors.New("core: instance is nil")

	// ErrBadNodeCount indicates NumNodes < 2 or a per-node slice whose length
	// does not equal NumNodes.
	ErrBadNodeCount = errors.New("core: node count and per-node data disagree")

	// ErrBadDepot indicates that Start or End is out of range, or Start == End.
	ErrBadDepot = errors.New("core: invalid depot designation")

	// ErrBadWindow indicates a resource window with Ready > Due.
	ErrBadWindow = errors.New("core: resource window lower bound exceeds upper bound")

	// ErrNegativeDemand indicates a node with negative demand.
	ErrNegativeDemand = errors.New("core: negative demand")

	// ErrBadCapacity indicates a negative vehicle capacity.
	ErrBadCapacity = errors.New("core: vehicle capacity must be non-negative")

	// ErrBadArc indicates an adjacency entry with an out-of-range endpoint,
	// a self-loop, an arc into Start, or an arc out of End.
	ErrBadArc = errors.New("core: invalid arc in adjacency")

	// ErrMissingArcData indicates an adjacency arc without a matching
	// TravelTimes or ReducedCosts entry.
	ErrMissingArcData = errors.New("core: arc lacks travel time or reduced cost")

	// ErrNegativeTravel indicates a negative travel time on some arc.
	ErrNegativeTravel = errors.New("core: negative travel time")
)

// Arc is an ordered pair of node indices. It keys the per-arc data maps.
type Arc struct {
	From int // tail node
	To   int // head node
}

// Window is a closed interval [Ready, Due] bounding a node-indexed resource,
// typically the service-start time at that node.
type Window struct {
	Ready float64 // earliest admissible value (waiting is allowed up to it)
	Due   float64 // latest admissible value (hard bound)
}

// Instance is one pricing subproblem: the graph a single vehicle may traverse
// together with all resource data. It is immutable by convention: nothing in
// this module writes to an Instance after construction.
//
// Shape contract (enforced by Validate):
//
//	len(Windows) == len(Demands) == len(Adj) == NumNodes
//	every j in Adj[i] has TravelTimes[{i,j}] and ReducedCosts[{i,j}] set
type Instance struct {
	// NumNodes counts all nodes including both depot copies.
	NumNodes int

	// Start is the depot node every path begins at; End is the depot copy
	// every reported path terminates at.
	Start, End int

	// Capacity is the vehicle load ceiling shared by all paths.
	Capacity float64

	// Windows holds the per-node time window (index = node).
	Windows []Window

	// Demands holds the per-node load demand (index = node). Depot copies
	// conventionally carry zero demand.
	Demands []float64

	// Adj is the adjacency list: Adj[i] lists every node reachable from i
	// by a single arc. Producers are expected to pre-filter obviously
	// infeasible arcs, but the engine never relies on that.
	Adj [][]int

	// TravelTimes maps each arc to its traversal time.
	TravelTimes map[Arc]float64

	// ReducedCosts maps each arc to its reduced cost for this pricing round.
	ReducedCosts map[Arc]float64
}
