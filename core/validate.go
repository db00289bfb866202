// Package core - staged Instance validation.
//
// Design principles (shared module-wide):
//   - Deterministic, side-effect free checks.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(V + E) worst-case; no hidden allocations.
package core

import "fmt"

// Validate verifies the structural integrity of the instance. It returns nil
// on success or the first failing sentinel, wrapped with enough context to
// identify the offending node or arc.
//
// Stages, in order:
//  1. Nil / node-count / slice-length shape checks.
//  2. Depot designation (range, Start != End).
//  3. Scalar sanity: capacity, windows, demands.
//  4. Adjacency: endpoint ranges, self-loops, depot direction rules,
//     presence and sign of per-arc data.
//
// Complexity: O(V + E) time, O(1) extra space.
func (in *Instance) Validate() error {
	// Stage 1: shape.
	if in == nil {
		return ErrNilInstance
	}
	if in.NumNodes < 2 {
		return fmt.Errorf("%w: NumNodes=%d", ErrBadNodeCount, in.NumNodes)
	}
	if len(in.Windows) != in.NumNodes || len(in.Demands) != in.NumNodes || len(in.Adj) != in.NumNodes {
		return fmt.Errorf("%w: windows=%d demands=%d adj=%d nodes=%d",
			ErrBadNodeCount, len(in.Windows), len(in.Demands), len(in.Adj), in.NumNodes)
	}

	// Stage 2: depots.
	if in.Start < 0 || in.Start >= in.NumNodes || in.End < 0 || in.End >= in.NumNodes {
		return fmt.Errorf("%w: start=%d end=%d nodes=%d", ErrBadDepot, in.Start, in.End, in.NumNodes)
	}
	if in.Start == in.End {
		return fmt.Errorf("%w: start and end coincide at %d", ErrBadDepot, in.Start)
	}

	// Stage 3: scalars.
	if in.Capacity < 0 {
		return fmt.Errorf("%w: %g", ErrBadCapacity, in.Capacity)
	}
	var node int
	for node = 0; node < in.NumNodes; node++ {
		if in.Windows[node].Ready > in.Windows[node].Due {
			return fmt.Errorf("%w: node %d window [%g,%g]",
				ErrBadWindow, node, in.Windows[node].Ready, in.Windows[node].Due)
		}
		if in.Demands[node] < 0 {
			return fmt.Errorf("%w: node %d demand %g", ErrNegativeDemand, node, in.Demands[node])
		}
	}

	// Stage 4: adjacency + arc data.
	var (
		from, to int
		a        Arc
		tt       float64
		ok       bool
	)
	for from = 0; from < in.NumNodes; from++ {
		for _, to = range in.Adj[from] {
			if to < 0 || to >= in.NumNodes {
				return fmt.Errorf("%w: %d→%d out of range", ErrBadArc, from, to)
			}
			if to == from {
				return fmt.Errorf("%w: self-loop at %d", ErrBadArc, from)
			}
			if to == in.Start {
				return fmt.Errorf("%w: %d→%d enters the start depot", ErrBadArc, from, to)
			}
			if from == in.End {
				return fmt.Errorf("%w: %d→%d leaves the end depot", ErrBadArc, from, to)
			}
			a = Arc{From: from, To: to}
			if tt, ok = in.TravelTimes[a]; !ok {
				return fmt.Errorf("%w: %d→%d travel time", ErrMissingArcData, from, to)
			}
			if tt < 0 {
				return fmt.Errorf("%w: %d→%d travel time %g", ErrNegativeTravel, from, to, tt)
			}
			if _, ok = in.ReducedCosts[a]; !ok {
				return fmt.Errorf("%w: %d→%d reduced cost", ErrMissingArcData, from, to)
			}
		}
	}

	return nil
}
