// Package espptwc binds the generic labeling engine to the four-resource
// model of the Elementary Shortest Path Problem with Time Windows and
// Capacity — the classic pricing subproblem of VRPTW column generation.
//
// Declared resources, in REF application order:
//
//   - reduced_cost: accumulated pricing objective.
//     REF: cost += reducedCost(from→to). Never infeasible on its own; it is
//     a pruning/acceptance dimension, not a bounded one.
//   - time: service-start time.
//     REF: t = max(ready(to), t + travel(from→to)); infeasible if t > due(to)
//     — the time-window check lives inside the REF.
//   - load: accumulated demand.
//     REF: load += demand(to); infeasible if load > capacity.
//   - visited: the set of nodes already on the path.
//     REF: infeasible if to is already in the set (elementarity), otherwise
//     the bit is set. Backed by a bitset, so the check is O(1).
//
// Seed semantics: the depot seed starts at the ready time of the start depot,
// with zero cost and load, and with the start depot already marked visited —
// so no path can loop back through the start depot, and the end depot (a
// distinct node) is marked only on arrival. Multi-trip depot revisits are
// therefore out of scope for this model; a multi-trip variant would supply
// its own visited REF.
//
// Dominance: label A dominates label B at the same node iff A is ≤ B on
// cost, time and load, A's visited set is a subset of B's, and at least one
// of those comparisons is strict (strict inequality or proper subset). The
// subset direction is deliberately asymmetric: fewer visited nodes strictly
// enlarges the set of future extensions, so it is a dominance-favourable
// axis, not a tie. The relation is a strict partial order, and the tests
// assert the order axioms explicitly.
//
// Feasibility gate: after the REF chain, the gate re-checks window
// containment at the label's node and the load ceiling. The model has no
// cross-resource constraint beyond the REFs; the gate mirrors the generic
// window re-check so a variant embedding this one can layer joint limits on
// top of a known-consistent state.
//
// Errors (sentinel):
//
//   - ErrNilInstance     if New receives a nil instance.
//   - ErrInvalidInstance wrapping the core validation failure.
//
// Example usage:
//
//	m, err := espptwc.New(inst)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := labeling.Solve(inst, m, labeling.DefaultOptions())
//
// or simply espptwc.Price(inst, labeling.DefaultOptions()).
package espptwc
