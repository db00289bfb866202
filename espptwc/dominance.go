// Package espptwc - feasibility gate and dominance rule.
package espptwc

import (
	"github.com/yourbasic/bit"

	"github.com/katalvlaran/espprc/labeling"
)

// Feasible is the final acceptance gate, run after the whole REF chain
// succeeds. It re-checks window containment at the label's node and the
// load ceiling; ESPPTWC has no cross-resource constraint beyond that.
func (m *Model) Feasible(l *labeling.Label) bool {
	w := m.inst.WindowOf(l.Node)
	t := l.Res.Scalars[idxTime]
	if t < w.Ready || t > w.Due {
		return false
	}

	return l.Res.Scalars[idxLoad] <= m.inst.Capacity
}

// Dominates reports whether a dominates b. Callers guarantee a.Node ==
// b.Node. The rule: a ≤ b element-wise on (cost, time, load), a's visited
// set ⊆ b's, with at least one strict inequality or a proper subset.
// Equal labels dominate in neither direction, so both survive and the
// per-node set stays an antichain.
func (m *Model) Dominates(a, b *labeling.Label) bool {
	strict := false
	var i int
	for i = 0; i < numScalars; i++ {
		if a.Res.Scalars[i] > b.Res.Scalars[i] {
			return false
		}
		if a.Res.Scalars[i] < b.Res.Scalars[i] {
			strict = true
		}
	}

	// Fewer visited nodes relaxes every future extension, so the subset
	// direction favours a; a superset disqualifies it outright.
	if !subset(a.Res.Visited, b.Res.Visited) {
		return false
	}
	if a.Res.Visited.Size() < b.Res.Visited.Size() {
		strict = true
	}

	return strict
}

// subset reports a ⊆ b. Visit aborts (and returns true) on the first member
// of a missing from b, so the walk is O(|a|) with no allocation.
func subset(a, b *bit.Set) bool {
	return !a.Visit(func(n int) bool { return !b.Contains(n) })
}
