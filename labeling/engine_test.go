// Package labeling_test validates the search driver against a minimal
// cost+visited resource model, independent of any concrete VRP variant.
// Focus:
//  1. Column extraction, ordering and determinism on a diamond instance.
//  2. Frontier-order equivalence (BestFirst / FIFO / LIFO).
//  3. Elementarity and the end-node antichain invariant.
//  4. Budget interruption semantics (labels and wall clock) without errors.
//  5. ErrEndUnreached on a fully pruned search.
package labeling_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourbasic/bit"

	"github.com/katalvlaran/espprc/core"
	"github.com/katalvlaran/espprc/labeling"
)

// pathVariant is the smallest honest resource model: accumulated reduced
// cost plus the visited set for elementarity. Dominance is cost ≤ with
// visited ⊆ and at least one strict.
type pathVariant struct {
	inst *core.Instance
}

func (p *pathVariant) ResourceNames() []string { return []string{"cost", "visited"} }

func (p *pathVariant) REFs() map[string]labeling.RefFunc {
	return map[string]labeling.RefFunc{
		"cost": func(rv *labeling.ResourceVector, from, to int) bool {
			rv.Scalars[0] += p.inst.ReducedCost(from, to)

			return true
		},
		"visited": func(rv *labeling.ResourceVector, from, to int) bool {
			if rv.Visited.Contains(to) {
				return false
			}
			rv.Visited.Add(to)

			return true
		},
	}
}

func (p *pathVariant) Seed(start int) labeling.ResourceVector {
	return labeling.ResourceVector{Scalars: []float64{0}, Visited: new(bit.Set).Add(start)}
}

func (p *pathVariant) Feasible(l *labeling.Label) bool { return true }

func (p *pathVariant) Dominates(a, b *labeling.Label) bool {
	if a.Res.Scalars[0] > b.Res.Scalars[0] {
		return false
	}
	if a.Res.Visited.Visit(func(n int) bool { return !b.Res.Visited.Contains(n) }) {
		return false // some member of a's set is missing from b's: not a subset
	}

	return a.Res.Scalars[0] < b.Res.Scalars[0] || a.Res.Visited.Size() < b.Res.Visited.Size()
}

func (p *pathVariant) ReducedCost(rv labeling.ResourceVector) float64 { return rv.Scalars[0] }

// diamondInstance builds the shared 4-node fixture:
//
//	    ┌─►[1]─┐
//	 [0]│   ▲│ ▼[3]
//	    └─►[2]─┘
//
// with a cheap detour 1↔2 so that the two-customer paths carry negative
// reduced cost while the direct paths stay positive.
func diamondInstance() *core.Instance {
	return &core.Instance{
		NumNodes: 4,
		Start:    0,
		End:      3,
		Capacity: 10,
		Windows: []core.Window{
			{Ready: 0, Due: 100},
			{Ready: 10, Due: 50},
			{Ready: 0, Due: 40},
			{Ready: 0, Due: 100},
		},
		Demands: []float64{0, 4, 6, 0},
		Adj:     [][]int{{1, 2}, {2, 3}, {1, 3}, {}},
		TravelTimes: map[core.Arc]float64{
			{From: 0, To: 1}: 5, {From: 0, To: 2}: 4,
			{From: 1, To: 2}: 3, {From: 2, To: 1}: 3,
			{From: 1, To: 3}: 6, {From: 2, To: 3}: 3,
		},
		ReducedCosts: map[core.Arc]float64{
			{From: 0, To: 1}: 2, {From: 0, To: 2}: 3,
			{From: 1, To: 2}: -8, {From: 2, To: 1}: -8,
			{From: 1, To: 3}: 4, {From: 2, To: 3}: 1,
		},
	}
}

// TestSolve_Diamond checks columns, their order and the surviving labels on
// the diamond fixture. Expected elementary paths to the end depot:
//
//	[0 1 2 3] cost −5   [0 2 1 3] cost −1   [0 2 3] cost 4   [0 1 3] cost 6
func TestSolve_Diamond(t *testing.T) {
	in := diamondInstance()
	res, err := labeling.Solve(in, &pathVariant{inst: in}, labeling.DefaultOptions())
	require.NoError(t, err)

	require.Len(t, res.Labels, 4, "all four elementary paths are Pareto-optimal here")
	require.Len(t, res.Columns, 2, "only the negative-cost paths become columns")

	assert.Equal(t, []int{0, 1, 2, 3}, res.Columns[0].Path)
	assert.Equal(t, -5.0, res.Columns[0].ReducedCost)
	assert.Equal(t, []int{0, 2, 1, 3}, res.Columns[1].Path)
	assert.Equal(t, -1.0, res.Columns[1].ReducedCost)

	assert.False(t, res.Interrupted)
	assert.Equal(t, 2, res.Stats.Infeasible, "the two revisit attempts are pruned by the visited REF")
	assert.GreaterOrEqual(t, res.Stats.Survivors, 4)
}

// TestSolve_OrderEquivalence verifies that the frontier order is a tuning
// choice only: every order yields the identical column list.
func TestSolve_OrderEquivalence(t *testing.T) {
	in := diamondInstance()

	base, err := labeling.Solve(in, &pathVariant{inst: in}, labeling.DefaultOptions())
	require.NoError(t, err)

	for _, order := range []labeling.FrontierOrder{labeling.FIFO, labeling.LIFO} {
		opts := labeling.DefaultOptions()
		opts.Order = order
		res, rerr := labeling.Solve(in, &pathVariant{inst: in}, opts)
		require.NoError(t, rerr)
		assert.Equal(t, base.Columns, res.Columns, "order %v must not change the column set", order)
	}
}

// TestSolve_Deterministic re-runs the identical solve and expects identical
// results, column by column.
func TestSolve_Deterministic(t *testing.T) {
	in := diamondInstance()

	first, err := labeling.Solve(in, &pathVariant{inst: in}, labeling.DefaultOptions())
	require.NoError(t, err)
	second, err := labeling.Solve(in, &pathVariant{inst: in}, labeling.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, first.Columns, second.Columns)
	assert.Equal(t, first.Stats, second.Stats)
}

// TestSolve_Elementarity asserts that no node repeats within any reported
// path (the visited REF must make revisits unreachable).
func TestSolve_Elementarity(t *testing.T) {
	in := diamondInstance()
	res, err := labeling.Solve(in, &pathVariant{inst: in}, labeling.DefaultOptions())
	require.NoError(t, err)

	for _, lb := range res.Labels {
		seen := map[int]bool{}
		for _, node := range lb.Path() {
			assert.False(t, seen[node], "node %d repeats in path %v", node, lb.Path())
			seen[node] = true
		}
	}
}

// TestSolve_EndAntichain asserts that the surviving end-depot labels form an
// antichain under the variant's own dominance rule.
func TestSolve_EndAntichain(t *testing.T) {
	in := diamondInstance()
	v := &pathVariant{inst: in}
	res, err := labeling.Solve(in, v, labeling.DefaultOptions())
	require.NoError(t, err)

	for i, a := range res.Labels {
		for j, b := range res.Labels {
			if i == j {
				continue
			}
			assert.False(t, v.Dominates(a, b), "labels %d and %d violate the antichain", i, j)
		}
	}
}

// TestSolve_EndUnreached asserts the no-feasible-path sentinel when every
// extension is pruned; statistics must still report the pruning.
func TestSolve_EndUnreached(t *testing.T) {
	in := minimalInstance()
	sv := newStubVariant()
	sv.refs["cost"] = func(rv *labeling.ResourceVector, from, to int) bool { return false }

	res, err := labeling.Solve(in, sv, labeling.DefaultOptions())
	assert.ErrorIs(t, err, labeling.ErrEndUnreached)
	assert.Empty(t, res.Columns)
	assert.Equal(t, 1, res.Stats.Infeasible)
}

// TestSolve_LabelBudget asserts that hitting MaxLabels interrupts the search
// with best-so-far semantics and no error.
func TestSolve_LabelBudget(t *testing.T) {
	in := diamondInstance()
	opts := labeling.DefaultOptions()
	opts.MaxLabels = 1 // the seed alone exhausts the budget

	res, err := labeling.Solve(in, &pathVariant{inst: in}, opts)
	require.NoError(t, err, "a budget interruption is not a failure")
	assert.True(t, res.Interrupted)
	assert.Empty(t, res.Columns)
}

// cliqueInstance builds a complete graph over n customers with uniformly
// negative arc costs and wide-open windows, so that no label ever dominates
// another and the frontier grows factorially — a stress shape for budgets.
func cliqueInstance(n int) *core.Instance {
	total := n + 2
	in := &core.Instance{
		NumNodes:     total,
		Start:        0,
		End:          total - 1,
		Capacity:     float64(total),
		Windows:      make([]core.Window, total),
		Demands:      make([]float64, total),
		Adj:          make([][]int, total),
		TravelTimes:  map[core.Arc]float64{},
		ReducedCosts: map[core.Arc]float64{},
	}
	var i, j int
	for i = 0; i < total; i++ {
		in.Windows[i] = core.Window{Ready: 0, Due: 1e9}
		if in.IsCustomer(i) {
			in.Demands[i] = 1
		}
	}
	link := func(u, v int) {
		in.Adj[u] = append(in.Adj[u], v)
		in.TravelTimes[core.Arc{From: u, To: v}] = 1
		in.ReducedCosts[core.Arc{From: u, To: v}] = -1
	}
	for i = 1; i <= n; i++ {
		link(0, i)
		link(i, total-1)
		for j = 1; j <= n; j++ {
			if i != j {
				link(i, j)
			}
		}
	}

	return in
}

// TestSolve_TimeBudget asserts that an expired wall-clock budget interrupts
// a large search instead of failing it. The clique is big enough that the
// sparse deadline check fires long before the frontier could empty.
func TestSolve_TimeBudget(t *testing.T) {
	in := cliqueInstance(7)
	opts := labeling.DefaultOptions()
	opts.TimeLimit = time.Nanosecond

	res, err := labeling.Solve(in, &pathVariant{inst: in}, opts)
	require.NoError(t, err)
	assert.True(t, res.Interrupted, "an already-expired deadline must interrupt the solve")
}
