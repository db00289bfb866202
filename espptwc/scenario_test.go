// Package espptwc_test - end-to-end pricing scenarios through the labeling
// engine. Focus:
//  1. The single-customer line: exactly one column with the expected
//     time/load/cost resource vector.
//  2. Infeasible time window and capacity block: empty pricing rounds.
//  3. The fork fixture: column selection among competing routes.
//  4. Resource monotonicity along every surviving predecessor chain.
//  5. Idempotent re-run and frontier-order equivalence at the variant level.
package espptwc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/espprc/core"
	"github.com/katalvlaran/espprc/espptwc"
	"github.com/katalvlaran/espprc/labeling"
)

// TestPrice_Line verifies the canonical single-customer scenario:
// route [0 1 2], service start 8, load 2, reduced cost −3.
func TestPrice_Line(t *testing.T) {
	res, err := espptwc.Price(lineInstance(), labeling.DefaultOptions())
	require.NoError(t, err)

	require.Len(t, res.Columns, 1)
	col := res.Columns[0]
	assert.Equal(t, []int{0, 1, 2}, col.Path)
	assert.Equal(t, -3.0, col.ReducedCost)
	assert.Equal(t, 8.0, col.Res.Scalars[1], "arrival at the end depot: 5 travel + 3 travel")
	assert.Equal(t, 2.0, col.Res.Scalars[2], "the single customer's demand")
	assert.True(t, col.Res.Visited.Contains(1))
}

// TestPrice_InfeasibleWindow tightens the customer window below the arrival
// time: customer 1 becomes unreachable, so no path reaches the end depot.
func TestPrice_InfeasibleWindow(t *testing.T) {
	in := lineInstance()
	in.Windows[1].Due = 3 // arrival is 5 > 3

	res, err := espptwc.Price(in, labeling.DefaultOptions())
	assert.ErrorIs(t, err, labeling.ErrEndUnreached)
	assert.Empty(t, res.Columns)
	assert.Equal(t, 1, res.Stats.Infeasible, "the 0→1 extension dies in the time REF")
}

// TestPrice_CapacityBlock raises the customer demand over capacity: the load
// REF prunes the only route and the pricing round comes back empty.
func TestPrice_CapacityBlock(t *testing.T) {
	in := lineInstance()
	in.Demands[1] = 6 // capacity is 5

	res, err := espptwc.Price(in, labeling.DefaultOptions())
	assert.ErrorIs(t, err, labeling.ErrEndUnreached)
	assert.Empty(t, res.Columns)
}

// TestPrice_Fork verifies column selection on the fork fixture: two routes
// survive at the end depot, only the negative one becomes a column.
func TestPrice_Fork(t *testing.T) {
	res, err := espptwc.Price(forkInstance(), labeling.DefaultOptions())
	require.NoError(t, err)

	require.Len(t, res.Labels, 2, "both routes are Pareto-optimal at the end depot")
	require.Len(t, res.Columns, 1)
	assert.Equal(t, []int{0, 1, 3, 4}, res.Columns[0].Path)
	assert.Equal(t, -6.0, res.Columns[0].ReducedCost)
}

// TestPrice_Monotonicity walks every surviving predecessor chain and checks
// the resource invariants: time and load never decrease, load never exceeds
// capacity, and each customer appears at most once.
func TestPrice_Monotonicity(t *testing.T) {
	in := forkInstance()
	res, err := espptwc.Price(in, labeling.DefaultOptions())
	require.NoError(t, err)

	for _, lb := range res.Labels {
		seen := map[int]bool{}
		for cur := lb; cur != nil; cur = cur.Prev {
			assert.LessOrEqual(t, cur.Res.Scalars[2], in.Capacity, "load ceiling")
			if cur.Prev != nil {
				assert.GreaterOrEqual(t, cur.Res.Scalars[1], cur.Prev.Res.Scalars[1], "time monotone")
				assert.GreaterOrEqual(t, cur.Res.Scalars[2], cur.Prev.Res.Scalars[2], "load monotone")
			}
			assert.False(t, seen[cur.Node], "node %d repeats", cur.Node)
			seen[cur.Node] = true
		}
	}
}

// TestPrice_IdempotentRerun re-solves the same instance and expects the
// identical column list, across all frontier orders.
func TestPrice_IdempotentRerun(t *testing.T) {
	in := forkInstance()
	base, err := espptwc.Price(in, labeling.DefaultOptions())
	require.NoError(t, err)

	for _, order := range []labeling.FrontierOrder{labeling.BestFirst, labeling.FIFO, labeling.LIFO} {
		opts := labeling.DefaultOptions()
		opts.Order = order
		res, rerr := espptwc.Price(in, opts)
		require.NoError(t, rerr)
		assert.Equal(t, base.Columns, res.Columns, "order %v changed the outcome", order)
	}
}

// TestPrice_EpsThreshold verifies that a route whose reduced cost lands
// inside the tolerance band (here −1e−12, which stabilizes to 0) survives as
// a Pareto label but is not reported as a column.
func TestPrice_EpsThreshold(t *testing.T) {
	in := lineInstance()
	in.ReducedCosts[core.Arc{From: 0, To: 1}] = -1
	in.ReducedCosts[core.Arc{From: 1, To: 2}] = 1 - 1e-12

	res, err := espptwc.Price(in, labeling.DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, res.Labels, 1, "the route itself is feasible and survives")
	assert.Empty(t, res.Columns, "a cost inside the Eps band is not an improving column")
}
