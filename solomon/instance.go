// Package solomon - pricing-instance construction: Euclidean travel times,
// the VRPTW arc pre-filter and dual-price reduced costs.
package solomon

import (
	"fmt"
	"math"

	"github.com/katalvlaran/espprc/core"
)

// Instance builds a core.Instance from the parsed benchmark.
//
// duals holds one dual price per node (zero for the depot copies and any
// customer without a binding constraint); rc(i→j) = dist(i, j) − duals[i].
// A nil slice means "no duals yet": reduced costs are the raw distances.
//
// The second return value is the filter ratio — the fraction of the n·(n−1)
// candidate arcs removed by the VRPTW pre-filter:
//
//   - arcs entering the start depot or leaving the end depot,
//   - arcs between the two depot copies' positions that a route cannot use,
//   - pairs with demand(i) + demand(j) > capacity,
//   - pairs where ready(i) + travel(i, j) > due(j), i.e. even the earliest
//     departure misses the destination window.
//
// Complexity: O(n²) time and space.
func (b *Benchmark) Instance(duals []float64) (*core.Instance, float64, error) {
	n := len(b.Nodes)
	if duals != nil && len(duals) != n {
		return nil, 0, fmt.Errorf("%w: %d duals for %d nodes", ErrBadDuals, len(duals), n)
	}

	in := &core.Instance{
		NumNodes:     n,
		Start:        0,
		End:          n - 1,
		Capacity:     b.Capacity,
		Windows:      make([]core.Window, n),
		Demands:      make([]float64, n),
		Adj:          make([][]int, n),
		TravelTimes:  make(map[core.Arc]float64, n*n),
		ReducedCosts: make(map[core.Arc]float64, n*n),
	}

	var i, j int
	for i = 0; i < n; i++ {
		in.Windows[i] = core.Window{Ready: b.Nodes[i].Ready, Due: b.Nodes[i].Due}
		in.Demands[i] = b.Nodes[i].Demand
	}

	var (
		total, kept int
		dist        float64
		dual        float64
	)
	for i = 0; i < n; i++ {
		if duals != nil {
			dual = duals[i]
		}
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			total++

			// Depot direction rules.
			if j == in.Start || i == in.End {
				continue
			}
			// Pairwise capacity: if the endpoints cannot share a route,
			// the arc is dead.
			if b.Nodes[i].Demand+b.Nodes[j].Demand > b.Capacity {
				continue
			}
			dist = euclid(b.Nodes[i], b.Nodes[j])
			// Earliest possible departure still misses the window.
			if b.Nodes[i].Ready+dist+b.Nodes[i].Service > b.Nodes[j].Due {
				continue
			}

			in.Adj[i] = append(in.Adj[i], j)
			in.TravelTimes[core.Arc{From: i, To: j}] = dist + b.Nodes[i].Service
			in.ReducedCosts[core.Arc{From: i, To: j}] = dist - dual
			kept++
		}
	}

	ratio := 0.0
	if total > 0 {
		ratio = 1 - float64(kept)/float64(total)
	}

	if err := in.Validate(); err != nil {
		return nil, 0, fmt.Errorf("solomon: built instance invalid: %w", err)
	}

	return in, ratio, nil
}

// euclid is the planar distance between two nodes.
func euclid(a, b Node) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return math.Sqrt(dx*dx + dy*dy)
}
