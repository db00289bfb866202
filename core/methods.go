// Package core - read-only accessors over a validated Instance.
//
// All accessors assume Validate has passed; they perform no bounds checking
// of their own so the labeling hot loop pays nothing for safety it already
// established up front.
package core

// OutArcs returns the nodes reachable from node by a single arc.
// The returned slice is the instance's own adjacency row; callers must not
// modify it.
func (in *Instance) OutArcs(node int) []int { return in.Adj[node] }

// TravelTime returns the traversal time of arc (from, to).
func (in *Instance) TravelTime(from, to int) float64 {
	return in.TravelTimes[Arc{From: from, To: to}]
}

// ReducedCost returns the reduced cost of arc (from, to) for this round.
func (in *Instance) ReducedCost(from, to int) float64 {
	return in.ReducedCosts[Arc{From: from, To: to}]
}

// Demand returns the load demand of node.
func (in *Instance) Demand(node int) float64 { return in.Demands[node] }

// WindowOf returns the resource window of node.
func (in *Instance) WindowOf(node int) Window { return in.Windows[node] }

// IsCustomer reports whether node is a customer (neither depot copy).
func (in *Instance) IsCustomer(node int) bool {
	return node != in.Start && node != in.End
}

// Customers returns the number of customer nodes in the instance.
func (in *Instance) Customers() int { return in.NumNodes - 2 }

// ArcCount returns the number of arcs in the adjacency (handy for stats and
// pre-filter ratios).
func (in *Instance) ArcCount() int {
	var n, from int
	for from = 0; from < in.NumNodes; from++ {
		n += len(in.Adj[from])
	}

	return n
}
