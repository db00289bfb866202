// Package espptwc_test provides the shared fixtures for the ESPPTWC tests:
// the canonical 3-node line and the 4-node fork instance. The helpers are
// intentionally minimal; scenario-specific mutations happen in the tests.
package espptwc_test

import (
	"math"

	"github.com/katalvlaran/espprc/core"
)

// lineInstance is the canonical single-customer pricing scenario:
//
//	[0]──5──►[1]──3──►[2]
//	 depot  customer  depot'
//
// window at the customer [0,10], demand 2, capacity 5, reduced costs −4 and
// +1 — one feasible route with reduced cost −3, arriving at time 8.
func lineInstance() *core.Instance {
	return &core.Instance{
		NumNodes: 3,
		Start:    0,
		End:      2,
		Capacity: 5,
		Windows: []core.Window{
			{Ready: 0, Due: 100},
			{Ready: 0, Due: 10},
			{Ready: 0, Due: math.Inf(1)},
		},
		Demands: []float64{0, 2, 0},
		Adj:     [][]int{{1}, {2}, {}},
		TravelTimes: map[core.Arc]float64{
			{From: 0, To: 1}: 5,
			{From: 1, To: 2}: 3,
		},
		ReducedCosts: map[core.Arc]float64{
			{From: 0, To: 1}: -4,
			{From: 1, To: 2}: 1,
		},
	}
}

// forkInstance mirrors the small fixture the module grew up on: a depot,
// three customers and a depot copy, with two routes through customer 3.
//
//	[0]─►[1]─┐
//	  └─►[2]─┴─►[3]─►[4]
func forkInstance() *core.Instance {
	return &core.Instance{
		NumNodes: 5,
		Start:    0,
		End:      4,
		Capacity: 15,
		Windows: []core.Window{
			{Ready: 0, Due: 100},
			{Ready: 10, Due: 50},
			{Ready: 0, Due: 40},
			{Ready: 0, Due: 60},
			{Ready: 0, Due: 200},
		},
		Demands: []float64{0, 4, 6, 5, 0},
		Adj:     [][]int{{1, 2}, {3}, {3}, {4}, {}},
		TravelTimes: map[core.Arc]float64{
			{From: 0, To: 1}: 5, {From: 0, To: 2}: 4,
			{From: 1, To: 3}: 6, {From: 2, To: 3}: 3,
			{From: 3, To: 4}: 2,
		},
		ReducedCosts: map[core.Arc]float64{
			{From: 0, To: 1}: 2, {From: 0, To: 2}: 3,
			{From: 1, To: 3}: -9, {From: 2, To: 3}: 1,
			{From: 3, To: 4}: 1,
		},
	}
}
