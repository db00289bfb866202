// Package espprc is a labeling-algorithm toolkit for the pricing step of
// column-generation vehicle routing: the Elementary Shortest Path Problem
// with Resource Constraints.
//
// 🚀 What is espprc?
//
//	A pure-Go library that brings together:
//		• Instance primitives: nodes, arcs, resource windows, demands, capacity
//		• A generic labeling engine: resource extension, feasibility gating,
//		  dominance pruning, frontier management, path reconstruction
//		• A ready-made variant: time windows + capacity (ESPPTWC)
//		• Benchmark I/O: Solomon VRPTW instance parsing and arc pre-filtering
//
// ✨ Why choose espprc?
//
//   - Exact – the engine enumerates the full Pareto frontier of elementary
//     partial paths, pruned only by valid dominance
//   - Pluggable – variants inject their own REF set, feasibility checker and
//     dominance rule; the search driver never assumes a concrete resource
//   - Deterministic – identical inputs yield identical column sets, whatever
//     the frontier order
//   - Pure Go – no cgo, no hidden machinery
//
// Under the hood, everything is organized under four subpackages:
//
//	core/     — Instance, Arc, Window: the static problem data + validation
//	labeling/ — the generic engine: Label, Variant, Solve
//	espptwc/  — the time-window-and-capacity resource model
//	solomon/  — Solomon benchmark parsing and instance construction
//
// Quick ASCII example:
//
//	    [0]──5──►[1]──3──►[0']
//	  depot   customer   depot
//
//	one customer, one feasible route, one candidate column.
//
// Dive into README.md for full examples and the pricing walkthrough.
//
//	go get github.com/katalvlaran/espprc
package espprc
