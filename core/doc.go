// Package core defines the static data model shared by every espprc solver:
// the pricing Instance with its nodes, arcs, resource windows, demands and
// vehicle capacity.
//
// An Instance is produced once by an external collaborator (a benchmark
// parser, a column-generation master loop updating duals) and is strictly
// read-only afterwards: the labeling engine and every variant only ever read
// from it. There is no mutation API on purpose.
//
// Node conventions:
//
//   - Nodes are dense integer indices 0..NumNodes-1.
//   - Start and End are the two depot copies (a route leaves Start and
//     terminates at End); every other index is a customer.
//   - No arc may enter Start and no arc may leave End.
//
// Arc data lives in two maps keyed by Arc{From, To}: TravelTimes (base
// traversal time, service time already folded in by the producer) and
// ReducedCosts (the pricing objective contribution of the arc, updated by
// the master problem between pricing rounds).
//
// Errors (sentinel):
//
//   - ErrNilInstance      if a nil *Instance is validated.
//   - ErrBadNodeCount     if NumNodes < 2 or slice lengths disagree.
//   - ErrBadDepot         if Start/End are out of range or identical.
//   - ErrBadWindow        if a window has Ready > Due.
//   - ErrNegativeDemand   if any demand is negative.
//   - ErrBadCapacity      if Capacity is negative.
//   - ErrBadArc           if adjacency references an invalid endpoint.
//   - ErrMissingArcData   if an adjacency arc lacks travel time or cost.
//   - ErrNegativeTravel   if any travel time is negative.
//
// Validate runs all checks in stages and fails fast with the first sentinel;
// solvers call it before any search begins so that the hot loop can trust
// the instance shape unconditionally.
package core
