// Package solomon parses Solomon VRPTW benchmark instances and turns them
// into pricing instances for the labeling engine.
//
// The Solomon format is a fixed layout of two whitespace-separated sections:
//
//	<name>
//
//	VEHICLE
//	NUMBER     CAPACITY
//	  25         200
//
//	CUSTOMER
//	CUST NO.  XCOORD.  YCOORD.  DEMAND  READY TIME  DUE DATE  SERVICE TIME
//	    0       35       35       0         0         230         0
//	    1       41       49      10       161         171        10
//	    ...
//
// Row 0 is the depot. Parse keeps the depot plus the first n customers and
// appends a copy of the depot as the end node, so a parsed Benchmark always
// has n+2 nodes indexed 0 (start) .. n+1 (end).
//
// Instance construction:
//
//   - Travel time of arc (i, j) is the Euclidean distance between the nodes
//     plus the service time at i (service is folded into travel, so the
//     "time" resource reads as service-start time).
//   - Arcs that can never appear on a feasible route are pre-filtered:
//     anything entering the start depot or leaving the end depot, pairs
//     whose combined demand exceeds capacity, and pairs where even the
//     earliest departure (ready(i) + travel) misses due(j).
//   - Reduced costs come from the caller's dual prices: rc(i→j) =
//     dist(i, j) − dual(i), the standard pricing form. With nil duals the
//     raw distances are used, which is handy for exploratory runs.
//
// Errors (sentinel):
//
//   - ErrMissingSection if the VEHICLE or CUSTOMER header is absent or
//     nothing follows it.
//   - ErrBadFormat      if a section row does not parse.
//   - ErrBadCount       if the requested customer count is not positive.
//   - ErrTooFewCustomers if the file holds fewer customers than requested.
//   - ErrBadDuals       if the dual slice length disagrees with the nodes.
package solomon
