// Package labeling - options, results, statistics and sentinel errors.
package labeling

import (
	"errors"
	"math"
	"time"
)

// Sentinel errors returned by Solve. Misconfiguration sentinels are raised
// during the staged validation that precedes the search; ErrEndUnreached is
// the only sentinel a well-configured solve can return.
var (
	// ErrNilInstance indicates that a nil *core.Instance was passed to Solve.
	ErrNilInstance = errors.New("labeling: instance is nil")

	// ErrInvalidInstance wraps the core validation failure of the instance.
	ErrInvalidInstance = errors.New("labeling: invalid instance")

	// ErrNilVariant indicates that a nil Variant was passed to Solve.
	ErrNilVariant = errors.New("labeling: variant is nil")

	// ErrNoResources indicates a variant declaring an empty resource list.
	ErrNoResources = errors.New("labeling: variant declares no resources")

	// ErrMissingREF indicates a declared resource with no registered REF.
	ErrMissingREF = errors.New("labeling: declared resource lacks an REF")

	// ErrUnboundREF indicates a registered REF whose resource name was never
	// declared by the variant.
	ErrUnboundREF = errors.New("labeling: REF registered for undeclared resource")

	// ErrDuplicateResource indicates a resource name declared more than once.
	ErrDuplicateResource = errors.New("labeling: resource declared more than once")

	// ErrBadOrder indicates an unknown FrontierOrder value in Options.
	ErrBadOrder = errors.New("labeling: unknown frontier order")

	// ErrBadMaxLabels indicates a negative label budget in Options.
	ErrBadMaxLabels = errors.New("labeling: MaxLabels must be non-negative")

	// ErrBadTimeLimit indicates a negative time budget in Options.
	ErrBadTimeLimit = errors.New("labeling: TimeLimit must be non-negative")

	// ErrBadEps indicates a negative acceptance tolerance in Options.
	ErrBadEps = errors.New("labeling: Eps must be non-negative")

	// ErrEndUnreached indicates that the frontier exhausted with no surviving
	// label at the end depot — no feasible elementary path exists. The master
	// problem must treat this pricing round as producing no columns.
	ErrEndUnreached = errors.New("labeling: no feasible elementary path to the end depot")
)

// FrontierOrder selects the processing order of the open-label frontier.
// Correctness does not depend on the order (the per-node antichain invariant
// makes dominance checks order-independent); throughput does.
type FrontierOrder int

const (
	// BestFirst pops the open label with the smallest accumulated reduced
	// cost, ties broken by insertion order. Usually prunes fastest.
	BestFirst FrontierOrder = iota

	// FIFO processes labels in creation order (breadth-first flavour).
	FIFO

	// LIFO processes the most recent label first (depth-first flavour,
	// smallest frontier footprint).
	LIFO
)

// DefaultEps is the reduced-cost acceptance tolerance: a path is reported as
// a column only if its stabilized reduced cost is strictly below −Eps.
const DefaultEps = 1e-9

// Options configures one Solve call.
//
// Order     – frontier processing order (default BestFirst).
// MaxLabels – cap on created labels; 0 means unlimited. When the cap is hit
//   the search stops and returns the best columns found so far
//   (Result.Interrupted=true), never an error.
// TimeLimit – soft wall-clock budget; 0 means unlimited. Checked sparsely
//   (every few pops) so the hot loop stays branch-cheap. Same
//   best-so-far semantics as MaxLabels.
// Eps       – reduced-cost acceptance tolerance (default DefaultEps).
type Options struct {
	Order     FrontierOrder // frontier processing order
	MaxLabels int           // created-label budget, 0 = unlimited
	TimeLimit time.Duration // wall-clock budget, 0 = unlimited
	Eps       float64       // column acceptance tolerance
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults. Use it as a starting point and override fields as needed.
func DefaultOptions() Options {
	return Options{
		Order:     BestFirst,
		MaxLabels: 0,
		TimeLimit: 0,
		Eps:       DefaultEps,
	}
}

// validate checks internal consistency of Options. All failures are
// sentinels; no field is mutated.
//
// Complexity: O(1).
func (o Options) validate() error {
	switch o.Order {
	case BestFirst, FIFO, LIFO:
		// ok
	default:
		return ErrBadOrder
	}
	if o.MaxLabels < 0 {
		return ErrBadMaxLabels
	}
	if o.TimeLimit < 0 {
		return ErrBadTimeLimit
	}
	if o.Eps < 0 {
		return ErrBadEps
	}

	return nil
}

// Column is one accepted pricing column: a full depot-to-depot elementary
// path together with its stabilized reduced cost and final resource vector.
type Column struct {
	// Path lists the nodes from the start depot to the end depot inclusive.
	Path []int

	// ReducedCost is the stabilized pricing objective of the path (< −Eps).
	ReducedCost float64

	// Res is the final resource vector at the end depot.
	Res ResourceVector
}

// Stats counts the engine-level events of one solve. Pruning is silent by
// design; these counters are the only window into it.
type Stats struct {
	Created    int // candidate labels that survived REFs + feasibility
	Popped     int // labels extended (frontier pops, stale skips excluded)
	Infeasible int // arc extensions discarded by an REF
	Rejected   int // candidates discarded by the feasibility gate
	Dominated  int // candidates discarded by an existing label
	Evicted    int // stored labels displaced by a new candidate
	Survivors  int // undominated labels across all node sets at termination
}

// Result is the outcome of one Solve call.
type Result struct {
	// Columns holds the negative-reduced-cost paths, sorted by ascending
	// cost (path order breaking ties) for deterministic output.
	Columns []Column

	// Labels holds every Pareto-optimal label at the end depot, in the same
	// order as the columns they would yield.
	Labels []*Label

	// Stats carries the engine counters of this solve.
	Stats Stats

	// Interrupted reports that a label or time budget stopped the search
	// before the frontier emptied; Columns then holds the best found so far.
	Interrupted bool
}

// round1e9 stabilizes a floating-point cost to 9 decimal digits so that
// comparisons against Eps and cross-run determinism do not hinge on the
// accumulation order of float additions.
func round1e9(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}

	return math.Round(x*1e9) / 1e9
}
