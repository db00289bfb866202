// Package labeling - the Variant capability set and its configuration-time
// completeness check.
package labeling

import (
	"fmt"
	"sort"
)

// RefFunc is a resource extension function for one declared resource: it
// propagates that resource's value across arc (from, to) by mutating the
// candidate vector rv, which the engine has already cloned from the
// predecessor. Returning false signals an infeasible extension and prunes
// the branch — normal control flow, never an error.
//
// An RefFunc must be deterministic, must only write the dimension it owns,
// and must not retain rv beyond the call.
type RefFunc func(rv *ResourceVector, from, to int) bool

// Variant is the capability set a resource model injects into the engine:
// declared resources, one REF per resource, a feasibility gate and a
// dominance rule. The engine is written only against this contract and
// assumes no concrete resource beyond what the variant declares.
//
// A variant is a plain data/function bundle. A new resource model
// (backhauls, duration limits, multiple depots) supplies its own bundle
// without touching the engine.
type Variant interface {
	// ResourceNames returns the declared resource names. The slice fixes
	// dimensionality and REF application order for the lifetime of a solve.
	ResourceNames() []string

	// REFs returns the extension function registered for each resource name.
	// Completeness is checked before the search: every declared name must be
	// bound and every bound name must be declared.
	REFs() map[string]RefFunc

	// Seed returns the resource vector of the depot seed label at start.
	Seed(start int) ResourceVector

	// Feasible is the final acceptance gate, evaluated after all REFs
	// succeed. It exists for cross-resource constraints a single REF cannot
	// express; per-resource bounds normally live in the REFs themselves.
	Feasible(l *Label) bool

	// Dominates reports whether a dominates b. Both labels are guaranteed to
	// share the same node. The relation must be a strict partial order:
	// irreflexive, antisymmetric and transitive.
	Dominates(a, b *Label) bool

	// ReducedCost extracts the pricing objective from a resource vector;
	// the engine uses it for best-first ordering and column acceptance.
	ReducedCost(rv ResourceVector) float64
}

// compileREFs validates the variant's REF registry against its declared
// resources and returns the REFs in declared order. This is the only place
// registry mismatches can surface; once it passes, the hot loop applies the
// chain without further checks.
//
// Complexity: O(R log R) for the deterministic unbound-name report.
func compileREFs(v Variant) ([]RefFunc, error) {
	names := v.ResourceNames()
	if len(names) == 0 {
		return nil, ErrNoResources
	}

	registry := v.REFs()
	declared := make(map[string]bool, len(names))
	chain := make([]RefFunc, len(names))
	var (
		name string
		i    int
		fn   RefFunc
		ok   bool
	)
	for i, name = range names {
		if declared[name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateResource, name)
		}
		declared[name] = true
		if fn, ok = registry[name]; !ok || fn == nil {
			return nil, fmt.Errorf("%w: %q", ErrMissingREF, name)
		}
		chain[i] = fn
	}

	// Reject REFs bound to names the variant never declared. Sorted so the
	// reported name does not depend on map iteration order.
	if len(registry) > len(names) {
		extras := make([]string, 0, len(registry)-len(names))
		for name = range registry {
			if !declared[name] {
				extras = append(extras, name)
			}
		}
		sort.Strings(extras)

		return nil, fmt.Errorf("%w: %q", ErrUnboundREF, extras[0])
	}

	return chain, nil
}
