// Package labeling implements the generic labeling algorithm for elementary
// shortest path problems with resource constraints (ESPPRC) — the pricing
// engine of a column-generation vehicle-routing decomposition.
//
// The engine is polymorphic over a capability set injected at call time, the
// Variant: a declared resource list, one resource extension function (REF)
// per resource, a feasibility checker and a dominance rule. The search driver
// itself never assumes any concrete resource.
//
// Algorithm outline:
//
//  1. Seed one Label at the start depot with the variant's initial resources.
//  2. Pop an open Label L from the frontier (best-first by reduced cost,
//     FIFO, or LIFO — a tuning choice, not a correctness requirement).
//  3. For each out-arc (L.node → v): clone L's resource vector and apply the
//     REFs in declared order. Any REF reporting infeasibility discards the
//     arc — normal control flow, never an error.
//  4. Run the variant's feasibility gate on the candidate; discard on reject.
//  5. Compare the candidate against v's label set under the dominance rule:
//     discard if dominated, otherwise insert it, evict every label it
//     dominates (evicted open labels are skipped lazily when popped), and
//     push it onto the frontier.
//  6. When the frontier empties, the surviving labels at the end depot form
//     the Pareto frontier; those with reduced cost < −Eps are reported as
//     columns, paths reconstructed by walking predecessor references.
//
// Complexity:
//
//   - Worst case exponential in the customer count (ESPPRC is NP-hard; the
//     elementarity restriction alone defeats polynomial bounds). Practical
//     speed comes entirely from dominance pruning.
//   - Per candidate: O(R) REF applications + O(|set|·R) dominance checks,
//     where R = number of declared resources.
//
// Budgets: a wall-clock limit and a created-label cap may be set in Options;
// both are evaluated once per pop and interrupt the search by returning the
// best columns found so far with Result.Interrupted set — never an error.
//
// Errors (sentinel):
//
//   - ErrNilInstance / ErrInvalidInstance — missing or malformed instance.
//   - ErrNilVariant / ErrNoResources / ErrMissingREF / ErrUnboundREF /
//     ErrDuplicateResource — misconfigured variant, always rejected before
//     the search starts.
//   - ErrBadOrder / ErrBadMaxLabels / ErrBadTimeLimit / ErrBadEps —
//     malformed Options.
//   - ErrEndUnreached — frontier exhausted with no surviving label at the
//     end depot: "no feasible elementary path", an empty pricing round.
//
// Concurrency: a single Solve call is strictly single-threaded; distinct
// Solve calls share nothing and may run concurrently on the same Instance.
package labeling
