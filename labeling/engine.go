// Package labeling - the search driver.
//
// The engine is a pop-extend-compare-push cycle over open labels:
//
//	pop L → for each out-arc: clone resources, run REF chain, gate, compare
//	against the destination's antichain → push survivors → repeat until the
//	frontier empties or a budget interrupts.
//
// Implementation notes:
//
//   - One engine struct per solve keeps dependencies explicit and hot-path
//     state predictable; no closures in the loop.
//   - Dominance-evicted open labels are not removed from the frontier; they
//     carry a flag and are skipped when popped (lazy invalidation, the same
//     discipline as a lazy-decrease-key priority queue).
//   - Soft budgets are tested once per pop; the wall clock is read only every
//     deadlineMask+1 pops to keep the check practically free.
package labeling

import (
	"container/heap"
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/espprc/core"
)

// deadlineMask spaces out wall-clock reads: the deadline is consulted on
// pops where popCount&deadlineMask == 0.
const deadlineMask = 255

// Solve runs the labeling algorithm for inst under the resource model v and
// returns the accepted columns together with engine statistics.
//
// Preconditions and validation (in order):
//  1. Options must be well-formed (ErrBadOrder, ErrBadMaxLabels, ...).
//  2. inst must be non-nil and pass core validation (ErrNilInstance,
//     ErrInvalidInstance).
//  3. v must be non-nil and complete: every declared resource bound to an
//     REF, no REF bound to an undeclared resource, no name declared twice
//     (ErrNilVariant, ErrNoResources, ErrMissingREF, ErrUnboundREF,
//     ErrDuplicateResource).
//
// After validation the search cannot fail: infeasible extensions and
// dominated candidates are silent prunes. The only post-search sentinel is
// ErrEndUnreached, returned (with populated Stats) when no label survives at
// the end depot.
func Solve(inst *core.Instance, v Variant, opts Options) (Result, error) {
	// Stage 1: options.
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	// Stage 2: instance.
	if inst == nil {
		return Result{}, ErrNilInstance
	}
	if err := inst.Validate(); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidInstance, err)
	}

	// Stage 3: variant completeness.
	if v == nil {
		return Result{}, ErrNilVariant
	}
	chain, err := compileREFs(v)
	if err != nil {
		return Result{}, err
	}

	e := &engine{
		inst:    inst,
		variant: v,
		opts:    opts,
		chain:   chain,
		sets:    make([][]*Label, inst.NumNodes),
	}
	e.init()
	e.run()

	return e.collect()
}

// engine holds all mutable state of a single solve.
type engine struct {
	// Configuration / policy
	inst    *core.Instance
	variant Variant
	opts    Options
	chain   []RefFunc // REFs in declared order

	// Per-node label sets; each is an antichain under variant.Dominates.
	sets [][]*Label

	// Frontier: pq for BestFirst, queue for FIFO/LIFO.
	pq    labelPQ
	queue []*Label
	head  int // FIFO read index into queue
	seq   int // insertion counter, BestFirst tiebreak

	// Budgets
	useDeadline bool
	deadline    time.Time
	pops        int // pop counter for sparse deadline checks

	stats       Stats
	interrupted bool
}

// init seeds the depot label and prepares the frontier.
func (e *engine) init() {
	if e.opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(e.opts.TimeLimit)
	}
	if e.opts.Order == BestFirst {
		heap.Init(&e.pq)
	}

	seed := &Label{
		Node: e.inst.Start,
		Res:  e.variant.Seed(e.inst.Start),
	}
	e.stats.Created++
	e.sets[seed.Node] = append(e.sets[seed.Node], seed)
	e.push(seed)
}

// run is the main loop: pop, budget check, extend; until the frontier
// empties or a budget interrupts.
func (e *engine) run() {
	var (
		lb *Label
		ok bool
	)
	for {
		if lb, ok = e.pop(); !ok {
			return
		}
		if lb.evicted {
			continue // stale entry, displaced by dominance after being pushed
		}
		if e.overBudget() {
			e.interrupted = true

			return
		}
		e.stats.Popped++
		e.extend(lb)
	}
}

// overBudget evaluates the label-count and (sparsely) the wall-clock budget.
// Called once per live pop, per the early-termination contract.
func (e *engine) overBudget() bool {
	if e.opts.MaxLabels > 0 && e.stats.Created >= e.opts.MaxLabels {
		return true
	}
	e.pops++
	if e.useDeadline && (e.pops&deadlineMask) == 0 {
		return time.Now().After(e.deadline)
	}

	return false
}

// extend applies the REF chain across every out-arc of lb, gates the
// survivors through the variant's feasibility check and the destination's
// dominance antichain, and pushes accepted candidates as open labels.
func (e *engine) extend(lb *Label) {
	var (
		to   int
		ref  RefFunc
		rv   ResourceVector
		dead bool
		cand *Label
	)
	for _, to = range e.inst.OutArcs(lb.Node) {
		// 1) REF chain on a fresh clone; first failure discards the arc.
		rv = lb.Res.Clone()
		dead = false
		for _, ref = range e.chain {
			if !ref(&rv, lb.Node, to) {
				dead = true
				break
			}
		}
		if dead {
			e.stats.Infeasible++
			continue
		}

		// 2) Final cross-resource gate.
		cand = &Label{Node: to, Res: rv, Prev: lb, Steps: lb.Steps + 1}
		if !e.variant.Feasible(cand) {
			e.stats.Rejected++
			continue
		}
		e.stats.Created++

		// 3) Dominance against the destination's antichain.
		if !e.insert(cand) {
			e.stats.Dominated++
			continue
		}
		e.push(cand)
	}
}

// insert compares cand against the label set at cand.Node. It returns false
// if an existing label dominates cand; otherwise it evicts every stored
// label cand dominates (flagging open ones for lazy frontier skip) and
// stores cand, preserving the antichain invariant.
func (e *engine) insert(cand *Label) bool {
	set := e.sets[cand.Node]
	var old *Label
	for _, old = range set {
		if e.variant.Dominates(old, cand) {
			return false
		}
	}

	// cand survives: filter out what it dominates, in place.
	kept := set[:0]
	for _, old = range set {
		if e.variant.Dominates(cand, old) {
			old.evicted = true
			e.stats.Evicted++
			continue
		}
		kept = append(kept, old)
	}
	e.sets[cand.Node] = append(kept, cand)

	return true
}

// push makes lb an open label under the configured frontier order.
func (e *engine) push(lb *Label) {
	if e.opts.Order == BestFirst {
		e.seq++
		heap.Push(&e.pq, &pqItem{lb: lb, cost: e.variant.ReducedCost(lb.Res), seq: e.seq})

		return
	}
	e.queue = append(e.queue, lb)
}

// pop removes the next open label; ok is false once the frontier is empty.
func (e *engine) pop() (*Label, bool) {
	switch e.opts.Order {
	case BestFirst:
		if e.pq.Len() == 0 {
			return nil, false
		}

		return heap.Pop(&e.pq).(*pqItem).lb, true
	case FIFO:
		if e.head == len(e.queue) {
			return nil, false
		}
		lb := e.queue[e.head]
		e.queue[e.head] = nil // release for reclamation
		e.head++

		return lb, true
	default: // LIFO
		n := len(e.queue)
		if n == 0 {
			return nil, false
		}
		lb := e.queue[n-1]
		e.queue[n-1] = nil
		e.queue = e.queue[:n-1]

		return lb, true
	}
}

// collect assembles the Result: end-depot survivors sorted deterministically,
// columns filtered by the Eps threshold, survivor totals for Stats.
func (e *engine) collect() (Result, error) {
	var n int
	for n = 0; n < e.inst.NumNodes; n++ {
		e.stats.Survivors += len(e.sets[n])
	}

	res := Result{Stats: e.stats, Interrupted: e.interrupted}

	endSet := e.sets[e.inst.End]
	if len(endSet) == 0 {
		if e.interrupted {
			return res, nil // budget hit before anything reached the end depot
		}

		return res, ErrEndUnreached
	}

	// Deterministic order: ascending stabilized cost, then lexicographic
	// path. Paths are reconstructed once and reused for both sort and output.
	type scored struct {
		lb   *Label
		cost float64
		path []int
	}
	ranked := make([]scored, len(endSet))
	var i int
	for i = range endSet {
		ranked[i] = scored{
			lb:   endSet[i],
			cost: round1e9(e.variant.ReducedCost(endSet[i].Res)),
			path: endSet[i].Path(),
		}
	}
	sort.Slice(ranked, func(a, b int) bool {
		if ranked[a].cost != ranked[b].cost {
			return ranked[a].cost < ranked[b].cost
		}

		return lexLess(ranked[a].path, ranked[b].path)
	})

	res.Labels = make([]*Label, len(ranked))
	for i = range ranked {
		res.Labels[i] = ranked[i].lb
		if ranked[i].cost < -e.opts.Eps {
			res.Columns = append(res.Columns, Column{
				Path:        ranked[i].path,
				ReducedCost: ranked[i].cost,
				Res:         ranked[i].lb.Res,
			})
		}
	}

	return res, nil
}

// lexLess reports whether path a precedes path b lexicographically.
func lexLess(a, b []int) bool {
	var i int
	for i = 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}

// pqItem is one frontier entry of the best-first order: the label, its
// reduced cost at push time and an insertion sequence for deterministic ties.
type pqItem struct {
	lb   *Label
	cost float64
	seq  int
}

// labelPQ is a min-heap of *pqItem ordered by (cost, seq) ascending.
type labelPQ []*pqItem

// Len returns the number of items in the heap.
func (pq labelPQ) Len() int { return len(pq) }

// Less defines the comparison: smaller cost → higher priority; insertion
// order breaks ties to keep runs reproducible.
func (pq labelPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq labelPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *pqItem.
func (pq *labelPQ) Push(x interface{}) { *pq = append(*pq, x.(*pqItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *labelPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
