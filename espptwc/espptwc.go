// Package espptwc - model construction, seed and REF set.
package espptwc

import (
	"errors"
	"fmt"

	"github.com/yourbasic/bit"

	"github.com/katalvlaran/espprc/core"
	"github.com/katalvlaran/espprc/labeling"
)

// Sentinel errors returned by New.
var (
	// ErrNilInstance indicates that a nil *core.Instance was passed to New.
	ErrNilInstance = errors.New("espptwc: instance is nil")

	// ErrInvalidInstance wraps the core validation failure of the instance.
	ErrInvalidInstance = errors.New("espptwc: invalid instance")
)

// Declared resource names, in REF application order.
const (
	ResReducedCost = "reduced_cost"
	ResTime        = "time"
	ResLoad        = "load"
	ResVisited     = "visited"
)

// Scalar layout of the resource vector (index into ResourceVector.Scalars).
const (
	idxCost = iota
	idxTime
	idxLoad
	numScalars
)

// Model is the ESPPTWC capability bundle: it satisfies labeling.Variant for
// a validated instance. A Model is read-only after New and safe to share
// across concurrent Solve calls.
type Model struct {
	inst *core.Instance
}

// compile-time contract check
var _ labeling.Variant = (*Model)(nil)

// New validates inst and binds the four-resource model to it.
func New(inst *core.Instance) (*Model, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}
	if err := inst.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInstance, err)
	}

	return &Model{inst: inst}, nil
}

// Price is the one-call convenience wrapper: build the model for inst and
// run the labeling engine with opts.
func Price(inst *core.Instance, opts labeling.Options) (labeling.Result, error) {
	m, err := New(inst)
	if err != nil {
		return labeling.Result{}, err
	}

	return labeling.Solve(inst, m, opts)
}

// ResourceNames returns the declared resources in REF application order.
func (m *Model) ResourceNames() []string {
	return []string{ResReducedCost, ResTime, ResLoad, ResVisited}
}

// REFs returns the extension function bound to each declared resource.
func (m *Model) REFs() map[string]labeling.RefFunc {
	return map[string]labeling.RefFunc{
		ResReducedCost: m.refReducedCost,
		ResTime:        m.refTime,
		ResLoad:        m.refLoad,
		ResVisited:     m.refVisited,
	}
}

// Seed builds the depot seed vector: zero cost and load, the start depot's
// ready time, and the start depot pre-marked as visited (see package docs
// for the multi-trip implication of that choice).
func (m *Model) Seed(start int) labeling.ResourceVector {
	rv := labeling.ResourceVector{
		Scalars: make([]float64, numScalars),
		Visited: new(bit.Set).Add(start),
	}
	rv.Scalars[idxTime] = m.inst.WindowOf(start).Ready

	return rv
}

// ReducedCost extracts the pricing objective from a resource vector.
func (m *Model) ReducedCost(rv labeling.ResourceVector) float64 {
	return rv.Scalars[idxCost]
}

// refReducedCost accumulates the arc's reduced cost. No feasibility ceiling:
// the dimension exists for pruning and column acceptance only.
func (m *Model) refReducedCost(rv *labeling.ResourceVector, from, to int) bool {
	rv.Scalars[idxCost] += m.inst.ReducedCost(from, to)

	return true
}

// refTime advances the service-start time across (from, to): travel, then
// wait up to the destination's ready time. Arriving past the due time is
// infeasible — the time-window bound lives here, inside the REF.
func (m *Model) refTime(rv *labeling.ResourceVector, from, to int) bool {
	w := m.inst.WindowOf(to)
	t := rv.Scalars[idxTime] + m.inst.TravelTime(from, to)
	if t < w.Ready {
		t = w.Ready // wait for the window to open
	}
	if t > w.Due {
		return false
	}
	rv.Scalars[idxTime] = t

	return true
}

// refLoad adds the destination's demand; exceeding capacity is infeasible.
func (m *Model) refLoad(rv *labeling.ResourceVector, from, to int) bool {
	load := rv.Scalars[idxLoad] + m.inst.Demand(to)
	if load > m.inst.Capacity {
		return false
	}
	rv.Scalars[idxLoad] = load

	return true
}

// refVisited enforces elementarity: revisiting any marked node (customer or
// depot sentinel) is infeasible; otherwise the destination's bit is set.
func (m *Model) refVisited(rv *labeling.ResourceVector, from, to int) bool {
	if rv.Visited.Contains(to) {
		return false
	}
	rv.Visited.Add(to)

	return true
}
