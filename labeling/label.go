// Package labeling - Label and ResourceVector: the partial-path record and
// its fixed-layout resource tuple.
package labeling

import "github.com/yourbasic/bit"

// ResourceVector is the fixed-layout resource tuple of one label: scalar
// dimensions in the variant's declared order plus at most one set-valued
// dimension (the visited-customer set). Fixing the layout once per variant
// keeps dominance an element-wise comparison instead of a keyed-map walk.
//
// REFs receive a fresh clone and may mutate it freely; a parent label's
// vector is never touched after the label is created.
type ResourceVector struct {
	// Scalars holds the scalar resource values, index = declared position.
	Scalars []float64

	// Visited is the set-valued resource (nil for variants without one).
	Visited *bit.Set
}

// Clone returns a deep copy of the vector. Extension always clones the
// predecessor's vector before applying any REF, so infeasible branches can
// be abandoned without unwinding partial writes.
func (rv ResourceVector) Clone() ResourceVector {
	out := ResourceVector{Scalars: append([]float64(nil), rv.Scalars...)}
	if rv.Visited != nil {
		out.Visited = new(bit.Set).SetOr(rv.Visited, rv.Visited)
	}

	return out
}

// Label is an immutable partial-path record: the node the path currently
// ends at, the accumulated resource vector, the predecessor label and the
// arc count from the seed. Predecessor references form an ownership tree
// rooted at the depot seed (the unique label with Prev == nil); walking it
// reconstructs the full path without storing one per label.
type Label struct {
	// Node is the last node of the partial path.
	Node int

	// Res is the accumulated resource vector at Node.
	Res ResourceVector

	// Prev is the predecessor label; nil only for the depot seed.
	Prev *Label

	// Steps is the number of arcs between the seed and this label.
	Steps int

	// evicted marks a stored label displaced by dominance; the frontier
	// skips such entries lazily when popped. Engine bookkeeping only;
	// the label's path data above never changes.
	evicted bool
}

// Path reconstructs the node sequence from the depot seed to this label by
// walking the predecessor chain.
//
// Complexity: O(Steps) time and space.
func (l *Label) Path() []int {
	path := make([]int, l.Steps+1)
	cur := l
	var i int
	for i = l.Steps; i >= 0; i-- {
		path[i] = cur.Node
		cur = cur.Prev
	}

	return path
}
