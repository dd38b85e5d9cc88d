// init.go — Initialiser (spec.md §4.C).
//
// NewGraph allocates all per-node arrays and seeds the auxiliary↔message
// edges in three deterministic passes over the caller-supplied
// auxiliary map, grounded on the reference implementation's
// oc_graph_init (original_source/C/graph.c lines 101-234):
//
//  1. For each (msg, aux) pair, create the up-edge msg→aux and
//     double-increment edge_count[aux] (the reference implementation's
//     "+2 trick").
//  2. For each aux, allocate its down-edge slice with capacity
//     edge_count[aux]/2.
//  3. Reset every aux counter to zero, then revisit the map in order,
//     appending each msg to its aux's down-edge slice and incrementing
//     edge_count[aux], which ends at the true down-edge count.

package graph

import (
	"fmt"

	"github.com/katalvlaran/onlinecode/pool"
)

// Params bundles the codec-supplied scalars NewGraph needs beyond the
// auxiliary map itself (spec.md §6 "Inputs from codec").
type Params struct {
	MBlocks int     // message block count, >= 1
	ABlocks int     // auxiliary block count, >= 1
	E       float64 // expected-check-block density constant
	Q       int     // auxiliary blocks per message block
	Fudge   float64 // > 1.0, headroom multiplier for check-node capacity
}

// CheckSpace computes ceil(Fudge * (1 + Q*E) * MBlocks), the number of
// check-node slots NewGraph reserves beyond CoBlocks.
func (p Params) CheckSpace() int {
	expected := (1 + float64(p.Q)*p.E) * float64(p.MBlocks)
	n := int(p.Fudge * expected)
	if float64(n) < p.Fudge*expected {
		n++ // ceiling without importing math for one call site
	}

	return n
}

// NewGraph builds a Graph from codec parameters and a flat auxiliary
// map: auxiliary[msg*Q+j] gives, for message msg, the index of its j-th
// auxiliary node (a value in [MBlocks, MBlocks+ABlocks)).
//
// Returns ErrInvalidParams for mblocks<1, ablocks<1, fudge<=1.0, q<1,
// or an auxiliary slice of the wrong length or out-of-range entries.
// Partial state on failure is never observed by callers since no
// *Graph is returned.
func NewGraph(p Params, auxiliary []int, opts ...GraphOption) (*Graph, error) {
	if p.MBlocks < 1 {
		return nil, fmt.Errorf("%w: mblocks (%d) must be >= 1", ErrInvalidParams, p.MBlocks)
	}
	if p.ABlocks < 1 {
		return nil, fmt.Errorf("%w: ablocks (%d) must be >= 1", ErrInvalidParams, p.ABlocks)
	}
	if p.Q < 1 {
		return nil, fmt.Errorf("%w: q (%d) must be >= 1", ErrInvalidParams, p.Q)
	}
	if p.Fudge <= 1.0 {
		return nil, fmt.Errorf("%w: fudge (%v) must be > 1.0", ErrInvalidParams, p.Fudge)
	}
	if auxiliary == nil {
		return nil, fmt.Errorf("%w: auxiliary map is nil", ErrInvalidParams)
	}
	if len(auxiliary) != p.MBlocks*p.Q {
		return nil, fmt.Errorf("%w: auxiliary map has %d entries, want %d", ErrInvalidParams, len(auxiliary), p.MBlocks*p.Q)
	}

	coblocks := p.MBlocks + p.ABlocks
	checkSpace := p.CheckSpace()
	nodeSpace := coblocks + checkSpace

	for _, a := range auxiliary {
		if a < p.MBlocks || a >= coblocks {
			return nil, fmt.Errorf("%w: auxiliary entry %d out of range [%d,%d)", ErrInvalidParams, a, p.MBlocks, coblocks)
		}
	}

	g := &Graph{
		mblocks:       p.MBlocks,
		ablocks:       p.ABlocks,
		coblocks:      coblocks,
		nodeSpace:     nodeSpace,
		nodes:         coblocks,
		unsolvedCount: p.MBlocks,

		vEdges:    make([][]int, p.ABlocks+checkSpace),
		nEdges:    make([]*pool.Cell, coblocks),
		solved:    make([]bool, coblocks),
		edgeCount: make([]int, p.ABlocks+checkSpace),
		xorList:   make([][]int, coblocks+checkSpace),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.pool == nil {
		g.pool = pool.New()
		g.ownsPool = true
	}

	// Pass 1: up-edges msg→aux, double-increment edge_count[aux].
	for msg := 0; msg < p.MBlocks; msg++ {
		for j := 0; j < p.Q; j++ {
			aux := auxiliary[msg*p.Q+j]
			g.createNEdge(aux, msg)
			g.edgeCount[aux-p.MBlocks] += 2
		}
	}

	// Pass 2: allocate down-edge slices for every aux node.
	for aux := 0; aux < p.ABlocks; aux++ {
		n := g.edgeCount[aux] / 2 // reverse the +2 trick
		g.vEdges[aux] = make([]int, 0, n)
	}

	// Pass 3: fill down-edges. Each append in map order is equivalent
	// to the reference's write-from-the-end-backward pass since we no
	// longer need the counter to double as both a write cursor and a
	// final value — a Go slice append achieves the same O(1) amortized
	// fill with none of the pointer arithmetic the packed-array
	// encoding required (spec.md §9: "the leading-slot convention is
	// an encoding detail, not a contract").
	for aux := 0; aux < p.ABlocks; aux++ {
		g.edgeCount[aux] = 0 // reset; pass 3 recomputes the true count via append
	}
	for msg := 0; msg < p.MBlocks; msg++ {
		for j := 0; j < p.Q; j++ {
			aux := auxiliary[msg*p.Q+j]
			idx := aux - p.MBlocks
			g.vEdges[idx] = append(g.vEdges[idx], msg)
			g.edgeCount[idx]++
		}
	}

	return g, nil
}
