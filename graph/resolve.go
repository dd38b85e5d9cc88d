// resolve.go — Resolver (spec.md §4.E), grounded on oc_graph_resolve,
// oc_aux_rule, oc_cascade, and oc_propagate_xor
// (original_source/C/graph.c lines 344-791).
//
// The resolver drains the pending queue, applying the auxiliary rule
// to unsolved aux nodes with zero unsolved down-edges and the
// propagation rule to solved aux/check nodes with exactly one unsolved
// down-edge, cascading each newly-solved node up through its up-edges.
// Stepping mode (spec.md §9) is a call choice — Step returns after one
// unit of progress, Resolve drains until the queue empties or done.

package graph

// sentinelNone marks "not yet found" while scanning for the single
// unsolved down-edge in the propagation rule. spec.md §9's Open
// Question flags the reference source's `assert(to = -1)` as a likely
// assignment-for-comparison typo; this implementation instead
// initializes to this sentinel and asserts it was overwritten by the
// scan, never replicating the buggy assignment.
const sentinelNone = -1

// Resolve drains the pending queue fully, applying resolution rules
// until either the queue empties (returns done=false, more check
// blocks are needed) or every message block is solved (done=true).
// newlySolved accumulates every node solved during this call.
func (g *Graph) Resolve() (newlySolved []Solved, done bool, err error) {
	for {
		solved, progressed, stepDone, stepErr := g.step()
		if stepErr != nil {
			return newlySolved, g.done, stepErr
		}
		if solved != nil {
			newlySolved = append(newlySolved, *solved)
		}
		if stepDone {
			return newlySolved, true, nil
		}
		if !progressed {
			return newlySolved, false, nil
		}
	}
}

// Step performs at most one unit of resolver progress — popping one
// pending node and acting on it — then returns, letting the caller
// process a single solved block's recipe before the next call. It
// returns done=true once every message block is solved.
func (g *Graph) Step() (solved *Solved, done bool, err error) {
	s, _, stepDone, stepErr := g.step()

	return s, stepDone, stepErr
}

// step implements one iteration of spec.md §4.E's resolver loop.
// progressed reports whether a pending entry was popped at all (false
// means the queue was already empty); stepDone mirrors Graph.done.
func (g *Graph) step() (solved *Solved, progressed bool, stepDone bool, err error) {
	if g.pendingEmpty() {
		return nil, false, g.done, nil
	}
	if g.unsolvedCount == 0 {
		g.done = true
		g.flushPending()

		return nil, true, true, nil
	}

	cell := g.shiftPending()
	from := cell.Value
	idx := from - g.mblocks
	u := g.edgeCount[idx]

	switch {
	case u > 1:
		// Stale entry: cannot fire yet (spec.md invariant 5 — pending
		// membership is advisory). Discard and let a later cascade
		// re-enqueue it.
		g.pool.Release(cell)

		return nil, true, false, nil

	case u == 0:
		if g.isCheck(from) || g.solved[from] {
			// Check node, or an already-solved aux node: carries no
			// new information.
			if derr := g.decommissionNode(from); derr != nil {
				return nil, true, false, derr
			}
			g.pool.Release(cell)

			return nil, true, false, nil
		}

		// Unsolved aux node with zero unsolved down-edges: aux rule.
		s, aerr := g.applyAuxRule(from)
		g.pool.Release(cell)
		if aerr != nil {
			return nil, true, false, aerr
		}
		if cerr := g.cascade(from); cerr != nil {
			return &s, true, false, cerr
		}

		return &s, true, false, nil

	default: // u == 1
		if g.isAux(from) && !g.solved[from] {
			// One unknown but not itself solved yet: cannot propagate.
			g.pool.Release(cell)

			return nil, true, false, nil
		}

		s, to, perr := g.applyPropagationRule(from)
		g.pool.Release(cell)
		if perr != nil {
			return nil, true, false, perr
		}

		if g.isMessage(to) {
			g.unsolvedCount--
			if g.unsolvedCount == 0 {
				g.done = true
				g.flushPending()

				return &s, true, true, nil
			}
		} else {
			g.pushPending(to)
		}

		if cerr := g.cascade(to); cerr != nil {
			return &s, true, false, cerr
		}

		return &s, true, false, nil
	}
}

// applyAuxRule marks an unsolved aux node solved, transferring its
// down-edge list into its XOR recipe and deleting every reciprocal
// up-edge (spec.md: "no edge_count decrement because this node has no
// owner above it contributing unsolved dependencies").
func (g *Graph) applyAuxRule(from int) (Solved, error) {
	idx := from - g.mblocks
	recipe := g.vEdges[idx]
	g.vEdges[idx] = nil
	g.solved[from] = true
	g.xorList[from] = recipe

	for _, l := range recipe {
		if err := g.deleteNEdge(from, l, false); err != nil {
			return Solved{}, err
		}
	}

	return Solved{Node: from, Recipe: recipe}, nil
}

// applyPropagationRule solves the single remaining unsolved down-edge
// `to` of a solved aux/check node `from`: removes it from from's
// down-edge list, deletes its reciprocal up-edge (decrementing
// edge_count[from], which lands on zero), computes to's new recipe as
// from's recipe concatenated with from's remaining down-edges, marks
// to solved, and decommissions the now-spent `from`.
func (g *Graph) applyPropagationRule(from int) (Solved, int, error) {
	idx := from - g.mblocks
	down := g.vEdges[idx]

	to := sentinelNone
	pos := -1
	for i, l := range down {
		if !g.IsSolved(l) {
			to = l
			pos = i

			break
		}
	}
	if to == sentinelNone {
		return Solved{}, 0, ErrInvariantViolation
	}

	// Remove `to` via swap-with-last-and-shrink.
	last := len(down) - 1
	down[pos] = down[last]
	down = down[:last]
	g.vEdges[idx] = down

	if err := g.deleteNEdge(from, to, true); err != nil {
		return Solved{}, 0, err
	}

	recipe := make([]int, 0, len(g.xorList[from])+len(down))
	recipe = append(recipe, g.xorList[from]...)
	recipe = append(recipe, down...)

	g.solved[to] = true
	g.xorList[to] = recipe

	if err := g.decommissionNode(from); err != nil {
		return Solved{}, 0, err
	}

	return Solved{Node: to, Recipe: recipe}, to, nil
}

// cascade propagates a newly-solved node's effect up through every
// upper node referencing it: each such upper node's edge_count is
// decremented, and if the result drops below 2 it is (re-)enqueued —
// the threshold that covers both rule triggers (exactly 1 →
// propagation candidate, 0 → decommission/aux candidate).
func (g *Graph) cascade(node int) error {
	for c := g.nEdges[node]; c != nil; c = c.Next {
		u := c.Value
		uidx := u - g.mblocks
		if g.edgeCount[uidx] == 0 {
			return ErrInvariantViolation
		}
		g.edgeCount[uidx]--
		if g.edgeCount[uidx] < 2 {
			g.pushPending(u)
		}
	}

	return nil
}
