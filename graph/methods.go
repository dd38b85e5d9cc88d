// methods.go — shared edge, pending-queue, and decommission helpers
// used by init.go, ingest.go, and resolve.go. Grounded on
// original_source/C/graph.c's oc_create_n_edge, oc_delete_n_edge,
// oc_decommission_node, oc_push_pending, oc_shift_pending, and
// oc_flush_pending.

package graph

import "github.com/katalvlaran/onlinecode/pool"

// createNEdge adds the reciprocal up-edge lower→upper to lower's
// n-edge chain. Every down-edge upper→lower created by the initialiser
// or by IngestCheckBlock must have a matching call here to preserve
// invariant 2 (reciprocity).
//
// Complexity: O(1).
func (g *Graph) createNEdge(upper, lower int) {
	c := g.pool.Acquire()
	c.Value = upper
	c.Next = g.nEdges[lower]
	g.nEdges[lower] = c
}

// deleteNEdge walks nEdges[lower] linearly, unlinking the first cell
// naming upper, and returns it to the pool. If decrement is set,
// edgeCount[upper] is pre-decremented first — the auxiliary rule
// passes decrement=false because the node being retired is itself the
// one whose counter would be zeroed (self-decrementing is moot there);
// the propagation rule's single winning-edge removal passes
// decrement=true (spec.md §9, "decommission during aux rule").
//
// A missing edge is an invariant-2 violation and is reported via
// ErrInvariantViolation rather than a panic or silent no-op, per
// spec.md §7's "programming error" classification.
//
// Complexity: O(deg(lower)) in the worst case; Stats tracks the
// observed seek length for the instrumentation report.
func (g *Graph) deleteNEdge(upper, lower int, decrement bool) error {
	g.stats.DeleteNCalls++

	if decrement {
		g.edgeCount[upper-g.mblocks]--
	}

	hops := 0
	var prev *pool.Cell
	for c := g.nEdges[lower]; c != nil; c = c.Next {
		if c.Value == upper {
			if prev == nil {
				g.nEdges[lower] = c.Next
			} else {
				prev.Next = c.Next
			}
			g.pool.Release(c)

			g.stats.DeleteNSeekTotal += hops
			if hops > g.stats.DeleteNSeekMax {
				g.stats.DeleteNSeekMax = hops
			}

			return nil
		}
		prev = c
		hops++
	}

	return ErrInvariantViolation
}

// decommissionNode retires an upper node whose down-edges still carry
// information: every reciprocal up-edge l→node is deleted (without
// decrementing edgeCount — the node itself is going away), the
// down-edge slice is freed, and the slot is nulled. Idempotent: a node
// already decommissioned (nil down-edges) is a no-op on the second
// call, matching spec.md's "Idempotent decommission" law.
func (g *Graph) decommissionNode(node int) error {
	idx := node - g.mblocks
	down := g.vEdges[idx]
	g.vEdges[idx] = nil
	if down == nil {
		return nil
	}

	for _, l := range down {
		if err := g.deleteNEdge(node, l, false); err != nil {
			return err
		}
	}

	return nil
}

// pushPending appends node to the tail of the pending queue, acquiring
// a cell from the pool.
func (g *Graph) pushPending(node int) {
	c := g.pool.Acquire()
	c.Value = node
	c.Next = nil

	if g.pendingTail != nil {
		g.pendingTail.Next = c
	} else {
		g.pendingHead = c
	}
	g.pendingTail = c

	g.stats.PendingPushCalls++
	g.stats.PendingFillLevel++
	if g.stats.PendingFillLevel > g.stats.PendingFillMax {
		g.stats.PendingFillMax = g.stats.PendingFillLevel
	}
}

// shiftPending removes and returns the head pending cell. Callers must
// check pendingHead != nil (or g.pendingEmpty()) first.
func (g *Graph) shiftPending() *pool.Cell {
	c := g.pendingHead
	g.pendingHead = c.Next
	if g.pendingHead == nil {
		g.pendingTail = nil
	}
	g.stats.PendingFillLevel--

	return c
}

// pendingEmpty reports whether the pending queue currently holds no
// entries (spec.md invariant 5: membership is advisory, so this is
// purely a "do I have anything to pop" check, not a correctness gate).
func (g *Graph) pendingEmpty() bool {
	return g.pendingHead == nil
}

// flushPending discards every remaining pending cell, returning them
// all to the pool. Called once Resolve determines unsolvedCount has
// reached zero.
func (g *Graph) flushPending() {
	for g.pendingHead != nil {
		c := g.pendingHead
		g.pendingHead = c.Next
		g.pool.Release(c)
	}
	g.pendingTail = nil
	g.stats.PendingFillLevel = 0
}

// Close flushes the Graph's pool if the Graph owns it (i.e. it was not
// supplied via WithPool). On a shared pool it does nothing: it neither
// flushes the pool nor calls ReleaseUser, leaving the retain/release
// bookkeeping to the caller as WithPool describes.
func (g *Graph) Close() {
	if g.ownsPool {
		g.pool.Flush()
	}
}
