// Package pool implements a ring-buffered free list of fixed-size
// universal cells, used by package graph to back both up-edge
// (n-edge) lists and the pending-resolution queue without incurring
// per-edge allocator churn in the resolver's inner loop.
//
// A Cell is an untagged two-field value capable of holding either an
// n-edge link (Next, Value=upper-node index) or a pending-queue entry
// (Next, Value=node index); Pool never inspects Value, so the same
// cell shape serves both roles.
//
// Acquire returns a cell from the head of the free ring, falling back
// to a fresh allocation when the ring is empty. Release appends a cell
// to the tail. Pool is not required for correctness — graph degrades
// gracefully to plain allocation if Acquire always misses the ring —
// it exists purely to amortize allocator pressure.
//
// Pool is reference-counted via Retain/ReleaseUser so that multiple graph
// instances may share one Pool deliberately (mirroring the reference
// implementation's single ambient pool), without forcing that sharing
// on callers who would rather give each Graph its own Pool.
//
// Pool is not safe for concurrent use; see package graph's doc comment
// for the module's single-threaded resource model.
package pool
