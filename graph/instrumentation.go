// instrumentation.go — section F: non-functional counters.
//
// Stats mirrors the reference implementation's static `m` struct
// (original_source/C/graph.c lines 20-34): up-edge deletion seek
// lengths and pending-queue fill levels. Purely diagnostic; nothing in
// graph's control flow reads Stats back.

package graph

import "fmt"

// Stats is a point-in-time snapshot of the resolver's instrumentation
// counters. Call (*Graph).Stats to obtain one.
type Stats struct {
	// DeleteNCalls counts calls to deleteNEdge.
	DeleteNCalls int
	// DeleteNSeekTotal sums the linear-scan length (hops before the
	// match) across every deleteNEdge call.
	DeleteNSeekTotal int
	// DeleteNSeekMax is the longest single deleteNEdge scan observed.
	DeleteNSeekMax int

	// PendingPushCalls counts calls to pushPending.
	PendingPushCalls int
	// PendingFillLevel is the current pending-queue length.
	PendingFillLevel int
	// PendingFillMax is the highest PendingFillLevel ever observed.
	PendingFillMax int
}

// Stats returns a snapshot of the current instrumentation counters.
func (g *Graph) Stats() Stats {
	return g.stats
}

// String renders Stats as the free-form human-readable report
// spec.md §4.F calls for ("Instrumentation output is free-form text").
func (s Stats) String() string {
	avgSeek := 0.0
	if s.DeleteNCalls > 0 {
		avgSeek = float64(s.DeleteNSeekTotal) / float64(s.DeleteNCalls)
	}

	return fmt.Sprintf(
		"deleteNEdge: calls=%d total_seek=%d max_seek=%d avg_seek=%.3f | pending: pushes=%d fill=%d max_fill=%d",
		s.DeleteNCalls, s.DeleteNSeekTotal, s.DeleteNSeekMax, avgSeek,
		s.PendingPushCalls, s.PendingFillLevel, s.PendingFillMax,
	)
}
