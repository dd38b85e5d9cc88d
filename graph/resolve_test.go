package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/onlinecode/graph"
)

// newTestGraph builds a graph.Graph with enough check-space headroom for
// the small fixtures below; callers feed check blocks by hand rather than
// via codec, so the exact auxiliary map and ordering are deterministic.
func newTestGraph(t *testing.T, mblocks, ablocks, q int, auxiliary []int) *graph.Graph {
	t.Helper()
	p := graph.Params{MBlocks: mblocks, ABlocks: ablocks, Q: q, E: 1.0, Fudge: 2.0}
	g, err := graph.NewGraph(p, auxiliary)
	require.NoError(t, err)

	return g
}

// TestTrivialOneHop is scenario 1: four message blocks, two auxiliary
// nodes, each message fed via its own singleton check block. Every
// message should solve directly off its check node with a one-element
// recipe naming that check node.
func TestTrivialOneHop(t *testing.T) {
	// msg0:[4,5] msg1:[4,4] msg2:[5,4] msg3:[5,5] — deliberately gives
	// aux4 and aux5 four down-edges each, with msg1/msg3 doubled up.
	aux := []int{4, 5, 4, 4, 5, 4, 5, 5}
	g := newTestGraph(t, 4, 2, 2, aux)

	for msg := 0; msg < 4; msg++ {
		node, err := g.IngestCheckBlock([]int{msg})
		require.NoError(t, err)
		require.Equal(t, g.CoBlocks()+msg, node)

		_, _, err = g.Resolve()
		require.NoError(t, err)
	}

	require.True(t, g.Done())
	for msg := 0; msg < 4; msg++ {
		require.True(t, g.IsSolved(msg))
		recipe, ok := g.Recipe(msg)
		require.True(t, ok)
		require.Equal(t, []int{g.CoBlocks() + msg}, recipe)
	}
}

// TestAuxRuleFires is scenario 2: feeding check blocks that solve every
// message feeding into one auxiliary node drives that node's edge_count
// to zero, firing the auxiliary rule with a recipe equal to its full
// down-edge set.
func TestAuxRuleFires(t *testing.T) {
	// msg0,msg1 -> aux4 only (q=1); msg2,msg3 feed aux5 so aux5 never
	// reaches zero from these two check blocks alone.
	aux := []int{4, 4, 5, 5}
	g := newTestGraph(t, 4, 2, 1, aux)
	auxNode := g.MBlocks() // first auxiliary node index: 4

	_, err := g.IngestCheckBlock([]int{0})
	require.NoError(t, err)
	solved, _, err := g.Resolve()
	require.NoError(t, err)
	require.NotEmpty(t, solved)

	_, err = g.IngestCheckBlock([]int{1})
	require.NoError(t, err)
	solved, _, err = g.Resolve()
	require.NoError(t, err)

	require.True(t, g.IsSolved(0))
	require.True(t, g.IsSolved(1))
	require.True(t, g.IsSolved(auxNode), "aux node should have been solved by the aux rule")

	var firedAux bool
	for _, s := range solved {
		if s.Node == auxNode {
			firedAux = true
			require.ElementsMatch(t, []int{0, 1}, s.Recipe)
		}
	}
	require.True(t, firedAux, "expected the aux node among this call's newly solved nodes")
}

// TestPropagationChain is scenario 3: a check block with two down-edges,
// one already solved, propagates through the single remaining unknown.
func TestPropagationChain(t *testing.T) {
	aux := []int{4, 4, 5, 5}
	g := newTestGraph(t, 4, 2, 1, aux)

	// Solve msg0 directly via a singleton check block.
	_, err := g.IngestCheckBlock([]int{0})
	require.NoError(t, err)
	_, _, err = g.Resolve()
	require.NoError(t, err)
	require.True(t, g.IsSolved(0))

	// A check block over {0,1}: 0 is already solved and gets pruned into
	// the recipe, leaving a single unsolved down-edge (1) to propagate.
	node, err := g.IngestCheckBlock([]int{0, 1})
	require.NoError(t, err)
	solved, _, err := g.Resolve()
	require.NoError(t, err)

	require.True(t, g.IsSolved(1))
	var found bool
	for _, s := range solved {
		if s.Node == 1 {
			found = true
			require.Contains(t, s.Recipe, node)
			require.Contains(t, s.Recipe, 0)
		}
	}
	require.True(t, found, "expected message 1 among this call's newly solved nodes")
}

// TestPendingStaleEntryDiscarded is scenario 4: a pending entry can go
// stale (its edge_count rises above the threshold again indirectly, or
// it gets re-evaluated after the node it names was already decommissioned
// by an earlier step in the same Resolve call) and must be discarded
// without error rather than acted on twice.
func TestPendingStaleEntryDiscarded(t *testing.T) {
	// aux4 starts with three down-edges (msg0,msg1,msg2); msg3 feeds
	// aux5 alone. Feeding all three of aux4's messages in one Resolve
	// window exercises multiple pending pops against the same aux node
	// as its edge_count walks down 3->2->1->0.
	aux := []int{4, 4, 4, 5}
	g := newTestGraph(t, 4, 2, 1, aux)
	auxNode := g.MBlocks() // 4

	for _, msg := range []int{0, 1, 2} {
		_, err := g.IngestCheckBlock([]int{msg})
		require.NoError(t, err)
	}
	solved, _, err := g.Resolve()
	require.NoError(t, err)

	require.True(t, g.IsSolved(0))
	require.True(t, g.IsSolved(1))
	require.True(t, g.IsSolved(2))
	require.True(t, g.IsSolved(auxNode)) // aux rule should have fired

	var seen int
	for _, s := range solved {
		if s.Node == auxNode {
			seen++
		}
	}
	require.Equal(t, 1, seen, "aux node must not be solved more than once despite repeated pending entries")
}

// TestCapacityBoundary is scenario 5: IngestCheckBlock rejects a check
// block once every reserved slot in [coblocks, nodeSpace) is assigned.
func TestCapacityBoundary(t *testing.T) {
	aux := []int{2, 3}
	g := newTestGraph(t, 2, 2, 1, aux)

	budget := g.NodeSpace() - g.CoBlocks()
	for i := 0; i < budget; i++ {
		_, err := g.IngestCheckBlock([]int{0})
		require.NoError(t, err)
	}

	_, err := g.IngestCheckBlock([]int{0})
	require.ErrorIs(t, err, graph.ErrCapacityExhausted)
}

// TestDecommissionIsIdempotent locks in the law that retiring an already
// decommissioned node a second time is a silent no-op, not an error.
func TestDecommissionIsIdempotent(t *testing.T) {
	aux := []int{2, 2}
	g := newTestGraph(t, 2, 2, 1, aux)

	_, err := g.IngestCheckBlock([]int{0})
	require.NoError(t, err)
	_, _, err = g.Resolve()
	require.NoError(t, err)

	_, err = g.IngestCheckBlock([]int{1})
	require.NoError(t, err)
	_, _, err = g.Resolve()
	require.NoError(t, err)

	require.True(t, g.Done())

	// A check node popped twice with edge_count 0: msg0..msg2 feed aux3;
	// check {0,1} is queued first (edge_count 2, discarded), then {0} and
	// {1} each solve one message and their cascades push {0,1} back twice
	// (edge_count 1, then 0). The first of those pops decommissions it;
	// the second must be a no-op rather than a missing-edge error.
	g2 := newTestGraph(t, 3, 1, 1, []int{3, 3, 3})
	for _, block := range [][]int{{0, 1}, {0}, {1}} {
		_, err = g2.IngestCheckBlock(block)
		require.NoError(t, err)
	}
	_, done, err := g2.Resolve()
	require.NoError(t, err)
	require.False(t, done)
	require.True(t, g2.IsSolved(0))
	require.True(t, g2.IsSolved(1))
	require.False(t, g2.IsSolved(2))
	// Two single-edge removals by the propagation rule plus the two
	// up-edges of {0,1} deleted by its first decommission; the second
	// decommission deletes nothing.
	require.Equal(t, 4, g2.Stats().DeleteNCalls)
}

// TestInvalidParamsRejected covers NewGraph's validation surface.
func TestInvalidParamsRejected(t *testing.T) {
	base := graph.Params{MBlocks: 2, ABlocks: 2, Q: 1, E: 1.0, Fudge: 2.0}

	_, err := graph.NewGraph(graph.Params{MBlocks: 0, ABlocks: 2, Q: 1, E: 1.0, Fudge: 2.0}, []int{2, 2})
	require.ErrorIs(t, err, graph.ErrInvalidParams)

	_, err = graph.NewGraph(graph.Params{MBlocks: 2, ABlocks: 0, Q: 1, E: 1.0, Fudge: 2.0}, []int{2, 2})
	require.ErrorIs(t, err, graph.ErrInvalidParams)

	_, err = graph.NewGraph(graph.Params{MBlocks: 2, ABlocks: 2, Q: 1, E: 1.0, Fudge: 1.0}, []int{2, 2})
	require.ErrorIs(t, err, graph.ErrInvalidParams)

	_, err = graph.NewGraph(base, []int{2})
	require.ErrorIs(t, err, graph.ErrInvalidParams)

	_, err = graph.NewGraph(base, []int{9, 2})
	require.ErrorIs(t, err, graph.ErrInvalidParams)

	_, err = graph.NewGraph(base, nil)
	require.ErrorIs(t, err, graph.ErrInvalidParams)
}

// TestResolveNoProgressReturnsNotDone verifies Resolve returns cleanly
// with done=false once the pending queue drains without solving
// everything, rather than blocking or erroring.
func TestResolveNoProgressReturnsNotDone(t *testing.T) {
	aux := []int{4, 4, 4, 4}
	g := newTestGraph(t, 4, 1, 1, aux)

	// Two unsolved down-edges: edge_count starts at 2, above the
	// resolver's trigger threshold, so this pop is discarded as stale
	// and nothing resolves from it alone.
	_, err := g.IngestCheckBlock([]int{0, 1})
	require.NoError(t, err)

	_, done, err := g.Resolve()
	require.NoError(t, err)
	require.False(t, done)
	require.False(t, g.IsSolved(0), "a check block with two unresolved down-edges should not resolve either")
	require.False(t, g.IsSolved(1))
}

// TestStatsReportsDeleteAndPendingActivity is scenario 6's Go-native
// counterpart: rather than an injected allocator-failure path (Go's
// garbage collector does not expose one — see DESIGN.md), this exercises
// the same instrumentation counters under a moderately busy resolve.
func TestStatsReportsDeleteAndPendingActivity(t *testing.T) {
	aux := []int{4, 4, 4, 5}
	g := newTestGraph(t, 4, 2, 1, aux)

	for _, msg := range []int{0, 1, 2, 3} {
		_, err := g.IngestCheckBlock([]int{msg})
		require.NoError(t, err)
	}
	_, _, err := g.Resolve()
	require.NoError(t, err)

	stats := g.Stats()
	require.Greater(t, stats.DeleteNCalls, 0)
	require.Greater(t, stats.PendingPushCalls, 0)
	require.NotEmpty(t, stats.String())

	g.Close()
}
