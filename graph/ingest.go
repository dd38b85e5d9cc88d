// ingest.go — Check-block ingest (spec.md §4.D), grounded on
// oc_graph_check_block (original_source/C/graph.c lines 238-342).

package graph

import "fmt"

// IngestCheckBlock registers a new check node whose down-edges are
// vEdges — lower-node indices in [0, coblocks). Ownership of vEdges
// transfers to the Graph; callers must not reuse or mutate the slice
// afterward.
//
// Already-solved down-edges are pruned out via swap-with-last-and-
// shrink and folded into the new node's XOR recipe; every remaining
// (unsolved) down-edge gets a reciprocal up-edge and keeps the node's
// edge_count accurate (invariant 1). The node is then queued for
// resolution.
//
// Returns the new node index on success, or ErrCapacityExhausted if
// every check-node slot is already assigned.
//
// Complexity: O(k) in len(vEdges).
func (g *Graph) IngestCheckBlock(vEdges []int) (int, error) {
	node := g.nodes
	g.nodes++
	if node >= g.nodeSpace {
		return 0, fmt.Errorf("%w: node %d >= node_space %d", ErrCapacityExhausted, node, g.nodeSpace)
	}

	solvedIDs := make([]int, 0)
	unsolved := vEdges[:0]
	for _, l := range vEdges {
		if g.IsSolved(l) {
			solvedIDs = append(solvedIDs, l)
		} else {
			unsolved = append(unsolved, l)
		}
	}

	recipe := make([]int, 0, 1+len(solvedIDs))
	recipe = append(recipe, node)
	recipe = append(recipe, solvedIDs...)
	g.xorList[node] = recipe

	for _, l := range unsolved {
		g.createNEdge(node, l)
	}

	idx := node - g.mblocks
	g.vEdges[idx] = unsolved
	g.edgeCount[idx] = len(unsolved)

	g.pushPending(node)

	return node, nil
}
