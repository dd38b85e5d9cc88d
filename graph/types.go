// Package graph implements the tripartite message/auxiliary/check
// hypergraph resolver at the heart of an Online Code decoder: given a
// stream of check blocks (each naming the lower-node indices it XORs
// together), it runs the auxiliary rule and the propagation rule until
// every message block is solved, emitting a symbolic XOR recipe per
// solved node.
//
// Node index space. A single integer namespace of size
// coblocks+checkSpace:
//
//	[0, mblocks)                  — message nodes (the unknowns)
//	[mblocks, coblocks)           — auxiliary nodes
//	[coblocks, coblocks+checkSpace) — check nodes, appended dynamically
//
// Graph owns every array indexed by this space (solved flags,
// unsolved-edge counts, XOR recipes) plus the up-edge (n-edge) and
// down-edge (v-edge) lists that make the hypergraph's bidirectional
// reciprocity invariant hold: every down-edge U→L has a matching
// up-edge L→U.
//
// Graph is NOT safe for concurrent use — unlike this lineage's other
// graph type (core.Graph, which guards every mutation with
// sync.RWMutex), this decoder is deliberately single-threaded and
// non-suspending per spec.md §5: there is no blocking I/O and no
// cancellation model, so locking would only add overhead. Callers
// running multiple decodes concurrently should use one Graph per
// goroutine (optionally sharing one pool.Pool if they serialize access
// to it themselves).
package graph

import "github.com/katalvlaran/onlinecode/pool"

// Solved describes one newly-resolved node: Node is solved and Recipe
// names the source-node indices whose XOR equals Node's payload. The
// XOR executor (out of scope for this module) resolves Recipe
// recursively when it names check or aux nodes rather than leaves.
type Solved struct {
	Node   int
	Recipe []int
}

// Graph is the resolver's tripartite hypergraph. Construct with
// NewGraph; feed check blocks with IngestCheckBlock; drain pending
// work with Step or Resolve.
type Graph struct {
	mblocks   int // message node count: [0, mblocks)
	ablocks   int // auxiliary node count: [mblocks, coblocks)
	coblocks  int // mblocks + ablocks
	nodeSpace int // coblocks + checkSpace; hard ceiling for check nodes

	nodes         int // next free node index, starts at coblocks
	unsolvedCount int // number of unsolved message nodes
	done          bool

	// vEdges[u-mblocks] is the down-edge list of upper node u: the set
	// of lower nodes u currently XORs together. nil once u is
	// decommissioned or, for an aux node, once the auxiliary rule has
	// moved the list into xorList[u]. Message nodes have no slot here.
	vEdges [][]int

	// nEdges[l] is the up-edge list of lower node l: every upper node
	// currently referencing l, as a singly-linked chain of pool cells.
	nEdges []*pool.Cell

	// solved[n] is true once node n (message or aux) has a recipe.
	// Indexed over [0, coblocks); check nodes are never entered here
	// since a check node's "solved-ness" is never queried directly —
	// only its edge_count and v-edges matter to the resolver.
	solved []bool

	// edgeCount[u-mblocks] is the number of unsolved down-edges of
	// upper node u — the resolver's trigger metric (spec.md invariant 1).
	edgeCount []int

	// xorList[n] is node n's XOR recipe once solved: the source-node
	// indices whose XOR equals n's payload. Indexed over the full node
	// space so check nodes (which always carry a recipe from ingest)
	// fit alongside message/aux nodes.
	xorList [][]int

	pendingHead, pendingTail *pool.Cell

	pool     *pool.Pool
	ownsPool bool
	stats    Stats
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithPool shares an existing *pool.Pool across multiple Graph
// instances instead of letting each Graph own a private one. The
// caller is responsible for calling p.Retain()/p.ReleaseUser() around
// the Graph's lifetime if they want the reference-counted flush
// semantics from spec.md §9's "ambient pool as process state" note;
// NewGraph does not call Retain on a pool supplied this way.
func WithPool(p *pool.Pool) GraphOption {
	return func(g *Graph) {
		g.pool = p
		g.ownsPool = false
	}
}

func (g *Graph) isMessage(node int) bool { return node >= 0 && node < g.mblocks }
func (g *Graph) isAux(node int) bool     { return node >= g.mblocks && node < g.coblocks }
func (g *Graph) isCheck(node int) bool   { return node >= g.coblocks }
func (g *Graph) isUpper(node int) bool   { return node >= g.mblocks }

// MBlocks returns the configured message-node count.
func (g *Graph) MBlocks() int { return g.mblocks }

// ABlocks returns the configured auxiliary-node count.
func (g *Graph) ABlocks() int { return g.ablocks }

// CoBlocks returns mblocks+ablocks, the first check-node index.
func (g *Graph) CoBlocks() int { return g.coblocks }

// NodeSpace returns the hard ceiling on node indices (coblocks plus
// the fudged check-block capacity computed at construction).
func (g *Graph) NodeSpace() int { return g.nodeSpace }

// UnsolvedCount returns the number of message nodes not yet solved.
func (g *Graph) UnsolvedCount() int { return g.unsolvedCount }

// Done reports whether every message node has been solved.
func (g *Graph) Done() bool { return g.done }

// IsSolved reports whether node (message or aux) currently carries a
// recipe. Check nodes always report false here since solved-ness is
// not tracked for them directly — a check node contributes to the
// graph only through its v-edges and edge_count.
func (g *Graph) IsSolved(node int) bool {
	if node < 0 || node >= g.coblocks {
		return false
	}

	return g.solved[node]
}

// Recipe returns the XOR recipe for a solved node, or nil, false if
// the node has no recipe yet (unsolved aux/message, or an undecided
// check node).
func (g *Graph) Recipe(node int) ([]int, bool) {
	if node < 0 || node >= len(g.xorList) || g.xorList[node] == nil {
		return nil, false
	}

	return g.xorList[node], true
}
