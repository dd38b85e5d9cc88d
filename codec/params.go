package codec

import (
	"math"

	"github.com/katalvlaran/onlinecode/graph"
)

// Params bundles the scalars that describe one Online Code session:
// block counts, the auxiliary degree Q, the expected-check-block
// density constant E, and the Fudge headroom multiplier. It mirrors
// graph.Params (§6 "Inputs from codec") but lives in codec since it
// also governs sampling policy (degree distribution cap) that graph
// itself has no opinion about.
type Params struct {
	MBlocks int
	ABlocks int
	Q       int
	E       float64
	Fudge   float64
}

// ToGraphParams projects the sampling-relevant fields onto graph.Params.
func (p Params) ToGraphParams() graph.Params {
	return graph.Params{
		MBlocks: p.MBlocks,
		ABlocks: p.ABlocks,
		E:       p.E,
		Q:       p.Q,
		Fudge:   p.Fudge,
	}
}

// validate checks the sampling-specific preconditions codec needs
// beyond what graph.NewGraph itself validates (Q must admit Q distinct
// auxiliary picks out of ABlocks options).
func (p Params) validate() error {
	if p.MBlocks < 1 || p.ABlocks < 1 {
		return ErrTooFewBlocks
	}
	if p.Q < 1 || p.Q > p.ABlocks {
		return ErrInvalidDegree
	}

	return nil
}

// coblocks returns MBlocks+ABlocks, the first check-node index — the
// same quantity graph.Graph.CoBlocks reports once constructed.
func (p Params) coblocks() int {
	return p.MBlocks + p.ABlocks
}

// CheckSpace returns ceil(Fudge * (1 + Q*E) * MBlocks), matching
// graph.Params.CheckSpace — kept here too so callers can size their
// own check-block loop without constructing a graph.Params first.
func (p Params) CheckSpace() int {
	return ceilf(p.Fudge * (1 + float64(p.Q)*p.E) * float64(p.MBlocks))
}

func ceilf(x float64) int {
	return int(math.Ceil(x))
}
