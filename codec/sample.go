// sample.go — reference sampling policy for the auxiliary map and
// check-block subsets. Grounded on builder's seeded-shuffle stochastic
// constructors (impl_random_regular.go's stub shuffling, rngFrom's
// "caller-supplied rng wins" rule from sequence_primitives.go).

package codec

import (
	"fmt"
	"math/rand"
)

// minCheckDegree is the smallest number of lower nodes a sampled check
// block may XOR together; a check block covering nothing would carry
// no information.
const minCheckDegree = 1

// BuildAuxiliaryMap deterministically samples, for every message block,
// Q distinct auxiliary-node indices in [MBlocks, MBlocks+ABlocks),
// returned flattened as auxiliary[msg*Q+j] (the layout graph.NewGraph
// expects). rng must be non-nil; callers wanting reproducible output
// should seed it themselves (rand.New(rand.NewSource(seed))), matching
// builder's WithSeed/WithRand contract.
func BuildAuxiliaryMap(p Params, rng *rand.Rand) ([]int, error) {
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("BuildAuxiliaryMap: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("BuildAuxiliaryMap: %w", ErrNeedRandSource)
	}

	out := make([]int, 0, p.MBlocks*p.Q)
	pool := make([]int, p.ABlocks)
	for msg := 0; msg < p.MBlocks; msg++ {
		for i := range pool {
			pool[i] = p.MBlocks + i
		}
		// Partial Fisher-Yates: shuffle only the first Q positions into
		// place, the same in-place-shuffle idiom impl_random_regular.go
		// uses for stub matching, applied here to pick Q distinct aux
		// indices without a second pass or an allocation per message.
		for i := 0; i < p.Q; i++ {
			j := i + rng.Intn(p.ABlocks-i)
			pool[i], pool[j] = pool[j], pool[i]
		}
		out = append(out, pool[:p.Q]...)
	}

	return out, nil
}

// NextCheckBlock samples one outgoing check block: a pseudo-random
// subset of [0, MBlocks+ABlocks) (message and auxiliary nodes), sized
// by a capped-geometric degree distribution. This is a reference
// policy documented as a stand-in for the Ideal Soliton-style
// distributions used in Online Code literature, not a protocol
// requirement — any sizing/sampling policy producing valid index sets
// is a legal substitute (spec.md treats the sampler as an external
// collaborator).
func NextCheckBlock(p Params, rng *rand.Rand) ([]int, error) {
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("NextCheckBlock: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("NextCheckBlock: %w", ErrNeedRandSource)
	}

	n := p.coblocks()
	degree := cappedGeometricDegree(rng, n)

	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	rng.Shuffle(n, func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	out := make([]int, degree)
	copy(out, pool[:degree])

	return out, nil
}

// cappedGeometricDegree draws a degree in [minCheckDegree, n] from a
// geometric-ish distribution favoring small degrees (most check blocks
// should touch a handful of lower nodes, not the whole graph), capped
// at n so it never exceeds the number of sampleable lower nodes.
func cappedGeometricDegree(rng *rand.Rand, n int) int {
	d := minCheckDegree
	for d < n && rng.Float64() < 0.65 {
		d++
	}

	return d
}
