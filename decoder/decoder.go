package decoder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/onlinecode/codec"
	"github.com/katalvlaran/onlinecode/graph"
	"github.com/katalvlaran/onlinecode/pool"
)

// Option configures a Decoder at construction time.
type Option func(*Decoder)

// WithRand supplies the *rand.Rand used to sample the auxiliary map
// and subsequent check blocks via codec. Defaults to a fresh
// rand.New(rand.NewSource(1)) if not supplied — callers wanting true
// randomness should pass their own seeded-from-entropy source.
func WithRand(rng *rand.Rand) Option {
	return func(d *Decoder) { d.rng = rng }
}

// WithPool shares an existing *pool.Pool with the underlying graph.Graph
// instead of letting Decoder allocate a private one.
func WithPool(p *pool.Pool) Option {
	return func(d *Decoder) { d.pool = p }
}

// Decoder composes codec sampling with a graph.Graph resolver: Feed (or
// FeedN) accepts check blocks and returns whatever they newly solve.
type Decoder struct {
	params codec.Params
	rng    *rand.Rand
	pool   *pool.Pool
	g      *graph.Graph
}

// New builds a Decoder: samples the auxiliary map via codec and
// constructs the underlying graph.Graph from it.
func New(params codec.Params, opts ...Option) (*Decoder, error) {
	d := &Decoder{params: params}
	for _, opt := range opts {
		opt(d)
	}
	if d.rng == nil {
		d.rng = rand.New(rand.NewSource(1))
	}

	aux, err := codec.BuildAuxiliaryMap(params, d.rng)
	if err != nil {
		return nil, fmt.Errorf("decoder.New: %w", err)
	}

	var gopts []graph.GraphOption
	if d.pool != nil {
		gopts = append(gopts, graph.WithPool(d.pool))
	}
	g, err := graph.NewGraph(params.ToGraphParams(), aux, gopts...)
	if err != nil {
		return nil, fmt.Errorf("decoder.New: %w", err)
	}
	d.g = g

	return d, nil
}

// Feed ingests one already-sampled check block (ownership of
// checkBlock transfers to the underlying graph, per graph.IngestCheckBlock)
// and drains the resolver, returning whatever that unlocked.
func (d *Decoder) Feed(checkBlock []int) ([]graph.Solved, error) {
	if _, err := d.g.IngestCheckBlock(checkBlock); err != nil {
		return nil, fmt.Errorf("decoder.Feed: %w", err)
	}
	solved, _, err := d.g.Resolve()
	if err != nil {
		return solved, fmt.Errorf("decoder.Feed: %w", err)
	}

	return solved, nil
}

// FeedN samples n check blocks via codec.NextCheckBlock and feeds each
// in turn, stopping early once decoding is Done. It returns every node
// solved across the batch and whether decoding finished.
func (d *Decoder) FeedN(n int) ([]graph.Solved, bool, error) {
	var all []graph.Solved
	for i := 0; i < n; i++ {
		if d.g.Done() {
			break
		}
		block, err := codec.NextCheckBlock(d.params, d.rng)
		if err != nil {
			return all, d.g.Done(), fmt.Errorf("decoder.FeedN: %w", err)
		}
		solved, err := d.Feed(block)
		if err != nil {
			return all, d.g.Done(), err
		}
		all = append(all, solved...)
	}

	return all, d.g.Done(), nil
}

// Done reports whether every message block has been solved.
func (d *Decoder) Done() bool { return d.g.Done() }

// Stats returns the underlying graph's instrumentation snapshot.
func (d *Decoder) Stats() graph.Stats { return d.g.Stats() }

// Graph exposes the underlying graph.Graph for callers who need direct
// access (e.g. Recipe lookups for an external XOR executor).
func (d *Decoder) Graph() *graph.Graph { return d.g }
