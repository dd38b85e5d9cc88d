// ocdecode is a command-line demonstration of the graph/codec/decoder
// packages: it samples a synthetic auxiliary map and check-block stream
// for a given set of parameters, feeds them into a decoder.Decoder, and
// reports which message blocks solved and how the resolver behaved.
//
// It is a demo harness, not a real transport client — there is no
// network I/O and no actual source data is XORed, only the symbolic
// recipe graph described by spec.md/SPEC_FULL.md §4.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/onlinecode/codec"
	"github.com/katalvlaran/onlinecode/decoder"
)

const clientIdentifier = "ocdecode"

var app = &cli.App{
	Name:  clientIdentifier,
	Usage: "Online Code graph-decoder demo: sample and resolve a check-block stream",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "mblocks", Value: 64, Usage: "message block count"},
		&cli.IntFlag{Name: "ablocks", Value: 32, Usage: "auxiliary block count"},
		&cli.IntFlag{Name: "q", Value: 3, Usage: "auxiliary blocks sampled per message"},
		&cli.Float64Flag{Name: "e", Value: 0.2, Usage: "expected-check-block density constant"},
		&cli.Float64Flag{Name: "fudge", Value: 1.5, Usage: "check-block capacity headroom multiplier"},
		&cli.Int64Flag{Name: "seed", Value: 1, Usage: "PRNG seed for auxiliary-map and check-block sampling"},
		&cli.IntFlag{Name: "max-checks", Value: 0, Usage: "cap on check blocks fed in; 0 uses the fudged CheckSpace"},
	},
	Action: run,
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "ocdecode:", err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	params := codec.Params{
		MBlocks: ctx.Int("mblocks"),
		ABlocks: ctx.Int("ablocks"),
		Q:       ctx.Int("q"),
		E:       ctx.Float64("e"),
		Fudge:   ctx.Float64("fudge"),
	}

	maxChecks := ctx.Int("max-checks")
	if maxChecks <= 0 {
		maxChecks = params.CheckSpace()
	}

	rng := rand.New(rand.NewSource(ctx.Int64("seed")))
	d, err := decoder.New(params, decoder.WithRand(rng))
	if err != nil {
		return fmt.Errorf("building decoder: %w", err)
	}

	fmt.Printf("ocdecode: mblocks=%d ablocks=%d q=%d e=%.3f fudge=%.3f seed=%d check_budget=%d\n",
		params.MBlocks, params.ABlocks, params.Q, params.E, params.Fudge, ctx.Int64("seed"), maxChecks)

	solved, done, err := d.FeedN(maxChecks)
	if err != nil {
		return fmt.Errorf("feeding check blocks: %w", err)
	}

	for _, s := range solved {
		fmt.Printf("solved node %-6d recipe=%v\n", s.Node, s.Recipe)
	}

	fmt.Println()
	fmt.Println(d.Stats().String())
	if done {
		fmt.Printf("decoding complete: all %d message blocks solved\n", params.MBlocks)
	} else {
		fmt.Printf("decoding incomplete: %d/%d message blocks still unsolved after %d check blocks\n",
			d.Graph().UnsolvedCount(), params.MBlocks, maxChecks)
	}

	return nil
}
