// Package codec supplies a concrete, seeded reference implementation of
// the random-sampling collaborator that package graph treats as an
// external input: the auxiliary mapping (which auxiliary blocks each
// message block belongs to) and the check-block sampler (which lower
// nodes a transmitted check block XORs together).
//
// graph.NewGraph and graph.IngestCheckBlock only ever see the index
// sets this package produces — payload bytes never appear here, in
// keeping with spec.md's scope boundary ("the core produces symbolic
// XOR recipes only").
//
// Sampling follows the same seeded-*rand.Rand discipline as this
// lineage's builder package (WithSeed/WithRand): never touch the
// global math/rand source, so a fixed seed reproduces an identical
// auxiliary map and check-block stream.
package codec
