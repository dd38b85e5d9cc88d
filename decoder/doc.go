// Package decoder wires package codec's sampler into package graph's
// resolver: a thin orchestration façade with no invariants of its own,
// the same role this lineage's algorithms package plays atop core —
// Decoder sequences BuildAuxiliaryMap/NextCheckBlock/IngestCheckBlock/
// Resolve calls and nothing more.
package decoder
