// Package testutil provides testing utilities for pinnedqueue.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random generator for operation sequences and a
// slice-backed reference FIFO to compare a queue against.
//
// # Random Operation Sequences
//
//	rng := testutil.NewRNG(seed)
//	ops := rng.Ops(10_000, 0.6) // 60% pushes, bursty
//
// # Differential Testing
//
//	model := testutil.NewModel[int]()
//	for _, op := range ops {
//	    // apply op to both the queue and the model, then compare
//	}
package testutil
