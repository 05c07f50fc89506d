// Package compute provides the shared-memory execution backends for the
// pair engine.
//
// The package splits a range of local atoms across workers, hands each
// worker a private full-width buffer, and merges the buffers after the join:
//
//   - CPU: one goroutine per contiguous span, fork-join per call
//   - GPU: declared only; reports itself unavailable and runs on the CPU
//
// # Race Freedom
//
// Workers never write shared memory during a region. Each worker touches
// only its own buffer, and [Reduce] writes the destination serially after
// the join:
//
//	backend := compute.GetBackend()
//	bufs := pool.GetN(backend.Workers())
//	backend.Region(inum, func(w int, s compute.Span) { ... bufs[w] ... })
//	compute.Reduce(f, bufs)
package compute
