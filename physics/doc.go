// Package physics implements the particle core: point-mass nodes, distance
// links, force accumulation, time integration, Gauss-Seidel relaxation and
// link pruning (breakage and cutting).
//
// Links address nodes by slice index. The solver mutates two nodes per link
// through the shared node slice, so a sweep is inherently sequential: two links
// sharing an endpoint read and write the same position. A parallel sweep would
// need links partitioned into endpoint-disjoint batches (graph colouring) or
// serialized offset accumulation. Everything here runs on one goroutine.
package physics
