// Package hyperbox implements Neumann boundary handling for Monte-Carlo
// simulation of stochastic processes inside axis-aligned hyperrectangles.
//
// 🚀 What is hyperbox?
//
//	A small, deterministic library that folds a straight-line step of a
//	simulated particle back into its domain by elastic reflection:
//		• Scalar reflector: one segment, one d-dimensional box, iterated
//		  until the endpoint rests inside the domain
//		• Batched reflector: many concurrent trajectories at once, one
//		  lane per column, driven until every lane has settled
//		• Shared geometry: validated, immutable axis-aligned boxes
//
// ✨ Why choose hyperbox?
//
//   - Exact semantics – energy-preserving specular reflection, documented
//     tie-break rules, bit-identical scalar/batched results
//   - Rock-solid guarantees – pure functions, no shared mutable state,
//     safe under arbitrary concurrency
//   - Pure Go – no cgo, no hidden deps
//   - Hardened – every precondition is checked, every loop is bounded
//
// Everything is organized under two subpackages:
//
//	box/     — the Box foundation type: validated bounds, containment
//	neumann/ — Reflect and ReflectBatch, the reflection kernels
//
// Quick ASCII example (one reflection off the upper face):
//
//	min           a         b'  max   b
//	 ├────────────●─────────○────┤┄┄┄┄╳
//	                        └────┘────┘
//	             the overshoot is folded back across max
//
// Start with neumann.Reflect; see each package's doc.go for details.
package hyperbox
