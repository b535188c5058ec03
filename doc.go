// Package euclid generates Euclidean rhythms — binary step patterns that
// spread a number of onsets as evenly as possible over a cyclic sequence,
// via a generalization of Bjorklund's algorithm.
//
// 🚀 What is euclid?
//
//	A small, deterministic, pure-Go library for rhythmic sequencing:
//		• Classic Euclidean/Bjorklund patterns: E(3,8), E(5,8), E(7,16)…
//		• A continuous evenness dial from maximally even to fully clustered
//		• Cyclic rotation with uniform modular wrap-around
//		• A Pattern type with counting, rotation and step-notation helpers
//
// ✨ Why choose euclid?
//
//   - Bit-exact — fixed tie-breaks make every pattern reproducible
//   - Pure functions – no shared state, safe from any number of goroutines
//   - Pure Go – no cgo, no hidden deps
//   - Linear time – worst-case work is O(steps), bounded and small
//
// Everything lives in one subpackage:
//
//	rhythm/ — the distributor (Distribute, Euclidean) and the Pattern type
//
// Quick ASCII example:
//
//	E(3,8) = -x--x-x-
//
//	three onsets spread over eight steps, the tresillo family.
//
// Dive into rhythm/doc.go and the runnable examples for the full tour.
//
//	go get github.com/katalvlaran/euclid/rhythm
package euclid
