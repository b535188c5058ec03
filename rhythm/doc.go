// Package rhythm computes Euclidean rhythms: binary step sequences that
// distribute a given number of onsets as evenly as possible across a
// cyclic sequence of steps, using a generalized Bjorklund algorithm.
//
// 🚀 What is a Euclidean rhythm?
//
//	Divide `steps` slots among `onsets` hits so the hits land as evenly
//	as the arithmetic allows.  The resulting necklaces reproduce a
//	striking number of traditional rhythms:
//	  • E(3,8)  — the Cuban tresillo family
//	  • E(5,8)  — the cinquillo family
//	  • E(7,16) — Brazilian samba necklaces
//	  • E(5,13) — a Macedonian aksak meter
//
// ✨ Key features:
//   - maximal evenness: the classic Bjorklund pairing procedure
//   - a continuous Evenness dial in [0,1]: 1.0 is fully even, 0.0 packs
//     every onset at the front of the cycle
//   - integer Rotation of any sign and magnitude (wraps modulo steps)
//   - fixed tie-breaks, so every output is bit-for-bit reproducible
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/euclid/rhythm"
//
//	// classic maximally even pattern
//	p, err := rhythm.Euclidean(5, 8)
//
//	// or with both dials
//	opts := rhythm.DefaultOptions()
//	opts.Rotation = 2
//	opts.Evenness = 0.7
//	p, err = rhythm.Distribute(5, 8, &opts)
//
// Performance:
//
//   - Time:   O(steps) — each pairing round shrinks the working lists
//   - Memory: O(steps)
//
// Every call is a pure function over its arguments: no shared state, no
// I/O, safe to invoke concurrently without coordination.
//
// See example_test.go for runnable scenarios.
package rhythm
