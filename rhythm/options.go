// Package rhythm defines options for the Euclidean distributor.
package rhythm

// Options configures Distribute.
//
// Fields:
//   - Rotation — cyclic right rotation applied to the final pattern.
//     Any sign and magnitude; the effective shift is Rotation mod steps,
//     so negative values rotate left and multiples of steps are identity.
//   - Evenness — how uniformly onsets are spread, in [0.0, 1.0].
//     1.0 yields the maximally even (classic Bjorklund) arrangement;
//     0.0 withholds every rest from the pairing procedure, clustering all
//     onsets contiguously at the front of the cycle (before rotation).
//     Intermediate values withhold floor((1-Evenness)·(steps-onsets))
//     rests and reattach them at the end.
//
// Example:
//
//	opts := rhythm.DefaultOptions()
//	opts.Rotation = 3    // shift the pattern three steps to the right
//	opts.Evenness = 0.5  // half-way between even and clustered
//
//	p, err := rhythm.Distribute(5, 16, &opts)
//	if err != nil {
//	  // handle ErrStepsNotPositive, ErrOnsetsOutOfRange or ErrEvennessOutOfRange
//	}
//	fmt.Println(p)
type Options struct {
	Rotation int
	Evenness float64
}

// DefaultOptions returns the canonical configuration: no rotation and
// maximal evenness, i.e. the classic Euclidean rhythm.
func DefaultOptions() Options {
	return Options{
		Rotation: 0,
		Evenness: 1.0,
	}
}
