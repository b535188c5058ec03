package rhythm

import "math"

// Distribute — generalized Bjorklund distribution.
//
// Description:
//
//	Distribute places `onsets` ones onto `steps` slots so that the ones
//	are spread as evenly as the Evenness option allows, then rotates the
//	result.  At Evenness=1.0 it reproduces the classic Euclidean rhythm
//	described by Bjorklund (SNS-NOTE-CNTRL-100, 2003) and popularized for
//	music by Toussaint (BRIDGES 2005).
//
// Algorithm Outline:
//  1. reduction = floor((1-Evenness)·(steps-onsets)) — the number of rests
//     withheld from the pairing procedure to implement partial evenness.
//  2. Build two working lists: `onsets` leaf ones and
//     `steps-onsets-reduction` leaf zeros.
//  3. Designate the longer list `larger` (on equal length the zeros play
//     the larger role).  Repeatedly pair each element of the smaller list
//     with the element at the same index of the larger, collecting
//     two-unit groups; the unconsumed tail of the larger list is the
//     unpaired remainder.  When either side is empty, flatten the other
//     depth-first into the result; otherwise recurse with the longer of
//     {paired, unpaired} as the new larger list (tie: paired is larger).
//  4. Append the withheld rests.
//  5. Rotate right by Rotation mod steps.
//
// The tie-breaks in step 3 are load-bearing: they fix which of the many
// equally even necklaces is produced, making output bit-reproducible.
//
// Complexity:
//
//	Time   = O(steps) — every round consumes the smaller list entirely
//	Memory = O(steps)
//
// Errors:
//   - ErrStepsNotPositive   — steps ≤ 0.
//   - ErrOnsetsOutOfRange   — onsets < 0 or onsets > steps.
//   - ErrEvennessOutOfRange — Evenness outside [0.0, 1.0].
//
// All sentinels wrap ErrInvalidArgument.  A nil opts means
// DefaultOptions().  No partial result accompanies an error.
func Distribute(onsets, steps int, opts *Options) (Pattern, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	// Validation order: steps, onsets, evenness. Rotation is unrestricted.
	if steps <= 0 {
		return nil, ErrStepsNotPositive
	}
	if onsets < 0 || onsets > steps {
		return nil, ErrOnsetsOutOfRange
	}
	// Written so NaN fails the range check too.
	if !(o.Evenness >= 0 && o.Evenness <= 1) {
		return nil, ErrEvennessOutOfRange
	}

	// Rests withheld from the pairing procedure; floor semantics are
	// deliberate, they decide how many rests each fractional evenness
	// value holds back.
	reduction := int(math.Floor((1 - o.Evenness) * float64(steps-onsets)))

	ones := make([]unit, onsets)
	for i := range ones {
		ones[i] = unit{bit: 1}
	}
	zeros := make([]unit, steps-onsets-reduction)

	// Equal lengths: zeros take the larger role.
	var larger, smaller []unit
	if len(ones) > len(zeros) {
		larger, smaller = ones, zeros
	} else {
		larger, smaller = zeros, ones
	}

	// Pair elements of the smaller list with same-index elements of the
	// larger until one side runs out, nesting groups as we go.
	var seq Pattern
	for {
		paired := make([]unit, len(smaller))
		for i := range smaller {
			paired[i] = unit{kids: []unit{larger[i], smaller[i]}}
		}
		unpaired := larger[len(smaller):]

		if len(unpaired) == 0 {
			seq = flatten(paired, make(Pattern, 0, steps))
			break
		}
		if len(paired) == 0 {
			seq = flatten(unpaired, make(Pattern, 0, steps))
			break
		}

		// Equal lengths: paired takes the larger role.
		if len(unpaired) > len(paired) {
			larger, smaller = unpaired, paired
		} else {
			larger, smaller = paired, unpaired
		}
	}

	// Reattach the withheld rests, then rotate.
	for i := 0; i < reduction; i++ {
		seq = append(seq, 0)
	}

	return seq.Rotate(o.Rotation), nil
}

// Euclidean returns the classic maximally even pattern with no rotation,
// i.e. Distribute(onsets, steps, nil).
func Euclidean(onsets, steps int) (Pattern, error) {
	return Distribute(onsets, steps, nil)
}

// unit is a node of the ephemeral pairing tree: a leaf bit when kids is
// nil, otherwise an ordered group of units.
type unit struct {
	bit  int
	kids []unit
}

// flatten appends the leaves of units to out in depth-first, left-to-right
// order.
func flatten(units []unit, out Pattern) Pattern {
	for _, u := range units {
		if u.kids == nil {
			out = append(out, u.bit)
			continue
		}
		out = flatten(u.kids, out)
	}

	return out
}
