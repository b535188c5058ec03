package rhythm

import "strings"

// Pattern is an ordered step sequence: 1 marks an onset, 0 a rest.
// Distribute returns a fresh Pattern on every call; the caller owns it.
type Pattern []int

// Onsets returns the number of active steps in the pattern.
func (p Pattern) Onsets() int {
	var n int
	for _, v := range p {
		if v == 1 {
			n++
		}
	}

	return n
}

// Rests returns the number of inactive steps in the pattern.
func (p Pattern) Rests() int {
	return len(p) - p.Onsets()
}

// Rotate returns a copy of p cyclically rotated to the right by r steps:
// the element at index i moves to index (i+r) mod len(p).  Negative r
// rotates left; any magnitude wraps modulo the length.
func (p Pattern) Rotate(r int) Pattern {
	n := len(p)
	out := make(Pattern, n)
	if n == 0 {
		return out
	}
	r = ((r % n) + n) % n
	for i, v := range p {
		out[(i+r)%n] = v
	}

	return out
}

// Clone returns an independent copy of p.
func (p Pattern) Clone() Pattern {
	out := make(Pattern, len(p))
	copy(out, p)

	return out
}

// String renders the pattern in step notation: "x" for an onset, "-" for
// a rest, e.g. "-x--x-x-".
func (p Pattern) String() string {
	var b strings.Builder
	b.Grow(len(p))
	for _, v := range p {
		if v == 1 {
			b.WriteByte('x')
		} else {
			b.WriteByte('-')
		}
	}

	return b.String()
}
