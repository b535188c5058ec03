package rhythm_test

import (
	"testing"

	"github.com/katalvlaran/euclid/rhythm"
)

// benchmarkDistribute runs Distribute with the given shape and options.
// It resets the timer before entering the loop and fails on unexpected errors.
func benchmarkDistribute(b *testing.B, onsets, steps int, opts rhythm.Options) {
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := rhythm.Distribute(onsets, steps, &opts); err != nil {
			b.Fatalf("Distribute failed: %v", err) // report and stop on error
		}
	}
}

// BenchmarkDistribute_Small benchmarks a 16-step drum-machine pattern.
func BenchmarkDistribute_Small(b *testing.B) {
	benchmarkDistribute(b, 7, 16, rhythm.DefaultOptions())
}

// BenchmarkDistribute_Medium benchmarks a 256-step pattern.
func BenchmarkDistribute_Medium(b *testing.B) {
	benchmarkDistribute(b, 97, 256, rhythm.DefaultOptions())
}

// BenchmarkDistribute_Large benchmarks a 4096-step pattern.
func BenchmarkDistribute_Large(b *testing.B) {
	benchmarkDistribute(b, 1571, 4096, rhythm.DefaultOptions())
}

// BenchmarkDistribute_HalfEvenness benchmarks the dial mid-way, where the
// reduction withholds part of the rests before pairing.
func BenchmarkDistribute_HalfEvenness(b *testing.B) {
	opts := rhythm.DefaultOptions()
	opts.Evenness = 0.5
	benchmarkDistribute(b, 97, 256, opts)
}

// BenchmarkDistribute_Rotated benchmarks the extra rotation pass.
func BenchmarkDistribute_Rotated(b *testing.B) {
	opts := rhythm.DefaultOptions()
	opts.Rotation = 113
	benchmarkDistribute(b, 97, 256, opts)
}

// BenchmarkPattern_Rotate benchmarks standalone rotation of a 4096-step
// pattern.
func BenchmarkPattern_Rotate(b *testing.B) {
	p, err := rhythm.Euclidean(1571, 4096)
	if err != nil {
		b.Fatalf("Euclidean failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Rotate(i)
	}
}
