// Package calc is the pure formula engine. Every function is a
// deterministic, side-effect-free computation over its arguments: no I/O, no
// state, no panics. Invalid numeric input degrades to 0 or a clamped finite
// value instead of propagating NaN/Inf, so the engine is safe to call
// concurrently and re-run on every input change.
package calc

import "math"

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
