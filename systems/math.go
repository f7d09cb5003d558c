package systems

// clampAxis pins v into [lo, hi]. When the range is inverted (viewport
// smaller than the box footprint) the lower bound is checked first.
func clampAxis(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	} else if v > hi {
		return hi
	}
	return v
}

// outside reports whether v lies strictly outside [lo, hi].
func outside(v, lo, hi float32) bool {
	return v < lo || v > hi
}
