package vmath

// Clamp01 limits t to [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// InRange reports whether v lies in the closed interval [lo, hi]
func InRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}
