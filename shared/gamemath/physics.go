package gamemath

// Clamp limits v to [lo, hi]. The upper bound wins when lo > hi.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}

