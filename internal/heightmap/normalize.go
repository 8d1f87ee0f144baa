package heightmap

// normalize rescales values so the minimum becomes 0 and the maximum 1.
// An all-equal grid becomes all zeros.
func normalize(values []float32) {
	if len(values) == 0 {
		return
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	span := hi - lo
	if span == 0 {
		for i := range values {
			values[i] = 0
		}
		return
	}

	for i, v := range values {
		switch v {
		case lo:
			values[i] = 0
		case hi:
			values[i] = 1
		default:
			values[i] = clamp01((v - lo) / span)
		}
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
