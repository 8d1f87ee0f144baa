package heightmap

import "math"

// displace averages the present neighbors and adds a random offset in
// [-0.5, 0.5) scaled by 1/2^magnitude. The source is drawn exactly once.
func displace(rng Source, neighbors []float32, magnitude int) (float32, bool) {
	if len(neighbors) == 0 {
		return 0, false
	}
	var sum float32
	for _, v := range neighbors {
		sum += v
	}
	avg := sum / float32(len(neighbors))
	scale := float32(math.Ldexp(1, -magnitude))
	return avg + (rng.Float32()-0.5)*scale, true
}

// sample gathers the in-range neighbors of (x,y) at the given deltas and
// assigns the displaced average.
func (b *builder) sample(x, y, offset, magnitude int, deltas *[4][2]int) {
	var buf [4]float32
	present := buf[:0]
	for _, d := range deltas {
		if v, ok := b.neighbor(x+d[0]*offset, y+d[1]*offset); ok {
			present = append(present, v)
		}
	}
	v, ok := displace(b.rng, present, magnitude)
	if !ok {
		panic(InsufficientNeighborsError{X: x, Y: y, Offset: offset})
	}
	b.set(x, y, v)
}
