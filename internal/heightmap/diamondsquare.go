package heightmap

var (
	squareDeltas  = [4][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	diamondDeltas = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// Generate builds a normalized heightmap of side 2^size + 1 using rng for
// every random draw. The same seed always yields the same grid.
func Generate(size int, rng Source) (*Grid, error) {
	return (&Generator{}).Generate(size, rng)
}

// GenerateSeeded is Generate with a fresh math/rand source for seed.
func GenerateSeeded(size int, seed int64) (*Grid, error) {
	return Generate(size, NewSource(seed))
}

// offsetAt returns the stride 2^(n-depth-1) for a refinement depth.
func offsetAt(size, depth int) int {
	return 1 << (size - depth - 1)
}

// square fills the center of every square whose corners are known.
// Centers sit at odd multiples of offset on both axes.
func (b *builder) square(depth int) int {
	offset := offsetAt(b.grid.size, depth)
	side := b.grid.side
	written := 0
	for y := offset; y < side; y += 2 * offset {
		for x := offset; x < side; x += 2 * offset {
			b.sample(x, y, offset, depth, &squareDeltas)
			written++
		}
	}
	return written
}

// diamond fills edge midpoints from the surrounding corners and centers.
// Rows at even multiples of offset start at x=offset, odd ones at x=0.
func (b *builder) diamond(depth int) int {
	offset := offsetAt(b.grid.size, depth)
	side := b.grid.side
	written := 0
	for y := 0; y < side; y += offset {
		start := 0
		if (y/offset)%2 == 0 {
			start = offset
		}
		for x := start; x < side; x += 2 * offset {
			b.sample(x, y, offset, depth+1, &diamondDeltas)
			written++
		}
	}
	return written
}
