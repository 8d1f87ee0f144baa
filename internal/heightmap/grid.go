// Package heightmap generates fractal terrain heightmaps with the
// Diamond-Square midpoint-displacement algorithm.
package heightmap

import (
	"fmt"
	"math/rand"
)

// MaxSize is the largest accepted size parameter (8193x8193 cells).
const MaxSize = 13

// Source supplies uniform random values in [0,1).
// *math/rand.Rand satisfies it.
type Source interface {
	Float32() float32
}

// NewSource returns a deterministic Source for the given seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Grid is a square heightmap with side 2^size + 1, stored row-major.
type Grid struct {
	size   int
	side   int
	values []float32
}

// Size returns the generation parameter n.
func (g *Grid) Size() int { return g.size }

// Side returns the number of cells along one edge (2^n + 1).
func (g *Grid) Side() int { return g.side }

// At returns the elevation at column x, row y.
func (g *Grid) At(x, y int) float32 { return g.values[g.idx(x, y)] }

// Row returns a copy of row y.
func (g *Grid) Row(y int) []float32 {
	out := make([]float32, g.side)
	copy(out, g.values[y*g.side:(y+1)*g.side])
	return out
}

// Values returns a copy of all cells in row-major order.
func (g *Grid) Values() []float32 {
	out := make([]float32, len(g.values))
	copy(out, g.values)
	return out
}

// Corners returns the corner cells in seeding order:
// (0,0), (0,W-1), (W-1,0), (W-1,W-1).
func (g *Grid) Corners() [4]float32 {
	last := g.side - 1
	return [4]float32{
		g.At(0, 0),
		g.At(0, last),
		g.At(last, 0),
		g.At(last, last),
	}
}

func (g *Grid) idx(x, y int) int { return y*g.side + x }

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.side && y < g.side
}

// SideFor returns the grid side for a size parameter, or an error when the
// size is outside [1, MaxSize].
func SideFor(size int) (int, error) {
	if size < 1 {
		return 0, fmt.Errorf("%w: size must be >= 1, got %d", ErrInvalidSize, size)
	}
	if size > MaxSize {
		return 0, fmt.Errorf("%w: size %d exceeds maximum %d", ErrInvalidSize, size, MaxSize)
	}
	return 1<<size + 1, nil
}

// builder holds a grid under construction together with the assigned set.
// Cells are written exactly once; reads of unassigned cells are defects.
type builder struct {
	grid     *Grid
	assigned []uint64
	rng      Source
}

func newBuilder(size int, rng Source) (*builder, error) {
	side, err := SideFor(size)
	if err != nil {
		return nil, err
	}
	n := side * side
	return &builder{
		grid: &Grid{
			size:   size,
			side:   side,
			values: make([]float32, n),
		},
		assigned: make([]uint64, (n+63)/64),
		rng:      rng,
	}, nil
}

// seedCorners draws the four corners from the source in a fixed order.
func (b *builder) seedCorners() {
	last := b.grid.side - 1
	b.set(0, 0, b.rng.Float32())
	b.set(0, last, b.rng.Float32())
	b.set(last, 0, b.rng.Float32())
	b.set(last, last, b.rng.Float32())
}

func (b *builder) isAssigned(x, y int) bool {
	i := b.grid.idx(x, y)
	return b.assigned[i/64]&(1<<(uint(i)%64)) != 0
}

func (b *builder) set(x, y int, v float32) {
	i := b.grid.idx(x, y)
	bit := uint64(1) << (uint(i) % 64)
	if b.assigned[i/64]&bit != 0 {
		panic(fmt.Sprintf("heightmap: cell (%d,%d) assigned twice", x, y))
	}
	b.assigned[i/64] |= bit
	b.grid.values[i] = v
}

// neighbor returns the value at (x,y) and whether it contributes to an average.
// Out-of-range cells are missing. In-range cells must already be assigned.
func (b *builder) neighbor(x, y int) (float32, bool) {
	if !b.grid.inBounds(x, y) {
		return 0, false
	}
	if !b.isAssigned(x, y) {
		panic(fmt.Sprintf("heightmap: read of unassigned cell (%d,%d)", x, y))
	}
	return b.grid.values[b.grid.idx(x, y)], true
}

// complete reports whether every cell has been assigned.
func (b *builder) complete() bool {
	n := len(b.grid.values)
	for i := 0; i < n/64; i++ {
		if b.assigned[i] != ^uint64(0) {
			return false
		}
	}
	if rem := n % 64; rem != 0 {
		mask := uint64(1)<<uint(rem) - 1
		if b.assigned[n/64]&mask != mask {
			return false
		}
	}
	return true
}
