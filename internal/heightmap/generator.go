package heightmap

import (
	"fmt"
	"log/slog"
	"time"
)

// Generator runs the Diamond-Square pipeline and reports progress through
// an optional logger. The zero value is ready to use.
type Generator struct {
	Logger *slog.Logger
}

// Generate seeds the corners, refines depth by depth and normalizes the
// result into [0,1]. Each call owns its grid; rng is only used for its
// duration.
func (g *Generator) Generate(size int, rng Source) (*Grid, error) {
	if rng == nil {
		return nil, ErrNilSource
	}

	b, err := newBuilder(size, rng)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	b.seedCorners()

	for depth := 0; depth < size; depth++ {
		squares := b.square(depth)
		diamonds := b.diamond(depth)
		g.log().Debug("Refined depth",
			"depth", depth,
			"offset", offsetAt(size, depth),
			"square_cells", squares,
			"diamond_cells", diamonds,
		)
	}

	if !b.complete() {
		panic(fmt.Sprintf("heightmap: grid of size %d left unassigned cells", size))
	}

	normalize(b.grid.values)

	g.log().Debug("Heightmap generated",
		"size", size,
		"side", b.grid.side,
		"elapsed", time.Since(start),
	)
	return b.grid, nil
}

func (g *Generator) log() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return slog.Default()
}
