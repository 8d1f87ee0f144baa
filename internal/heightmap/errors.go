package heightmap

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned for sizes outside [1, MaxSize].
	ErrInvalidSize = errors.New("invalid heightmap size")
	// ErrNilSource is returned when no random source is supplied.
	ErrNilSource = errors.New("nil random source")
)

// InsufficientNeighborsError is the panic value raised when a cell is sampled
// with no neighbor in range. It indicates a traversal defect, not bad input.
type InsufficientNeighborsError struct {
	X, Y   int
	Offset int
}

func (e InsufficientNeighborsError) Error() string {
	return fmt.Sprintf("heightmap: no neighbors for cell (%d,%d) at offset %d", e.X, e.Y, e.Offset)
}
