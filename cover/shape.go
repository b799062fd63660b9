package cover

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidShape is returned when a cover dimension is less than 1.
	ErrInvalidShape = errors.New("invalid cover shape")
	// ErrIndexOutOfRange is returned when a cell address lies outside the cover.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// A Shape is the set of dimensions of a cover: how many cubes it holds,
// and how many input and output cells each cube has.
// The zero Shape is not valid; use NewShape.
type Shape struct {
	nbCubes   int
	nbInputs  int
	nbOutputs int
}

// NewShape returns the shape of a cover with the given dimensions.
// All of them must be at least 1.
func NewShape(nbCubes, nbInputs, nbOutputs int) (Shape, error) {
	if nbCubes < 1 {
		return Shape{}, fmt.Errorf("%w: expected at least 1 cube, got %d", ErrInvalidShape, nbCubes)
	}
	if nbInputs < 1 {
		return Shape{}, fmt.Errorf("%w: expected at least 1 input, got %d", ErrInvalidShape, nbInputs)
	}
	if nbOutputs < 1 {
		return Shape{}, fmt.Errorf("%w: expected at least 1 output, got %d", ErrInvalidShape, nbOutputs)
	}
	return Shape{nbCubes: nbCubes, nbInputs: nbInputs, nbOutputs: nbOutputs}, nil
}

// NbCubes returns the number of cubes.
func (s Shape) NbCubes() int { return s.nbCubes }

// NbInputs returns the number of input cells in each cube.
func (s Shape) NbInputs() int { return s.nbInputs }

// NbOutputs returns the number of output cells in each cube.
func (s Shape) NbOutputs() int { return s.nbOutputs }

// RowLen is the number of cells in a single cube.
func (s Shape) RowLen() int { return s.nbInputs + s.nbOutputs }

// Len is the total number of cells in the table.
func (s Shape) Len() int { return s.RowLen() * s.nbCubes }

// InputIndex returns the offset in the row-major table of the given input cell.
func (s Shape) InputIndex(cube, position int) (int, error) {
	if cube < 0 || cube >= s.nbCubes {
		return 0, fmt.Errorf("%w: cube %d not in [0, %d)", ErrIndexOutOfRange, cube, s.nbCubes)
	}
	if position < 0 || position >= s.nbInputs {
		return 0, fmt.Errorf("%w: input %d not in [0, %d)", ErrIndexOutOfRange, position, s.nbInputs)
	}
	return s.RowLen()*cube + position, nil
}

// OutputIndex returns the offset in the row-major table of the given output cell.
func (s Shape) OutputIndex(cube, position int) (int, error) {
	if cube < 0 || cube >= s.nbCubes {
		return 0, fmt.Errorf("%w: cube %d not in [0, %d)", ErrIndexOutOfRange, cube, s.nbCubes)
	}
	if position < 0 || position >= s.nbOutputs {
		return 0, fmt.Errorf("%w: output %d not in [0, %d)", ErrIndexOutOfRange, position, s.nbOutputs)
	}
	return s.RowLen()*cube + s.nbInputs + position, nil
}

func (s Shape) String() string {
	return fmt.Sprintf("%d cubes, %d inputs, %d outputs", s.nbCubes, s.nbInputs, s.nbOutputs)
}
