package grid

import "errors"

var (
	// ErrInvalidBounds indicates an inverted, out-of-range or non-finite
	// bounding box, or a non-positive step.
	ErrInvalidBounds = errors.New("grid: invalid bounds")
	// ErrInvalidCoordinate indicates a non-finite or out-of-range lat/lon.
	ErrInvalidCoordinate = errors.New("grid: invalid coordinate")
	// ErrUnknownNode indicates an edge pointing at a node the graph does not hold.
	ErrUnknownNode = errors.New("grid: edge references unknown node")
	// ErrDuplicateNode indicates the same coordinate listed twice.
	ErrDuplicateNode = errors.New("grid: duplicate node")
	// ErrInvalidDistance indicates a negative or non-finite edge distance.
	ErrInvalidDistance = errors.New("grid: invalid edge distance")
)
