package so3

import "errors"

var (
	// ErrInvalidBandwidth indicates a bandwidth that is not a positive integer.
	ErrInvalidBandwidth = errors.New("so3: bandwidth must be a positive integer")
	// ErrInvalidGrid indicates an empty grid or a rotation with non-finite angles.
	ErrInvalidGrid = errors.New("so3: grid must be non-empty with finite angles")
	// ErrDimensionMismatch indicates a signal whose shape disagrees with its
	// data length or whose trailing axis does not match the grid size.
	ErrDimensionMismatch = errors.New("so3: signal dimensions do not match grid")
	// ErrOddColumnCount indicates a transform matrix whose column count is not
	// even, which breaks the interleaved real/imaginary layout.
	ErrOddColumnCount = errors.New("so3: transform matrix has odd column count")
)
