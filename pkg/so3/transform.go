package so3

import (
	"sync"

	"gonum.org/v1/gonum/mat"

	"so3ft/pkg/wigner"
)

// Transform applies the forward SO(3) Fourier transform, owning the matrix
// builder and its cache. Transforms are safe for concurrent use.
type Transform struct {
	builder *MatrixBuilder
}

// NewTransform returns a transform backed by eval. A cacheCapacity below 1
// selects DefaultCacheCapacity.
func NewTransform(eval Evaluator, cacheCapacity int) *Transform {
	return &Transform{builder: NewMatrixBuilder(eval, cacheCapacity)}
}

// Forward computes the spectral coefficients of x up to the given bandwidth.
// The trailing axis of x must match the grid length; the result keeps the
// leading batch axes and replaces the trailing axis with
// (SpectralSize(bandwidth), 2), real part at index 0 and imaginary part at
// index 1.
//
// The operation is purely functional given its arguments; only cache warm-up
// latency varies between calls. No quadrature weighting is applied.
func (t *Transform) Forward(x *Signal, bandwidth int, grid Grid) (*Spectral, error) {
	if err := x.validate(); err != nil {
		return nil, err
	}
	if x.spatial() != len(grid) {
		return nil, ErrDimensionMismatch
	}

	f, err := t.builder.Build(bandwidth, grid, x.Device)
	if err != nil {
		return nil, err
	}
	_, cols := f.Dense().Dims()
	if cols%2 != 0 {
		return nil, ErrOddColumnCount
	}
	nSpectral := cols / 2

	outShape := make([]int, 0, len(x.Shape)+1)
	outShape = append(outShape, x.Shape[:len(x.Shape)-1]...)
	outShape = append(outShape, nSpectral, 2)

	n := x.batchSize()
	if n == 0 {
		return &Spectral{Shape: outShape, Data: []float64{}}, nil
	}

	// View x as an (N, nSpatial) matrix without copying, multiply once, and
	// reinterpret the contiguous result as (..., nSpectral, 2).
	xm := mat.NewDense(n, x.spatial(), x.Data)
	var out mat.Dense
	out.Mul(xm, f.Dense())
	return &Spectral{Shape: outShape, Data: out.RawMatrix().Data}, nil
}

// Matrix returns the cached transform matrix for the given parameters,
// building it if needed.
func (t *Transform) Matrix(bandwidth int, grid Grid, device Device) (*TransformMatrix, error) {
	return t.builder.Build(bandwidth, grid, device)
}

// CacheLen returns the number of cached transform matrices.
func (t *Transform) CacheLen() int { return t.builder.CacheLen() }

// ClearCache drops every cached transform matrix.
func (t *Transform) ClearCache() { t.builder.ClearCache() }

var (
	defaultOnce      sync.Once
	defaultTransform *Transform
)

// Default returns the process-wide transform, created on first use with the
// wigner evaluator and DefaultCacheCapacity.
func Default() *Transform {
	defaultOnce.Do(func() {
		defaultTransform = NewTransform(wigner.New(), DefaultCacheCapacity)
	})
	return defaultTransform
}

// Forward applies the process-wide default transform. See Transform.Forward.
func Forward(x *Signal, bandwidth int, grid Grid) (*Spectral, error) {
	return Default().Forward(x, bandwidth, grid)
}
