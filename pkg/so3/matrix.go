package so3

import (
	"gonum.org/v1/gonum/mat"
)

// TransformMatrix is the dense real matrix that maps a signal on a grid to
// its spectral coefficients. For a grid of nSpatial rotations and bandwidth b
// it has shape (nSpatial, 2*SpectralSize(b)): each complex basis-function
// sample occupies two adjacent columns, real part first, imaginary part
// second. Row i corresponds to grid sample i; column block k corresponds to
// the k-th flattened entry of the conjugated Wigner-D matrices, degrees
// concatenated in increasing order, each flattened row-major.
//
// A TransformMatrix is immutable after construction and safe to share across
// goroutines.
type TransformMatrix struct {
	data      *mat.Dense
	nSpectral int
	device    Device
}

// Dims returns the number of grid samples and spectral coefficients.
func (m *TransformMatrix) Dims() (nSpatial, nSpectral int) {
	r, _ := m.data.Dims()
	return r, m.nSpectral
}

// Coefficient returns the complex basis-function sample for grid row i and
// spectral index k, reassembled from the interleaved columns.
func (m *TransformMatrix) Coefficient(i, k int) complex128 {
	return complex(m.data.At(i, 2*k), m.data.At(i, 2*k+1))
}

// Device returns the compute location this matrix was built for.
func (m *TransformMatrix) Device() Device { return m.device }

// Dense exposes the underlying (nSpatial, 2*nSpectral) matrix for use as a
// multiplication operand. Callers must treat it as read-only.
func (m *TransformMatrix) Dense() *mat.Dense { return m.data }
