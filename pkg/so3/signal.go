package so3

// Signal is a batch of real-valued samples on a rotation grid. Shape holds
// the full array shape; the trailing axis runs over the grid samples and all
// leading axes are batch dimensions. Data is laid out row-major. Device
// records where the caller keeps the signal; it selects the cache entry the
// transform matrix is served from. The zero Device is cpu:0.
type Signal struct {
	Shape  []int
	Data   []float64
	Device Device
}

// NewSignal wraps data in a Signal after checking that the shape product
// matches the data length. The slices are retained, not copied.
func NewSignal(shape []int, data []float64) (*Signal, error) {
	s := &Signal{Shape: shape, Data: data}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Signal) validate() error {
	if len(s.Shape) == 0 {
		return ErrDimensionMismatch
	}
	n := 1
	for _, d := range s.Shape {
		if d < 0 {
			return ErrDimensionMismatch
		}
		n *= d
	}
	if n != len(s.Data) {
		return ErrDimensionMismatch
	}
	return nil
}

// spatial returns the trailing axis length.
func (s *Signal) spatial() int { return s.Shape[len(s.Shape)-1] }

// batchSize returns the product of the leading axes.
func (s *Signal) batchSize() int {
	n := 1
	for _, d := range s.Shape[:len(s.Shape)-1] {
		n *= d
	}
	return n
}

// Spectral is a batch of complex spectral coefficients in split-real form.
// Shape mirrors the input signal's leading axes followed by
// (NumCoefficients, 2); the final axis holds the real part at index 0 and
// the imaginary part at index 1, matching the column interleaving of
// TransformMatrix.
type Spectral struct {
	Shape []int
	Data  []float64
}

// NumCoefficients returns the number of complex coefficients per signal.
func (s *Spectral) NumCoefficients() int {
	return s.Shape[len(s.Shape)-2]
}

// Coeff returns coefficient k of the signal at flattened batch index batch.
func (s *Spectral) Coeff(batch, k int) complex128 {
	off := (batch*s.NumCoefficients() + k) * 2
	return complex(s.Data[off], s.Data[off+1])
}
