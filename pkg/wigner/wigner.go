// Package wigner evaluates Wigner-D matrices, the irreducible representation
// matrices of the rotation group SO(3).
//
// Conventions are fixed and match the "quantum" normalization with centered
// index ordering and the Condon-Shortley phase: for a ZYZ Euler rotation
// (alpha, beta, gamma) and degree l, the matrix entry at row r, column c is
//
//	D^l_{m'm}(alpha, beta, gamma) = exp(-i m' alpha) d^l_{m'm}(beta) exp(-i m gamma)
//
// with m' = r - l and m = c - l, where d^l is the real Wigner little-d matrix.
// At the identity rotation every D^l is the (2l+1)x(2l+1) identity matrix, and
// each D^l is unitary for any rotation.
package wigner

import (
	"errors"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNegativeDegree indicates a requested degree l < 0.
	ErrNegativeDegree = errors.New("wigner: degree must be non-negative")
	// ErrDegreeTooLarge indicates a degree beyond the supported range.
	ErrDegreeTooLarge = errors.New("wigner: degree exceeds supported maximum")
)

// MaxDegree is the largest degree the evaluator supports. Beyond this the
// term-by-term cancellation in the little-d sum loses too much precision in
// float64 arithmetic.
const MaxDegree = 128

// Evaluator computes Wigner-D matrices under the package's fixed conventions.
// The zero value is ready to use; New is provided for symmetry with the rest
// of the module.
type Evaluator struct{}

// New returns a Wigner-D evaluator.
func New() *Evaluator { return &Evaluator{} }

// WignerD returns the complex (2l+1)x(2l+1) Wigner-D matrix for degree l at
// the ZYZ Euler angles (alpha, beta, gamma), in centered ordering.
func (e *Evaluator) WignerD(l int, alpha, beta, gamma float64) (*mat.CDense, error) {
	if l < 0 {
		return nil, ErrNegativeDegree
	}
	if l > MaxDegree {
		return nil, ErrDegreeTooLarge
	}

	n := 2*l + 1
	d := littleD(l, beta)
	out := mat.NewCDense(n, n, nil)
	for r := 0; r < n; r++ {
		mp := r - l
		rowPhase := cmplx.Exp(complex(0, -float64(mp)*alpha))
		for c := 0; c < n; c++ {
			m := c - l
			colPhase := cmplx.Exp(complex(0, -float64(m)*gamma))
			out.Set(r, c, rowPhase*complex(d[r*n+c], 0)*colPhase)
		}
	}
	return out, nil
}

// littleD computes the real Wigner little-d matrix d^l(beta) in centered
// ordering, flattened row-major. It uses the explicit sum over s:
//
//	d^l_{m'm} = sqrt((l+m')!(l-m')!(l+m)!(l-m)!) *
//	            sum_s (-1)^(m'-m+s) cos(b/2)^(2l-2s+m-m') sin(b/2)^(m'-m+2s) /
//	                  ((l+m-s)! s! (m'-m+s)! (l-m'-s)!)
//
// with log-factorials to keep intermediate magnitudes in range.
func littleD(l int, beta float64) []float64 {
	n := 2*l + 1
	d := make([]float64, n*n)
	cosHalf := math.Cos(beta / 2)
	sinHalf := math.Sin(beta / 2)

	for r := 0; r < n; r++ {
		mp := r - l
		for c := 0; c < n; c++ {
			m := c - l

			logPre := 0.5 * (logFactorial(l+mp) + logFactorial(l-mp) +
				logFactorial(l+m) + logFactorial(l-m))

			sMin := 0
			if m-mp > 0 {
				sMin = m - mp
			}
			sMax := l + m
			if l-mp < sMax {
				sMax = l - mp
			}

			sum := 0.0
			for s := sMin; s <= sMax; s++ {
				logDenom := logFactorial(l+m-s) + logFactorial(s) +
					logFactorial(mp-m+s) + logFactorial(l-mp-s)
				term := math.Exp(logPre-logDenom) *
					math.Pow(cosHalf, float64(2*l-2*s+m-mp)) *
					math.Pow(sinHalf, float64(mp-m+2*s))
				if (mp-m+s)%2 != 0 {
					term = -term
				}
				sum += term
			}
			d[r*n+c] = sum
		}
	}
	return d
}

func logFactorial(n int) float64 {
	v, _ := math.Lgamma(float64(n) + 1)
	return v
}
