package so3

import (
	"encoding/binary"
	"math"
)

// Rotation is a single SO(3) rotation given as ZYZ Euler angles in radians.
type Rotation struct {
	Alpha float64
	Beta  float64
	Gamma float64
}

// Grid is an ordered sequence of rotation samples. The order is significant:
// it fixes the row ordering of the transform matrix and must match the
// spatial ordering of input signals. Grids are treated as immutable values;
// two grids with identical rotations in identical order share cache entries.
type Grid []Rotation

// Validate reports ErrInvalidGrid if the grid is empty or any angle is
// NaN or infinite.
func (g Grid) Validate() error {
	if len(g) == 0 {
		return ErrInvalidGrid
	}
	for _, r := range g {
		for _, a := range [3]float64{r.Alpha, r.Beta, r.Gamma} {
			if math.IsNaN(a) || math.IsInf(a, 0) {
				return ErrInvalidGrid
			}
		}
	}
	return nil
}

// fingerprint packs the exact float64 bits of every angle, in order, into a
// string usable as a cache-key component. Full-value identity: any change to
// any angle, or any reordering, yields a different fingerprint.
func (g Grid) fingerprint() string {
	buf := make([]byte, 0, len(g)*24)
	var b [8]byte
	for _, r := range g {
		for _, a := range [3]float64{r.Alpha, r.Beta, r.Gamma} {
			binary.LittleEndian.PutUint64(b[:], math.Float64bits(a))
			buf = append(buf, b[:]...)
		}
	}
	return string(buf)
}

// SpectralSize returns the number of spectral coefficients of a bandwidth-b
// transform, the sum of (2l+1)^2 over degrees l = 0..b-1. It returns 0 for
// non-positive bandwidths.
func SpectralSize(b int) int {
	if b < 1 {
		return 0
	}
	// Closed form of sum_{l=0}^{b-1} (2l+1)^2.
	return b * (2*b - 1) * (2*b + 1) / 3
}

// NearIdentityGrid returns a grid of rotations clustered around the identity,
// the local-support sampling the forward transform is intended for. Beta takes
// nBeta values maxBeta*(k+1)/nBeta, alpha takes nAlpha values uniform on
// [0, 2pi), and gamma takes nGamma values uniform on [-maxGamma, maxGamma).
// Rotations are ordered beta-major, then alpha, then gamma.
func NearIdentityGrid(maxBeta, maxGamma float64, nAlpha, nBeta, nGamma int) Grid {
	if nAlpha < 1 || nBeta < 1 || nGamma < 1 {
		return nil
	}
	g := make(Grid, 0, nAlpha*nBeta*nGamma)
	for kb := 0; kb < nBeta; kb++ {
		beta := maxBeta * float64(kb+1) / float64(nBeta)
		for ka := 0; ka < nAlpha; ka++ {
			alpha := 2 * math.Pi * float64(ka) / float64(nAlpha)
			for kg := 0; kg < nGamma; kg++ {
				gamma := -maxGamma + 2*maxGamma*float64(kg)/float64(nGamma)
				g = append(g, Rotation{Alpha: alpha, Beta: beta, Gamma: gamma})
			}
		}
	}
	return g
}

// EquiangularGrid returns a grid covering the full rotation group: alpha and
// gamma uniform on [0, 2pi), beta at the midpoints pi*(k+1/2)/nBeta. Ordered
// beta-major, then alpha, then gamma.
func EquiangularGrid(nAlpha, nBeta, nGamma int) Grid {
	if nAlpha < 1 || nBeta < 1 || nGamma < 1 {
		return nil
	}
	g := make(Grid, 0, nAlpha*nBeta*nGamma)
	for kb := 0; kb < nBeta; kb++ {
		beta := math.Pi * (float64(kb) + 0.5) / float64(nBeta)
		for ka := 0; ka < nAlpha; ka++ {
			alpha := 2 * math.Pi * float64(ka) / float64(nAlpha)
			for kg := 0; kg < nGamma; kg++ {
				gamma := 2 * math.Pi * float64(kg) / float64(nGamma)
				g = append(g, Rotation{Alpha: alpha, Beta: beta, Gamma: gamma})
			}
		}
	}
	return g
}
