// Package so3 computes forward Fourier transforms of real-valued signals
// sampled on finite grids of SO(3) rotations.
//
// A signal is a batch of real values whose trailing axis runs over the grid
// samples. The forward transform projects each signal onto conjugated
// Wigner-D basis functions up to a chosen bandwidth b, producing
// SpectralSize(b) complex coefficients per signal. The projection is a single
// dense matrix multiplication against a transform matrix that is built once
// per (bandwidth, grid, device) combination and then served from a bounded
// LRU cache.
//
// Wigner-D evaluation is pluggable through the Evaluator interface; the
// package-level Forward function uses the evaluator from so3ft/pkg/wigner.
// No quadrature weighting is applied: callers that need grid-spacing
// weighting (for example a sin(beta) factor) fold it into the signal or
// filter coefficients themselves.
package so3
