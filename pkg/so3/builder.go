package so3

import (
	"fmt"
	"math/cmplx"
	"sync"

	"gonum.org/v1/gonum/mat"

	"so3ft/internal/lru"
)

// Evaluator supplies Wigner-D matrices. Implementations must use the complex
// field with quantum normalization, centered ordering of the 2l+1 magnetic
// indices, and the Condon-Shortley phase, and return a (2l+1)x(2l+1) matrix
// for degree l. so3ft/pkg/wigner provides the default implementation.
type Evaluator interface {
	WignerD(l int, alpha, beta, gamma float64) (*mat.CDense, error)
}

// DefaultCacheCapacity is the number of distinct (bandwidth, grid, device)
// transform matrices a builder retains before evicting the least recently
// used one.
const DefaultCacheCapacity = 32

type buildKey struct {
	bandwidth int
	device    Device
	grid      string // packed angle bits, see Grid.fingerprint
}

// buildEntry is published to the cache before construction starts so that
// concurrent callers for the same key block on ready instead of duplicating
// the build.
type buildEntry struct {
	ready  chan struct{}
	matrix *TransformMatrix
	err    error
}

// MatrixBuilder constructs transform matrices and memoizes them in a bounded
// LRU cache keyed by (bandwidth, grid value, device). It is safe for
// concurrent use; at most one construction per key is in flight at a time.
type MatrixBuilder struct {
	eval Evaluator

	mu    sync.Mutex
	cache *lru.Cache[buildKey, *buildEntry]
}

// NewMatrixBuilder returns a builder using eval for basis-function samples.
// A cacheCapacity below 1 selects DefaultCacheCapacity.
func NewMatrixBuilder(eval Evaluator, cacheCapacity int) *MatrixBuilder {
	if eval == nil {
		panic("so3: NewMatrixBuilder called with nil evaluator")
	}
	if cacheCapacity < 1 {
		cacheCapacity = DefaultCacheCapacity
	}
	return &MatrixBuilder{
		eval:  eval,
		cache: lru.New[buildKey, *buildEntry](cacheCapacity),
	}
}

// Build returns the transform matrix for the given bandwidth, grid and
// device, constructing it on the first request and serving the identical
// cached value afterwards. Evaluator failures are returned unchanged and are
// not cached, so a later call retries. Eviction under capacity pressure never
// invalidates a matrix already handed out.
func (b *MatrixBuilder) Build(bandwidth int, grid Grid, device Device) (*TransformMatrix, error) {
	if bandwidth < 1 {
		return nil, ErrInvalidBandwidth
	}
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	key := buildKey{bandwidth: bandwidth, device: device, grid: grid.fingerprint()}

	b.mu.Lock()
	if e, ok := b.cache.Get(key); ok {
		b.mu.Unlock()
		<-e.ready
		return e.matrix, e.err
	}
	e := &buildEntry{ready: make(chan struct{})}
	b.cache.Add(key, e)
	b.mu.Unlock()

	e.matrix, e.err = b.construct(bandwidth, grid, device)
	if e.err != nil {
		b.mu.Lock()
		if cur, ok := b.cache.Get(key); ok && cur == e {
			b.cache.Remove(key)
		}
		b.mu.Unlock()
	}
	close(e.ready)
	return e.matrix, e.err
}

// construct samples the conjugated Wigner-D basis functions on the grid and
// packs them into the interleaved real layout documented on TransformMatrix.
func (b *MatrixBuilder) construct(bandwidth int, grid Grid, device Device) (*TransformMatrix, error) {
	nSpatial := len(grid)
	nSpectral := SpectralSize(bandwidth)
	dense := mat.NewDense(nSpatial, 2*nSpectral, nil)

	for i, rot := range grid {
		col := 0
		for l := 0; l < bandwidth; l++ {
			d, err := b.eval.WignerD(l, rot.Alpha, rot.Beta, rot.Gamma)
			if err != nil {
				return nil, err
			}
			n := 2*l + 1
			if r, c := d.Dims(); r != n || c != n {
				return nil, fmt.Errorf("so3: evaluator returned %dx%d matrix for degree %d, want %dx%d", r, c, l, n, n)
			}
			for rr := 0; rr < n; rr++ {
				for cc := 0; cc < n; cc++ {
					v := cmplx.Conj(d.At(rr, cc))
					dense.Set(i, col, real(v))
					dense.Set(i, col+1, imag(v))
					col += 2
				}
			}
		}
	}
	return &TransformMatrix{data: dense, nSpectral: nSpectral, device: device}, nil
}

// CacheLen returns the number of cached entries, including builds in flight.
func (b *MatrixBuilder) CacheLen() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cache.Len()
}

// CacheCapacity returns the bound on distinct cached entries.
func (b *MatrixBuilder) CacheCapacity() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cache.Capacity()
}

// CacheEvictions returns how many entries capacity pressure has dropped.
func (b *MatrixBuilder) CacheEvictions() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cache.Evictions()
}

// ClearCache drops every cached matrix. Matrices already handed out remain
// valid.
func (b *MatrixBuilder) ClearCache() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cache.Clear()
}
