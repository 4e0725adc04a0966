package so3

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpectralSize(t *testing.T) {
	// Closed form must match the defining sum.
	for b := 1; b <= 16; b++ {
		want := 0
		for l := 0; l < b; l++ {
			want += (2*l + 1) * (2*l + 1)
		}
		assert.Equal(t, want, SpectralSize(b), "bandwidth %d", b)
	}

	assert.Equal(t, 1, SpectralSize(1))
	assert.Equal(t, 10, SpectralSize(2))
	assert.Equal(t, 35, SpectralSize(3))
	assert.Equal(t, 0, SpectralSize(0))
	assert.Equal(t, 0, SpectralSize(-3))
}

func TestGridValidate(t *testing.T) {
	cases := []struct {
		name string
		grid Grid
		err  error
	}{
		{"Empty", Grid{}, ErrInvalidGrid},
		{"Nil", nil, ErrInvalidGrid},
		{"NaNAngle", Grid{{Alpha: math.NaN()}}, ErrInvalidGrid},
		{"InfAngle", Grid{{Beta: math.Inf(1)}}, ErrInvalidGrid},
		{"Valid", Grid{{0.1, 0.2, 0.3}}, nil},
		{"ValidIdentity", Grid{{}}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.grid.Validate()
			if tc.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.err)
			}
		})
	}
}

func TestGridFingerprintIsOrderSensitive(t *testing.T) {
	a := Grid{{0.1, 0.2, 0.3}, {0.4, 0.5, 0.6}}
	b := Grid{{0.4, 0.5, 0.6}, {0.1, 0.2, 0.3}}
	c := Grid{{0.1, 0.2, 0.3}, {0.4, 0.5, 0.6}}

	assert.NotEqual(t, a.fingerprint(), b.fingerprint(), "reordered grid must have a distinct identity")
	assert.Equal(t, a.fingerprint(), c.fingerprint(), "equal grids must share an identity")

	d := Grid{{0.1, 0.2, 0.3}, {0.4, 0.5, 0.6000000001}}
	assert.NotEqual(t, a.fingerprint(), d.fingerprint(), "any angle change must change the identity")
}

func TestNearIdentityGrid(t *testing.T) {
	g := NearIdentityGrid(math.Pi/8, math.Pi/4, 6, 3, 4)
	require.Len(t, g, 6*3*4)

	for _, r := range g {
		assert.Greater(t, r.Beta, 0.0)
		assert.LessOrEqual(t, r.Beta, math.Pi/8)
		assert.GreaterOrEqual(t, r.Alpha, 0.0)
		assert.Less(t, r.Alpha, 2*math.Pi)
		assert.GreaterOrEqual(t, r.Gamma, -math.Pi/4)
		assert.Less(t, r.Gamma, math.Pi/4)
	}

	assert.Nil(t, NearIdentityGrid(math.Pi/8, math.Pi/4, 0, 3, 4))
}

func TestEquiangularGrid(t *testing.T) {
	g := EquiangularGrid(4, 3, 4)
	require.Len(t, g, 4*3*4)

	for _, r := range g {
		assert.Greater(t, r.Beta, 0.0)
		assert.Less(t, r.Beta, math.Pi)
	}

	assert.Nil(t, EquiangularGrid(4, -1, 4))
}

func TestDeviceString(t *testing.T) {
	assert.Equal(t, "cpu:0", Device{}.String())
	assert.Equal(t, "cuda:1", Device{Kind: CUDA, Index: 1}.String())
	assert.Equal(t, "metal:0", Device{Kind: Metal}.String())
}
