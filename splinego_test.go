package splinego_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/splinego"
	"github.com/hupe1980/splinego/coeffs"
	"github.com/hupe1980/splinego/knots"
)

func TestNew_Basic(t *testing.T) {
	b, err := splinego.New(2, []int{2, 3}, []int{5, 6}, coeffs.Zeros)
	require.NoError(t, err)

	assert.Equal(t, 2, b.ParDim())
	assert.Equal(t, 2, b.GeoDim())
	assert.Equal(t, 2, b.Degree(0))
	assert.Equal(t, 3, b.Degree(1))
	assert.Equal(t, 8, b.NKnots(0))
	assert.Equal(t, 10, b.NKnots(1))
	assert.Equal(t, 5, b.NCoeffs(0))
	assert.Equal(t, 6, b.NCoeffs(1))
	assert.Equal(t, 30, b.NCoeffsTotal())
	assert.True(t, b.Knots(0).Uniform())
}

func TestNew_ZeroDimensional(t *testing.T) {
	b, err := splinego.New(3, nil, nil, coeffs.Ones)
	require.NoError(t, err)

	assert.Equal(t, 0, b.ParDim())
	assert.Equal(t, 1, b.NCoeffsTotal())
}

func TestNew_Invalid(t *testing.T) {
	_, err := splinego.New(1, []int{2}, []int{5, 6}, coeffs.Zeros)
	require.ErrorIs(t, err, splinego.ErrInvalidConfiguration, "degree/ncoeffs length mismatch")

	_, err = splinego.New(1, []int{3}, []int{1}, coeffs.Zeros)
	require.ErrorIs(t, err, splinego.ErrInvalidConfiguration, "too few coefficients")

	_, err = splinego.New(0, []int{2}, []int{5}, coeffs.Zeros)
	require.ErrorIs(t, err, splinego.ErrInvalidConfiguration, "geoDim below 1")

	_, err = splinego.New(1, []int{1, 1, 1, 1, 1}, []int{2, 2, 2, 2, 2}, coeffs.Zeros)
	require.ErrorIs(t, err, splinego.ErrUnsupportedDimension)

	_, err = splinego.New(1, []int{2}, []int{5}, coeffs.Init(42))
	require.ErrorIs(t, err, splinego.ErrUnsupportedInit)
}

func TestNewNonUniform(t *testing.T) {
	kv, err := knots.FromValues([]float64{0, 0, 0, 0.1, 0.9, 1, 1, 1}, 2)
	require.NoError(t, err)

	b, err := splinego.NewNonUniform(1, []knots.KnotVector{kv}, coeffs.Zeros)
	require.NoError(t, err)

	assert.Equal(t, 5, b.NCoeffs(0))
	assert.False(t, b.Knots(0).Uniform())
}

func TestString(t *testing.T) {
	b, err := splinego.New(1, []int{3, 4}, []int{6, 7}, coeffs.Zeros)
	require.NoError(t, err)
	assert.Equal(t, "BSpline(parDim=2, geoDim=1, degrees=3x4, knots=10x12, coeffs=6x7)", b.String())

	p, err := splinego.New(2, nil, nil, coeffs.Zeros)
	require.NoError(t, err)
	assert.Equal(t, "BSpline(parDim=0, geoDim=2, degrees=-, knots=-, coeffs=-)", p.String())
}

func TestTransform_Chains(t *testing.T) {
	b, err := splinego.New(1, []int{1, 1}, []int{3, 3}, coeffs.Zeros)
	require.NoError(t, err)

	got := b.Transform(func(pos []float64) []float64 {
		return []float64{pos[0] + 10*pos[1]}
	})
	assert.Same(t, b, got)

	assert.Equal(t, 0.0, b.Store().At(0, []int{0, 0}))
	assert.Equal(t, 10.5, b.Store().At(0, []int{1, 2}))
	assert.Equal(t, 11.0, b.Store().At(0, []int{2, 2}))
}

func TestGrevilleGrid(t *testing.T) {
	b, err := splinego.New(1, []int{2, 1}, []int{6, 3}, coeffs.Zeros)
	require.NoError(t, err)

	pts := b.Greville()
	require.Len(t, pts, 18)

	// Last dimension fastest, matching the coefficient ordering.
	assert.Equal(t, []float64{0, 0}, pts[0])
	assert.Equal(t, []float64{0, 0.5}, pts[1])
	assert.Equal(t, []float64{0, 1}, pts[2])
	assert.Equal(t, []float64{0.125, 0}, pts[3])
	assert.Equal(t, []float64{1, 1}, pts[17])
}

func TestEqual(t *testing.T) {
	a, err := splinego.New(1, []int{2}, []int{5}, coeffs.Greville)
	require.NoError(t, err)
	b, err := splinego.New(1, []int{2}, []int{5}, coeffs.Greville)
	require.NoError(t, err)
	c, err := splinego.New(1, []int{2}, []int{5}, coeffs.Zeros)
	require.NoError(t, err)
	d, err := splinego.New(1, []int{2}, []int{6}, coeffs.Greville)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "same shape, different coefficients")
	assert.False(t, a.Equal(d), "different shape")
	assert.False(t, a.Equal(nil))
}

func TestAlmostEqual(t *testing.T) {
	a, err := splinego.New(1, []int{2}, []int{5}, coeffs.Greville)
	require.NoError(t, err)
	b, err := splinego.New(1, []int{2}, []int{5}, coeffs.Greville)
	require.NoError(t, err)

	b.Coeffs(0)[2] += 1e-9
	assert.False(t, a.Equal(b))
	assert.True(t, a.AlmostEqual(b, 1e-8))
	assert.False(t, a.AlmostEqual(b, 1e-10))
}
