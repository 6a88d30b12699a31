package knots

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenUniform_Layout(t *testing.T) {
	tests := []struct {
		name    string
		ncoeffs int
		degree  int
		want    []float64
	}{
		{
			"Degree2_Six",
			6, 2,
			[]float64{0, 0, 0, 0.25, 0.5, 0.75, 1, 1, 1},
		},
		{
			"Bezier_Degree3",
			4, 3,
			[]float64{0, 0, 0, 0, 1, 1, 1, 1},
		},
		{
			"Degree0",
			4, 0,
			[]float64{0, 0.25, 0.5, 0.75, 1},
		},
		{
			"Degree1_Minimal",
			2, 1,
			[]float64{0, 0, 1, 1},
		},
		{
			"Degree2_SingleCoefficient",
			1, 2,
			[]float64{0, 0, 1, 1},
		},
		{
			"Degree3_TwoCoefficients",
			2, 3,
			[]float64{0, 0, 0, 1, 1, 1},
		},
		{
			"Degree2_TwoCoefficients",
			2, 2,
			[]float64{0, 0, 0, 1, 1},
		},
		{
			"Degree3_ThreeCoefficients",
			3, 3,
			[]float64{0, 0, 0, 0, 1, 1, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv, err := NewOpenUniform(tt.ncoeffs, tt.degree)
			require.NoError(t, err)

			assert.Equal(t, tt.want, kv.Values())
			assert.Equal(t, tt.degree, kv.Degree())
			assert.Equal(t, tt.ncoeffs, kv.NCoeffs())
			assert.Equal(t, tt.ncoeffs+tt.degree+1, kv.Len())
			assert.True(t, kv.Uniform())
		})
	}
}

func TestNewOpenUniform_TooFewCoefficients(t *testing.T) {
	for _, tt := range []struct{ ncoeffs, degree int }{
		{0, 2},
		{1, 3},
		{2, 4},
		{1, 5},
		{-1, 0},
	} {
		_, err := NewOpenUniform(tt.ncoeffs, tt.degree)
		require.ErrorIs(t, err, ErrInvalidConfiguration, "ncoeffs=%d degree=%d", tt.ncoeffs, tt.degree)
	}
}

func TestNewOpenUniform_BoundaryCoefficients(t *testing.T) {
	// ncoeffs down to degree-1 still forms a valid open vector; only
	// ncoeffs <= degree-2 fails.
	for degree := 1; degree <= 5; degree++ {
		for _, ncoeffs := range []int{degree - 1, degree} {
			kv, err := NewOpenUniform(ncoeffs, degree)
			require.NoError(t, err, "ncoeffs=%d degree=%d", ncoeffs, degree)

			assert.Equal(t, ncoeffs, kv.NCoeffs())
			assert.Equal(t, ncoeffs+degree+1, kv.Len())
			assert.True(t, kv.Uniform())
			for i, v := range kv.Values() {
				require.False(t, math.IsNaN(v), "ncoeffs=%d degree=%d knot %d", ncoeffs, degree, i)
			}
		}

		_, err := NewOpenUniform(degree-2, degree)
		require.ErrorIs(t, err, ErrInvalidConfiguration, "degree=%d", degree)
	}
}

func TestNewOpenUniform_NegativeDegree(t *testing.T) {
	_, err := NewOpenUniform(4, -1)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestFromValues(t *testing.T) {
	kv, err := FromValues([]float64{0, 0, 0.5, 1, 1}, 1)
	require.NoError(t, err)

	assert.Equal(t, 3, kv.NCoeffs())
	assert.Equal(t, 5, kv.Len())
	assert.False(t, kv.Uniform())
	assert.Equal(t, 0.5, kv.At(2))
}

func TestFromValues_ClonesInput(t *testing.T) {
	values := []float64{0, 0, 0.5, 1, 1}
	kv, err := FromValues(values, 1)
	require.NoError(t, err)

	values[2] = 0.9
	assert.Equal(t, 0.5, kv.At(2))
}

func TestFromValues_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		degree int
	}{
		{"TooShort", []float64{0, 0, 1}, 1},
		{"TooShortForDegree", []float64{0, 0, 0.5, 1, 1}, 2},
		{"NotSorted", []float64{0, 0.6, 0.4, 1, 1, 1}, 1},
		{"BelowZero", []float64{-0.1, 0, 0.5, 1}, 1},
		{"AboveOne", []float64{0, 0, 0.5, 1.2}, 1},
		{"NegativeDegree", []float64{0, 0.5, 1}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromValues(tt.values, tt.degree)
			require.ErrorIs(t, err, ErrInvalidConfiguration)
		})
	}
}

func TestEqual(t *testing.T) {
	a, err := NewOpenUniform(5, 2)
	require.NoError(t, err)
	b, err := NewOpenUniform(5, 2)
	require.NoError(t, err)
	c, err := NewOpenUniform(6, 2)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	d, err := FromValues(a.Values(), 2)
	require.NoError(t, err)
	assert.True(t, a.Equal(d), "uniformity flag is not part of equality")
}

func TestSpan_Uniform(t *testing.T) {
	kv, err := NewOpenUniform(6, 2)
	require.NoError(t, err)

	tests := []struct {
		xi   float64
		want int
	}{
		{0, 2},
		{0.1, 2},
		{0.25, 3},
		{0.5, 4},
		{0.99, 5},
		{1, 5}, // upper boundary clamps to the last span
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, kv.Span(tt.xi), "xi=%g", tt.xi)
	}
}

func TestSpan_NonUniform(t *testing.T) {
	kv, err := FromValues([]float64{0, 0, 0.5, 1, 1}, 1)
	require.NoError(t, err)

	tests := []struct {
		xi   float64
		want int
	}{
		{0, 1},
		{0.25, 1},
		{0.5, 2},
		{0.75, 2},
		{1, 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, kv.Span(tt.xi), "xi=%g", tt.xi)
	}
}

func TestSpan_ContainsPoint(t *testing.T) {
	// The located span must satisfy t[i] <= xi < t[i+1] for interior xi,
	// on uniform and non-uniform vectors alike.
	uniform, err := NewOpenUniform(8, 3)
	require.NoError(t, err)
	nonUniform, err := FromValues([]float64{0, 0, 0, 0.1, 0.3, 0.31, 0.9, 1, 1, 1}, 2)
	require.NoError(t, err)

	for _, kv := range []KnotVector{uniform, nonUniform} {
		for _, xi := range []float64{0, 0.05, 0.1, 0.3, 0.305, 0.5, 0.89, 0.99} {
			i := kv.Span(xi)
			require.GreaterOrEqual(t, i, kv.Degree())
			require.Less(t, i, kv.NCoeffs())
			assert.LessOrEqual(t, kv.At(i), xi)
			assert.Greater(t, kv.At(i+1), xi)
		}
	}
}

func TestSpanBatch(t *testing.T) {
	kv, err := NewOpenUniform(6, 2)
	require.NoError(t, err)

	xis := []float64{0, 0.3, 0.7, 1}
	got := kv.SpanBatch(xis)
	require.Len(t, got, len(xis))
	for i, xi := range xis {
		assert.Equal(t, kv.Span(xi), got[i])
	}
}

func TestGreville(t *testing.T) {
	kv, err := NewOpenUniform(6, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.125, 0.375, 0.625, 0.875, 1}, kv.Greville())

	// Degree 0 has no averaging window; midpoints stand in.
	kv0, err := NewOpenUniform(4, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.125, 0.375, 0.625, 0.875}, kv0.Greville())
}

func TestGreville_EndpointsInterpolate(t *testing.T) {
	for degree := 1; degree <= 4; degree++ {
		kv, err := NewOpenUniform(degree + 3, degree)
		require.NoError(t, err)

		g := kv.Greville()
		assert.Equal(t, 0.0, g[0], "degree %d", degree)
		assert.Equal(t, 1.0, g[len(g)-1], "degree %d", degree)
		for i := 1; i < len(g); i++ {
			assert.Greater(t, g[i], g[i-1], "degree %d", degree)
		}
	}
}
