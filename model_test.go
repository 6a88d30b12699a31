package splinego_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/splinego"
	"github.com/hupe1980/splinego/blobstore"
	"github.com/hupe1980/splinego/codec"
	"github.com/hupe1980/splinego/coeffs"
	"github.com/hupe1980/splinego/knots"
	"github.com/hupe1980/splinego/persistence"
	"github.com/hupe1980/splinego/testutil"
)

func randomSpline(t *testing.T, geoDim int, degrees, ncoeffs []int) *splinego.BSpline {
	t.Helper()
	b, err := splinego.New(geoDim, degrees, ncoeffs, coeffs.Random,
		splinego.WithRandSource(testutil.NewRNG(77).Rand()))
	require.NoError(t, err)
	return b
}

func TestModel_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		geoDim  int
		degrees []int
		ncoeffs []int
	}{
		{"Curve1D", 1, []int{3}, []int{7}},
		{"PlanarCurve", 2, []int{2}, []int{5}},
		{"Surface", 3, []int{2, 3}, []int{5, 6}},
		{"Volume", 1, []int{2, 2, 2}, []int{4, 5, 4}},
		{"FourDim", 2, []int{1, 1, 1, 1}, []int{2, 3, 2, 3}},
		{"Point", 3, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := randomSpline(t, tt.geoDim, tt.degrees, tt.ncoeffs)

			out, err := splinego.NewFromModel(in.Model())
			require.NoError(t, err)
			assert.True(t, in.Equal(out))
		})
	}
}

func TestModel_RoundTrip_NonUniform(t *testing.T) {
	kv, err := knots.FromValues([]float64{0, 0, 0, 0.2, 0.5, 0.5, 1, 1, 1}, 2)
	require.NoError(t, err)

	in, err := splinego.NewNonUniform(2, []knots.KnotVector{kv}, coeffs.Greville)
	require.NoError(t, err)

	out, err := splinego.NewFromModel(in.Model())
	require.NoError(t, err)
	assert.True(t, in.Equal(out))
	assert.False(t, out.Knots(0).Uniform())
}

func TestModel_RoundTrip_BoundaryShapes(t *testing.T) {
	// Coefficient counts of degree-1 and degree regenerate their
	// open-uniform layouts on load.
	for _, tt := range []struct {
		degrees, ncoeffs []int
	}{
		{[]int{2}, []int{1}},
		{[]int{3}, []int{2}},
		{[]int{2}, []int{2}},
	} {
		in, err := splinego.New(1, tt.degrees, tt.ncoeffs, coeffs.Ones)
		require.NoError(t, err, "degrees=%v ncoeffs=%v", tt.degrees, tt.ncoeffs)

		out, err := splinego.NewFromModel(in.Model())
		require.NoError(t, err, "degrees=%v ncoeffs=%v", tt.degrees, tt.ncoeffs)
		assert.True(t, in.Equal(out))
	}
}

func TestApplyModel_ShapeMismatch(t *testing.T) {
	src := randomSpline(t, 2, []int{2, 2}, []int{5, 5})
	m := src.Model()

	wrongPar := randomSpline(t, 2, []int{2}, []int{5})
	require.ErrorIs(t, wrongPar.ApplyModel(m), splinego.ErrFormatMismatch)

	wrongGeo := randomSpline(t, 1, []int{2, 2}, []int{5, 5})
	require.ErrorIs(t, wrongGeo.ApplyModel(m), splinego.ErrFormatMismatch)

	wrongDegree := randomSpline(t, 2, []int{2, 3}, []int{5, 5})
	require.ErrorIs(t, wrongDegree.ApplyModel(m), splinego.ErrFormatMismatch)
}

func TestApplyModel_DifferentCoefficientCount(t *testing.T) {
	// Coefficient counts may differ between model and target as long as
	// parDim, geoDim and degrees agree: a refined model loads into a
	// coarser sibling.
	src := randomSpline(t, 1, []int{2}, []int{9})
	dst := randomSpline(t, 1, []int{2}, []int{5})

	require.NoError(t, dst.ApplyModel(src.Model()))
	assert.True(t, src.Equal(dst))
}

func TestApplyModel_CorruptModel(t *testing.T) {
	dst := randomSpline(t, 1, []int{2}, []int{5})

	m := randomSpline(t, 1, []int{2}, []int{5}).Model()
	m.Coeffs[0] = m.Coeffs[0][:3]
	require.ErrorIs(t, dst.ApplyModel(m), splinego.ErrFormatMismatch)

	m = randomSpline(t, 1, []int{2}, []int{5}).Model()
	m.NKnots[0] = 99
	require.ErrorIs(t, dst.ApplyModel(m), splinego.ErrFormatMismatch)

	m = randomSpline(t, 1, []int{2}, []int{5}).Model()
	m.Knots[0][3] = 0.9 // claims uniform but is not open-uniform anymore
	require.ErrorIs(t, dst.ApplyModel(m), splinego.ErrFormatMismatch)
}

func TestSaveLoad_Writer(t *testing.T) {
	in := randomSpline(t, 2, []int{2, 3}, []int{5, 6})

	var buf bytes.Buffer
	require.NoError(t, in.Save(&buf))

	out, err := splinego.Read(&buf)
	require.NoError(t, err)
	assert.True(t, in.Equal(out))
}

func TestSaveLoad_IntoExisting(t *testing.T) {
	in := randomSpline(t, 2, []int{2, 3}, []int{5, 6})

	var buf bytes.Buffer
	require.NoError(t, in.Save(&buf))

	dst := randomSpline(t, 2, []int{2, 3}, []int{5, 6})
	require.NoError(t, dst.Load(&buf))
	assert.True(t, in.Equal(dst))
}

func TestSaveLoad_CompressedAndCodecs(t *testing.T) {
	for _, comp := range []persistence.Compression{persistence.NoCompression, persistence.Zstd, persistence.LZ4} {
		for _, c := range []codec.Codec{codec.JSON{}, codec.GoJSON{}} {
			in, err := splinego.New(2, []int{3, 3}, []int{8, 8}, coeffs.Random,
				splinego.WithRandSource(testutil.NewRNG(7).Rand()),
				splinego.WithCodec(c),
				splinego.WithCompression(comp))
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, in.Save(&buf))

			// The snapshot is self-describing: default options read it.
			out, err := splinego.Read(&buf)
			require.NoError(t, err)
			assert.True(t, in.Equal(out), "codec=%s compression=%s", c.Name(), comp)
		}
	}
}

func TestSaveToLoadFrom_Blobstore(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	in := randomSpline(t, 3, []int{2, 2}, []int{5, 4})
	require.NoError(t, in.SaveTo(ctx, store, "models/plate"))

	names, err := store.List(ctx, "models/")
	require.NoError(t, err)
	assert.Equal(t, []string{"models/plate"}, names)

	out, err := splinego.LoadFrom(ctx, store, "models/plate")
	require.NoError(t, err)
	assert.True(t, in.Equal(out))

	_, err = splinego.LoadFrom(ctx, store, "models/missing")
	require.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestSaveToLoadFrom_LocalStore(t *testing.T) {
	ctx := context.Background()
	store, err := blobstore.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	in := randomSpline(t, 1, []int{3}, []int{9})
	require.NoError(t, in.SaveTo(ctx, store, "curve"))

	out, err := splinego.LoadFrom(ctx, store, "curve")
	require.NoError(t, err)
	assert.True(t, in.Equal(out))
}

func TestNewFromModel_Invalid(t *testing.T) {
	m := randomSpline(t, 1, []int{2}, []int{5}).Model()
	m.ParDim = 7
	_, err := splinego.NewFromModel(m)
	require.ErrorIs(t, err, splinego.ErrUnsupportedDimension)

	m = randomSpline(t, 1, []int{2}, []int{5}).Model()
	m.Degrees = []int{2, 2}
	_, err = splinego.NewFromModel(m)
	require.ErrorIs(t, err, splinego.ErrFormatMismatch)
}
