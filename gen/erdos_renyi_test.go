package gen_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"topobench/digraph"
	"topobench/gen"
)

// TestErdosRenyi_ExactArcCount verifies the exact-m contract across a
// spread of sizes and densities.
func TestErdosRenyi_ExactArcCount(t *testing.T) {
	cases := []struct {
		n       int
		density float64
	}{
		{1, 0.5},
		{5, 0.0},
		{10, 0.1},
		{20, 0.5},
		{15, 1.0},
		{30, 0.01},
	}
	for _, tc := range cases {
		list, mat, err := gen.ErdosRenyi(tc.n, tc.density, gen.WithSeed(42))
		assert.NoError(t, err, "n=%d d=%v", tc.n, tc.density)

		want := int(math.Round(tc.density * float64(tc.n*(tc.n-1))))
		assert.Equal(t, want, list.ArcCount(), "list arcs for n=%d d=%v", tc.n, tc.density)
		assert.Equal(t, want, mat.ArcCount(), "matrix arcs for n=%d d=%v", tc.n, tc.density)
	}
}

// TestErdosRenyi_RepresentationsAgree checks cell-by-cell agreement
// between the list and matrix forms of one sample.
func TestErdosRenyi_RepresentationsAgree(t *testing.T) {
	list, mat, err := gen.ErdosRenyi(25, 0.2, gen.WithSeed(7), gen.WithWeightRange(1, 10))
	assert.NoError(t, err)

	converted, err := digraph.ListToMatrix(list)
	assert.NoError(t, err)
	for u := 0; u < mat.Order(); u++ {
		assert.Equal(t, converted.Row(u), mat.Row(u), "row %d", u)
	}
}

// TestErdosRenyi_Deterministic verifies that a fixed seed reproduces the
// sample exactly, successor order included.
func TestErdosRenyi_Deterministic(t *testing.T) {
	first, _, err := gen.ErdosRenyi(40, 0.15, gen.WithSeed(1234))
	assert.NoError(t, err)
	second, _, err := gen.ErdosRenyi(40, 0.15, gen.WithSeed(1234))
	assert.NoError(t, err)

	for u := 0; u < first.Order(); u++ {
		if diff := cmp.Diff(first.Succ(u), second.Succ(u)); diff != "" {
			t.Errorf("successors of %d differ (-first +second):\n%s", u, diff)
		}
	}
}

// TestErdosRenyi_PercentDensity verifies that densities above 1 are read
// as percentages.
func TestErdosRenyi_PercentDensity(t *testing.T) {
	asFraction, _, err := gen.ErdosRenyi(20, 0.10, gen.WithSeed(3))
	assert.NoError(t, err)
	asPercent, _, err := gen.ErdosRenyi(20, 10, gen.WithSeed(3))
	assert.NoError(t, err)
	assert.Equal(t, asFraction.ArcCount(), asPercent.ArcCount())
}

// TestErdosRenyi_WeightRange verifies weights stay inside the configured span.
func TestErdosRenyi_WeightRange(t *testing.T) {
	list, _, err := gen.ErdosRenyi(20, 0.3, gen.WithSeed(99), gen.WithWeightRange(3, 5))
	assert.NoError(t, err)

	for u := 0; u < list.Order(); u++ {
		for _, a := range list.Succ(u) {
			assert.GreaterOrEqual(t, a.Weight, int64(3))
			assert.LessOrEqual(t, a.Weight, int64(5))
		}
	}
}

// TestErdosRenyi_Validation covers the sentinel errors.
func TestErdosRenyi_Validation(t *testing.T) {
	_, _, err := gen.ErdosRenyi(0, 0.5)
	assert.ErrorIs(t, err, gen.ErrTooFewVertices)

	_, _, err = gen.ErdosRenyi(10, -0.1)
	assert.ErrorIs(t, err, gen.ErrInvalidDensity)

	_, _, err = gen.ErdosRenyi(10, 101)
	assert.ErrorIs(t, err, gen.ErrInvalidDensity)
}

// TestNormalizeDensity covers fraction, percent and rejection branches.
func TestNormalizeDensity(t *testing.T) {
	d, err := gen.NormalizeDensity(0.25)
	assert.NoError(t, err)
	assert.Equal(t, 0.25, d)

	d, err = gen.NormalizeDensity(50)
	assert.NoError(t, err)
	assert.Equal(t, 0.5, d)

	_, err = gen.NormalizeDensity(-1)
	assert.ErrorIs(t, err, gen.ErrInvalidDensity)
	_, err = gen.NormalizeDensity(250)
	assert.ErrorIs(t, err, gen.ErrInvalidDensity)
}

// TestOptions_PanicOnMisuse verifies that option constructors fail fast.
func TestOptions_PanicOnMisuse(t *testing.T) {
	assert.Panics(t, func() { gen.WithRand(nil) })
	assert.Panics(t, func() { gen.WithWeightRange(0, 5) })
	assert.Panics(t, func() { gen.WithWeightRange(5, 4) })
}
