package significance_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coactive/errkind"
	"github.com/katalvlaran/coactive/matrix"
	"github.com/katalvlaran/coactive/significance"
)

func TestPerfectDependenceIsKept(t *testing.T) {
	C, err := matrix.FromRows([][]float64{{10, 10}, {10, 10}})
	require.NoError(t, err)

	stat, err := significance.Statistic(10, 10, 10, 10)
	require.NoError(t, err)
	assert.Zero(t, stat)

	for _, alpha := range []float64{0, 0.05, 1, 3.84} {
		out, err := significance.Filter(C, 10, alpha)
		require.NoError(t, err)
		assert.Equal(t, 10.0, out.ToRows()[0][1], "alpha=%v", alpha)
	}
}

func TestStatisticKnownValue(t *testing.T) {
	// p = 0.1: L0 = 0.1^10 · 0.9^90, L1 = 1
	stat, err := significance.Statistic(10, 10, 10, 100)
	require.NoError(t, err)
	want := -2 * (10*math.Log10(0.1) + 90*math.Log10(0.9))
	assert.InDelta(t, want, stat, 1e-9)
}

func TestStatisticIndependentIsZero(t *testing.T) {
	stat, err := significance.Statistic(10, 10, 5, 20)
	require.NoError(t, err)
	assert.InDelta(t, 0, stat, 1e-12)
}

func TestStatisticSymmetric(t *testing.T) {
	cases := [][4]int{{12, 30, 7, 80}, {3, 9, 1, 40}, {25, 5, 5, 60}}
	for _, c := range cases {
		a, err := significance.Statistic(c[0], c[1], c[2], c[3])
		require.NoError(t, err)
		b, err := significance.Statistic(c[1], c[0], c[2], c[3])
		require.NoError(t, err)
		assert.InDelta(t, a, b, 1e-9, "case %v", c)
		assert.GreaterOrEqual(t, a, -1e-12)
	}
}

func TestStatisticErrors(t *testing.T) {
	_, err := significance.Statistic(1, 1, 1, 0)
	assert.ErrorIs(t, err, errkind.ErrDegenerateStatistics)
	_, err = significance.Statistic(2, 3, 4, 10)
	assert.ErrorIs(t, err, errkind.ErrInvalidInputShape)
	_, err = significance.Statistic(11, 3, 1, 10)
	assert.ErrorIs(t, err, errkind.ErrInvalidInputShape)
	_, err = significance.Statistic(9, 8, 1, 10)
	assert.ErrorIs(t, err, errkind.ErrInvalidInputShape, "ni-k exceeds N-nj")
}

func TestFilterLiteralAndChiSquare(t *testing.T) {
	// pair (0,1): strongly dependent; pair (0,2): independent
	C, err := matrix.FromRows([][]float64{
		{10, 10, 5},
		{10, 10, 5},
		{5, 5, 50},
	})
	require.NoError(t, err)

	lit, err := significance.Filter(C, 100, 3)
	require.NoError(t, err)
	rows := lit.ToRows()
	assert.Zero(t, rows[0][1], "literal rule zeroes stat > alpha")
	assert.Zero(t, rows[1][0])
	assert.Equal(t, 5.0, rows[0][2])
	assert.Equal(t, []float64{10, 10, 50}, []float64{rows[0][0], rows[1][1], rows[2][2]}, "diagonal untouched")
	assert.True(t, lit.IsSymmetric(0))

	chi, err := significance.Filter(C, 100, 0.05, significance.WithDecision(significance.DecisionChiSquare))
	require.NoError(t, err)
	rows = chi.ToRows()
	assert.Equal(t, 10.0, rows[0][1], "dependent pair is significant")
	assert.Zero(t, rows[0][2], "independent pair has p-value 1")
}

func TestFilterParallelMatchesSequential(t *testing.T) {
	C, err := matrix.FromRows([][]float64{
		{20, 4, 9, 1},
		{4, 15, 3, 2},
		{9, 3, 30, 7},
		{1, 2, 7, 12},
	})
	require.NoError(t, err)
	seq, err := significance.Filter(C, 90, 2)
	require.NoError(t, err)
	par, err := significance.Filter(C, 90, 2, significance.WithParallelism(4))
	require.NoError(t, err)
	assert.True(t, seq.Equal(par))
	assert.True(t, C.ToRows()[0][1] == 4, "input not mutated")
}

func TestFilterShapeErrors(t *testing.T) {
	rect, _ := matrix.NewDense(2, 3)
	_, err := significance.Filter(rect, 10, 1)
	assert.ErrorIs(t, err, errkind.ErrInvalidInputShape)

	asym, _ := matrix.FromRows([][]float64{{3, 1}, {2, 3}})
	_, err = significance.Filter(asym, 10, 1)
	assert.ErrorIs(t, err, errkind.ErrInvalidInputShape)

	frac, _ := matrix.FromRows([][]float64{{3, 0.5}, {0.5, 3}})
	_, err = significance.Filter(frac, 10, 1)
	assert.ErrorIs(t, err, errkind.ErrInvalidInputShape)

	over, _ := matrix.FromRows([][]float64{{5, 1}, {1, 2}})
	_, err = significance.Filter(over, 3, 1)
	var pe *errkind.PairError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, [2]int{0, 1}, [2]int{pe.I, pe.J})
	assert.ErrorIs(t, err, errkind.ErrInvalidInputShape)

	ok, _ := matrix.FromRows([][]float64{{1, 0}, {0, 1}})
	_, err = significance.Filter(ok, 0, 1)
	assert.ErrorIs(t, err, errkind.ErrDegenerateStatistics)
	_, err = significance.Filter(ok, 2, math.NaN())
	assert.ErrorIs(t, err, significance.ErrBadAlpha)
}

func TestParseDecision(t *testing.T) {
	d, err := significance.ParseDecision("chisquare")
	require.NoError(t, err)
	assert.Equal(t, significance.DecisionChiSquare, d)
	assert.Equal(t, "literal", significance.DecisionLiteral.String())
	_, err = significance.ParseDecision("bonferroni")
	assert.ErrorIs(t, err, significance.ErrUnknownDecision)
}
