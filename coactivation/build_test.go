package coactivation_test

import (
	"context"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coactive/coactivation"
	"github.com/katalvlaran/coactive/keycode"
)

func scenarioSets() []keycode.Set {
	return []keycode.Set{
		keycode.NewSet("1", "2", "3"),
		keycode.NewSet("2", "3", "4"),
		keycode.NewSet("5"),
	}
}

func TestBuildCoactivationScenario(t *testing.T) {
	c, err := coactivation.BuildCoactivation(scenarioSets())
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{3, 2, 0},
		{2, 3, 0},
		{0, 0, 1},
	}, c.ToRows())
}

func TestBuildJaccardScenario(t *testing.T) {
	j, err := coactivation.BuildJaccard(scenarioSets())
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{1, 0.5, 0},
		{0.5, 1, 0},
		{0, 0, 1},
	}, j.ToRows())
}

func TestEmptyInputs(t *testing.T) {
	c, err := coactivation.BuildCoactivation(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Rows())

	j, err := coactivation.BuildJaccard([]keycode.Set{keycode.NewSet(), keycode.NewSet("1")})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0}, {0, 1}}, j.ToRows(), "empty region against itself is 0")
}

func randomSets(n int, seed int64) []keycode.Set {
	rng := rand.New(rand.NewSource(seed))
	sets := make([]keycode.Set, n)
	for i := range sets {
		sets[i] = keycode.NewSet()
		for k := 0; k < 1+rng.Intn(40); k++ {
			sets[i].Add(strconv.Itoa(rng.Intn(60)))
		}
	}

	return sets
}

func TestPropertiesAndParallelism(t *testing.T) {
	sets := randomSets(25, 7)
	seq, err := coactivation.BuildCoactivation(sets)
	require.NoError(t, err)
	par, err := coactivation.BuildCoactivation(sets, coactivation.WithParallelism(8))
	require.NoError(t, err)
	assert.True(t, seq.Equal(par), "parallel build must be identical")
	assert.True(t, seq.IsSymmetric(0))

	rows := seq.ToRows()
	for i := range rows {
		assert.Equal(t, float64(sets[i].Len()), rows[i][i])
		for j := range rows {
			assert.LessOrEqual(t, rows[i][j], rows[i][i])
		}
	}

	jac, err := coactivation.BuildJaccard(sets, coactivation.WithParallelism(4))
	require.NoError(t, err)
	assert.True(t, jac.IsSymmetric(0))
	for _, row := range jac.ToRows() {
		for _, v := range row {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
}

func TestOptionsErrors(t *testing.T) {
	_, err := coactivation.BuildCoactivation(scenarioSets(), coactivation.WithParallelism(0))
	assert.ErrorIs(t, err, coactivation.ErrBadParallelism)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = coactivation.BuildJaccard(scenarioSets(), coactivation.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
