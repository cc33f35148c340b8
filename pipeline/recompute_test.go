// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kfe/matrix"
	"github.com/katalvlaran/kfe/pipeline"
)

// constantClasses is the two-class N=n=2 set with every intensity of class 0
// at 10 and of class 1 at 200.
func constantClasses(t *testing.T) *matrix.Cube[float64] {
	t.Helper()
	Y, err := matrix.CubeFrom([][][]float64{
		{{10, 10}, {10, 10}},
		{{200, 200}, {200, 200}},
	})
	require.NoError(t, err)

	return Y
}

// separatedClasses keeps class 0 constant and spreads class 1 to the two
// extremes, so no class 1 intensity falls inside its own band.
func separatedClasses(t *testing.T) *matrix.Cube[float64] {
	t.Helper()
	Y, err := matrix.CubeFrom([][][]float64{
		{{10, 10}, {10, 10}},
		{{0, 255}, {0, 255}},
	})
	require.NoError(t, err)

	return Y
}

// TestRecompute_ConstantClasses: every intensity equals its fiber mean, so
// both classes binarize to all ones, the reference vectors coincide and no
// radius is evaluated.
func TestRecompute_ConstantClasses(t *testing.T) {
	res, err := pipeline.Recompute(constantClasses(t), pipeline.Params{Delta: 5, Selec: 0.5})
	require.NoError(t, err)

	for k := 0; k < 2; k++ {
		slab, _ := res.Binary.Slab(k)
		assert.Equal(t, [][]uint8{{1, 1}, {1, 1}}, slab.ToSlices())
	}
	lo, _ := res.Lower.At(0, 0)
	hi, _ := res.Upper.At(1, 1)
	assert.Equal(t, 5.0, lo)
	assert.Equal(t, 205.0, hi)
	assert.Equal(t, [][]uint8{{1, 1}, {1, 1}}, res.Reference.ToSlices())
	assert.Equal(t, []int{0, 0}, res.MaxRadius)
	assert.Empty(t, res.Metrics[0])
	assert.Empty(t, res.Metrics[1])
}

func TestRecompute_SeparatedClasses(t *testing.T) {
	res, err := pipeline.Recompute(separatedClasses(t), pipeline.Params{Delta: 5, Selec: 0.5})
	require.NoError(t, err)

	assert.Equal(t, [][]uint8{{1, 1}, {0, 0}}, res.Reference.ToSlices())
	assert.Equal(t, [][]float64{{1, 1}, {0, 0}}, res.Average.ToSlices())
	assert.Equal(t, []int{2, 2}, res.MaxRadius)
	require.Equal(t, 2, res.Classes())

	for k := 0; k < 2; k++ {
		list := res.Metrics[k]
		require.Len(t, list, 2)

		assert.Equal(t, [4]float64{1, 0, 0, 1}, [4]float64{list[0].D1, list[0].Alpha, list[0].Beta, list[0].D2})
		assert.True(t, list[0].Reliable)
		assert.InDelta(t, 1.0, list[0].Shannon, 1e-12)
		assert.Equal(t, 0.0, list[0].Kullback)

		assert.Equal(t, [4]float64{1, 0, 1, 0}, [4]float64{list[1].D1, list[1].Alpha, list[1].Beta, list[1].D2})
		assert.False(t, list[1].Reliable)
		assert.InDelta(t, 0.5, list[1].Shannon, 1e-12)
		assert.Equal(t, 0.0, list[1].Kullback)
	}
}

func TestRecompute_Deterministic(t *testing.T) {
	Y := separatedClasses(t)
	p := pipeline.Params{Delta: 20, Selec: 0.4}
	a, err := pipeline.Recompute(Y, p)
	require.NoError(t, err)
	b, err := pipeline.Recompute(Y, p)
	require.NoError(t, err)

	require.Equal(t, a, b)
	require.NotSame(t, a.Binary, b.Binary)
}

func TestRecompute_Errors(t *testing.T) {
	Y := separatedClasses(t)
	for _, p := range []pipeline.Params{
		{Delta: -1, Selec: 0.5},
		{Delta: 256, Selec: 0.5},
		{Delta: 5, Selec: 1.01},
		{Delta: 5, Selec: math.NaN()},
	} {
		_, err := pipeline.Recompute(Y, p)
		require.ErrorIs(t, err, pipeline.ErrInvalidParams, "%v", p)
	}

	_, err := pipeline.Recompute(nil, pipeline.DefaultParams)
	require.Error(t, err)
}

func TestParams(t *testing.T) {
	require.NoError(t, pipeline.DefaultParams.Validate())
	assert.Equal(t, "delta=50 selec=0.50", pipeline.DefaultParams.String())
	require.NoError(t, pipeline.Params{Delta: 0, Selec: 0}.Validate())
	require.NoError(t, pipeline.Params{Delta: pipeline.MaxDelta, Selec: 1}.Validate())
}
