// SPDX-License-Identifier: MIT

package metrics_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kfe/codedist"
	"github.com/katalvlaran/kfe/matrix"
	"github.com/katalvlaran/kfe/metrics"
)

// separatedFixture is the N=n=2 case where class 0 codes are all ones and
// class 1 codes are all zeros, with xm[0]=[1,1] and xm[1]=[0,0].
func separatedFixture(t *testing.T) (*matrix.Cube[int], *matrix.Grid[uint8]) {
	t.Helper()
	X, err := matrix.CubeFrom([][][]uint8{
		{{1, 1}, {1, 1}},
		{{0, 0}, {0, 0}},
	})
	require.NoError(t, err)
	ref, err := matrix.GridFrom([][]uint8{{1, 1}, {0, 0}})
	require.NoError(t, err)
	sk, err := codedist.Compute(X, ref)
	require.NoError(t, err)

	return sk, ref
}

// TestCompute_HandExample checks both radii of both classes against values
// worked out by hand.
func TestCompute_HandExample(t *testing.T) {
	sk, ref := separatedFixture(t)
	rep, err := metrics.Compute(sk, ref)
	require.NoError(t, err)

	require.Equal(t, []int{2, 2}, rep.MaxRadius)
	require.Equal(t, [][]int{{0, 2}, {2, 0}}, rep.Separation.ToSlices())

	for k := 0; k < 2; k++ {
		list := rep.ByClass[k]
		require.Len(t, list, 2)

		r1 := list[0]
		assert.Equal(t, 1, r1.Radius)
		assert.Equal(t, k, r1.Class)
		assert.Equal(t, [4]int{2, 0, 0, 2}, [4]int{r1.K1, r1.K2, r1.K3, r1.K4})
		assert.Equal(t, [4]float64{1, 0, 0, 1}, [4]float64{r1.D1, r1.Alpha, r1.Beta, r1.D2})
		assert.True(t, r1.Reliable)
		assert.Equal(t, 2, r1.SampleSize)
		assert.Equal(t, 2, r1.ForeignSampleSize)

		r2 := list[1]
		assert.Equal(t, 2, r2.Radius)
		assert.Equal(t, [4]int{2, 0, 2, 0}, [4]int{r2.K1, r2.K2, r2.K3, r2.K4})
		assert.Equal(t, [4]float64{1, 0, 1, 0}, [4]float64{r2.D1, r2.Alpha, r2.Beta, r2.D2})
		assert.False(t, r2.Reliable)

		assert.True(t, math.IsNaN(r1.Shannon) && math.IsNaN(r1.Kullback), "unscored")
	}
}

// TestCompute_SampleSizeIsRealizationCount uses N != n so that mixing up the
// axes would change every fraction.
func TestCompute_SampleSizeIsRealizationCount(t *testing.T) {
	// N=3 features, n=4 realizations.
	X, err := matrix.CubeFrom([][][]uint8{
		{{1, 1, 1, 0}, {1, 1, 0, 0}, {1, 1, 1, 1}},
		{{0, 0, 0, 1}, {0, 0, 1, 1}, {0, 1, 0, 0}},
	})
	require.NoError(t, err)
	ref, _ := matrix.GridFrom([][]uint8{{1, 1, 1}, {0, 0, 0}})
	sk, err := codedist.Compute(X, ref)
	require.NoError(t, err)

	rep, err := metrics.Compute(sk, ref)
	require.NoError(t, err)
	require.Equal(t, []int{3, 3}, rep.MaxRadius)
	for _, list := range rep.ByClass {
		for _, m := range list {
			require.Equal(t, 4, m.SampleSize)
			require.Equal(t, 4, m.K1+m.K2)
			require.Equal(t, 4, m.K3+m.K4)
			require.InDelta(t, 1.0, m.D1+m.Alpha, 1e-12)
			require.InDelta(t, 1.0, m.Beta+m.D2, 1e-12)
		}
	}
	// Class 0 own distances: [0,0,1,2]. Radius 1 accepts three of four.
	assert.Equal(t, 3, rep.ByClass[0][0].K1)
	assert.Equal(t, 0.75, rep.ByClass[0][0].D1)
}

// TestCompute_MonotonicRadiusCoverage checks radii 1..maxRadius and
// non-decreasing K1/K3 on random data.
func TestCompute_MonotonicRadiusCoverage(t *testing.T) {
	const m, N, n = 2, 40, 25
	rng := rand.New(rand.NewSource(11))
	X, _ := matrix.NewCube[uint8](m, N, n)
	ref, _ := matrix.NewGrid[uint8](m, N)
	for k := 0; k < m; k++ {
		for i := 0; i < N; i++ {
			f, _ := X.Fiber(k, i)
			for j := range f {
				f[j] = uint8(rng.Intn(2))
			}
			_ = ref.Set(k, i, uint8(rng.Intn(2)))
		}
	}
	sk, err := codedist.Compute(X, ref)
	require.NoError(t, err)
	rep, err := metrics.Compute(sk, ref)
	require.NoError(t, err)

	for k := 0; k < m; k++ {
		list := rep.ByClass[k]
		require.Len(t, list, rep.MaxRadius[k])
		for idx, rm := range list {
			require.Equal(t, idx+1, rm.Radius)
			require.Equal(t, rm.Reliable, metrics.IsReliable(rm.D1, rm.D2))
			if idx > 0 {
				require.GreaterOrEqual(t, rm.K1, list[idx-1].K1)
				require.GreaterOrEqual(t, rm.K3, list[idx-1].K3)
			}
		}
	}
}

func TestCompute_IdenticalReferencesYieldEmptyLists(t *testing.T) {
	X, _ := matrix.CubeFrom([][][]uint8{{{1}, {0}}, {{1}, {0}}})
	ref, _ := matrix.GridFrom([][]uint8{{1, 0}, {1, 0}})
	sk, err := codedist.Compute(X, ref)
	require.NoError(t, err)

	rep, err := metrics.Compute(sk, ref)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0}, rep.MaxRadius)
	require.NotNil(t, rep.ByClass[0])
	require.Empty(t, rep.ByClass[0])
	require.Empty(t, rep.ByClass[1])
}

// TestCompute_ThreeClassesAggregateForeign covers the m>2 generalization:
// the nearest foreign reference bounds the radius and every foreign
// realization counts toward K3.
func TestCompute_ThreeClassesAggregateForeign(t *testing.T) {
	X, err := matrix.CubeFrom([][][]uint8{
		{{1, 1}, {1, 1}, {1, 1}}, // class 0: [1,1,1] twice
		{{0, 0}, {0, 0}, {0, 0}}, // class 1: [0,0,0] twice
		{{1, 1}, {0, 0}, {0, 0}}, // class 2: [1,0,0] twice
	})
	require.NoError(t, err)
	ref, _ := matrix.GridFrom([][]uint8{{1, 1, 1}, {0, 0, 0}, {1, 0, 0}})
	sk, err := codedist.Compute(X, ref)
	require.NoError(t, err)

	rep, err := metrics.Compute(sk, ref)
	require.NoError(t, err)
	require.Equal(t, []int{2, 1, 1}, rep.MaxRadius)

	r1 := rep.ByClass[0][0]
	assert.Equal(t, 4, r1.ForeignSampleSize)
	assert.Equal(t, 0, r1.K3, "class 1 at 3, class 2 at 2")
	r2 := rep.ByClass[0][1]
	assert.Equal(t, 2, r2.K3)
	assert.Equal(t, 2, r2.K4)
	assert.Equal(t, 0.5, r2.Beta)
	assert.Equal(t, 0.5, r2.D2)
	assert.True(t, r2.Reliable)
}

func TestCompute_SingleClass(t *testing.T) {
	X, _ := matrix.CubeFrom([][][]uint8{{{1, 0}}})
	ref, _ := matrix.GridFrom([][]uint8{{1}})
	sk, err := codedist.Compute(X, ref)
	require.NoError(t, err)
	rep, err := metrics.Compute(sk, ref)
	require.NoError(t, err)
	require.Equal(t, []int{0}, rep.MaxRadius)
	require.Empty(t, rep.ByClass[0])
}

func TestCompute_Errors(t *testing.T) {
	_, err := metrics.Compute(nil, nil)
	require.ErrorIs(t, err, metrics.ErrNilInput)

	notSquare, _ := matrix.NewCube[int](2, 3, 4)
	ref, _ := matrix.NewGrid[uint8](2, 5)
	_, err = metrics.Compute(notSquare, ref)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	sk, _ := matrix.NewCube[int](3, 3, 4)
	_, err = metrics.Compute(sk, ref)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	sk2, _ := matrix.NewCube[int](2, 2, 1)
	ref2, _ := matrix.GridFrom([][]uint8{{1}, {0}})
	require.NoError(t, sk2.Set(0, 1, 0, 9))
	_, err = metrics.Compute(sk2, ref2)
	require.ErrorIs(t, err, matrix.ErrValueRange)
}
