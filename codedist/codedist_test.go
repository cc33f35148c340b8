// SPDX-License-Identifier: MIT

package codedist_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kfe/codedist"
	"github.com/katalvlaran/kfe/matrix"
)

func TestHamming(t *testing.T) {
	cases := []struct {
		name string
		a, b []uint8
		want int
	}{
		{"Empty", nil, nil, 0},
		{"Equal", []uint8{1, 0, 1}, []uint8{1, 0, 1}, 0},
		{"AllDiffer", []uint8{1, 1}, []uint8{0, 0}, 2},
		{"One", []uint8{1, 0, 0, 1}, []uint8{1, 1, 0, 1}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := codedist.Hamming(tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, d)
		})
	}

	_, err := codedist.Hamming([]uint8{1}, []uint8{1, 0})
	require.ErrorIs(t, err, codedist.ErrLengthMismatch)
}

// TestCompute_HandExample checks every SK entry on a 2×3×2 case.
func TestCompute_HandExample(t *testing.T) {
	X, err := matrix.CubeFrom([][][]uint8{
		{{1, 1}, {1, 0}, {0, 0}}, // class 0 realizations: [1,1,0] and [1,0,0]
		{{0, 1}, {0, 1}, {1, 1}}, // class 1 realizations: [0,0,1] and [1,1,1]
	})
	require.NoError(t, err)
	ref, err := matrix.GridFrom([][]uint8{{1, 1, 0}, {0, 0, 1}})
	require.NoError(t, err)

	sk, err := codedist.Compute(X, ref)
	require.NoError(t, err)
	require.Equal(t, matrix.Shape{Classes: 2, Rows: 2, Cols: 2}, sk.Shape())

	want := [][][]int{
		{{0, 1}, {3, 1}},
		{{3, 2}, {0, 2}},
	}
	for k := 0; k < 2; k++ {
		for c := 0; c < 2; c++ {
			f, _ := sk.Fiber(k, c)
			assert.Equalf(t, want[k][c], f, "SK[%d,%d,:]", k, c)
		}
	}
}

// TestCompute_MatchesHamming cross-checks Compute against Hamming on random
// data and verifies the [0,N] bound and the zero-on-match property.
func TestCompute_MatchesHamming(t *testing.T) {
	const m, N, n = 3, 11, 6
	rng := rand.New(rand.NewSource(3))
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
	// Make realization 0 of class 1 identical to reference vector 1.
	r1, _ := ref.Row(1)
	for i := 0; i < N; i++ {
		_ = X.Set(1, i, 0, r1[i])
	}

	sk, err := codedist.Compute(X, ref)
	require.NoError(t, err)

	for k := 0; k < m; k++ {
		rk, _ := ref.Row(k)
		for c := 0; c < m; c++ {
			for j := 0; j < n; j++ {
				col, _ := X.Column(c, j)
				want, _ := codedist.Hamming(rk, col)
				got, _ := sk.At(k, c, j)
				require.Equal(t, want, got)
				require.GreaterOrEqual(t, got, 0)
				require.LessOrEqual(t, got, N)
			}
		}
	}
	d, _ := sk.At(1, 1, 0)
	require.Zero(t, d)
}

func TestCompute_Errors(t *testing.T) {
	X, _ := matrix.NewCube[uint8](2, 3, 4)
	short, _ := matrix.NewGrid[uint8](2, 2)
	fewer, _ := matrix.NewGrid[uint8](1, 3)

	_, err := codedist.Compute(nil, short)
	require.ErrorIs(t, err, codedist.ErrNilInput)
	_, err = codedist.Compute(X, nil)
	require.ErrorIs(t, err, codedist.ErrNilInput)
	_, err = codedist.Compute(X, short)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = codedist.Compute(X, fewer)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestReferenceDistances(t *testing.T) {
	ref, _ := matrix.GridFrom([][]uint8{{1, 1, 0}, {0, 0, 0}, {1, 1, 1}})
	d, err := codedist.ReferenceDistances(ref)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 2, 1}, {2, 0, 3}, {1, 3, 0}}, d.ToSlices())

	_, err = codedist.ReferenceDistances(nil)
	require.ErrorIs(t, err, codedist.ErrNilInput)
}
