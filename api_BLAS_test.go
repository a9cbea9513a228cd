package forGKlibGo_test

import (
	"math"
	"testing"

	GK "github.com/intel/forGKlibGo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegerVectorRoutines(t *testing.T) {
	x := make([]int, 5)
	GK.Set(x, 7)
	assert.Equal(t, []int{7, 7, 7, 7, 7}, x)

	GK.IncSet(x, 10, -2)
	assert.Equal(t, []int{10, 8, 6, 4, 2}, x)

	y := []int{3, -1, 9, 9, 0}
	assert.Equal(t, 9, GK.Max(y))
	assert.Equal(t, -1, GK.Min(y))
	assert.Equal(t, 2, GK.ArgMax(y))
	assert.Equal(t, 1, GK.ArgMin(y))
	assert.Equal(t, -1, GK.ArgMax([]int{}))
	assert.Equal(t, -1, GK.ArgMin([]int32(nil)))

	assert.Equal(t, 20, GK.Sum(y))
	assert.Equal(t, 10*3+8*-1+6*9+4*9+2*0, GK.Dot(x, y))

	GK.Axpy(2, []int{1, 1, 1}, y)
	assert.Equal(t, []int{5, 1, 11, 9, 0}, y)

	GK.Scale(y, -1)
	assert.Equal(t, []int{-5, -1, -11, -9, 0}, y)
}

func TestArgMaxN(t *testing.T) {
	x := []int64{4, 8, 1, 8, 6}
	for k, want := range []int{1, 3, 4, 0, 2} {
		got, err := GK.ArgMaxN(x, k+1)
		require.NoError(t, err)
		assert.Equal(t, want, got, "k=%v", k+1)
	}
	_, err := GK.ArgMaxN(x, 0)
	require.ErrorIs(t, err, GK.ErrInvalidArgument)
	_, err = GK.ArgMaxN(x, 6)
	require.ErrorIs(t, err, GK.ErrInvalidArgument)
	assert.Equal(t, []int64{4, 8, 1, 8, 6}, x)

	r, err := GK.RArgMaxN([]float64{0.1, 0.9, 0.5}, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, r)
}

func TestRealVectorRoutines(t *testing.T) {
	x := []float64{3, -4, 0.5}
	assert.InDelta(t, -0.5, GK.RSum(x), 1e-12)
	assert.InDelta(t, math.Sqrt(25.25), GK.RNorm2(x), 1e-12)
	assert.InDelta(t, 3*1+(-4)*2+0.5*4, GK.RDot(x, []float64{1, 2, 4}), 1e-12)
	assert.Equal(t, 3.0, GK.RMax(x))
	assert.Equal(t, -4.0, GK.RMin(x))
	assert.Equal(t, 0, GK.RArgMax(x))
	assert.Equal(t, 1, GK.RArgMin(x))
	assert.Equal(t, -1, GK.RArgMax(nil))
	assert.Equal(t, -1, GK.RArgMin(nil))

	y := []float64{1, 1, 1}
	GK.RAxpy(2, x, y)
	assert.Equal(t, []float64{7, -7, 2}, y)

	GK.RScale(y, 0.5)
	assert.Equal(t, []float64{3.5, -3.5, 1}, y)
}
