package forGKlibGo_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	GK "github.com/intel/forGKlibGo"
	"github.com/stretchr/testify/require"
)

func TestArray2CSR(t *testing.T) {
	ptr, ind, err := GK.Array2CSR(4, []int{2, 0, 2, 3, 0, 2})
	require.NoError(t, err)
	if diff := cmp.Diff([]int{0, 2, 2, 5, 6}, ptr); diff != "" {
		t.Errorf("ptr mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 4, 0, 2, 5, 3}, ind); diff != "" {
		t.Errorf("ind mismatch (-want +got):\n%s", diff)
	}

	ptr, ind, err = GK.Array2CSR(0, nil)
	require.NoError(t, err)
	require.Equal(t, []int{0}, ptr)
	require.Empty(t, ind)

	_, _, err = GK.Array2CSR(2, []int{0, 2})
	require.ErrorIs(t, err, GK.ErrInvalidArgument)
	_, _, err = GK.Array2CSR(-1, nil)
	require.ErrorIs(t, err, GK.ErrInvalidArgument)
}

func TestEdgesToCSR(t *testing.T) {
	edges := []GK.UVW[int, float64]{
		{U: 2, V: 0, W: 2.0},
		{U: 0, V: 3, W: 0.3},
		{U: 0, V: 1, W: 0.1},
		{U: 3, V: 3, W: 3.3},
		{U: 2, V: 1, W: 2.1},
	}
	csr, err := GK.EdgesToCSR(4, edges)
	require.NoError(t, err)
	want := &GK.CSR[float64]{
		Ptr: []int{0, 2, 2, 4, 5},
		Adj: []int{1, 3, 0, 1, 3},
		Wgt: []float64{0.1, 0.3, 2.0, 2.1, 3.3},
	}
	if diff := cmp.Diff(want, csr); diff != "" {
		t.Errorf("CSR mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, 4, csr.NumNodes())
	require.Equal(t, []int{2, 0, 2, 1}, csr.Degrees())
	require.Equal(t, []int{0, 1}, csr.Neighbors(2))
	require.Equal(t, GK.UVW[int, float64]{U: 0, V: 1, W: 0.1}, edges[0])

	_, err = GK.EdgesToCSR(3, edges)
	require.ErrorIs(t, err, GK.ErrInvalidArgument)

	empty, err := GK.EdgesToCSR[int](3, nil)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 0, 0}, empty.Ptr)
}
