package forGKlibGo_test

import (
	"fmt"
	"strings"
	"testing"

	GK "github.com/intel/forGKlibGo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// karate is Zachary's karate club, one-based, upper triangle only.
var karate = map[int][]int{
	1:  {2, 3, 4, 5, 6, 7, 8, 9, 11, 12, 13, 14, 18, 20, 22, 32},
	2:  {3, 4, 8, 14, 18, 20, 22, 31},
	3:  {4, 8, 9, 10, 14, 28, 29, 33},
	4:  {8, 13, 14},
	5:  {7, 11},
	6:  {7, 11, 17},
	7:  {17},
	9:  {31, 33, 34},
	10: {34},
	14: {34},
	15: {33, 34},
	16: {33, 34},
	19: {33, 34},
	20: {34},
	21: {33, 34},
	23: {33, 34},
	24: {26, 28, 30, 33, 34},
	25: {26, 28, 32},
	26: {32},
	27: {30, 34},
	28: {34},
	29: {32, 34},
	30: {33, 34},
	31: {33, 34},
	32: {33, 34},
	33: {34},
}

const (
	karateNodes     = 34
	karateEdges     = 78
	karateTriangles = 45
)

func karateEdgeList() []GK.UVW[int, int64] {
	var edges []GK.UVW[int, int64]
	for u, vs := range karate {
		for _, v := range vs {
			edges = append(edges, GK.UVW[int, int64]{U: u - 1, V: v - 1, W: 1})
		}
	}
	return edges
}

func karateGraph(t *testing.T) *GK.Graph[int64] {
	t.Helper()
	G, err := GK.NewGraph(karateNodes, karateEdgeList(), GK.AdjacencyDirected)
	require.NoError(t, err)
	require.NoError(t, G.Check())
	require.Equal(t, karateEdges, G.NEdges())
	G.MakeSymmetric()
	require.NoError(t, G.Check())
	return G
}

func karateMatrixMarket() string {
	var b strings.Builder
	b.WriteString("%%MatrixMarket matrix coordinate pattern symmetric\n")
	b.WriteString("% Zachary's karate club\n")
	b.WriteString("34 34 78\n")
	for u, vs := range karate {
		for _, v := range vs {
			fmt.Fprintf(&b, "%v %v\n", v, u)
		}
	}
	return b.String()
}

func TestGraph(t *testing.T) {
	G := karateGraph(t)
	assert.Equal(t, GK.AdjacencyUndirected, G.Kind)
	assert.Equal(t, 2*karateEdges, G.NEdges())
	assert.Zero(t, G.NSelfEdges)
	assert.Equal(t, 17, G.RowDegree[33])
	assert.Equal(t, 16, G.RowDegree[0])
	assert.Equal(t, 12, G.RowDegree[32])
	assert.Equal(t, 2*karateEdges, GK.Sum(G.RowDegree))

	sorted, err := GK.IsSortedFunc(G.NEdges(), G.Edges, GK.EdgeOrder[int, int64]())
	require.NoError(t, err)
	assert.True(t, sorted)

	G.MakeSymmetric()
	assert.Equal(t, 2*karateEdges, G.NEdges())

	P := G.SortByDegree(false)
	assert.Equal(t, []int{33, 0, 32}, P[:3])

	A, err := G.Matrix()
	require.NoError(t, err)
	nvals, err := A.NVals()
	require.NoError(t, err)
	assert.Equal(t, 2*karateEdges, nvals)
}

func TestDeleteSelfEdges(t *testing.T) {
	edges := []GK.UVW[int, int64]{
		{U: 0, V: 0, W: 5}, {U: 0, V: 1, W: 1}, {U: 2, V: 2, W: 5}, {U: 1, V: 2, W: 1},
	}
	G, err := GK.NewGraph(3, edges, GK.AdjacencyDirected)
	require.NoError(t, err)
	assert.Equal(t, 2, G.NSelfEdges)
	_, err = GK.TriangleCount(G)
	assert.Error(t, err)

	G.DeleteSelfEdges()
	require.NoError(t, G.Check())
	assert.Zero(t, G.NSelfEdges)
	assert.Equal(t, []GK.UVW[int, int64]{{U: 0, V: 1, W: 1}, {U: 1, V: 2, W: 1}}, G.Edges)
	assert.Equal(t, []int{1, 1, 0}, G.RowDegree)

	_, err = GK.TriangleCount(G)
	assert.Error(t, err, "directed graphs are rejected")
}

func TestNewGraphInvalid(t *testing.T) {
	_, err := GK.NewGraph(2, []GK.UVW[int, int64]{{U: 0, V: 2}}, GK.AdjacencyDirected)
	assert.ErrorIs(t, err, GK.ErrInvalidArgument)
}

func TestTriangleCount(t *testing.T) {
	G := karateGraph(t)
	ntriangles, err := GK.TriangleCount(G)
	require.NoError(t, err)
	assert.Equal(t, karateTriangles, ntriangles)

	for _, method := range GK.AllTriangleCountMethods {
		ntriangles, err := GK.TriangleCountMethods(G, method, nil)
		require.NoError(t, err)
		assert.Equal(t, karateTriangles, ntriangles, "method %v default presort", method)

		for _, presort := range GK.AllTriangleCountPresorts {
			p := presort
			ntriangles, err := GK.TriangleCountMethods(G, method, &p)
			require.NoError(t, err)
			assert.Equal(t, karateTriangles, ntriangles, "method %v presort %v", method, presort)
			assert.NotEqual(t, GK.AutoSelectSort, p)
		}
	}
}

func TestReadGraph(t *testing.T) {
	logger := zaptest.NewLogger(t)
	G, err := GK.ReadGraph[int64](logger, strings.NewReader(karateMatrixMarket()), false, true)
	require.NoError(t, err)
	assert.Equal(t, karateNodes, G.N)
	assert.Equal(t, GK.AdjacencyUndirected, G.Kind)
	assert.Equal(t, 2*karateEdges, G.NEdges())

	ntriangles, err := GK.TriangleCount(G)
	require.NoError(t, err)
	assert.Equal(t, karateTriangles, ntriangles)

	_, err = GK.ReadGraph[int64](logger, strings.NewReader("%%MatrixMarket matrix coordinate pattern general\n2 3 0\n"), false, false)
	assert.Error(t, err)
}

func TestReadGraphDirected(t *testing.T) {
	const input = `%%MatrixMarket matrix coordinate integer general
3 3 4
1 2 7
2 3 8
3 1 9
2 2 1
`
	logger := zaptest.NewLogger(t)
	G, err := GK.ReadGraph[int32](logger, strings.NewReader(input), false, false)
	require.NoError(t, err)
	assert.Equal(t, GK.AdjacencyDirected, G.Kind)
	assert.Equal(t, 1, G.NSelfEdges)
	assert.Equal(t, []GK.UVW[int, int32]{
		{U: 0, V: 1, W: 7}, {U: 1, V: 1, W: 1}, {U: 1, V: 2, W: 8}, {U: 2, V: 0, W: 9},
	}, G.Edges)

	G, err = GK.ReadGraph[int32](logger, strings.NewReader(input), true, true)
	require.NoError(t, err)
	assert.Equal(t, GK.AdjacencyUndirected, G.Kind)
	assert.Zero(t, G.NSelfEdges)
	assert.Equal(t, 6, G.NEdges())

	ntriangles, err := GK.TriangleCount(G)
	require.NoError(t, err)
	assert.Equal(t, 1, ntriangles)
}
