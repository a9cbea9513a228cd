package forGKlibGo

import (
	"fmt"

	"github.com/intel/forGoParallel/parallel"
	GrB "github.com/intel/forGraphBLASGo/GrB"
)

// Graph is an n-node graph kept as a sorted edge list together with the CSR
// structure and the row degrees derived from it.
type Graph[T GrB.Number] struct {
	N     int
	Kind  Kind
	Edges []UVW[int, T]

	CSR        *CSR[T]
	RowDegree  []int
	NSelfEdges int
}

// NewGraph takes ownership of edges and sorts them.
func NewGraph[T GrB.Number](n int, edges []UVW[int, T], kind Kind) (*Graph[T], error) {
	G := &Graph[T]{N: n, Kind: kind, Edges: edges}
	if err := G.rebuild(); err != nil {
		return nil, err
	}
	return G, nil
}

func (G *Graph[T]) rebuild() error {
	csr, err := EdgesToCSR(G.N, G.Edges)
	if err != nil {
		return err
	}
	G.CSR = csr
	G.RowDegree = csr.Degrees()
	G.NSelfEdges = 0
	for _, e := range G.Edges {
		if e.U == e.V {
			G.NSelfEdges++
		}
	}
	return nil
}

func (G *Graph[T]) NEdges() int {
	return len(G.Edges)
}

func (G *Graph[T]) DeleteSelfEdges() {
	if G.NSelfEdges == 0 {
		return
	}
	edges := G.Edges[:0]
	for _, e := range G.Edges {
		if e.U != e.V {
			edges = append(edges, e)
		}
	}
	G.Edges = edges
	try(G.rebuild())
}

// MakeSymmetric adds the reverse of every edge and drops duplicate (u, v)
// pairs. Which weight survives among duplicates is unspecified.
func (G *Graph[T]) MakeSymmetric() {
	m := len(G.Edges)
	edges := make([]UVW[int, T], m, 2*m)
	copy(edges, G.Edges)
	for _, e := range G.Edges {
		if e.U != e.V {
			edges = append(edges, UVW[int, T]{U: e.V, V: e.U, W: e.W})
		}
	}
	try(SortEdgesAsc(len(edges), edges))
	G.Edges = compactEdges(edges)
	G.Kind = AdjacencyUndirected
	try(G.rebuild())
}

func compactEdges[T GrB.Number](edges []UVW[int, T]) []UVW[int, T] {
	if len(edges) < 2 {
		return edges
	}
	k := 1
	for i := 1; i < len(edges); i++ {
		if edges[i].U != edges[k-1].U || edges[i].V != edges[k-1].V {
			edges[k] = edges[i]
			k++
		}
	}
	return edges[:k]
}

// Matrix builds the GraphBLAS adjacency matrix of G.
func (G *Graph[T]) Matrix() (*GrB.Matrix[T], error) {
	m := len(G.Edges)
	rows := make([]int, m)
	cols := make([]int, m)
	vals := make([]T, m)
	parallel.Range(0, m, func(low, high int) {
		for i := low; i < high; i++ {
			e := G.Edges[i]
			rows[i], cols[i], vals[i] = e.U, e.V, e.W
		}
	})
	A, err := GrB.MatrixNew[T](G.N, G.N)
	if err != nil {
		return nil, fmt.Errorf("matrix %vx%v: %w", G.N, G.N, err)
	}
	return A, A.Build(rows, cols, vals, func(x, _ T) T { return x })
}
