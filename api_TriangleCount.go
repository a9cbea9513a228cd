package forGKlibGo

import (
	"errors"

	"github.com/intel/forGoParallel/parallel"
	GrB "github.com/intel/forGraphBLASGo/GrB"
)

type TriangleCountPresort int

const (
	NoSort                 TriangleCountPresort = 0
	SortByDegreeAscending  TriangleCountPresort = 1
	SortByDegreeDescending TriangleCountPresort = -1
	AutoSelectSort         TriangleCountPresort = 2
)

var AllTriangleCountPresorts = []TriangleCountPresort{NoSort, SortByDegreeAscending, SortByDegreeDescending, AutoSelectSort}

type TriangleCountMethod int

const (
	Burkhardt TriangleCountMethod = iota + 1
	Sandia
	Sandia2
)

var AllTriangleCountMethods = []TriangleCountMethod{Burkhardt, Sandia, Sandia2}

func TriangleCount[T GrB.Number](G *Graph[T]) (int, error) {
	presort := AutoSelectSort
	return TriangleCountMethods(G, Sandia, &presort)
}

// intersectionSize counts the common elements of two ascending slices.
func intersectionSize(x, y []int) (n int) {
	for len(x) > 0 && len(y) > 0 {
		switch {
		case x[0] < y[0]:
			x = x[1:]
		case x[0] > y[0]:
			y = y[1:]
		default:
			n++
			x, y = x[1:], y[1:]
		}
	}
	return
}

// triangularCSR keeps the entries strictly below (lower) or above the
// diagonal of the adjacency structure of G relabeled by perm.
func triangularCSR[T GrB.Number](G *Graph[T], perm []int, lower bool) *CSR[struct{}] {
	var inv []int
	if perm != nil {
		inv = make([]int, G.N)
		parallel.Range(0, G.N, func(low, high int) {
			for k := low; k < high; k++ {
				inv[perm[k]] = k
			}
		})
	}
	edges := make([]UVW[int, struct{}], 0, len(G.Edges)/2)
	for _, e := range G.Edges {
		u, v := e.U, e.V
		if inv != nil {
			u, v = inv[u], inv[v]
		}
		if (lower && v < u) || (!lower && v > u) {
			edges = append(edges, UVW[int, struct{}]{U: u, V: v})
		}
	}
	csr, err := EdgesToCSR(G.N, edges)
	try(err)
	return csr
}

// TriangleCountMethods counts the triangles of G with method. A nil presort
// is AutoSelectSort; otherwise *presort is updated to the presort used.
func TriangleCountMethods[T GrB.Number](G *Graph[T], method TriangleCountMethod, presort *TriangleCountPresort) (ntriangles int, err error) {
	if err = G.Check(); err != nil {
		return
	}
	if G.NSelfEdges != 0 {
		return 0, errors.New("G must not have self edges")
	}
	if G.Kind != AdjacencyUndirected {
		return 0, errors.New("G must be undirected")
	}
	n := G.N
	if presort == nil {
		auto := AutoSelectSort
		presort = &auto
	}
	if *presort == AutoSelectSort {
		*presort = NoSort
		if method != Burkhardt {
			const nSamples = 1000
			if n > nSamples && float64(G.NEdges())/float64(n) >= 10 {
				mean, median := G.SampleDegree(nSamples, uint64(n))
				if mean > 4*median {
					switch method {
					case Sandia:
						*presort = SortByDegreeAscending
					case Sandia2:
						*presort = SortByDegreeDescending
					}
				}
			}
		}
	}
	var perm []int
	if *presort != NoSort {
		perm = G.SortByDegree(*presort > 0)
	}

	count := func(A *CSR[struct{}]) int {
		total := 0
		for i := 0; i < n; i++ {
			Ai := A.Neighbors(i)
			for _, j := range Ai {
				total += intersectionSize(Ai, A.Neighbors(j))
			}
		}
		return total
	}

	switch method {
	case Burkhardt:
		ntriangles = count(Structure(G.CSR)) / 6
	case Sandia:
		ntriangles = count(triangularCSR(G, perm, true))
	case Sandia2:
		ntriangles = count(triangularCSR(G, perm, false))
	default:
		return 0, errors.New("unknown TriangleCount method")
	}
	return
}
