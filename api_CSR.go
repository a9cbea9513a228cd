package forGKlibGo

import (
	"fmt"

	"github.com/intel/forGoParallel/parallel"
)

// CSR is a compressed sparse row adjacency structure: the neighbors of node
// i are Adj[Ptr[i]:Ptr[i+1]], with edge weights at the same positions in Wgt.
type CSR[W any] struct {
	Ptr []int
	Adj []int
	Wgt []W
}

// Array2CSR buckets the positions of array by value. Positions i with
// array[i] == r end up in ind[ptr[r]:ptr[r+1]], in increasing order.
func Array2CSR(rng int, array []int) (ptr, ind []int, err error) {
	if rng < 0 {
		return nil, nil, fmt.Errorf("%w: negative range %v", ErrInvalidArgument, rng)
	}
	for i, r := range array {
		if r < 0 || r >= rng {
			return nil, nil, fmt.Errorf("%w: array[%v] = %v outside [0, %v)", ErrInvalidArgument, i, r, rng)
		}
	}
	ptr = make([]int, rng+1)
	ind = make([]int, len(array))
	for _, r := range array {
		ptr[r]++
	}
	makeCSR(ptr)
	for i, r := range array {
		ind[ptr[r]] = i
		ptr[r]++
	}
	shiftCSR(ptr)
	return ptr, ind, nil
}

// makeCSR turns counts in ptr[:len(ptr)-1] into start offsets.
func makeCSR(ptr []int) {
	n := len(ptr) - 1
	for i := 1; i < n; i++ {
		ptr[i] += ptr[i-1]
	}
	for i := n; i > 0; i-- {
		ptr[i] = ptr[i-1]
	}
	ptr[0] = 0
}

// shiftCSR undoes the advance of every bucket start done while scattering.
func shiftCSR(ptr []int) {
	for i := len(ptr) - 1; i > 0; i-- {
		ptr[i] = ptr[i-1]
	}
	ptr[0] = 0
}

// EdgesToCSR sorts edges in place and builds the CSR structure of an n-node
// graph from them. Every endpoint must be in [0, n).
func EdgesToCSR[W any](n int, edges []UVW[int, W]) (*CSR[W], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative node count %v", ErrInvalidArgument, n)
	}
	for i, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("%w: edge %v (%v, %v) outside [0, %v)", ErrInvalidArgument, i, e.U, e.V, n)
		}
	}
	if err := SortEdgesAsc(len(edges), edges); err != nil {
		return nil, err
	}
	m := len(edges)
	csr := &CSR[W]{
		Ptr: make([]int, n+1),
		Adj: make([]int, m),
		Wgt: make([]W, m),
	}
	for _, e := range edges {
		csr.Ptr[e.U+1]++
	}
	for i := 0; i < n; i++ {
		csr.Ptr[i+1] += csr.Ptr[i]
	}
	parallel.Range(0, m, func(low, high int) {
		for i := low; i < high; i++ {
			csr.Adj[i] = edges[i].V
			csr.Wgt[i] = edges[i].W
		}
	})
	return csr, nil
}

func (csr *CSR[W]) NumNodes() int {
	return len(csr.Ptr) - 1
}

func (csr *CSR[W]) Neighbors(i int) []int {
	return csr.Adj[csr.Ptr[i]:csr.Ptr[i+1]]
}

func (csr *CSR[W]) Degrees() []int {
	n := csr.NumNodes()
	degrees := make([]int, n)
	parallel.Range(0, n, func(low, high int) {
		for i := low; i < high; i++ {
			degrees[i] = csr.Ptr[i+1] - csr.Ptr[i]
		}
	})
	return degrees
}
