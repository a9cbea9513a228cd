package forGKlibGo

import (
	"errors"

	"github.com/intel/forGoParallel/parallel"
)

func (G *Graph[T]) Check() error {
	csr := G.CSR
	if csr == nil {
		return errors.New("graph has no CSR structure")
	}
	if len(csr.Ptr) != G.N+1 {
		return errors.New("CSR ptr has the wrong length")
	}
	if csr.Ptr[0] != 0 || csr.Ptr[G.N] != len(G.Edges) || len(csr.Adj) != len(G.Edges) {
		return errors.New("CSR ptr does not cover the edge list")
	}
	if len(G.RowDegree) != G.N {
		return errors.New("row degree has the wrong length")
	}
	if ok, err := IsSortedFunc(len(G.Edges), G.Edges, EdgeOrder[int, T]()); err != nil {
		return err
	} else if !ok {
		return errors.New("edge list is not sorted")
	}
	ok := parallel.RangeAnd(0, G.N, func(low, high int) bool {
		for i := low; i < high; i++ {
			if csr.Ptr[i] > csr.Ptr[i+1] || csr.Ptr[i+1] > len(csr.Adj) || csr.Ptr[i+1]-csr.Ptr[i] != G.RowDegree[i] {
				return false
			}
			adj := csr.Neighbors(i)
			if sorted, _ := IsSortedFunc(len(adj), adj, Ascending[int]); !sorted {
				return false
			}
		}
		return true
	})
	if !ok {
		return errors.New("CSR rows are inconsistent")
	}
	return nil
}
