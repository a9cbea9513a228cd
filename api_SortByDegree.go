package forGKlibGo

import "github.com/intel/forGoParallel/parallel"

// SortByDegree returns the node permutation ordered by degree, ties broken by
// node id.
func SortByDegree(degree []int, ascending bool) []int {
	n := len(degree)
	D := make([]IKV, n)
	if ascending {
		parallel.Range(0, n, func(low, high int) {
			for i := low; i < high; i++ {
				D[i] = IKV{Key: degree[i], Val: i}
			}
		})
	} else {
		parallel.Range(0, n, func(low, high int) {
			for i := low; i < high; i++ {
				D[i] = IKV{Key: -degree[i], Val: i}
			}
		})
	}
	try(SortKVByKeyThenValue(n, D))
	P := make([]int, n)
	parallel.Range(0, n, func(low, high int) {
		for i := low; i < high; i++ {
			P[i] = D[i].Val
		}
	})
	return P
}

func (G *Graph[T]) SortByDegree(ascending bool) []int {
	return SortByDegree(G.RowDegree, ascending)
}
