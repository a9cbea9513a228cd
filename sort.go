package forGKlibGo

import (
	"cmp"
	"slices"
)

// SortFunc sorts base[:n] in place by order. The sort is not stable, and
// base[n:] is left untouched. It fails with ErrInvalidArgument, without
// modifying base, if n is negative or larger than len(base).
func SortFunc[T any](n int, base []T, order Order[T]) error {
	if err := checkCount(n, len(base)); err != nil {
		return err
	}
	if n < 2 {
		return nil
	}
	slices.SortFunc(base[:n], order)
	return nil
}

// IsSortedFunc reports whether base[:n] is ordered by order.
func IsSortedFunc[T any](n int, base []T, order Order[T]) (bool, error) {
	if err := checkCount(n, len(base)); err != nil {
		return false, err
	}
	return slices.IsSortedFunc(base[:n], order), nil
}

func SortAsc[T cmp.Ordered](n int, base []T) error {
	return SortFunc(n, base, Ascending[T])
}

func SortDesc[T cmp.Ordered](n int, base []T) error {
	return SortFunc(n, base, Reverse[T](Ascending[T]))
}

func SortCharsAsc(n int, base []byte) error { return SortAsc(n, base) }
func SortCharsDesc(n int, base []byte) error { return SortDesc(n, base) }
func SortIntsAsc(n int, base []int32) error { return SortAsc(n, base) }
func SortIntsDesc(n int, base []int32) error { return SortDesc(n, base) }
func SortI64Asc(n int, base []int64) error { return SortAsc(n, base) }
func SortI64Desc(n int, base []int64) error { return SortDesc(n, base) }
func SortIdxAsc(n int, base []int) error { return SortAsc(n, base) }
func SortIdxDesc(n int, base []int) error { return SortDesc(n, base) }
func SortFloatsAsc(n int, base []float32) error { return SortAsc(n, base) }
func SortFloatsDesc(n int, base []float32) error { return SortDesc(n, base) }
func SortDoublesAsc(n int, base []float64) error { return SortAsc(n, base) }
func SortDoublesDesc(n int, base []float64) error { return SortDesc(n, base) }

// SortKVAsc sorts by key only; records with equal keys end up in an
// unspecified relative order.
func SortKVAsc[K cmp.Ordered, V any](n int, base []KV[K, V]) error {
	return SortFunc(n, base, KeyOrder[K, V]())
}

func SortKVDesc[K cmp.Ordered, V any](n int, base []KV[K, V]) error {
	return SortFunc(n, base, Reverse(KeyOrder[K, V]()))
}

// SortKVByKeyThenValue sorts by key and orders records with equal keys by
// value, so the result is fully determined by the multiset of records.
func SortKVByKeyThenValue[K, V cmp.Ordered](n int, base []KV[K, V]) error {
	return SortFunc(n, base, KeyThenValueOrder[K, V]())
}

// SortEdgesAsc sorts edges lexicographically on (U, V).
func SortEdgesAsc[N cmp.Ordered, W any](n int, base []UVW[N, W]) error {
	return SortFunc(n, base, EdgeOrder[N, W]())
}
