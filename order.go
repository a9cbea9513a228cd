package forGKlibGo

import "cmp"

// Order is a three-way comparison: negative if a sorts before b, positive if
// a sorts after b, and zero if the two are order-equivalent.
//
// Descending orders are built from ascending ones with Reverse, so the two
// cannot drift apart.
type Order[T any] func(a, b T) int

// Ascending is the native order of T. NaN sorts before every other float.
func Ascending[T cmp.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

// Reverse is the inverse of o: the same comparison with its arguments swapped.
func Reverse[T any](o Order[T]) Order[T] {
	return func(a, b T) int {
		return o(b, a)
	}
}

// Then orders by primary and breaks ties with secondary.
func Then[T any](primary, secondary Order[T]) Order[T] {
	return func(a, b T) int {
		if c := primary(a, b); c != 0 {
			return c
		}
		return secondary(a, b)
	}
}

// By orders values of T by the field that key extracts from them.
func By[T, F any](key func(T) F, o Order[F]) Order[T] {
	return func(a, b T) int {
		return o(key(a), key(b))
	}
}

// Less is the strict weak ordering induced by o.
func Less[T any](o Order[T]) func(a, b T) bool {
	return func(a, b T) bool {
		return o(a, b) < 0
	}
}

func KeyOrder[K cmp.Ordered, V any]() Order[KV[K, V]] {
	return func(a, b KV[K, V]) int {
		return cmp.Compare(a.Key, b.Key)
	}
}

func ValueOrder[K, V cmp.Ordered]() Order[KV[K, V]] {
	return func(a, b KV[K, V]) int {
		return cmp.Compare(a.Val, b.Val)
	}
}

// KeyThenValueOrder is Then(KeyOrder, ValueOrder) written as a single
// closure, so that building it does not allocate.
func KeyThenValueOrder[K, V cmp.Ordered]() Order[KV[K, V]] {
	return func(a, b KV[K, V]) int {
		if c := cmp.Compare(a.Key, b.Key); c != 0 {
			return c
		}
		return cmp.Compare(a.Val, b.Val)
	}
}

// EdgeOrder is lexicographic on (U, V). The weight is ignored. Like
// KeyThenValueOrder it captures nothing and does not allocate.
func EdgeOrder[N cmp.Ordered, W any]() Order[UVW[N, W]] {
	return func(a, b UVW[N, W]) int {
		if c := cmp.Compare(a.U, b.U); c != 0 {
			return c
		}
		return cmp.Compare(a.V, b.V)
	}
}
