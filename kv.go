package forGKlibGo

import "cmp"

// KV is a key with an auxiliary value that travels with it. Only Key takes
// part in ordering, except under KeyThenValueOrder.
type KV[K cmp.Ordered, V any] struct {
	Key K
	Val V
}

type (
	CKV   = KV[byte, int]
	I32KV = KV[int32, int]
	I64KV = KV[int64, int]
	IKV   = KV[int, int]
	IdxKV = KV[int, int]
	ZKV   = KV[int, int]
	FKV   = KV[float32, int]
	DKV   = KV[float64, int]
	RKV   = KV[float64, int]
	SKV   = KV[string, int]
)

// UVW is an edge from U to V with weight W.
type UVW[N cmp.Ordered, W any] struct {
	U, V N
	W    W
}

type IUVW = UVW[int, int]
