package forGKlibGo

import (
	"fmt"

	"github.com/intel/forGoParallel/parallel"
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"
)

func Set[T any](x []T, value T) {
	parallel.Range(0, len(x), func(low, high int) {
		for i := low; i < high; i++ {
			x[i] = value
		}
	})
}

// IncSet sets x[i] = base + i*incr.
func IncSet[T constraints.Integer](x []T, base, incr T) {
	parallel.Range(0, len(x), func(low, high int) {
		for i := low; i < high; i++ {
			x[i] = base + T(i)*incr
		}
	})
}

// Max panics on an empty slice.
func Max[T constraints.Integer](x []T) T {
	return x[ArgMax(x)]
}

// Min panics on an empty slice.
func Min[T constraints.Integer](x []T) T {
	return x[ArgMin(x)]
}

// ArgMax returns the first position of the largest element, or -1.
func ArgMax[T constraints.Integer](x []T) int {
	if len(x) == 0 {
		return -1
	}
	m := 0
	for i := 1; i < len(x); i++ {
		if x[i] > x[m] {
			m = i
		}
	}
	return m
}

// ArgMin returns the first position of the smallest element, or -1.
func ArgMin[T constraints.Integer](x []T) int {
	if len(x) == 0 {
		return -1
	}
	m := 0
	for i := 1; i < len(x); i++ {
		if x[i] < x[m] {
			m = i
		}
	}
	return m
}

// ArgMaxN returns the position of the k-th largest element of x, counting
// from k = 1. Equal elements rank by position.
func ArgMaxN[T constraints.Integer](x []T, k int) (int, error) {
	return argMaxN(x, k)
}

func argMaxN[T constraints.Integer | constraints.Float](x []T, k int) (int, error) {
	if k < 1 || k > len(x) {
		return -1, fmt.Errorf("%w: rank %v outside [1, %v]", ErrInvalidArgument, k, len(x))
	}
	cand := make([]KV[T, int], len(x))
	for i, v := range x {
		cand[i] = KV[T, int]{Key: v, Val: i}
	}
	order := Then(Reverse(KeyOrder[T, int]()), ValueOrder[T, int]())
	if err := SortFunc(len(cand), cand, order); err != nil {
		return -1, err
	}
	return cand[k-1].Val, nil
}

func Sum[T constraints.Integer](x []T) (sum T) {
	for _, v := range x {
		sum += v
	}
	return
}

func Scale[T constraints.Integer](x []T, alpha T) {
	for i := range x {
		x[i] *= alpha
	}
}

// Dot uses the first min(len(x), len(y)) elements.
func Dot[T constraints.Integer](x, y []T) (dot T) {
	n := min(len(x), len(y))
	for i := 0; i < n; i++ {
		dot += x[i] * y[i]
	}
	return
}

// Axpy computes y += alpha*x over the first min(len(x), len(y)) elements.
func Axpy[T constraints.Integer](alpha T, x, y []T) {
	n := min(len(x), len(y))
	for i := 0; i < n; i++ {
		y[i] += alpha * x[i]
	}
}

func RSum(x []float64) float64 {
	return floats.Sum(x)
}

// RDot panics if the lengths differ.
func RDot(x, y []float64) float64 {
	return floats.Dot(x, y)
}

func RNorm2(x []float64) float64 {
	return floats.Norm(x, 2)
}

func RScale(x []float64, alpha float64) {
	floats.Scale(alpha, x)
}

// RAxpy computes y += alpha*x; it panics if the lengths differ.
func RAxpy(alpha float64, x, y []float64) {
	floats.AddScaled(y, alpha, x)
}

// RMax panics on an empty slice.
func RMax(x []float64) float64 {
	return floats.Max(x)
}

// RMin panics on an empty slice.
func RMin(x []float64) float64 {
	return floats.Min(x)
}

func RArgMax(x []float64) int {
	if len(x) == 0 {
		return -1
	}
	return floats.MaxIdx(x)
}

func RArgMin(x []float64) int {
	if len(x) == 0 {
		return -1
	}
	return floats.MinIdx(x)
}

func RArgMaxN(x []float64, k int) (int, error) {
	return argMaxN(x, k)
}
