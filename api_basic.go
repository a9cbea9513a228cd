package forGKlibGo

import (
	"errors"
	"fmt"
)

type Kind int

const (
	AdjacencyUndirected Kind = iota
	AdjacencyDirected
)

func (kind Kind) String() string {
	switch kind {
	case AdjacencyUndirected:
		return "undirected"
	case AdjacencyDirected:
		return "directed"
	}
	panic("invalid kind")
}

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
)

// checkCount reports whether n elements can be addressed in a buffer of
// length size.
func checkCount(n, size int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative count %v", ErrInvalidArgument, n)
	}
	if n > size {
		return fmt.Errorf("%w: count %v exceeds buffer length %v", ErrInvalidArgument, n, size)
	}
	return nil
}

func try(err error) {
	if err != nil {
		panic(err)
	}
}
