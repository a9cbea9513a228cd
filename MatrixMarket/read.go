package MatrixMarket

import (
	"bufio"
	"reflect"
	"strconv"
	"strings"

	GrB "github.com/intel/forGraphBLASGo/GrB"
)

// Coordinates are the zero-based entries of a matrix in file order.
// Symmetric and skew-symmetric storage is expanded into both triangles.
type Coordinates[T GrB.Number] struct {
	NRows, NCols int
	Rows, Cols   []int
	Vals         []T
}

type numberKindType int

const (
	_ numberKindType = iota
	signed
	unsigned
	float
)

var (
	numberKind = map[reflect.Kind]numberKindType{
		GrB.Int8:   signed,
		GrB.Int16:  signed,
		GrB.Int32:  signed,
		GrB.Int64:  signed,
		GrB.Uint8:  unsigned,
		GrB.Uint16: unsigned,
		GrB.Uint32: unsigned,
		GrB.Uint64: unsigned,
		GrB.FP32:   float,
		GrB.FP64:   float,
	}

	bitSize = map[reflect.Kind]int{
		GrB.Int8:   8,
		GrB.Int16:  16,
		GrB.Int32:  32,
		GrB.Int64:  64,
		GrB.Uint8:  8,
		GrB.Uint16: 16,
		GrB.Uint32: 32,
		GrB.Uint64: 64,
		GrB.FP32:   32,
		GrB.FP64:   64,
	}
)

func makeParseValue[T GrB.Number](kind GrB.Type) func(string) (T, error) {
	size := bitSize[kind]
	switch numberKind[kind] {
	case signed:
		return func(s string) (T, error) {
			v, err := strconv.ParseInt(s, 10, size)
			if err != nil {
				return 0, formatError("value %v: %v", s, err)
			}
			return T(v), nil
		}
	case unsigned:
		return func(s string) (T, error) {
			v, err := strconv.ParseUint(s, 10, size)
			if err != nil {
				return 0, formatError("value %v: %v", s, err)
			}
			return T(v), nil
		}
	case float:
		return func(s string) (T, error) {
			v, err := strconv.ParseFloat(s, size)
			if err != nil {
				return 0, formatError("value %v: %v", s, err)
			}
			return T(v), nil
		}
	}
	panic("unreachable code")
}

type coordinateBuilder[T GrB.Number] struct {
	c   *Coordinates[T]
	add func(row, col int, v T)
}

func newCoordinateBuilder[T GrB.Number](header Header) *coordinateBuilder[T] {
	capacity := header.NVals
	if header.Storage != General {
		capacity *= 2
	}
	c := &Coordinates[T]{
		NRows: header.NRows,
		NCols: header.NCols,
		Rows:  make([]int, 0, capacity),
		Cols:  make([]int, 0, capacity),
		Vals:  make([]T, 0, capacity),
	}
	b := &coordinateBuilder[T]{c: c}
	switch header.Storage {
	case General:
		b.add = b.addGeneral
	case Symmetric:
		b.add = b.addSymmetric
	case SkewSymmetric:
		b.add = b.addSkewSymmetric
	}
	return b
}

func (b *coordinateBuilder[T]) addGeneral(row, col int, v T) {
	b.c.Rows = append(b.c.Rows, row)
	b.c.Cols = append(b.c.Cols, col)
	b.c.Vals = append(b.c.Vals, v)
}

func (b *coordinateBuilder[T]) addSymmetric(row, col int, v T) {
	b.addGeneral(row, col, v)
	if row != col {
		b.addGeneral(col, row, v)
	}
}

func (b *coordinateBuilder[T]) addSkewSymmetric(row, col int, v T) {
	b.addGeneral(row, col, v)
	if row != col {
		b.addGeneral(col, row, -v)
	}
}

func parseIndex(field string, limit int, name string) (int, error) {
	i, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return 0, formatError("%v %v: %v", name, field, err)
	}
	if i < 1 || int(i) > limit {
		return 0, formatError("%v %v outside [1, %v]", name, i, limit)
	}
	return int(i) - 1, nil
}

// Read reads the entries following header. Values are parsed according to
// header.GrBType and converted to T.
func Read[T GrB.Number](header Header, s *bufio.Scanner) (*Coordinates[T], error) {
	parseValue := makeParseValue[T](header.GrBType)
	b := newCoordinateBuilder[T](header)
	switch header.Format {
	case Coordinate:
		nfields := 3
		if header.Type == Pattern {
			nfields = 2
		}
		for k := 0; k < header.NVals; k++ {
			text, ok := nextDataLine(s)
			if !ok {
				return nil, formatError("too few coordinate lines, got %v of %v", k, header.NVals)
			}
			fields := strings.Fields(text)
			if len(fields) != nfields {
				return nil, formatError("coordinate line has %v entries, expected %v", len(fields), nfields)
			}
			row, err := parseIndex(fields[0], header.NRows, "row")
			if err != nil {
				return nil, err
			}
			col, err := parseIndex(fields[1], header.NCols, "col")
			if err != nil {
				return nil, err
			}
			v := T(1)
			if nfields == 3 {
				if v, err = parseValue(fields[2]); err != nil {
					return nil, err
				}
			}
			b.add(row, col, v)
		}
		if _, ok := nextDataLine(s); ok {
			return nil, formatError("too many coordinate lines")
		}
	case Array:
		row, col := 0, 0
		resetRow := func() {
			for ; col < header.NCols; col++ {
				switch header.Storage {
				case General:
					row = 0
				case Symmetric:
					row = col
				case SkewSymmetric:
					row = col + 1
				}
				if row < header.NRows {
					return
				}
			}
		}
		resetRow()
		for {
			text, ok := nextDataLine(s)
			if !ok {
				break
			}
			fields := strings.Fields(text)
			if len(fields) != 1 {
				return nil, formatError("array line has %v entries, expected 1", len(fields))
			}
			if row >= header.NRows || col >= header.NCols {
				return nil, formatError("too many array lines")
			}
			v, err := parseValue(fields[0])
			if err != nil {
				return nil, err
			}
			b.add(row, col, v)
			if row++; row >= header.NRows {
				col++
				resetRow()
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return b.c, nil
}
