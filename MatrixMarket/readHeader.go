package MatrixMarket

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	GrB "github.com/intel/forGraphBLASGo/GrB"
)

type (
	Format  int
	Type    int
	Storage int
)

const (
	Coordinate Format = iota
	Array
)

const (
	Real Type = iota
	Complex
	Pattern
	Integer
)

const (
	General Storage = iota
	Hermitian
	Symmetric
	SkewSymmetric
)

var (
	formats = map[string]Format{
		"coordinate": Coordinate,
		"array":      Array,
	}
	types = map[string]Type{
		"real":    Real,
		"complex": Complex,
		"pattern": Pattern,
		"integer": Integer,
	}
	storages = map[string]Storage{
		"general":        General,
		"hermitian":      Hermitian,
		"symmetric":      Symmetric,
		"skew-symmetric": SkewSymmetric,
	}
	defaultGrBTypes = map[Type]GrB.Type{
		Real:    GrB.FP64,
		Integer: GrB.Int64,
		Pattern: GrB.Int8,
	}
	graphBLASTypes = map[string]GrB.Type{
		"GrB_BOOL":   GrB.Int8,
		"GrB_INT8":   GrB.Int8,
		"GrB_INT16":  GrB.Int16,
		"GrB_INT32":  GrB.Int32,
		"GrB_INT64":  GrB.Int64,
		"GrB_UINT8":  GrB.Uint8,
		"GrB_UINT16": GrB.Uint16,
		"GrB_UINT32": GrB.Uint32,
		"GrB_UINT64": GrB.Uint64,
		"GrB_FP32":   GrB.FP32,
		"GrB_FP64":   GrB.FP64,
	}
)

// ErrFormat is wrapped by every error caused by malformed input.
var ErrFormat = errors.New("Matrix Market format error")

func formatError(format string, args ...any) error {
	return fmt.Errorf("%w: %v", ErrFormat, fmt.Sprintf(format, args...))
}

type Header struct {
	Format              Format
	Type                Type
	GrBType             GrB.Type
	Storage             Storage
	NRows, NCols, NVals int
}

// nextDataLine skips comment and blank lines.
func nextDataLine(s *bufio.Scanner) (string, bool) {
	for s.Scan() {
		text := strings.TrimSpace(s.Text())
		if text == "" || strings.HasPrefix(text, "%") {
			continue
		}
		return text, true
	}
	return "", false
}

func parseDims(fields []string, names ...string) ([]int, error) {
	if len(fields) != len(names) {
		return nil, formatError("size line has %v entries, expected %v", len(fields), len(names))
	}
	dims := make([]int, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, formatError("size line %v: %v", names[i], err)
		}
		if v < 0 {
			return nil, formatError("size line %v is negative: %v", names[i], v)
		}
		dims[i] = int(v)
	}
	return dims, nil
}

func ReadHeader(r io.Reader) (header Header, scanner *bufio.Scanner, err error) {
	s := bufio.NewScanner(r)
	if !s.Scan() {
		err = formatError("header line missing")
		return
	}
	fields := strings.Fields(s.Text())
	if len(fields) != 5 {
		err = formatError("header line has %v entries, expected 5", len(fields))
		return
	}
	if fields[0] != "%%MatrixMarket" || fields[1] != "matrix" {
		err = formatError("header line must start with %%%%MatrixMarket matrix, got %v %v", fields[0], fields[1])
		return
	}
	var ok bool
	if header.Format, ok = formats[strings.ToLower(fields[2])]; !ok {
		err = formatError("format %v, expected (coordinate | array)", fields[2])
		return
	}
	if header.Type, ok = types[strings.ToLower(fields[3])]; !ok {
		err = formatError("type %v, expected (real | complex | pattern | integer)", fields[3])
		return
	}
	if header.Storage, ok = storages[strings.ToLower(fields[4])]; !ok {
		err = formatError("storage %v, expected (general | hermitian | symmetric | skew-symmetric)", fields[4])
		return
	}
	if header.Type == Complex || header.Storage == Hermitian {
		err = formatError("complex matrices are not supported, got %v %v", fields[3], fields[4])
		return
	}
	if header.Format == Array && header.Type == Pattern {
		err = formatError("array format is not supported for pattern matrices")
		return
	}
	header.GrBType = defaultGrBTypes[header.Type]

	if !s.Scan() {
		err = formatError("size line missing")
		return
	}
	text := strings.TrimSpace(s.Text())
	if strings.HasPrefix(text, "%%GraphBLAS") {
		fields = strings.Fields(text)
		if len(fields) != 2 {
			err = formatError("GraphBLAS line has %v entries, expected 2", len(fields))
			return
		}
		if header.GrBType, ok = graphBLASTypes[fields[1]]; !ok {
			err = formatError("GraphBLAS type %v not supported", fields[1])
			return
		}
		text = ""
	}
	if text == "" || strings.HasPrefix(text, "%") {
		if text, ok = nextDataLine(s); !ok {
			err = formatError("size line missing")
			return
		}
	}

	fields = strings.Fields(text)
	switch header.Format {
	case Coordinate:
		var dims []int
		if dims, err = parseDims(fields, "nrows", "ncols", "nvals"); err != nil {
			return
		}
		header.NRows, header.NCols, header.NVals = dims[0], dims[1], dims[2]
	case Array:
		var dims []int
		if dims, err = parseDims(fields, "nrows", "ncols"); err != nil {
			return
		}
		header.NRows, header.NCols = dims[0], dims[1]
		header.NVals = header.NRows * header.NCols
	}
	return header, s, nil
}
