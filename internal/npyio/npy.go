// Package npyio reads NumPy .npy array files and generates synthetic
// vector data sets for feeding an MTree or a benchmark harness.
//
// Loading .npy uses only the standard library (encoding/binary, bufio,
// regexp for the header dict); the format is simple
// enough (a fixed preamble plus a small header dict) that a dependency
// buys nothing here.
package npyio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
)

const magic = "\x93NUMPY"

// Matrix is a row-major N x D array of float64 feature vectors, the shape
// Load parses out of an .npy file's header.
type Matrix struct {
	Rows, Cols int
	Data       []float64
}

// Row returns a view of the i-th row. The returned slice aliases m.Data.
func (m *Matrix) Row(i int) []float64 {
	return m.Data[i*m.Cols : (i+1)*m.Cols]
}

var headerShapeRe = regexp.MustCompile(`'shape':\s*\(([^)]*)\)`)
var headerDescrRe = regexp.MustCompile(`'descr':\s*'([^']*)'`)
var headerFortranRe = regexp.MustCompile(`'fortran_order':\s*(True|False)`)

// Load reads a .npy file containing a 1-D or 2-D array of float32 or
// float64 values and returns it as a row-major Matrix of float64, capped
// at the first limit rows (limit <= 0 means no cap).
func Load(path string, limit int) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReader(f)

	var magicBuf [6]byte
	if _, err := io.ReadFull(r, magicBuf[:]); err != nil {
		return nil, fmt.Errorf("npyio: reading magic: %w", err)
	}
	if string(magicBuf[:]) != magic {
		return nil, fmt.Errorf("npyio: %s: not a .npy file", path)
	}

	var version [2]byte
	if _, err := io.ReadFull(r, version[:]); err != nil {
		return nil, fmt.Errorf("npyio: reading version: %w", err)
	}

	var headerLen int
	switch version[0] {
	case 1:
		var lenBuf [2]byte
		if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
			return nil, fmt.Errorf("npyio: reading header length: %w", err)
		}
		headerLen = int(binary.LittleEndian.Uint16(lenBuf[:]))
	default:
		var lenBuf [4]byte
		if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
			return nil, fmt.Errorf("npyio: reading header length: %w", err)
		}
		headerLen = int(binary.LittleEndian.Uint32(lenBuf[:]))
	}

	headerBuf := make([]byte, headerLen)
	if _, err := io.ReadFull(r, headerBuf); err != nil {
		return nil, fmt.Errorf("npyio: reading header: %w", err)
	}
	header := string(headerBuf)

	if m := headerFortranRe.FindStringSubmatch(header); m != nil && m[1] == "True" {
		return nil, fmt.Errorf("npyio: %s: fortran-ordered arrays are not supported", path)
	}

	descrMatch := headerDescrRe.FindStringSubmatch(header)
	if descrMatch == nil {
		return nil, fmt.Errorf("npyio: %s: missing descr in header", path)
	}
	descr := descrMatch[1]

	shapeMatch := headerShapeRe.FindStringSubmatch(header)
	if shapeMatch == nil {
		return nil, fmt.Errorf("npyio: %s: missing shape in header", path)
	}
	rows, cols, err := parseShape(shapeMatch[1])
	if err != nil {
		return nil, fmt.Errorf("npyio: %s: %w", path, err)
	}

	if limit > 0 && limit < rows {
		rows = limit
	}

	elems := rows * cols
	data := make([]float64, elems)

	switch descr {
	case "<f4":
		raw := make([]byte, elems*4)
		if _, err := io.ReadFull(r, raw); err != nil {
			return nil, fmt.Errorf("npyio: reading data: %w", err)
		}
		for i := range data {
			bits := binary.LittleEndian.Uint32(raw[i*4:])
			data[i] = float64(math.Float32frombits(bits))
		}
	case "<f8":
		raw := make([]byte, elems*8)
		if _, err := io.ReadFull(r, raw); err != nil {
			return nil, fmt.Errorf("npyio: reading data: %w", err)
		}
		for i := range data {
			bits := binary.LittleEndian.Uint64(raw[i*8:])
			data[i] = math.Float64frombits(bits)
		}
	default:
		return nil, fmt.Errorf("npyio: %s: unsupported dtype %q", path, descr)
	}

	return &Matrix{Rows: rows, Cols: cols, Data: data}, nil
}

func parseShape(raw string) (rows, cols int, err error) {
	parts := strings.Split(raw, ",")
	var dims []int
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, 0, fmt.Errorf("parsing shape %q: %w", raw, err)
		}
		dims = append(dims, n)
	}
	switch len(dims) {
	case 1:
		return dims[0], 1, nil
	case 2:
		return dims[0], dims[1], nil
	default:
		return 0, 0, fmt.Errorf("unsupported array rank %d (shape %q)", len(dims), raw)
	}
}
