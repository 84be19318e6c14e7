package npyio

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// writeNpy writes a minimal v1.0 .npy file holding a row-major float64
// matrix, enough to exercise Load without needing a real NumPy install.
func writeNpy(t *testing.T, path string, rows, cols int, data []float64) {
	t.Helper()

	header := "{'descr': '<f8', 'fortran_order': False, 'shape': (" +
		itoa(rows) + ", " + itoa(cols) + "), }"
	// Pad the header so magic+version+headerlen+header is a multiple of 64,
	// as the npy format requires, terminated with a newline.
	const preambleLen = 10 // magic(6) + version(2) + headerlen(2)
	total := preambleLen + len(header) + 1
	pad := (64 - total%64) % 64
	header += string(bytes.Repeat([]byte{' '}, pad)) + "\n"

	var buf bytes.Buffer
	buf.WriteString(magic)
	buf.Write([]byte{1, 0})
	var lenBuf [2]byte
	binary.LittleEndian.PutUint16(lenBuf[:], uint16(len(header)))
	buf.Write(lenBuf[:])
	buf.WriteString(header)

	for _, v := range data {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
		buf.Write(b[:])
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("writing test .npy file: %v", err)
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := []byte{}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

func TestLoadReadsRowMajorFloat64Matrix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.npy")
	writeNpy(t, path, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	m, err := Load(path, 0)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if m.Rows != 2 || m.Cols != 3 {
		t.Fatalf("shape = (%d, %d), want (2, 3)", m.Rows, m.Cols)
	}
	if got := m.Row(1); got[0] != 4 || got[1] != 5 || got[2] != 6 {
		t.Fatalf("Row(1) = %v, want [4 5 6]", got)
	}
}

func TestLoadRespectsLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.npy")
	writeNpy(t, path, 4, 2, []float64{1, 1, 2, 2, 3, 3, 4, 4})

	m, err := Load(path, 2)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if m.Rows != 2 {
		t.Fatalf("Rows = %d, want 2", m.Rows)
	}
	if len(m.Data) != 4 {
		t.Fatalf("len(Data) = %d, want 4", len(m.Data))
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.npy")
	if err := os.WriteFile(path, []byte("not an npy file at all"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path, 0); err == nil {
		t.Fatal("expected an error for a file with no npy magic")
	}
}

func TestRandomUniformRespectsBounds(t *testing.T) {
	vecs := RandomUniform(50, 4, 1, -2, 2)
	if len(vecs) != 50 {
		t.Fatalf("len = %d, want 50", len(vecs))
	}
	for _, v := range vecs {
		if len(v) != 4 {
			t.Fatalf("dimension = %d, want 4", len(v))
		}
		for _, x := range v {
			if x < -2 || x >= 2 {
				t.Fatalf("value %v out of bounds [-2, 2)", x)
			}
		}
	}
}

func TestRandomUniformIsDeterministicForAGivenSeed(t *testing.T) {
	a := RandomUniform(10, 3, 7, 0, 1)
	b := RandomUniform(10, 3, 7, 0, 1)
	for i := range a {
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				t.Fatalf("same seed produced different vectors at [%d][%d]: %v vs %v", i, j, a[i][j], b[i][j])
			}
		}
	}
}

func TestRandomUnitProducesUnitVectors(t *testing.T) {
	vecs := RandomUnit(20, 5, 3)
	for _, v := range vecs {
		norm := 0.0
		for _, x := range v {
			norm += x * x
		}
		norm = math.Sqrt(norm)
		if math.Abs(norm-1) > 1e-9 {
			t.Fatalf("||v|| = %v, want 1", norm)
		}
	}
}
