package worldstate

import (
	"encoding/json"

	"github.com/talgya/econsim/internal/commodity"
)

// Matrix is a dense K×K Leontief technical coefficient matrix for a single
// country. Entry [i][j] means "units of input i needed per unit of output
// j". Stored as a flat, fixed-size array (not a slice of slices) so it is
// stack-friendly and allocation-free per access on the hot per-tick path.
type Matrix struct {
	entries [commodity.Count * commodity.Count]float64
}

// NewMatrix returns a zeroed K×K matrix.
func NewMatrix() Matrix {
	return Matrix{}
}

// NewMatrixFromRowMajor builds a Matrix from a flattened row-major slice,
// the wire format used for scenario ingestion (entry [i*K+j]). Returns
// false if the slice isn't exactly K*K long.
func NewMatrixFromRowMajor(flat []float64) (Matrix, bool) {
	var m Matrix
	if len(flat) != commodity.Count*commodity.Count {
		return m, false
	}
	copy(m.entries[:], flat)
	return m, true
}

// MarshalJSON serializes the flat entry array directly (entries is
// unexported so the matrix stays allocation-free on the hot path; the wire
// form is the same row-major flattening scenario ingestion accepts).
func (m Matrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.entries)
}

// UnmarshalJSON restores a matrix from its flat entry array.
func (m *Matrix) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &m.entries)
}

// Get returns A[i,j]: units of input i required per unit of output j.
func (m *Matrix) Get(input, output commodity.Tag) float64 {
	return m.entries[int(input)*commodity.Count+int(output)]
}

// Set assigns A[i,j].
func (m *Matrix) Set(input, output commodity.Tag, v float64) {
	m.entries[int(input)*commodity.Count+int(output)] = v
}

// ColumnSum returns the sum of a column (all inputs required per unit of
// the given output commodity). This must stay in [0, 1) for every column:
// an economy with column sum >= 1 would consume more value in inputs than
// a unit of output is worth.
func (m *Matrix) ColumnSum(output commodity.Tag) float64 {
	sum := 0.0
	for i := commodity.Tag(0); int(i) < commodity.Count; i++ {
		sum += m.Get(i, output)
	}
	return sum
}

// RequiredInputs returns every input commodity with a strictly positive
// coefficient for the given output, in frozen commodity order.
func (m *Matrix) RequiredInputs(output commodity.Tag) []commodity.Tag {
	var inputs []commodity.Tag
	for _, i := range commodity.All {
		if m.Get(i, output) > 0 {
			inputs = append(inputs, i)
		}
	}
	return inputs
}
