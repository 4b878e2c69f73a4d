package langutil

import (
	"github.com/dekarrin/rosed"
)

// Matrix2 is a sparse two-key lookup table. It backs the LL(1) parse table
// M[nonterminal, terminal] -> production, where most cells are empty.
type Matrix2[X comparable, Y comparable, V any] struct {
	rows map[X]map[Y]V
}

// NewMatrix2 returns an empty Matrix2.
func NewMatrix2[X comparable, Y comparable, V any]() Matrix2[X, Y, V] {
	return Matrix2[X, Y, V]{rows: map[X]map[Y]V{}}
}

// Set assigns the cell at (x, y) to v.
func (m *Matrix2[X, Y, V]) Set(x X, y Y, v V) {
	if m.rows == nil {
		m.rows = map[X]map[Y]V{}
	}
	row, ok := m.rows[x]
	if !ok {
		row = map[Y]V{}
		m.rows[x] = row
	}
	row[y] = v
}

// Get retrieves the cell at (x, y) and whether it was set.
func (m Matrix2[X, Y, V]) Get(x X, y Y) (V, bool) {
	row, ok := m.rows[x]
	if !ok {
		var zero V
		return zero, false
	}
	v, ok := row[y]
	return v, ok
}

// Row returns a copy of the row at x, or nil if x has no cells set.
func (m Matrix2[X, Y, V]) Row(x X) map[Y]V {
	row, ok := m.rows[x]
	if !ok {
		return nil
	}
	out := make(map[Y]V, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out
}

// Rows returns the set of X keys that have at least one cell set.
func (m Matrix2[X, Y, V]) Rows() []X {
	out := make([]X, 0, len(m.rows))
	for x := range m.rows {
		out = append(out, x)
	}
	return out
}

// RenderTable renders the matrix as a text table with rowOrder/colOrder
// already sorted into display order and a stringify function turning a cell
// (present, value) into display text. This is the common path used by the
// LL(1) table's String() and leans on rosed for column alignment, the same
// way the rest of this module's diagnostic renderers do.
func RenderTable[X comparable, Y comparable, V any](rowOrder []X, colOrder []Y, rowLabel func(X) string, colLabel func(Y) string, cell func(X, Y) string) string {
	data := [][]string{}

	header := []string{""}
	for _, y := range colOrder {
		header = append(header, colLabel(y))
	}
	data = append(data, header)

	for _, x := range rowOrder {
		row := []string{rowLabel(x)}
		for _, y := range colOrder {
			row = append(row, cell(x, y))
		}
		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 20, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
