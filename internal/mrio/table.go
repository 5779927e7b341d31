// Package mrio loads an OECD ICIO (inter-country input-output) supply-use
// table and aggregates it into the simulation's K=12 commodity technical
// coefficients. Uses the standard library's
// encoding/csv: no CSV-handling library appears anywhere in the example
// corpus, so this is a documented stdlib exception (see DESIGN.md).
package mrio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Special row/column labels in the ICIO layout.
const (
	RowHeader       = "V1"
	RowValueAdded   = "VA"
	RowTaxesSubsidy = "TLS"
	RowOutput       = "OUT"
)

// Final-demand column labels.
var FinalDemandColumns = []string{"HFCE", "NPISH", "GGFC", "GFCF", "INVNT", "DPABR"}

// Table is a parsed ICIO matrix: row and column labels are COUNTRY_SECTOR
// strings (or one of the special labels above), cell values are the
// corresponding flow.
type Table struct {
	ColumnLabels []string
	RowLabels    []string
	cells        map[string]map[string]float64 // cells[row][col]
}

// Load parses an ICIO CSV: first row is column labels (the header row,
// itself labeled V1 in its first cell), subsequent rows are COUNTRY_SECTOR
// row labels followed by one float per column.
func Load(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("mrio: failed to read header row: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("mrio: header row too short")
	}
	columns := header[1:]

	t := &Table{
		ColumnLabels: columns,
		cells:        make(map[string]map[string]float64),
	}

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("mrio: failed to read row: %w", err)
		}
		if len(record) == 0 {
			continue
		}
		rowLabel := strings.TrimSpace(record[0])
		row := make(map[string]float64, len(columns))
		for i, col := range columns {
			if i+1 >= len(record) {
				break
			}
			raw := strings.TrimSpace(record[i+1])
			if raw == "" {
				continue
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("mrio: non-numeric cell at row %q col %q: %w", rowLabel, col, err)
			}
			row[col] = v
		}
		t.cells[rowLabel] = row
		t.RowLabels = append(t.RowLabels, rowLabel)
	}

	return t, nil
}

// Z returns the intermediate flow from row label i to column label j,
// or 0 if absent.
func (t *Table) Z(i, j string) float64 {
	row, ok := t.cells[i]
	if !ok {
		return 0
	}
	return row[j]
}

// Output returns total output X[j] from the special OUT row.
func (t *Table) Output(j string) float64 {
	return t.Z(RowOutput, j)
}

// CountrySectors returns every row label whose COUNTRY_ prefix matches the
// given country code (e.g. "USA"), excluding the special rows.
func (t *Table) CountrySectors(countryCode string) []string {
	prefix := countryCode + "_"
	var out []string
	for _, label := range t.RowLabels {
		if label == RowValueAdded || label == RowTaxesSubsidy || label == RowOutput {
			continue
		}
		if strings.HasPrefix(label, prefix) {
			out = append(out, label)
		}
	}
	return out
}
