package parser

import (
	"fmt"
	"strings"
)

// WavelengthColumn is the column every input file must carry; it is the x-axis of the plot.
const WavelengthColumn = "wavelength"

// CommentMarker is stripped from the front of the header line.
const CommentMarker = "#"

// DataTable holds the numeric columns of one input file.
// Key: column name as it appears in the header line
// Value: one value per data row, in file order
type DataTable struct {
	Path    string
	Data    map[string][]float64
	Columns []string // Header order
}

// Helper to initialize DataTable
func NewDataTable(path string, columns []string) *DataTable {
	t := &DataTable{
		Path:    path,
		Data:    make(map[string][]float64, len(columns)),
		Columns: append([]string(nil), columns...),
	}
	for _, name := range columns {
		t.Data[name] = make([]float64, 0)
	}
	return t
}

// NumRows returns the number of data rows. All columns share this length.
func (t *DataTable) NumRows() int {
	if t == nil || len(t.Columns) == 0 {
		return 0
	}
	return len(t.Data[t.Columns[0]])
}

// Column returns the values of the named column.
func (t *DataTable) Column(name string) ([]float64, bool) {
	if t == nil {
		return nil, false
	}
	values, ok := t.Data[name]
	return values, ok
}

// Require checks that every named column exists and reports all missing ones at once.
func (t *DataTable) Require(names ...string) error {
	var missing []string
	for _, name := range names {
		if _, ok := t.Column(name); !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	if t == nil {
		return &DataFormatError{Msg: fmt.Sprintf("missing required column(s) %s; no table loaded", quoteAll(missing))}
	}
	return &DataFormatError{
		Path: t.Path,
		Line: 1,
		Msg: fmt.Sprintf("missing required column(s) %s; header declares: %s",
			quoteAll(missing), strings.Join(t.Columns, ", ")),
	}
}

func quoteAll(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return strings.Join(quoted, ", ")
}
