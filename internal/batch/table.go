package batch

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Table is an in-memory CSV file: a header row plus data rows. Rows may
// be ragged; missing cells read as empty strings.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadCSVFile loads a CSV file with a header row.
func ReadCSVFile(filename string) (*Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV file: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV file %s is empty", filename)
	}

	return &Table{Header: records[0], Rows: records[1:]}, nil
}

// Column returns the cells of the named column in row order, plus its
// index. Cells missing from short rows come back as empty strings, so
// positions always line up with rows for write-back.
func (t *Table) Column(name string) ([]string, int, error) {
	index := -1
	for i, h := range t.Header {
		if h == name {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, -1, fmt.Errorf("column %q not found in CSV header", name)
	}

	cells := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		if index < len(row) {
			cells[i] = row[index]
		}
	}
	return cells, index, nil
}
