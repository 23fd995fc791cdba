package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"codeberg.org/snonux/telatin/internal/batch"
	"codeberg.org/snonux/telatin/internal/convert"
)

// WriteCSV writes the source table back out with three result columns
// appended: is_valid_telugu, latin, pronunciation. Row order and the
// original columns are preserved, so results stay attached to their
// rows.
func WriteCSV(path string, table *batch.Table, report *convert.Report) error {
	if len(report.Results) != len(table.Rows) {
		return fmt.Errorf("report has %d results for %d rows", len(report.Results), len(table.Rows))
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	header := append(append([]string{}, table.Header...),
		"is_valid_telugu", "latin", "pronunciation")
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	width := len(table.Header)
	for i, row := range table.Rows {
		result := report.Results[i]

		// Pad ragged rows so appended columns stay aligned.
		record := make([]string, width, width+3)
		copy(record, row)

		record = append(record,
			strconv.FormatBool(result.OK()),
			result.Latin,
			result.Pronunciation,
		)
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV file: %w", err)
	}
	return nil
}
