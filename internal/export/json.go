package export

import (
	"encoding/json"
	"fmt"
	"os"

	"codeberg.org/snonux/telatin/internal/convert"
)

// jsonEntry mirrors the word-file output format: latin and
// pronunciation are null for items that failed validation.
type jsonEntry struct {
	Telugu        string  `json:"telugu"`
	Latin         *string `json:"latin"`
	Pronunciation *string `json:"pronunciation"`
	Error         string  `json:"error,omitempty"`
}

// WriteJSON writes the report as a JSON array, one entry per input
// item in input order.
func WriteJSON(path string, report *convert.Report) error {
	entries := make([]jsonEntry, 0, len(report.Results))
	for _, result := range report.Results {
		entry := jsonEntry{Telugu: result.Input}
		if result.OK() {
			latin := result.Latin
			pronunciation := result.Pronunciation
			entry.Latin = &latin
			entry.Pronunciation = &pronunciation
		} else {
			entry.Error = result.Err.Error()
		}
		entries = append(entries, entry)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}
	return nil
}
