package batch

import (
	"fmt"
	"os"
	"strings"
)

// ReadLines reads a UTF-8 word file and returns one entry per line.
// Blank lines are kept so that result indices keep matching line
// numbers; they fail conversion as empty input instead of vanishing.
func ReadLines(filename string) ([]string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	text := strings.ReplaceAll(string(content), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, nil
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines, nil
}
