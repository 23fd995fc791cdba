package processor

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"codeberg.org/snonux/telatin/internal/batch"
	"codeberg.org/snonux/telatin/internal/cli"
	"codeberg.org/snonux/telatin/internal/convert"
	"codeberg.org/snonux/telatin/internal/export"
	"codeberg.org/snonux/telatin/internal/logging"
	"codeberg.org/snonux/telatin/internal/pronounce"
)

// Processor handles the main conversion logic
type Processor struct {
	flags     *cli.Flags
	converter *convert.Converter
	logger    *slog.Logger
}

// NewProcessor creates a new processor from flags and viper config
func NewProcessor(flags *cli.Flags) (*Processor, error) {
	level := slog.LevelInfo
	if flags.Verbose {
		level = slog.LevelDebug
	}
	logger := logging.New(level)

	rules := pronounce.DefaultRules()
	if entries := viper.GetStringSlice("pronounce.rules"); len(entries) > 0 {
		parsed, err := pronounce.ParseRules(entries)
		if err != nil {
			return nil, fmt.Errorf("invalid pronounce.rules config: %w", err)
		}
		rules = parsed
	}

	// Flags win over the config file; strict is the default.
	strict := true
	if viper.IsSet("script.strict") {
		strict = viper.GetBool("script.strict")
	}
	if flags.Permissive {
		strict = false
	}

	converter := convert.New(convert.Options{
		Strict:      strict,
		AllowDigits: flags.AllowDigits || viper.GetBool("script.allow_digits"),
		Rules:       rules,
		Logger:      logger,
	})

	return &Processor{
		flags:     flags,
		converter: converter,
		logger:    logger,
	}, nil
}

// ProcessSingleWord converts a single word from the command line
func (p *Processor) ProcessSingleWord(word string) error {
	result := p.converter.Transliterate(word)
	if !result.OK() {
		return fmt.Errorf("invalid word %q: %s", word, result.Err)
	}

	fmt.Printf("Telugu:        %s\n", result.Input)
	fmt.Printf("IAST:          %s\n", result.Latin)
	fmt.Printf("Pronunciation: %s\n", result.Pronunciation)
	return nil
}

// ProcessBatch converts every line of the batch file
func (p *Processor) ProcessBatch() error {
	items, err := batch.ReadLines(p.flags.BatchFile)
	if err != nil {
		return err
	}

	report := p.converter.ConvertBatch(items)

	for i, result := range report.Results {
		if result.OK() {
			fmt.Printf("%d/%d: %s -> %s (%s)\n",
				i+1, len(report.Results), result.Input, result.Latin, result.Pronunciation)
		} else {
			fmt.Fprintf(os.Stderr, "%d/%d: %q failed: %s\n",
				i+1, len(report.Results), result.Input, result.Err)
		}
	}

	if err := p.writeReports(report, nil); err != nil {
		return err
	}

	printSummary(report)
	return nil
}

// ProcessCSV converts the configured column of the CSV file and writes
// the table back with result columns appended
func (p *Processor) ProcessCSV() error {
	table, err := batch.ReadCSVFile(p.flags.CSVFile)
	if err != nil {
		return err
	}

	// Use the config file value if the flag was left at its default.
	column := p.flags.CSVColumn
	if column == "telugu_word" && viper.IsSet("csv.column") {
		column = viper.GetString("csv.column")
	}
	cells, _, err := table.Column(column)
	if err != nil {
		return err
	}

	report := p.converter.ConvertBatch(cells)

	if err := p.writeReports(report, table); err != nil {
		return err
	}

	printSummary(report)
	return nil
}

// writeReports writes the configured report outputs. The table is nil
// outside CSV mode.
func (p *Processor) writeReports(report *convert.Report, table *batch.Table) error {
	if path := p.jsonPath(); path != "" {
		if err := export.WriteJSON(path, report); err != nil {
			return err
		}
		fmt.Printf("JSON report written to %s\n", path)
	}

	if path := p.sqlitePath(); path != "" {
		if err := export.WriteSQLite(path, report); err != nil {
			return err
		}
		fmt.Printf("SQLite report written to %s\n", path)
	}

	if table != nil {
		path := p.flags.CSVOut
		if path == "" {
			path = defaultCSVOut(p.flags.CSVFile)
		}
		if err := export.WriteCSV(path, table, report); err != nil {
			return err
		}
		fmt.Printf("CSV written to %s\n", path)
	}

	return nil
}

func (p *Processor) jsonPath() string {
	if p.flags.JSONOut != "" {
		return p.flags.JSONOut
	}
	return viper.GetString("output.json")
}

func (p *Processor) sqlitePath() string {
	if p.flags.SQLiteOut != "" {
		return p.flags.SQLiteOut
	}
	return viper.GetString("output.sqlite")
}

// defaultCSVOut derives the write-back path from the input file name.
func defaultCSVOut(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_converted" + ext
}

func printSummary(report *convert.Report) {
	fmt.Printf("\n=== Conversion Summary ===\n")
	fmt.Printf("Total entries: %d\n", len(report.Results))
	fmt.Printf("Converted: %d\n", report.Succeeded)
	if report.Failed > 0 {
		fmt.Printf("Failed: %d\n", report.Failed)
	}
	fmt.Printf("==========================\n")
}
