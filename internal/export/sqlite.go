package export

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"codeberg.org/snonux/telatin/internal/convert"
)

// WriteSQLite writes the report to a SQLite database: one row per
// conversion in the conversions table, plus a runs row with the
// aggregate counts.
func WriteSQLite(path string, report *convert.Report) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := createTables(db); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	if err := insertRun(db, report); err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	return nil
}

func createTables(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id integer PRIMARY KEY AUTOINCREMENT,
			created_at text NOT NULL,
			total integer NOT NULL,
			succeeded integer NOT NULL,
			failed integer NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS conversions (
			id integer PRIMARY KEY AUTOINCREMENT,
			run_id integer NOT NULL,
			position integer NOT NULL,
			telugu text NOT NULL,
			latin text,
			pronunciation text,
			error text,
			warnings text
		)`,
		`CREATE INDEX IF NOT EXISTS ix_conversions_run ON conversions (run_id, position)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}
	return nil
}

func insertRun(db *sql.DB, report *convert.Report) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs (created_at, total, succeeded, failed) VALUES (?, ?, ?, ?)`,
		time.Now().Format(time.RFC3339),
		len(report.Results),
		report.Succeeded,
		report.Failed,
	)
	if err != nil {
		return err
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO conversions
		(run_id, position, telugu, latin, pronunciation, error, warnings)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, result := range report.Results {
		var latin, pronunciation, itemErr sql.NullString
		if result.OK() {
			latin = sql.NullString{String: result.Latin, Valid: true}
			pronunciation = sql.NullString{String: result.Pronunciation, Valid: true}
		} else {
			itemErr = sql.NullString{String: result.Err.Error(), Valid: true}
		}

		if _, err := stmt.Exec(runID, i, result.Input,
			latin, pronunciation, itemErr, formatWarnings(result.Warnings)); err != nil {
			return fmt.Errorf("failed to insert conversion %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// formatWarnings joins warnings into "kind:excerpt" pairs.
func formatWarnings(warnings []convert.Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, 0, len(warnings))
	for _, w := range warnings {
		parts = append(parts, string(w.Kind)+":"+w.Excerpt)
	}
	return strings.Join(parts, "; ")
}
