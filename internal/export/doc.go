// Package export writes batch reports out as JSON, as a CSV write-back
// of the source table with result columns appended, or as a SQLite
// database.
package export
