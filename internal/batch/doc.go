// Package batch reads conversion input: word files with one entry per
// line, and CSV tables from which a named column is extracted with row
// positions preserved.
package batch
