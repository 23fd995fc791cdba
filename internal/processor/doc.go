// Package processor contains the application logic wiring the CLI to
// the conversion pipeline. It reads word files or CSV columns, runs
// the batch conversion, prints the summary, and writes the configured
// report outputs.
package processor
