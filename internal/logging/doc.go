// Package logging constructs the shared slog logger used across the
// application. Warnings emitted by the conversion pipeline go through it.
package logging
