// Package logging assembles structured slog loggers and formatting helpers used
// across ytmeta.
//
// It owns the configurable console/JSON handlers, keeps every log line on
// stderr so stdout stays reserved for the JSON record, and exposes
// context-aware helpers so pipeline code can tag lines with the run ID and
// stage automatically. The package also provides a no-op logger for tests and
// wiring code that cannot fail.
package logging
