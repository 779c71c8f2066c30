// Package logging assembles structured slog loggers used across movieclip.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so a playback run can tag every log
// line with its run identifier. The package also provides a no-op logger for
// tests and for timelines constructed without one.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits records with the same shape.
package logging
