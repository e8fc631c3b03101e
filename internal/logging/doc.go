// Package logging assembles structured slog loggers used across pwna.
//
// It owns the console and JSON handlers and the choice between stderr and an
// append-only log file. Context helpers let HTTP access logs carry the
// request identifier. A no-op logger covers tests and nil loggers.
package logging
