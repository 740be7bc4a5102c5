// Package logging builds the process-wide slog logger.
package logging
