// Package logging builds the structured slog loggers used by the configuration
// module. Output is JSON; the level is parsed from a string and an optional
// component attribute tags every record.
package logging
