// Package logger provides slog attribute helpers with consistent keys for
// structured logging across the framework. Helpers return empty attributes
// for zero values, which slog drops, so call sites stay free of nil checks.
package logger
