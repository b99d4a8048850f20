// Package logger builds configured slog.Logger instances with an options
// pattern: output format (JSON for production, text for development), level,
// static attributes and context extractors that inject request-scoped values
// into every record.
package logger
