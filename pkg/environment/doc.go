// Package environment propagates the application deployment environment
// (development, staging, production) through context.Context, HTTP request
// pipelines and structured logs.
//
// The typed Environment string carries predefined constants and predicate
// methods. Middleware attaches the environment to every request context, and
// LoggerExtractor injects it into slog records.
package environment
