// Package logger builds configured slog loggers.
//
// It exists so every binary constructs logging the same way: JSON or text
// format, a level, static service attributes, and context extractors that
// inject request-scoped values (like the request ID) into every record
// logged through the *Context slog methods.
package logger
