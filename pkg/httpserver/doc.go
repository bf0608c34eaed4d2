// Package httpserver wraps net/http with graceful shutdown and structured
// lifecycle logging.
//
// Run blocks until the context is cancelled or the process receives SIGINT
// or SIGTERM, then drains in-flight requests within the configured shutdown
// timeout.
package httpserver
