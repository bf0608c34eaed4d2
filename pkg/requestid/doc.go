// Package requestid provides HTTP middleware and context helpers for
// request correlation identifiers.
//
// The middleware attaches an ID to every request (reusing a valid
// client-supplied X-Request-ID or generating a UUIDv4), stores it in the
// request context and echoes it back to the client. LoggerExtractor feeds
// the ID into structured log records.
package requestid
