// Package http implements the HTTP transport layer of the forum.
//
// It wires the chi router, the page handlers and the middleware chain:
// request tracing, access logging, Prometheus metrics and session
// resolution. Pages are written as JSON page payloads ([models.Page]).
// Routes that need a logged-in account redirect anonymous callers to
// /login.
package http
