// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the sync
// API. Cross-cutting concerns such as the shared-key check, request tracing,
// access logging, and CORS are handled in this package before requests are
// delegated to the service layer.
package http
