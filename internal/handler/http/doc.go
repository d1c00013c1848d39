// Package http implements the HTTP transport layer of the accounts service.
//
// It exposes the GET routes over the account operations, request tracing,
// access logging, response compression and the mapping of error kinds to
// response bodies and status codes.
package http
