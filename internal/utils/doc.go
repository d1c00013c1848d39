// Package utils collects small helpers shared by the server and the CLI:
// HTTP response writing, the resty client wrapper, document identifiers and
// the epoch-milliseconds timestamp rendering used by user documents.
package utils
