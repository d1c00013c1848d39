// Package server runs the HTTP listener of the accounts service.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown.
package server
