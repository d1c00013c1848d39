// Package config loads, merges and validates configuration for the accounts
// server and the accounts CLI.
//
// Server configuration is assembled from three sources; a later source
// overrides non-zero fields of an earlier one:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path taken from CONFIG or -c)
//
// The entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the CLI.
package config
