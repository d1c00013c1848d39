// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client runs a single CLI invocation.
type Client interface {
	// Run executes the command named by args[0] with the remaining
	// arguments and blocks until it finishes.
	Run(ctx context.Context, args []string) error
}
