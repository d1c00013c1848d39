// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the accounts command-line client.
//
// It dispatches one command per process run to an [adapter.AccountsAdapter]
// and prints the result as indented JSON.
package client
