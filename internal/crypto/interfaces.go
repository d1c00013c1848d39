// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the password digest scheme of the accounts service.
package crypto

// CredentialHasher turns a password and its per-user context into the digest
// stored in the user document.
//
// Implementations must be deterministic: equal inputs give equal digests,
// since authentication recomputes the digest and compares it with the stored
// one.
type CredentialHasher interface {
	// Hash returns the hex digest of password salted with username and the
	// rendered creation timestamp.
	Hash(password, username, dateCreated string) string
}
