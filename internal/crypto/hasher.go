// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// sha256Pool recycles SHA-256 states across requests.
var sha256Pool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// SHA256Hasher computes
//
//	hex(SHA-256(password + username + dateCreated + suffix))
//
// The concatenation order and the suffix are part of the stored digest
// format; changing either makes every existing password unverifiable.
type SHA256Hasher struct {
	suffix string
}

// NewSHA256Hasher returns a hasher using suffix as the application constant.
func NewSHA256Hasher(suffix string) *SHA256Hasher {
	return &SHA256Hasher{suffix: suffix}
}

// Hash implements [CredentialHasher].
func (h *SHA256Hasher) Hash(password, username, dateCreated string) string {
	hasher := sha256Pool.Get().(hash.Hash)
	hasher.Reset()

	hasher.Write([]byte(password))
	hasher.Write([]byte(username))
	hasher.Write([]byte(dateCreated))
	hasher.Write([]byte(h.suffix))
	sum := hasher.Sum(nil)

	hasher.Reset()
	sha256Pool.Put(hasher)

	return hex.EncodeToString(sum)
}
