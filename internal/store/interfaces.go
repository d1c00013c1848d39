// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store keeps the users collection: one JSON document per user in
// PostgreSQL (JSONB) or SQLite (JSON1), unique on email and username.
//
// The repository validates documents before writing, assigns ids and
// timestamps, and hashes the password whenever it differs from the value
// last read from the collection.
package store

import (
	"context"

	"github.com/MKhiriev/munch-accounts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository is the users collection.
type UserRepository interface {
	// Insert validates user, assigns its id and timestamps, hashes its raw
	// password and stores it. It returns the stored user.
	Insert(ctx context.Context, user models.User) (models.User, error)

	// Find returns every user whose filter.Field equals filter.Value exactly.
	// No match is an empty slice, not an error.
	Find(ctx context.Context, filter models.UserFilter) ([]models.User, error)

	// FindAll returns every user in insertion order.
	FindAll(ctx context.Context) ([]models.User, error)

	// Save writes the mutations of a stored user back, stamping dateUpdated
	// and rehashing the password if it was modified since it was loaded.
	// A user that was never stored is inserted.
	Save(ctx context.Context, user models.User) (models.User, error)
}
