// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is the only entity of the service: one document of the users
// collection.
type User struct {
	// ID is assigned by the store on insert.
	ID string `json:"_id"`

	// Email is required and unique across the collection.
	Email string `json:"email"`

	// Username is unique across the collection.
	Username string `json:"username"`

	// DateCreated is stamped once, on insert. It is part of the password
	// digest input, so it never changes afterwards.
	DateCreated time.Time `json:"dateCreated"`

	// DateUpdated is reset on every save.
	DateUpdated time.Time `json:"dateUpdated"`

	// Pass holds the raw password while a create or update request is in
	// flight and the hex digest once the user has been persisted.
	Pass string `json:"pass"`

	// loadedPass is Pass as last read from or written to the store.
	loadedPass string
	// persisted reports whether the value came from the store.
	persisted bool
}

// MarkPersisted records the current Pass as the stored one. The store calls
// it on every user it returns.
func (u *User) MarkPersisted() {
	u.loadedPass = u.Pass
	u.persisted = true
}

// IsPersisted reports whether u was read from or written to the store.
func (u User) IsPersisted() bool {
	return u.persisted
}

// IsPassModified reports whether Pass must be hashed before the next write:
// always for a user that was never stored, otherwise when Pass differs from
// the stored digest.
func (u User) IsPassModified() bool {
	return !u.persisted || u.Pass != u.loadedPass
}

// TableName returns the name of the collection holding users.
func (u User) TableName() string {
	return "users"
}
