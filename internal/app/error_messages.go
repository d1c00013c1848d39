// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the response messages shared by the HTTP handlers and
// the client adapter.
//
// All Msg* constants are written verbatim into error response bodies, so the
// client can tell failures apart even when the server runs with legacy
// status codes.
package app

const (
	// MsgErrorAddingUser is returned by /create for any failure that carries
	// no more specific message.
	MsgErrorAddingUser = ":: error adding user to db"

	// MsgUserNotFound is returned when a lookup matches no user, or more
	// than one.
	MsgUserNotFound = ":: user not found"

	// MsgUsernameNotFound is the update flavour of MsgUserNotFound.
	MsgUsernameNotFound = ":: username not found"

	// MsgPassDoesNotMatch is returned when the supplied password does not
	// reproduce the stored digest.
	MsgPassDoesNotMatch = ":: pass does not match"

	// MsgErrorWhenQueryingDB is returned by /auth when the lookup fails.
	MsgErrorWhenQueryingDB = ":: error when querying db"

	// MsgErrorQueryingDB is returned by /user/{username} when the lookup
	// fails.
	MsgErrorQueryingDB = ":: error querying db"

	// MsgErrorQueryingDatabase is returned by /users when the listing fails.
	MsgErrorQueryingDatabase = ":: error querying database"

	// MsgErrorWhenUpdatingDB is returned when saving an updated user fails.
	MsgErrorWhenUpdatingDB = ":: error when updating db"

	// MsgDuplicateKey is appended to MsgErrorAddingUser when the email or
	// username is taken.
	MsgDuplicateKey = "email or username already exists"

	// MsgInternalServerError is returned when a handler panics.
	MsgInternalServerError = ":: internal server error"
)
