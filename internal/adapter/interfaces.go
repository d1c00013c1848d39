// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the accounts HTTP API.
//
// [AccountsAdapter] hides the transport from the CLI. Failures are reported
// with the sentinel errors of errors.go, which callers match with
// [errors.Is]. The mapping works for both status-coded servers and servers
// running with legacy status codes, which answer every error with 200 and a
// plain-text message.
package adapter

import (
	"context"

	"github.com/MKhiriev/munch-accounts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/accounts_adapter_mock.go -package=mock

// AccountsAdapter calls the accounts server.
type AccountsAdapter interface {
	// Create registers a user via GET /create.
	Create(ctx context.Context, email, username, pass string) (models.UserResponse, error)

	// Authenticate checks a username and password via GET /auth.
	Authenticate(ctx context.Context, username, pass string) (models.UserResponse, error)

	// ListUsers returns every user via GET /users.
	ListUsers(ctx context.Context) ([]models.UserResponse, error)

	// GetUser returns the user with the given username via GET /user/{username}.
	GetUser(ctx context.Context, username string) (models.UserResponse, error)

	// Version returns the server version via GET /version.
	Version(ctx context.Context) (string, error)
}
