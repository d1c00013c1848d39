// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the format and required-field rules a user
// document must satisfy before it is written.
//
// Validators are injected into the store, which runs them on every insert
// and save. Failures are returned as *FieldError values wrapping
// ErrValidation.
package validators

import "context"

// Validator validates an arbitrary value, optionally restricted to the named
// fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
