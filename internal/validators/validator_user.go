// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"regexp"

	"github.com/MKhiriev/munch-accounts/models"
)

var (
	emailPattern = regexp.MustCompile(`^(([^<>()\[\]\\.,;:\s@"]+(\.[^<>()\[\]\\.,;:\s@"]+)*)|(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)

	// unanchored: a username passes when it contains a 3-20 word-character run
	usernamePattern = regexp.MustCompile(`\w{3,20}`)
)

type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUser(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{models.FieldEmail.String(), models.FieldUsername.String(), models.FieldPass.String()}
	}

	for _, f := range fields {
		switch models.UserField(f) {
		case models.FieldEmail:
			if user.Email == "" {
				return newFieldError(f, "Email address not provided")
			}
			if !emailPattern.MatchString(user.Email) {
				return newFieldError(f, fmt.Sprintf("%q is not a valid email address", user.Email))
			}
		case models.FieldUsername:
			// optional: only a provided username is checked
			if user.Username != "" && !usernamePattern.MatchString(user.Username) {
				return newFieldError(f, fmt.Sprintf("%q is not a valid username", user.Username))
			}
		case models.FieldPass:
			if user.Pass == "" {
				return newFieldError(f, "Password not provided")
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
