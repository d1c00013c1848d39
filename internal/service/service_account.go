// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/munch-accounts/internal/crypto"
	"github.com/MKhiriev/munch-accounts/internal/logger"
	"github.com/MKhiriev/munch-accounts/internal/store"
	"github.com/MKhiriev/munch-accounts/internal/utils"
	"github.com/MKhiriev/munch-accounts/models"
)

// accountService is the concrete implementation of AccountService.
type accountService struct {
	// userRepository is the users collection.
	userRepository store.UserRepository

	// hasher must be the one the repository hashes with, otherwise no
	// password ever matches.
	hasher crypto.CredentialHasher

	logger *logger.Logger
}

// NewAccountService constructs an AccountService over userRepository.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAccountService(userRepository store.UserRepository, hasher crypto.CredentialHasher, logger *logger.Logger) AccountService {
	return &accountService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// AddUser builds a user from email, username and pass and inserts it. The
// store assigns the id and timestamps and hashes the password.
//
// Returns the stored user or:
//   - ErrValidation if a format or required-field check fails.
//   - ErrDuplicateKey if the email or username is taken.
//   - ErrStore for any other store failure.
func (a *accountService) AddUser(ctx context.Context, email, username, pass string) (models.User, error) {
	log := logger.FromContext(ctx)

	created, err := a.userRepository.Insert(ctx, models.User{
		Email:    email,
		Username: username,
		Pass:     pass,
	})
	if err != nil {
		log.Err(err).Str("email", email).Str("username", username).Msg("error adding user to db")
		return models.User{}, kindOf(err)
	}

	return created, nil
}

// UpdateUser looks the user up by exact username and overwrites property
// with newValue. A changed pass is rehashed by the store on save.
//
// Lookup and save are two separate store calls; a concurrent writer between
// them is overwritten.
//
// Returns the saved user or:
//   - ErrValidation if property is not updatable or the new value is invalid.
//   - ErrNotFound if zero or several users have the username. Nothing is
//     written in that case.
//   - ErrUpdateFailed, together with the kind of the cause, if the save fails.
func (a *accountService) UpdateUser(ctx context.Context, username, property, newValue string) (models.User, error) {
	log := logger.FromContext(ctx)

	field, ok := models.ParseUserField(property)
	if !ok || !field.IsUpdatable() {
		log.Debug().Str("property", property).Msg("property cannot be updated")
		return models.User{}, fmt.Errorf("%w: property %q cannot be updated", ErrValidation, property)
	}

	found, err := a.userRepository.Find(ctx, models.UserFilter{Field: models.FieldUsername, Value: username})
	if err != nil {
		log.Err(err).Str("username", username).Msg("error querying db")
		return models.User{}, kindOf(err)
	}
	if len(found) != 1 {
		log.Debug().Str("username", username).Int("matches", len(found)).Msg("username not found")
		return models.User{}, ErrNotFound
	}

	user := found[0]
	switch field {
	case models.FieldEmail:
		user.Email = newValue
	case models.FieldUsername:
		user.Username = newValue
	case models.FieldPass:
		user.Pass = newValue
	}

	saved, err := a.userRepository.Save(ctx, user)
	if err != nil {
		log.Err(err).Str("username", username).Str("property", property).Msg("error when updating db")
		return models.User{}, fmt.Errorf("%w: %w", ErrUpdateFailed, kindOf(err))
	}

	return saved, nil
}

// Authenticate finds the single user whose property equals value, recomputes
// the digest of suppliedPass with the stored username and dateCreated, and
// compares it to the stored digest.
//
// The returned user still carries its digest; callers serving it outside the
// process must strip it.
//
// Returns the user or:
//   - ErrValidation if property is not a user document field.
//   - ErrNotFound if not exactly one user matches.
//   - ErrPasswordMismatch if the digests differ.
func (a *accountService) Authenticate(ctx context.Context, property, value, suppliedPass string) (models.User, error) {
	log := logger.FromContext(ctx)

	field, ok := models.ParseUserField(property)
	if !ok {
		log.Debug().Str("property", property).Msg("unknown property")
		return models.User{}, fmt.Errorf("%w: unknown property %q", ErrValidation, property)
	}

	found, err := a.userRepository.Find(ctx, models.UserFilter{Field: field, Value: value})
	if err != nil {
		log.Err(err).Str("property", property).Msg("error when querying db")
		return models.User{}, kindOf(err)
	}
	if len(found) != 1 {
		log.Debug().Str("property", property).Int("matches", len(found)).Msg("user not found")
		return models.User{}, ErrNotFound
	}

	user := found[0]
	digest := a.hasher.Hash(suppliedPass, user.Username, utils.FormatTimestamp(user.DateCreated))
	if digest != user.Pass {
		log.Debug().Str("user_id", user.ID).Msg("pass does not match")
		return models.User{}, ErrPasswordMismatch
	}

	return user, nil
}

// GetAllUsers returns every user. A store failure is returned, not
// swallowed.
func (a *accountService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := a.userRepository.FindAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error querying database")
		return nil, kindOf(err)
	}

	return users, nil
}

// GetUser returns the first user with the given username, or ErrNotFound.
func (a *accountService) GetUser(ctx context.Context, username string) (models.User, error) {
	found, err := a.userRepository.Find(ctx, models.UserFilter{Field: models.FieldUsername, Value: username})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("error querying db")
		return models.User{}, kindOf(err)
	}
	if len(found) == 0 {
		return models.User{}, ErrNotFound
	}

	return found[0], nil
}
