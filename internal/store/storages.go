package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/munch-accounts/internal/config"
	"github.com/MKhiriev/munch-accounts/internal/crypto"
	"github.com/MKhiriev/munch-accounts/internal/logger"
	"github.com/MKhiriev/munch-accounts/internal/validators"
)

// Storages groups the repositories of the service together with the
// connection they share.
type Storages struct {
	UserRepository UserRepository

	db *DB
}

// NewStorages initialises the storage layer:
//  1. Opens the backend selected by cfg.DSN (see [NewConnect]).
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires a [UserRepository] hashing passwords with hasher.
func NewStorages(ctx context.Context, cfg config.DB, hasher crypto.CredentialHasher, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("migration failed")
		return nil, closeOnError(db.DB, fmt.Errorf("migration failed: %w", err))
	}

	return &Storages{
		UserRepository: NewUserRepository(db, hasher, validators.NewUserValidator(), log),
		db:             db,
	}, nil
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
