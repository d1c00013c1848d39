// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/munch-accounts/internal/config"
	"github.com/MKhiriev/munch-accounts/internal/crypto"
	"github.com/MKhiriev/munch-accounts/internal/logger"
	"github.com/MKhiriev/munch-accounts/models"
)

func newSQLiteUserRepo(t *testing.T) *userRepository {
	t.Helper()

	storages, err := NewStorages(context.Background(), config.DB{DSN: ":memory:"}, crypto.NewSHA256Hasher("MediaMunch"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	repo, ok := storages.UserRepository.(*userRepository)
	require.True(t, ok)

	var ms int64 = testCreated
	repo.now = func() time.Time {
		ms += 1000
		return time.UnixMilli(ms)
	}

	return repo
}

func TestSQLite_InsertAndFind(t *testing.T) {
	repo := newSQLiteUserRepo(t)
	ctx := context.Background()

	created, err := repo.Insert(ctx, models.User{Email: "a@b.com", Username: "alice", Pass: "secret"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, "secret", created.Pass)
	assert.Len(t, created.Pass, 64)

	for _, filter := range []models.UserFilter{
		{Field: models.FieldID, Value: created.ID},
		{Field: models.FieldEmail, Value: "a@b.com"},
		{Field: models.FieldUsername, Value: "alice"},
		{Field: models.FieldPass, Value: created.Pass},
		{Field: models.FieldDateCreated, Value: "1700000001000"},
	} {
		t.Run(filter.Field.String(), func(t *testing.T) {
			found, err := repo.Find(ctx, filter)
			require.NoError(t, err)
			require.Len(t, found, 1)
			assert.Equal(t, created, found[0])
		})
	}

	none, err := repo.Find(ctx, models.UserFilter{Field: models.FieldUsername, Value: "Alice"})
	require.NoError(t, err)
	assert.Empty(t, none, "matching is exact and case sensitive")
}

func TestSQLite_Uniqueness(t *testing.T) {
	repo := newSQLiteUserRepo(t)
	ctx := context.Background()

	_, err := repo.Insert(ctx, models.User{Email: "a@b.com", Username: "alice", Pass: "secret"})
	require.NoError(t, err)

	_, err = repo.Insert(ctx, models.User{Email: "a@b.com", Username: "bob", Pass: "secret"})
	assert.ErrorIs(t, err, ErrDuplicateKey, "same email")

	_, err = repo.Insert(ctx, models.User{Email: "c@d.com", Username: "alice", Pass: "secret"})
	assert.ErrorIs(t, err, ErrDuplicateKey, "same username")

	_, err = repo.Insert(ctx, models.User{Email: "A@b.com", Username: "Alice", Pass: "secret"})
	assert.NoError(t, err, "uniqueness is case sensitive")

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSQLite_SaveRehashesOnlyModifiedPass(t *testing.T) {
	repo := newSQLiteUserRepo(t)
	ctx := context.Background()

	created, err := repo.Insert(ctx, models.User{Email: "a@b.com", Username: "alice", Pass: "secret"})
	require.NoError(t, err)

	created.Email = "new@b.com"
	saved, err := repo.Save(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, created.Pass, saved.Pass)
	assert.True(t, saved.DateUpdated.After(saved.DateCreated))

	saved.Pass = "changed"
	rehashed, err := repo.Save(ctx, saved)
	require.NoError(t, err)
	assert.NotEqual(t, "changed", rehashed.Pass)
	assert.NotEqual(t, created.Pass, rehashed.Pass)
	assert.Equal(t, created.DateCreated, rehashed.DateCreated)

	found, err := repo.Find(ctx, models.UserFilter{Field: models.FieldEmail, Value: "new@b.com"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, rehashed, found[0])
}

func TestSQLite_SaveMissingUser(t *testing.T) {
	repo := newSQLiteUserRepo(t)

	ghost, err := decodeUserDocument("missing", testDocument)
	require.NoError(t, err)

	_, err = repo.Save(context.Background(), ghost)

	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestSQLite_FindAllInsertionOrder(t *testing.T) {
	repo := newSQLiteUserRepo(t)
	repo.ids = sequentialIDs()
	ctx := context.Background()

	for _, name := range []string{"carol", "alice", "bob"} {
		_, err := repo.Insert(ctx, models.User{Email: name + "@b.com", Username: name, Pass: "secret"})
		require.NoError(t, err)
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "carol", all[0].Username)
	assert.Equal(t, "alice", all[1].Username)
	assert.Equal(t, "bob", all[2].Username)
}

type sequence struct{ ids []string }

func (s *sequence) NewID() string {
	id := s.ids[0]
	s.ids = s.ids[1:]
	return id
}

func sequentialIDs() *sequence {
	return &sequence{ids: []string{"id-1", "id-2", "id-3"}}
}
