package client

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/munch-accounts/internal/adapter"
	"github.com/MKhiriev/munch-accounts/internal/logger"
	"github.com/MKhiriev/munch-accounts/internal/mock"
	"github.com/MKhiriev/munch-accounts/models"
)

var alice = models.UserResponse{
	ID:          "id-1",
	Email:       "alice@example.com",
	Username:    "alice",
	DateCreated: "1700000000000",
	DateUpdated: "1700000000000",
}

func newTestApp(t *testing.T) (*App, *mock.MockAccountsAdapter, *bytes.Buffer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	accounts := mock.NewMockAccountsAdapter(ctrl)
	var out bytes.Buffer
	return NewApp(accounts, &out, logger.Nop()), accounts, &out
}

func TestRun_Create(t *testing.T) {
	app, accounts, out := newTestApp(t)
	accounts.EXPECT().
		Create(gomock.Any(), "alice@example.com", "alice", "secret").
		Return(alice, nil)

	err := app.Run(context.Background(), []string{"create", "alice@example.com", "alice", "secret"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), `"username": "alice"`)
	assert.Contains(t, out.String(), `"_id": "id-1"`)
}

func TestRun_Auth(t *testing.T) {
	app, accounts, out := newTestApp(t)
	accounts.EXPECT().Authenticate(gomock.Any(), "alice", "secret").Return(alice, nil)

	require.NoError(t, app.Run(context.Background(), []string{"auth", "alice", "secret"}))
	assert.Contains(t, out.String(), `"email": "alice@example.com"`)
}

func TestRun_Users(t *testing.T) {
	app, accounts, out := newTestApp(t)
	accounts.EXPECT().ListUsers(gomock.Any()).Return([]models.UserResponse{alice}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"users"}))
	assert.True(t, bytes.HasPrefix(out.Bytes(), []byte("[")))
}

func TestRun_User(t *testing.T) {
	app, accounts, _ := newTestApp(t)
	accounts.EXPECT().GetUser(gomock.Any(), "alice").Return(alice, nil)

	require.NoError(t, app.Run(context.Background(), []string{"user", "alice"}))
}

func TestRun_Version(t *testing.T) {
	app, accounts, out := newTestApp(t)
	accounts.EXPECT().Version(gomock.Any()).Return("v1.2.3", nil)

	require.NoError(t, app.Run(context.Background(), []string{"version"}))
	assert.Equal(t, "v1.2.3\n", out.String())
}

func TestRun_AdapterError(t *testing.T) {
	app, accounts, out := newTestApp(t)
	accounts.EXPECT().
		Authenticate(gomock.Any(), "alice", "wrong").
		Return(models.UserResponse{}, fmt.Errorf("%w: :: pass does not match", adapter.ErrUnauthorized))

	err := app.Run(context.Background(), []string{"auth", "alice", "wrong"})

	require.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Empty(t, out.String())
}

func TestRun_BadInvocation(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "no command", wantErr: ErrNoCommand},
		{name: "unknown command", args: []string{"delete", "alice"}, wantErr: ErrUnknownCommand},
		{name: "too few args", args: []string{"create", "a@b.com", "alice"}, wantErr: ErrWrongArgs},
		{name: "too many args", args: []string{"users", "extra"}, wantErr: ErrWrongArgs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, _ := newTestApp(t)

			err := app.Run(context.Background(), tt.args)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
