package http

import (
	"context"

	"github.com/MKhiriev/munch-accounts/models"
)

// ---- Mock: AccountService ----

type mockAccountService struct {
	addUser      func(ctx context.Context, email, username, pass string) (models.User, error)
	updateUser   func(ctx context.Context, username, property, newValue string) (models.User, error)
	authenticate func(ctx context.Context, property, value, suppliedPass string) (models.User, error)
	getAllUsers  func(ctx context.Context) ([]models.User, error)
	getUser      func(ctx context.Context, username string) (models.User, error)
}

func (m *mockAccountService) AddUser(ctx context.Context, email, username, pass string) (models.User, error) {
	return m.addUser(ctx, email, username, pass)
}

func (m *mockAccountService) UpdateUser(ctx context.Context, username, property, newValue string) (models.User, error) {
	return m.updateUser(ctx, username, property, newValue)
}

func (m *mockAccountService) Authenticate(ctx context.Context, property, value, suppliedPass string) (models.User, error) {
	return m.authenticate(ctx, property, value, suppliedPass)
}

func (m *mockAccountService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return m.getAllUsers(ctx)
}

func (m *mockAccountService) GetUser(ctx context.Context, username string) (models.User, error) {
	return m.getUser(ctx, username)
}

// ---- Mock: AppInfoService ----

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}
