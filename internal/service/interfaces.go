package service

import (
	"context"

	"github.com/MKhiriev/munch-accounts/models"
)

// AccountService holds the account operations. Every method is a single
// request/response against the store; there are no retries and no
// transactions.
type AccountService interface {
	// AddUser stores a new user built from the three fields only.
	AddUser(ctx context.Context, email, username, pass string) (models.User, error)

	// UpdateUser overwrites one property of the user with the given
	// username and saves it. Only email, username and pass are updatable.
	UpdateUser(ctx context.Context, username, property, newValue string) (models.User, error)

	// Authenticate finds the single user whose property equals value and
	// checks suppliedPass against its stored digest.
	Authenticate(ctx context.Context, property, value, suppliedPass string) (models.User, error)

	// GetAllUsers lists every user, unfiltered and unpaginated.
	GetAllUsers(ctx context.Context) ([]models.User, error)

	// GetUser returns the first user with the given username.
	GetUser(ctx context.Context, username string) (models.User, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AccountServiceWrapper defines middleware composition for AccountService.
// Implementations wrap an existing AccountService to add behavior such as
// logging.
type AccountServiceWrapper interface {
	Wrap(AccountService) AccountService // returns a decorated AccountService applying additional behavior
}
