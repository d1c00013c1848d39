package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/munch-accounts/internal/logger"
	"github.com/MKhiriev/munch-accounts/models"
)

// AccountLoggingService records every AccountService call: operation name,
// outcome and duration. Passwords are never logged.
type AccountLoggingService struct {
	inner AccountService
}

func NewAccountLoggingService() AccountServiceWrapper {
	return &AccountLoggingService{}
}

func (s *AccountLoggingService) Wrap(inner AccountService) AccountService {
	s.inner = inner
	return s
}

func (s *AccountLoggingService) AddUser(ctx context.Context, email, username, pass string) (models.User, error) {
	start := time.Now()
	user, err := s.inner.AddUser(ctx, email, username, pass)
	logCall(ctx, "AddUser", start, err).Str("username", username).Msg("account operation")
	return user, err
}

func (s *AccountLoggingService) UpdateUser(ctx context.Context, username, property, newValue string) (models.User, error) {
	start := time.Now()
	user, err := s.inner.UpdateUser(ctx, username, property, newValue)
	logCall(ctx, "UpdateUser", start, err).Str("username", username).Str("property", property).Msg("account operation")
	return user, err
}

func (s *AccountLoggingService) Authenticate(ctx context.Context, property, value, suppliedPass string) (models.User, error) {
	start := time.Now()
	user, err := s.inner.Authenticate(ctx, property, value, suppliedPass)
	logCall(ctx, "Authenticate", start, err).Str("property", property).Msg("account operation")
	return user, err
}

func (s *AccountLoggingService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	start := time.Now()
	users, err := s.inner.GetAllUsers(ctx)
	logCall(ctx, "GetAllUsers", start, err).Int("count", len(users)).Msg("account operation")
	return users, err
}

func (s *AccountLoggingService) GetUser(ctx context.Context, username string) (models.User, error) {
	start := time.Now()
	user, err := s.inner.GetUser(ctx, username)
	logCall(ctx, "GetUser", start, err).Str("username", username).Msg("account operation")
	return user, err
}

func logCall(ctx context.Context, op string, start time.Time, err error) *zerolog.Event {
	log := logger.FromContext(ctx)

	event := log.Info()
	if err != nil {
		event = log.Warn().Err(err)
	}

	return event.
		Str("op", op).
		Bool("ok", err == nil).
		Dur("duration", time.Since(start))
}
