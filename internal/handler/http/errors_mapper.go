package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/munch-accounts/internal/app"
	"github.com/MKhiriev/munch-accounts/internal/logger"
	"github.com/MKhiriev/munch-accounts/internal/service"
	"github.com/MKhiriev/munch-accounts/internal/utils"
	"github.com/MKhiriev/munch-accounts/internal/validators"
)

// errorStatusMap holds one entry per error kind. The kinds are exclusive, so
// at most one entry matches.
var errorStatusMap = map[error]int{
	service.ErrValidation:       http.StatusBadRequest,
	service.ErrDuplicateKey:     http.StatusConflict,
	service.ErrNotFound:         http.StatusNotFound,
	service.ErrPasswordMismatch: http.StatusUnauthorized,
	service.ErrStore:            http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the response body for err. fallback is the
// route's generic failure message.
func messageFromError(err error, fallback string) string {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return app.MsgUserNotFound
	case errors.Is(err, service.ErrPasswordMismatch):
		return app.MsgPassDoesNotMatch
	case errors.Is(err, service.ErrDuplicateKey):
		return fallback + ": " + app.MsgDuplicateKey
	}

	var fieldErr *validators.FieldError
	if errors.As(err, &fieldErr) {
		return fallback + ": " + fieldErr.Message
	}

	return fallback
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := statusFromError(err)
	logger.FromRequest(r).Err(err).Int("status", status).Msg(fallback)

	if h.legacyStatusCodes {
		status = http.StatusOK
	}

	if _, werr := utils.WriteText(w, messageFromError(err, fallback), status); werr != nil {
		logger.FromRequest(r).Err(werr).Msg("error writing response")
	}
}
