// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/munch-accounts/internal/app"
	"github.com/MKhiriev/munch-accounts/internal/logger"
	"github.com/MKhiriev/munch-accounts/internal/utils"
	"github.com/MKhiriev/munch-accounts/models"
)

// authenticate handles GET /auth?username=&pass=.
func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	user, err := h.services.AccountService.Authenticate(r.Context(),
		models.FieldUsername.String(), query.Get("username"), query.Get("pass"))
	if err != nil {
		h.writeError(w, r, err, app.MsgErrorWhenQueryingDB)
		return
	}

	h.writeJSON(w, r, models.NewUserResponse(user))
}

// createUser handles GET /create?username=&email=&pass=.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	user, err := h.services.AccountService.AddUser(r.Context(),
		query.Get("email"), query.Get("username"), query.Get("pass"))
	if err != nil {
		h.writeError(w, r, err, app.MsgErrorAddingUser)
		return
	}

	h.writeJSON(w, r, models.NewUserResponse(user))
}

// getAllUsers handles GET /users.
func (h *Handler) getAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.AccountService.GetAllUsers(r.Context())
	if err != nil {
		h.writeError(w, r, err, app.MsgErrorQueryingDatabase)
		return
	}

	h.writeJSON(w, r, models.NewUserResponses(users))
}

// getUser handles GET /user/{username}.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.AccountService.GetUser(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		h.writeError(w, r, err, app.MsgErrorQueryingDB)
		return
	}

	h.writeJSON(w, r, models.NewUserResponse(user))
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
