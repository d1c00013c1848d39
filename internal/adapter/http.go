// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/munch-accounts/internal/config"
	"github.com/MKhiriev/munch-accounts/internal/logger"
	"github.com/MKhiriev/munch-accounts/internal/utils"
	"github.com/MKhiriev/munch-accounts/models"
)

type httpAccountsAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPAccountsAdapter returns an [AccountsAdapter] talking to
// cfg.HTTPAddress. The address may omit the scheme, "http" is assumed then.
func NewHTTPAccountsAdapter(cfg config.ClientAdapter, logger *logger.Logger) (AccountsAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpAccountsAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAccountsAdapter) Create(ctx context.Context, email, username, pass string) (models.UserResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"username": username,
			"email":    email,
			"pass":     pass,
		}).
		Get("/create")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("create request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	return decode[models.UserResponse](resp.Body(), "create")
}

func (h *httpAccountsAdapter) Authenticate(ctx context.Context, username, pass string) (models.UserResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"username": username,
			"pass":     pass,
		}).
		Get("/auth")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("auth request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	return decode[models.UserResponse](resp.Body(), "auth")
}

func (h *httpAccountsAdapter) ListUsers(ctx context.Context) ([]models.UserResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/users")
	if err != nil {
		return nil, fmt.Errorf("users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decode[[]models.UserResponse](resp.Body(), "users")
}

func (h *httpAccountsAdapter) GetUser(ctx context.Context, username string) (models.UserResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("username", username).
		Get("/user/{username}")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	return decode[models.UserResponse](resp.Body(), "user")
}

func (h *httpAccountsAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func decode[T any](body []byte, op string) (T, error) {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return v, fmt.Errorf("%w: decode %s response: %v", ErrUnexpectedResponse, op, err)
	}
	return v, nil
}
