package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("pass does not match")
	ErrNotFound            = errors.New("user not found")
	ErrConflict            = errors.New("email or username already exists")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedResponse  = errors.New("unexpected response")
)
