package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/munch-accounts/internal/app"
)

// errorMessagePrefix starts every plain-text error body the server writes.
const errorMessagePrefix = "::"

func mapHTTPError(resp *resty.Response) error {
	body := strings.TrimSpace(string(resp.Body()))

	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		// legacy servers report errors with 200
		if strings.HasPrefix(body, errorMessagePrefix) {
			return mapErrorMessage(body)
		}
		return nil
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedResponse, resp.StatusCode(), body)
	}
}

// mapErrorMessage classifies an error body by its text alone.
func mapErrorMessage(body string) error {
	switch {
	case body == app.MsgPassDoesNotMatch:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case body == app.MsgUserNotFound, body == app.MsgUsernameNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case strings.HasSuffix(body, ": "+app.MsgDuplicateKey):
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case strings.HasPrefix(body, app.MsgErrorAddingUser+": "):
		// a reason after the generic message is a validation failure
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	default:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	}
}
