package validators

import "errors"

var (
	// ErrValidation is the kind every format or required-field failure wraps.
	ErrValidation = errors.New("validation failed")

	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// FieldError reports one failed document property. Message is the text shown
// to clients; Unwrap yields ErrValidation.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

func (e *FieldError) Unwrap() error {
	return ErrValidation
}

func newFieldError(field, message string) error {
	return &FieldError{Field: field, Message: message}
}
