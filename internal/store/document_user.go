package store

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/munch-accounts/internal/utils"
	"github.com/MKhiriev/munch-accounts/models"
)

// userDocument is the stored JSON form of a user. The id lives in its own
// column.
type userDocument struct {
	Email       string `json:"email"`
	Username    string `json:"username"`
	DateCreated string `json:"dateCreated"`
	DateUpdated string `json:"dateUpdated"`
	Pass        string `json:"pass"`
}

func encodeUserDocument(user models.User) (string, error) {
	doc := userDocument{
		Email:       user.Email,
		Username:    user.Username,
		DateCreated: utils.FormatTimestamp(user.DateCreated),
		DateUpdated: utils.FormatTimestamp(user.DateUpdated),
		Pass:        user.Pass,
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	return string(b), nil
}

// decodeUserDocument rebuilds a stored user and marks it persisted.
func decodeUserDocument(id, document string) (models.User, error) {
	var doc userDocument
	if err := json.Unmarshal([]byte(document), &doc); err != nil {
		return models.User{}, fmt.Errorf("%w: user %s: %w", ErrEncodingDocument, id, err)
	}

	created, err := utils.ParseTimestamp(doc.DateCreated)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: user %s dateCreated: %w", ErrEncodingDocument, id, err)
	}

	updated, err := utils.ParseTimestamp(doc.DateUpdated)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: user %s dateUpdated: %w", ErrEncodingDocument, id, err)
	}

	user := models.User{
		ID:          id,
		Email:       doc.Email,
		Username:    doc.Username,
		DateCreated: created,
		DateUpdated: updated,
		Pass:        doc.Pass,
	}
	user.MarkPersisted()

	return user, nil
}
