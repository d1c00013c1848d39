package models

import "github.com/MKhiriev/munch-accounts/internal/utils"

// UserResponse is the user document as served over HTTP. The password
// digest is never part of it. Timestamps use the stored rendering: decimal
// Unix epoch milliseconds.
type UserResponse struct {
	ID          string `json:"_id"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	DateCreated string `json:"dateCreated"`
	DateUpdated string `json:"dateUpdated"`
}

func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Username:    u.Username,
		DateCreated: utils.FormatTimestamp(u.DateCreated),
		DateUpdated: utils.FormatTimestamp(u.DateUpdated),
	}
}

// NewUserResponses converts a listing. An empty listing is an empty, non-nil
// slice so it encodes as [].
func NewUserResponses(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, NewUserResponse(u))
	}
	return responses
}
