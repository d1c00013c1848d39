// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserField names a property of the user document. The values are the
// document keys, so they double as query parameters and filter paths.
type UserField string

const (
	FieldID          UserField = "_id"
	FieldEmail       UserField = "email"
	FieldUsername    UserField = "username"
	FieldPass        UserField = "pass"
	FieldDateCreated UserField = "dateCreated"
	FieldDateUpdated UserField = "dateUpdated"
)

var userFields = map[UserField]struct{}{
	FieldID:          {},
	FieldEmail:       {},
	FieldUsername:    {},
	FieldPass:        {},
	FieldDateCreated: {},
	FieldDateUpdated: {},
}

// ParseUserField converts a raw property name to a UserField. ok is false
// for names that are not document keys.
func ParseUserField(name string) (field UserField, ok bool) {
	field = UserField(name)
	_, ok = userFields[field]
	return field, ok
}

// IsUpdatable reports whether the field may be overwritten through an
// update. Identifiers and timestamps are managed by the store.
func (f UserField) IsUpdatable() bool {
	switch f {
	case FieldEmail, FieldUsername, FieldPass:
		return true
	default:
		return false
	}
}

func (f UserField) String() string {
	return string(f)
}

// UserFilter is an exact-match condition on one document property.
type UserFilter struct {
	Field UserField
	Value string
}
