// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/munch-accounts/migrations"
	"github.com/MKhiriev/munch-accounts/models"
)

const (
	usersTable     = "users"
	idColumn       = "id"
	documentColumn = "document"
)

// dialect is what differs between the SQL backends of the users collection:
// placeholders, how a document property is addressed and how a document
// value is written.
type dialect struct {
	name        string
	migrations  migrations.Dialect
	placeholder sq.PlaceholderFormat

	// idExpr and documentExpr are the selected forms of the two columns,
	// both read as text.
	idExpr       string
	documentExpr string

	// propertyFormat addresses a top-level document property as text.
	propertyFormat string

	// documentValueFormat wraps the placeholder of a document written as text.
	documentValueFormat string
}

var (
	postgresDialect = dialect{
		name:                "postgres",
		migrations:          migrations.DialectPostgres,
		placeholder:         sq.Dollar,
		idExpr:              "id::text",
		documentExpr:        "document::text",
		propertyFormat:      "document->>'%s'",
		documentValueFormat: "CAST(? AS TEXT)::jsonb",
	}

	sqliteDialect = dialect{
		name:                "sqlite",
		migrations:          migrations.DialectSQLite,
		placeholder:         sq.Question,
		idExpr:              "id",
		documentExpr:        "document",
		propertyFormat:      "json_extract(document, '$.%s')",
		documentValueFormat: "json(?)",
	}
)

// fieldExpr returns the SQL expression holding field. Only known fields
// reach the format string.
func (d dialect) fieldExpr(field models.UserField) (string, error) {
	if _, ok := models.ParseUserField(field.String()); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	if field == models.FieldID {
		return d.idExpr, nil
	}

	return fmt.Sprintf(d.propertyFormat, field), nil
}

func (d dialect) documentValue(document string) sq.Sqlizer {
	return sq.Expr(d.documentValueFormat, document)
}

func (d dialect) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(d.placeholder)
}

func (d dialect) selectUsers() sq.SelectBuilder {
	return d.builder().
		Select(d.idExpr, d.documentExpr).
		From(usersTable).
		OrderBy(idColumn)
}

func (d dialect) insertUser(id, document string) sq.InsertBuilder {
	return d.builder().
		Insert(usersTable).
		Columns(idColumn, documentColumn).
		Values(id, d.documentValue(document))
}

func (d dialect) updateUser(id, document string) sq.UpdateBuilder {
	return d.builder().
		Update(usersTable).
		Set(documentColumn, d.documentValue(document)).
		Where(sq.Eq{d.idExpr: id})
}
