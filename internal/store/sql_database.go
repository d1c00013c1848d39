package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/MKhiriev/munch-accounts/internal/config"
	"github.com/MKhiriev/munch-accounts/internal/logger"
	"github.com/MKhiriev/munch-accounts/migrations"
)

// ErrorClassificator sorts driver errors into the classes the repository
// reacts to.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB is a connection pool bound to one SQL dialect.
type DB struct {
	*sql.DB
	dialect            dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the backend the DSN points at: PostgreSQL for
// postgres:// URLs and key/value DSNs, SQLite for file paths, file: URIs and
// :memory:.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case isPostgresDSN(cfg.DSN):
		return NewConnectPostgres(ctx, cfg, log)
	case isSQLiteDSN(cfg.DSN):
		return NewConnectSQLite(ctx, cfg, log)
	default:
		log.Error().Str("func", "NewConnect").Msg("unsupported database dsn")
		return nil, ErrUnsupportedDSN
	}
}

// Migrate applies the embedded schema for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect.migrations)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}

func isSQLiteDSN(dsn string) bool {
	if dsn == "" {
		return false
	}

	path, _, _ := strings.Cut(strings.TrimPrefix(dsn, sqliteScheme), "?")
	return strings.HasPrefix(dsn, sqliteScheme) ||
		strings.HasPrefix(dsn, "file:") ||
		path == sqliteMemory ||
		strings.HasSuffix(path, ".db") ||
		strings.HasSuffix(path, ".sqlite") ||
		strings.HasSuffix(path, ".sqlite3")
}

func setPoolLimits(conn *sql.DB, cfg config.DB) {
	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
		conn.SetMaxIdleConns(cfg.MaxOpenConns)
	}
}

func closeOnError(conn *sql.DB, err error) error {
	if cerr := conn.Close(); cerr != nil {
		return fmt.Errorf("%w (close: %v)", err, cerr)
	}
	return err
}
