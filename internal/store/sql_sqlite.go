package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/munch-accounts/internal/config"
	"github.com/MKhiriev/munch-accounts/internal/logger"
)

const (
	sqliteScheme = "sqlite://"
	sqliteMemory = ":memory:"
)

func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn := strings.TrimPrefix(cfg.DSN, sqliteScheme)

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	if isSQLiteMemory(dsn) {
		// every new connection would open its own empty database
		conn.SetMaxOpenConns(1)
	} else {
		setPoolLimits(conn, cfg)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, closeOnError(conn, fmt.Errorf("error connecting database: %w", err))
	}
	log.Info().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		dialect:            sqliteDialect,
		logger:             log,
		errorClassificator: NewSQLiteErrorClassifier(),
	}, nil
}

func isSQLiteMemory(dsn string) bool {
	path, query, _ := strings.Cut(dsn, "?")
	return path == sqliteMemory ||
		path == "file:"+sqliteMemory ||
		strings.Contains(query, "mode=memory")
}
