// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-forum/internal/config"
	"github.com/MKhiriev/go-forum/internal/logger"
	"github.com/MKhiriev/go-forum/migrations"
)

// Dialect names the SQL flavour behind a [DB]. Its value doubles as the
// database/sql driver name and the goose dialect.
type Dialect string

const (
	DialectSQLite   Dialect = migrations.DialectSQLite
	DialectPostgres Dialect = migrations.DialectPostgres
)

// DialectFromDSN picks PostgreSQL for postgres:// and postgresql:// URLs and
// SQLite for everything else.
func DialectFromDSN(dsn string) Dialect {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return DialectPostgres
	}

	return DialectSQLite
}

func (d Dialect) placeholder() sq.PlaceholderFormat {
	if d == DialectPostgres {
		return sq.Dollar
	}

	return sq.Question
}

// DB is the shared connection pool used by every repository.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the store selected by cfg.DSN.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch DialectFromDSN(cfg.DSN) {
	case DialectPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case DialectSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDialect, cfg.DSN)
	}
}

// Migrate brings the schema up to date for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

func (db *DB) Dialect() Dialect {
	return db.dialect
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.dialect.placeholder())
}

func (db *DB) classify(err error) (Violation, string) {
	if err == nil || db.errorClassificator == nil {
		return NoViolation, ""
	}

	return db.errorClassificator.Classify(err)
}
