// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Violation is the result type returned by [ErrorClassificator.Classify].
// It names the kind of integrity constraint a failed statement broke.
type Violation int

const (
	// NoViolation is returned for nil errors and for errors that are not
	// integrity constraint violations (connection loss, syntax errors, etc.).
	NoViolation Violation = iota

	// UniqueViolation indicates a UNIQUE or PRIMARY KEY collision.
	UniqueViolation

	// ForeignKeyViolation indicates a reference to a missing row.
	ForeignKeyViolation

	// NotNullViolation indicates a NULL written into a NOT NULL column.
	NotNullViolation
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// *pgconn.PgError and delegates to [ClassifyPgError]. The second result is
// the violated constraint name, e.g. "accounts_email_key".
func (c *PostgresErrorClassifier) Classify(err error) (Violation, string) {
	if err == nil {
		return NoViolation, ""
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr), pgErr.ConstraintName
	}

	return NoViolation, ""
}

// ClassifyPgError maps a *pgconn.PgError to a [Violation] based on the
// PostgreSQL error code (class 23, integrity constraint violations).
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) Violation {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return UniqueViolation
	case pgerrcode.ForeignKeyViolation:
		return ForeignKeyViolation
	case pgerrcode.NotNullViolation:
		return NotNullViolation
	}

	return NoViolation
}
