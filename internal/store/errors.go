// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAccountAlreadyExists is returned when an insert into accounts hits a
	// UNIQUE constraint other than the email one (in practice the username).
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrEmailAlreadyExists is returned when an insert into accounts collides
	// with an existing email address.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrAccountNotFound is returned when a lookup by username, email or
	// session token matches no account.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrDiscussionNotFound is returned when a discussion id does not exist.
	ErrDiscussionNotFound = errors.New("discussion was not found")

	// ErrPostNotFound is returned when a post id does not exist, including
	// updates and deletes that affect zero rows.
	ErrPostNotFound = errors.New("post was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDialect is returned by [NewConnect] for a DSN that selects
	// no known driver.
	ErrUnsupportedDialect = errors.New("unsupported database dialect")
)
