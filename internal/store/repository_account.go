// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-forum/internal/logger"
	"github.com/MKhiriev/go-forum/models"
)

// accountRepository is the SQL implementation of [AccountRepository] over
// the "accounts" table.
type accountRepository struct {
	*DB
	logger *logger.Logger
}

func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("AccountRepository created")
	return &accountRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateAccountQuery(r.builder(), account)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("failed to build query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.QueryRowContext(ctx, query, args...).Scan(&account.AccountID); err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Str("username", account.Username).Msg("error inserting account")

		violation, detail := r.classify(err)
		if violation == UniqueViolation {
			if strings.Contains(detail, "email") {
				return models.Account{}, ErrEmailAlreadyExists
			}
			return models.Account{}, ErrAccountAlreadyExists
		}

		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	account.Password = ""
	return account, nil
}

func (r *accountRepository) FindAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	return r.findAccount(ctx, "email", email)
}

func (r *accountRepository) FindAccountByUsername(ctx context.Context, username string) (models.Account, error) {
	return r.findAccount(ctx, "username", username)
}

func (r *accountRepository) FindAccountBySessionToken(ctx context.Context, token string) (models.Account, error) {
	if token == "" {
		return models.Account{}, ErrAccountNotFound
	}

	return r.findAccount(ctx, "session_token", token)
}

func (r *accountRepository) SetSessionToken(ctx context.Context, accountID int64, token string) error {
	return r.updateSessionToken(ctx, accountID, token)
}

func (r *accountRepository) ClearSessionToken(ctx context.Context, accountID int64) error {
	return r.updateSessionToken(ctx, accountID, nil)
}

func (r *accountRepository) findAccount(ctx context.Context, column string, value any) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindAccountQuery(r.builder(), column, value)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.findAccount").Str("column", column).Msg("failed to build query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var account models.Account
	err = r.QueryRowContext(ctx, query, args...).Scan(
		&account.AccountID,
		&account.Username,
		&account.Email,
		&account.PasswordHash,
		&account.SessionToken,
		&account.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.findAccount").Str("column", column).Msg("error scanning account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return account, nil
}

func (r *accountRepository) updateSessionToken(ctx context.Context, accountID int64, token any) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetSessionTokenQuery(r.builder(), accountID, token)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.updateSessionToken").Int64("account_id", accountID).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.updateSessionToken").Int64("account_id", accountID).Msg("error updating session token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}
