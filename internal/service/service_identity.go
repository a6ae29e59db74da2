package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-forum/internal/config"
	"github.com/MKhiriev/go-forum/internal/crypto"
	"github.com/MKhiriev/go-forum/internal/logger"
	"github.com/MKhiriev/go-forum/internal/store"
	"github.com/MKhiriev/go-forum/internal/utils"
	"github.com/MKhiriev/go-forum/models"
)

// identityService is the concrete implementation of IdentityService.
// It handles account registration, credential verification and the session
// lifecycle using an AccountRepository for persistence, a PasswordHasher for
// one-way password hashes and HS256 envelopes around opaque session tokens.
type identityService struct {
	// accountRepository is the data-access layer used to create and look up accounts.
	accountRepository store.AccountRepository

	hasher         crypto.PasswordHasher
	tokenGenerator TokenGenerator

	// signKey is the HMAC secret used to sign and verify session envelopes.
	signKey string

	// issuer is the "iss" claim embedded in every envelope. Envelopes whose
	// issuer does not match are rejected.
	issuer string

	// duration controls how long a newly issued envelope remains valid.
	duration time.Duration

	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewIdentityService constructs a new IdentityService wired to the given
// AccountRepository and populated with session parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewIdentityService(
	accountRepository store.AccountRepository,
	hasher crypto.PasswordHasher,
	tokenGenerator TokenGenerator,
	cfg config.App,
	logger *logger.Logger,
) IdentityService {
	return &identityService{
		accountRepository: accountRepository,
		hasher:            hasher,
		tokenGenerator:    tokenGenerator,
		signKey:           cfg.SecretKey,
		issuer:            cfg.SessionIssuer,
		duration:          cfg.SessionDuration,
		now:               time.Now,
		logger:            logger,
	}
}

// Register creates a new account.
//
// Returns the persisted account (with a store-assigned AccountID) or:
//   - ErrDuplicateEmail if an account with the same email exists. Nothing
//     is created in that case.
//   - ErrInvalidDataProvided if the password cannot be hashed (too long).
//   - A wrapped storage error otherwise (e.g. username already taken, see
//     store.ErrAccountAlreadyExists).
func (s *identityService) Register(ctx context.Context, username, email, password string) (models.Account, error) {
	log := logger.FromContext(ctx)

	_, err := s.accountRepository.FindAccountByEmail(ctx, email)
	switch {
	case err == nil:
		log.Info().Str("username", username).Msg("registration rejected: email is taken")
		return models.Account{}, ErrDuplicateEmail
	case !errors.Is(err, store.ErrAccountNotFound):
		log.Err(err).Str("username", username).Msg("email lookup failed")
		return models.Account{}, fmt.Errorf("email lookup failed: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if errors.Is(err, crypto.ErrPasswordTooLong) {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err != nil {
		log.Err(err).Str("username", username).Msg("password hashing failed")
		return models.Account{}, fmt.Errorf("password hashing failed: %w", err)
	}

	account, err := s.accountRepository.CreateAccount(ctx, models.Account{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC().Truncate(time.Microsecond),
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		// lost a race with a concurrent registration
		return models.Account{}, ErrDuplicateEmail
	}
	if err != nil {
		log.Err(err).Str("username", username).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	log.Info().Int64("account_id", account.AccountID).Str("username", username).Msg("account registered")
	return account, nil
}

// Authenticate verifies the credentials and opens a new session.
//
// A fresh token replaces any token stored on the account, so the previous
// session stops validating. Unknown usernames and wrong passwords both yield
// ErrInvalidCredentials and store nothing.
func (s *identityService) Authenticate(ctx context.Context, username, password string) (models.Session, error) {
	log := logger.FromContext(ctx)

	account, err := s.accountRepository.FindAccountByUsername(ctx, username)
	if errors.Is(err, store.ErrAccountNotFound) {
		log.Info().Str("username", username).Msg("login rejected: unknown username")
		return models.Session{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", username).Msg("account search by username failed")
		return models.Session{}, fmt.Errorf("account search by username failed: %w", err)
	}

	if err = s.hasher.Compare(account.PasswordHash, password); err != nil {
		if !errors.Is(err, crypto.ErrMismatchedPassword) {
			log.Err(err).Int64("account_id", account.AccountID).Msg("stored password hash is unusable")
		}
		log.Info().Str("username", username).Msg("login rejected: wrong password")
		return models.Session{}, ErrInvalidCredentials
	}

	token, err := s.tokenGenerator.Generate()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	signed, expiresAt, err := utils.GenerateSessionJWT(s.issuer, token, s.duration, s.signKey, s.now())
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if err = s.accountRepository.SetSessionToken(ctx, account.AccountID, token); err != nil {
		log.Err(err).Int64("account_id", account.AccountID).Msg("storing session token failed")
		return models.Session{}, fmt.Errorf("storing session token failed: %w", err)
	}

	log.Info().Int64("account_id", account.AccountID).Msg("session opened")
	return models.Session{
		AccountID:    account.AccountID,
		Token:        token,
		SignedString: signed,
		ExpiresAt:    expiresAt,
	}, nil
}

// ValidateSession resolves a signed session envelope to its account.
//
// Any failure (bad signature, wrong issuer, expiry, a token that is no longer
// stored) is reported as ErrUnauthenticated.
func (s *identityService) ValidateSession(ctx context.Context, signed string) (models.Account, error) {
	log := logger.FromContext(ctx)

	if signed == "" {
		return models.Account{}, ErrUnauthenticated
	}

	token, err := utils.ParseSessionJWT(signed, s.signKey, s.issuer)
	if err != nil {
		log.Debug().Err(err).Msg("session envelope rejected")
		return models.Account{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	account, err := s.accountRepository.FindAccountBySessionToken(ctx, token)
	if err != nil {
		if !errors.Is(err, store.ErrAccountNotFound) {
			log.Err(err).Msg("session token lookup failed")
		}
		return models.Account{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	account.PasswordHash = ""
	return account, nil
}

// EndSession clears the stored token so envelopes issued for it stop
// validating.
func (s *identityService) EndSession(ctx context.Context, account models.Account) error {
	log := logger.FromContext(ctx)

	if account.AccountID == 0 {
		return ErrUnauthenticated
	}

	err := s.accountRepository.ClearSessionToken(ctx, account.AccountID)
	if errors.Is(err, store.ErrAccountNotFound) {
		return fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	if err != nil {
		log.Err(err).Int64("account_id", account.AccountID).Msg("clearing session token failed")
		return fmt.Errorf("clearing session token failed: %w", err)
	}

	log.Info().Int64("account_id", account.AccountID).Msg("session closed")
	return nil
}
