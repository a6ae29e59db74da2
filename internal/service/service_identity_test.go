package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-forum/internal/config"
	"github.com/MKhiriev/go-forum/internal/crypto"
	"github.com/MKhiriev/go-forum/internal/logger"
	"github.com/MKhiriev/go-forum/internal/mock"
	"github.com/MKhiriev/go-forum/internal/store"
	"github.com/MKhiriev/go-forum/internal/utils"
	"github.com/MKhiriev/go-forum/models"
)

var testAppConfig = config.App{
	SecretKey:       "test-secret",
	SessionIssuer:   "go-forum-test",
	SessionDuration: time.Hour,
	PostEditPolicy:  config.PostEditPolicyAuthor,
}

// staticTokens is a TokenGenerator returning a fixed sequence.
type staticTokens struct {
	tokens []string
	err    error
}

func (s *staticTokens) Generate() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	token := s.tokens[0]
	s.tokens = s.tokens[1:]
	return token, nil
}

// newTestIdentitySvc is a helper creating identityService with mocks.
func newTestIdentitySvc(t *testing.T, ctrl *gomock.Controller, tokens TokenGenerator) (
	*identityService,
	*mock.MockAccountRepository,
	*mock.MockPasswordHasher,
) {
	t.Helper()
	repo := mock.NewMockAccountRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	svc := NewIdentityService(repo, hasher, tokens, testAppConfig, logger.Nop()).(*identityService)
	return svc, repo, hasher
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestIdentityService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestIdentitySvc(t, ctrl, nil)
	ctx := context.Background()

	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	gomock.InOrder(
		repo.EXPECT().FindAccountByEmail(ctx, "a@x.com").Return(models.Account{}, store.ErrAccountNotFound),
		hasher.EXPECT().Hash("pw1").Return("hashed", nil),
		repo.EXPECT().CreateAccount(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, a models.Account) (models.Account, error) {
				assert.Equal(t, "alice", a.Username)
				assert.Equal(t, "a@x.com", a.Email)
				assert.Equal(t, "hashed", a.PasswordHash)
				assert.Empty(t, a.Password, "plaintext must not be handed to the store")
				assert.Equal(t, fixed, a.CreatedAt)
				a.AccountID = 1
				return a, nil
			},
		),
	)

	account, err := svc.Register(ctx, "alice", "a@x.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), account.AccountID)
}

func TestIdentityService_Register_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestIdentitySvc(t, ctrl, nil)
	ctx := context.Background()

	repo.EXPECT().FindAccountByEmail(ctx, "a@x.com").Return(models.Account{AccountID: 1}, nil)
	// neither Hash nor CreateAccount may be called

	_, err := svc.Register(ctx, "bob", "a@x.com", "pw2")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestIdentityService_Register_DuplicateEmailRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestIdentitySvc(t, ctrl, nil)
	ctx := context.Background()

	repo.EXPECT().FindAccountByEmail(ctx, gomock.Any()).Return(models.Account{}, store.ErrAccountNotFound)
	hasher.EXPECT().Hash(gomock.Any()).Return("hashed", nil)
	repo.EXPECT().CreateAccount(ctx, gomock.Any()).Return(models.Account{}, store.ErrEmailAlreadyExists)

	_, err := svc.Register(ctx, "bob", "a@x.com", "pw2")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestIdentityService_Register_Errors(t *testing.T) {
	lookupErr := errors.New("db down")

	tests := []struct {
		name    string
		setup   func(repo *mock.MockAccountRepository, hasher *mock.MockPasswordHasher)
		wantErr error
	}{
		{
			name: "email lookup fails",
			setup: func(repo *mock.MockAccountRepository, _ *mock.MockPasswordHasher) {
				repo.EXPECT().FindAccountByEmail(gomock.Any(), gomock.Any()).Return(models.Account{}, lookupErr)
			},
			wantErr: lookupErr,
		},
		{
			name: "password too long",
			setup: func(repo *mock.MockAccountRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindAccountByEmail(gomock.Any(), gomock.Any()).Return(models.Account{}, store.ErrAccountNotFound)
				hasher.EXPECT().Hash(gomock.Any()).Return("", crypto.ErrPasswordTooLong)
			},
			wantErr: ErrInvalidDataProvided,
		},
		{
			name: "username taken",
			setup: func(repo *mock.MockAccountRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindAccountByEmail(gomock.Any(), gomock.Any()).Return(models.Account{}, store.ErrAccountNotFound)
				hasher.EXPECT().Hash(gomock.Any()).Return("hashed", nil)
				repo.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(models.Account{}, store.ErrAccountAlreadyExists)
			},
			wantErr: store.ErrAccountAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo, hasher := newTestIdentitySvc(t, ctrl, nil)
			tt.setup(repo, hasher)

			_, err := svc.Register(context.Background(), "alice", "a@x.com", "pw")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── Authenticate ─────────────────────────────────────────────────────────────

func TestIdentityService_Authenticate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestIdentitySvc(t, ctrl, &staticTokens{tokens: []string{"tok-1"}})
	ctx := context.Background()

	stored := models.Account{AccountID: 5, Username: "alice", PasswordHash: "hashed"}

	gomock.InOrder(
		repo.EXPECT().FindAccountByUsername(ctx, "alice").Return(stored, nil),
		hasher.EXPECT().Compare("hashed", "pw1").Return(nil),
		repo.EXPECT().SetSessionToken(ctx, int64(5), "tok-1").Return(nil),
	)

	session, err := svc.Authenticate(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, int64(5), session.AccountID)
	assert.Equal(t, "tok-1", session.Token)
	assert.True(t, session.ExpiresAt.After(time.Now()))

	token, err := utils.ParseSessionJWT(session.SignedString, testAppConfig.SecretKey, testAppConfig.SessionIssuer)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
}

func TestIdentityService_Authenticate_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name  string
		setup func(repo *mock.MockAccountRepository, hasher *mock.MockPasswordHasher)
	}{
		{
			name: "unknown username",
			setup: func(repo *mock.MockAccountRepository, _ *mock.MockPasswordHasher) {
				repo.EXPECT().FindAccountByUsername(gomock.Any(), "alice").Return(models.Account{}, store.ErrAccountNotFound)
			},
		},
		{
			name: "wrong password",
			setup: func(repo *mock.MockAccountRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindAccountByUsername(gomock.Any(), "alice").Return(models.Account{AccountID: 1, PasswordHash: "h"}, nil)
				hasher.EXPECT().Compare("h", "pw1").Return(crypto.ErrMismatchedPassword)
			},
		},
		{
			name: "malformed stored hash",
			setup: func(repo *mock.MockAccountRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindAccountByUsername(gomock.Any(), "alice").Return(models.Account{AccountID: 1, PasswordHash: "h"}, nil)
				hasher.EXPECT().Compare("h", "pw1").Return(errors.New("hash too short"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			// SetSessionToken is not expected: no token may be stored
			svc, repo, hasher := newTestIdentitySvc(t, ctrl, &staticTokens{tokens: []string{"unused"}})
			tt.setup(repo, hasher)

			_, err := svc.Authenticate(context.Background(), "alice", "pw1")
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestIdentityService_Authenticate_TokenGenerationFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestIdentitySvc(t, ctrl, &staticTokens{err: errors.New("entropy exhausted")})

	repo.EXPECT().FindAccountByUsername(gomock.Any(), "alice").Return(models.Account{AccountID: 1, PasswordHash: "h"}, nil)
	hasher.EXPECT().Compare("h", "pw").Return(nil)

	_, err := svc.Authenticate(context.Background(), "alice", "pw")
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestIdentityService_Authenticate_StoreFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestIdentitySvc(t, ctrl, &staticTokens{tokens: []string{"tok"}})
	storeErr := errors.New("db down")

	repo.EXPECT().FindAccountByUsername(gomock.Any(), "alice").Return(models.Account{AccountID: 1, PasswordHash: "h"}, nil)
	hasher.EXPECT().Compare("h", "pw").Return(nil)
	repo.EXPECT().SetSessionToken(gomock.Any(), int64(1), "tok").Return(storeErr)

	_, err := svc.Authenticate(context.Background(), "alice", "pw")
	assert.ErrorIs(t, err, storeErr)
}

// ── ValidateSession ──────────────────────────────────────────────────────────

func TestIdentityService_ValidateSession(t *testing.T) {
	valid, _, err := utils.GenerateSessionJWT(testAppConfig.SessionIssuer, "tok-1", time.Hour, testAppConfig.SecretKey, time.Now())
	require.NoError(t, err)
	forged, _, err := utils.GenerateSessionJWT(testAppConfig.SessionIssuer, "tok-1", time.Hour, "other-secret", time.Now())
	require.NoError(t, err)

	tests := []struct {
		name    string
		signed  string
		setup   func(repo *mock.MockAccountRepository)
		wantID  int64
		wantErr error
	}{
		{
			name:   "valid session",
			signed: valid,
			setup: func(repo *mock.MockAccountRepository) {
				repo.EXPECT().FindAccountBySessionToken(gomock.Any(), "tok-1").
					Return(models.Account{AccountID: 5, Username: "alice", PasswordHash: "h"}, nil)
			},
			wantID: 5,
		},
		{
			name:    "empty",
			signed:  "",
			setup:   func(*mock.MockAccountRepository) {},
			wantErr: ErrUnauthenticated,
		},
		{
			name:    "forged signature",
			signed:  forged,
			setup:   func(*mock.MockAccountRepository) {},
			wantErr: ErrUnauthenticated,
		},
		{
			name:   "token no longer stored",
			signed: valid,
			setup: func(repo *mock.MockAccountRepository) {
				repo.EXPECT().FindAccountBySessionToken(gomock.Any(), "tok-1").Return(models.Account{}, store.ErrAccountNotFound)
			},
			wantErr: ErrUnauthenticated,
		},
		{
			name:   "store failure",
			signed: valid,
			setup: func(repo *mock.MockAccountRepository) {
				repo.EXPECT().FindAccountBySessionToken(gomock.Any(), "tok-1").Return(models.Account{}, errors.New("db down"))
			},
			wantErr: ErrUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo, _ := newTestIdentitySvc(t, ctrl, nil)
			tt.setup(repo)

			account, err := svc.ValidateSession(context.Background(), tt.signed)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, account.AccountID)
			assert.Empty(t, account.PasswordHash)
		})
	}
}

// ── EndSession ───────────────────────────────────────────────────────────────

func TestIdentityService_EndSession(t *testing.T) {
	t.Run("clears token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, _ := newTestIdentitySvc(t, ctrl, nil)

		repo.EXPECT().ClearSessionToken(gomock.Any(), int64(5)).Return(nil)

		require.NoError(t, svc.EndSession(context.Background(), models.Account{AccountID: 5}))
	})

	t.Run("anonymous", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, _ := newTestIdentitySvc(t, ctrl, nil)

		assert.ErrorIs(t, svc.EndSession(context.Background(), models.Account{}), ErrUnauthenticated)
	})

	t.Run("unknown account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, _ := newTestIdentitySvc(t, ctrl, nil)

		repo.EXPECT().ClearSessionToken(gomock.Any(), int64(9)).Return(store.ErrAccountNotFound)

		assert.ErrorIs(t, svc.EndSession(context.Background(), models.Account{AccountID: 9}), ErrUnauthenticated)
	})
}
