package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-forum/internal/config"
	"github.com/MKhiriev/go-forum/internal/logger"
	"github.com/MKhiriev/go-forum/internal/mock"
	"github.com/MKhiriev/go-forum/internal/validators"
	"github.com/MKhiriev/go-forum/models"
)

func TestIdentityValidationService_Register(t *testing.T) {
	tests := []struct {
		name                     string
		username, email, passwrd string
		wantErr                  error
	}{
		{name: "empty username", email: "a@x.com", passwrd: "pw", wantErr: validators.ErrEmptyUsername},
		{name: "empty email", username: "alice", passwrd: "pw", wantErr: validators.ErrEmptyEmail},
		{name: "empty password", username: "alice", email: "a@x.com", wantErr: validators.ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			// inner service must not be reached
			repo := mock.NewMockAccountRepository(ctrl)
			inner := NewIdentityService(repo, mock.NewMockPasswordHasher(ctrl), nil, testAppConfig, logger.Nop())
			svc := NewIdentityValidationService().Wrap(inner)

			_, err := svc.Register(context.Background(), tt.username, tt.email, tt.passwrd)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDiscussionValidationService_CreateDiscussion(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockDiscussionRepository(ctrl)
	svc := NewDiscussionValidationService().Wrap(NewDiscussionService(repo, logger.Nop()))

	_, err := svc.CreateDiscussion(context.Background(), " ", "content")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	repo.EXPECT().CreateDiscussion(gomock.Any(), gomock.Any()).Return(models.Discussion{DiscussionID: 1, Title: "T"}, nil)
	d, err := svc.CreateDiscussion(context.Background(), "T", "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), d.DiscussionID)

	// pass-through of methods the wrapper does not override
	repo.EXPECT().ListDiscussions(gomock.Any()).Return(nil, nil)
	_, err = svc.ListDiscussions(context.Background())
	require.NoError(t, err)
}

func TestPostValidationService(t *testing.T) {
	newSvc := func(t *testing.T) (PostService, *mock.MockPostRepository, *mock.MockDiscussionRepository) {
		ctrl := gomock.NewController(t)
		posts := mock.NewMockPostRepository(ctrl)
		discussions := mock.NewMockDiscussionRepository(ctrl)
		inner := NewPostService(posts, discussions, config.App{PostEditPolicy: config.PostEditPolicyAny}, nil, logger.Nop())
		return NewPostValidationService().Wrap(inner), posts, discussions
	}

	t.Run("anonymous beats empty title", func(t *testing.T) {
		svc, _, _ := newSvc(t)
		_, err := svc.CreatePost(context.Background(), 1, "", "", models.Account{})
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("empty title", func(t *testing.T) {
		svc, _, _ := newSvc(t)
		_, err := svc.CreatePost(context.Background(), 1, "", "body", alice)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
		assert.ErrorIs(t, err, validators.ErrEmptyTitle)
	})

	t.Run("valid post reaches the store", func(t *testing.T) {
		svc, posts, discussions := newSvc(t)
		discussions.EXPECT().GetDiscussion(gomock.Any(), int64(1)).Return(models.Discussion{DiscussionID: 1}, nil)
		posts.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Return(models.Post{PostID: 1}, nil)

		_, err := svc.CreatePost(context.Background(), 1, "P1", "", alice)
		require.NoError(t, err)
	})

	t.Run("edit with invalid id", func(t *testing.T) {
		svc, _, _ := newSvc(t)
		_, err := svc.EditPost(context.Background(), 0, "t", "c", alice)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("edit rejects empty title", func(t *testing.T) {
		svc, _, _ := newSvc(t)
		_, err := svc.EditPost(context.Background(), 4, "  ", "body", alice)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
		assert.ErrorIs(t, err, validators.ErrEmptyTitle)
	})

	t.Run("anonymous edit beats empty title", func(t *testing.T) {
		svc, _, _ := newSvc(t)
		_, err := svc.EditPost(context.Background(), 4, "", "", models.Account{})
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("valid edit reaches the store", func(t *testing.T) {
		svc, posts, _ := newSvc(t)
		posts.EXPECT().GetPost(gomock.Any(), int64(4)).Return(models.Post{PostID: 4, AccountID: alice.AccountID}, nil)
		posts.EXPECT().UpdatePost(gomock.Any(), models.PostUpdate{PostID: 4, Title: "P1b"}).Return(nil)

		_, err := svc.EditPost(context.Background(), 4, "P1b", "", alice)
		require.NoError(t, err)
	})
}
