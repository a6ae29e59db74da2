package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-forum/internal/config"
	"github.com/MKhiriev/go-forum/internal/logger"
	"github.com/MKhiriev/go-forum/internal/store"
	"github.com/MKhiriev/go-forum/models"
)

// postService is the concrete implementation of PostService.
//
// Who may edit or delete a post is decided by editPolicy: with
// config.PostEditPolicyAuthor only the post's author may, with
// config.PostEditPolicyAny every authenticated account may.
type postService struct {
	postRepository       store.PostRepository
	discussionRepository store.DiscussionRepository

	editPolicy string

	// now stamps CreatedAt of new posts.
	now func() time.Time

	logger *logger.Logger
}

func NewPostService(
	postRepository store.PostRepository,
	discussionRepository store.DiscussionRepository,
	cfg config.App,
	now func() time.Time,
	logger *logger.Logger,
) PostService {
	if now == nil {
		now = time.Now
	}

	return &postService{
		postRepository:       postRepository,
		discussionRepository: discussionRepository,
		editPolicy:           cfg.PostEditPolicy,
		now:                  now,
		logger:               logger,
	}
}

// CreatePost stores a new post in an existing discussion on behalf of author.
// Writer and CreatedAt are captured here and never change afterwards.
func (s *postService) CreatePost(ctx context.Context, discussionID int64, title, content string, author models.Account) (models.Post, error) {
	log := logger.FromContext(ctx)

	if author.AccountID == 0 {
		return models.Post{}, ErrUnauthenticated
	}

	if _, err := s.discussionRepository.GetDiscussion(ctx, discussionID); err != nil {
		log.Err(err).Int64("discussion_id", discussionID).Msg("post target discussion lookup failed")
		return models.Post{}, fmt.Errorf("post target discussion lookup failed: %w", err)
	}

	post, err := s.postRepository.CreatePost(ctx, models.Post{
		Title:        title,
		Content:      content,
		CreatedAt:    s.now().UTC().Truncate(time.Microsecond),
		AccountID:    author.AccountID,
		DiscussionID: discussionID,
		Writer:       author.Username,
	})
	if err != nil {
		log.Err(err).
			Int64("discussion_id", discussionID).
			Int64("account_id", author.AccountID).
			Msg("post creation ended with error")
		return models.Post{}, fmt.Errorf("post creation ended with error: %w", err)
	}

	return post, nil
}

func (s *postService) ListPosts(ctx context.Context, discussionID int64) ([]models.Post, error) {
	posts, err := s.postRepository.ListPostsByDiscussion(ctx, discussionID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("discussion_id", discussionID).Msg("listing posts failed")
		return nil, fmt.Errorf("listing posts failed: %w", err)
	}

	return posts, nil
}

func (s *postService) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	post, err := s.postRepository.GetPost(ctx, postID)
	if err != nil {
		return models.Post{}, fmt.Errorf("getting post %d: %w", postID, err)
	}

	return post, nil
}

// EditPost overwrites title and content. CreatedAt, Writer and the owning
// references stay as they were.
func (s *postService) EditPost(ctx context.Context, postID int64, title, content string, editor models.Account) (models.Post, error) {
	log := logger.FromContext(ctx)

	post, err := s.authorizedPost(ctx, postID, editor)
	if err != nil {
		return models.Post{}, err
	}

	err = s.postRepository.UpdatePost(ctx, models.PostUpdate{PostID: postID, Title: title, Content: content})
	if err != nil {
		log.Err(err).Int64("post_id", postID).Msg("post update ended with error")
		return models.Post{}, fmt.Errorf("post update ended with error: %w", err)
	}

	post.Title = title
	post.Content = content
	return post, nil
}

// DeletePost removes the post permanently.
func (s *postService) DeletePost(ctx context.Context, postID int64, editor models.Account) error {
	log := logger.FromContext(ctx)

	if _, err := s.authorizedPost(ctx, postID, editor); err != nil {
		return err
	}

	if err := s.postRepository.DeletePost(ctx, postID); err != nil {
		log.Err(err).Int64("post_id", postID).Msg("post deletion ended with error")
		return fmt.Errorf("post deletion ended with error: %w", err)
	}

	log.Info().Int64("post_id", postID).Int64("account_id", editor.AccountID).Msg("post deleted")
	return nil
}

// authorizedPost loads the post and checks that editor may change it.
func (s *postService) authorizedPost(ctx context.Context, postID int64, editor models.Account) (models.Post, error) {
	if editor.AccountID == 0 {
		return models.Post{}, ErrUnauthenticated
	}

	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return models.Post{}, err
	}

	if s.editPolicy != config.PostEditPolicyAny && post.AccountID != editor.AccountID {
		logger.FromContext(ctx).Warn().
			Int64("post_id", postID).
			Int64("account_id", editor.AccountID).
			Msg("post change denied: not the author")
		return models.Post{}, ErrForbidden
	}

	return post, nil
}
