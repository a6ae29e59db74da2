package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-forum/internal/logger"
	"github.com/MKhiriev/go-forum/internal/store"
	"github.com/MKhiriev/go-forum/models"
)

type discussionService struct {
	discussionRepository store.DiscussionRepository
	logger               *logger.Logger
}

func NewDiscussionService(discussionRepository store.DiscussionRepository, logger *logger.Logger) DiscussionService {
	return &discussionService{
		discussionRepository: discussionRepository,
		logger:               logger,
	}
}

func (s *discussionService) CreateDiscussion(ctx context.Context, title, content string) (models.Discussion, error) {
	discussion, err := s.discussionRepository.CreateDiscussion(ctx, models.Discussion{Title: title, Content: content})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("title", title).Msg("discussion creation ended with error")
		return models.Discussion{}, fmt.Errorf("discussion creation ended with error: %w", err)
	}

	return discussion, nil
}

func (s *discussionService) ListDiscussions(ctx context.Context) ([]models.Discussion, error) {
	discussions, err := s.discussionRepository.ListDiscussions(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing discussions failed")
		return nil, fmt.Errorf("listing discussions failed: %w", err)
	}

	return discussions, nil
}

func (s *discussionService) GetDiscussion(ctx context.Context, discussionID int64) (models.Discussion, error) {
	discussion, err := s.discussionRepository.GetDiscussion(ctx, discussionID)
	if err != nil {
		return models.Discussion{}, fmt.Errorf("getting discussion %d: %w", discussionID, err)
	}

	return discussion, nil
}
