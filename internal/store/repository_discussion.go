// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-forum/internal/logger"
	"github.com/MKhiriev/go-forum/models"
)

type discussionRepository struct {
	*DB
	logger *logger.Logger
}

func NewDiscussionRepository(db *DB, logger *logger.Logger) DiscussionRepository {
	logger.Debug().Msg("DiscussionRepository created")
	return &discussionRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *discussionRepository) CreateDiscussion(ctx context.Context, discussion models.Discussion) (models.Discussion, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateDiscussionQuery(r.builder(), discussion)
	if err != nil {
		log.Err(err).Str("func", "*discussionRepository.CreateDiscussion").Msg("failed to build query")
		return models.Discussion{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.QueryRowContext(ctx, query, args...).Scan(&discussion.DiscussionID); err != nil {
		log.Err(err).Str("func", "*discussionRepository.CreateDiscussion").Msg("error inserting discussion")
		return models.Discussion{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return discussion, nil
}

func (r *discussionRepository) ListDiscussions(ctx context.Context) ([]models.Discussion, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListDiscussionsQuery(r.builder())
	if err != nil {
		log.Err(err).Str("func", "*discussionRepository.ListDiscussions").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*discussionRepository.ListDiscussions").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	discussions := make([]models.Discussion, 0)
	for rows.Next() {
		var d models.Discussion
		if err = rows.Scan(&d.DiscussionID, &d.Title, &d.Content); err != nil {
			log.Err(err).Str("func", "*discussionRepository.ListDiscussions").Msg("failed to scan discussion row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		discussions = append(discussions, d)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*discussionRepository.ListDiscussions").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return discussions, nil
}

func (r *discussionRepository) GetDiscussion(ctx context.Context, discussionID int64) (models.Discussion, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetDiscussionQuery(r.builder(), discussionID)
	if err != nil {
		log.Err(err).Str("func", "*discussionRepository.GetDiscussion").Msg("failed to build query")
		return models.Discussion{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var d models.Discussion
	err = r.QueryRowContext(ctx, query, args...).Scan(&d.DiscussionID, &d.Title, &d.Content)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Discussion{}, ErrDiscussionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*discussionRepository.GetDiscussion").Int64("discussion_id", discussionID).Msg("failed to scan discussion row")
		return models.Discussion{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return d, nil
}
