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

// postRepository is the SQL implementation of [PostRepository] over the
// "posts" table.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that database failures carry the request trace id.
type postRepository struct {
	*DB
	logger *logger.Logger
}

func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("PostRepository created")
	return &postRepository{
		DB:     db,
		logger: logger,
	}
}

// CreatePost inserts post and returns it with PostID set. A foreign key
// violation is reported as [ErrAccountNotFound] or [ErrDiscussionNotFound],
// depending on which reference is missing.
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreatePostQuery(r.builder(), post)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("failed to build query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.QueryRowContext(ctx, query, args...).Scan(&post.PostID); err != nil {
		log.Err(err).
			Str("func", "*postRepository.CreatePost").
			Int64("discussion_id", post.DiscussionID).
			Int64("account_id", post.AccountID).
			Msg("error inserting post")

		if violation, detail := r.classify(err); violation == ForeignKeyViolation {
			return models.Post{}, r.missingReference(ctx, post, detail)
		}

		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return post, nil
}

// missingReference names the reference behind a foreign key violation on
// posts. Postgres reports the constraint name; SQLite only says "FOREIGN KEY
// constraint failed", so the author is looked up instead.
func (r *postRepository) missingReference(ctx context.Context, post models.Post, constraint string) error {
	switch {
	case strings.Contains(constraint, "account"):
		return ErrAccountNotFound
	case strings.Contains(constraint, "discussion"):
		return ErrDiscussionNotFound
	}

	query, args, err := buildAccountExistsQuery(r.builder(), post.AccountID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.QueryRowContext(ctx, query, args...).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrAccountNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).
			Str("func", "*postRepository.missingReference").
			Int64("account_id", post.AccountID).
			Msg("error looking up post author")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return ErrDiscussionNotFound
}

func (r *postRepository) ListPostsByDiscussion(ctx context.Context, discussionID int64) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPostsQuery(r.builder(), discussionID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPostsByDiscussion").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*postRepository.ListPostsByDiscussion").
			Int64("discussion_id", discussionID).
			Msg("failed to execute query for listing posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		var p models.Post
		if err = scanPost(rows, &p); err != nil {
			log.Err(err).
				Str("func", "*postRepository.ListPostsByDiscussion").
				Int64("discussion_id", discussionID).
				Msg("failed to scan post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		posts = append(posts, p)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "*postRepository.ListPostsByDiscussion").
			Int64("discussion_id", discussionID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

func (r *postRepository) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetPostQuery(r.builder(), postID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.GetPost").Msg("failed to build query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var p models.Post
	err = scanPost(r.QueryRowContext(ctx, query, args...), &p)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*postRepository.GetPost").Int64("post_id", postID).Msg("failed to scan post row")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return p, nil
}

func (r *postRepository) UpdatePost(ctx context.Context, update models.PostUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePostQuery(r.builder(), update)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingPost(ctx, "*postRepository.UpdatePost", update.PostID, query, args)
}

func (r *postRepository) DeletePost(ctx context.Context, postID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePostQuery(r.builder(), postID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingPost(ctx, "*postRepository.DeletePost", postID, query, args)
}

// execAffectingPost runs a statement that must touch exactly the row of
// postID; zero affected rows means the post does not exist.
func (r *postRepository) execAffectingPost(ctx context.Context, funcName string, postID int64, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("post_id", postID).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("post_id", postID).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner, p *models.Post) error {
	return row.Scan(
		&p.PostID,
		&p.Title,
		&p.Content,
		&p.CreatedAt,
		&p.AccountID,
		&p.DiscussionID,
		&p.Writer,
	)
}
