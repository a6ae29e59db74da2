// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-forum/models"
)

const (
	accountsTable    = "accounts"
	discussionsTable = "discussions"
	postsTable       = "posts"
)

var (
	accountColumns    = []string{"account_id", "username", "email", "password_hash", "session_token", "created_at"}
	discussionColumns = []string{"discussion_id", "title", "content"}
	postColumns       = []string{"post_id", "title", "content", "created_at", "account_id", "discussion_id", "writer"}
)

// buildCreateAccountQuery builds:
//
//	INSERT INTO accounts (username, email, password_hash, created_at)
//	VALUES (...) RETURNING account_id
func buildCreateAccountQuery(sb sq.StatementBuilderType, account models.Account) (string, []any, error) {
	return sb.Insert(accountsTable).
		Columns("username", "email", "password_hash", "created_at").
		Values(account.Username, account.Email, account.PasswordHash, account.CreatedAt).
		Suffix("RETURNING account_id").
		ToSql()
}

// buildFindAccountQuery selects the single account whose column equals value.
func buildFindAccountQuery(sb sq.StatementBuilderType, column string, value any) (string, []any, error) {
	return sb.Select(accountColumns...).
		From(accountsTable).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
}

// buildSetSessionTokenQuery writes token into session_token. A nil token
// clears it.
func buildSetSessionTokenQuery(sb sq.StatementBuilderType, accountID int64, token any) (string, []any, error) {
	return sb.Update(accountsTable).
		Set("session_token", token).
		Where(sq.Eq{"account_id": accountID}).
		ToSql()
}

// buildAccountExistsQuery builds SELECT 1 FROM accounts WHERE account_id = ?.
func buildAccountExistsQuery(sb sq.StatementBuilderType, accountID int64) (string, []any, error) {
	return sb.Select("1").
		From(accountsTable).
		Where(sq.Eq{"account_id": accountID}).
		Limit(1).
		ToSql()
}

func buildCreateDiscussionQuery(sb sq.StatementBuilderType, discussion models.Discussion) (string, []any, error) {
	return sb.Insert(discussionsTable).
		Columns("title", "content").
		Values(discussion.Title, discussion.Content).
		Suffix("RETURNING discussion_id").
		ToSql()
}

func buildListDiscussionsQuery(sb sq.StatementBuilderType) (string, []any, error) {
	return sb.Select(discussionColumns...).
		From(discussionsTable).
		OrderBy("discussion_id ASC").
		ToSql()
}

func buildGetDiscussionQuery(sb sq.StatementBuilderType, discussionID int64) (string, []any, error) {
	return sb.Select(discussionColumns...).
		From(discussionsTable).
		Where(sq.Eq{"discussion_id": discussionID}).
		ToSql()
}

func buildCreatePostQuery(sb sq.StatementBuilderType, post models.Post) (string, []any, error) {
	return sb.Insert(postsTable).
		Columns("title", "content", "created_at", "account_id", "discussion_id", "writer").
		Values(post.Title, post.Content, post.CreatedAt, post.AccountID, post.DiscussionID, post.Writer).
		Suffix("RETURNING post_id").
		ToSql()
}

// buildListPostsQuery orders by created_at and breaks ties by post_id so
// posts stamped within the same clock tick keep insertion order.
func buildListPostsQuery(sb sq.StatementBuilderType, discussionID int64) (string, []any, error) {
	return sb.Select(postColumns...).
		From(postsTable).
		Where(sq.Eq{"discussion_id": discussionID}).
		OrderBy("created_at ASC", "post_id ASC").
		ToSql()
}

func buildGetPostQuery(sb sq.StatementBuilderType, postID int64) (string, []any, error) {
	return sb.Select(postColumns...).
		From(postsTable).
		Where(sq.Eq{"post_id": postID}).
		ToSql()
}

// buildUpdatePostQuery touches title and content only; created_at, writer and
// the foreign keys are immutable.
func buildUpdatePostQuery(sb sq.StatementBuilderType, update models.PostUpdate) (string, []any, error) {
	return sb.Update(postsTable).
		Set("title", update.Title).
		Set("content", update.Content).
		Where(sq.Eq{"post_id": update.PostID}).
		ToSql()
}

func buildDeletePostQuery(sb sq.StatementBuilderType, postID int64) (string, []any, error) {
	return sb.Delete(postsTable).
		Where(sq.Eq{"post_id": postID}).
		ToSql()
}
