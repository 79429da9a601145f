package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"threadboard/internal/model"
)

type analyticsRepository struct {
	db *sqlx.DB
}

func NewAnalyticsRepository(db *sqlx.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// Counters computes the global thread counters in one pass. All three
// exclude soft-deleted comments, so the reply/top-level split always sums
// to the total.
func (r *analyticsRepository) Counters(ctx context.Context) (*model.CommentCounters, error) {
	query := `
		SELECT COUNT(*) AS total_comments,
		       COUNT(*) FILTER (WHERE parent_comment_id IS NOT NULL) AS total_replies,
		       COUNT(*) FILTER (WHERE parent_comment_id IS NULL) AS total_top_level
		FROM comments
		WHERE is_deleted = FALSE
	`
	var counters model.CommentCounters
	if err := r.db.GetContext(ctx, &counters, query); err != nil {
		return nil, fmt.Errorf("get comment counters: %w", err)
	}
	return &counters, nil
}

// TopPostsByCommentCount ranks posts by non-deleted comment count
// descending. Ties break by post id ascending so the ordering is stable.
func (r *analyticsRepository) TopPostsByCommentCount(ctx context.Context, n int) ([]model.PostCommentCount, error) {
	query := `
		SELECT p.id, p.post_number, p.description,
		       COUNT(c.id) FILTER (WHERE c.is_deleted = FALSE) AS comment_count
		FROM posts p
		LEFT JOIN comments c ON c.post_id = p.id
		GROUP BY p.id
		ORDER BY comment_count DESC, p.id ASC
		LIMIT $1
	`
	posts := []model.PostCommentCount{}
	if err := r.db.SelectContext(ctx, &posts, query, n); err != nil {
		return nil, fmt.Errorf("top posts by comment count: %w", err)
	}
	return posts, nil
}

// TopUsersByCommentCount ranks users by non-deleted comment count
// descending, ties broken by user id ascending.
func (r *analyticsRepository) TopUsersByCommentCount(ctx context.Context, n int) ([]model.UserCommentCount, error) {
	query := `
		SELECT u.id, u.username,
		       COUNT(c.id) FILTER (WHERE c.is_deleted = FALSE) AS comment_count
		FROM users u
		LEFT JOIN comments c ON c.user_id = u.id
		GROUP BY u.id
		ORDER BY comment_count DESC, u.id ASC
		LIMIT $1
	`
	users := []model.UserCommentCount{}
	if err := r.db.SelectContext(ctx, &users, query, n); err != nil {
		return nil, fmt.Errorf("top users by comment count: %w", err)
	}
	return users, nil
}
