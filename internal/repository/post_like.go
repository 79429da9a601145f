package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"threadboard/internal/model"
)

type postLikeRepository struct {
	db *sqlx.DB
}

func NewPostLikeRepository(db *sqlx.DB) PostLikeRepository {
	return &postLikeRepository{db: db}
}

// Create inserts the (post, user) pair, same contract as comment likes.
func (r *postLikeRepository) Create(ctx context.Context, postID, userID uuid.UUID) (*model.PostLike, error) {
	query := `
		INSERT INTO post_likes (id, post_id, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, post_id, user_id, created_at
	`
	var like model.PostLike
	err := r.db.GetContext(ctx, &like, query, uuid.New(), postID, userID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, model.ErrAlreadyLiked
		}
		return nil, fmt.Errorf("insert post like: %w", err)
	}
	return &like, nil
}

func (r *postLikeRepository) Delete(ctx context.Context, postID, userID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2
	`, postID, userID)
	if err != nil {
		return fmt.Errorf("delete post like: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrLikeNotFound
	}
	return nil
}

func (r *postLikeRepository) CountByPost(ctx context.Context, postID uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(*) FROM post_likes WHERE post_id = $1
	`, postID)
	if err != nil {
		return 0, fmt.Errorf("count post likes: %w", err)
	}
	return count, nil
}

func (r *postLikeRepository) GetLikers(ctx context.Context, postID uuid.UUID) ([]model.User, error) {
	query := `
		SELECT u.id, u.user_id, u.username, u.email, u.created_at
		FROM post_likes pl
		JOIN users u ON u.id = pl.user_id
		WHERE pl.post_id = $1
		ORDER BY pl.created_at DESC
	`
	users := []model.User{}
	if err := r.db.SelectContext(ctx, &users, query, postID); err != nil {
		return nil, fmt.Errorf("get post likers: %w", err)
	}
	return users, nil
}
