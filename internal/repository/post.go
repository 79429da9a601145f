package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"threadboard/internal/model"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts a post and assigns the next post number inside the same
// statement. Two concurrent inserts can still compute the same number, but
// the UNIQUE constraint rejects the loser, which is surfaced as
// ErrPostNumberConflict so the service can retry.
func (r *postRepository) Create(ctx context.Context, userID, description string) (*model.Post, error) {
	query := `
		INSERT INTO posts (id, user_id, description, post_number)
		VALUES ($1, $2, $3, (SELECT COALESCE(MAX(post_number), 0) + 1 FROM posts))
		RETURNING id, user_id, description, post_number, created_at, updated_at
	`
	var post model.Post
	err := r.db.GetContext(ctx, &post, query, uuid.New(), userID, description)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" && strings.Contains(pqErr.Constraint, "post_number") {
			return nil, model.ErrPostNumberConflict
		}
		return nil, fmt.Errorf("insert post: %w", err)
	}
	return &post, nil
}

func (r *postRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	query := `
		SELECT id, user_id, description, post_number, created_at, updated_at
		FROM posts
		WHERE id = $1
	`
	var post model.Post
	err := r.db.GetContext(ctx, &post, query, id)
	if err == sql.ErrNoRows {
		return nil, model.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	return &post, nil
}

func (r *postRepository) UpdateDescription(ctx context.Context, id uuid.UUID, description string) (*model.Post, error) {
	query := `
		UPDATE posts
		SET description = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, user_id, description, post_number, created_at, updated_at
	`
	var post model.Post
	err := r.db.GetContext(ctx, &post, query, description, id)
	if err == sql.ErrNoRows {
		return nil, model.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return &post, nil
}

// Delete physically removes the post. Comments and likes are removed by
// ON DELETE CASCADE.
func (r *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrPostNotFound
	}
	return nil
}

func (r *postRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("check post exists: %w", err)
	}
	return exists, nil
}
