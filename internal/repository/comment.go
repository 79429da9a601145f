package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"threadboard/internal/model"
)

const commentColumns = `id, post_id, user_id, parent_comment_id, content, created_at, updated_at, is_edited, is_deleted`

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, postID, userID uuid.UUID, content string, parentID *uuid.UUID) (*model.Comment, error) {
	query := `
		INSERT INTO comments (id, post_id, user_id, content, parent_comment_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + commentColumns + `
	`
	var comment model.Comment
	err := r.db.GetContext(ctx, &comment, query, uuid.New(), postID, userID, content, parentID)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	return &comment, nil
}

// GetByID resolves a comment by id. Soft-deleted comments stay resolvable
// here; only listings filter them out.
func (r *commentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`
	var comment model.Comment
	err := r.db.GetContext(ctx, &comment, query, id)
	if err == sql.ErrNoRows {
		return nil, model.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return &comment, nil
}

func (r *commentRepository) Update(ctx context.Context, id uuid.UUID, content string) (*model.Comment, error) {
	query := `
		UPDATE comments
		SET content = $1, is_edited = TRUE, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + commentColumns + `
	`
	var comment model.Comment
	err := r.db.GetContext(ctx, &comment, query, content, id)
	if err == sql.ErrNoRows {
		return nil, model.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return &comment, nil
}

// SoftDelete marks the comment deleted without touching its replies.
// Deleting an already deleted comment is a no-op that still succeeds.
func (r *commentRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE comments SET is_deleted = TRUE, updated_at = NOW() WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("soft delete comment: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrCommentNotFound
	}
	return nil
}

// ListByPost returns the post's full comment set in creation order, deleted
// rows included. The tree engine needs the deleted rows to keep replies of
// tombstoned parents attached.
func (r *commentRepository) ListByPost(ctx context.Context, postID uuid.UUID) ([]model.Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at ASC, id ASC
	`
	comments := []model.Comment{}
	if err := r.db.SelectContext(ctx, &comments, query, postID); err != nil {
		return nil, fmt.Errorf("list comments by post: %w", err)
	}
	return comments, nil
}

func (r *commentRepository) ListReplies(ctx context.Context, parentID uuid.UUID) ([]model.Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE parent_comment_id = $1 AND is_deleted = FALSE
		ORDER BY created_at ASC, id ASC
	`
	replies := []model.Comment{}
	if err := r.db.SelectContext(ctx, &replies, query, parentID); err != nil {
		return nil, fmt.Errorf("list replies: %w", err)
	}
	return replies, nil
}

func (r *commentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE user_id = $1 AND is_deleted = FALSE
		ORDER BY created_at DESC, id DESC
	`
	comments := []model.Comment{}
	if err := r.db.SelectContext(ctx, &comments, query, userID); err != nil {
		return nil, fmt.Errorf("list comments by user: %w", err)
	}
	return comments, nil
}

func (r *commentRepository) CountByPost(ctx context.Context, postID uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(*) FROM comments WHERE post_id = $1 AND is_deleted = FALSE
	`, postID)
	if err != nil {
		return 0, fmt.Errorf("count comments by post: %w", err)
	}
	return count, nil
}
