package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"threadboard/internal/model"
)

type commentLikeRepository struct {
	db *sqlx.DB
}

func NewCommentLikeRepository(db *sqlx.DB) CommentLikeRepository {
	return &commentLikeRepository{db: db}
}

// Create inserts the (comment, user) pair. The unique constraint is the
// check-then-insert: under concurrent identical requests exactly one insert
// wins and the rest observe ErrAlreadyLiked.
func (r *commentLikeRepository) Create(ctx context.Context, commentID, userID uuid.UUID) (*model.CommentLike, error) {
	query := `
		INSERT INTO comment_likes (id, comment_id, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, comment_id, user_id, created_at
	`
	var like model.CommentLike
	err := r.db.GetContext(ctx, &like, query, uuid.New(), commentID, userID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, model.ErrAlreadyLiked
		}
		return nil, fmt.Errorf("insert comment like: %w", err)
	}
	return &like, nil
}

// Delete removes the pair physically. Unlike is not a soft operation.
func (r *commentLikeRepository) Delete(ctx context.Context, commentID, userID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM comment_likes WHERE comment_id = $1 AND user_id = $2
	`, commentID, userID)
	if err != nil {
		return fmt.Errorf("delete comment like: %w", err)
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

func (r *commentLikeRepository) CountByComment(ctx context.Context, commentID uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(*) FROM comment_likes WHERE comment_id = $1
	`, commentID)
	if err != nil {
		return 0, fmt.Errorf("count comment likes: %w", err)
	}
	return count, nil
}

func (r *commentLikeRepository) GetLikers(ctx context.Context, commentID uuid.UUID) ([]model.User, error) {
	query := `
		SELECT u.id, u.user_id, u.username, u.email, u.created_at
		FROM comment_likes cl
		JOIN users u ON u.id = cl.user_id
		WHERE cl.comment_id = $1
		ORDER BY cl.created_at DESC
	`
	users := []model.User{}
	if err := r.db.SelectContext(ctx, &users, query, commentID); err != nil {
		return nil, fmt.Errorf("get comment likers: %w", err)
	}
	return users, nil
}

// CountByPostComments fetches like counts for all of a post's comments in
// one query, for thread assembly.
func (r *commentLikeRepository) CountByPostComments(ctx context.Context, postID uuid.UUID) (map[uuid.UUID]int, error) {
	query := `
		SELECT cl.comment_id, COUNT(*) AS like_count
		FROM comment_likes cl
		JOIN comments c ON c.id = cl.comment_id
		WHERE c.post_id = $1
		GROUP BY cl.comment_id
	`
	type row struct {
		CommentID uuid.UUID `db:"comment_id"`
		LikeCount int       `db:"like_count"`
	}
	var rows []row
	if err := r.db.SelectContext(ctx, &rows, query, postID); err != nil {
		return nil, fmt.Errorf("count likes by post comments: %w", err)
	}

	counts := make(map[uuid.UUID]int, len(rows))
	for _, r := range rows {
		counts[r.CommentID] = r.LikeCount
	}
	return counts, nil
}
