package repository

import (
	"context"

	"github.com/google/uuid"

	"threadboard/internal/model"
)

// UserRepository is the identity-mirror contract for users. The engines only
// read from it to resolve references; rows are created by the provisioning
// endpoint or test fixtures, never updated.
type UserRepository interface {
	Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByUserID(ctx context.Context, userID string) (*model.User, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// PostRepository is the identity-mirror contract for posts.
type PostRepository interface {
	// Create inserts a post with a server-assigned sequential post number.
	// Returns model.ErrPostNumberConflict when a concurrent insert claimed
	// the same number; callers retry.
	Create(ctx context.Context, userID, description string) (*model.Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	UpdateDescription(ctx context.Context, id uuid.UUID, description string) (*model.Post, error)
	// Delete physically removes the post; comments and likes cascade.
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type CommentRepository interface {
	Create(ctx context.Context, postID, userID uuid.UUID, content string, parentID *uuid.UUID) (*model.Comment, error)
	// GetByID resolves a comment regardless of its soft-delete state.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	// Update replaces the content, marks the comment edited and bumps
	// updated_at.
	Update(ctx context.Context, id uuid.UUID, content string) (*model.Comment, error)
	// SoftDelete flips is_deleted. Idempotent: deleting an already deleted
	// comment succeeds.
	SoftDelete(ctx context.Context, id uuid.UUID) error
	// ListByPost returns every comment of a post, deleted ones included,
	// ordered by creation time then id. Tree assembly filters visibility.
	ListByPost(ctx context.Context, postID uuid.UUID) ([]model.Comment, error)
	// ListReplies returns the non-deleted direct children of a comment,
	// ordered by creation time then id.
	ListReplies(ctx context.Context, parentID uuid.UUID) ([]model.Comment, error)
	// ListByUser returns a user's non-deleted comments, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Comment, error)
	// CountByPost counts a post's non-deleted comments.
	CountByPost(ctx context.Context, postID uuid.UUID) (int, error)
}

// CommentLikeRepository owns the (comment, user) like pairs. Create relies
// on the unique constraint for idempotency under concurrent requests.
type CommentLikeRepository interface {
	Create(ctx context.Context, commentID, userID uuid.UUID) (*model.CommentLike, error)
	Delete(ctx context.Context, commentID, userID uuid.UUID) error
	CountByComment(ctx context.Context, commentID uuid.UUID) (int, error)
	GetLikers(ctx context.Context, commentID uuid.UUID) ([]model.User, error)
	// CountByPostComments returns like counts for every comment of a post,
	// keyed by comment id, in a single query.
	CountByPostComments(ctx context.Context, postID uuid.UUID) (map[uuid.UUID]int, error)
}

// PostLikeRepository is the post variant of CommentLikeRepository.
type PostLikeRepository interface {
	Create(ctx context.Context, postID, userID uuid.UUID) (*model.PostLike, error)
	Delete(ctx context.Context, postID, userID uuid.UUID) error
	CountByPost(ctx context.Context, postID uuid.UUID) (int, error)
	GetLikers(ctx context.Context, postID uuid.UUID) ([]model.User, error)
}

// AnalyticsRepository computes the derived counters. Every value is a live
// query; nothing is materialized.
type AnalyticsRepository interface {
	Counters(ctx context.Context) (*model.CommentCounters, error)
	TopPostsByCommentCount(ctx context.Context, n int) ([]model.PostCommentCount, error)
	TopUsersByCommentCount(ctx context.Context, n int) ([]model.UserCommentCount, error)
}
