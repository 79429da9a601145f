package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// CommentLike records that a user liked a comment. The (comment, user) pair
// is unique: at most one like per user per comment, enforced by the storage
// constraint so that concurrent duplicate requests cannot both insert.
type CommentLike struct {
	ID        uuid.UUID `db:"id" json:"id"`
	CommentID uuid.UUID `db:"comment_id" json:"comment_id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// PostLike is the post variant of CommentLike, owned by the post
// interaction engine. Same unique-pair contract, one level shallower.
type PostLike struct {
	ID        uuid.UUID `db:"id" json:"id"`
	PostID    uuid.UUID `db:"post_id" json:"post_id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// AddCommentLikeRequest is the request body for POST /comment-likes.
type AddCommentLikeRequest struct {
	CommentID string `json:"comment_id" validate:"required,uuid"`
	UserID    string `json:"user_id" validate:"required,uuid"`
}

// AddPostLikeRequest is the request body for POST /post-likes.
type AddPostLikeRequest struct {
	PostID string `json:"post_id" validate:"required,uuid"`
	UserID string `json:"user_id" validate:"required,uuid"`
}

// CommentLikesResponse is the live aggregation for a single comment.
type CommentLikesResponse struct {
	CommentID  uuid.UUID `json:"comment_id"`
	TotalLikes int       `json:"total_likes"`
	Likers     []User    `json:"likers"`
}

// PostLikesResponse is the live aggregation for a single post.
type PostLikesResponse struct {
	PostID     uuid.UUID `json:"post_id"`
	PostNumber int64     `json:"post_number"`
	TotalLikes int       `json:"total_likes"`
	Likers     []User    `json:"likers"`
}

// Like errors
var (
	ErrAlreadyLiked = errors.New("already liked")
	ErrLikeNotFound = errors.New("like not found")
)
