package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Post is the locally owned mirror of a post record managed by the posts
// service. UserID is the owner's external identifier and is intentionally
// not a foreign key to the user mirror. PostNumber is a globally unique
// sequential number assigned inside the insert statement; concurrent
// creations that collide on it surface as a retryable conflict.
type Post struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"user_id"`
	Description string    `db:"description" json:"description"`
	PostNumber  int64     `db:"post_number" json:"post_number"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// CreatePostRequest is the request body for creating a mirror post.
type CreatePostRequest struct {
	UserID      string `json:"user_id" validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=2000"`
}

// UpdatePostRequest is the request body for editing a post description.
type UpdatePostRequest struct {
	Description string `json:"description" validate:"required,max=2000"`
}

// MaxDescriptionLength mirrors the posts-service limit.
const MaxDescriptionLength = 2000

// Post errors
var (
	ErrPostNotFound       = errors.New("post not found")
	ErrPostNumberConflict = errors.New("post number conflict, retry the request")
)
