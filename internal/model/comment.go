package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Comment is a node in a post's comment tree. A nil ParentCommentID marks a
// top-level comment; a non-nil one marks a reply to another comment on the
// same post. IsDeleted is a soft-delete flag: it hides the comment from
// default listings but leaves its replies attached and addressable.
type Comment struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	PostID          uuid.UUID  `db:"post_id" json:"post_id"`
	UserID          uuid.UUID  `db:"user_id" json:"user_id"`
	ParentCommentID *uuid.UUID `db:"parent_comment_id" json:"parent_comment_id,omitempty"`
	Content         string     `db:"content" json:"content"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
	IsEdited        bool       `db:"is_edited" json:"is_edited"`
	IsDeleted       bool       `db:"is_deleted" json:"is_deleted"`
}

// IsReply reports whether the comment has a parent.
func (c *Comment) IsReply() bool {
	return c.ParentCommentID != nil
}

// CommentNode is a comment carrying its derived counts and its replies,
// as returned by thread listing. LikeCount and ReplyCount are computed at
// read time, never stored. ReplyCount counts non-deleted direct children;
// Replies may additionally contain tombstones for deleted children that
// still have visible descendants.
type CommentNode struct {
	Comment
	LikeCount  int            `json:"like_count"`
	ReplyCount int            `json:"reply_count"`
	Replies    []*CommentNode `json:"replies"`
}

// CreateCommentRequest is the request body for creating a comment or reply.
// UserID and PostID are mirror primary keys; ParentCommentID is set for
// replies created through POST /comments (the reply endpoint takes the
// parent from the URL instead).
type CreateCommentRequest struct {
	PostID          string  `json:"post_id" validate:"required,uuid"`
	UserID          string  `json:"user_id" validate:"required,uuid"`
	Content         string  `json:"content" validate:"required"`
	ParentCommentID *string `json:"parent_comment_id,omitempty" validate:"omitempty,uuid"`
}

// ReplyRequest is the request body for POST /comments/{id}/reply.
type ReplyRequest struct {
	UserID  string `json:"user_id" validate:"required,uuid"`
	Content string `json:"content" validate:"required"`
}

// UpdateCommentRequest is the request body for editing a comment.
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// ThreadResponse is the ordered forest returned for a post's thread.
type ThreadResponse struct {
	PostID   uuid.UUID      `json:"post_id"`
	Comments []*CommentNode `json:"comments"`
}

// Comment limit defaults, overridable through configuration.
const (
	DefaultMaxContentLength   = 1000
	DefaultMaxReplyDepth      = 5
	DefaultMaxCommentsPerPost = 1000
)

// Comment errors
var (
	ErrCommentNotFound     = errors.New("comment not found")
	ErrContentRequired     = errors.New("comment content is required")
	ErrContentTooLong      = errors.New("comment content too long")
	ErrParentPostMismatch  = errors.New("parent comment belongs to a different post")
	ErrReplyDepthExceeded  = errors.New("maximum reply depth exceeded")
	ErrCommentDeleted      = errors.New("comment is deleted")
	ErrCommentLimitReached = errors.New("comment limit for this post reached")
)
