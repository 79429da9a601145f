package model

import "github.com/google/uuid"

// CommentCounters are the global thread counters. All three exclude
// soft-deleted comments, so TotalComments == TotalReplies + TotalTopLevel
// always holds.
type CommentCounters struct {
	TotalComments int `db:"total_comments" json:"total_comments"`
	TotalReplies  int `db:"total_replies" json:"total_replies"`
	TotalTopLevel int `db:"total_top_level" json:"total_top_level"`
}

// PostCommentCount ranks a post by its number of non-deleted comments.
// Ties are broken by post id ascending.
type PostCommentCount struct {
	PostID       uuid.UUID `db:"id" json:"post_id"`
	PostNumber   int64     `db:"post_number" json:"post_number"`
	Description  string    `db:"description" json:"description"`
	CommentCount int       `db:"comment_count" json:"comment_count"`
}

// UserCommentCount ranks a user by their number of non-deleted comments.
// Ties are broken by user id ascending.
type UserCommentCount struct {
	UserID       uuid.UUID `db:"id" json:"user_id"`
	Username     string    `db:"username" json:"username"`
	CommentCount int       `db:"comment_count" json:"comment_count"`
}

// CommentAnalytics is the payload of GET /comments/analytics.
type CommentAnalytics struct {
	CommentCounters
	TopPosts []PostCommentCount `json:"top_posts"`
	TopUsers []UserCommentCount `json:"top_users"`
}
