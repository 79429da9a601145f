package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"threadboard/internal/config"
	"threadboard/internal/model"
	"threadboard/internal/repository"
)

// CommentService is the comment tree engine. It owns comment creation,
// editing, soft deletion and thread reconstruction, and only reads the
// user/post mirrors to validate references.
type CommentService struct {
	commentRepo repository.CommentRepository
	likeRepo    repository.CommentLikeRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
	cfg         config.CommentConfig
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	likeRepo repository.CommentLikeRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	cfg config.CommentConfig,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
		cfg:         cfg,
	}
}

// Create adds a comment to a post, optionally as a reply to parentID.
// A reply must target a parent on the same post and may not exceed the
// configured reply depth.
func (s *CommentService) Create(ctx context.Context, postID, userID uuid.UUID, content string, parentID *uuid.UUID) (*model.Comment, error) {
	if len(content) == 0 {
		return nil, model.ErrContentRequired
	}
	if len(content) > s.cfg.MaxContentLength {
		return nil, model.ErrContentTooLong
	}

	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("check post exists: %w", err)
	}
	if !exists {
		return nil, model.ErrPostNotFound
	}

	exists, err = s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user exists: %w", err)
	}
	if !exists {
		return nil, model.ErrUserNotFound
	}

	if parentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *parentID)
		if err != nil {
			return nil, err
		}
		if parent.PostID != postID {
			return nil, model.ErrParentPostMismatch
		}
		depth, err := s.replyDepth(ctx, parent)
		if err != nil {
			return nil, err
		}
		if depth+1 > s.cfg.MaxReplyDepth {
			return nil, model.ErrReplyDepthExceeded
		}
	}

	count, err := s.commentRepo.CountByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("count post comments: %w", err)
	}
	if count >= s.cfg.MaxCommentsPerPost {
		return nil, model.ErrCommentLimitReached
	}

	comment, err := s.commentRepo.Create(ctx, postID, userID, content, parentID)
	if err != nil {
		return nil, err
	}

	log.Printf("[CommentService] User %s commented on post %s", userID, postID)
	return comment, nil
}

// replyDepth walks the parent chain and returns the comment's depth:
// 0 for a top-level comment, 1 for a reply to it, and so on. The walk is
// bounded by MaxReplyDepth since deeper chains cannot exist once the limit
// is enforced.
func (s *CommentService) replyDepth(ctx context.Context, comment *model.Comment) (int, error) {
	depth := 0
	cur := comment
	for cur.ParentCommentID != nil {
		depth++
		if depth > s.cfg.MaxReplyDepth {
			return depth, nil
		}
		parent, err := s.commentRepo.GetByID(ctx, *cur.ParentCommentID)
		if err != nil {
			return 0, fmt.Errorf("walk parent chain: %w", err)
		}
		cur = parent
	}
	return depth, nil
}

// GetByID resolves a comment directly, soft-deleted ones included.
func (s *CommentService) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	return s.commentRepo.GetByID(ctx, id)
}

// Edit replaces the content and marks the comment edited. Editing a
// soft-deleted comment is rejected: tombstoned content has no consumer.
func (s *CommentService) Edit(ctx context.Context, id uuid.UUID, content string) (*model.Comment, error) {
	if len(content) == 0 {
		return nil, model.ErrContentRequired
	}
	if len(content) > s.cfg.MaxContentLength {
		return nil, model.ErrContentTooLong
	}

	existing, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.IsDeleted {
		return nil, model.ErrCommentDeleted
	}

	comment, err := s.commentRepo.Update(ctx, id, content)
	if err != nil {
		return nil, err
	}

	log.Printf("[CommentService] Comment %s edited", id)
	return comment, nil
}

// SoftDelete hides the comment from listings without detaching its replies.
// Idempotent: deleting twice succeeds.
func (s *CommentService) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if err := s.commentRepo.SoftDelete(ctx, id); err != nil {
		return err
	}
	log.Printf("[CommentService] Comment %s soft deleted", id)
	return nil
}

// ListThread returns the post's comment forest: non-deleted top-level
// comments in creation order, each carrying its replies recursively in the
// same order. A deleted comment that still has visible descendants appears
// as a tombstone (empty content, is_deleted true) so its replies stay
// attached to the original parent; a deleted comment with no visible
// descendants is omitted entirely.
func (s *CommentService) ListThread(ctx context.Context, postID uuid.UUID) (*model.ThreadResponse, error) {
	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("check post exists: %w", err)
	}
	if !exists {
		return nil, model.ErrPostNotFound
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	likeCounts, err := s.likeRepo.CountByPostComments(ctx, postID)
	if err != nil {
		return nil, err
	}

	return &model.ThreadResponse{
		PostID:   postID,
		Comments: buildThread(comments, likeCounts),
	}, nil
}

// buildThread assembles the forest with a single index pass: children are
// grouped by parent id, then each root subtree is materialized
// depth-first. Input order (created_at, id ascending) is preserved.
func buildThread(comments []model.Comment, likeCounts map[uuid.UUID]int) []*model.CommentNode {
	children := make(map[uuid.UUID][]*model.Comment)
	var roots []*model.Comment
	for i := range comments {
		c := &comments[i]
		if c.ParentCommentID == nil {
			roots = append(roots, c)
		} else {
			children[*c.ParentCommentID] = append(children[*c.ParentCommentID], c)
		}
	}

	var build func(c *model.Comment) *model.CommentNode
	build = func(c *model.Comment) *model.CommentNode {
		var replies []*model.CommentNode
		visibleCount := 0
		for _, child := range children[c.ID] {
			if !child.IsDeleted {
				visibleCount++
			}
			if node := build(child); node != nil {
				replies = append(replies, node)
			}
		}
		if c.IsDeleted && len(replies) == 0 {
			return nil
		}
		node := &model.CommentNode{
			Comment:    *c,
			LikeCount:  likeCounts[c.ID],
			ReplyCount: visibleCount,
			Replies:    replies,
		}
		if c.IsDeleted {
			node.Content = ""
		}
		return node
	}

	forest := []*model.CommentNode{}
	for _, root := range roots {
		if node := build(root); node != nil {
			forest = append(forest, node)
		}
	}
	return forest
}

// ListReplies returns the non-deleted direct replies of a comment in
// creation order. The parent is addressable even when soft-deleted.
func (s *CommentService) ListReplies(ctx context.Context, commentID uuid.UUID) ([]model.Comment, error) {
	if _, err := s.commentRepo.GetByID(ctx, commentID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListReplies(ctx, commentID)
}

// ListByUser returns a user's non-deleted comments, newest first.
func (s *CommentService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Comment, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user exists: %w", err)
	}
	if !exists {
		return nil, model.ErrUserNotFound
	}
	return s.commentRepo.ListByUser(ctx, userID)
}
