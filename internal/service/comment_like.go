package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"threadboard/internal/model"
	"threadboard/internal/repository"
)

// CommentLikeService registers and removes comment likes. Registration is
// idempotent under concurrency: the storage constraint guarantees at most
// one (comment, user) row, and the second of two racing requests observes
// a conflict instead of a duplicate.
type CommentLikeService struct {
	likeRepo    repository.CommentLikeRepository
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
}

func NewCommentLikeService(
	likeRepo repository.CommentLikeRepository,
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
) *CommentLikeService {
	return &CommentLikeService{
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
	}
}

// Add registers a like. Returns model.ErrAlreadyLiked if the pair exists.
func (s *CommentLikeService) Add(ctx context.Context, commentID, userID uuid.UUID) (*model.CommentLike, error) {
	if _, err := s.commentRepo.GetByID(ctx, commentID); err != nil {
		return nil, err
	}
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user exists: %w", err)
	}
	if !exists {
		return nil, model.ErrUserNotFound
	}

	like, err := s.likeRepo.Create(ctx, commentID, userID)
	if err != nil {
		return nil, err
	}

	log.Printf("[CommentLikeService] User %s liked comment %s", userID, commentID)
	return like, nil
}

// Remove deletes the pair. Returns model.ErrLikeNotFound if absent.
func (s *CommentLikeService) Remove(ctx context.Context, commentID, userID uuid.UUID) error {
	if err := s.likeRepo.Delete(ctx, commentID, userID); err != nil {
		return err
	}
	log.Printf("[CommentLikeService] User %s unliked comment %s", userID, commentID)
	return nil
}

// Likes returns the live like count and liker identities for a comment.
func (s *CommentLikeService) Likes(ctx context.Context, commentID uuid.UUID) (*model.CommentLikesResponse, error) {
	if _, err := s.commentRepo.GetByID(ctx, commentID); err != nil {
		return nil, err
	}
	count, err := s.likeRepo.CountByComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	likers, err := s.likeRepo.GetLikers(ctx, commentID)
	if err != nil {
		return nil, err
	}
	return &model.CommentLikesResponse{
		CommentID:  commentID,
		TotalLikes: count,
		Likers:     likers,
	}, nil
}
