package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"threadboard/internal/model"
	"threadboard/internal/repository"
)

// PostLikeService is the post interaction engine: same idempotent
// registration contract as comment likes, one level shallower.
type PostLikeService struct {
	likeRepo repository.PostLikeRepository
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

func NewPostLikeService(
	likeRepo repository.PostLikeRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *PostLikeService {
	return &PostLikeService{
		likeRepo: likeRepo,
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

func (s *PostLikeService) Add(ctx context.Context, postID, userID uuid.UUID) (*model.PostLike, error) {
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

	like, err := s.likeRepo.Create(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	log.Printf("[PostLikeService] User %s liked post %s", userID, postID)
	return like, nil
}

func (s *PostLikeService) Remove(ctx context.Context, postID, userID uuid.UUID) error {
	if err := s.likeRepo.Delete(ctx, postID, userID); err != nil {
		return err
	}
	log.Printf("[PostLikeService] User %s unliked post %s", userID, postID)
	return nil
}

func (s *PostLikeService) Likes(ctx context.Context, postID uuid.UUID) (*model.PostLikesResponse, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	count, err := s.likeRepo.CountByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	likers, err := s.likeRepo.GetLikers(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &model.PostLikesResponse{
		PostID:     post.ID,
		PostNumber: post.PostNumber,
		TotalLikes: count,
		Likers:     likers,
	}, nil
}
