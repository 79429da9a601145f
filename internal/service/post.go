package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"threadboard/internal/model"
	"threadboard/internal/repository"
)

// postNumberRetries bounds how often a create is retried when concurrent
// inserts collide on the sequential post number.
const postNumberRetries = 3

// PostService manages the post side of the identity mirror.
type PostService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// Create inserts a mirror post. The post number is assigned inside the
// insert statement under a unique constraint; on a collision the insert is
// retried, and if every attempt loses the race the conflict is surfaced as
// retryable to the caller.
func (s *PostService) Create(ctx context.Context, req model.CreatePostRequest) (*model.Post, error) {
	var lastErr error
	for attempt := 0; attempt < postNumberRetries; attempt++ {
		post, err := s.postRepo.Create(ctx, req.UserID, req.Description)
		if err == nil {
			log.Printf("[PostService] Post #%d created for user %s", post.PostNumber, post.UserID)
			return post, nil
		}
		if !errors.Is(err, model.ErrPostNumberConflict) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func (s *PostService) GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// Update edits the description, the only mutable post field.
func (s *PostService) Update(ctx context.Context, id uuid.UUID, req model.UpdatePostRequest) (*model.Post, error) {
	post, err := s.postRepo.UpdateDescription(ctx, id, req.Description)
	if err != nil {
		return nil, err
	}
	log.Printf("[PostService] Post %s description updated", id)
	return post, nil
}

// Delete removes the post physically; its comments and likes cascade away.
func (s *PostService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("[PostService] Post %s deleted", id)
	return nil
}
