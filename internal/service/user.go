package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"threadboard/internal/model"
	"threadboard/internal/repository"
)

// UserService manages the user side of the identity mirror. Provisioning is
// lazy: a row appears when a reference is first needed and is never updated
// afterwards.
type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) Provision(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	user, err := s.userRepo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	log.Printf("[UserService] Mirror user %s provisioned (%s)", user.Username, user.UserID)
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
