package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"threadboard/internal/model"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

// Create provisions a mirror user row. user_id, username and email are all
// unique; a collision on any of them reports the row as already present.
func (r *userRepository) Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	query := `
		INSERT INTO users (id, user_id, username, email)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, username, email, created_at
	`
	var user model.User
	err := r.db.GetContext(ctx, &user, query, uuid.New(), req.UserID, req.Username, req.Email)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, model.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	query := `
		SELECT id, user_id, username, email, created_at
		FROM users
		WHERE id = $1
	`
	var user model.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err == sql.ErrNoRows {
		return nil, model.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

// GetByUserID resolves a user by the external identifier assigned by the
// login service.
func (r *userRepository) GetByUserID(ctx context.Context, userID string) (*model.User, error) {
	query := `
		SELECT id, user_id, username, email, created_at
		FROM users
		WHERE user_id = $1
	`
	var user model.User
	err := r.db.GetContext(ctx, &user, query, userID)
	if err == sql.ErrNoRows {
		return nil, model.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by external id: %w", err)
	}
	return &user, nil
}

func (r *userRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}
	return exists, nil
}
