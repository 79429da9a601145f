package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// User is a locally owned mirror of an identity record managed by the login
// service. Rows are provisioned lazily, never updated, and never deleted in
// normal operation: comments and likes depend on them for referential
// integrity. The mirror is not synchronized with the owning service, so a
// row may be stale or missing; callers treat an unresolved reference as a
// validation failure.
type User struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Username  string    `db:"username" json:"username"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CreateUserRequest is the request body for lazy mirror provisioning.
type CreateUserRequest struct {
	UserID   string `json:"user_id" validate:"required,max=100"`
	Username string `json:"username" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
}

// User errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)
