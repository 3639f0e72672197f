package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/users-api/internal/domain/entity"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrUnavailable is returned when no connection could be borrowed in time.
	ErrUnavailable = errors.New("storage unavailable")
	// ErrConstraint marks integrity constraint violations (unique, not-null, check).
	ErrConstraint = errors.New("constraint violation")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, in entity.CreateUser) (*entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
}
