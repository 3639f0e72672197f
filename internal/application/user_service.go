package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/users-api/internal/domain/entity"
	repo "github.com/oksasatya/users-api/internal/domain/repository"
	"github.com/oksasatya/users-api/pkg/validation"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUnavailable  = errors.New("no database connection available")
)

// ValidationError wraps a rejected input.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return "invalid input: " + e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

// StorageError is any failure while executing a statement. Op names the
// operation ("create user", "get user") and prefixes the message.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return "Failed to " + e.Op + ": " + e.Err.Error() }

func (e *StorageError) Unwrap() error { return e.Err }

type Service struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewService(repo repo.UserRepository, logger *logrus.Logger) *Service {
	return &Service{Repo: repo, Logger: logger}
}

// CreateUser validates in and stores it, returning the row as persisted.
func (s *Service) CreateUser(ctx context.Context, in entity.CreateUser) (*entity.User, error) {
	if err := validation.Struct(in); err != nil {
		return nil, &ValidationError{Err: err}
	}
	u, err := s.Repo.Create(ctx, in)
	if err != nil {
		return nil, s.classify("create user", err, logrus.Fields{"email": in.Email})
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", u.ID).Info("user created")
	}
	return u, nil
}

func (s *Service) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.classify("get user", err, logrus.Fields{"user_id": id})
	}
	return u, nil
}

func (s *Service) classify(op string, err error, fields logrus.Fields) error {
	var out error
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return ErrUserNotFound
	case errors.Is(err, repo.ErrUnavailable):
		out = ErrUnavailable
	case errors.Is(err, context.Canceled):
		return err
	default:
		out = &StorageError{Op: op, Err: err}
	}
	if s.Logger != nil {
		entry := s.Logger.WithError(err).WithFields(fields).WithField("op", op)
		if errors.Is(err, repo.ErrConstraint) {
			entry.Warn("constraint violation")
		} else {
			entry.Error("database error")
		}
	}
	return out
}
