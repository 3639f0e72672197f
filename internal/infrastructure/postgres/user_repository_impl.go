package postgres

import (
	"context"

	"github.com/oksasatya/users-api/internal/domain/entity"
	"github.com/oksasatya/users-api/internal/domain/repository"
)

const (
	sqlInsertUser = `
		INSERT INTO users (name, email, age)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, age, created_at, updated_at`

	sqlGetUserByID = `
		SELECT id, name, email, age, created_at, updated_at
		FROM users
		WHERE id = $1`
)

type UserRepository struct {
	pool *Pool
}

func NewUserRepository(pool *Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Create inserts a user and reads back the stored row in the same round trip.
func (r *UserRepository) Create(ctx context.Context, in entity.CreateUser) (*entity.User, error) {
	conn, err := r.pool.Borrow(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	defer conn.Release()

	u := &entity.User{}
	row := conn.QueryRow(ctx, sqlInsertUser, in.Name, in.Email, in.Age)
	if err := scanUser(row, u); err != nil {
		return nil, mapError(err)
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	conn, err := r.pool.Borrow(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	defer conn.Release()

	u := &entity.User{}
	if err := scanUser(conn.QueryRow(ctx, sqlGetUserByID, id), u); err != nil {
		return nil, mapError(err)
	}
	return u, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner, u *entity.User) error {
	return row.Scan(&u.ID, &u.Name, &u.Email, &u.Age, &u.CreatedAt, &u.UpdatedAt)
}

var _ repository.UserRepository = (*UserRepository)(nil)
