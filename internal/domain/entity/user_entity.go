package entity

import (
	"time"
)

// User is a row of the users table.
// ID and both timestamps are assigned by the database; Age is nil when unknown.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       *int32    `json:"age"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateUser is the payload accepted by POST /users.
type CreateUser struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Age   *int32 `json:"age"`
}

// UpdateUser describes a partial update. Only set fields change.
// No operation consumes it yet.
type UpdateUser struct {
	Name  *string `json:"name" binding:"omitempty,min=1"`
	Email *string `json:"email" binding:"omitempty,min=1"`
	Age   *int32  `json:"age"`
}

