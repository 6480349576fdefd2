package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an admin-dashboard account. End users of the free tools are
// anonymous and never stored.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
