package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account identity. The name is unique and
// case-sensitive; the password hash is an opaque salt‖key blob produced
// by the hash service.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"` // Never expose
	CreatedAt    time.Time `json:"created_at"`
}
