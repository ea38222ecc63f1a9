package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an authenticated caller. The password column holds only the
// bcrypt hash and is never serialized into any response payload.
type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;not null"`
	Email     string    `json:"email" gorm:"type:text;not null;uniqueIndex:idx_user_email"`
	Password  string    `json:"-" gorm:"type:text;not null"`
	Role      string    `json:"role" gorm:"type:text;not null;default:user"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
