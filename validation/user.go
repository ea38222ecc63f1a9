package validation

import "github.com/janedoe-dev/portfolio-api/models"

type UserCreate struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

func (u UserCreate) Validate() error {
	return Struct(u)
}

// ToModel leaves Password empty: the controller stores only the hash.
func (u UserCreate) ToModel() models.User {
	role := u.Role
	if role == "" {
		role = models.RoleUser
	}
	return models.User{
		Email: u.Email,
		Role:  role,
	}
}

type UserUpdate struct {
	Email    *string `json:"email" validate:"omitnil,email"`
	Password *string `json:"password" validate:"omitnil,min=6"`
	Role     *string `json:"role" validate:"omitnil,oneof=user admin"`
}

func (u UserUpdate) Validate() error {
	return Struct(u)
}

// Credentials is the login payload. Only presence is checked; anything
// beyond that would leak which part of the pair was wrong.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (c Credentials) Validate() error {
	return Struct(c)
}
