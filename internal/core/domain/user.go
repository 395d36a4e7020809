package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin    = "admin"
	RoleManager  = "gerente"
	RoleOperator = "operador"
)

// ValidRole reports whether role belongs to the closed role set.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleOperator:
		return true
	}
	return false
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrLastAdmin          = errors.New("cannot remove the last administrator")
	ErrForbidden          = errors.New("access forbidden")
)

// User is the credential record guarding the record-management backend.
// Password holds a bcrypt hash, except for seeded accounts that may still
// carry a legacy plaintext value until their first successful login.
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"nome"`
	Email        string     `json:"email"`
	Password     string     `json:"-"`
	Role         string     `json:"tipo_usuario"`
	TempPassword bool       `json:"senha_temporaria"`
	LastLogin    *time.Time `json:"ultimo_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
