package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("token is not valid")
var ErrTokenExpired = errors.New("token has expired")

// Role values are stored verbatim and embedded in session tokens.
const (
	RoleAdmin       = "Admin"
	RoleProjectLead = "Project Lead"
	RoleDeveloper   = "Developer"
)

// ValidRole reports whether r is one of the three known roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleProjectLead || r == RoleDeveloper
}

// User models an authenticated identity. Username and Role are immutable
// after registration; PasswordHash changes only through the self-service
// password update.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
