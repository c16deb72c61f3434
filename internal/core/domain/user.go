package domain

import (
	"errors"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("Invalid credentials")
var ErrUserInactive = errors.New("User is inactive")

// User models an authenticated actor in the system. The password hash is
// never serialized: every response path that returns a user goes through
// this struct, so the json:"-" tag is the single enforcement point.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Role         string    `json:"role"`
	Active       bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ValidRole reports whether r is one of the two known roles.
func ValidRole(r string) bool {
	return r == RoleUser || r == RoleAdmin
}
