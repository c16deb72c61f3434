package handler

import "github.com/taskhive/taskhive/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// authResponse carries the user plus the freshly minted session token. The
// user's password hash is excluded by the domain struct itself.
type authResponse struct {
	User        *domain.User `json:"user"`
	AccessToken string       `json:"access_token"`
}
