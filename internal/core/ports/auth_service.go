package ports

import (
	"context"

	"github.com/taskhive/taskhive/internal/core/domain"
)

// RegisterInput carries self-service registration data. The resulting
// account always gets the "user" role.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// AuthService implements registration, login, and token subject resolution.
type AuthService interface {
	// Register creates an account and returns it with a freshly minted token.
	Register(ctx context.Context, in RegisterInput) (*domain.User, string, error)
	// Login verifies credentials and returns a signed token plus the user.
	// Unknown email and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// ValidateUser resolves a token subject to a live user record.
	ValidateUser(ctx context.Context, id string) (*domain.User, error)
}
