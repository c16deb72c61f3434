package ports

import (
	"context"

	"github.com/taskhive/taskhive/internal/core/domain"
)

// CreateUserInput carries the data for creating an account. Role defaults to
// "user" when empty; only the admin endpoint passes anything else.
type CreateUserInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

// UpdateUserInput is a field-level patch: nil means "leave unchanged".
// A non-nil Password is re-hashed before storage.
type UpdateUserInput struct {
	Email     *string
	Password  *string
	FirstName *string
	LastName  *string
	Role      *string
	Active    *bool
}

// UserService defines account management use cases.
type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
	Remove(ctx context.Context, id string) error
}
