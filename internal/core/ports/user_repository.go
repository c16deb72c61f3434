package ports

import (
	"context"

	"github.com/taskhive/taskhive/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Create must surface the unique-email constraint as domain.ErrUserExists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}
