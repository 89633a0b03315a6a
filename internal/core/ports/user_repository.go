package ports

import (
	"context"

	"github.com/pixelforge/nexus-api/internal/core/domain"
)

// UserRepository defines the interface for identity persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// List returns users, optionally filtered by role. An empty role returns everyone.
	List(ctx context.Context, role string) ([]*domain.User, error)
	UpdatePasswordHash(ctx context.Context, id, hash string) error
}
